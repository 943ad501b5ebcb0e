package service

import "github.com/zizouhuweidi/trivia/internal/domain"

// NextQuestion picks one candidate uniformly at random among those whose id is
// not in previous. It reports false when every candidate was already asked.
// intn must return a value in [0, n).
func NextQuestion(candidates []domain.Question, previous []int, intn func(n int) int) (*domain.Question, bool) {
	asked := make(map[int]struct{}, len(previous))
	for _, id := range previous {
		asked[id] = struct{}{}
	}

	remaining := make([]domain.Question, 0, len(candidates))
	for _, q := range candidates {
		if _, ok := asked[q.ID]; !ok {
			remaining = append(remaining, q)
		}
	}

	if len(remaining) == 0 {
		return nil, false
	}

	choice := remaining[intn(len(remaining))]
	return &choice, true
}
