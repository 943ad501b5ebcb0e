package service

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

func questionsWithIDs(ids ...int) []domain.Question {
	qs := make([]domain.Question, 0, len(ids))
	for _, id := range ids {
		qs = append(qs, domain.Question{ID: id})
	}
	return qs
}

func TestNextQuestionSkipsPreviouslyAsked(t *testing.T) {
	candidates := questionsWithIDs(1, 2, 3, 4)

	for i := 0; i < 50; i++ {
		q, ok := NextQuestion(candidates, []int{1, 3}, rand.IntN)
		require.True(t, ok)
		assert.Contains(t, []int{2, 4}, q.ID)
	}
}

func TestNextQuestionUsesSingleDraw(t *testing.T) {
	candidates := questionsWithIDs(10, 20, 30)

	var calls []int
	intn := func(n int) int {
		calls = append(calls, n)
		return n - 1
	}

	q, ok := NextQuestion(candidates, []int{20}, intn)
	require.True(t, ok)
	assert.Equal(t, 30, q.ID)
	assert.Equal(t, []int{2}, calls)
}

func TestNextQuestionExhausted(t *testing.T) {
	intn := func(int) int {
		t.Fatal("no draw expected when exhausted")
		return 0
	}

	q, ok := NextQuestion(questionsWithIDs(1, 2), []int{2, 1, 7}, intn)
	assert.False(t, ok)
	assert.Nil(t, q)

	q, ok = NextQuestion(nil, nil, intn)
	assert.False(t, ok)
	assert.Nil(t, q)
}

func TestNextQuestionReachesEveryCandidate(t *testing.T) {
	candidates := questionsWithIDs(1, 2, 3)
	seen := map[int]bool{}

	for i := 0; i < 300; i++ {
		q, ok := NextQuestion(candidates, nil, rand.IntN)
		require.True(t, ok)
		seen[q.ID] = true
	}
	assert.Len(t, seen, 3)
}
