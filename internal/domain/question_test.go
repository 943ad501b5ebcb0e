package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionValidate(t *testing.T) {
	valid := Question{Question: "Test question", Answer: "Test answer", Category: 1, Difficulty: 1}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(q *Question)
	}{
		{"empty question", func(q *Question) { q.Question = "" }},
		{"blank answer", func(q *Question) { q.Answer = " \t" }},
		{"no category", func(q *Question) { q.Category = 0 }},
		{"no difficulty", func(q *Question) { q.Difficulty = 0 }},
		{"difficulty above range", func(q *Question) { q.Difficulty = MaxDifficulty + 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := valid
			tt.mutate(&q)
			err := q.Validate()
			assert.ErrorIs(t, err, ErrInvalidQuestion)
			assert.ErrorIs(t, err, ErrUnprocessable)
		})
	}
}

func TestCategoryMap(t *testing.T) {
	m := CategoryMap([]Category{{ID: 1, Type: "Science"}, {ID: 4, Type: "History"}})
	assert.Equal(t, map[int]string{1: "Science", 4: "History"}, m)
	assert.Empty(t, CategoryMap(nil))
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%plain%", ContainsPattern("plain"))
	assert.Equal(t, `%100\%%`, ContainsPattern("100%"))
	assert.Equal(t, `%a\_b%`, ContainsPattern("a_b"))
	assert.Equal(t, `%c:\\dir%`, ContainsPattern(`c:\dir`))
	assert.Equal(t, "% %", ContainsPattern(" "))
}
