package domain

import (
	"context"
	"fmt"
	"strings"
)

// Difficulty bounds accepted for a question
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// TriviaRepository defines the storage operations the API needs
type TriviaRepository interface {
	// ListCategories retrieves all categories ordered by id
	ListCategories(ctx context.Context) ([]Category, error)

	// GetCategory retrieves a category by its ID
	GetCategory(ctx context.Context, id int) (*Category, error)

	// ListQuestions retrieves all questions ordered by id
	ListQuestions(ctx context.Context) ([]Question, error)

	// CountQuestions returns the total number of stored questions
	CountQuestions(ctx context.Context) (int, error)

	// GetQuestion retrieves a question by its ID
	GetQuestion(ctx context.Context, id int) (*Question, error)

	// CreateQuestion inserts a question and assigns its ID
	CreateQuestion(ctx context.Context, question *Question) error

	// DeleteQuestion deletes a question
	DeleteQuestion(ctx context.Context, id int) error

	// SearchQuestions returns questions whose text contains term, ignoring case
	SearchQuestions(ctx context.Context, term string) ([]Question, error)

	// QuestionsByCategory returns the questions of one category ordered by id
	QuestionsByCategory(ctx context.Context, categoryID int) ([]Question, error)
}

// Question represents a trivia question
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Validate checks a question's data before it is stored
func (q *Question) Validate() error {
	if strings.TrimSpace(q.Question) == "" {
		return fmt.Errorf("%w: question text cannot be empty", ErrInvalidQuestion)
	}
	if strings.TrimSpace(q.Answer) == "" {
		return fmt.Errorf("%w: answer cannot be empty", ErrInvalidQuestion)
	}
	if q.Category <= 0 {
		return fmt.Errorf("%w: category is required", ErrInvalidQuestion)
	}
	if q.Difficulty < MinDifficulty || q.Difficulty > MaxDifficulty {
		return fmt.Errorf("%w: difficulty must be between %d and %d", ErrInvalidQuestion, MinDifficulty, MaxDifficulty)
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern returns a LIKE pattern matching any text that contains term.
// `\` is the escape character, so %, _ and \ in term match literally.
func ContainsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
