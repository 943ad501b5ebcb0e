package sqlite

import "github.com/zizouhuweidi/trivia/internal/domain"

// categoryRow is the GORM mapping of the categories table
type categoryRow struct {
	ID   int    `gorm:"primaryKey;autoIncrement"`
	Type string `gorm:"not null"`
}

func (categoryRow) TableName() string { return "categories" }

// questionRow is the GORM mapping of the questions table
type questionRow struct {
	ID         int    `gorm:"primaryKey;autoIncrement"`
	Question   string `gorm:"not null"`
	Answer     string `gorm:"not null"`
	Category   int    `gorm:"not null;index"`
	Difficulty int    `gorm:"not null"`
}

func (questionRow) TableName() string { return "questions" }

func (r questionRow) toDomain() domain.Question {
	return domain.Question{
		ID:         r.ID,
		Question:   r.Question,
		Answer:     r.Answer,
		Category:   r.Category,
		Difficulty: r.Difficulty,
	}
}

func toQuestions(rows []questionRow) []domain.Question {
	questions := make([]domain.Question, 0, len(rows))
	for _, r := range rows {
		questions = append(questions, r.toDomain())
	}
	return questions
}

// DefaultCategories are the categories a fresh local database starts with.
var DefaultCategories = []string{"Science", "Art", "Geography", "History", "Entertainment", "Sports"}
