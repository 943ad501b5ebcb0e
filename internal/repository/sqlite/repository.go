// Package sqlite stores trivia data through GORM on SQLite. It backs local
// development and the HTTP tests.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// Repository implements domain.TriviaRepository on top of GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wraps db. Call Migrate before first use.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates the tables if they do not exist.
func (r *Repository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&categoryRow{}, &questionRow{}); err != nil {
		return fmt.Errorf("migrate db: %w", err)
	}
	return nil
}

// SeedCategories inserts the given category labels when the table is empty.
func (r *Repository) SeedCategories(ctx context.Context, types []string) error {
	db := r.db.WithContext(ctx)

	var count int64
	if err := db.Model(&categoryRow{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if count > 0 || len(types) == 0 {
		return nil
	}

	rows := make([]categoryRow, 0, len(types))
	for _, t := range types {
		rows = append(rows, categoryRow{Type: t})
	}
	if err := db.Create(&rows).Error; err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	return nil
}

func (r *Repository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var rows []categoryRow
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, domain.Category{ID: row.ID, Type: row.Type})
	}
	return categories, nil
}

func (r *Repository) GetCategory(ctx context.Context, id int) (*domain.Category, error) {
	var row categoryRow
	err := r.db.WithContext(ctx).First(&row, id).Error
	switch {
	case err == nil:
		return &domain.Category{ID: row.ID, Type: row.Type}, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, domain.ErrCategoryNotFound
	default:
		return nil, fmt.Errorf("find category: %w", err)
	}
}

func (r *Repository) ListQuestions(ctx context.Context) ([]domain.Question, error) {
	var rows []questionRow
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return toQuestions(rows), nil
}

func (r *Repository) CountQuestions(ctx context.Context) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&questionRow{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return int(count), nil
}

func (r *Repository) GetQuestion(ctx context.Context, id int) (*domain.Question, error) {
	var row questionRow
	err := r.db.WithContext(ctx).First(&row, id).Error
	switch {
	case err == nil:
		q := row.toDomain()
		return &q, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, domain.ErrQuestionNotFound
	default:
		return nil, fmt.Errorf("find question: %w", err)
	}
}

func (r *Repository) CreateQuestion(ctx context.Context, question *domain.Question) error {
	if err := question.Validate(); err != nil {
		return err
	}

	row := questionRow{
		Question:   question.Question,
		Answer:     question.Answer,
		Category:   question.Category,
		Difficulty: question.Difficulty,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("create question: %w", err)
	}
	question.ID = row.ID
	return nil
}

func (r *Repository) DeleteQuestion(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&questionRow{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete question: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrQuestionNotFound
	}
	return nil
}

func (r *Repository) SearchQuestions(ctx context.Context, term string) ([]domain.Question, error) {
	pattern := domain.ContainsPattern(strings.ToLower(term))

	var rows []questionRow
	err := r.db.WithContext(ctx).
		Where(`LOWER(question) LIKE ? ESCAPE '\'`, pattern).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return toQuestions(rows), nil
}

func (r *Repository) QuestionsByCategory(ctx context.Context, categoryID int) ([]domain.Question, error) {
	var rows []questionRow
	err := r.db.WithContext(ctx).
		Where("category = ?", categoryID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("questions by category: %w", err)
	}
	return toQuestions(rows), nil
}

var _ domain.TriviaRepository = (*Repository)(nil)
