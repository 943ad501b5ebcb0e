package service

import (
	"context"
	"errors"
	"strings"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// fakeRepo is an in-memory domain.TriviaRepository for service tests.
type fakeRepo struct {
	categories []domain.Category
	questions  []domain.Question
	nextID     int
	failCreate error
}

func newFakeRepo(categories ...string) *fakeRepo {
	r := &fakeRepo{nextID: 1}
	for i, c := range categories {
		r.categories = append(r.categories, domain.Category{ID: i + 1, Type: c})
	}
	return r
}

func (r *fakeRepo) add(text string, category int) domain.Question {
	q := domain.Question{ID: r.nextID, Question: text, Answer: "a", Category: category, Difficulty: 1}
	r.nextID++
	r.questions = append(r.questions, q)
	return q
}

func (r *fakeRepo) ListCategories(context.Context) ([]domain.Category, error) {
	return append([]domain.Category{}, r.categories...), nil
}

func (r *fakeRepo) GetCategory(_ context.Context, id int) (*domain.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *fakeRepo) ListQuestions(context.Context) ([]domain.Question, error) {
	return append([]domain.Question{}, r.questions...), nil
}

func (r *fakeRepo) CountQuestions(context.Context) (int, error) {
	return len(r.questions), nil
}

func (r *fakeRepo) GetQuestion(_ context.Context, id int) (*domain.Question, error) {
	for _, q := range r.questions {
		if q.ID == id {
			q := q
			return &q, nil
		}
	}
	return nil, domain.ErrQuestionNotFound
}

func (r *fakeRepo) CreateQuestion(_ context.Context, q *domain.Question) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	q.ID = r.nextID
	r.nextID++
	r.questions = append(r.questions, *q)
	return nil
}

func (r *fakeRepo) DeleteQuestion(_ context.Context, id int) error {
	for i, q := range r.questions {
		if q.ID == id {
			r.questions = append(r.questions[:i], r.questions[i+1:]...)
			return nil
		}
	}
	return domain.ErrQuestionNotFound
}

func (r *fakeRepo) SearchQuestions(_ context.Context, term string) ([]domain.Question, error) {
	matches := []domain.Question{}
	for _, q := range r.questions {
		if strings.Contains(strings.ToLower(q.Question), strings.ToLower(term)) {
			matches = append(matches, q)
		}
	}
	return matches, nil
}

func (r *fakeRepo) QuestionsByCategory(_ context.Context, categoryID int) ([]domain.Question, error) {
	matches := []domain.Question{}
	for _, q := range r.questions {
		if q.Category == categoryID {
			matches = append(matches, q)
		}
	}
	return matches, nil
}

var errStoreDown = errors.New("store unavailable")
