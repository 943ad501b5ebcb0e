package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/pagination"
)

// AllCategories is the quiz category id that draws from every category
const AllCategories = 0

// QuestionPage is one page of questions together with the size of the full set
type QuestionPage struct {
	Questions []domain.Question
	Total     int
}

// CategoryPage is one page of a category listing
type CategoryPage struct {
	Questions []domain.Question
	Total     int
	Category  domain.Category
}

// QuestionListing is the paginated question list plus the category mapping
type QuestionListing struct {
	QuestionPage
	Categories []domain.Category
}

// CreatedQuestion reports an inserted question and the refreshed first page
type CreatedQuestion struct {
	QuestionPage
	ID int
}

// TriviaService implements the API operations on top of a repository
type TriviaService struct {
	repo     domain.TriviaRepository
	pageSize int
	intn     func(n int) int
}

// NewTriviaService creates a new trivia service
func NewTriviaService(repo domain.TriviaRepository) *TriviaService {
	return &TriviaService{
		repo:     repo,
		pageSize: pagination.PageSize,
		intn:     rand.IntN,
	}
}

// ListCategories returns every category, or ErrNoCategories when there are none
func (s *TriviaService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, domain.ErrNoCategories
	}
	return categories, nil
}

// ListQuestions returns one page of all questions ordered by id
func (s *TriviaService) ListQuestions(ctx context.Context, page int) (*QuestionListing, error) {
	questions, err := s.repo.ListQuestions(ctx)
	if err != nil {
		return nil, err
	}

	current := pagination.Paginate(questions, page, s.pageSize)
	if len(current) == 0 {
		return nil, domain.ErrNoQuestions
	}

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	return &QuestionListing{
		QuestionPage: QuestionPage{Questions: current, Total: len(questions)},
		Categories:   categories,
	}, nil
}

// DeleteQuestion removes a question by id
func (s *TriviaService) DeleteQuestion(ctx context.Context, id int) error {
	return s.repo.DeleteQuestion(ctx, id)
}

// CreateQuestion validates and stores q, then returns the requested page of all
// questions so the caller can refresh its list.
func (s *TriviaService) CreateQuestion(ctx context.Context, q domain.Question, page int) (*CreatedQuestion, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetCategory(ctx, q.Category); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return nil, fmt.Errorf("%w: %d", domain.ErrUnknownCategory, q.Category)
		}
		return nil, err
	}

	if err := s.repo.CreateQuestion(ctx, &q); err != nil {
		return nil, err
	}

	questions, err := s.repo.ListQuestions(ctx)
	if err != nil {
		return nil, err
	}

	return &CreatedQuestion{
		QuestionPage: QuestionPage{
			Questions: pagination.Paginate(questions, page, s.pageSize),
			Total:     len(questions),
		},
		ID: q.ID,
	}, nil
}

// SearchQuestions returns one page of questions whose text contains term.
// Total counts every match.
func (s *TriviaService) SearchQuestions(ctx context.Context, term string, page int) (*QuestionPage, error) {
	matches, err := s.repo.SearchQuestions(ctx, term)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, domain.ErrNoMatches
	}

	return &QuestionPage{
		Questions: pagination.Paginate(matches, page, s.pageSize),
		Total:     len(matches),
	}, nil
}

// QuestionsByCategory returns one page of a category's questions. Total counts
// all stored questions, not only the category's.
func (s *TriviaService) QuestionsByCategory(ctx context.Context, categoryID, page int) (*CategoryPage, error) {
	category, err := s.repo.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	questions, err := s.repo.QuestionsByCategory(ctx, category.ID)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.CountQuestions(ctx)
	if err != nil {
		return nil, err
	}

	return &CategoryPage{
		Questions: pagination.Paginate(questions, page, s.pageSize),
		Total:     total,
		Category:  *category,
	}, nil
}

// NextQuizQuestion draws a random question not in previous from the given
// category, or from every category when categoryID is AllCategories.
// It returns nil without error once the candidates are exhausted.
func (s *TriviaService) NextQuizQuestion(ctx context.Context, categoryID int, previous []int) (*domain.Question, error) {
	var (
		candidates []domain.Question
		err        error
	)
	if categoryID == AllCategories {
		candidates, err = s.repo.ListQuestions(ctx)
	} else {
		candidates, err = s.repo.QuestionsByCategory(ctx, categoryID)
	}
	if err != nil {
		return nil, err
	}

	question, ok := NextQuestion(candidates, previous, s.intn)
	if !ok {
		return nil, nil
	}
	return question, nil
}
