package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/pagination"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// TriviaHandler handles the trivia HTTP endpoints
type TriviaHandler struct {
	trivia *service.TriviaService
}

// NewTriviaHandler creates a new trivia handler
func NewTriviaHandler(trivia *service.TriviaService) *TriviaHandler {
	return &TriviaHandler{
		trivia: trivia,
	}
}

// Register registers the trivia routes
func (h *TriviaHandler) Register(e *echo.Echo) {
	e.GET("/categories", h.ListCategories)
	e.GET("/categories/:id/questions", h.QuestionsByCategory)
	e.GET("/questions", h.ListQuestions)
	e.POST("/questions", h.CreateOrSearchQuestions)
	e.DELETE("/questions/:id", h.DeleteQuestion)
	e.POST("/quizzes", h.NextQuizQuestion)
}

// CategoriesResponse is returned by GET /categories
type CategoriesResponse struct {
	Success    bool           `json:"success"`
	Categories map[int]string `json:"categories"`
}

// QuestionsResponse is returned by GET /questions
type QuestionsResponse struct {
	Success        bool              `json:"success"`
	Questions      []domain.Question `json:"questions"`
	TotalQuestions int               `json:"total_questions"`
	Categories     map[int]string    `json:"categories"`
}

// DeleteResponse is returned by DELETE /questions/:id
type DeleteResponse struct {
	Success  bool `json:"success"`
	Question int  `json:"question"`
}

// CreateResponse is returned when POST /questions creates a question
type CreateResponse struct {
	Success         bool              `json:"success"`
	CreatedQuestion int               `json:"created_question"`
	Questions       []domain.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
}

// SearchResponse is returned when POST /questions runs a search
type SearchResponse struct {
	Success        bool              `json:"success"`
	SearchTerm     string            `json:"searchTerm"`
	Questions      []domain.Question `json:"questions"`
	TotalQuestions int               `json:"total_questions"`
}

// CategoryQuestionsResponse is returned by GET /categories/:id/questions
type CategoryQuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []domain.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory string            `json:"current_category"`
}

// QuizResponse is returned by POST /quizzes. Question is omitted once every
// candidate has been asked.
type QuizResponse struct {
	Success  bool             `json:"success"`
	Question *domain.Question `json:"question,omitempty"`
}

// ListCategories handles GET /categories
func (h *TriviaHandler) ListCategories(c echo.Context) error {
	categories, err := h.trivia.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, CategoriesResponse{
		Success:    true,
		Categories: domain.CategoryMap(categories),
	})
}

// ListQuestions handles GET /questions?page=N
func (h *TriviaHandler) ListQuestions(c echo.Context) error {
	page, err := pagination.ParsePage(c.QueryParam("page"))
	if err != nil {
		return err
	}

	listing, err := h.trivia.ListQuestions(c.Request().Context(), page)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, QuestionsResponse{
		Success:        true,
		Questions:      listing.Questions,
		TotalQuestions: listing.Total,
		Categories:     domain.CategoryMap(listing.Categories),
	})
}

// DeleteQuestion handles DELETE /questions/:id
func (h *TriviaHandler) DeleteQuestion(c echo.Context) error {
	id, err := pathID(c, domain.ErrQuestionNotFound)
	if err != nil {
		return err
	}

	if err := h.trivia.DeleteQuestion(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, DeleteResponse{
		Success:  true,
		Question: id,
	})
}

// CreateOrSearchQuestions handles POST /questions. A body carrying searchTerm
// runs a search; any other body creates a question.
func (h *TriviaHandler) CreateOrSearchQuestions(c echo.Context) error {
	page, err := pagination.ParsePage(c.QueryParam("page"))
	if err != nil {
		return err
	}

	var req QuestionsRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnprocessable, err)
	}

	if req.SearchTerm != "" {
		return h.searchQuestions(c, req.SearchTerm, page)
	}
	return h.createQuestion(c, req, page)
}

func (h *TriviaHandler) searchQuestions(c echo.Context, term string, page int) error {
	result, err := h.trivia.SearchQuestions(c.Request().Context(), term, page)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, SearchResponse{
		Success:        true,
		SearchTerm:     term,
		Questions:      result.Questions,
		TotalQuestions: result.Total,
	})
}

func (h *TriviaHandler) createQuestion(c echo.Context, req QuestionsRequest, page int) error {
	if err := c.Validate(&req); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidQuestion, err)
	}

	created, err := h.trivia.CreateQuestion(c.Request().Context(), domain.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   int(req.Category),
		Difficulty: int(req.Difficulty),
	}, page)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CreateResponse{
		Success:         true,
		CreatedQuestion: created.ID,
		Questions:       created.Questions,
		TotalQuestions:  created.Total,
	})
}

// QuestionsByCategory handles GET /categories/:id/questions
func (h *TriviaHandler) QuestionsByCategory(c echo.Context) error {
	id, err := pathID(c, domain.ErrCategoryNotFound)
	if err != nil {
		return err
	}

	page, err := pagination.ParsePage(c.QueryParam("page"))
	if err != nil {
		return err
	}

	result, err := h.trivia.QuestionsByCategory(c.Request().Context(), id, page)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, CategoryQuestionsResponse{
		Success:         true,
		Questions:       result.Questions,
		TotalQuestions:  result.Total,
		CurrentCategory: result.Category.Type,
	})
}

// NextQuizQuestion handles POST /quizzes
func (h *TriviaHandler) NextQuizQuestion(c echo.Context) error {
	var req QuizRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBadRequest, err)
	}
	if req.PreviousQuestions == nil || req.QuizCategory == nil {
		return domain.ErrInvalidQuizReq
	}

	question, err := h.trivia.NextQuizQuestion(c.Request().Context(), int(req.QuizCategory.ID), *req.PreviousQuestions)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, QuizResponse{
		Success:  true,
		Question: question,
	})
}

// pathID parses the :id path parameter. Ids that are not integers cannot name
// an existing row, so they are reported as notFound.
func pathID(c echo.Context, notFound error) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", notFound, c.Param("id"))
	}
	return id, nil
}
