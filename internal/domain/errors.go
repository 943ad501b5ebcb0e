package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error the API reports to a client wraps exactly one of these.
var (
	ErrNotFound      = errors.New("resource not found")
	ErrUnprocessable = errors.New("unprocessable")
	ErrBadRequest    = errors.New("bad request")
)

// Common errors
var (
	ErrQuestionNotFound = fmt.Errorf("question not found: %w", ErrNotFound)
	ErrCategoryNotFound = fmt.Errorf("category not found: %w", ErrNotFound)
	ErrNoQuestions      = fmt.Errorf("no questions on page: %w", ErrNotFound)
	ErrNoCategories     = fmt.Errorf("no categories: %w", ErrNotFound)
	ErrNoMatches        = fmt.Errorf("no questions match search term: %w", ErrNotFound)

	ErrInvalidQuestion = fmt.Errorf("invalid question: %w", ErrUnprocessable)
	ErrUnknownCategory = fmt.Errorf("question references unknown category: %w", ErrUnprocessable)

	ErrInvalidPage    = fmt.Errorf("invalid page number: %w", ErrBadRequest)
	ErrInvalidQuizReq = fmt.Errorf("previous_questions and quiz_category are required: %w", ErrBadRequest)
)
