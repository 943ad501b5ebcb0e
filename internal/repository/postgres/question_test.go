package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

func TestInsertError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"foreign key", &pgconn.PgError{Code: pgForeignKeyViolation}, domain.ErrUnknownCategory},
		{"not null", &pgconn.PgError{Code: pgNotNullViolation}, domain.ErrInvalidQuestion},
		{"check", &pgconn.PgError{Code: pgCheckViolation}, domain.ErrInvalidQuestion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := insertError(tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, domain.ErrUnprocessable)
		})
	}
}

func TestInsertErrorPassesThroughOtherFailures(t *testing.T) {
	cause := errors.New("connection reset")
	got := insertError(cause)
	assert.ErrorIs(t, got, cause)
	assert.NotErrorIs(t, got, domain.ErrUnprocessable)

	got = insertError(&pgconn.PgError{Code: "23505"})
	assert.NotErrorIs(t, got, domain.ErrUnprocessable)
}
