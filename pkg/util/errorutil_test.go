package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainError(t *testing.T) {
	t.Run("passes through existing domain errors", func(t *testing.T) {
		orig := NewPreconditionFailed("cannot check out without checking in first", nil)
		mapped := ToDomainError(orig)
		require.NotNil(t, mapped)
		assert.Equal(t, "PRECONDITION_FAILED", mapped.Code)
		assert.Equal(t, http.StatusBadRequest, mapped.HTTPStatus)
	})

	t.Run("maps missing rows to not found", func(t *testing.T) {
		mapped := ToDomainError(pgx.ErrNoRows)
		require.NotNil(t, mapped)
		assert.Equal(t, "NOT_FOUND", mapped.Code)
		assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
	})

	t.Run("maps unique violations to conflict", func(t *testing.T) {
		mapped := ToDomainError(&pgconn.PgError{Code: "23505", ConstraintName: "departments_name_key"})
		require.NotNil(t, mapped)
		assert.Equal(t, "CONFLICT", mapped.Code)
		assert.Equal(t, http.StatusConflict, mapped.HTTPStatus)
		assert.Equal(t, "departments_name_key", mapped.Details["constraint"])
	})

	t.Run("maps foreign key violations to validation failure", func(t *testing.T) {
		mapped := ToDomainError(&pgconn.PgError{Code: "23503", ConstraintName: "staff_department_id_fkey"})
		require.NotNil(t, mapped)
		assert.Equal(t, "VALIDATION_FAILED", mapped.Code)
	})

	t.Run("wraps unknown errors as internal", func(t *testing.T) {
		cause := errors.New("connection refused")
		mapped := ToDomainError(cause)
		require.NotNil(t, mapped)
		assert.Equal(t, "INTERNAL_ERROR", mapped.Code)
		assert.ErrorIs(t, mapped, cause)
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, ToDomainError(nil))
	})
}
