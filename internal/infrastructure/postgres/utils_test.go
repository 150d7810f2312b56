package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
	assert.True(t, isUniqueViolation(pgErr))
	assert.True(t, isUniqueViolation(fmt.Errorf("exec: %w", pgErr)))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
	assert.True(t, isCheckViolation(&pgconn.PgError{Code: "23514"}))
	assert.False(t, isCheckViolation(pgErr))
}

func TestRedact_OcultaPassword(t *testing.T) {
	out := redact("postgres://tz:s3cr3t@db:5432/tunezone?sslmode=disable")
	assert.NotContains(t, out, "s3cr3t")
	assert.Contains(t, out, "db:5432")
}

func TestNonNil(t *testing.T) {
	assert.NotNil(t, nonNil(nil))
	assert.Equal(t, []string{"a"}, nonNil([]string{"a"}))
}
