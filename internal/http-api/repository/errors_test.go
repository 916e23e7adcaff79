package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}

	assert.True(t, IsUniqueViolation(pgErr))
	// Classification survives wrapping, including through PersistError.
	assert.True(t, IsUniqueViolation(fmt.Errorf("create user: %w", pgErr)))
	assert.True(t, IsUniqueViolation(&PersistError{Op: "user", Err: pgErr}))

	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
}

func TestPersistError_Unwrap(t *testing.T) {
	inner := errors.New("deadlock detected")
	err := &PersistError{Op: "game", Err: inner}

	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "persist game")
}
