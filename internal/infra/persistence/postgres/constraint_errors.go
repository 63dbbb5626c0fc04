package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Constraint classes reported to callers as the store error code.
const (
	codeUniqueViolation     = "unique_violation"
	codeForeignKeyViolation = "foreign_key_violation"
	codeNotNullViolation    = "not_null_violation"
	codeCheckViolation      = "check_violation"
	codeDatabaseError       = "database_error"
)

// Both PostgreSQL and SQLite errors are recognised. gorm translates them when the dialector supports it,
// the message checks cover connections opened without TranslateError.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint failed") ||
		strings.Contains(msg, "23505")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "foreign key constraint") || strings.Contains(msg, "23503")
}

func isNotNullConstraintViolation(err error) bool {
	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "null value") ||
		strings.Contains(msg, "not null constraint") ||
		strings.Contains(msg, "23502")
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "check constraint") || strings.Contains(msg, "23514")
}

// classifyWriteError maps a write failure to a store code and a hint for the operator.
func classifyWriteError(err error) (code, hint string) {
	switch {
	case isUniqueConstraintViolation(err):
		return codeUniqueViolation, "a record with the same key already exists"
	case isForeignKeyConstraintViolation(err):
		return codeForeignKeyViolation, "a referenced record does not exist"
	case isNotNullConstraintViolation(err):
		return codeNotNullViolation, "a required column was empty"
	case isCheckConstraintViolation(err):
		return codeCheckViolation, "a value is outside the allowed range"
	default:
		return codeDatabaseError, ""
	}
}
