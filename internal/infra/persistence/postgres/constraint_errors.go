package postgres

import (
	"strings"

	"mpeshop/internal/errors"

	"gorm.io/gorm"
)

// isUniqueConstraintViolation reports whether err came from a unique index
// or duplicate key violation (SQLSTATE 23505).
func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "23505") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint")
}

// isForeignKeyViolation reports whether err is a foreign key constraint
// violation (SQLSTATE 23503).
func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "23503") ||
		strings.Contains(msg, "foreign key constraint")
}
