package db

import "strings"

// IsUniqueViolation reports whether the provided error is a unique constraint
// violation from either supported driver. When constraintName is provided, the
// helper looks for the constraint text in the error message.
func IsUniqueViolation(err error, constraintName string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if constraintName != "" {
		return strings.Contains(msg, constraintName)
	}
	// "duplicate key value" is Postgres, "UNIQUE constraint failed" is SQLite.
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
