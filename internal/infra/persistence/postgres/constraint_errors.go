package postgres

import (
	"strings"
)

// isNotNullConstraintViolation reports PostgreSQL not_null_violation errors (SQLSTATE 23502).
func isNotNullConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502")
}
