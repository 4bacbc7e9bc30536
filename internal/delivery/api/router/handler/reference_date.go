package handler

import (
	"strings"
	"time"

	"fleetalert/internal/domain/alert"
	domainerrors "fleetalert/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

const dateQueryParam = "date"

// referenceDate reads the optional ?date=YYYY-MM-DD parameter. A zero time means "today".
func referenceDate(c echo.Context) (time.Time, error) {
	value := strings.TrimSpace(c.QueryParam(dateQueryParam))
	if value == "" {
		return time.Time{}, nil
	}

	ref, err := alert.ParseDate(value)
	if err != nil {
		return time.Time{}, domainerrors.ErrInvalidReferenceDate.WithDetails(value)
	}

	return ref, nil
}
