package middleware

import (
	"net/http"

	domainerrors "containerview/internal/domain/errors"
	"containerview/internal/errors"

	"github.com/labstack/echo/v4"
)

// StatusOf predicts the status the error handler will write for err.
func StatusOf(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
