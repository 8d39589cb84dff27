package middleware

import (
	"errors"

	"everbright-backend/internal/pkg/response"
	"everbright-backend/internal/report"
	"everbright-backend/internal/tabular"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is the global error handler. It maps the reconciliation error
// taxonomy to HTTP codes and returns the standard error format. Structural
// input problems (missing column, bad score) are the caller's to fix, so they
// carry the offending column/value in details.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"
	details := map[string]interface{}{}

	var schemaErr *tabular.SchemaError
	var scoreErr *report.ScoreFormatError
	var tmplErr *report.TemplateUnavailableError
	var fiberErr *fiber.Error

	switch {
	case errors.As(err, &schemaErr):
		code = fiber.StatusBadRequest
		message = "Uploaded file is missing a required column"
		details["column"] = schemaErr.Column
	case errors.As(err, &scoreErr):
		code = fiber.StatusBadRequest
		message = "Uploaded file contains an unreadable score"
		details["value"] = scoreErr.Value
	case errors.As(err, &tmplErr):
		message = "Report template unavailable"
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
	}

	return response.Error(c, message, code, details)
}
