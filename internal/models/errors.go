package models

import (
	"errors"
	"fmt"

	"devconnect/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Error codes used across the application error taxonomy.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeNotFound     = "NOT_FOUND"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeInternal     = "INTERNAL_ERROR"
)

// ErrorResponse is the single-message API error body.
type ErrorResponse struct {
	Msg string `json:"msg"`
}

// FieldError is one entry of a field-level validation error body.
type FieldError struct {
	Msg string `json:"msg"`
}

// FieldErrorResponse is the multi-message validation error body.
type FieldErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

// AppError is the application error type. Code classifies the failure,
// Message is safe to surface to clients, Err (if set) is the internal cause
// and is logged but never serialized.
type AppError struct {
	Code    string
	Message string
	Fields  []string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: resource + " not found",
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

// NewFieldErrors wraps one message per invalid field, rendered as
// {"errors":[{"msg":...},...]}.
func NewFieldErrors(messages ...string) *AppError {
	msg := "Validation failed"
	if len(messages) > 0 {
		msg = messages[0]
	}
	return &AppError{
		Code:    CodeValidation,
		Message: msg,
		Fields:  messages,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Server error",
		Err:     err,
	}
}

// IsNotFound reports whether err is a not-found application error.
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == CodeNotFound
}

// RespondWithError writes the standardized error body for err. Internal
// errors are logged with their cause and surfaced as an opaque message;
// everything else surfaces only the client-safe Message.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	appErr, ok := err.(*AppError)
	if !ok {
		appErr = NewInternalError(err)
	}

	if appErr.Code == CodeInternal {
		middleware.Logger.ErrorContext(c.UserContext(), "request failed with internal error",
			"error", appErr.Error(),
			"path", c.Path(),
		)
		return c.Status(status).JSON(ErrorResponse{Msg: appErr.Message})
	}

	if len(appErr.Fields) > 0 {
		body := FieldErrorResponse{}
		for _, m := range appErr.Fields {
			body.Errors = append(body.Errors, FieldError{Msg: m})
		}
		return c.Status(status).JSON(body)
	}

	return c.Status(status).JSON(ErrorResponse{Msg: appErr.Message})
}

// StatusForError maps an application error to its HTTP status: validation and
// not-found map to 400, authorization failures to 401, everything else to 500.
// Not-found and unauthorized intentionally stay distinct so callers can tell
// "resource absent" from "resource present but not owned".
func StatusForError(err error) int {
	appErr, ok := err.(*AppError)
	if !ok {
		return fiber.StatusInternalServerError
	}
	switch appErr.Code {
	case CodeValidation, CodeNotFound:
		return fiber.StatusBadRequest
	case CodeUnauthorized:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}
