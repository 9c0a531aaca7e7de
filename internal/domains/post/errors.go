package post

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// Business rule errors
	ErrPostNotFound   = errors.New("post not found")
	ErrInvalidPostID  = errors.New("invalid post id")
	ErrSaveInProgress = errors.New("a save for this post is already in progress")

	// Infrastructure errors
	ErrDatabaseQuery = errors.New("database query error")
)

// ToErrorCode converts an error to the API error code.
func ToErrorCode(err error) string {
	var verr validation.Errors
	switch {
	case errors.Is(err, ErrPostNotFound):
		return "POST_NOT_FOUND"
	case errors.Is(err, ErrInvalidPostID):
		return "INVALID_POST_ID"
	case errors.Is(err, ErrSaveInProgress):
		return "SAVE_IN_PROGRESS"
	case errors.As(err, &verr):
		return "VALIDATION_FAILED"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts an error to the HTTP status code.
func ToHTTPStatus(err error) int {
	var verr validation.Errors
	switch {
	case errors.Is(err, ErrPostNotFound):
		return 404
	case errors.Is(err, ErrInvalidPostID):
		return 400
	case errors.Is(err, ErrSaveInProgress):
		return 409
	case errors.As(err, &verr):
		return 400
	default:
		return 500
	}
}
