package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// New and friends are re-exported so callers only need this package.
var (
	New = errors.New
	Is  = errors.Is
	As  = errors.As
)

// Categorized failures. Every failure the platform reports to a client is one
// of these; anything else is treated as an internal error and surfaces only a
// generic message.
var (
	ErrTokenExpired           = errors.New("token_expired")
	ErrTokenMalformed         = errors.New("token_malformed")
	ErrTokenUnsupported       = errors.New("token_unsupported")
	ErrPrincipalNotFound      = errors.New("principal_not_found")
	ErrAuthenticationRequired = errors.New("authentication_required")
	ErrForbidden              = errors.New("forbidden")
	ErrNotFound               = errors.New("not_found")
	ErrDuplicateEntry         = errors.New("duplicate_entry")
	ErrInvalidArgument        = errors.New("invalid_argument")
	ErrServerError            = errors.New("server_error")
)

// Descriptions are the client-safe default messages per category.
var Descriptions = map[error]string{
	ErrTokenExpired:           "authentication token has expired",
	ErrTokenMalformed:         "authentication token is malformed",
	ErrTokenUnsupported:       "authentication token uses an unsupported signing scheme",
	ErrPrincipalNotFound:      "user associated with token not found",
	ErrAuthenticationRequired: "authentication required",
	ErrForbidden:              "operation not permitted",
	ErrNotFound:               "resource not found",
	ErrDuplicateEntry:         "duplicate entry",
	ErrInvalidArgument:        "invalid argument",
	ErrServerError:            "an internal server error occurred",
}

// StatusCodes maps each category to its HTTP status.
var StatusCodes = map[error]int{
	ErrTokenExpired:           http.StatusUnauthorized,
	ErrTokenMalformed:         http.StatusUnauthorized,
	ErrTokenUnsupported:       http.StatusUnauthorized,
	ErrPrincipalNotFound:      http.StatusUnauthorized,
	ErrAuthenticationRequired: http.StatusUnauthorized,
	ErrForbidden:              http.StatusForbidden,
	ErrNotFound:               http.StatusNotFound,
	ErrDuplicateEntry:         http.StatusConflict,
	ErrInvalidArgument:        http.StatusBadRequest,
	ErrServerError:            http.StatusInternalServerError,
}

type wrapped struct {
	category error
	message  string
}

func (w *wrapped) Error() string { return w.message }
func (w *wrapped) Unwrap() error { return w.category }

// WithMessage attaches a client-safe message to a category. The result still
// matches the category under errors.Is.
func WithMessage(category error, message string) error {
	return &wrapped{category: category, message: message}
}

// WithMessagef is WithMessage with formatting.
func WithMessagef(category error, format string, args ...interface{}) error {
	return &wrapped{category: category, message: fmt.Sprintf(format, args...)}
}

// Category returns the known category an error belongs to, or ErrServerError.
func Category(err error) error {
	for cat := range StatusCodes {
		if errors.Is(err, cat) {
			return cat
		}
	}
	return ErrServerError
}

// StatusCode returns the HTTP status for err, 500 for uncategorized errors.
func StatusCode(err error) int {
	if code, ok := StatusCodes[Category(err)]; ok {
		return code
	}
	return http.StatusInternalServerError
}

// Description returns the client-safe message for err. Wrapped messages win
// over the category default; uncategorized errors never leak their text.
func Description(err error) string {
	cat := Category(err)
	if cat != ErrServerError {
		var w *wrapped
		if errors.As(err, &w) {
			return w.message
		}
	}
	return Descriptions[cat]
}
