package transport

import (
	"errors"
	"net/http"

	"github.com/rpggio/itemboard/internal/domain/item"
)

// MapError maps domain errors to an HTTP status and envelope error.
// Unrecognized errors become 500 INTERNAL without leaking their text.
func MapError(err error) (int, *APIError) {
	switch {
	case errors.Is(err, item.ErrInvalidInput):
		return http.StatusBadRequest, &APIError{Code: CodeInvalidInput, Message: err.Error()}
	case errors.Is(err, item.ErrItemNotFound):
		return http.StatusNotFound, &APIError{Code: CodeNotFound, Message: "item not found"}
	default:
		return http.StatusInternalServerError, &APIError{Code: CodeInternal, Message: "internal error"}
	}
}
