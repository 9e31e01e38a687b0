package viewmodel

import (
	"errors"

	"github.com/khatasathi/inventory-admin/internal/client"
)

var (
	// ErrInvalidTransition is returned when a dialog action is not allowed from the current state.
	ErrInvalidTransition = errors.New("invalid dialog transition")
	// ErrStaleResponse is returned when a newer load was issued before this one completed.
	ErrStaleResponse = errors.New("stale response discarded")
	ErrInvalidPageSize = errors.New("unsupported page size")
	ErrInvalidFilter   = errors.New("unsupported filter value")
	ErrInvalidStatus   = errors.New("unsupported product status")
	ErrUnknownProduct  = errors.New("product is not on the current page")
)

// ValidationError reports missing required draft fields. No request is made.
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// message returns the collaborator's message for err, or fallback.
func message(err error, fallback string) string {
	var reqErr *client.RequestError
	if errors.As(err, &reqErr) && reqErr.Message != "" {
		return reqErr.Message
	}
	return fallback
}
