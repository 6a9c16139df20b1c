package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable means the backend could not be reached at all.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized means the backend rejected the session token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrAccountPendingDeletion is the 409-on-login case: the account is
	// soft-deleted and the backend is offering a restore.
	ErrAccountPendingDeletion = errors.New("account pending deletion")
)

// Error is a failed backend response: a non-2xx status or an envelope with
// success=false. Detail carries the server-provided message for dialog
// display, falling back to a generic string.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// Is lets errors.Is match the unauthorized sentinel without losing Detail.
func (e *Error) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}
