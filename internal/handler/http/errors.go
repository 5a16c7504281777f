// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
)

// errInvalidJSON is returned by request decoders when the body is present but
// is not valid JSON.
var errInvalidJSON = errors.New("invalid JSON was passed")

// errRouteNotFound and errMethodNotAllowed back the router fallbacks.
var (
	errRouteNotFound    = errors.New("route not found")
	errMethodNotAllowed = errors.New("method not allowed")
)

// APIError is the transport form of any error leaving the handlers: an HTTP
// status code plus the message placed in the {"error": ...} envelope.
type APIError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// newAPIError classifies err through [errorStatusMap] and [errorMessageMap].
// Unknown errors become 500 carrying the text of the innermost cause.
func newAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	status := statusFromError(err)
	message := messageFromError(err)
	if message == "" {
		if status == http.StatusInternalServerError {
			message = rootCause(err).Error()
		} else {
			message = http.StatusText(status)
		}
	}

	return &APIError{Status: status, Message: message}
}

// rootCause unwraps err down to the error it was built from. Multi-wrapped
// errors ("%w: %w", errors.Join) are followed through their last element,
// which is where the layers put the underlying cause.
func rootCause(err error) error {
	for {
		switch wrapped := err.(type) {
		case interface{ Unwrap() []error }:
			causes := wrapped.Unwrap()
			if len(causes) == 0 {
				return err
			}
			err = causes[len(causes)-1]
		case interface{ Unwrap() error }:
			next := wrapped.Unwrap()
			if next == nil {
				return err
			}
			err = next
		default:
			return err
		}
	}
}
