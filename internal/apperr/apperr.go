// Copyright 2026 Shulsign
// Licensed under the EUPL-1.2

// Package apperr defines the error taxonomy shared by services and handlers.
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an error for HTTP mapping.
type Kind int

const (
	// KindValidation marks malformed or missing caller input.
	KindValidation Kind = iota
	// KindConflict marks a duplicate-identity collision.
	KindConflict
	// KindAuth marks an invalid or expired token.
	KindAuth
	// KindPersistence marks a failure of the backing store.
	KindPersistence
	// KindDelivery marks a mail transport failure. Never surfaced as a
	// failed request; attached as info to an otherwise successful response.
	KindDelivery
)

// Error carries a kind and a short, user-safe message.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches two taxonomy errors by kind, so that
// errors.Is(err, apperr.Validation("")) works in tests and handlers.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// Validation creates a KindValidation error.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Msg: msg}
}

// Conflict creates a KindConflict error.
func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Msg: msg}
}

// Auth creates a KindAuth error.
func Auth(msg string) *Error {
	return &Error{Kind: KindAuth, Msg: msg}
}

// Persistence creates a KindPersistence error wrapping the store failure.
func Persistence(msg string, err error) *Error {
	return &Error{Kind: KindPersistence, Msg: msg, Err: err}
}

// Delivery creates a KindDelivery error wrapping the transport failure.
func Delivery(msg string, err error) *Error {
	return &Error{Kind: KindDelivery, Msg: msg, Err: err}
}

// Message returns the user-safe message for err. Unclassified errors get a
// generic message so internal detail never leaks to the client.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return "Unexpected error. Please try again."
}

// HTTPStatus maps an error to its HTTP status code. Unclassified errors map
// to 500, same as KindPersistence.
func HTTPStatus(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindAuth:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
