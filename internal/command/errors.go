// Reelbase - Media Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelbase

package command

import (
	"errors"
	"fmt"
)

// Sentinel errors for rejected commands. They are never fatal: the engine
// renders them into the action's result line.
var (
	// ErrNotSeen is returned when the title is absent from the user's history.
	ErrNotSeen = errors.New("not seen")

	// ErrAlreadyFavorite is returned when the title is already a favorite.
	ErrAlreadyFavorite = errors.New("already in favourite list")

	// ErrAlreadyRated is returned for a repeated movie or season rating.
	ErrAlreadyRated = errors.New("already rated")

	// ErrUnknownUser is returned when the action names no catalog user.
	ErrUnknownUser = errors.New("unknown user")

	// ErrUnsupported is returned for an unrecognized command kind.
	ErrUnsupported = errors.New("unsupported command")
)

// Error is a rejected command. Error() yields the exact result line.
type Error struct {
	// Subject is the title, or the username for ErrUnknownUser, or the
	// command kind for ErrUnsupported.
	Subject string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case errors.Is(e.Err, ErrNotSeen):
		return fmt.Sprintf("error -> %s is not seen", e.Subject)
	case errors.Is(e.Err, ErrAlreadyFavorite):
		return fmt.Sprintf("error -> %s is already in favourite list", e.Subject)
	case errors.Is(e.Err, ErrAlreadyRated):
		return fmt.Sprintf("error -> %s has been already rated", e.Subject)
	case errors.Is(e.Err, ErrUnknownUser):
		return fmt.Sprintf("error -> %s is not a known user", e.Subject)
	default:
		return fmt.Sprintf("error -> %s: %v", e.Subject, e.Err)
	}
}

// Unwrap returns the sentinel.
func (e *Error) Unwrap() error {
	return e.Err
}

func reject(subject string, err error) *Error {
	return &Error{Subject: subject, Err: err}
}
