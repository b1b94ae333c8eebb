// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package gateway

import (
	"errors"
	"fmt"
)

// Failure kinds. Every error returned by a Gateway matches exactly one of
// these with errors.Is.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrRead       = errors.New("read failed")
	ErrWrite      = errors.New("write failed")
	ErrUpload     = errors.New("upload failed")
)

// Error is a gateway failure: a kind, the operation that failed, and the
// backend cause. errors.Is matches both the kind and anything in the cause.
type Error struct {
	Kind error
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Fail wraps err as a failure of the given kind. An err that already
// carries a kind is returned unchanged.
func Fail(kind error, op string, err error) error {
	var gerr *Error
	if errors.As(err, &gerr) {
		return err
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf returns the failure kind of err, or nil when err is not a
// gateway failure.
func KindOf(err error) error {
	for _, kind := range []error{ErrNotFound, ErrValidation, ErrRead, ErrWrite, ErrUpload} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
