// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package netinfo

import "fmt"

// ErrorKind discriminates the failure classes of a PlatformError.
type ErrorKind int

const (
	// ErrorKindNativeCall indicates the underlying OS primitive reported
	// an error. The OS error is wrapped, not swallowed.
	ErrorKindNativeCall ErrorKind = iota + 1
	// ErrorKindUnsupportedPlatform indicates no backend is compiled for
	// the running OS.
	ErrorKindUnsupportedPlatform
	// ErrorKindTruncation indicates a fixed-size buffer was insufficient
	// even after one retry.
	ErrorKindTruncation
)

// String returns a string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindNativeCall:
		return "native call failure"
	case ErrorKindUnsupportedPlatform:
		return "unsupported platform"
	case ErrorKindTruncation:
		return "truncation"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// PlatformError is the unified error returned by every query in this
// package. Only Kind is part of the contract; the error text is OS and
// locale dependent.
type PlatformError struct {
	// Kind is the failure class.
	Kind ErrorKind

	// Op names the native operation that failed.
	Op string

	// Err is the underlying OS error, when there is one.
	Err error
}

func (e *PlatformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("netinfo: %s: %s: %v", e.Op, e.Kind, e.Err)
	}

	return fmt.Sprintf("netinfo: %s: %s", e.Op, e.Kind)
}

// Unwrap returns the underlying OS error, if any.
func (e *PlatformError) Unwrap() error { return e.Err }

func newNativeErr(op string, err error) error {
	return &PlatformError{Kind: ErrorKindNativeCall, Op: op, Err: err}
}

func newUnsupportedErr(op string) error {
	return &PlatformError{Kind: ErrorKindUnsupportedPlatform, Op: op}
}

func newTruncationErr(op string) error {
	return &PlatformError{Kind: ErrorKindTruncation, Op: op}
}
