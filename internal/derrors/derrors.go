// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package derrors defines internal error values to categorize the different
// types error semantics we support.
package derrors

import (
	"errors"
	"fmt"
)

//lint:file-ignore ST1012 prefixing error values with Err would stutter

var (
	// NotFound indicates that a requested file or object was not found.
	NotFound = errors.New("not found")
	// InvalidArgument indicates that the input is invalid in some way.
	InvalidArgument = errors.New("invalid argument")

	// EmptyInput indicates that a frequency table has no entries, so no
	// tree can be built from it.
	EmptyInput = errors.New("empty input")
	// MalformedHeader indicates that the record count or a record field of
	// a compressed header refers to an index or size that is out of range.
	MalformedHeader = errors.New("malformed header")
	// CodeLookupFailure indicates that a symbol has no code in the code
	// table, or no leaf in the tree.
	CodeLookupFailure = errors.New("code lookup failure")
	// TruncatedPayload indicates that the packed bitstream ended before the
	// declared number of symbols was decoded.
	TruncatedPayload = errors.New("truncated payload")
)

var exitCodes = []struct {
	err  error
	code int
}{
	{InvalidArgument, 2},
	{NotFound, 3},
	{EmptyInput, 4},
	{MalformedHeader, 5},
	{CodeLookupFailure, 6},
	{TruncatedPayload, 7},
}

// ToExitCode returns a process exit code corresponding to err.
// A nil error is 0, and an error with unknown semantics is 1.
func ToExitCode(err error) int {
	if err == nil {
		return 0
	}
	for _, e := range exitCodes {
		if errors.Is(err, e.err) {
			return e.code
		}
	}
	return 1
}

// Wrap adds context to the error and allows
// unwrapping the result to recover the original error.
//
// Example:
//
//	defer derrors.Wrap(&err, "copy(%s, %s)", src, dst)
func Wrap(errp *error, format string, args ...interface{}) {
	if *errp != nil {
		*errp = fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), *errp)
	}
}
