// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w: "<Method>: <detail>: <sentinel>".
//   • Option constructors (WithX) panic on meaningless inputs instead.

package builder

import "errors"

// ErrTooFewVariables indicates that a size parameter (n, rows, cols) is
// below the minimum for the requested constructor.
var ErrTooFewVariables = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that the graph rejected an insertion while a
// constructor was running (for example a name collision with an earlier
// constructor), or that a nil constructor was supplied.
var ErrConstructFailed = errors.New("builder: construction failed")
