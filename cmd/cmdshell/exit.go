// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import "fmt"

// exitError signals a non-zero exit code without printing an extra
// error message. The shell has already reported the failing statement
// through its own output.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// ExitCode returns the exit code. main checks for this method to
// distinguish a handled failure from an unexpected error.
func (e *exitError) ExitCode() int {
	return e.code
}
