// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package builtin provides stock commands a host can mount on a
// [shell.Shell]: alias management, history listing, identifier
// binding, command search, help and echo.
//
// Every builtin carries the shell as its baton and reaches it through
// [command.BatonAs], so builtins installed on one shell never act on
// another.
package builtin
