// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for cmdshell packages.
//
// [WriteFile] writes a fixture, typically a config file, into a
// per-test temporary directory and returns its path.
//
// [RequireClosed] encapsulates the timeout safety valve pattern
// (select with time.After fallback) for tests that wait on another
// goroutine, so individual tests do not need direct time.After calls.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no cmdshell-internal dependencies.
package testutil
