// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source for testability.
//
// The shell stamps every history entry with the time it was entered.
// Production code takes a Clock instead of calling time.Now directly:
// Real() provides the standard library behavior, and Fake() provides a
// clock that moves only when the test calls Advance or Set, so history
// timestamps are deterministic.
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	sh := shell.New(shell.WithClock(c))
//	sh.Execute("status", out)
//	c.Advance(5 * time.Second)
//	sh.Execute("status", out) // stamped five seconds later
package clock
