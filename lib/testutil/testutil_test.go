// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"fmt"
	"os"
	"testing"
	"time"
)

// fatalRecorder captures Fatalf instead of stopping the test.
type fatalRecorder struct {
	message string
}

func (r *fatalRecorder) Helper() {}

func (r *fatalRecorder) Fatalf(format string, args ...any) {
	r.message = fmt.Sprintf(format, args...)
}

func TestRequireClosed(t *testing.T) {
	closed := make(chan struct{})
	close(closed)
	RequireClosed(t, closed, time.Second, "already closed")

	recorder := &fatalRecorder{}
	RequireClosed(recorder, make(chan struct{}), time.Millisecond, "waiting for %s", "nothing")
	if recorder.message != "timed out after 1ms waiting for channel close: waiting for nothing" {
		t.Errorf("Fatalf message = %q", recorder.message)
	}
}

func TestWriteFile(t *testing.T) {
	path := WriteFile(t, "fixture.yaml", "key: value\n")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}
	if string(data) != "key: value\n" {
		t.Errorf("fixture = %q", data)
	}
}
