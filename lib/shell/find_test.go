// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package shell

import "testing"

func TestFind(t *testing.T) {
	f := newFixture(t)

	results := f.shell.Find("svcstat")
	if len(results) == 0 {
		t.Fatal("Find(svcstat) returned nothing")
	}
	if results[0].Path != "service status" {
		t.Errorf("best match = %q, want %q", results[0].Path, "service status")
	}
	for _, result := range results {
		if result.Node.Path() != result.Path {
			t.Errorf("result path %q does not match node %q", result.Path, result.Node.Path())
		}
	}

	if all := f.shell.Find(""); len(all) != 5 {
		t.Errorf("Find(\"\") returned %d commands, want 5", len(all))
	}
	if none := f.shell.Find("zzzz"); len(none) != 0 {
		t.Errorf("Find(zzzz) = %v, want nothing", none)
	}
}

func TestApropos(t *testing.T) {
	f := newFixture(t)
	f.service.Child("start").Description = "Start the service"
	f.service.Child("stop").Description = "Stop the service"
	f.shell.Commands()[1].Description = "Integer arithmetic"

	results := f.shell.Apropos("arith")
	if len(results) != 1 || results[0].Path != "math" {
		t.Fatalf("Apropos(arith) = %+v, want only math", results)
	}

	results = f.shell.Apropos("STOP")
	if len(results) != 1 || results[0].Path != "service stop" {
		t.Errorf("Apropos(STOP) = %+v, want only service stop", results)
	}
}
