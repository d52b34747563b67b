// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package message

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bureau-foundation/cmdshell/lib/output"
)

func TestMerge(t *testing.T) {
	merged := Default().Merge(Templates{InvalidCommand: "unknown command", Replay: "again: %s"})
	if merged.InvalidCommand != "unknown command" || merged.Replay != "again: %s" {
		t.Errorf("overrides not applied: %+v", merged)
	}
	if merged.DidYouMean != Default().DidYouMean {
		t.Errorf("DidYouMean = %q, want the default kept", merged.DidYouMean)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		templates Templates
		wantErr   bool
	}{
		{"empty overrides", Templates{}, false},
		{"defaults", Default(), false},
		{"same verb count", Templates{NoSubcommand: "'%s' is not a subcommand"}, false},
		{"escaped percent", Templates{InvalidCommand: "100%% unknown"}, false},
		{"missing verb", Templates{UnableToFind: "not found"}, true},
		{"extra verb", Templates{DidYouMean: "did you mean %s:"}, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.templates.Validate()
			if (err != nil) != test.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, test.wantErr)
			}
		})
	}
}

func TestCatalog_Phrases(t *testing.T) {
	catalog := New(Templates{})
	buffer := output.NewBuffer()

	catalog.InvalidCommand(buffer)
	catalog.DidYouMean(buffer)
	catalog.Candidates(buffer, []string{"status", "start"})
	catalog.CommandFailed(buffer, "stat")

	want := []string{
		"  invalid command",
		"  did you mean:",
		"    status",
		"    start",
		"  command failed: stat",
	}
	if diff := cmp.Diff(want, buffer.Lines()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalog_AliasCount(t *testing.T) {
	catalog := New(Templates{})
	buffer := output.NewBuffer()
	catalog.AliasCount(buffer, 0)
	catalog.AliasCount(buffer, 3)

	want := []string{"  no aliases", "  3 aliases:"}
	if diff := cmp.Diff(want, buffer.Lines()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalog_ReplayIsNotIndented(t *testing.T) {
	catalog := New(Templates{})
	buffer := output.NewBuffer()
	catalog.Replay(buffer, "service status")
	if got := buffer.String(); got != "> service status\n" {
		t.Errorf("Replay wrote %q, want an unindented echo", got)
	}
}

func TestCatalog_Usage(t *testing.T) {
	catalog := New(Templates{Description: "about: %s"})
	buffer := output.NewBuffer()
	catalog.Usage(buffer, "service start", "<name>", "Start a service")
	catalog.Usage(buffer, "service stop", "<name>", "")
	catalog.Usage(buffer, "service", "", "")

	want := []string{
		"  usage: service start <name>",
		"  about: Start a service",
		"  usage: service stop <name>",
		"  usage: service",
	}
	if diff := cmp.Diff(want, buffer.Lines()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}
