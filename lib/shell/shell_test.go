// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package shell

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/bureau-foundation/cmdshell/lib/clock"
	"github.com/bureau-foundation/cmdshell/lib/command"
	"github.com/bureau-foundation/cmdshell/lib/output"
	"github.com/bureau-foundation/cmdshell/lib/token"
)

// recorder is a handler that remembers the tokens it was given.
type recorder struct {
	command.Defaults
	calls  int
	tokens []string
	result bool
}

func (r *recorder) Execute(node *command.Node, tokens *token.Stream, out output.Sink) bool {
	r.calls++
	r.tokens = tokens.Strings()
	out.Println(true, "ran %s", node.Path())
	return r.result
}

type fixture struct {
	shell   *Shell
	clock   *clock.FakeClock
	service *command.Node
	status  *recorder
	start   *recorder
}

// newFixture builds:
//
//	service
//	  start
//	  stop
//	  status
//	math
func newFixture(t *testing.T) *fixture {
	t.Helper()
	fake := clock.Fake(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	f := &fixture{
		shell:  New(WithClock(fake)),
		clock:  fake,
		status: &recorder{result: true},
		start:  &recorder{result: true},
	}
	f.service = f.shell.AddCommand("service", nil)
	f.service.AddChild("start", f.start)
	f.service.AddChild("stop", nil)
	f.service.AddChild("status", f.status)
	f.shell.AddCommand("math", nil)
	return f
}

func TestResolve_AmbiguousKeepsDeclarationOrder(t *testing.T) {
	shell := New()
	shell.AddCommand("start", nil)
	shell.AddCommand("stop", nil)

	resolution := shell.Resolve("st")
	if resolution.State != Ambiguous {
		t.Fatalf("State = %v, want ambiguous", resolution.State)
	}
	if diff := cmp.Diff([]string{"start", "stop"}, command.Names(resolution.Candidates)); diff != "" {
		t.Errorf("candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_PrefixWithRemainingTokens(t *testing.T) {
	f := newFixture(t)
	resolution := f.shell.Resolve("service stat extra")
	if resolution.State != Resolved {
		t.Fatalf("State = %v, want resolved", resolution.State)
	}
	if got := resolution.Node.Path(); got != "service status" {
		t.Errorf("Node = %q, want %q", got, "service status")
	}
	if diff := cmp.Diff([]string{"extra"}, resolution.Tokens.Strings()); diff != "" {
		t.Errorf("remaining tokens mismatch (-want +got):\n%s", diff)
	}
	if f.shell.LastStatement() != "" {
		t.Error("Resolve recorded history")
	}
}

func TestResolve_ExactBeatsPrefix(t *testing.T) {
	shell := New()
	shell.AddCommand("stat", nil)
	shell.AddCommand("status", nil)

	resolution := shell.Resolve("stat")
	if resolution.State != Resolved || resolution.Node.Name() != "stat" {
		t.Errorf("Resolve(stat) = %v %v, want the exact match", resolution.State, resolution.Node)
	}
}

func TestResolve_Unmatched(t *testing.T) {
	f := newFixture(t)
	resolution := f.shell.Resolve("servce start")
	if resolution.State != Unmatched {
		t.Fatalf("State = %v, want unmatched", resolution.State)
	}
	if diff := cmp.Diff([]string{"service"}, command.Names(resolution.Suggestions)); diff != "" {
		t.Errorf("suggestions mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_Blank(t *testing.T) {
	f := newFixture(t)
	if state := f.shell.Resolve(" \t ").State; state != Blank {
		t.Errorf("State = %v, want blank", state)
	}
}

func TestResolve_FlagStopsDescent(t *testing.T) {
	f := newFixture(t)
	resolution := f.shell.Resolve("service -x 1 status")
	if resolution.State != Resolved || resolution.Node != f.service {
		t.Fatalf("Resolve = %v at %v, want service", resolution.State, resolution.Node)
	}
	if diff := cmp.Diff([]string{"status"}, resolution.Tokens.Strings()); diff != "" {
		t.Errorf("remaining tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestExecute_AmbiguousPrintsCompletions(t *testing.T) {
	shell := New()
	shell.AddCommand("start", nil)
	shell.AddCommand("stop", nil)
	buffer := output.NewBuffer()

	if shell.Execute("st", buffer) {
		t.Fatal("ambiguous statement succeeded")
	}
	want := []string{
		"  possible completions:",
		"    start",
		"    stop",
		"  command failed: st",
	}
	if diff := cmp.Diff(want, buffer.Lines()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestExecute_HandlerReceivesRemainingTokens(t *testing.T) {
	f := newFixture(t)
	buffer := output.NewBuffer()
	if !f.shell.Execute("service stat extra", buffer) {
		t.Fatal("Execute failed")
	}
	if f.status.calls != 1 {
		t.Fatalf("status handler called %d times, want 1", f.status.calls)
	}
	if diff := cmp.Diff([]string{"extra"}, f.status.tokens); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestExecute_FlagsAndPairsReachHandler(t *testing.T) {
	shell := New()
	var verbose bool
	var count int64
	var rest []string
	shell.AddCommand("cmd", command.Func(func(node *command.Node, tokens *token.Stream, out output.Sink) bool {
		verbose = tokens.Flag("-v")
		if value, ok := tokens.Pair("-x"); ok {
			count, _ = value.Int64()
		}
		rest = tokens.Strings()
		return true
	}))

	if !shell.Execute("cmd -v -x 10 pos1", output.NewBuffer()) {
		t.Fatal("Execute failed")
	}
	if !verbose || count != 10 {
		t.Errorf("verbose=%v count=%d, want true and 10", verbose, count)
	}
	if diff := cmp.Diff([]string{"pos1"}, rest); diff != "" {
		t.Errorf("positional mismatch (-want +got):\n%s", diff)
	}
}

func TestExecute_AliasBypassesDescent(t *testing.T) {
	f := newFixture(t)
	status := f.service.Child("status")
	if !f.shell.AliasAdd(status, "s") {
		t.Fatal("AliasAdd failed")
	}

	resolution := f.shell.Resolve("s")
	if resolution.State != Resolved || resolution.Node != status || !resolution.Alias {
		t.Fatalf("Resolve(s) = %+v, want an alias hit on status", resolution)
	}

	buffer := output.NewBuffer()
	if !f.shell.Execute("s now", buffer) {
		t.Fatal("Execute(s now) failed")
	}
	if diff := cmp.Diff([]string{"now"}, f.status.tokens); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestExecute_AliasRejectsEmptyNameAndNilNode(t *testing.T) {
	f := newFixture(t)
	if f.shell.AliasAdd(f.service, "") {
		t.Error("AliasAdd accepted an empty name")
	}
	if f.shell.AliasAdd(nil, "x") {
		t.Error("AliasAdd accepted a nil node")
	}
}

func TestExecute_BlankReplaysPreviousStatement(t *testing.T) {
	f := newFixture(t)
	buffer := output.NewBuffer()

	if !f.shell.Execute("service status", buffer) {
		t.Fatal("first statement failed")
	}
	buffer.Reset()
	if !f.shell.Execute("", buffer) {
		t.Fatal("blank replay failed")
	}
	want := []string{
		"> service status",
		"  ran service status",
	}
	if diff := cmp.Diff(want, buffer.Lines()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
	if f.status.calls != 2 {
		t.Errorf("status handler called %d times, want 2", f.status.calls)
	}

	var statements []string
	for _, entry := range f.shell.History() {
		statements = append(statements, entry.Statement)
	}
	if diff := cmp.Diff([]string{"service status", "", "service status"}, statements); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}
}

func TestExecute_BlankWithoutHistoryFails(t *testing.T) {
	f := newFixture(t)
	buffer := output.NewBuffer()
	if f.shell.Execute("   ", buffer) {
		t.Error("blank statement with empty history succeeded")
	}
	if diff := cmp.Diff([]string{"  command failed:    "}, buffer.Lines()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
	if f.start.calls+f.status.calls != 0 {
		t.Error("a handler ran for a blank statement")
	}
}

func TestExecute_SeparatorOnly(t *testing.T) {
	tests := []struct {
		name        string
		previous    string
		expr        string
		statusCalls int
		history     int
	}{
		{"single separator", "", ";", 0, 0},
		{"repeated separators", "", ";;", 0, 0},
		{"single separator after a statement", "service status", ";", 1, 1},
		{"repeated separators after a statement", "service status", ";;", 1, 1},
		{"trailing separator", "", "service status;", 1, 1},
		{"trailing separator after a statement", "service status", "service status;", 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			buffer := output.NewBuffer()
			if tt.previous != "" && !f.shell.Execute(tt.previous, buffer) {
				t.Fatalf("Execute(%q) failed", tt.previous)
			}
			buffer.Reset()

			if !f.shell.Execute(tt.expr, buffer) {
				t.Errorf("Execute(%q) = false, want true", tt.expr)
			}
			if f.status.calls != tt.statusCalls {
				t.Errorf("status handler called %d times, want %d", f.status.calls, tt.statusCalls)
			}
			if len(f.shell.History()) != tt.history {
				t.Errorf("history has %d entries, want %d", len(f.shell.History()), tt.history)
			}
			for _, line := range buffer.Lines() {
				if line != "  ran service status" {
					t.Errorf("unexpected output line %q", line)
				}
			}
		})
	}
}

func TestExecute_UsageRequest(t *testing.T) {
	f := newFixture(t)
	buffer := output.NewBuffer()
	if !f.shell.Execute("service ?", buffer) {
		t.Fatal("usage request failed")
	}
	want := []string{
		"    usage: service",
		"    subcommands:",
		"      start",
		"      stop",
		"      status",
	}
	if diff := cmp.Diff(want, buffer.Lines()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
	if f.status.calls+f.start.calls != 0 {
		t.Error("usage request executed a handler")
	}
}

func TestExecute_StopsAtFirstFailure(t *testing.T) {
	f := newFixture(t)
	buffer := output.NewBuffer()
	if f.shell.Execute("badcmd ; service status", buffer) {
		t.Fatal("sequence with a failing statement succeeded")
	}
	if f.status.calls != 0 {
		t.Error("statement after the failure ran")
	}
	want := []string{
		"  invalid command",
		"  command failed: badcmd ",
	}
	if diff := cmp.Diff(want, buffer.Lines()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestExecute_Sequence(t *testing.T) {
	f := newFixture(t)
	buffer := output.NewBuffer()
	if !f.shell.Execute("service start;service status", buffer) {
		t.Fatal("sequence failed")
	}
	want := []string{"  ran service start", "  ran service status"}
	if diff := cmp.Diff(want, buffer.Lines()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestExecute_UnmatchedSuggestsRoots(t *testing.T) {
	f := newFixture(t)
	buffer := output.NewBuffer()
	if f.shell.Execute("servise", buffer) {
		t.Fatal("unmatched statement succeeded")
	}
	want := []string{
		"  invalid command",
		"  did you mean:",
		"    service",
		"  command failed: servise",
	}
	if diff := cmp.Diff(want, buffer.Lines()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestExecute_LeafWithoutHandlerFails(t *testing.T) {
	f := newFixture(t)
	buffer := output.NewBuffer()
	if f.shell.Execute("service stop", buffer) {
		t.Error("leaf without a handler succeeded")
	}
}

func TestExecute_IdentifierSubstitution(t *testing.T) {
	f := newFixture(t)
	f.shell.SetIdentifier("port", 8080)
	f.shell.Execute("service status $port $missing", output.NewBuffer())
	if diff := cmp.Diff([]string{"8080", "$missing"}, f.status.tokens); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestExecute_HistoryTimestamps(t *testing.T) {
	f := newFixture(t)
	f.shell.Execute("service start", output.NewBuffer())
	f.clock.Advance(time.Minute)
	f.shell.Execute("nothing", output.NewBuffer())

	entries := f.shell.History()
	if len(entries) != 2 {
		t.Fatalf("history has %d entries, want 2", len(entries))
	}
	if got := entries[1].At.Sub(entries[0].At); got != time.Minute {
		t.Errorf("timestamps %v apart, want 1m", got)
	}
	if f.shell.LastStatement() != "nothing" {
		t.Errorf("LastStatement() = %q, want failed statements recorded too", f.shell.LastStatement())
	}
}

func TestRemoveCommand_DropsAliases(t *testing.T) {
	f := newFixture(t)
	f.shell.AliasAdd(f.service.Child("start"), "go")
	f.shell.AliasAdd(f.service, "svc")

	if !f.shell.RemoveCommand(f.service) {
		t.Fatal("RemoveCommand failed")
	}
	if f.shell.AliasFind("go") != nil || f.shell.AliasFind("svc") != nil {
		t.Error("aliases into the removed tree survived")
	}
	if diff := cmp.Diff([]string{"math"}, command.Names(f.shell.Commands())); diff != "" {
		t.Errorf("roots mismatch (-want +got):\n%s", diff)
	}
	if f.shell.RemoveCommand(f.service) {
		t.Error("second RemoveCommand succeeded")
	}
}

func TestIdentifiers(t *testing.T) {
	shell := New(WithIdentifiers(map[string]uint64{"base": 16}))
	if value, ok := shell.Identifier("base"); !ok || value != 16 {
		t.Errorf("Identifier(base) = (%d, %v), want (16, true)", value, ok)
	}
	if !shell.UnsetIdentifier("base") || shell.UnsetIdentifier("base") {
		t.Error("UnsetIdentifier did not report existence correctly")
	}
	if len(shell.Identifiers()) != 0 {
		t.Errorf("Identifiers() = %v, want empty", shell.Identifiers())
	}
}

func TestWithBaton(t *testing.T) {
	shell := New(WithBaton("host"))
	node := shell.AddCommand("x", nil).AddChild("y", nil)
	if value, _ := command.BatonAs[string](node); value != "host" {
		t.Errorf("baton = %q, want inherited host baton", value)
	}
}
