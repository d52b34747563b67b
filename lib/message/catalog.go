// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package message

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/bureau-foundation/cmdshell/lib/output"
)

// Templates are the format strings behind every phrase. Placeholders
// follow fmt conventions; an override must use the same verbs as the
// default it replaces.
type Templates struct {
	PossibleCompletions string `yaml:"possible_completions" json:"possible_completions"`
	InvalidCommand      string `yaml:"invalid_command" json:"invalid_command"`
	NoSubcommand        string `yaml:"no_subcommand" json:"no_subcommand"`
	DidYouMean          string `yaml:"did_you_mean" json:"did_you_mean"`
	Usage               string `yaml:"usage" json:"usage"`
	Description         string `yaml:"description" json:"description"`
	Subcommands         string `yaml:"subcommands" json:"subcommands"`
	AliasCount          string `yaml:"alias_count" json:"alias_count"`
	NoAliases           string `yaml:"no_aliases" json:"no_aliases"`
	UnableToFind        string `yaml:"unable_to_find" json:"unable_to_find"`
	CommandFailed       string `yaml:"command_failed" json:"command_failed"`
	Replay              string `yaml:"replay" json:"replay"`
	Error               string `yaml:"error" json:"error"`
	UnknownIdentifier   string `yaml:"unknown_identifier" json:"unknown_identifier"`
	MalformedExpression string `yaml:"malformed_expression" json:"malformed_expression"`
}

// Default returns the built-in English templates.
func Default() Templates {
	return Templates{
		PossibleCompletions: "possible completions:",
		InvalidCommand:      "invalid command",
		NoSubcommand:        "no subcommand '%s'",
		DidYouMean:          "did you mean:",
		Usage:               "usage: %s %s",
		Description:         "desc:  %s",
		Subcommands:         "subcommands:",
		AliasCount:          "%d aliases:",
		NoAliases:           "no aliases",
		UnableToFind:        "unable to find command '%s'",
		CommandFailed:       "command failed: %s",
		Replay:              "> %s",
		Error:               "error: %s",
		UnknownIdentifier:   "unknown identifier '%s'",
		MalformedExpression: "malformed expression",
	}
}

// Merge returns t with every non-empty field of overrides applied.
func (t Templates) Merge(overrides Templates) Templates {
	target := reflect.ValueOf(&t).Elem()
	source := reflect.ValueOf(overrides)
	for index := range target.NumField() {
		if value := source.Field(index).String(); value != "" {
			target.Field(index).SetString(value)
		}
	}
	return t
}

// Validate checks that every non-empty template uses the same number
// of format verbs as the default it replaces.
func (t Templates) Validate() error {
	defaults := reflect.ValueOf(Default())
	value := reflect.ValueOf(t)
	kind := value.Type()
	for index := range value.NumField() {
		template := value.Field(index).String()
		if template == "" {
			continue
		}
		want := countVerbs(defaults.Field(index).String())
		if got := countVerbs(template); got != want {
			return fmt.Errorf("message %s: template %q has %d format verbs, want %d",
				kind.Field(index).Name, template, got, want)
		}
	}
	return nil
}

// countVerbs counts fmt verbs, ignoring the "%%" escape.
func countVerbs(template string) int {
	return strings.Count(template, "%") - 2*strings.Count(template, "%%")
}

// Catalog prints phrases through a sink.
type Catalog struct {
	templates Templates
}

// New returns a catalog of the default templates with overrides
// applied.
func New(overrides Templates) *Catalog {
	return &Catalog{templates: Default().Merge(overrides)}
}

// Templates returns the effective templates.
func (c *Catalog) Templates() Templates {
	return c.templates
}

func (c *Catalog) PossibleCompletions(out output.Sink) {
	output.Styledln(out, output.Heading, c.templates.PossibleCompletions)
}

func (c *Catalog) InvalidCommand(out output.Sink) {
	output.Styledln(out, output.Error, c.templates.InvalidCommand)
}

func (c *Catalog) NoSubcommand(out output.Sink, name string) {
	output.Styledln(out, output.Error, c.templates.NoSubcommand, name)
}

func (c *Catalog) DidYouMean(out output.Sink) {
	output.Styledln(out, output.Heading, c.templates.DidYouMean)
}

// Usage prints the usage header for a command path, without trailing
// spaces when usage is empty. The description line is omitted when
// description is empty.
func (c *Catalog) Usage(out output.Sink, path, usage, description string) {
	header := strings.TrimRight(fmt.Sprintf(c.templates.Usage, path, usage), " ")
	output.Styledln(out, output.Heading, "%s", header)
	if description != "" {
		out.Println(true, c.templates.Description, description)
	}
}

func (c *Catalog) Subcommands(out output.Sink) {
	output.Styledln(out, output.Heading, c.templates.Subcommands)
}

// AliasCount prints the alias listing header, or the "no aliases"
// phrase when count is zero.
func (c *Catalog) AliasCount(out output.Sink, count int) {
	if count == 0 {
		output.Styledln(out, output.Heading, c.templates.NoAliases)
		return
	}
	output.Styledln(out, output.Heading, c.templates.AliasCount, count)
}

func (c *Catalog) UnableToFind(out output.Sink, name string) {
	output.Styledln(out, output.Error, c.templates.UnableToFind, name)
}

func (c *Catalog) CommandFailed(out output.Sink, statement string) {
	output.Styledln(out, output.Error, c.templates.CommandFailed, statement)
}

// Replay echoes a statement before it is executed again. The echo is
// not indented.
func (c *Catalog) Replay(out output.Sink, statement string) {
	if styler, ok := out.(output.Styler); ok {
		styler.Styledln(output.Echo, false, c.templates.Replay, statement)
		return
	}
	out.Println(false, c.templates.Replay, statement)
}

func (c *Catalog) Error(out output.Sink, text string) {
	output.Styledln(out, output.Error, c.templates.Error, text)
}

func (c *Catalog) UnknownIdentifier(out output.Sink, name string) {
	output.Styledln(out, output.Error, c.templates.UnknownIdentifier, name)
}

func (c *Catalog) MalformedExpression(out output.Sink) {
	output.Styledln(out, output.Error, c.templates.MalformedExpression)
}

// Candidates prints names one per line, indented two columns beyond
// the current level and styled as suggestions.
func (c *Catalog) Candidates(out output.Sink, names []string) {
	defer out.PushIndent(2)()
	for _, name := range names {
		output.Styledln(out, output.Suggestion, "%s", name)
	}
}
