// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/cmdshell/lib/output"
	"github.com/bureau-foundation/cmdshell/lib/shell"
)

// replModel is the interactive prompt. Each submitted line runs
// through the shell and its output is printed above the prompt, so
// the terminal scrollback reads like a transcript.
type replModel struct {
	shell  *shell.Shell
	state  *session
	input  textinput.Model
	keys   keyMap
	prompt string

	// sink collects one statement's output before it is printed.
	sink *output.Buffer

	// recall indexes the statement shown while browsing history;
	// len(recalled) means the draft is shown.
	recall   int
	recalled []string
	draft    string

	hintStyle lipgloss.Style
}

func newREPLModel(sh *shell.Shell, state *session, prompt string, sink *output.Buffer) replModel {
	input := textinput.New()
	input.Prompt = prompt
	input.Focus()

	return replModel{
		shell:     sh,
		state:     state,
		input:     input,
		keys:      defaultKeyMap,
		prompt:    prompt,
		sink:      sink,
		hintStyle: lipgloss.NewStyle().Faint(true),
	}
}

func (model replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (model replModel) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	if keyMessage, ok := message.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMessage, model.keys.Quit):
			if keyMessage.String() == "ctrl+d" && model.input.Value() != "" {
				break
			}
			return model, tea.Quit
		case key.Matches(keyMessage, model.keys.Submit):
			return model.submit()
		case key.Matches(keyMessage, model.keys.Complete):
			return model.complete()
		case key.Matches(keyMessage, model.keys.Previous):
			return model.browse(-1), nil
		case key.Matches(keyMessage, model.keys.Next):
			return model.browse(1), nil
		case key.Matches(keyMessage, model.keys.Clear):
			model.input.SetValue("")
			return model, nil
		}
	}

	var command tea.Cmd
	model.input, command = model.input.Update(message)
	return model, command
}

func (model replModel) View() string {
	return model.input.View()
}

// submit runs the current line and prints the echo of the prompt line
// followed by the statement's output.
func (model replModel) submit() (tea.Model, tea.Cmd) {
	line := model.input.Value()
	model.input.SetValue("")
	model.recalled = nil
	model.draft = ""

	model.sink.Reset()
	model.shell.Execute(line, model.sink)
	transcript := model.prompt + line
	if text := strings.TrimSuffix(model.sink.String(), "\n"); text != "" {
		transcript += "\n" + text
	}

	commands := []tea.Cmd{tea.Println(transcript)}
	if model.state.done {
		commands = append(commands, tea.Quit)
	}
	return model, tea.Sequence(commands...)
}

// complete extends the last word of the line. A single candidate is
// inserted followed by a space; several candidates extend the word to
// their common prefix and are listed above the prompt.
func (model replModel) complete() (tea.Model, tea.Cmd) {
	line := model.input.Value()
	candidates := model.shell.Complete(line)
	if len(candidates) == 0 {
		return model, nil
	}

	start := strings.LastIndexAny(line, " \t;") + 1
	if len(candidates) == 1 {
		model.input.SetValue(line[:start] + candidates[0] + " ")
		model.input.CursorEnd()
		return model, nil
	}

	model.input.SetValue(line[:start] + commonPrefix(candidates))
	model.input.CursorEnd()
	return model, tea.Println(model.hintStyle.Render(strings.Join(candidates, "  ")))
}

// browse moves through the non-blank history by delta steps. Leaving
// the newest entry restores the line being typed before browsing.
func (model replModel) browse(delta int) replModel {
	if model.recalled == nil {
		for _, entry := range model.shell.History() {
			if !entry.Blank() {
				model.recalled = append(model.recalled, entry.Statement)
			}
		}
		model.recall = len(model.recalled)
		model.draft = model.input.Value()
	}

	next := model.recall + delta
	if next < 0 || next > len(model.recalled) {
		return model
	}
	model.recall = next
	if next == len(model.recalled) {
		model.input.SetValue(model.draft)
	} else {
		model.input.SetValue(model.recalled[next])
	}
	model.input.CursorEnd()
	return model
}

func commonPrefix(words []string) string {
	prefix := words[0]
	for _, word := range words[1:] {
		for !strings.HasPrefix(word, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	return prefix
}

// runInteractive runs the prompt until the user quits or a command
// ends the session.
func runInteractive(sh *shell.Shell, state *session, prompt string, sink *output.Buffer) error {
	program := tea.NewProgram(newREPLModel(sh, state, prompt, sink))
	_, err := program.Run()
	return err
}
