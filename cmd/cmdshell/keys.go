// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the key bindings of the interactive prompt. Anything
// not bound here goes to the text input.
type keyMap struct {
	Submit   key.Binding
	Complete key.Binding
	Previous key.Binding // Recall the previous statement.
	Next     key.Binding // Recall the next statement, then the draft.
	Clear    key.Binding // Discard the current line.
	Quit     key.Binding
}

var defaultKeyMap = keyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "run"),
	),
	Complete: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "complete"),
	),
	Previous: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "previous"),
	),
	Next: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "next"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+u"),
		key.WithHelp("C-u", "clear line"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "ctrl+d"),
		key.WithHelp("C-d", "quit"),
	),
}
