// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorMode selects when a [Theme] emits color.
type ColorMode string

const (
	// ColorAuto colors output when the destination supports it and
	// NO_COLOR is unset.
	ColorAuto ColorMode = "auto"

	// ColorAlways forces 256-color output.
	ColorAlways ColorMode = "always"

	// ColorNever disables styling entirely.
	ColorNever ColorMode = "never"
)

// ParseColorMode validates a color mode name. The empty string is
// treated as [ColorAuto].
func ParseColorMode(name string) (ColorMode, error) {
	switch ColorMode(name) {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways:
		return ColorAlways, nil
	case ColorNever:
		return ColorNever, nil
	}
	return "", fmt.Errorf("unknown color mode %q (want auto, always, or never)", name)
}

// Theme holds the lipgloss styles applied to each [Kind]. All colors
// are ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	Heading    lipgloss.Style
	Error      lipgloss.Style
	Suggestion lipgloss.Style
	Echo       lipgloss.Style
}

// NewTheme builds the default theme for output written to w.
func NewTheme(w io.Writer, mode ColorMode) *Theme {
	renderer := lipgloss.NewRenderer(w)
	switch mode {
	case ColorNever:
		renderer.SetColorProfile(termenv.Ascii)
	case ColorAlways:
		renderer.SetColorProfile(termenv.ANSI256)
	default:
		if termenv.EnvNoColor() {
			renderer.SetColorProfile(termenv.Ascii)
		}
	}

	return &Theme{
		Heading:    renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("75")),
		Error:      renderer.NewStyle().Foreground(lipgloss.Color("203")),
		Suggestion: renderer.NewStyle().Foreground(lipgloss.Color("114")),
		Echo:       renderer.NewStyle().Faint(true),
	}
}

// Render styles text for kind. Plain text is returned unchanged.
func (theme *Theme) Render(kind Kind, text string) string {
	switch kind {
	case Heading:
		return theme.Heading.Render(text)
	case Error:
		return theme.Error.Render(text)
	case Suggestion:
		return theme.Suggestion.Render(text)
	case Echo:
		return theme.Echo.Render(text)
	}
	return text
}
