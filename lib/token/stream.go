// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Identifiers maps names to integer values for $name substitution.
type Identifiers map[string]uint64

// Stream classifies pushed tokens into positional, flag and pair views
// while keeping the raw input order. The zero value is not usable;
// construct one with [NewStream].
type Stream struct {
	identifiers Identifiers

	// raw holds every non-empty token in input order.
	raw []Token

	// positional holds tokens that are neither flags nor flag values.
	positional []Token

	flags map[string]struct{}
	pairs map[string]Token

	// pending is a flag waiting to learn whether a value follows it.
	pending string
}

// NewStream returns an empty stream. identifiers may be nil, which
// disables $name substitution.
func NewStream(identifiers Identifiers) *Stream {
	return &Stream{
		identifiers: identifiers,
		flags:       make(map[string]struct{}),
		pairs:       make(map[string]Token),
	}
}

// Push adds one raw token. An empty string is the flush marker: it
// finalizes a pending flag as a boolean switch and does nothing else.
func (s *Stream) Push(text string) {
	if text == "" {
		s.finalizePending()
		return
	}

	if s.identifiers != nil && strings.HasPrefix(text, "$") {
		if value, ok := s.identifiers[text[1:]]; ok {
			text = strconv.FormatUint(value, 10)
		}
	}

	token := New(text)
	s.raw = append(s.raw, token)

	if token.IsFlag() {
		s.finalizePending()
		s.pending = text
		return
	}
	if s.pending != "" {
		s.pairs[s.pending] = token
		s.pending = ""
		return
	}
	s.positional = append(s.positional, token)
}

func (s *Stream) finalizePending() {
	if s.pending != "" {
		s.flags[s.pending] = struct{}{}
		s.pending = ""
	}
}

// Len returns the number of positional tokens not yet consumed.
func (s *Stream) Len() int {
	return len(s.positional)
}

// Empty reports whether every positional token has been consumed.
func (s *Stream) Empty() bool {
	return len(s.positional) == 0
}

// Front returns the next positional token without consuming it.
func (s *Stream) Front() (Token, bool) {
	if len(s.positional) == 0 {
		return Token{}, false
	}
	return s.positional[0], true
}

// Last returns the final positional token without consuming it.
func (s *Stream) Last() (Token, bool) {
	if len(s.positional) == 0 {
		return Token{}, false
	}
	return s.positional[len(s.positional)-1], true
}

// Consume removes the next positional token only if it is also the
// front of the raw sequence, which holds while command path tokens
// precede any flag. It returns false, consuming nothing, otherwise.
func (s *Stream) Consume() bool {
	if len(s.positional) == 0 || len(s.raw) == 0 {
		return false
	}
	if s.raw[0] != s.positional[0] {
		return false
	}
	s.raw = s.raw[1:]
	s.positional = s.positional[1:]
	return true
}

// Pop removes and returns the next positional token.
func (s *Stream) Pop() (Token, bool) {
	if len(s.positional) == 0 {
		return Token{}, false
	}
	token := s.positional[0]
	s.positional = s.positional[1:]
	return token, true
}

// PopString removes and returns the next positional token's text.
func (s *Stream) PopString() (string, bool) {
	token, ok := s.Pop()
	return token.String(), ok
}

// PopUint64 removes the next positional token if it converts to an
// unsigned integer. On failure the queue is left untouched.
func (s *Stream) PopUint64() (uint64, bool) {
	token, ok := s.Front()
	if !ok {
		return 0, false
	}
	value, ok := token.Uint64()
	if !ok {
		return 0, false
	}
	s.positional = s.positional[1:]
	return value, true
}

// PopInt64 removes the next positional token if it converts to a
// signed integer. On failure the queue is left untouched.
func (s *Stream) PopInt64() (int64, bool) {
	token, ok := s.Front()
	if !ok {
		return 0, false
	}
	value, ok := token.Int64()
	if !ok {
		return 0, false
	}
	s.positional = s.positional[1:]
	return value, true
}

// Flag reports whether name (including its leading '-') was given as
// a boolean switch.
func (s *Stream) Flag(name string) bool {
	_, ok := s.flags[name]
	return ok
}

// Pair returns the value that followed the flag name.
func (s *Stream) Pair(name string) (Token, bool) {
	value, ok := s.pairs[name]
	return value, ok
}

// Find reports whether any remaining positional token equals text.
func (s *Stream) Find(text string) bool {
	for _, token := range s.positional {
		if token.Equal(text) {
			return true
		}
	}
	return false
}

// Raw returns the unconsumed raw sequence.
func (s *Stream) Raw() []Token {
	return slices.Clone(s.raw)
}

// Positional returns the unconsumed positional queue.
func (s *Stream) Positional() []Token {
	return slices.Clone(s.positional)
}

// Strings returns the unconsumed positional queue as plain strings.
func (s *Stream) Strings() []string {
	texts := make([]string, len(s.positional))
	for index, token := range s.positional {
		texts[index] = token.String()
	}
	return texts
}

// Flags returns the boolean switches in sorted order.
func (s *Stream) Flags() []string {
	return slices.Sorted(maps.Keys(s.flags))
}

// Pairs returns a copy of the flag/value pairs.
func (s *Stream) Pairs() map[string]Token {
	return maps.Clone(s.pairs)
}
