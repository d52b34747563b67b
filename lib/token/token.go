// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"math"
	"strconv"
	"strings"
)

// Token is one whitespace-delimited unit of user input.
type Token struct {
	text string
}

// New returns a Token holding text.
func New(text string) Token {
	return Token{text: text}
}

// String returns the token text.
func (t Token) String() string {
	return t.text
}

// Equal reports whether the token text is exactly text.
func (t Token) Equal(text string) bool {
	return t.text == text
}

// IsFlag reports whether the token begins with '-'.
func (t Token) IsFlag() bool {
	return strings.HasPrefix(t.text, "-")
}

// Uint64 converts the token to an unsigned integer. A leading '-'
// negates the value with two's complement wrap-around, so "-1" yields
// math.MaxUint64. The second result is false when the token is not a
// number.
func (t Token) Uint64() (uint64, bool) {
	magnitude, negative, ok := parse(t.text)
	if !ok {
		return 0, false
	}
	if negative {
		return -magnitude, true
	}
	return magnitude, true
}

// Int64 converts the token to a signed integer. The second result is
// false when the token is not a number or does not fit in an int64.
func (t Token) Int64() (int64, bool) {
	magnitude, negative, ok := parse(t.text)
	if !ok {
		return 0, false
	}
	if negative {
		switch {
		case magnitude > uint64(math.MaxInt64)+1:
			return 0, false
		case magnitude == uint64(math.MaxInt64)+1:
			return math.MinInt64, true
		}
		return -int64(magnitude), true
	}
	if magnitude > math.MaxInt64 {
		return 0, false
	}
	return int64(magnitude), true
}

// parse splits off the sign and base prefix and converts the digits.
func parse(text string) (magnitude uint64, negative bool, ok bool) {
	if strings.HasPrefix(text, "-") {
		negative = true
		text = text[1:]
	}
	base := 10
	if strings.HasPrefix(text, "0x") {
		base = 16
		text = text[2:]
	}
	// ParseUint with an explicit base rejects signs, prefixes and
	// underscores, leaving only the digits we allow.
	magnitude, err := strconv.ParseUint(text, base, 64)
	if err != nil {
		return 0, false, false
	}
	return magnitude, negative, true
}
