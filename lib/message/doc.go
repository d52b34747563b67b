// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package message holds the catalog of user-facing phrases the shell
// prints: resolution failures, suggestions, usage headers and alias
// listings.
//
// Each phrase is a format template in [Templates]. [Default] returns
// the built-in English set; a host replaces individual phrases by
// passing partial overrides to [New] (the config package loads them
// from the "messages" section). Phrases are printed through an
// [output.Sink], and the catalog tags each with an [output.Kind] so a
// themed sink can color headings, errors and suggestions.
package message
