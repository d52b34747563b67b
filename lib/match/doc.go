// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package match implements the string matching used to resolve user
// input against a level of the command tree.
//
// Resolution is strictly prefix based: [PrefixScore] rates how well an
// input token abbreviates a candidate name, and [Best] keeps every
// candidate tied for the highest score. One survivor resolves the
// token; several survivors are an ambiguity the caller reports; none
// means the token matched nothing at that level.
//
// [EditDistance] is only a suggestion aid. When prefix matching fails,
// [Similar] lists candidates within a small Levenshtein distance so the
// shell can print "did you mean" hints. It never changes what a token
// resolves to.
//
// [Rank] scores arbitrary strings against a fuzzy pattern with fzf's
// matching algorithm. The shell uses it to search the full set of
// command paths by loose abbreviation ("svst" finds "service status").
//
// This package has no dependencies on other cmdshell packages.
package match
