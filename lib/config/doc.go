// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the configuration of a command shell session.
//
// Configuration is loaded from a single file specified by either the
// CMDSHELL_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There is no automatic file search. Files ending in
// .json or .jsonc are read as JSON with comments and trailing commas
// allowed; anything else is read as YAML.
//
// A file configures the prompt, output indentation and colour, the log
// level, overrides for any message template, and the session's
// starting state: $name identifiers, aliases, and statements to run at
// startup. [Config.Apply] installs identifiers and aliases on a
// [shell.Shell] once its command tree is built.
//
// Variable expansion is performed on the prompt and startup statements
// after loading: ${VAR} and ${VAR:-default} patterns are expanded from
// the process environment.
//
// Key exports:
//
//   - [Config] -- the session settings
//   - [Default] -- returns a Config with built-in defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
package config
