// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"maps"
	"slices"
)

// AliasTable maps shortcut names to nodes. Entries do not own the
// nodes they point at.
type AliasTable struct {
	entries map[string]*Node
}

// NewAliasTable returns an empty table.
func NewAliasTable() *AliasTable {
	return &AliasTable{entries: make(map[string]*Node)}
}

// Add maps name to node, replacing any existing mapping for name.
func (a *AliasTable) Add(name string, node *Node) {
	a.entries[name] = node
}

// Remove deletes the alias name and reports whether it existed.
func (a *AliasTable) Remove(name string) bool {
	if _, ok := a.entries[name]; !ok {
		return false
	}
	delete(a.entries, name)
	return true
}

// RemoveTarget deletes every alias that points at node. It always
// returns true, whether or not any alias matched.
func (a *AliasTable) RemoveTarget(node *Node) bool {
	maps.DeleteFunc(a.entries, func(_ string, target *Node) bool {
		return target == node
	})
	return true
}

// Find returns the node for name, or nil.
func (a *AliasTable) Find(name string) *Node {
	return a.entries[name]
}

// Names returns the alias names in sorted order.
func (a *AliasTable) Names() []string {
	return slices.Sorted(maps.Keys(a.entries))
}

// Len returns the number of aliases.
func (a *AliasTable) Len() int {
	return len(a.entries)
}
