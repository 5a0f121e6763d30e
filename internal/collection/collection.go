// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package collection provides an ordered, mutable sequence of strings with
// stack-style operations on both ends. The original automation scripts
// emulated pass-by-reference over named variables; here the list is simply
// mutated through a pointer receiver.
package collection

import (
	"slices"
	"strings"
)

// List is an ordered sequence of strings. The zero value is an empty list
// ready for use. Not safe for concurrent use.
type List struct {
	items []string
}

// New builds a List from the given items, skipping empties.
func New(items ...string) *List {
	l := &List{}
	l.Push(items...)
	return l
}

// FromLines builds a List from newline/whitespace-separated text, such as
// captured command output. Empty fields are dropped.
func FromLines(s string) *List {
	return New(strings.Fields(s)...)
}

// Push appends items, skipping empties.
func (l *List) Push(items ...string) {
	for _, it := range items {
		if it != "" {
			l.items = append(l.items, it)
		}
	}
}

// PushFront prepends items, skipping empties. The items keep their argument
// order at the front.
func (l *List) PushFront(items ...string) {
	kept := make([]string, 0, len(items))
	for _, it := range items {
		if it != "" {
			kept = append(kept, it)
		}
	}
	l.items = append(kept, l.items...)
}

// Pop removes up to n items from the end, clamped to the list size, and
// returns them in removal order (last item first). Never errors.
func (l *List) Pop(n int) []string {
	n = clamp(n, len(l.items))
	removed := make([]string, 0, n)
	for i := 0; i < n; i++ {
		removed = append(removed, l.items[len(l.items)-1])
		l.items = l.items[:len(l.items)-1]
	}
	return removed
}

// PopFront removes up to n items from the front, clamped to the list size,
// and returns them in removal order. Never errors.
func (l *List) PopFront(n int) []string {
	n = clamp(n, len(l.items))
	removed := slices.Clone(l.items[:n])
	l.items = l.items[n:]
	return removed
}

// Reverse reverses the list in place.
func (l *List) Reverse() {
	slices.Reverse(l.items)
}

// Reversed returns a new List holding the items in reverse order, leaving
// the receiver untouched.
func (l *List) Reversed() *List {
	out := &List{items: slices.Clone(l.items)}
	slices.Reverse(out.items)
	return out
}

// IsEmpty reports whether the list has no items.
func (l *List) IsEmpty() bool {
	return len(l.items) == 0
}

// Len returns the number of items.
func (l *List) Len() int {
	return len(l.items)
}

// Items returns a copy of the underlying slice.
func (l *List) Items() []string {
	return slices.Clone(l.items)
}

// Join concatenates the items with sep between each.
func (l *List) Join(sep string) string {
	return strings.Join(l.items, sep)
}

func clamp(n, size int) int {
	if n < 0 {
		return 0
	}
	if n > size {
		return size
	}
	return n
}
