package token

import (
	"fmt"
)

// UnknownError reports a name that is not part of a domain's table.
// It is an argument error: it is raised at the call boundary, before any
// work is dispatched.
type UnknownError struct {
	Domain string
	Name   string
}

// Error returns a description of the unknown token.
func (e *UnknownError) Error() string {
	return fmt.Sprintf("unknown %s token %q", e.Domain, e.Name)
}

// Entry is one (name, code) pair of a domain table.
type Entry[T comparable] struct {
	Name string
	Code T
}

// Table is an immutable bidirectional mapping for one parameter domain.
// Entry order is preserved so derived listings are deterministic.
type Table[T comparable] struct {
	domain  string
	entries []Entry[T]
	byName  map[string]T
	byCode  map[T]string
}

// NewTable builds a table from an ordered entry list. Later duplicates of a
// name or code do not displace earlier ones, so the first entry for a code
// decides its canonical name.
func NewTable[T comparable](domain string, entries []Entry[T]) *Table[T] {
	t := &Table[T]{
		domain:  domain,
		entries: entries,
		byName:  make(map[string]T, len(entries)),
		byCode:  make(map[T]string, len(entries)),
	}
	for _, e := range entries {
		if _, dup := t.byName[e.Name]; !dup {
			t.byName[e.Name] = e.Code
		}
		if _, dup := t.byCode[e.Code]; !dup {
			t.byCode[e.Code] = e.Name
		}
	}
	return t
}

// Domain returns the domain name of the table.
func (t *Table[T]) Domain() string {
	return t.domain
}

// Encode maps a name to its code. Unknown names return an UnknownError.
func (t *Table[T]) Encode(name string) (T, error) {
	code, ok := t.byName[name]
	if !ok {
		var zero T
		return zero, &UnknownError{Domain: t.domain, Name: name}
	}
	return code, nil
}

// Decode maps a code back to its canonical name, or "" when the code is not
// in the table.
func (t *Table[T]) Decode(code T) string {
	return t.byCode[code]
}

// Has reports whether the name is part of the table.
func (t *Table[T]) Has(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// Entries returns the table entries in declaration order. The returned
// slice is shared and must not be modified.
func (t *Table[T]) Entries() []Entry[T] {
	return t.entries
}

// Names returns the token names in declaration order.
func (t *Table[T]) Names() []string {
	names := make([]string, len(t.entries))
	for i, e := range t.entries {
		names[i] = e.Name
	}
	return names
}
