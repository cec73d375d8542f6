package congress

import (
	"iter"
	"slices"
	"strings"
)

// Filers groups disclosures by filer surname.
//
// Filers are kept in the order they were first seen, and each filer's
// disclosures in the order they were added. Nothing is ever sorted or
// deduplicated: identical disclosures remain distinct entries.
type Filers struct {
	names  []string
	events map[string][]Disclosure
}

// NewFilers returns an empty Filers.
func NewFilers() *Filers {
	return &Filers{events: make(map[string][]Disclosure)}
}

// AggregateByFiler groups events by Disclosure.Filer.
func AggregateByFiler(events []Disclosure) *Filers {
	f := NewFilers()
	for _, e := range events {
		f.Add(e)
	}
	return f
}

// Add appends a disclosure to its filer's list.
func (f *Filers) Add(d Disclosure) {
	if _, exists := f.events[d.Filer]; !exists {
		f.names = append(f.names, d.Filer)
	}
	f.events[d.Filer] = append(f.events[d.Filer], d)
}

// Len returns the number of filers.
func (f *Filers) Len() int { return len(f.names) }

// Names returns the filers in first-seen order.
func (f *Filers) Names() []string { return slices.Clone(f.names) }

// Events returns a copy of the disclosures of a filer, or nil if unknown.
func (f *Filers) Events(name string) []Disclosure { return slices.Clone(f.events[name]) }

// Lookup returns the registered spelling of name, compared case-insensitively.
func (f *Filers) Lookup(name string) (string, bool) {
	if _, ok := f.events[name]; ok {
		return name, true
	}
	for _, n := range f.names {
		if strings.EqualFold(n, name) {
			return n, true
		}
	}
	return "", false
}

// All returns an iterator over filers and their disclosures, in first-seen order.
func (f *Filers) All() iter.Seq2[string, []Disclosure] {
	return func(yield func(string, []Disclosure) bool) {
		for _, name := range f.names {
			if !yield(name, slices.Clone(f.events[name])) {
				return
			}
		}
	}
}
