package report

import (
	"errors"
	"fmt"

	"github.com/etnz/congress"
)

var (
	// ErrUnknownFiler is returned when selecting a filer that disclosed nothing.
	ErrUnknownFiler = errors.New("unknown filer")
	// ErrNoSuchPurchase is returned when selecting a purchase out of range.
	ErrNoSuchPurchase = errors.New("no such purchase")
)

// All selects every purchase of a filer.
const All = -1

// Selection is the filer, and optionally the purchase, the user is looking at.
//
// It is owned by the front-end and passed along explicitly.
type Selection struct {
	Filer string
	Index int // 0-based purchase index, or All
}

// Select changes the selected filer and purchase.
func (s *Selection) Select(filer string, index int) {
	s.Filer, s.Index = filer, index
}

// Resolve returns the selected disclosures.
//
// Filer names are matched case-insensitively and the selection is updated to
// the registered spelling.
func (s *Selection) Resolve(f *congress.Filers) ([]congress.Disclosure, error) {
	name, ok := f.Lookup(s.Filer)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFiler, s.Filer)
	}
	s.Filer = name
	events := f.Events(name)
	if s.Index == All {
		return events, nil
	}
	if s.Index < 0 || s.Index >= len(events) {
		return nil, fmt.Errorf("%w #%d for %s: %d purchases", ErrNoSuchPurchase, s.Index, name, len(events))
	}
	return events[s.Index : s.Index+1], nil
}
