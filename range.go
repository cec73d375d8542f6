package congress

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Lookback returns the range of the days days before to.
func Lookback(to Date, days int) Range { return NewRange(to.Add(-days), to) }

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Extend returns the smallest range containing r and date.
func (r Range) Extend(date Date) Range {
	switch {
	case date.Before(r.From):
		r.From = date
	case date.After(r.To):
		r.To = date
	}
	return r
}

// String returns "from..to".
func (r Range) String() string { return r.From.String() + ".." + r.To.String() }
