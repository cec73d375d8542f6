package congress

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySource reports a disclosure source without a single line.
	ErrEmptySource = errors.New("empty disclosure source")
	// ErrMalformedRecord is matched by every *MalformedRecordError.
	ErrMalformedRecord = errors.New("malformed disclosure record")
	// ErrUnresolvedTicker reports a ticker for which no price data exists.
	ErrUnresolvedTicker = errors.New("unresolved ticker")
	// ErrNoMatchingTradingDay reports a price series with data, but not on the disclosed day.
	ErrNoMatchingTradingDay = errors.New("no matching trading day")
	// ErrInvalidPrice reports a purchase price that cannot be used as a divisor.
	ErrInvalidPrice = errors.New("invalid purchase price")
	// ErrSummaryUnavailable reports a missing description of a security. It is never fatal.
	ErrSummaryUnavailable = errors.New("summary unavailable")
)

// MalformedRecordError describes a disclosure line that could not be decoded.
type MalformedRecordError struct {
	Line   int // 1-based line number in the source
	Fields int // number of fields found
	Err    error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *MalformedRecordError) Unwrap() []error { return []error{ErrMalformedRecord, e.Err} }

// NoMatchingTradingDayError is returned when a price series has no entry for
// the disclosed trading day.
type NoMatchingTradingDayError struct {
	Ticker string
	Date   Date
}

func (e *NoMatchingTradingDayError) Error() string {
	return fmt.Sprintf("%s: %v on %s", e.Ticker, ErrNoMatchingTradingDay, e.Date)
}

func (e *NoMatchingTradingDayError) Is(target error) bool { return target == ErrNoMatchingTradingDay }
