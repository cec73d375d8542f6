package congress

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Purchase is the only transaction type retained from a disclosure source.
const Purchase = "Purchase"

const (
	minFields = 6 // fields up to and including the price band
	// name tokens shorter than this are suffixes like "Jr" or "II".
	minSurnameLength = 3
)

// field positions in a disclosure record.
const (
	fieldDate = 1 + iota
	fieldTicker
	fieldName
	fieldType
	fieldBand
)

// Disclosure is one reported stock purchase by a filer.
type Disclosure struct {
	Filer    string // Filer's surname, used to group disclosures.
	Name     string // Filer's full name as reported.
	Date     Date   // Transaction date.
	Ticker   string // Normalized ticker.
	MinPrice int64  // Minimum purchase amount in dollars.
	Line     int    // 1-based line in the source.
}

func (d Disclosure) String() string {
	return fmt.Sprintf("%s %s %s $%d", d.Date, d.Filer, d.Ticker, d.MinPrice)
}

// ParseDisclosures decodes purchases made in a year from raw comma-delimited lines.
//
// Lines are expected to hold at least 6 fields: an ignored first field, the
// transaction date, the raw ticker, the filer's full name, the transaction
// type, and the reported price band. Only lines whose date starts with
// yearPrefix and whose type is exactly "Purchase" are retained.
//
// Every line that cannot be decoded produces a *MalformedRecordError in errs,
// the remaining lines are still processed. Blank lines are ignored.
func ParseDisclosures(lines []string, yearPrefix string) (events []Disclosure, errs []error) {
	for i, line := range lines {
		d, ok, err := parseDisclosure(i+1, line, yearPrefix)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if ok {
			events = append(events, d)
		}
	}
	return events, errs
}

// DecodeDisclosures reads all lines from r and parses them with ParseDisclosures.
//
// The returned error is only set when the source itself is unusable: a read
// failure, or no line at all (ErrEmptySource).
func DecodeDisclosures(r io.Reader, yearPrefix string) (events []Disclosure, errs []error, err error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("cannot read disclosures: %w", err)
	}
	if len(lines) == 0 {
		return nil, nil, ErrEmptySource
	}
	events, errs = ParseDisclosures(lines, yearPrefix)
	return events, errs, nil
}

// parseDisclosure decodes a single line. ok is false for lines filtered out.
func parseDisclosure(lineno int, line, yearPrefix string) (d Disclosure, ok bool, err error) {
	line = strings.TrimSuffix(line, "\r")
	if strings.TrimSpace(line) == "" {
		return d, false, nil
	}
	fields := strings.Split(line, ",")
	malformed := func(err error) error {
		return &MalformedRecordError{Line: lineno, Fields: len(fields), Err: err}
	}
	if len(fields) < minFields {
		return d, false, malformed(fmt.Errorf("got %d fields, want at least %d", len(fields), minFields))
	}

	if !strings.HasPrefix(fields[fieldDate], yearPrefix) || fields[fieldType] != Purchase {
		return d, false, nil
	}

	on, err := ParseDate(strings.TrimSpace(fields[fieldDate]))
	if err != nil {
		return d, false, malformed(err)
	}

	filer, err := Surname(fields[fieldName])
	if err != nil {
		return d, false, malformed(err)
	}

	band, err := strconv.ParseInt(strings.TrimSpace(fields[fieldBand]), 10, 64)
	if err != nil {
		return d, false, malformed(fmt.Errorf("invalid price band %q: %w", fields[fieldBand], err))
	}

	return Disclosure{
		Filer:  filer,
		Name:   strings.Join(strings.Fields(fields[fieldName]), " "),
		Date:   on,
		Ticker: NormalizeTicker(fields[fieldTicker]),
		// The source reports the band as floor+1.
		MinPrice: band - 1,
		Line:     lineno,
	}, true, nil
}

// Surname returns the filer's surname from a full name.
//
// It is the last whitespace separated token, unless that token is shorter
// than 3 characters (a suffix like "Jr" or "II") in which case the token
// before it is used.
func Surname(fullName string) (string, error) {
	tokens := strings.Fields(fullName)
	switch n := len(tokens); {
	case n == 0:
		return "", errors.New("empty filer name")
	case n > 1 && len(tokens[n-1]) < minSurnameLength:
		return tokens[n-2], nil
	default:
		return tokens[n-1], nil
	}
}
