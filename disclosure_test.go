package congress

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseDisclosures_YearFilter(t *testing.T) {
	lines := []string{
		"x,2022-05-01,BRK.B,Nancy Pelosi,Purchase,1001,x",
		"x,2021-01-01,AAPL,John Smith,Purchase,500,x",
	}
	events, errs := ParseDisclosures(lines, "2022")
	if len(errs) != 0 {
		t.Fatalf("ParseDisclosures() errs = %v, want none", errs)
	}
	want := []Disclosure{{
		Filer:    "Pelosi",
		Name:     "Nancy Pelosi",
		Date:     NewDate(2022, 5, 1),
		Ticker:   "BRK-B",
		MinPrice: 1000,
		Line:     1,
	}}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("ParseDisclosures() = %v, want %v", events, want)
	}
}

func TestParseDisclosures_Filters(t *testing.T) {
	lines := []string{
		"Id,TransactionDate,Ticker,Representative,Transaction,Range,House",
		"1,2022-03-01,MSFT,Jane Doe,Sale (Full),15001,x",
		"2,2022-03-01,MSFT,Jane Doe,purchase,15001,x",
		"3,2022-03-02,MSFT,Jane Doe,Purchase,15001,x",
		"",
		"4,2022-03-03,DUK$A,Jane Doe,Purchase,1001",
	}
	events, errs := ParseDisclosures(lines, "2022")
	if len(errs) != 0 {
		t.Fatalf("ParseDisclosures() errs = %v, want none", errs)
	}
	var got []string
	for _, e := range events {
		got = append(got, e.Ticker)
	}
	if want := []string{"MSFT", "DUK"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ParseDisclosures() tickers = %v, want %v", got, want)
	}
	if events[1].Line != 6 {
		t.Errorf("ParseDisclosures()[1].Line = %d, want 6", events[1].Line)
	}
}

func TestParseDisclosures_Malformed(t *testing.T) {
	lines := []string{
		"x,2022-05-01,AAPL",
		"x,2022-05-02,AAPL,John Smith,Purchase,1001,x",
		"x,2022-13-45,AAPL,John Smith,Purchase,1001,x",
		"x,2022-05-03,AAPL,John Smith,Purchase,lots,x",
		"x,2022-05-04,AAPL,   ,Purchase,1001,x",
	}
	events, errs := ParseDisclosures(lines, "2022")
	if len(events) != 1 || events[0].Date != NewDate(2022, 5, 2) {
		t.Errorf("ParseDisclosures() = %v, want the single well formed record", events)
	}
	if len(errs) != 4 {
		t.Fatalf("ParseDisclosures() got %d errors, want 4: %v", len(errs), errs)
	}
	for i, wantLine := range []int{1, 3, 4, 5} {
		var merr *MalformedRecordError
		if !errors.As(errs[i], &merr) {
			t.Errorf("errs[%d] = %v, want a *MalformedRecordError", i, errs[i])
			continue
		}
		if merr.Line != wantLine {
			t.Errorf("errs[%d].Line = %d, want %d", i, merr.Line, wantLine)
		}
		if !errors.Is(errs[i], ErrMalformedRecord) {
			t.Errorf("errors.Is(errs[%d], ErrMalformedRecord) = false, want true", i)
		}
	}
}

func TestSurname(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"John Smith Jr", "Smith"},
		{"Nancy Pelosi", "Pelosi"},
		{"Thomas Kean II", "Kean"},
		{"  Mo   Brooks ", "Brooks"},
		{"Li", "Li"},
		{"Cher", "Cher"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Surname(tt.name)
			if err != nil {
				t.Fatalf("Surname(%q) unexpected error = %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("Surname(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
	if _, err := Surname(" "); err == nil {
		t.Error("Surname(\" \") error = nil, want an error")
	}
}

func TestDecodeDisclosures(t *testing.T) {
	src := "x,2022-05-01,BRK.B,Nancy Pelosi,Purchase,1001,x\r\nbroken\r\n"
	events, errs, err := DecodeDisclosures(strings.NewReader(src), "2022")
	if err != nil {
		t.Fatalf("DecodeDisclosures() unexpected error = %v", err)
	}
	if len(events) != 1 || events[0].Ticker != "BRK-B" {
		t.Errorf("DecodeDisclosures() = %v, want one BRK-B purchase", events)
	}
	if len(errs) != 1 {
		t.Errorf("DecodeDisclosures() errs = %v, want exactly one", errs)
	}

	if _, _, err := DecodeDisclosures(strings.NewReader(""), "2022"); !errors.Is(err, ErrEmptySource) {
		t.Errorf("DecodeDisclosures(empty) error = %v, want %v", err, ErrEmptySource)
	}
}
