package congress

import (
	"slices"
	"testing"
	"time"
)

func TestPriceSeries_Append(t *testing.T) {
	s := NewPriceSeries("AAPL")
	d1, d2 := NewDate(2022, 7, 1), NewDate(2022, 6, 1)

	// Appending in reverse order must keep the series sorted.
	s.Append(midnight(d1), D(110))
	s.Append(midnight(d2), D(100))
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if got := s.First().Date(); got != d2 {
		t.Errorf("First().Date() = %v, want %v", got, d2)
	}
	if got := s.Last().Close; !got.Equal(D(110)) {
		t.Errorf("Last().Close = %v, want 110", got)
	}

	// Same instant overwrites.
	s.Append(midnight(d1), D(111))
	if s.Len() != 2 {
		t.Errorf("Len() after overwrite = %d, want 2", s.Len())
	}
	if got := s.Last().Close; !got.Equal(D(111)) {
		t.Errorf("Last().Close after overwrite = %v, want 111", got)
	}
}

func TestPriceSeries_NormalizesTimezone(t *testing.T) {
	summer, winter := NewDate(2022, 7, 1), NewDate(2022, 12, 1)
	s := NewPriceSeries("AAPL",
		PricePoint{Time: midnight(summer), Close: D(100)},
		PricePoint{Time: midnight(winter), Close: D(120)},
	)
	if _, ok := s.At(summer.At(4)); !ok {
		t.Errorf("At(%v 04:00 UTC) not found, want found", summer)
	}
	if _, ok := s.At(winter.At(5)); !ok {
		t.Errorf("At(%v 05:00 UTC) not found, want found", winter)
	}
	for p := range s.Values() {
		if p.Time.Location() != time.UTC {
			t.Errorf("point %v location = %v, want UTC", p.Time, p.Time.Location())
		}
	}
}

func TestPriceSeries_Change(t *testing.T) {
	s := NewPriceSeries("AAPL",
		PricePoint{Time: NewDate(2022, 1, 3).At(5), Close: D(200)},
		PricePoint{Time: NewDate(2022, 1, 4).At(5), Close: D(150)},
	)
	if got, want := s.Change(), NewPercent(D(-25)); !got.Equal(want) {
		t.Errorf("Change() = %v, want %v", got, want)
	}
	if got := NewPriceSeries("AAPL").Change(); !got.IsZero() {
		t.Errorf("empty Change() = %v, want 0", got)
	}
}

func TestPriceSeries_Values(t *testing.T) {
	days := []Date{NewDate(2022, 1, 5), NewDate(2022, 1, 3), NewDate(2022, 1, 4)}
	s := NewPriceSeries("AAPL")
	for i, d := range days {
		s.Append(d.At(5), D(float64(i)))
	}
	var got []Date
	for p := range s.Values() {
		got = append(got, p.Date())
	}
	want := []Date{NewDate(2022, 1, 3), NewDate(2022, 1, 4), NewDate(2022, 1, 5)}
	if !slices.Equal(got, want) {
		t.Errorf("Values() dates = %v, want %v", got, want)
	}
}

func TestPriceSeries_Coverage(t *testing.T) {
	s := NewPriceSeries("AAPL",
		PricePoint{Time: midnight(NewDate(2022, 6, 1)), Close: D(150)},
		PricePoint{Time: midnight(NewDate(2022, 1, 3)), Close: D(200)},
	)
	if got, want := s.Coverage(), NewRange(NewDate(2022, 1, 3), NewDate(2022, 6, 1)); got != want {
		t.Errorf("Coverage() = %v, want %v", got, want)
	}
	if got := NewPriceSeries("AAPL").Coverage(); got != (Range{}) {
		t.Errorf("empty Coverage() = %v, want zero", got)
	}
}

func TestPriceSeries_Nil(t *testing.T) {
	var s *PriceSeries
	if s.Len() != 0 {
		t.Errorf("nil Len() = %d, want 0", s.Len())
	}
	if !s.First().IsZero() || !s.Last().IsZero() {
		t.Error("nil First/Last not zero")
	}
	if _, ok := s.At(time.Now()); ok {
		t.Error("nil At() found a value")
	}
}
