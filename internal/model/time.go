package model

import (
	"fmt"
	"time"
)

// Layouts used at the HTTP and form boundary.
const (
	DateLayout      = "2006-01-02"
	MonthLayout     = "2006-01"
	DateTimeLayout  = "2006-01-02T15:04"
	DisplayDateTime = "02/01/2006, 15:04"
)

// FormatDateTime formats a sale timestamp for display in the local zone.
func FormatDateTime(t time.Time) string {
	return t.In(time.Local).Format(DisplayDateTime)
}

// YearMonth identifies a calendar month. The zero value means unset.
type YearMonth struct {
	Year  int
	Month time.Month
	// Loc is the zone the month is read in. Nil uses each time's own zone.
	Loc *time.Location
}

// IsZero reports whether ym is unset.
func (ym YearMonth) IsZero() bool {
	return ym.Year == 0 && ym.Month == 0
}

// Contains reports whether t falls in the month.
func (ym YearMonth) Contains(t time.Time) bool {
	if ym.Loc != nil {
		t = t.In(ym.Loc)
	}
	return t.Year() == ym.Year && t.Month() == ym.Month
}

func (ym YearMonth) String() string {
	if ym.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// ParseYearMonth parses a YYYY-MM string as a month in loc. An empty string
// yields the zero value.
func ParseYearMonth(s string, loc *time.Location) (YearMonth, error) {
	if s == "" {
		return YearMonth{}, nil
	}
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return YearMonth{Year: t.Year(), Month: t.Month(), Loc: loc}, nil
}

// ParseDate parses a YYYY-MM-DD string in loc. An empty string yields the zero time.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}
