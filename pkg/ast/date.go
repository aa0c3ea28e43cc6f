package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Date is a Paradox calendar date (YEAR.MONTH.DAY).
//
// Validation is lenient: day ranges 1-31 for every month, so 1444.2.30 is a
// valid Date. Game scripts contain such dates and downstream consumers rely
// on them parsing, which rules out time.Time as the representation.
type Date struct {
	Year  int
	Month int
	Day   int
}

// ParseDate parses "year.month.day" text into a Date.
//
// Accepts 1-4 digit years with no zero padding required. Returns an error if
// the text does not split into three integer fields or a field is out of
// range (year 1-9999, month 1-12, day 1-31).
func ParseDate(s string) (Date, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date %q: expected year.month.day", s)
	}

	fields := make([]int, 3)
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil {
			return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
		}
		fields[i] = v
	}

	d := Date{Year: fields[0], Month: fields[1], Day: fields[2]}
	if d.Year < 1 || d.Year > 9999 {
		return Date{}, fmt.Errorf("invalid date %q: year out of range", s)
	}
	if d.Month < 1 || d.Month > 12 {
		return Date{}, fmt.Errorf("invalid date %q: month out of range", s)
	}
	if d.Day < 1 || d.Day > 31 {
		return Date{}, fmt.Errorf("invalid date %q: day out of range", s)
	}
	return d, nil
}

// IsValidDate reports whether s parses as a Date.
func IsValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// String returns the date in canonical "year.month.day" form without padding.
func (d Date) String() string {
	return fmt.Sprintf("%d.%d.%d", d.Year, d.Month, d.Day)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Before reports whether d is chronologically before other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}
