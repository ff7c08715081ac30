// Package dateonly provides calendar-day arithmetic on dates with no
// time-of-day or timezone component, so that expiration math cannot
// drift by a day depending on the wall clock or zone of the caller.
package dateonly

import (
	"fmt"
	"math"
	"time"
)

// Layout is the canonical YYYY-MM-DD form. Dates rendered in this form
// order lexicographically the same way they order chronologically.
const Layout = "2006-01-02"

// Date is a calendar date. The zero value is not a valid date.
type Date struct {
	t time.Time // normalized to midnight UTC
}

// New creates a Date for the given calendar day
func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Parse parses a YYYY-MM-DD string into a Date
func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return Date{t: t}, nil
}

// FromTime extracts the calendar day of t in t's own location
func FromTime(t time.Time) Date {
	year, month, day := t.Date()
	return New(year, month, day)
}

// String renders the date in YYYY-MM-DD form
func (d Date) String() string {
	return d.t.Format(Layout)
}

// IsZero reports whether d is the uninitialized Date
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Before reports strict calendar-day ordering
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// Equal reports whether two Dates name the same calendar day
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// AddDays returns the date n calendar days after d (n may be negative)
func (d Date) AddDays(n int) Date {
	return FromTime(d.t.AddDate(0, 0, n))
}

// AddMonths returns the date n calendar months after d
func (d Date) AddMonths(n int) Date {
	return FromTime(d.t.AddDate(0, n, 0))
}

// DaysBetween returns the day count from one date to another, ceil-rounded
// so a partial day ahead still counts as a full remaining day. The result
// is negative when to precedes from, and 0 when both name the same day.
func DaysBetween(from, to Date) int {
	hours := to.t.Sub(from.t).Hours()
	return int(math.Ceil(hours / 24))
}

// MarshalText renders the date in YYYY-MM-DD form
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses a YYYY-MM-DD date
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Clock supplies "today" so expiration math is substitutable in tests.
type Clock interface {
	Today() Date
}

type systemClock struct{}

func (systemClock) Today() Date {
	return FromTime(time.Now())
}

// SystemClock returns a Clock reading the local calendar day
func SystemClock() Clock {
	return systemClock{}
}

// FixedClock is a Clock pinned to a single day, for tests
type FixedClock struct {
	Day Date
}

func (c FixedClock) Today() Date {
	return c.Day
}
