package calendar

import (
	"errors"
	"fmt"
)

// ErrInvalidDate is matched by every InvalidDateError via errors.Is.
var ErrInvalidDate = errors.New("invalid date")

// Calendar systems, used in error messages and API payloads.
const (
	Gregorian = "gregorian"
	Jalali    = "jalali"
)

// InvalidDateError describes a date rejected at the validation boundary.
type InvalidDateError struct {
	Calendar string
	Year     int
	Month    int
	Day      int
	Reason   string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid %s date %04d-%02d-%02d: %s", e.Calendar, e.Year, e.Month, e.Day, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidDate) match.
func (e *InvalidDateError) Is(target error) bool {
	return target == ErrInvalidDate
}

// GregorianDate is a proleptic Gregorian calendar date.
type GregorianDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// JalaliDate is a Solar Hijri calendar date.
type JalaliDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// NewGregorianDate returns a validated Gregorian date.
func NewGregorianDate(year, month, day int) (GregorianDate, error) {
	d := GregorianDate{Year: year, Month: month, Day: day}
	if err := d.Validate(); err != nil {
		return GregorianDate{}, err
	}
	return d, nil
}

// NewJalaliDate returns a validated Jalali date.
func NewJalaliDate(year, month, day int) (JalaliDate, error) {
	d := JalaliDate{Year: year, Month: month, Day: day}
	if err := d.Validate(); err != nil {
		return JalaliDate{}, err
	}
	return d, nil
}

// Validate checks the date against calendar rules and the supported range.
func (d GregorianDate) Validate() error {
	if d.Month < 1 || d.Month > 12 {
		return d.invalid("month must be between 1 and 12")
	}
	if d.Day < 1 || d.Day > GregorianMonthLength(d.Year, d.Month) {
		return d.invalid(fmt.Sprintf("day must be between 1 and %d", GregorianMonthLength(d.Year, d.Month)))
	}
	if d.Before(minGregorian) || maxGregorian.Before(d) {
		return d.invalid(fmt.Sprintf("outside supported range %s to %s", minGregorian, maxGregorian))
	}
	return nil
}

// Validate checks the date against calendar rules and the supported range.
func (d JalaliDate) Validate() error {
	if d.Year < MinYear || d.Year > MaxYear {
		return d.invalid(fmt.Sprintf("year must be between %d and %d", MinYear, MaxYear))
	}
	if d.Month < 1 || d.Month > 12 {
		return d.invalid("month must be between 1 and 12")
	}
	if d.Day < 1 || d.Day > MonthLength(d.Year, d.Month) {
		return d.invalid(fmt.Sprintf("day must be between 1 and %d", MonthLength(d.Year, d.Month)))
	}
	return nil
}

// ToJalali converts the date. The receiver is not validated.
func (d GregorianDate) ToJalali() JalaliDate {
	jy, jm, jd := ToJalali(d.Year, d.Month, d.Day)
	return JalaliDate{Year: jy, Month: jm, Day: jd}
}

// ToGregorian converts the date. The receiver is not validated.
func (d JalaliDate) ToGregorian() GregorianDate {
	gy, gm, gd := ToGregorian(d.Year, d.Month, d.Day)
	return GregorianDate{Year: gy, Month: gm, Day: gd}
}

// String formats the date as YYYY-MM-DD.
func (d GregorianDate) String() string {
	return FormatGregorian(d)
}

// String formats the date as YYYY/MM/DD.
func (d JalaliDate) String() string {
	return FormatJalali(d)
}

// Before reports whether d is earlier than other.
func (d GregorianDate) Before(other GregorianDate) bool {
	return compare(d.Year, d.Month, d.Day, other.Year, other.Month, other.Day) < 0
}

// Before reports whether d is earlier than other.
func (d JalaliDate) Before(other JalaliDate) bool {
	return compare(d.Year, d.Month, d.Day, other.Year, other.Month, other.Day) < 0
}

// Equal reports whether both dates name the same day.
func (d JalaliDate) Equal(other JalaliDate) bool {
	return d == other
}

// Equal reports whether both dates name the same day.
func (d GregorianDate) Equal(other GregorianDate) bool {
	return d == other
}

// IsLeapYear reports whether the date's Jalali year is leap.
func (d JalaliDate) IsLeapYear() bool {
	return IsLeap(d.Year)
}

func (d GregorianDate) invalid(reason string) error {
	return &InvalidDateError{Calendar: Gregorian, Year: d.Year, Month: d.Month, Day: d.Day, Reason: reason}
}

func (d JalaliDate) invalid(reason string) error {
	return &InvalidDateError{Calendar: Jalali, Year: d.Year, Month: d.Month, Day: d.Day, Reason: reason}
}

var (
	minGregorian = GregorianDate{Year: 1601, Month: 3, Day: 21}
	maxGregorian = GregorianDate{Year: 9999, Month: 3, Day: 20}
)

func compare(y1, m1, d1, y2, m2, d2 int) int {
	switch {
	case y1 != y2:
		return y1 - y2
	case m1 != m2:
		return m1 - m2
	default:
		return d1 - d2
	}
}
