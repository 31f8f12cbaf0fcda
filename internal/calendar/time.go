package calendar

import (
	"fmt"
	"time"
	_ "time/tzdata" // Asia/Tehran on hosts without zoneinfo
)

// TehranZone is the IANA name of Iran Standard Time.
const TehranZone = "Asia/Tehran"

// Tehran returns the Asia/Tehran location.
func Tehran() *time.Location {
	loc, err := time.LoadLocation(TehranZone)
	if err != nil {
		// tzdata is embedded, so this only happens with a broken build.
		return time.FixedZone("IRST", 3*3600+1800)
	}
	return loc
}

// LoadLocation resolves a time zone name, defaulting to Tehran when empty.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return Tehran(), nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load location %q: %w", name, err)
	}
	return loc, nil
}

// GregorianFromTime returns the calendar date of t in its own location.
func GregorianFromTime(t time.Time) GregorianDate {
	return GregorianDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// FromTime returns the Jalali date of t in its own location.
func FromTime(t time.Time) JalaliDate {
	return GregorianFromTime(t).ToJalali()
}

// Today returns the Jalali date of now as seen in loc.
func Today(now time.Time, loc *time.Location) JalaliDate {
	return FromTime(now.In(loc))
}

// Time returns midnight of d in loc.
func (d GregorianDate) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, loc)
}

// Time returns midnight of d in loc.
func (d JalaliDate) Time(loc *time.Location) time.Time {
	return d.ToGregorian().Time(loc)
}

// Weekday returns the day of the week of d.
func (d GregorianDate) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

// Weekday returns the day of the week of d.
func (d JalaliDate) Weekday() time.Weekday {
	return d.ToGregorian().Weekday()
}

// AddDays returns d shifted by n days. Noon UTC avoids DST edge cases.
func AddDays(d GregorianDate, n int) GregorianDate {
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 12, 0, 0, 0, time.UTC).AddDate(0, 0, n)
	return GregorianFromTime(t)
}

// DaysBetween returns the number of days from a to b.
func DaysBetween(a, b GregorianDate) int {
	return int(b.Time(time.UTC).Sub(a.Time(time.UTC)).Hours() / 24)
}

// EndDate returns the Jalali date that is durationDays after start, as
// shown for a contract's end date.
func EndDate(start GregorianDate, durationDays int) JalaliDate {
	return AddDays(start, durationDays).ToJalali()
}
