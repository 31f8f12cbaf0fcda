package database

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mizan-accounting/jalali-api/internal/calendar"
)

// Occasion is a named day on the Jalali calendar.
type Occasion struct {
	ID        int64     `json:"id"`
	Year      int       `json:"year"` // 0 = every year
	Month     int       `json:"month"`
	Day       int       `json:"day"`
	Title     string    `json:"title"`
	IsHoliday bool      `json:"is_holiday"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Recurring reports whether the occasion repeats every year.
func (o *Occasion) Recurring() bool {
	return o.Year == 0
}

// OccursIn reports whether the occasion falls in the given Jalali year.
// A recurring Esfand 30 occasion only occurs in leap years.
func (o *Occasion) OccursIn(year int) bool {
	if !o.Recurring() && o.Year != year {
		return false
	}
	return o.Day <= calendar.MonthLength(year, o.Month)
}

// Validate checks the occasion before it is stored.
func (o *Occasion) Validate() error {
	var errs []error

	if strings.TrimSpace(o.Title) == "" {
		errs = append(errs, errors.New("title is required"))
	}

	if o.Recurring() {
		if o.Month < 1 || o.Month > 12 {
			errs = append(errs, fmt.Errorf("month must be between 1 and 12, got %d", o.Month))
		} else if maxDay := maxRecurringDay(o.Month); o.Day < 1 || o.Day > maxDay {
			errs = append(errs, fmt.Errorf("day must be between 1 and %d, got %d", maxDay, o.Day))
		}
	} else if _, err := calendar.NewJalaliDate(o.Year, o.Month, o.Day); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// maxRecurringDay allows Esfand 30, which only exists in leap years.
func maxRecurringDay(month int) int {
	if month <= 6 {
		return 31
	}
	return 30
}
