package calendar

import (
	"fmt"
	"time"
)

// monthNames are the transliterated Jalali month names.
var monthNames = [12]string{
	"Farvardin", "Ordibehesht", "Khordad", "Tir", "Mordad", "Shahrivar",
	"Mehr", "Aban", "Azar", "Dey", "Bahman", "Esfand",
}

// weekdayNames start the week on Saturday (Shanbeh).
var weekdayNames = [7]string{"Shanbeh", "Yekshanbeh", "Doshanbeh", "Seshanbeh", "Chaharshanbeh", "Panjshanbeh", "Jomeh"}

// MonthName returns the Jalali month name, or "" for an out-of-range month.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// WeekdayNames returns the weekday names, Saturday first.
func WeekdayNames() []string {
	names := weekdayNames
	return names[:]
}

// WeekColumn returns the Saturday-first column (0-6) of a weekday.
func WeekColumn(w time.Weekday) int {
	return (int(w) + 1) % 7
}

// Month identifies a Jalali month.
type Month struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// Next returns the following month.
func (m Month) Next() Month {
	if m.Month == 12 {
		return Month{Year: m.Year + 1, Month: 1}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

// Prev returns the preceding month.
func (m Month) Prev() Month {
	if m.Month == 1 {
		return Month{Year: m.Year - 1, Month: 12}
	}
	return Month{Year: m.Year, Month: m.Month - 1}
}

// Days returns the length of the month.
func (m Month) Days() int {
	return MonthLength(m.Year, m.Month)
}

// Name returns the month name.
func (m Month) Name() string {
	return MonthName(m.Month)
}

// DayCell is one day of a month grid.
type DayCell struct {
	Jalali    JalaliDate    `json:"jalali"`
	Gregorian GregorianDate `json:"gregorian"`
	Weekday   string        `json:"weekday"`
	Column    int           `json:"column"`
	Weekend   bool          `json:"weekend"`
}

// MonthGrid lays out a Jalali month for a Saturday-first calendar view.
type MonthGrid struct {
	Month
	Name          string    `json:"name"`
	LeadingBlanks int       `json:"leading_blanks"`
	Days          []DayCell `json:"days"`
}

// BuildMonthGrid builds the grid for a Jalali month.
func BuildMonthGrid(year, month int) (MonthGrid, error) {
	if _, err := NewJalaliDate(year, month, 1); err != nil {
		return MonthGrid{}, fmt.Errorf("build month grid: %w", err)
	}

	m := Month{Year: year, Month: month}
	first := JalaliDate{Year: year, Month: month, Day: 1}.ToGregorian()

	grid := MonthGrid{
		Month:         m,
		Name:          m.Name(),
		LeadingBlanks: WeekColumn(first.Weekday()),
		Days:          make([]DayCell, 0, m.Days()),
	}

	for day := 1; day <= m.Days(); day++ {
		g := AddDays(first, day-1)
		wd := g.Weekday()
		grid.Days = append(grid.Days, DayCell{
			Jalali:    JalaliDate{Year: year, Month: month, Day: day},
			Gregorian: g,
			Weekday:   weekdayNames[WeekColumn(wd)],
			Column:    WeekColumn(wd),
			Weekend:   wd == time.Friday,
		})
	}

	return grid, nil
}
