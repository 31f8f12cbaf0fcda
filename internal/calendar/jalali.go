// Package calendar provides Jalali (Solar Hijri) calendar calculations.
package calendar

// Supported year range. Inside it the two epoch branches of ToJalali and
// ToGregorian are exact inverses of each other: Gregorian 1601-03-21 through
// 9999-03-20.
const (
	MinYear = 980
	MaxYear = 9377
)

// gregorianDaysBefore holds the days before each Gregorian month in a common year.
var gregorianDaysBefore = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// ToJalali converts a Gregorian date to the Jalali calendar.
//
// The day count is reduced through nested cycles: 33-year blocks of 12053
// days, 4-year blocks of 1461 days, then single years. Years up to 1600 are
// counted from 621 with a Jalali base of 0; later years from 1600 with a base
// of 979. Both branches are kept as-is; they are not algebraically identical.
//
// No validation is done. Out-of-range input produces a meaningless but
// deterministic result, which lets callers feed partially typed dates.
func ToJalali(gy, gm, gd int) (jy, jm, jd int) {
	if gy <= 1600 {
		jy = 0
		gy -= 621
	} else {
		jy = 979
		gy -= 1600
	}

	gy2 := gy
	if gm > 2 {
		gy2 = gy + 1
	}

	days := 365*gy + floorDiv(gy2+3, 4) - floorDiv(gy2+99, 100) + floorDiv(gy2+399, 400) -
		80 + gd + gregorianDaysBefore[clampMonthIndex(gm-1, 11)]

	jy += 33 * floorDiv(days, 12053)
	days %= 12053

	jy += 4 * floorDiv(days, 1461)
	days %= 1461

	if days > 365 {
		jy += floorDiv(days-1, 365)
		days = (days - 1) % 365
	}

	if days < 186 {
		jm = 1 + floorDiv(days, 31)
		jd = 1 + days%31
	} else {
		jm = 7 + floorDiv(days-186, 30)
		jd = 1 + (days-186)%30
	}

	return jy, jm, jd
}

// ToGregorian converts a Jalali date to the Gregorian calendar.
//
// It mirrors ToJalali: years up to 979 count from Gregorian 621, later years
// from 1600. The Jalali leap days come from the 33-year sub-cycle term
// floor(jy/33)*8 + floor((jy%33+3)/4); the Gregorian side then unwinds 400,
// 100, 4 and 1 year cycles before walking the month table.
func ToGregorian(jy, jm, jd int) (gy, gm, gd int) {
	if jy <= 979 {
		gy = 621
	} else {
		gy = 1600
		jy -= 979
	}

	days := 365*jy + floorDiv(jy, 33)*8 + floorDiv(jy%33+3, 4) + 78 + jd
	if jm < 7 {
		days += (jm - 1) * 31
	} else {
		days += (jm-7)*30 + 186
	}

	gy += 400 * floorDiv(days, 146097)
	days %= 146097

	if days > 36524 {
		days--
		gy += 100 * floorDiv(days, 36524)
		days %= 36524
		// Non-400 century years have no Feb 29.
		if days >= 365 {
			days++
		}
	}

	gy += 4 * floorDiv(days, 1461)
	days %= 1461

	if days > 365 {
		gy += floorDiv(days-1, 365)
		days = (days - 1) % 365
	}

	gd = days + 1

	monthDays := [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	if isGregorianLeap(gy) {
		monthDays[2] = 29
	}

	for gm = 0; gm < 13 && gd > monthDays[gm]; gm++ {
		gd -= monthDays[gm]
	}

	return gy, gm, gd
}

// IsLeap reports whether the Jalali year jy has 366 days (Esfand has 30 days).
//
// This is the leap rule encoded by ToGregorian: counted from the same epoch
// base, a year is leap when its position in the 33-year sub-cycle is a
// multiple of four, except position 32. MonthLength and date validation use
// it, so every valid Jalali date round-trips through ToGregorian.
func IsLeap(jy int) bool {
	r := jy
	if jy > 979 {
		r = jy - 979
	}
	pos := r % 33
	if pos < 0 {
		pos += 33
	}
	return pos%4 == 0 && pos != 32
}

// IsLeapArithmetic reports leap years using the closed-form 2820-year rule:
//
//	((((jy - 474) % 2820) + 474 + 38) * 682) % 2816 < 682
//
// Go's % truncates toward zero, which is the semantics the formula was
// written against. The 2820-year rule places some leap years one year away
// from the 33-year rule (1403 vs 1404, for example), so it is not used for
// conversion.
func IsLeapArithmetic(jy int) bool {
	return ((((jy-474)%2820)+474+38)*682)%2816 < 682
}

// MonthLength returns the number of days in Jalali month jm of year jy.
// Months 1-6 have 31 days, 7-11 have 30, and Esfand has 30 in leap years
// and 29 otherwise.
func MonthLength(jy, jm int) int {
	if jm <= 6 {
		return 31
	}
	if jm <= 11 {
		return 30
	}
	if IsLeap(jy) {
		return 30
	}
	return 29
}

// YearLength returns 366 for leap years and 365 otherwise.
func YearLength(jy int) int {
	if IsLeap(jy) {
		return 366
	}
	return 365
}

// GregorianMonthLength returns the number of days in a Gregorian month.
func GregorianMonthLength(gy, gm int) int {
	switch gm {
	case 2:
		if isGregorianLeap(gy) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func isGregorianLeap(gy int) bool {
	return (gy%4 == 0 && gy%100 != 0) || gy%400 == 0
}

// floorDiv divides rounding toward negative infinity. b must be positive.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// clampMonthIndex keeps table lookups in bounds for garbage input.
func clampMonthIndex(i, hi int) int {
	if i < 0 {
		return 0
	}
	if i > hi {
		return hi
	}
	return i
}
