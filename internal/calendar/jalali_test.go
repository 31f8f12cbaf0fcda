package calendar

import (
	"testing"
	"time"
)

func TestToJalali_KnownDates(t *testing.T) {
	tests := []struct {
		name       string
		gy, gm, gd int
		want       JalaliDate
	}{
		{"nowruz 1358", 1979, 3, 21, JalaliDate{1358, 1, 1}},
		{"nowruz 1403", 2024, 3, 20, JalaliDate{1403, 1, 1}},
		{"nowruz 1404", 2025, 3, 21, JalaliDate{1404, 1, 1}},
		{"nowruz 1402", 2023, 3, 21, JalaliDate{1402, 1, 1}},
		{"last day of 1401", 2023, 3, 20, JalaliDate{1401, 12, 29}},
		{"last day of 1402", 2024, 3, 19, JalaliDate{1402, 12, 29}},
		{"leap day 1403", 2025, 3, 20, JalaliDate{1403, 12, 30}},
		{"y2k", 2000, 1, 1, JalaliDate{1378, 10, 11}},
		{"gregorian leap day", 2024, 2, 29, JalaliDate{1402, 12, 10}},
		{"year end", 1990, 12, 31, JalaliDate{1369, 10, 10}},
		{"first supported day", 1601, 3, 21, JalaliDate{980, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jy, jm, jd := ToJalali(tt.gy, tt.gm, tt.gd)
			got := JalaliDate{jy, jm, jd}
			if got != tt.want {
				t.Errorf("ToJalali(%d, %d, %d) = %v, want %v", tt.gy, tt.gm, tt.gd, got, tt.want)
			}
		})
	}
}

func TestToGregorian_KnownDates(t *testing.T) {
	tests := []struct {
		jy, jm, jd int
		want       GregorianDate
	}{
		{1403, 1, 1, GregorianDate{2024, 3, 20}},
		{1358, 1, 1, GregorianDate{1979, 3, 21}},
		{1399, 12, 30, GregorianDate{2021, 3, 20}},
		{1402, 12, 29, GregorianDate{2024, 3, 19}},
		{1404, 12, 29, GregorianDate{2026, 3, 20}},
		{1400, 7, 1, GregorianDate{2021, 9, 23}},
		{1403, 6, 31, GregorianDate{2024, 9, 21}},
		{980, 1, 1, GregorianDate{1601, 3, 21}},
		{MaxYear, 12, 30, GregorianDate{9999, 3, 20}},
	}

	for _, tt := range tests {
		gy, gm, gd := ToGregorian(tt.jy, tt.jm, tt.jd)
		got := GregorianDate{gy, gm, gd}
		if got != tt.want {
			t.Errorf("ToGregorian(%d, %d, %d) = %v, want %v", tt.jy, tt.jm, tt.jd, got, tt.want)
		}
	}
}

func TestIsLeap(t *testing.T) {
	if !IsLeap(1403) {
		t.Error("IsLeap(1403) = false, want true")
	}
	if IsLeap(1404) {
		t.Error("IsLeap(1404) = true, want false")
	}

	// Leap years of the 33-year rule between 1370 and 1440.
	want := map[int]bool{
		1370: true, 1375: true, 1379: true, 1383: true, 1387: true, 1391: true,
		1395: true, 1399: true, 1403: true, 1408: true, 1412: true, 1416: true,
		1420: true, 1424: true, 1428: true, 1432: true, 1436: true,
	}
	for y := 1370; y <= 1440; y++ {
		if got := IsLeap(y); got != want[y] {
			t.Errorf("IsLeap(%d) = %v, want %v", y, got, want[y])
		}
	}
}

func TestIsLeap_SubCyclePeriodicity(t *testing.T) {
	for start := MinYear; start < MinYear+2820; start += 33 {
		leaps := 0
		for y := start; y < start+33; y++ {
			if IsLeap(y) {
				leaps++
			}
			if IsLeap(y) != IsLeap(y+33) {
				t.Fatalf("IsLeap(%d) = %v but IsLeap(%d) = %v", y, IsLeap(y), y+33, IsLeap(y+33))
			}
		}
		if leaps != 8 {
			t.Fatalf("33 years from %d have %d leap years, want 8", start, leaps)
		}
	}
}

// The leap rule must agree with the year lengths the conversion produces.
func TestIsLeap_MatchesConversion(t *testing.T) {
	for y := MinYear; y < 3000; y++ {
		start := JalaliDate{y, 1, 1}.ToGregorian()
		next := JalaliDate{y + 1, 1, 1}.ToGregorian()
		days := DaysBetween(start, next)
		if days != YearLength(y) {
			t.Fatalf("year %d: conversion spans %d days, YearLength = %d", y, days, YearLength(y))
		}
	}
}

func TestIsLeapArithmetic(t *testing.T) {
	// Published leap years of the 2820-year arithmetic rule.
	want := map[int]bool{
		1370: true, 1375: true, 1379: true, 1383: true, 1387: true, 1391: true,
		1395: true, 1399: true, 1404: true, 1408: true, 1412: true, 1416: true,
		1420: true, 1424: true, 1428: true, 1432: true, 1437: true,
	}
	for y := 1370; y <= 1440; y++ {
		if got := IsLeapArithmetic(y); got != want[y] {
			t.Errorf("IsLeapArithmetic(%d) = %v, want %v", y, got, want[y])
		}
	}
}

func TestIsLeapArithmetic_GrandCycle(t *testing.T) {
	leaps := 0
	for y := 475; y < 475+2820; y++ {
		if IsLeapArithmetic(y) {
			leaps++
		}
		if IsLeapArithmetic(y) != IsLeapArithmetic(y+2820) {
			t.Fatalf("IsLeapArithmetic(%d) differs from year %d", y, y+2820)
		}
	}
	if leaps != 683 {
		t.Errorf("leap years in one 2820-year cycle = %d, want 683", leaps)
	}
}

func TestMonthLength(t *testing.T) {
	tests := []struct {
		jy, jm, want int
	}{
		{1403, 1, 31},
		{1403, 6, 31},
		{1403, 7, 30},
		{1403, 11, 30},
		{1403, 12, 30},
		{1404, 12, 29},
	}

	for _, tt := range tests {
		if got := MonthLength(tt.jy, tt.jm); got != tt.want {
			t.Errorf("MonthLength(%d, %d) = %d, want %d", tt.jy, tt.jm, got, tt.want)
		}
	}
}

func TestMonthLength_SumsToYearLength(t *testing.T) {
	for y := 1300; y <= 1500; y++ {
		sum := 0
		for m := 1; m <= 12; m++ {
			sum += MonthLength(y, m)
		}
		want := 365
		if IsLeap(y) {
			want = 366
		}
		if sum != want {
			t.Errorf("year %d: months sum to %d, want %d", y, sum, want)
		}
	}
}

func TestRoundTrip_Gregorian(t *testing.T) {
	// Every day from the first supported date through 2100.
	d := time.Date(1601, time.March, 21, 12, 0, 0, 0, time.UTC)
	end := time.Date(2100, time.December, 31, 12, 0, 0, 0, time.UTC)
	for ; !d.After(end); d = d.AddDate(0, 0, 1) {
		gy, gm, gd := d.Year(), int(d.Month()), d.Day()
		jy, jm, jd := ToJalali(gy, gm, gd)
		ry, rm, rd := ToGregorian(jy, jm, jd)
		if ry != gy || rm != gm || rd != gd {
			t.Fatalf("round trip %04d-%02d-%02d -> %d/%d/%d -> %04d-%02d-%02d", gy, gm, gd, jy, jm, jd, ry, rm, rd)
		}
	}
}

func TestRoundTrip_Jalali(t *testing.T) {
	for jy := MinYear; jy <= 1500; jy++ {
		for jm := 1; jm <= 12; jm++ {
			for jd := 1; jd <= MonthLength(jy, jm); jd++ {
				gy, gm, gd := ToGregorian(jy, jm, jd)
				ry, rm, rd := ToJalali(gy, gm, gd)
				if ry != jy || rm != jm || rd != jd {
					t.Fatalf("round trip %d/%d/%d -> %d-%d-%d -> %d/%d/%d", jy, jm, jd, gy, gm, gd, ry, rm, rd)
				}
			}
		}
	}
}

func TestRoundTrip_RangeEdges(t *testing.T) {
	dates := []GregorianDate{
		{1601, 3, 21},
		{1700, 2, 28}, {1700, 3, 1},
		{1800, 2, 28}, {1800, 3, 1},
		{1900, 2, 28}, {1900, 3, 1},
		{2000, 2, 29}, {2000, 3, 1},
		{2100, 2, 28}, {2100, 3, 1},
		{9999, 3, 20},
	}
	for _, g := range dates {
		if got := g.ToJalali().ToGregorian(); got != g {
			t.Errorf("round trip %v = %v", g, got)
		}
	}
}

func TestToJalali_Monotonic(t *testing.T) {
	d := time.Date(1995, time.January, 1, 12, 0, 0, 0, time.UTC)
	end := time.Date(2030, time.December, 31, 12, 0, 0, 0, time.UTC)

	prev := FromTime(d)
	for d = d.AddDate(0, 0, 1); !d.After(end); d = d.AddDate(0, 0, 1) {
		cur := FromTime(d)
		if !prev.Before(cur) {
			t.Fatalf("%s: %v does not follow %v", d.Format("2006-01-02"), cur, prev)
		}

		var want JalaliDate
		switch {
		case prev.Day < MonthLength(prev.Year, prev.Month):
			want = JalaliDate{prev.Year, prev.Month, prev.Day + 1}
		case prev.Month < 12:
			want = JalaliDate{prev.Year, prev.Month + 1, 1}
		default:
			want = JalaliDate{prev.Year + 1, 1, 1}
		}
		if cur != want {
			t.Fatalf("%s: got %v after %v, want %v", d.Format("2006-01-02"), cur, prev, want)
		}
		prev = cur
	}
}

func TestToJalali_GarbageInDoesNotPanic(t *testing.T) {
	inputs := [][3]int{
		{2024, 13, 1},
		{2024, 0, 1},
		{2024, 2, 45},
		{-50, 1, 1},
		{0, 0, 0},
	}
	for _, in := range inputs {
		ToJalali(in[0], in[1], in[2])
	}

	// Partially typed Jalali input still produces a value.
	ToGregorian(1403, 13, 40)
	ToGregorian(0, 0, 0)
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{7, 2, 3},
		{-7, 2, -4},
		{-8, 2, -4},
		{0, 5, 0},
		{-1, 365, -1},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
