package calendar

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	persianZero = '۰' // U+06F0
	arabicZero  = '٠' // U+0660
)

var persianPrinter = message.NewPrinter(language.Persian)

// NormalizeDigits replaces Persian and Arabic-Indic digits with ASCII digits.
func NormalizeDigits(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= persianZero && r <= persianZero+9:
			return '0' + (r - persianZero)
		case r >= arabicZero && r <= arabicZero+9:
			return '0' + (r - arabicZero)
		}
		return r
	}, s)
}

// ToPersianDigits replaces ASCII digits with Persian digits.
func ToPersianDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return persianZero + (r - '0')
		}
		return r
	}, s)
}

// FormatPrice keeps the digits of value and formats them as a grouped
// number for the fa locale. It returns "" when value holds no digits.
func FormatPrice(value string) string {
	digits := onlyDigits(NormalizeDigits(value))
	if digits == "" {
		return ""
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return ""
	}
	return persianPrinter.Sprintf("%d", n)
}

// ParsePrice reads a price typed with any mix of Persian or ASCII digits and
// separators. Input without digits, or too large for int64, yields 0.
func ParsePrice(value string) int64 {
	digits := onlyDigits(NormalizeDigits(value))
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
