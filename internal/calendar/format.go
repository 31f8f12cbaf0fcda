package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	gregorianPattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	jalaliPattern    = regexp.MustCompile(`^(\d{4})/(\d{1,2})/(\d{1,2})$`)
)

// FormatGregorian formats a date as YYYY-MM-DD.
func FormatGregorian(d GregorianDate) string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// FormatJalali formats a date as YYYY/MM/DD.
func FormatJalali(d JalaliDate) string {
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, d.Month, d.Day)
}

// ParseGregorian parses and validates a YYYY-MM-DD date.
// Persian and Arabic-Indic digits are accepted.
func ParseGregorian(s string) (GregorianDate, error) {
	y, m, d, err := splitDate(gregorianPattern, s, "YYYY-MM-DD")
	if err != nil {
		return GregorianDate{}, err
	}
	return NewGregorianDate(y, m, d)
}

// ParseJalali parses and validates a YYYY/MM/DD date. Month and day may be
// unpadded. Persian and Arabic-Indic digits are accepted.
func ParseJalali(s string) (JalaliDate, error) {
	y, m, d, err := splitDate(jalaliPattern, s, "YYYY/MM/DD")
	if err != nil {
		return JalaliDate{}, err
	}
	return NewJalaliDate(y, m, d)
}

func splitDate(pattern *regexp.Regexp, s, layout string) (int, int, int, error) {
	matches := pattern.FindStringSubmatch(NormalizeDigits(strings.TrimSpace(s)))
	if len(matches) != 4 {
		return 0, 0, 0, fmt.Errorf("%w: %q does not match %s", ErrInvalidDate, s, layout)
	}

	parts := make([]int, 3)
	for i := range parts {
		n, err := strconv.Atoi(matches[i+1])
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q: %v", ErrInvalidDate, s, err)
		}
		parts[i] = n
	}
	return parts[0], parts[1], parts[2], nil
}

// JalaliDisplay renders a stored YYYY-MM-DD value for display in Jalali form.
//
// It is deliberately lenient: an empty or incomplete value gives "", a value
// with non-numeric parts is returned unchanged, and numeric parts are
// converted without validation.
func JalaliDisplay(iso string) string {
	parts := strings.Split(iso, "-")
	if iso == "" || len(parts) < 3 {
		return ""
	}

	nums := make([]int, 3)
	for i := range nums {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			return iso
		}
		nums[i] = n
	}

	jy, jm, jd := ToJalali(nums[0], nums[1], nums[2])
	return FormatJalali(JalaliDate{Year: jy, Month: jm, Day: jd})
}

// InputResult is the state of a Jalali date field after a keystroke.
type InputResult struct {
	// Text is the masked input: YYYY, YYYY/MM or YYYY/MM/DD.
	Text string `json:"text"`
	// Complete is set once Text holds a full, valid date.
	Complete  bool           `json:"complete"`
	Jalali    *JalaliDate    `json:"jalali,omitempty"`
	Gregorian *GregorianDate `json:"gregorian,omitempty"`
}

// MaskJalaliInput turns raw typed text into a masked Jalali date.
// Non-digits are dropped and at most eight digits are kept. Only a full
// eight-digit input naming a valid date yields a converted Gregorian value.
func MaskJalaliInput(raw string) InputResult {
	in := onlyDigits(NormalizeDigits(raw))
	if len(in) > 8 {
		in = in[:8]
	}

	var text string
	switch {
	case len(in) > 6:
		text = in[:4] + "/" + in[4:6] + "/" + in[6:]
	case len(in) > 4:
		text = in[:4] + "/" + in[4:]
	default:
		text = in
	}

	res := InputResult{Text: text}
	if len(text) != 10 {
		return res
	}

	j, err := ParseJalali(text)
	if err != nil {
		return res
	}
	g := j.ToGregorian()
	res.Complete = true
	res.Jalali = &j
	res.Gregorian = &g
	return res
}
