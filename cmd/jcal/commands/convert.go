package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mizan-accounting/jalali-api/internal/calendar"
)

// NewToJalaliCommand creates the to-jalali command
func NewToJalaliCommand() *cobra.Command {
	var persian bool

	cmd := &cobra.Command{
		Use:     "to-jalali YYYY-MM-DD",
		Short:   "Convert a Gregorian date to Jalali",
		Example: "  jcal to-jalali 2024-03-20",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := calendar.ParseGregorian(args[0])
			if err != nil {
				return err
			}

			out := calendar.FormatJalali(g.ToJalali())
			if persian {
				out = calendar.ToPersianDigits(out)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&persian, "persian", false, "print Persian digits")
	return cmd
}

// NewToGregorianCommand creates the to-gregorian command
func NewToGregorianCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "to-gregorian YYYY/MM/DD",
		Short:   "Convert a Jalali date to Gregorian",
		Example: "  jcal to-gregorian 1403/01/01",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := calendar.ParseJalali(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), calendar.FormatGregorian(j.ToGregorian()))
			return nil
		},
	}
}

// NewLeapCommand creates the leap command
func NewLeapCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "leap YEAR [YEAR...]",
		Short: "Report whether Jalali years are leap years",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				year, err := parseYear(arg)
				if err != nil {
					return err
				}

				kind := "common"
				if calendar.IsLeap(year) {
					kind = "leap"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d %s %d days\n", year, kind, calendar.YearLength(year))
			}
			return nil
		},
	}
}

// NewEndDateCommand creates the end-date command
func NewEndDateCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "end-date START DAYS",
		Short:   "Compute a contract end date from a Gregorian start and a duration in days",
		Example: "  jcal end-date 2024-03-20 30",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := calendar.ParseGregorian(args[0])
			if err != nil {
				return err
			}
			days, err := strconv.Atoi(calendar.NormalizeDigits(args[1]))
			if err != nil {
				return fmt.Errorf("days must be an integer, got %q", args[1])
			}

			end := calendar.EndDate(start, days)
			if err := end.Validate(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n",
				calendar.FormatJalali(end), calendar.FormatGregorian(end.ToGregorian()))
			return nil
		},
	}
}

// NewPriceCommand creates the price command
func NewPriceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "price VALUE",
		Short: "Format an amount with Persian digit grouping",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatted := calendar.FormatPrice(args[0])
			if formatted == "" {
				return fmt.Errorf("value %q contains no digits", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatted)
			return nil
		},
	}
}

func parseYear(s string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(calendar.NormalizeDigits(s)))
	if err != nil {
		return 0, fmt.Errorf("year must be an integer, got %q", s)
	}
	if year < calendar.MinYear || year > calendar.MaxYear {
		return 0, fmt.Errorf("year %d is outside %d-%d", year, calendar.MinYear, calendar.MaxYear)
	}
	return year, nil
}

func parseMonth(s string) (int, error) {
	month, err := strconv.Atoi(strings.TrimSpace(calendar.NormalizeDigits(s)))
	if err != nil || month < 1 || month > 12 {
		return 0, fmt.Errorf("month must be between 1 and 12, got %q", s)
	}
	return month, nil
}
