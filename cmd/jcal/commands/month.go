package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mizan-accounting/jalali-api/internal/calendar"
)

// NewMonthCommand creates the month command
func NewMonthCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "month YEAR MONTH",
		Short:   "Print a Saturday-first grid of a Jalali month",
		Example: "  jcal month 1403 12",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseYear(args[0])
			if err != nil {
				return err
			}
			month, err := parseMonth(args[1])
			if err != nil {
				return err
			}

			grid, err := calendar.BuildMonthGrid(year, month)
			if err != nil {
				return err
			}
			renderGrid(cmd.OutOrStdout(), grid)
			return nil
		},
	}
}

// renderGrid writes the grid as seven 4-wide columns. Fridays are starred.
func renderGrid(w io.Writer, grid calendar.MonthGrid) {
	fmt.Fprintf(w, "%s %d\n", grid.Name, grid.Year)

	header := make([]string, 0, 7)
	for _, name := range calendar.WeekdayNames() {
		header = append(header, fmt.Sprintf("%4s", name[:3]))
	}
	fmt.Fprintln(w, strings.Join(header, ""))

	var line strings.Builder
	line.WriteString(strings.Repeat("    ", grid.LeadingBlanks))
	for _, cell := range grid.Days {
		mark := " "
		if cell.Weekend {
			mark = "*"
		}
		fmt.Fprintf(&line, "%3d%s", cell.Jalali.Day, mark)
		if cell.Column == 6 {
			fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
			line.Reset()
		}
	}
	if line.Len() > 0 {
		fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
	}
}
