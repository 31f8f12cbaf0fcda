// Package commands implements the jcal subcommands.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the jcal command tree.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jcal",
		Short: "Jalali calendar tools",
		Long: `jcal converts dates between the Gregorian and Jalali (Solar Hijri)
calendars, prints month grids, computes contract end dates and manages the
occasions database used by the API server.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(NewToJalaliCommand())
	rootCmd.AddCommand(NewToGregorianCommand())
	rootCmd.AddCommand(NewLeapCommand())
	rootCmd.AddCommand(NewMonthCommand())
	rootCmd.AddCommand(NewEndDateCommand())
	rootCmd.AddCommand(NewPriceCommand())
	rootCmd.AddCommand(NewOccasionsCommand())
	rootCmd.AddCommand(NewSmokeCommand())
	rootCmd.AddCommand(NewCoverageCommand())

	return rootCmd
}
