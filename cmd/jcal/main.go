// Command jcal converts dates between the Gregorian and Jalali calendars,
// prints month grids and manages the occasions database.
package main

import (
	"os"

	"github.com/mizan-accounting/jalali-api/cmd/jcal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
