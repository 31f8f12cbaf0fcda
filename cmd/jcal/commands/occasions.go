package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mizan-accounting/jalali-api/internal/database"
)

// ImportFile is the JSON layout accepted by "occasions import".
type ImportFile struct {
	Source    string           `json:"source,omitempty"`
	Occasions []ImportOccasion `json:"occasions"`
}

// ImportOccasion is one entry of an import file. A zero year recurs yearly.
type ImportOccasion struct {
	Year      int    `json:"year,omitempty"`
	Month     int    `json:"month"`
	Day       int    `json:"day"`
	Title     string `json:"title"`
	IsHoliday bool   `json:"is_holiday"`
}

// ImportStats tracks import statistics.
type ImportStats struct {
	Created    int
	Duplicates int
}

// NewOccasionsCommand creates the occasions command with subcommands
func NewOccasionsCommand() *cobra.Command {
	occasionsCmd := &cobra.Command{
		Use:   "occasions",
		Short: "Manage the occasions database",
	}

	occasionsCmd.AddCommand(newOccasionsImportCommand())
	occasionsCmd.AddCommand(newOccasionsListCommand())

	return occasionsCmd
}

func newOccasionsImportCommand() *cobra.Command {
	var (
		jsonPath       string
		dbPath         string
		skipDuplicates bool
		verbose        bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import occasions from a JSON file in one transaction",
		Long: `Import occasions from a JSON file.

The database is created and migrated if needed. All occasions are inserted in
a single transaction: any invalid entry aborts the whole import. Entries that
already exist fail the import unless --skip-duplicates is set.`,
		Example: "  jcal occasions import --json data/holidays-1404.json --db data/calendar.db",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newCLILogger(cmd.ErrOrStderr(), verbose)

			f, err := readImportFile(jsonPath)
			if err != nil {
				return err
			}

			stats, err := runImport(cmd.Context(), dbPath, f, skipDuplicates, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "=== Import Summary ===")
			fmt.Fprintf(out, "Occasions in file:   %d\n", len(f.Occasions))
			fmt.Fprintf(out, "Created:             %d\n", stats.Created)
			fmt.Fprintf(out, "Skipped duplicates:  %d\n", stats.Duplicates)
			return nil
		},
	}

	cmd.Flags().StringVar(&jsonPath, "json", "", "path to the occasions JSON file")
	cmd.Flags().StringVar(&dbPath, "db", "./data/calendar.db", "path to the SQLite database")
	cmd.Flags().BoolVar(&skipDuplicates, "skip-duplicates", false, "skip occasions that already exist")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	_ = cmd.MarkFlagRequired("json")

	return cmd
}

func newOccasionsListCommand() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "list YEAR [MONTH]",
		Short: "List occasions of a Jalali year or month",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseYear(args[0])
			if err != nil {
				return err
			}

			db, err := openDB(cmd.Context(), dbPath, newCLILogger(cmd.ErrOrStderr(), false))
			if err != nil {
				return err
			}
			defer db.Close()

			var occasions []database.Occasion
			if len(args) == 2 {
				month, err := parseMonth(args[1])
				if err != nil {
					return err
				}
				occasions, err = db.ListOccasionsForMonth(cmd.Context(), year, month)
				if err != nil {
					return err
				}
			} else {
				occasions, err = db.ListOccasionsForYear(cmd.Context(), year)
				if err != nil {
					return err
				}
			}

			for _, o := range occasions {
				holiday := ""
				if o.IsHoliday {
					holiday = " (holiday)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%04d/%02d/%02d %s%s\n", year, o.Month, o.Day, o.Title, holiday)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "./data/calendar.db", "path to the SQLite database")
	return cmd
}

func readImportFile(path string) (*ImportFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read JSON file: %w", err)
	}

	var f ImportFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}
	return &f, nil
}

// runImport opens and migrates the database, then inserts every occasion
// in one transaction.
func runImport(ctx context.Context, dbPath string, f *ImportFile, skipDuplicates bool, logger *slog.Logger) (ImportStats, error) {
	var stats ImportStats
	startTime := time.Now()

	db, err := openDB(ctx, dbPath, logger)
	if err != nil {
		return stats, err
	}
	defer db.Close()

	err = db.WithTx(ctx, func(tx *database.Tx) error {
		for i, entry := range f.Occasions {
			o := &database.Occasion{
				Year:      entry.Year,
				Month:     entry.Month,
				Day:       entry.Day,
				Title:     entry.Title,
				IsHoliday: entry.IsHoliday,
			}

			err := tx.CreateOccasion(ctx, o)
			switch {
			case err == nil:
				stats.Created++
			case errors.Is(err, database.ErrDuplicate) && skipDuplicates:
				stats.Duplicates++
				logger.Debug("skipping duplicate", slog.Int("entry", i+1), slog.String("title", entry.Title))
			default:
				return fmt.Errorf("occasion %d (%d/%d %q): %w", i+1, entry.Month, entry.Day, entry.Title, err)
			}
		}
		return nil
	})
	if err != nil {
		return ImportStats{}, fmt.Errorf("import occasions: %w", err)
	}

	logger.Info("import complete",
		slog.String("source", f.Source),
		slog.Int("created", stats.Created),
		slog.Int("duplicates", stats.Duplicates),
		slog.Duration("elapsed", time.Since(startTime)),
	)
	return stats, nil
}

func openDB(ctx context.Context, path string, logger *slog.Logger) (*database.DB, error) {
	db, err := database.Open(database.DefaultConfig(path), logger)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return db, nil
}

func newCLILogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
