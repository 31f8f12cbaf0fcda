package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mizan-accounting/jalali-api/internal/calendar"
)

// DayResult is the outcome of round-tripping one Gregorian day through the API.
type DayResult struct {
	Date    string `json:"date"`
	Jalali  string `json:"jalali,omitempty"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// CoverageReport groups results by Jalali month.
type CoverageReport struct {
	TotalDays   int                    `json:"total_days"`
	TotalFailed int                    `json:"total_failed"`
	ByMonth     map[string]*MonthStats `json:"by_month"`
	Failures    []DayResult            `json:"failures"`
}

// MonthStats counts results for one Jalali year/month.
type MonthStats struct {
	Month       string   `json:"month"`
	TotalDays   int      `json:"total_days"`
	FailedDays  int      `json:"failed_days"`
	FailedDates []string `json:"failed_dates,omitempty"`
}

// NewCoverageCommand creates the coverage command
func NewCoverageCommand() *cobra.Command {
	var (
		baseURL    string
		startYear  int
		years      int
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "coverage",
		Short: "Round-trip every day of a Gregorian year range through a running API",
		Long: `coverage converts every day in the range to Jalali and back through the
API and checks that each result converts back to the same day and that
consecutive Gregorian days map to consecutive Jalali days.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if years < 1 {
				return fmt.Errorf("years must be positive, got %d", years)
			}
			out := cmd.OutOrStdout()
			client := &http.Client{Timeout: 5 * time.Second}

			start := calendar.GregorianDate{Year: startYear, Month: 1, Day: 1}
			end := calendar.GregorianDate{Year: startYear + years - 1, Month: 12, Day: 31}
			if err := start.Validate(); err != nil {
				return err
			}
			if err := end.Validate(); err != nil {
				return err
			}

			fmt.Fprintf(out, "Date Range:  %s to %s\n", calendar.FormatGregorian(start), calendar.FormatGregorian(end))

			results := checkRange(client, strings.TrimSuffix(baseURL, "/"), start, end)
			report := analyzeCoverage(results)
			printCoverage(out, report)

			if outputFile != "" {
				data, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal report: %w", err)
				}
				if err := os.WriteFile(outputFile, data, 0o644); err != nil {
					return fmt.Errorf("write report: %w", err)
				}
			}

			if report.TotalFailed > 0 {
				return fmt.Errorf("%d day(s) failed", report.TotalFailed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "http://localhost:8080", "base URL of the API")
	cmd.Flags().IntVar(&startYear, "start", 2024, "first Gregorian year")
	cmd.Flags().IntVar(&years, "years", 1, "number of years to check")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "write the report as JSON")

	return cmd
}

func checkRange(client *http.Client, baseURL string, start, end calendar.GregorianDate) []DayResult {
	var results []DayResult
	var prev *calendar.JalaliDate

	for g := start; !end.Before(g); g = calendar.AddDays(g, 1) {
		result, j := checkDay(client, baseURL, g)
		if result.Success && prev != nil && !isNextDay(*prev, j) {
			result.Success = false
			result.Error = fmt.Sprintf("%s does not follow %s", result.Jalali, calendar.FormatJalali(*prev))
		}
		if result.Success {
			prev = &j
		} else {
			prev = nil
		}
		results = append(results, result)
	}

	return results
}

func checkDay(client *http.Client, baseURL string, g calendar.GregorianDate) (DayResult, calendar.JalaliDate) {
	iso := calendar.FormatGregorian(g)
	result := DayResult{Date: iso}

	var toJalali struct {
		Jalali     calendar.JalaliDate `json:"jalali"`
		JalaliText string              `json:"jalali_text"`
	}
	if err := fetchData(client, baseURL+"/api/v1/convert/to-jalali?date="+iso, &toJalali); err != nil {
		result.Error = err.Error()
		return result, calendar.JalaliDate{}
	}
	result.Jalali = toJalali.JalaliText

	var back struct {
		ISO string `json:"iso"`
	}
	if err := fetchData(client, baseURL+"/api/v1/convert/to-gregorian?date="+url.QueryEscape(toJalali.JalaliText), &back); err != nil {
		result.Error = err.Error()
		return result, toJalali.Jalali
	}
	if back.ISO != iso {
		result.Error = fmt.Sprintf("round trip gave %s", back.ISO)
		return result, toJalali.Jalali
	}

	result.Success = true
	return result, toJalali.Jalali
}

func isNextDay(prev, next calendar.JalaliDate) bool {
	switch {
	case next.Day == prev.Day+1:
		return next.Year == prev.Year && next.Month == prev.Month
	case next.Day == 1 && prev.Day == calendar.MonthLength(prev.Year, prev.Month):
		following := calendar.Month{Year: prev.Year, Month: prev.Month}.Next()
		return next.Year == following.Year && next.Month == following.Month
	}
	return false
}

func fetchData(client *http.Client, rawURL string, target interface{}) error {
	resp, err := client.Get(rawURL)
	if err != nil {
		return fmt.Errorf("connection error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read error: %w", err)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return fmt.Errorf("parse error: %w", err)
	}
	if !apiResp.Success {
		if apiResp.Error != nil {
			return fmt.Errorf("HTTP %d: %s", resp.StatusCode, apiResp.Error.Message)
		}
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return json.Unmarshal(apiResp.Data, target)
}

func analyzeCoverage(results []DayResult) *CoverageReport {
	report := &CoverageReport{ByMonth: make(map[string]*MonthStats)}

	for _, r := range results {
		report.TotalDays++

		key := "(unconverted)"
		if len(r.Jalali) >= 7 {
			key = r.Jalali[:7]
		}
		stats, ok := report.ByMonth[key]
		if !ok {
			stats = &MonthStats{Month: key}
			report.ByMonth[key] = stats
		}
		stats.TotalDays++

		if !r.Success {
			report.TotalFailed++
			stats.FailedDays++
			stats.FailedDates = append(stats.FailedDates, r.Date)
			report.Failures = append(report.Failures, r)
		}
	}

	return report
}

func printCoverage(w io.Writer, report *CoverageReport) {
	fmt.Fprintln(w, "================================================================")
	fmt.Fprintf(w, "Days checked: %d\n", report.TotalDays)
	fmt.Fprintf(w, "Failed:       %d\n", report.TotalFailed)

	months := make([]string, 0, len(report.ByMonth))
	for key := range report.ByMonth {
		months = append(months, key)
	}
	sort.Strings(months)

	for _, key := range months {
		stats := report.ByMonth[key]
		status := "✓"
		if stats.FailedDays > 0 {
			status = "✗"
		}
		fmt.Fprintf(w, "  %s %s: %d/%d\n", status, key, stats.TotalDays-stats.FailedDays, stats.TotalDays)
	}

	for _, f := range report.Failures {
		fmt.Fprintf(w, "  • %s: %s\n", f.Date, f.Error)
	}
}
