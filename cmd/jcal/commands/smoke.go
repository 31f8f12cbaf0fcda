package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// =============================================================================
// Response Types - Match the API response structure
// =============================================================================

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *apiError       `json:"error,omitempty"`
}

type apiError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type dateView struct {
	JalaliText string `json:"jalali_text"`
	ISO        string `json:"iso"`
}

// =============================================================================
// Smoke Runner
// =============================================================================

// SmokeRunner exercises a running API server against known dates.
type SmokeRunner struct {
	baseURL      string
	client       *http.Client
	out          io.Writer
	successCount int
	errorCount   int
	errors       []string
}

// NewSmokeRunner creates a runner writing its report to out.
func NewSmokeRunner(baseURL string, out io.Writer) *SmokeRunner {
	return &SmokeRunner{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		out: out,
	}
}

// Failed returns the number of failed checks.
func (sr *SmokeRunner) Failed() int {
	return sr.errorCount
}

// Run executes every check group and prints a summary.
func (sr *SmokeRunner) Run() {
	fmt.Fprintln(sr.out, "==============================================")
	fmt.Fprintln(sr.out, "Jalali API Smoke Test")
	fmt.Fprintln(sr.out, "==============================================")
	fmt.Fprintf(sr.out, "Base URL: %s\n", sr.baseURL)

	sr.testHealth()
	sr.testToJalali()
	sr.testToGregorian()
	sr.testInvalidDates()
	sr.testYears()
	sr.testEndDates()

	sr.printSummary()
}

// =============================================================================
// Check Groups
// =============================================================================

func (sr *SmokeRunner) testHealth() {
	sr.printSection("Health Check")

	var health struct {
		Status string `json:"status"`
	}
	if err := sr.getData("/health", &health); err != nil {
		sr.recordError("Health", err.Error())
		return
	}
	if health.Status == "healthy" {
		sr.recordSuccess("Health check passed")
	} else {
		sr.recordError("Health", fmt.Sprintf("Unexpected status: %s", health.Status))
	}
}

func (sr *SmokeRunner) testToJalali() {
	sr.printSection("Gregorian to Jalali")

	testCases := []struct {
		date string
		want string
		desc string
	}{
		{"2024-03-20", "1403/01/01", "Nowruz 1403"},
		{"2025-03-20", "1403/12/30", "Last day of leap year 1403"},
		{"2025-03-21", "1404/01/01", "Nowruz 1404"},
		{"2023-03-20", "1401/12/29", "Last day of common year 1401"},
		{"2000-01-01", "1378/10/11", "Y2K"},
		{"2024-02-29", "1402/12/10", "Gregorian leap day"},
	}

	for _, tc := range testCases {
		var view dateView
		path := "/api/v1/convert/to-jalali?date=" + url.QueryEscape(tc.date)
		if err := sr.getData(path, &view); err != nil {
			sr.recordError(tc.desc, err.Error())
			continue
		}
		if view.JalaliText != tc.want {
			sr.recordError(tc.desc, fmt.Sprintf("%s gave %s, want %s", tc.date, view.JalaliText, tc.want))
			continue
		}
		sr.recordSuccess(fmt.Sprintf("%s: %s -> %s", tc.desc, tc.date, view.JalaliText))
	}
}

func (sr *SmokeRunner) testToGregorian() {
	sr.printSection("Jalali to Gregorian")

	testCases := []struct {
		date string
		want string
	}{
		{"1399/12/30", "2021-03-20"},
		{"1404/12/29", "2026-03-20"},
		{"1400/07/01", "2021-09-23"},
		{"1403/06/31", "2024-09-21"},
	}

	for _, tc := range testCases {
		var view dateView
		path := "/api/v1/convert/to-gregorian?date=" + url.QueryEscape(tc.date)
		if err := sr.getData(path, &view); err != nil {
			sr.recordError(tc.date, err.Error())
			continue
		}
		if view.ISO != tc.want {
			sr.recordError(tc.date, fmt.Sprintf("gave %s, want %s", view.ISO, tc.want))
			continue
		}
		sr.recordSuccess(fmt.Sprintf("%s -> %s", tc.date, view.ISO))
	}
}

func (sr *SmokeRunner) testInvalidDates() {
	sr.printSection("Invalid Dates")

	paths := []string{
		"/api/v1/convert/to-jalali?date=2023-02-29",
		"/api/v1/convert/to-gregorian?date=" + url.QueryEscape("1404/12/30"),
		"/api/v1/convert/to-gregorian?date=" + url.QueryEscape("1403/07/31"),
	}

	for _, path := range paths {
		status, resp, err := sr.get(path)
		if err != nil {
			sr.recordError(path, err.Error())
			continue
		}
		if status != http.StatusBadRequest || resp.Error == nil || resp.Error.Code != "INVALID_DATE" {
			sr.recordError(path, fmt.Sprintf("HTTP %d, want 400 INVALID_DATE", status))
			continue
		}
		sr.recordSuccess("Rejected " + path)
	}
}

func (sr *SmokeRunner) testYears() {
	sr.printSection("Leap Years")

	for year, wantLeap := range map[int]bool{1399: true, 1403: true, 1404: false, 1408: true} {
		var data struct {
			Leap bool `json:"leap"`
			Days int  `json:"days"`
		}
		if err := sr.getData(fmt.Sprintf("/api/v1/years/%d", year), &data); err != nil {
			sr.recordError(fmt.Sprintf("Year %d", year), err.Error())
			continue
		}
		if data.Leap != wantLeap {
			sr.recordError(fmt.Sprintf("Year %d", year), fmt.Sprintf("leap = %v, want %v", data.Leap, wantLeap))
			continue
		}
		sr.recordSuccess(fmt.Sprintf("Year %d: %d days", year, data.Days))
	}
}

func (sr *SmokeRunner) testEndDates() {
	sr.printSection("Contract End Dates")

	testCases := []struct {
		days int
		want string
	}{
		{0, "1403/01/01"},
		{30, "1403/01/31"},
		{365, "1403/12/30"},
	}

	for _, tc := range testCases {
		var data struct {
			End dateView `json:"end"`
		}
		path := fmt.Sprintf("/api/v1/contracts/end-date?start=2024-03-20&days=%d", tc.days)
		if err := sr.getData(path, &data); err != nil {
			sr.recordError(fmt.Sprintf("+%d days", tc.days), err.Error())
			continue
		}
		if data.End.JalaliText != tc.want {
			sr.recordError(fmt.Sprintf("+%d days", tc.days), fmt.Sprintf("gave %s, want %s", data.End.JalaliText, tc.want))
			continue
		}
		sr.recordSuccess(fmt.Sprintf("2024-03-20 +%d days -> %s", tc.days, tc.want))
	}
}

// =============================================================================
// Helpers
// =============================================================================

func (sr *SmokeRunner) get(path string) (int, *apiResponse, error) {
	resp, err := sr.client.Get(sr.baseURL + path)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return resp.StatusCode, nil, fmt.Errorf("decode response: %w", err)
	}
	return resp.StatusCode, &apiResp, nil
}

func (sr *SmokeRunner) getData(path string, target interface{}) error {
	status, resp, err := sr.get(path)
	if err != nil {
		return err
	}
	if !resp.Success {
		errMsg := "unknown error"
		if resp.Error != nil {
			errMsg = resp.Error.Message
		}
		return fmt.Errorf("HTTP %d: %s", status, errMsg)
	}
	return json.Unmarshal(resp.Data, target)
}

func (sr *SmokeRunner) printSection(name string) {
	fmt.Fprintln(sr.out)
	fmt.Fprintf(sr.out, "--- %s ---\n", name)
}

func (sr *SmokeRunner) recordSuccess(msg string) {
	sr.successCount++
	fmt.Fprintf(sr.out, "  ✓ %s\n", msg)
}

func (sr *SmokeRunner) recordError(context, msg string) {
	sr.errorCount++
	errStr := fmt.Sprintf("%s: %s", context, msg)
	sr.errors = append(sr.errors, errStr)
	fmt.Fprintf(sr.out, "  ✗ %s\n", errStr)
}

func (sr *SmokeRunner) printSummary() {
	fmt.Fprintln(sr.out)
	fmt.Fprintln(sr.out, "==============================================")
	fmt.Fprintf(sr.out, "  Passed: %d\n", sr.successCount)
	fmt.Fprintf(sr.out, "  Failed: %d\n", sr.errorCount)

	if sr.errorCount > 0 {
		fmt.Fprintln(sr.out, "Failures:")
		for _, err := range sr.errors {
			fmt.Fprintf(sr.out, "  • %s\n", err)
		}
	}
}

// NewSmokeCommand creates the smoke command
func NewSmokeCommand() *cobra.Command {
	var baseURL string

	cmd := &cobra.Command{
		Use:   "smoke",
		Short: "Run smoke checks against a running API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := NewSmokeRunner(baseURL, cmd.OutOrStdout())
			runner.Run()

			if runner.Failed() > 0 {
				return fmt.Errorf("%d smoke check(s) failed", runner.Failed())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "http://localhost:8080", "base URL of the API")
	return cmd
}
