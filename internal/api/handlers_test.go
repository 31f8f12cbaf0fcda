package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/mizan-accounting/jalali-api/internal/calendar"
	"github.com/mizan-accounting/jalali-api/internal/config"
	"github.com/mizan-accounting/jalali-api/internal/database"
	"github.com/mizan-accounting/jalali-api/internal/metrics"
)

// =============================================================================
// TEST SETUP HELPERS
// =============================================================================

// testEnv sets up a complete test environment with database, config, and router
type testEnv struct {
	db       *database.DB
	cfg      *config.Config
	handlers *Handlers
	router   http.Handler
	adminKey string
}

// setupTest creates a fresh test environment
func setupTest(t *testing.T) *testEnv {
	t.Helper()

	// Create in-memory database
	dbCfg := database.Config{
		Path:            ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError, // Quiet during tests
	}))

	db, err := database.Open(dbCfg, logger)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	// Run migrations
	if _, err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	adminKey := "admin-test-key-32-characters-minimum-length"
	cfg := &config.Config{
		Port:            8080,
		Env:             config.EnvDevelopment,
		DatabasePath:    ":memory:",
		AdminAPIKey:     adminKey,
		Timezone:        "Asia/Tehran",
		MaxContractDays: 3650,
		LogLevel:        "error",
		LogFormat:       "text",
	}

	handlers := NewHandlers(db, cfg, logger, metrics.New())
	// 2024-03-19 21:00 UTC is 00:30 on 1403/01/01 in Tehran.
	handlers.now = func() time.Time {
		return time.Date(2024, 3, 19, 21, 0, 0, 0, time.UTC)
	}

	return &testEnv{
		db:       db,
		cfg:      cfg,
		handlers: handlers,
		router:   SetupRoutes(handlers, cfg, logger),
		adminKey: adminKey,
	}
}

// do sends a request through the full router.
func (env *testEnv) do(method, path string, body interface{}, apiKey string) *httptest.ResponseRecorder {
	var bodyReader io.Reader
	if body != nil {
		jsonData, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(jsonData)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}

	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)
	return rr
}

// testResponse mirrors Response with the payload left raw.
type testResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *ErrorInfo      `json:"error"`
}

// parseResponse decodes the envelope and, if v is non-nil, its data.
func parseResponse(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) testResponse {
	t.Helper()

	var resp testResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v, body: %s", err, rr.Body.String())
	}
	if v != nil {
		if err := json.Unmarshal(resp.Data, v); err != nil {
			t.Fatalf("decode data: %v, data: %s", err, resp.Data)
		}
	}
	return resp
}

// expectError checks status and error code.
func expectError(t *testing.T, rr *httptest.ResponseRecorder, status int, code string) {
	t.Helper()

	if rr.Code != status {
		t.Fatalf("status = %d, want %d, body: %s", rr.Code, status, rr.Body.String())
	}
	resp := parseResponse(t, rr, nil)
	if resp.Success {
		t.Error("success = true, want false")
	}
	if resp.Error == nil || resp.Error.Code != code {
		t.Errorf("error = %+v, want code %s", resp.Error, code)
	}
}

func query(path string, params map[string]string) string {
	v := url.Values{}
	for k, val := range params {
		v.Set(k, val)
	}
	return path + "?" + v.Encode()
}

// =============================================================================
// MIDDLEWARE TESTS
// =============================================================================

func TestRequestIDMiddleware(t *testing.T) {
	env := setupTest(t)

	rr := env.do(http.MethodGet, "/health", nil, "")
	if rr.Header().Get(RequestIDHeader) == "" {
		t.Error("missing generated X-Request-ID")
	}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	rr = httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)
	if got := rr.Header().Get(RequestIDHeader); got != "req-123" {
		t.Errorf("X-Request-ID = %q, want caller's req-123", got)
	}
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	env := setupTest(t)

	rr := env.do(http.MethodOptions, "/api/v1/today", nil, "")
	if rr.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rr.Code)
	}
	if rr.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing Access-Control-Allow-Origin")
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := RecoveryMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	expectError(t, rr, http.StatusInternalServerError, CodeInternalError)
}

func TestAdminOnlyMiddleware(t *testing.T) {
	env := setupTest(t)
	body := map[string]interface{}{"month": 5, "day": 1, "title": "Staff day"}

	t.Run("missing key", func(t *testing.T) {
		rr := env.do(http.MethodPost, "/api/v1/admin/occasions", body, "")
		expectError(t, rr, http.StatusUnauthorized, CodeUnauthorized)
	})

	t.Run("wrong key", func(t *testing.T) {
		rr := env.do(http.MethodPost, "/api/v1/admin/occasions", body, "not-the-admin-key")
		expectError(t, rr, http.StatusUnauthorized, CodeUnauthorized)
	})

	t.Run("disabled without configured key", func(t *testing.T) {
		env.cfg.AdminAPIKey = ""
		defer func() { env.cfg.AdminAPIKey = env.adminKey }()

		rr := env.do(http.MethodPost, "/api/v1/admin/occasions", body, "anything")
		expectError(t, rr, http.StatusForbidden, CodeForbidden)
	})
}

func TestNotFoundRoute(t *testing.T) {
	env := setupTest(t)

	rr := env.do(http.MethodGet, "/api/v1/nope", nil, "")
	expectError(t, rr, http.StatusNotFound, CodeNotFound)
}

// =============================================================================
// HEALTH & METRICS
// =============================================================================

func TestHealthCheck(t *testing.T) {
	env := setupTest(t)

	rr := env.do(http.MethodGet, "/health", nil, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var data map[string]string
	parseResponse(t, rr, &data)
	if data["status"] != "healthy" {
		t.Errorf("status = %q, want healthy", data["status"])
	}
}

func TestMetricsEndpoint(t *testing.T) {
	env := setupTest(t)

	env.do(http.MethodGet, query("/api/v1/convert/to-jalali", map[string]string{"date": "2024-03-20"}), nil, "")

	rr := env.do(http.MethodGet, "/metrics", nil, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	for _, want := range []string{
		`http_requests_total{method="GET",path="/api/v1/convert/to-jalali",status="200"} 1`,
		`calendar_conversions_total{direction="to_jalali",outcome="ok"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %s", want)
		}
	}
}

// =============================================================================
// CONVERSION TESTS
// =============================================================================

func TestConvertToJalali(t *testing.T) {
	env := setupTest(t)

	tests := []struct {
		date string
		want string
	}{
		{"2024-03-20", "1403/01/01"},
		{"2025-03-20", "1403/12/30"},
		{"2000-01-01", "1378/10/11"},
		{"۲۰۲۵-۰۳-۲۱", "1404/01/01"},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			rr := env.do(http.MethodGet, query("/api/v1/convert/to-jalali", map[string]string{"date": tt.date}), nil, "")
			if rr.Code != http.StatusOK {
				t.Fatalf("status = %d, body: %s", rr.Code, rr.Body.String())
			}

			var view DateView
			parseResponse(t, rr, &view)
			if view.JalaliText != tt.want {
				t.Errorf("jalali_text = %q, want %q", view.JalaliText, tt.want)
			}
			if view.PersianText != calendar.ToPersianDigits(tt.want) {
				t.Errorf("persian_text = %q", view.PersianText)
			}
		})
	}
}

func TestConvertToJalali_Weekday(t *testing.T) {
	env := setupTest(t)

	// 2024-03-20 is a Wednesday.
	rr := env.do(http.MethodGet, query("/api/v1/convert/to-jalali", map[string]string{"date": "2024-03-20"}), nil, "")

	var view DateView
	parseResponse(t, rr, &view)
	if want := calendar.WeekdayNames()[calendar.WeekColumn(time.Wednesday)]; view.Weekday != want {
		t.Errorf("weekday = %q, want %q", view.Weekday, want)
	}
	if view.MonthName != calendar.MonthName(1) {
		t.Errorf("month_name = %q, want %q", view.MonthName, calendar.MonthName(1))
	}
}

func TestConvertToJalali_Errors(t *testing.T) {
	env := setupTest(t)

	tests := []struct {
		name   string
		path   string
		status int
		code   string
	}{
		{"missing date", "/api/v1/convert/to-jalali", http.StatusBadRequest, CodeValidation},
		{"not a date", query("/api/v1/convert/to-jalali", map[string]string{"date": "yesterday"}), http.StatusBadRequest, CodeInvalidDate},
		{"feb 29 common year", query("/api/v1/convert/to-jalali", map[string]string{"date": "2023-02-29"}), http.StatusBadRequest, CodeInvalidDate},
		{"month 13", query("/api/v1/convert/to-jalali", map[string]string{"date": "2024-13-01"}), http.StatusBadRequest, CodeInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectError(t, env.do(http.MethodGet, tt.path, nil, ""), tt.status, tt.code)
		})
	}
}

func TestConvertToGregorian(t *testing.T) {
	env := setupTest(t)

	tests := []struct {
		date string
		want string
	}{
		{"1403/01/01", "2024-03-20"},
		{"1403/12/30", "2025-03-20"},
		{"1400/7/1", "2021-09-23"},
		{"۱۴۰۴/۱۲/۲۹", "2026-03-20"},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			rr := env.do(http.MethodGet, query("/api/v1/convert/to-gregorian", map[string]string{"date": tt.date}), nil, "")
			if rr.Code != http.StatusOK {
				t.Fatalf("status = %d, body: %s", rr.Code, rr.Body.String())
			}

			var view DateView
			parseResponse(t, rr, &view)
			if view.ISO != tt.want {
				t.Errorf("iso = %q, want %q", view.ISO, tt.want)
			}
		})
	}
}

func TestConvertToGregorian_InvalidDate(t *testing.T) {
	env := setupTest(t)

	for _, date := range []string{"1404/12/30", "1403/07/31", "1403/13/01", "1403-01-01"} {
		t.Run(date, func(t *testing.T) {
			rr := env.do(http.MethodGet, query("/api/v1/convert/to-gregorian", map[string]string{"date": date}), nil, "")
			expectError(t, rr, http.StatusBadRequest, CodeInvalidDate)
		})
	}
}

func TestMaskInput(t *testing.T) {
	env := setupTest(t)

	tests := []struct {
		value    string
		text     string
		complete bool
	}{
		{"1403", "1403", false},
		{"140301", "1403/01", false},
		{"14030101", "1403/01/01", true},
		{"1404/12/30", "1404/12/30", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			rr := env.do(http.MethodGet, query("/api/v1/convert/input", map[string]string{"value": tt.value}), nil, "")
			if rr.Code != http.StatusOK {
				t.Fatalf("status = %d, body: %s", rr.Code, rr.Body.String())
			}

			var res calendar.InputResult
			parseResponse(t, rr, &res)
			if res.Text != tt.text || res.Complete != tt.complete {
				t.Errorf("got %+v, want text %q complete %v", res, tt.text, tt.complete)
			}
			if tt.complete && (res.Gregorian == nil || calendar.FormatGregorian(*res.Gregorian) != "2024-03-20") {
				t.Errorf("gregorian = %+v, want 2024-03-20", res.Gregorian)
			}
		})
	}
}

func TestToday(t *testing.T) {
	env := setupTest(t)

	rr := env.do(http.MethodGet, "/api/v1/today", nil, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rr.Code, rr.Body.String())
	}

	var data struct {
		Date     DateView `json:"date"`
		Timezone string   `json:"timezone"`
	}
	parseResponse(t, rr, &data)
	if data.Date.JalaliText != "1403/01/01" {
		t.Errorf("today = %q, want 1403/01/01", data.Date.JalaliText)
	}
	if data.Timezone != "Asia/Tehran" {
		t.Errorf("timezone = %q, want Asia/Tehran", data.Timezone)
	}
}

// =============================================================================
// YEAR & MONTH TESTS
// =============================================================================

func TestGetYear(t *testing.T) {
	env := setupTest(t)

	tests := []struct {
		year   string
		leap   bool
		days   int
		nowruz string
	}{
		{"1403", true, 366, "2024-03-20"},
		{"1404", false, 365, "2025-03-21"},
		{"۱۴۰۲", false, 365, "2023-03-21"},
	}

	for _, tt := range tests {
		t.Run(tt.year, func(t *testing.T) {
			rr := env.do(http.MethodGet, "/api/v1/years/"+url.PathEscape(tt.year), nil, "")
			if rr.Code != http.StatusOK {
				t.Fatalf("status = %d, body: %s", rr.Code, rr.Body.String())
			}

			var data struct {
				Leap   bool                   `json:"leap"`
				Days   int                    `json:"days"`
				Nowruz calendar.GregorianDate `json:"nowruz"`
				Months []monthSummary         `json:"months"`
			}
			parseResponse(t, rr, &data)

			if data.Leap != tt.leap || data.Days != tt.days {
				t.Errorf("leap = %v days = %d, want %v %d", data.Leap, data.Days, tt.leap, tt.days)
			}
			if got := calendar.FormatGregorian(data.Nowruz); got != tt.nowruz {
				t.Errorf("nowruz = %s, want %s", got, tt.nowruz)
			}
			total := 0
			for _, m := range data.Months {
				total += m.Days
			}
			if len(data.Months) != 12 || total != tt.days {
				t.Errorf("months = %d totalling %d days", len(data.Months), total)
			}
		})
	}
}

func TestGetYear_Errors(t *testing.T) {
	env := setupTest(t)

	expectError(t, env.do(http.MethodGet, "/api/v1/years/abc", nil, ""), http.StatusBadRequest, CodeBadRequest)
	expectError(t, env.do(http.MethodGet, "/api/v1/years/100", nil, ""), http.StatusBadRequest, CodeValidation)
	expectError(t, env.do(http.MethodGet, "/api/v1/years/9378", nil, ""), http.StatusBadRequest, CodeValidation)
}

func TestGetMonth(t *testing.T) {
	env := setupTest(t)

	rr := env.do(http.MethodGet, "/api/v1/years/1403/months/1", nil, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rr.Code, rr.Body.String())
	}

	var data struct {
		Grid      calendar.MonthGrid  `json:"grid"`
		Previous  calendar.Month      `json:"previous"`
		Next      calendar.Month      `json:"next"`
		Occasions []database.Occasion `json:"occasions"`
		Holidays  []int               `json:"holidays"`
	}
	parseResponse(t, rr, &data)

	if data.Grid.LeadingBlanks != 4 {
		t.Errorf("leading_blanks = %d, want 4", data.Grid.LeadingBlanks)
	}
	if len(data.Grid.Days) != 31 {
		t.Errorf("days = %d, want 31", len(data.Grid.Days))
	}
	if data.Previous != (calendar.Month{Year: 1402, Month: 12}) || data.Next != (calendar.Month{Year: 1403, Month: 2}) {
		t.Errorf("previous = %+v next = %+v", data.Previous, data.Next)
	}
	if len(data.Occasions) != 6 {
		t.Errorf("occasions = %d, want 6", len(data.Occasions))
	}
	wantHolidays := []int{1, 2, 3, 4, 12, 13}
	if len(data.Holidays) != len(wantHolidays) {
		t.Fatalf("holidays = %v, want %v", data.Holidays, wantHolidays)
	}
	for i := range wantHolidays {
		if data.Holidays[i] != wantHolidays[i] {
			t.Errorf("holidays = %v, want %v", data.Holidays, wantHolidays)
			break
		}
	}
}

func TestGetMonth_Invalid(t *testing.T) {
	env := setupTest(t)

	expectError(t, env.do(http.MethodGet, "/api/v1/years/1403/months/13", nil, ""), http.StatusBadRequest, CodeValidation)
	expectError(t, env.do(http.MethodGet, "/api/v1/years/1403/months/x", nil, ""), http.StatusBadRequest, CodeBadRequest)
}

// =============================================================================
// CONTRACT & PRICE TESTS
// =============================================================================

func TestContractEndDate(t *testing.T) {
	env := setupTest(t)

	tests := []struct {
		days string
		want string
	}{
		{"0", "1403/01/01"},
		{"30", "1403/01/31"},
		{"365", "1403/12/30"},
	}

	for _, tt := range tests {
		t.Run(tt.days, func(t *testing.T) {
			path := query("/api/v1/contracts/end-date", map[string]string{"start": "2024-03-20", "days": tt.days})
			rr := env.do(http.MethodGet, path, nil, "")
			if rr.Code != http.StatusOK {
				t.Fatalf("status = %d, body: %s", rr.Code, rr.Body.String())
			}

			var data struct {
				End DateView `json:"end"`
			}
			parseResponse(t, rr, &data)
			if data.End.JalaliText != tt.want {
				t.Errorf("end = %q, want %q", data.End.JalaliText, tt.want)
			}
		})
	}
}

func TestContractEndDate_Errors(t *testing.T) {
	env := setupTest(t)

	tests := []struct {
		name   string
		params map[string]string
		code   string
	}{
		{"missing start", map[string]string{"days": "10"}, CodeValidation},
		{"negative days", map[string]string{"start": "2024-03-20", "days": "-1"}, CodeValidation},
		{"too many days", map[string]string{"start": "2024-03-20", "days": "3651"}, CodeValidation},
		{"days not a number", map[string]string{"start": "2024-03-20", "days": "ten"}, CodeBadRequest},
		{"bad start", map[string]string{"start": "2024-02-30", "days": "1"}, CodeInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := env.do(http.MethodGet, query("/api/v1/contracts/end-date", tt.params), nil, "")
			expectError(t, rr, http.StatusBadRequest, tt.code)
		})
	}
}

func TestFormatPrice(t *testing.T) {
	env := setupTest(t)

	rr := env.do(http.MethodGet, query("/api/v1/format/price", map[string]string{"value": "1,250,000"}), nil, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rr.Code, rr.Body.String())
	}

	var data struct {
		Amount    int64  `json:"amount"`
		Formatted string `json:"formatted"`
	}
	parseResponse(t, rr, &data)
	if data.Amount != 1250000 {
		t.Errorf("amount = %d, want 1250000", data.Amount)
	}
	if calendar.ParsePrice(data.Formatted) != 1250000 {
		t.Errorf("formatted %q does not parse back", data.Formatted)
	}

	rr = env.do(http.MethodGet, query("/api/v1/format/price", map[string]string{"value": "abc"}), nil, "")
	expectError(t, rr, http.StatusBadRequest, CodeBadRequest)
}

// =============================================================================
// OCCASION TESTS
// =============================================================================

func TestListOccasions(t *testing.T) {
	env := setupTest(t)

	tests := []struct {
		name   string
		params map[string]string
		want   int
	}{
		{"month", map[string]string{"year": "1403", "month": "1"}, 6},
		{"whole year", map[string]string{"year": "1403"}, 10},
		{"defaults to current year", map[string]string{}, 10},
		{"month without occasions", map[string]string{"year": "1403", "month": "8"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := env.do(http.MethodGet, query("/api/v1/occasions", tt.params), nil, "")
			if rr.Code != http.StatusOK {
				t.Fatalf("status = %d, body: %s", rr.Code, rr.Body.String())
			}

			var data struct {
				Year      int                 `json:"year"`
				Occasions []database.Occasion `json:"occasions"`
			}
			parseResponse(t, rr, &data)
			if data.Year != 1403 {
				t.Errorf("year = %d, want 1403", data.Year)
			}
			if len(data.Occasions) != tt.want {
				t.Errorf("occasions = %d, want %d", len(data.Occasions), tt.want)
			}
		})
	}
}

func TestListOccasions_Invalid(t *testing.T) {
	env := setupTest(t)

	rr := env.do(http.MethodGet, query("/api/v1/occasions", map[string]string{"year": "1403", "month": "13"}), nil, "")
	expectError(t, rr, http.StatusBadRequest, CodeValidation)
}

func TestCreateAndDeleteOccasion(t *testing.T) {
	env := setupTest(t)

	body := map[string]interface{}{
		"year":       1403,
		"month":      4,
		"day":        26,
		"title":      "Tasua",
		"is_holiday": true,
	}

	rr := env.do(http.MethodPost, "/api/v1/admin/occasions", body, env.adminKey)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, body: %s", rr.Code, rr.Body.String())
	}

	var created database.Occasion
	parseResponse(t, rr, &created)
	if created.ID == 0 || created.Title != "Tasua" {
		t.Fatalf("created = %+v", created)
	}

	// Same occasion again conflicts.
	rr = env.do(http.MethodPost, "/api/v1/admin/occasions", body, env.adminKey)
	expectError(t, rr, http.StatusConflict, CodeDuplicate)

	// Shows up in the month listing.
	rr = env.do(http.MethodGet, query("/api/v1/occasions", map[string]string{"year": "1403", "month": "4"}), nil, "")
	var list struct {
		Occasions []database.Occasion `json:"occasions"`
	}
	parseResponse(t, rr, &list)
	if len(list.Occasions) != 1 {
		t.Errorf("occasions in 1403/4 = %d, want 1", len(list.Occasions))
	}

	path := "/api/v1/admin/occasions/" + strconv.FormatInt(created.ID, 10)
	rr = env.do(http.MethodDelete, path, nil, env.adminKey)
	if rr.Code != http.StatusOK {
		t.Fatalf("delete status = %d, body: %s", rr.Code, rr.Body.String())
	}

	rr = env.do(http.MethodDelete, path, nil, env.adminKey)
	expectError(t, rr, http.StatusNotFound, CodeNotFound)
}

func TestCreateOccasion_Invalid(t *testing.T) {
	env := setupTest(t)

	tests := []struct {
		name string
		body interface{}
		code string
	}{
		{"missing title", map[string]interface{}{"month": 1, "day": 1}, CodeValidation},
		{"month out of range", map[string]interface{}{"month": 13, "day": 1, "title": "x"}, CodeValidation},
		{"esfand 30 in common year", map[string]interface{}{"year": 1404, "month": 12, "day": 30, "title": "x"}, CodeValidation},
		{"mehr 31", map[string]interface{}{"month": 7, "day": 31, "title": "x"}, CodeValidation},
		{"unknown field", map[string]interface{}{"month": 1, "day": 1, "title": "x", "color": "red"}, CodeBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := env.do(http.MethodPost, "/api/v1/admin/occasions", tt.body, env.adminKey)
			expectError(t, rr, http.StatusBadRequest, tt.code)
		})
	}
}

func TestDeleteOccasion_InvalidID(t *testing.T) {
	env := setupTest(t)

	rr := env.do(http.MethodDelete, "/api/v1/admin/occasions/abc", nil, env.adminKey)
	expectError(t, rr, http.StatusBadRequest, CodeBadRequest)
}
