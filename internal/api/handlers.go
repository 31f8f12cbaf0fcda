package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/mizan-accounting/jalali-api/internal/calendar"
	"github.com/mizan-accounting/jalali-api/internal/config"
	"github.com/mizan-accounting/jalali-api/internal/database"
	"github.com/mizan-accounting/jalali-api/internal/logger"
	"github.com/mizan-accounting/jalali-api/internal/metrics"
)

// maxBodyBytes caps admin request bodies.
const maxBodyBytes = 1 << 16

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	db        *database.DB
	cfg       *config.Config
	logger    *slog.Logger
	metrics   *metrics.Metrics
	validator *validator.Validate
	loc       *time.Location
	now       func() time.Time
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(db *database.DB, cfg *config.Config, log *slog.Logger, m *metrics.Metrics) *Handlers {
	loc, err := calendar.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Warn("unknown timezone, using Asia/Tehran",
			slog.String("timezone", cfg.Timezone),
			slog.Any("error", err))
		loc = calendar.Tehran()
	}

	return &Handlers{
		db:        db,
		cfg:       cfg,
		logger:    log,
		metrics:   m,
		validator: newValidator(),
		loc:       loc,
		now:       time.Now,
	}
}

// DateView is a date in both calendars with display strings.
type DateView struct {
	Jalali      calendar.JalaliDate    `json:"jalali"`
	Gregorian   calendar.GregorianDate `json:"gregorian"`
	JalaliText  string                 `json:"jalali_text"`
	PersianText string                 `json:"persian_text"`
	ISO         string                 `json:"iso"`
	Weekday     string                 `json:"weekday"`
	MonthName   string                 `json:"month_name"`
}

func newDateView(j calendar.JalaliDate, g calendar.GregorianDate) DateView {
	text := calendar.FormatJalali(j)
	return DateView{
		Jalali:      j,
		Gregorian:   g,
		JalaliText:  text,
		PersianText: calendar.ToPersianDigits(text),
		ISO:         calendar.FormatGregorian(g),
		Weekday:     calendar.WeekdayNames()[calendar.WeekColumn(g.Weekday())],
		MonthName:   calendar.MonthName(j.Month),
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Check database health
	if err := h.db.Health(ctx); err != nil {
		h.log(r).Warn("health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", CodeUnhealthy)
		return
	}

	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// ConvertToJalali handles GET /api/v1/convert/to-jalali?date=YYYY-MM-DD
func (h *Handlers) ConvertToJalali(w http.ResponseWriter, r *http.Request) {
	q := gregorianQuery{Date: r.URL.Query().Get("date")}
	if !h.validate(w, q) {
		return
	}

	g, err := calendar.ParseGregorian(q.Date)
	if err != nil {
		h.metrics.ObserveConversion(metrics.DirectionToJalali, false)
		WriteInvalidDate(w, err)
		return
	}
	h.metrics.ObserveConversion(metrics.DirectionToJalali, true)

	WriteSuccess(w, newDateView(g.ToJalali(), g))
}

// ConvertToGregorian handles GET /api/v1/convert/to-gregorian?date=YYYY/MM/DD
func (h *Handlers) ConvertToGregorian(w http.ResponseWriter, r *http.Request) {
	q := jalaliQuery{Date: r.URL.Query().Get("date")}
	if !h.validate(w, q) {
		return
	}

	j, err := calendar.ParseJalali(q.Date)
	if err != nil {
		h.metrics.ObserveConversion(metrics.DirectionToGregorian, false)
		WriteInvalidDate(w, err)
		return
	}
	h.metrics.ObserveConversion(metrics.DirectionToGregorian, true)

	WriteSuccess(w, newDateView(j, j.ToGregorian()))
}

// MaskInput handles GET /api/v1/convert/input?value=...
func (h *Handlers) MaskInput(w http.ResponseWriter, r *http.Request) {
	q := inputQuery{Value: r.URL.Query().Get("value")}
	if !h.validate(w, q) {
		return
	}

	WriteSuccess(w, calendar.MaskJalaliInput(q.Value))
}

// Today handles GET /api/v1/today
func (h *Handlers) Today(w http.ResponseWriter, r *http.Request) {
	j := calendar.Today(h.now(), h.loc)

	WriteSuccess(w, map[string]interface{}{
		"date":     newDateView(j, j.ToGregorian()),
		"timezone": h.loc.String(),
	})
}

// monthSummary is one row of a year overview.
type monthSummary struct {
	Month int                    `json:"month"`
	Name  string                 `json:"name"`
	Days  int                    `json:"days"`
	Start calendar.GregorianDate `json:"start"`
}

// GetYear handles GET /api/v1/years/{year}
func (h *Handlers) GetYear(w http.ResponseWriter, r *http.Request) {
	year, err := parseIntParam("year", chi.URLParam(r, "year"), 0)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}
	if !h.validate(w, yearPath{Year: year}) {
		return
	}

	months := make([]monthSummary, 0, 12)
	for m := 1; m <= 12; m++ {
		months = append(months, monthSummary{
			Month: m,
			Name:  calendar.MonthName(m),
			Days:  calendar.MonthLength(year, m),
			Start: calendar.JalaliDate{Year: year, Month: m, Day: 1}.ToGregorian(),
		})
	}

	WriteSuccess(w, map[string]interface{}{
		"year":            year,
		"leap":            calendar.IsLeap(year),
		"leap_arithmetic": calendar.IsLeapArithmetic(year),
		"days":            calendar.YearLength(year),
		"nowruz":          months[0].Start,
		"months":          months,
	})
}

// GetMonth handles GET /api/v1/years/{year}/months/{month}
func (h *Handlers) GetMonth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	year, err := parseIntParam("year", chi.URLParam(r, "year"), 0)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}
	month, err := parseIntParam("month", chi.URLParam(r, "month"), 0)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}
	if !h.validate(w, monthPath{Year: year, Month: month}) {
		return
	}

	grid, err := calendar.BuildMonthGrid(year, month)
	if err != nil {
		WriteInvalidDate(w, err)
		return
	}

	occasions, err := h.db.ListOccasionsForMonth(ctx, year, month)
	if err != nil {
		h.log(r).Error("failed to list occasions",
			slog.Int("year", year),
			slog.Int("month", month),
			slog.Any("error", err))
		WriteInternalError(w, "Failed to retrieve occasions")
		return
	}

	holidays := []int{}
	for _, o := range occasions {
		if o.IsHoliday && (len(holidays) == 0 || holidays[len(holidays)-1] != o.Day) {
			holidays = append(holidays, o.Day)
		}
	}

	WriteSuccess(w, map[string]interface{}{
		"grid":      grid,
		"weekdays":  calendar.WeekdayNames(),
		"previous":  grid.Month.Prev(),
		"next":      grid.Month.Next(),
		"occasions": occasions,
		"holidays":  holidays,
	})
}

// ContractEndDate handles GET /api/v1/contracts/end-date?start=YYYY-MM-DD&days=N
func (h *Handlers) ContractEndDate(w http.ResponseWriter, r *http.Request) {
	days, err := parseIntParam("days", r.URL.Query().Get("days"), 0)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	q := endDateQuery{Start: r.URL.Query().Get("start"), Days: days}
	if !h.validate(w, q) {
		return
	}
	if q.Days > h.cfg.MaxContractDays {
		WriteError(w, http.StatusBadRequest,
			fmt.Sprintf("days: must be at most %d", h.cfg.MaxContractDays), CodeValidation)
		return
	}

	start, err := calendar.ParseGregorian(q.Start)
	if err != nil {
		WriteInvalidDate(w, err)
		return
	}

	endG := calendar.AddDays(start, q.Days)
	if err := endG.Validate(); err != nil {
		WriteInvalidDate(w, err)
		return
	}
	end := calendar.EndDate(start, q.Days)

	WriteSuccess(w, map[string]interface{}{
		"start": newDateView(start.ToJalali(), start),
		"days":  q.Days,
		"end":   newDateView(end, endG),
	})
}

// FormatPrice handles GET /api/v1/format/price?value=...
func (h *Handlers) FormatPrice(w http.ResponseWriter, r *http.Request) {
	q := priceQuery{Value: r.URL.Query().Get("value")}
	if !h.validate(w, q) {
		return
	}

	formatted := calendar.FormatPrice(q.Value)
	if formatted == "" {
		WriteBadRequest(w, "value must contain digits")
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"amount":    calendar.ParsePrice(q.Value),
		"formatted": formatted,
	})
}

// ListOccasions handles GET /api/v1/occasions?year=YYYY[&month=M]
func (h *Handlers) ListOccasions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	year, err := parseIntParam("year", r.URL.Query().Get("year"), calendar.Today(h.now(), h.loc).Year)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}
	month, err := parseIntParam("month", r.URL.Query().Get("month"), 0)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	q := occasionsQuery{Year: year, Month: month}
	if !h.validate(w, q) {
		return
	}

	var occasions []database.Occasion
	if q.Month == 0 {
		occasions, err = h.db.ListOccasionsForYear(ctx, q.Year)
	} else {
		occasions, err = h.db.ListOccasionsForMonth(ctx, q.Year, q.Month)
	}
	if err != nil {
		h.log(r).Error("failed to list occasions", slog.Int("year", q.Year), slog.Any("error", err))
		WriteInternalError(w, "Failed to retrieve occasions")
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"year":      q.Year,
		"month":     q.Month,
		"occasions": occasions,
	})
}

// CreateOccasion handles POST /api/v1/admin/occasions
func (h *Handlers) CreateOccasion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createOccasionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if !h.validate(w, req) {
		return
	}

	occasion := &database.Occasion{
		Year:      req.Year,
		Month:     req.Month,
		Day:       req.Day,
		Title:     req.Title,
		IsHoliday: req.IsHoliday,
	}

	if err := h.db.CreateOccasion(ctx, occasion); err != nil {
		switch {
		case errors.Is(err, database.ErrDuplicate):
			WriteError(w, http.StatusConflict, "Occasion already exists on that date", CodeDuplicate)
		case errors.Is(err, database.ErrInvalidOccasion):
			WriteError(w, http.StatusBadRequest, err.Error(), CodeValidation)
		default:
			h.log(r).Error("failed to create occasion", slog.Any("error", err))
			WriteInternalError(w, "Failed to create occasion")
		}
		return
	}

	h.log(r).Info("occasion created",
		slog.Int64("id", occasion.ID),
		slog.String("title", occasion.Title))

	WriteCreated(w, occasion)
}

// DeleteOccasion handles DELETE /api/v1/admin/occasions/{id}
func (h *Handlers) DeleteOccasion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		WriteBadRequest(w, "Invalid occasion ID")
		return
	}

	if err := h.db.DeleteOccasion(ctx, id); err != nil {
		if database.IsNotFound(err) {
			WriteNotFound(w, "Occasion not found")
			return
		}
		h.log(r).Error("failed to delete occasion", slog.Int64("id", id), slog.Any("error", err))
		WriteInternalError(w, "Failed to delete occasion")
		return
	}

	WriteSuccess(w, map[string]string{"message": "Occasion deleted"})
}

func (h *Handlers) log(r *http.Request) *slog.Logger {
	return logger.FromContext(r.Context(), h.logger)
}

// decodeJSON decodes a size-limited JSON request body.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("request body is empty")
	}
	defer r.Body.Close()

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
