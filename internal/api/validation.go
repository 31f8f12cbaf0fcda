package api

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mizan-accounting/jalali-api/internal/calendar"
)

// newValidator returns a validator that reports fields by their json or
// query tag names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = fld.Tag.Get("query")
		}
		return name
	})
	return v
}

// validationMessage flattens validator errors into one readable line.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, e.Field()+": "+fieldMessage(e))
	}
	return strings.Join(msgs, "; ")
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "gte":
		return "must be at least " + e.Param()
	case "lte":
		return "must be at most " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return "must be at most " + e.Param() + " characters"
		}
		return "must be at most " + e.Param()
	default:
		return "failed " + e.Tag() + " validation"
	}
}

// Query and body DTOs. Year bounds match calendar.MinYear and calendar.MaxYear.

type gregorianQuery struct {
	Date string `query:"date" validate:"required"`
}

type jalaliQuery struct {
	Date string `query:"date" validate:"required"`
}

type inputQuery struct {
	Value string `query:"value" validate:"max=64"`
}

type yearPath struct {
	Year int `query:"year" validate:"gte=980,lte=9377"`
}

type monthPath struct {
	Year  int `query:"year" validate:"gte=980,lte=9377"`
	Month int `query:"month" validate:"gte=1,lte=12"`
}

type endDateQuery struct {
	Start string `query:"start" validate:"required"`
	Days  int    `query:"days" validate:"gte=0"`
}

type priceQuery struct {
	Value string `query:"value" validate:"required,max=32"`
}

type occasionsQuery struct {
	Year  int `query:"year" validate:"gte=980,lte=9377"`
	Month int `query:"month" validate:"omitempty,gte=1,lte=12"`
}

type createOccasionRequest struct {
	Year      int    `json:"year" validate:"omitempty,gte=980,lte=9377"`
	Month     int    `json:"month" validate:"gte=1,lte=12"`
	Day       int    `json:"day" validate:"gte=1,lte=31"`
	Title     string `json:"title" validate:"required,max=200"`
	IsHoliday bool   `json:"is_holiday"`
}

// parseIntParam parses a decimal parameter, accepting Persian and Arabic
// digits. An empty value yields def.
func parseIntParam(name, value string, def int) (int, error) {
	value = strings.TrimSpace(calendar.NormalizeDigits(value))
	if value == "" {
		return def, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, value)
	}
	return n, nil
}

// validate runs the struct validator and writes a 400 on failure.
func (h *Handlers) validate(w http.ResponseWriter, v interface{}) bool {
	if err := h.validator.Struct(v); err != nil {
		WriteError(w, http.StatusBadRequest, validationMessage(err), CodeValidation)
		return false
	}
	return true
}
