package controllers

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/lestahub/lestahub-backend/pkg/errors"
)

const dateOnlyLayout = "2006-01-02"

// parseDate accepts RFC3339 timestamps and bare YYYY-MM-DD dates.
func parseDate(raw *string, field string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	value := strings.TrimSpace(*raw)
	if value == "" {
		return nil, nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return &parsed, nil
	}
	if parsed, err := time.Parse(dateOnlyLayout, value); err == nil {
		return &parsed, nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid date").WithDetails(map[string]any{"field": field})
}

func decimalFromFloat(value *float64) *decimal.Decimal {
	if value == nil {
		return nil
	}
	parsed := decimal.NewFromFloat(*value)
	return &parsed
}
