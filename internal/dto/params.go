package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

var dateTimeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02T15:04", "02.01.2006 15:04"}

var dateOnlyLayouts = []string{"2006-01-02", "02.01.2006"}

// ParseDateParam parses a query date. Date-only values resolve to the start of
// the day, or to its last instant when endOfDay is set, so that an end date
// includes the whole day.
func ParseDateParam(raw string, endOfDay bool) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	for _, layout := range dateOnlyLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			if endOfDay {
				t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
			}
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: invalid date %q, use YYYY-MM-DD, DD.MM.YYYY or RFC3339", apperrors.ErrValidation, raw)
}

// ParseDecimalParam parses an optional decimal query value.
func ParseDecimalParam(name, raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a decimal number", apperrors.ErrValidation, name)
	}
	return &d, nil
}

func optionalString(raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	return &raw
}
