package dto

import (
	"time"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CountByPeriodQuery binds the period statistics parameters.
type CountByPeriodQuery struct {
	Period   string `form:"period" binding:"required"`
	BaseDate string `form:"baseDate"`
}

// RangeQuery binds an optional date range.
type RangeQuery struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

// Window resolves the range. Missing bounds fall back to the given default window.
func (q RangeQuery) Window(fallback domain.Window) (domain.Window, error) {
	w := fallback
	start, err := ParseDateParam(q.StartDate, false)
	if err != nil {
		return domain.Window{}, err
	}
	end, err := ParseDateParam(q.EndDate, true)
	if err != nil {
		return domain.Window{}, err
	}
	if start != nil {
		w.Start = *start
	}
	if end != nil {
		w.End = *end
	}
	if err := w.Validate(); err != nil {
		return domain.Window{}, err
	}
	return w, nil
}

// OptionalWindow resolves the range only when at least one bound is present.
func (q RangeQuery) OptionalWindow(fallback domain.Window) (*domain.Window, error) {
	if q.StartDate == "" && q.EndDate == "" {
		return nil, nil
	}
	w, err := q.Window(fallback)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// AmountByTypeQuery binds the amount-by-type statistics parameters.
type AmountByTypeQuery struct {
	RangeQuery
	TypeCode string `form:"typeCode" binding:"required"`
}

// CategoryReportQuery binds the category statistics and report parameters.
type CategoryReportQuery struct {
	RangeQuery
	TypeCode string `form:"typeCode" binding:"required"`
}

// PeriodCountResponse is the count of one look-back window.
type PeriodCountResponse struct {
	Period    string    `json:"period"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Count     int64     `json:"count"`
}

// ToPeriodCountResponse converts a domain.PeriodCount.
func ToPeriodCountResponse(pc *domain.PeriodCount) PeriodCountResponse {
	return PeriodCountResponse{Period: string(pc.Period), StartDate: pc.Window.Start, EndDate: pc.Window.End, Count: pc.Count}
}

// AmountResponse is a single summed amount.
type AmountResponse struct {
	TypeCode  string          `json:"typeCode"`
	StartDate time.Time       `json:"startDate"`
	EndDate   time.Time       `json:"endDate"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"string"`
}

// BalanceResponse is the income / outflow / balance triple.
type BalanceResponse struct {
	StartDate time.Time       `json:"startDate"`
	EndDate   time.Time       `json:"endDate"`
	Income    decimal.Decimal `json:"income" swaggertype:"string"`
	Outflow   decimal.Decimal `json:"outflow" swaggertype:"string"`
	Balance   decimal.Decimal `json:"balance" swaggertype:"string"`
}

// ToBalanceResponse converts domain.Totals for window.
func ToBalanceResponse(w domain.Window, t domain.Totals) BalanceResponse {
	return BalanceResponse{StartDate: w.Start, EndDate: w.End, Income: t.Income, Outflow: t.Outflow, Balance: t.Balance}
}

// CountByBankResponse holds sender and recipient bank counts.
type CountByBankResponse struct {
	SenderBanks    []domain.LabeledCount `json:"senderBanks"`
	RecipientBanks []domain.LabeledCount `json:"recipientBanks"`
}

// CategoryAmountResponse is one row of the category distribution.
type CategoryAmountResponse struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount" swaggertype:"string"`
	Percentage decimal.Decimal `json:"percentage" swaggertype:"string"`
}

// AmountByCategoryResponse is the per-category distribution of one type.
type AmountByCategoryResponse struct {
	TypeCode   string                   `json:"typeCode"`
	Categories []CategoryAmountResponse `json:"categories"`
	Total      decimal.Decimal          `json:"total" swaggertype:"string"`
}

// ToAmountByCategoryResponse converts merged category groups.
func ToAmountByCategoryResponse(code domain.TypeCode, groups domain.AmountGroups) AmountByCategoryResponse {
	total := groups.Total()
	rows := groups.Rows()
	resp := AmountByCategoryResponse{
		TypeCode:   string(code),
		Categories: make([]CategoryAmountResponse, 0, len(rows)),
		Total:      total,
	}
	for _, r := range rows {
		resp.Categories = append(resp.Categories, CategoryAmountResponse{
			Category:   r.Label,
			Amount:     r.Amount,
			Percentage: domain.Percentage(r.Amount, total),
		})
	}
	return resp
}
