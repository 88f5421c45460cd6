package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Dimension is a grouping axis for aggregate queries.
type Dimension string

const (
	DimensionStatus        Dimension = "status"
	DimensionSenderBank    Dimension = "sender_bank"
	DimensionRecipientBank Dimension = "recipient_bank"
	DimensionCategory      Dimension = "category"
)

// Label returns the display label a transaction contributes to this dimension,
// or false when the transaction has no value for it (no bank, no category).
func (d Dimension) Label(t Transaction) (key string, label string, ok bool) {
	switch d {
	case DimensionStatus:
		return t.Status.ID, string(t.Status.Code), true
	case DimensionSenderBank:
		if t.SenderBank == nil {
			return "", "", false
		}
		return t.SenderBank.BankID, t.SenderBank.Title, true
	case DimensionRecipientBank:
		if t.RecipientBank == nil {
			return "", "", false
		}
		return t.RecipientBank.BankID, t.RecipientBank.Title, true
	case DimensionCategory:
		if t.Category == nil {
			return "", "", false
		}
		return t.Category.CategoryID, t.Category.Title, true
	default:
		panic(fmt.Sprintf("domain: unhandled dimension %q", string(d)))
	}
}

// AggregateConstraints scopes an aggregate query. Aggregation never uses the
// ad-hoc filter parameters: only owner, an optional range and optional types.
type AggregateConstraints struct {
	OwnerID        string
	Start          *time.Time
	End            *time.Time
	TypeCodes      []TypeCode
	IncludeDeleted bool
}

// InWindow returns a copy of c restricted to w.
func (c AggregateConstraints) InWindow(w Window) AggregateConstraints {
	start, end := w.Start, w.End
	c.Start, c.End = &start, &end
	return c
}

// OfTypes returns a copy of c restricted to the given type codes.
func (c AggregateConstraints) OfTypes(codes ...TypeCode) AggregateConstraints {
	c.TypeCodes = append([]TypeCode(nil), codes...)
	return c
}

// LabeledCount is one grouped count row as produced by a store.
type LabeledCount struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// LabeledAmount is one grouped sum row as produced by a store.
type LabeledAmount struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// CountGroups accumulates counts per label. Rows sharing a label are added
// together; labels keep the order of their first occurrence.
type CountGroups struct {
	order  []string
	counts map[string]int64
}

// NewCountGroups builds an accumulator from store rows.
func NewCountGroups(rows []LabeledCount) CountGroups {
	var g CountGroups
	for _, r := range rows {
		g.Add(r.Label, r.Count)
	}
	return g
}

// Add merges n into the group for label.
func (g *CountGroups) Add(label string, n int64) {
	if g.counts == nil {
		g.counts = make(map[string]int64)
	}
	if _, seen := g.counts[label]; !seen {
		g.order = append(g.order, label)
	}
	g.counts[label] += n
}

// Len returns the number of distinct labels.
func (g CountGroups) Len() int { return len(g.order) }

// Get returns the count for label.
func (g CountGroups) Get(label string) (int64, bool) {
	n, ok := g.counts[label]
	return n, ok
}

// Rows returns the merged groups in first-occurrence order.
func (g CountGroups) Rows() []LabeledCount {
	rows := make([]LabeledCount, 0, len(g.order))
	for _, label := range g.order {
		rows = append(rows, LabeledCount{Label: label, Count: g.counts[label]})
	}
	return rows
}

// AmountGroups accumulates decimal sums per label with the same merge and
// ordering rules as CountGroups.
type AmountGroups struct {
	order   []string
	amounts map[string]decimal.Decimal
}

// NewAmountGroups builds an accumulator from store rows.
func NewAmountGroups(rows []LabeledAmount) AmountGroups {
	var g AmountGroups
	for _, r := range rows {
		g.Add(r.Label, r.Amount)
	}
	return g
}

// Add merges amount into the group for label.
func (g *AmountGroups) Add(label string, amount decimal.Decimal) {
	if g.amounts == nil {
		g.amounts = make(map[string]decimal.Decimal)
	}
	current, seen := g.amounts[label]
	if !seen {
		g.order = append(g.order, label)
		current = decimal.Zero
	}
	g.amounts[label] = current.Add(amount)
}

// Len returns the number of distinct labels.
func (g AmountGroups) Len() int { return len(g.order) }

// Get returns the sum for label.
func (g AmountGroups) Get(label string) (decimal.Decimal, bool) {
	d, ok := g.amounts[label]
	return d, ok
}

// Total is the sum over every group.
func (g AmountGroups) Total() decimal.Decimal {
	total := decimal.Zero
	for _, label := range g.order {
		total = total.Add(g.amounts[label])
	}
	return total
}

// Rows returns the merged groups in first-occurrence order.
func (g AmountGroups) Rows() []LabeledAmount {
	rows := make([]LabeledAmount, 0, len(g.order))
	for _, label := range g.order {
		rows = append(rows, LabeledAmount{Label: label, Amount: g.amounts[label]})
	}
	return rows
}

// Totals is the income / outflow / balance triple for a range.
type Totals struct {
	Income  decimal.Decimal `json:"income"`
	Outflow decimal.Decimal `json:"outflow"`
	Balance decimal.Decimal `json:"balance"`
}

// NewTotals derives the balance from income and outflow.
func NewTotals(income, outflow decimal.Decimal) Totals {
	return Totals{Income: income, Outflow: outflow, Balance: income.Sub(outflow)}
}

// PeriodCount is the number of transactions in one look-back window.
type PeriodCount struct {
	Period Period `json:"period"`
	Window Window `json:"window"`
	Count  int64  `json:"count"`
}

// DashboardSummary holds every aggregate shown on the dashboard report.
type DashboardSummary struct {
	Window          Window        `json:"window"`
	Totals          Totals        `json:"totals"`
	PeriodCounts    []PeriodCount `json:"periodCounts"`
	ByStatus        CountGroups   `json:"-"`
	BySenderBank    CountGroups   `json:"-"`
	ByRecipientBank CountGroups   `json:"-"`
}

// Percentage returns part/total rounded half-up to 4 decimal places; zero when total is zero.
func Percentage(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.DivRound(total, 4)
}
