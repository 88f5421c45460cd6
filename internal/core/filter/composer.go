package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Params is the optional filter parameter set. A nil field does not constrain.
type Params struct {
	SenderBankID      *string
	RecipientBankID   *string
	DateStart         *time.Time
	DateEnd           *time.Time
	StatusID          *string
	Inn               *string
	AmountMin         *decimal.Decimal
	AmountMax         *decimal.Decimal
	TransactionTypeID *string
	CategoryID        *string
}

// Validate rejects malformed INNs and inverted ranges.
func (p Params) Validate() error {
	if p.Inn != nil {
		if err := domain.ValidateINN(*p.Inn); err != nil {
			return err
		}
	}
	if p.AmountMin != nil && p.AmountMax != nil && p.AmountMin.GreaterThan(*p.AmountMax) {
		return fmt.Errorf("%w: amountMin must not exceed amountMax", apperrors.ErrValidation)
	}
	if p.DateStart != nil && p.DateEnd != nil && p.DateStart.After(*p.DateEnd) {
		return fmt.Errorf("%w: dateStart must not be after dateEnd", apperrors.ErrValidation)
	}
	return nil
}

// Filter is an ordered conjunction of predicates. The zero value matches everything.
type Filter struct {
	predicates []Predicate
}

// Option adjusts composition.
type Option func(*composeOptions)

type composeOptions struct {
	includeDeleted bool
}

// WithDeleted bypasses the NotDeleted predicate so tombstones are returned.
func WithDeleted() Option {
	return func(o *composeOptions) { o.includeDeleted = true }
}

// Compose builds Ownership(ownerID) AND NotDeleted() AND one predicate per
// present parameter. Date and amount bounds are folded into a single range
// predicate each, open on the side whose bound is absent.
func Compose(ownerID string, p Params, opts ...Option) (Filter, error) {
	if strings.TrimSpace(ownerID) == "" {
		return Filter{}, fmt.Errorf("%w: owner is required", apperrors.ErrValidation)
	}
	if err := p.Validate(); err != nil {
		return Filter{}, err
	}

	var o composeOptions
	for _, opt := range opts {
		opt(&o)
	}

	preds := []Predicate{Ownership(ownerID)}
	if !o.includeDeleted {
		preds = append(preds, NotDeleted())
	}
	if p.SenderBankID != nil {
		preds = append(preds, HasSenderBank(*p.SenderBankID))
	}
	if p.RecipientBankID != nil {
		preds = append(preds, HasRecipientBank(*p.RecipientBankID))
	}
	if p.DateStart != nil || p.DateEnd != nil {
		preds = append(preds, DateBetween(p.DateStart, p.DateEnd))
	}
	if p.StatusID != nil {
		preds = append(preds, HasStatus(*p.StatusID))
	}
	if p.Inn != nil {
		preds = append(preds, HasInn(*p.Inn))
	}
	if p.AmountMin != nil || p.AmountMax != nil {
		preds = append(preds, AmountBetween(p.AmountMin, p.AmountMax))
	}
	if p.TransactionTypeID != nil {
		preds = append(preds, HasType(*p.TransactionTypeID))
	}
	if p.CategoryID != nil {
		preds = append(preds, HasCategory(*p.CategoryID))
	}
	return Filter{predicates: preds}, nil
}

// ForAggregation converts aggregate constraints into a filter: owner, the
// non-deleted subset unless asked otherwise, the optional range and types.
func ForAggregation(c domain.AggregateConstraints) Filter {
	preds := []Predicate{Ownership(c.OwnerID)}
	if !c.IncludeDeleted {
		preds = append(preds, NotDeleted())
	}
	if c.Start != nil || c.End != nil {
		preds = append(preds, DateBetween(c.Start, c.End))
	}
	if len(c.TypeCodes) > 0 {
		preds = append(preds, TypeCodeIn(c.TypeCodes...))
	}
	return Filter{predicates: preds}
}

// And returns a new filter with extra appended; f is left unchanged.
func (f Filter) And(extra ...Predicate) Filter {
	preds := make([]Predicate, 0, len(f.predicates)+len(extra))
	preds = append(preds, f.predicates...)
	preds = append(preds, extra...)
	return Filter{predicates: preds}
}

// Predicates returns a copy of the conjuncts in composition order.
func (f Filter) Predicates() []Predicate {
	return append([]Predicate(nil), f.predicates...)
}

// Has reports whether a predicate of kind k is part of the filter.
func (f Filter) Has(k Kind) bool {
	for _, p := range f.predicates {
		if p.Kind == k {
			return true
		}
	}
	return false
}

// Matches reports whether t satisfies every predicate.
func (f Filter) Matches(t domain.Transaction) bool {
	for _, p := range f.predicates {
		if !p.Matches(t) {
			return false
		}
	}
	return true
}

// Where renders the conjunction as an SQL boolean expression without the WHERE
// keyword, appending arguments to args.
func (f Filter) Where(args *Args) string {
	if len(f.predicates) == 0 {
		return "TRUE"
	}
	clauses := make([]string, len(f.predicates))
	for i, p := range f.predicates {
		clauses[i] = "(" + p.SQL(args) + ")"
	}
	return strings.Join(clauses, " AND ")
}
