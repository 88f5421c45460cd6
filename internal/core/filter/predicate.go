// Package filter holds the atomic transaction predicates and the composer that
// folds the supplied ones into a single conjunctive filter. A predicate can be
// evaluated in memory against a domain.Transaction or pushed down to SQL.
package filter

import (
	"slices"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Kind tags the predicate variant.
type Kind string

const (
	KindOwnership     Kind = "ownership"
	KindNotDeleted    Kind = "not_deleted"
	KindDateBetween   Kind = "date_between"
	KindAmountBetween Kind = "amount_between"
	KindStatus        Kind = "has_status"
	KindSenderBank    Kind = "has_sender_bank"
	KindRecipientBank Kind = "has_recipient_bank"
	KindType          Kind = "has_type"
	KindCategory      Kind = "has_category"
	KindInn           Kind = "has_inn"
	KindTypeCodeIn    Kind = "type_code_in"
)

// Predicate is an atomic, side-effect-free condition on a transaction.
// Only the fields relevant to Kind are set. A predicate of unknown kind,
// including the zero value, matches nothing.
type Predicate struct {
	Kind      Kind
	Value     string
	From      *time.Time
	To        *time.Time
	Min       *decimal.Decimal
	Max       *decimal.Decimal
	TypeCodes []domain.TypeCode
}

// Ownership keeps transactions of the given owner.
func Ownership(ownerID string) Predicate {
	return Predicate{Kind: KindOwnership, Value: ownerID}
}

// NotDeleted drops soft-deleted transactions.
func NotDeleted() Predicate {
	return Predicate{Kind: KindNotDeleted}
}

// DateBetween keeps transactions whose operation time lies in [from, to].
// A nil bound leaves that side open.
func DateBetween(from, to *time.Time) Predicate {
	return Predicate{Kind: KindDateBetween, From: copyTime(from), To: copyTime(to)}
}

// AmountBetween keeps transactions whose amount lies in [min, max].
// A nil bound leaves that side open.
func AmountBetween(min, max *decimal.Decimal) Predicate {
	return Predicate{Kind: KindAmountBetween, Min: copyDecimal(min), Max: copyDecimal(max)}
}

// HasStatus matches the status reference id.
func HasStatus(statusID string) Predicate {
	return Predicate{Kind: KindStatus, Value: statusID}
}

// HasSenderBank matches the sender bank id.
func HasSenderBank(bankID string) Predicate {
	return Predicate{Kind: KindSenderBank, Value: bankID}
}

// HasRecipientBank matches the recipient bank id.
func HasRecipientBank(bankID string) Predicate {
	return Predicate{Kind: KindRecipientBank, Value: bankID}
}

// HasType matches the transaction type reference id.
func HasType(typeID string) Predicate {
	return Predicate{Kind: KindType, Value: typeID}
}

// HasCategory matches the category id.
func HasCategory(categoryID string) Predicate {
	return Predicate{Kind: KindCategory, Value: categoryID}
}

// HasInn matches the recipient INN exactly.
func HasInn(inn string) Predicate {
	return Predicate{Kind: KindInn, Value: inn}
}

// TypeCodeIn keeps transactions whose type code is one of codes.
func TypeCodeIn(codes ...domain.TypeCode) Predicate {
	return Predicate{Kind: KindTypeCodeIn, TypeCodes: slices.Clone(codes)}
}

// Matches evaluates the predicate against t.
func (p Predicate) Matches(t domain.Transaction) bool {
	switch p.Kind {
	case KindOwnership:
		return t.OwnerID == p.Value
	case KindNotDeleted:
		return t.Status.Code != domain.StatusDeleted
	case KindDateBetween:
		if p.From != nil && t.OperationDateTime.Before(*p.From) {
			return false
		}
		if p.To != nil && t.OperationDateTime.After(*p.To) {
			return false
		}
		return true
	case KindAmountBetween:
		if p.Min != nil && t.Amount.LessThan(*p.Min) {
			return false
		}
		if p.Max != nil && t.Amount.GreaterThan(*p.Max) {
			return false
		}
		return true
	case KindStatus:
		return t.Status.ID == p.Value
	case KindSenderBank:
		return t.SenderBank != nil && t.SenderBank.BankID == p.Value
	case KindRecipientBank:
		return t.RecipientBank != nil && t.RecipientBank.BankID == p.Value
	case KindType:
		return t.Type.ID == p.Value
	case KindCategory:
		return t.Category != nil && t.Category.CategoryID == p.Value
	case KindInn:
		return t.RecipientInn == p.Value
	case KindTypeCodeIn:
		return slices.Contains(p.TypeCodes, t.Type.Code)
	default:
		return false
	}
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func copyDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}
