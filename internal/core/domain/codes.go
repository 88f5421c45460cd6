package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
)

// TypeCode classifies a transaction as income or one of the outflow kinds.
type TypeCode string

const (
	TypeIncome   TypeCode = "INCOME"
	TypeExpense  TypeCode = "EXPENSE"
	TypeTransfer TypeCode = "TRANSFER"
)

// OutflowTypes are the type codes combined into the outflow figure of a balance.
var OutflowTypes = []TypeCode{TypeExpense, TypeTransfer}

// ParseTypeCode converts a raw code into a TypeCode. Matching is case-insensitive.
func ParseTypeCode(raw string) (TypeCode, error) {
	switch code := TypeCode(strings.ToUpper(strings.TrimSpace(raw))); code {
	case TypeIncome, TypeExpense, TypeTransfer:
		return code, nil
	default:
		return "", fmt.Errorf("%w: unknown transaction type code %q", apperrors.ErrValidation, raw)
	}
}

// IsOutflow reports whether amounts of this type reduce the balance.
func (c TypeCode) IsOutflow() bool {
	return c == TypeExpense || c == TypeTransfer
}

// StatusCode is the lifecycle state of a transaction.
type StatusCode string

const (
	StatusNew        StatusCode = "NEW"
	StatusConfirmed  StatusCode = "CONFIRMED"
	StatusProcessing StatusCode = "PROCESSING"
	StatusCancelled  StatusCode = "CANCELLED"
	StatusCompleted  StatusCode = "COMPLETED"
	StatusDeleted    StatusCode = "DELETED"
	StatusReturned   StatusCode = "RETURNED"
)

// ParseStatusCode converts a raw code into a StatusCode. Matching is case-insensitive.
func ParseStatusCode(raw string) (StatusCode, error) {
	switch code := StatusCode(strings.ToUpper(strings.TrimSpace(raw))); code {
	case StatusNew, StatusConfirmed, StatusProcessing, StatusCancelled,
		StatusCompleted, StatusDeleted, StatusReturned:
		return code, nil
	default:
		return "", fmt.Errorf("%w: unknown transaction status code %q", apperrors.ErrValidation, raw)
	}
}

// AllowsEdit reports whether field updates are permitted in this state.
func (c StatusCode) AllowsEdit() bool {
	return c == StatusNew
}

// AllowsDelete reports whether a transaction in this state may move to DELETED.
// Only NEW transactions qualify; a tombstone cannot be deleted again.
func (c StatusCode) AllowsDelete() bool {
	return c == StatusNew
}

// PersonTypeCode distinguishes private individuals from legal entities.
type PersonTypeCode string

const (
	PersonIndividual PersonTypeCode = "INDIVIDUAL"
	PersonLegal      PersonTypeCode = "LEGAL"
)

// ParsePersonTypeCode converts a raw code into a PersonTypeCode. Matching is case-insensitive.
func ParsePersonTypeCode(raw string) (PersonTypeCode, error) {
	switch code := PersonTypeCode(strings.ToUpper(strings.TrimSpace(raw))); code {
	case PersonIndividual, PersonLegal:
		return code, nil
	default:
		return "", fmt.Errorf("%w: unknown person type code %q", apperrors.ErrValidation, raw)
	}
}
