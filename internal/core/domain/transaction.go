package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

const (
	// AmountScale is the number of fractional digits every amount carries.
	AmountScale = 5
	// AmountIntegerDigits bounds the integer part of an amount.
	AmountIntegerDigits = 10
	// MaxCommentLength bounds the free-text comment, in characters.
	MaxCommentLength = 1000
)

var (
	innPattern   = regexp.MustCompile(`^\d{10,12}$`)
	phonePattern = regexp.MustCompile(`^(\+7|8)\d{10}$`)
	maxAmount    = decimal.New(1, AmountIntegerDigits)
)

// CategoryRef is the part of a Category carried on a transaction.
type CategoryRef struct {
	CategoryID string   `json:"categoryID"`
	Title      string   `json:"title"`
	TypeCode   TypeCode `json:"typeCode"`
}

// Transaction is a single personal financial operation and the unit of aggregation.
type Transaction struct {
	TransactionID          string            `json:"transactionID"` // Primary Key (UUID)
	OwnerID                string            `json:"ownerID"`       // UserID of the owner (Not Null)
	PersonType             PersonType        `json:"personType"`
	OperationDateTime      time.Time         `json:"operationDateTime"` // Business event time
	Type                   TransactionType   `json:"type"`
	Category               *CategoryRef      `json:"category,omitempty"`
	Amount                 decimal.Decimal   `json:"amount"` // Scale 5, non-negative
	Status                 TransactionStatus `json:"status"`
	SenderBank             *Bank             `json:"senderBank,omitempty"`
	SenderAccountNumber    string            `json:"senderAccountNumber,omitempty"`
	RecipientBank          *Bank             `json:"recipientBank,omitempty"`
	RecipientAccountNumber string            `json:"recipientAccountNumber,omitempty"`
	RecipientInn           string            `json:"recipientInn,omitempty"`
	RecipientPhone         string            `json:"recipientPhone,omitempty"`
	Comment                string            `json:"comment,omitempty"`
	AuditFields
}

// IsEditable reports whether field updates are allowed.
func (t Transaction) IsEditable() bool {
	return t.Status.Code.AllowsEdit()
}

// IsDeletable reports whether the transaction may transition to DELETED.
func (t Transaction) IsDeletable() bool {
	return t.Status.Code.AllowsDelete()
}

// IsDeleted reports whether the transaction is a soft-delete tombstone.
func (t Transaction) IsDeleted() bool {
	return t.Status.Code == StatusDeleted
}

// IsOutflow reports whether the amount counts against the balance.
func (t Transaction) IsOutflow() bool {
	return t.Type.Code.IsOutflow()
}

// Validate checks the invariants a transaction must satisfy before it is persisted.
func (t Transaction) Validate() error {
	if t.OwnerID == "" {
		return fmt.Errorf("%w: owner is required", apperrors.ErrValidation)
	}
	if t.OperationDateTime.IsZero() {
		return fmt.Errorf("%w: operation date/time is required", apperrors.ErrValidation)
	}
	if _, err := ParseTypeCode(string(t.Type.Code)); err != nil {
		return err
	}
	if _, err := ParseStatusCode(string(t.Status.Code)); err != nil {
		return err
	}
	if err := ValidateAmount(t.Amount); err != nil {
		return err
	}
	if t.RecipientInn != "" {
		if err := ValidateINN(t.RecipientInn); err != nil {
			return err
		}
	}
	if t.RecipientPhone != "" {
		if err := ValidatePhone(t.RecipientPhone); err != nil {
			return err
		}
	}
	if utf8.RuneCountInString(t.Comment) > MaxCommentLength {
		return fmt.Errorf("%w: comment must not exceed %d characters", apperrors.ErrValidation, MaxCommentLength)
	}
	if t.Category != nil && t.Category.TypeCode != t.Type.Code {
		return fmt.Errorf("%w: category %s is for %s transactions, not %s",
			apperrors.ErrValidation, t.Category.CategoryID, t.Category.TypeCode, t.Type.Code)
	}
	return nil
}

// ValidateAmount checks that an amount is non-negative and fits NUMERIC(15,5).
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	if !amount.Equal(amount.Truncate(AmountScale)) {
		return fmt.Errorf("%w: amount must have at most %d fractional digits", apperrors.ErrValidation, AmountScale)
	}
	if amount.GreaterThanOrEqual(maxAmount) {
		return fmt.Errorf("%w: amount must have at most %d integer digits", apperrors.ErrValidation, AmountIntegerDigits)
	}
	return nil
}

// NormalizeAmount returns the amount carried at exactly AmountScale fractional digits.
func NormalizeAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(AmountScale)
}

// ValidateINN checks a counterparty tax number: 10 to 12 digits.
func ValidateINN(inn string) error {
	if !innPattern.MatchString(inn) {
		return fmt.Errorf("%w: INN must contain 10 to 12 digits", apperrors.ErrValidation)
	}
	return nil
}

// ValidatePhone checks a recipient phone number of the form +7XXXXXXXXXX or 8XXXXXXXXXX.
func ValidatePhone(phone string) error {
	if !phonePattern.MatchString(phone) {
		return fmt.Errorf("%w: phone must match +7XXXXXXXXXX or 8XXXXXXXXXX", apperrors.ErrValidation)
	}
	return nil
}

// Category groups transactions of one type for a single owner.
type Category struct {
	CategoryID string           `json:"categoryID"`
	OwnerID    string           `json:"ownerID"`
	Title      string           `json:"title"`
	Type       TransactionType  `json:"type"`
	Budget     *decimal.Decimal `json:"budget,omitempty"` // Display only, never enforced
	AuditFields
}

// Ref returns the reference embedded in transactions.
func (c Category) Ref() *CategoryRef {
	return &CategoryRef{CategoryID: c.CategoryID, Title: c.Title, TypeCode: c.Type.Code}
}

// Validate checks the category fields.
func (c Category) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("%w: category title is required", apperrors.ErrValidation)
	}
	if utf8.RuneCountInString(c.Title) > 255 {
		return fmt.Errorf("%w: category title must not exceed 255 characters", apperrors.ErrValidation)
	}
	if _, err := ParseTypeCode(string(c.Type.Code)); err != nil {
		return err
	}
	if c.Budget != nil {
		if err := ValidateAmount(*c.Budget); err != nil {
			return fmt.Errorf("invalid budget: %w", err)
		}
	}
	return nil
}
