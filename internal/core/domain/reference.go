package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
)

// TransactionType is the reference entity behind a TypeCode.
type TransactionType struct {
	ID    string   `json:"id"`
	Code  TypeCode `json:"code"`
	Title string   `json:"title"`
}

// TransactionStatus is the reference entity behind a StatusCode.
type TransactionStatus struct {
	ID    string     `json:"id"`
	Code  StatusCode `json:"code"`
	Title string     `json:"title"`
}

// PersonType is the reference entity behind a PersonTypeCode.
type PersonType struct {
	ID    string         `json:"id"`
	Code  PersonTypeCode `json:"code"`
	Title string         `json:"title"`
}

// ReferenceData bundles the seeded lookup tables.
type ReferenceData struct {
	Statuses    []TransactionStatus `json:"statuses"`
	Types       []TransactionType   `json:"types"`
	PersonTypes []PersonType        `json:"personTypes"`
}

// Bank is a shared reference entity identified by its BIK clearing code.
type Bank struct {
	BankID    string    `json:"bankID"`
	Title     string    `json:"title"`
	BIK       string    `json:"bik"`
	CreatedAt time.Time `json:"createdAt"`
}

var bikPattern = regexp.MustCompile(`^\d{9}$`)

// Validate checks the bank title and BIK.
func (b Bank) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return fmt.Errorf("%w: bank title is required", apperrors.ErrValidation)
	}
	if !bikPattern.MatchString(b.BIK) {
		return fmt.Errorf("%w: BIK must contain exactly 9 digits", apperrors.ErrValidation)
	}
	return nil
}
