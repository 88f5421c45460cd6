package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditFields mirrors the audit columns shared by the owner-scoped tables.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
	LastUpdatedBy string    `db:"last_updated_by"`
}

// Transaction is a row of the transactions table joined with its reference
// tables. Columns from LEFT JOINs are pointers.
type Transaction struct {
	TransactionID          string          `db:"transaction_id"`
	OwnerID                string          `db:"owner_id"`
	PersonTypeID           string          `db:"person_type_id"`
	PersonTypeCode         string          `db:"person_type_code"`
	PersonTypeTitle        string          `db:"person_type_title"`
	OperationDateTime      time.Time       `db:"operation_date_time"`
	TypeID                 string          `db:"transaction_type_id"`
	TypeCode               string          `db:"type_code"`
	TypeTitle              string          `db:"type_title"`
	CategoryID             *string         `db:"category_id"`
	CategoryTitle          *string         `db:"category_title"`
	CategoryTypeCode       *string         `db:"category_type_code"`
	Amount                 decimal.Decimal `db:"amount"` // numeric(15,5)
	StatusID               string          `db:"status_id"`
	StatusCode             string          `db:"status_code"`
	StatusTitle            string          `db:"status_title"`
	SenderBankID           *string         `db:"sender_bank_id"`
	SenderBankTitle        *string         `db:"sender_bank_title"`
	SenderBankBIK          *string         `db:"sender_bank_bik"`
	SenderBankCreatedAt    *time.Time      `db:"sender_bank_created_at"`
	SenderAccountNumber    *string         `db:"sender_account_number"`
	RecipientBankID        *string         `db:"recipient_bank_id"`
	RecipientBankTitle     *string         `db:"recipient_bank_title"`
	RecipientBankBIK       *string         `db:"recipient_bank_bik"`
	RecipientBankCreatedAt *time.Time      `db:"recipient_bank_created_at"`
	RecipientAccountNumber *string         `db:"recipient_account_number"`
	RecipientInn           *string         `db:"recipient_inn"`
	RecipientPhone         *string         `db:"recipient_phone"`
	Comment                *string         `db:"comment"`
	AuditFields
}

// Bank is a row of the banks table.
type Bank struct {
	BankID    string    `db:"bank_id"`
	Title     string    `db:"title"`
	BIK       string    `db:"bik"`
	CreatedAt time.Time `db:"created_at"`
}

// Category is a row of the categories table joined with its transaction type.
type Category struct {
	CategoryID string              `db:"category_id"`
	OwnerID    string              `db:"owner_id"`
	Title      string              `db:"title"`
	TypeID     string              `db:"transaction_type_id"`
	TypeCode   string              `db:"type_code"`
	TypeTitle  string              `db:"type_title"`
	Budget     decimal.NullDecimal `db:"budget"`
	AuditFields
}

// Reference is a row of one of the seeded lookup tables.
type Reference struct {
	ID    string `db:"id"`
	Code  string `db:"code"`
	Title string `db:"title"`
}
