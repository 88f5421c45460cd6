package dto

import (
	"time"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/core/filter"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a new transaction.
type CreateTransactionRequest struct {
	PersonType             string          `json:"personType" binding:"required,oneof=INDIVIDUAL LEGAL" example:"INDIVIDUAL"`
	OperationDateTime      time.Time       `json:"operationDateTime" binding:"required"`
	TransactionType        string          `json:"transactionType" binding:"required,oneof=INCOME EXPENSE TRANSFER" example:"EXPENSE"`
	CategoryID             *string         `json:"categoryID,omitempty" binding:"omitempty,uuid"`
	Amount                 decimal.Decimal `json:"amount" swaggertype:"string" example:"1500.00000"`
	SenderBankID           *string         `json:"senderBankID,omitempty" binding:"omitempty,uuid"`
	SenderAccountNumber    string          `json:"senderAccountNumber,omitempty" binding:"omitempty,max=34"`
	RecipientBankID        *string         `json:"recipientBankID,omitempty" binding:"omitempty,uuid"`
	RecipientAccountNumber string          `json:"recipientAccountNumber,omitempty" binding:"omitempty,max=34"`
	RecipientInn           string          `json:"recipientInn,omitempty" binding:"omitempty,inn" example:"7707083893"`
	RecipientPhone         string          `json:"recipientPhone,omitempty" binding:"omitempty,phone" example:"+79161234567"`
	Comment                string          `json:"comment,omitempty" binding:"max=1000"`
}

// UpdateTransactionRequest defines the fields that may change while a transaction is NEW.
// Nil fields are left untouched.
type UpdateTransactionRequest struct {
	PersonType             *string          `json:"personType,omitempty" binding:"omitempty,oneof=INDIVIDUAL LEGAL"`
	OperationDateTime      *time.Time       `json:"operationDateTime,omitempty"`
	TransactionType        *string          `json:"transactionType,omitempty" binding:"omitempty,oneof=INCOME EXPENSE TRANSFER"`
	CategoryID             *string          `json:"categoryID,omitempty" binding:"omitempty,uuid"`
	ClearCategory          bool             `json:"clearCategory,omitempty"`
	Amount                 *decimal.Decimal `json:"amount,omitempty" swaggertype:"string"`
	StatusCode             *string          `json:"statusCode,omitempty" binding:"omitempty,oneof=NEW CONFIRMED PROCESSING CANCELLED COMPLETED RETURNED"`
	SenderBankID           *string          `json:"senderBankID,omitempty" binding:"omitempty,uuid"`
	SenderAccountNumber    *string          `json:"senderAccountNumber,omitempty" binding:"omitempty,max=34"`
	RecipientBankID        *string          `json:"recipientBankID,omitempty" binding:"omitempty,uuid"`
	RecipientAccountNumber *string          `json:"recipientAccountNumber,omitempty" binding:"omitempty,max=34"`
	RecipientInn           *string          `json:"recipientInn,omitempty" binding:"omitempty,inn"`
	RecipientPhone         *string          `json:"recipientPhone,omitempty" binding:"omitempty,phone"`
	Comment                *string          `json:"comment,omitempty" binding:"omitempty,max=1000"`
}

// TransactionFilterQuery binds the optional filter parameters from the query string.
type TransactionFilterQuery struct {
	SenderBankID      string `form:"senderBankId" binding:"omitempty,uuid"`
	RecipientBankID   string `form:"recipientBankId" binding:"omitempty,uuid"`
	DateStart         string `form:"dateStart"`
	DateEnd           string `form:"dateEnd"`
	StatusID          string `form:"statusId" binding:"omitempty,uuid"`
	Inn               string `form:"inn"`
	AmountMin         string `form:"amountMin"`
	AmountMax         string `form:"amountMax"`
	TransactionTypeID string `form:"transactionTypeId" binding:"omitempty,uuid"`
	CategoryID        string `form:"categoryId" binding:"omitempty,uuid"`
}

// ToFilterParams converts the raw query values. Empty values are absent.
func (q TransactionFilterQuery) ToFilterParams() (filter.Params, error) {
	start, err := ParseDateParam(q.DateStart, false)
	if err != nil {
		return filter.Params{}, err
	}
	end, err := ParseDateParam(q.DateEnd, true)
	if err != nil {
		return filter.Params{}, err
	}
	minAmount, err := ParseDecimalParam("amountMin", q.AmountMin)
	if err != nil {
		return filter.Params{}, err
	}
	maxAmount, err := ParseDecimalParam("amountMax", q.AmountMax)
	if err != nil {
		return filter.Params{}, err
	}
	return filter.Params{
		SenderBankID:      optionalString(q.SenderBankID),
		RecipientBankID:   optionalString(q.RecipientBankID),
		DateStart:         start,
		DateEnd:           end,
		StatusID:          optionalString(q.StatusID),
		Inn:               optionalString(q.Inn),
		AmountMin:         minAmount,
		AmountMax:         maxAmount,
		TransactionTypeID: optionalString(q.TransactionTypeID),
		CategoryID:        optionalString(q.CategoryID),
	}, nil
}

// ListTransactionsQuery binds list parameters: filters plus sort and page.
type ListTransactionsQuery struct {
	TransactionFilterQuery
	SortBy    string  `form:"sortBy"`
	SortDir   string  `form:"sortDir"`
	Limit     int     `form:"limit,default=20" binding:"min=1,max=500"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsParams is the validated list request handed to the service.
type ListTransactionsParams struct {
	Filter    filter.Params
	Sort      filter.Sort
	Limit     int
	NextToken *string
}

// ToParams validates and converts the bound query.
func (q ListTransactionsQuery) ToParams() (ListTransactionsParams, error) {
	fp, err := q.TransactionFilterQuery.ToFilterParams()
	if err != nil {
		return ListTransactionsParams{}, err
	}
	sort, err := filter.ParseSort(q.SortBy, q.SortDir)
	if err != nil {
		return ListTransactionsParams{}, err
	}
	return ListTransactionsParams{Filter: fp, Sort: sort, Limit: q.Limit, NextToken: q.NextToken}, nil
}

// ReferenceResponse is an id/code/title triple.
type ReferenceResponse struct {
	ID    string `json:"id"`
	Code  string `json:"code"`
	Title string `json:"title"`
}

// BankRefResponse is the bank part of a transaction response.
type BankRefResponse struct {
	BankID string `json:"bankID"`
	Title  string `json:"title"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID          string             `json:"transactionID"`
	PersonType             ReferenceResponse  `json:"personType"`
	OperationDateTime      time.Time          `json:"operationDateTime"`
	Type                   ReferenceResponse  `json:"type"`
	Category               *ReferenceResponse `json:"category,omitempty"`
	Amount                 string             `json:"amount"`
	Status                 ReferenceResponse  `json:"status"`
	SenderBank             *BankRefResponse   `json:"senderBank,omitempty"`
	SenderAccountNumber    string             `json:"senderAccountNumber,omitempty"`
	RecipientBank          *BankRefResponse   `json:"recipientBank,omitempty"`
	RecipientAccountNumber string             `json:"recipientAccountNumber,omitempty"`
	RecipientInn           string             `json:"recipientInn,omitempty"`
	RecipientPhone         string             `json:"recipientPhone,omitempty"`
	Comment                string             `json:"comment,omitempty"`
	Editable               bool               `json:"editable"`
	Deletable              bool               `json:"deletable"`
	CreatedAt              time.Time          `json:"createdAt"`
	LastUpdatedAt          time.Time          `json:"lastUpdatedAt"`
}

// ListTransactionsResponse is one page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

func bankRef(b *domain.Bank) *BankRefResponse {
	if b == nil {
		return nil
	}
	return &BankRefResponse{BankID: b.BankID, Title: b.Title}
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		TransactionID:          t.TransactionID,
		PersonType:             ReferenceResponse{ID: t.PersonType.ID, Code: string(t.PersonType.Code), Title: t.PersonType.Title},
		OperationDateTime:      t.OperationDateTime,
		Type:                   ReferenceResponse{ID: t.Type.ID, Code: string(t.Type.Code), Title: t.Type.Title},
		Amount:                 t.Amount.StringFixed(domain.AmountScale),
		Status:                 ReferenceResponse{ID: t.Status.ID, Code: string(t.Status.Code), Title: t.Status.Title},
		SenderBank:             bankRef(t.SenderBank),
		SenderAccountNumber:    t.SenderAccountNumber,
		RecipientBank:          bankRef(t.RecipientBank),
		RecipientAccountNumber: t.RecipientAccountNumber,
		RecipientInn:           t.RecipientInn,
		RecipientPhone:         t.RecipientPhone,
		Comment:                t.Comment,
		Editable:               t.IsEditable(),
		Deletable:              t.IsDeletable(),
		CreatedAt:              t.CreatedAt,
		LastUpdatedAt:          t.LastUpdatedAt,
	}
	if t.Category != nil {
		resp.Category = &ReferenceResponse{ID: t.Category.CategoryID, Code: string(t.Category.TypeCode), Title: t.Category.Title}
	}
	return resp
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}
