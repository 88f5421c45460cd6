package mapping

import (
	"time"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
// Only the columns of the transactions table are populated.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID:          d.TransactionID,
		OwnerID:                d.OwnerID,
		PersonTypeID:           d.PersonType.ID,
		OperationDateTime:      d.OperationDateTime,
		TypeID:                 d.Type.ID,
		Amount:                 d.Amount,
		StatusID:               d.Status.ID,
		SenderAccountNumber:    nullableString(d.SenderAccountNumber),
		RecipientAccountNumber: nullableString(d.RecipientAccountNumber),
		RecipientInn:           nullableString(d.RecipientInn),
		RecipientPhone:         nullableString(d.RecipientPhone),
		Comment:                nullableString(d.Comment),
		AuditFields:            ToModelAuditFields(d.AuditFields),
	}
	if d.Category != nil {
		m.CategoryID = &d.Category.CategoryID
	}
	if d.SenderBank != nil {
		m.SenderBankID = &d.SenderBank.BankID
	}
	if d.RecipientBank != nil {
		m.RecipientBankID = &d.RecipientBank.BankID
	}
	return m
}

// ToDomainTransaction converts a joined model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		TransactionID: m.TransactionID,
		OwnerID:       m.OwnerID,
		PersonType: domain.PersonType{
			ID:    m.PersonTypeID,
			Code:  domain.PersonTypeCode(m.PersonTypeCode),
			Title: m.PersonTypeTitle,
		},
		OperationDateTime: m.OperationDateTime,
		Type: domain.TransactionType{
			ID:    m.TypeID,
			Code:  domain.TypeCode(m.TypeCode),
			Title: m.TypeTitle,
		},
		Amount: m.Amount,
		Status: domain.TransactionStatus{
			ID:    m.StatusID,
			Code:  domain.StatusCode(m.StatusCode),
			Title: m.StatusTitle,
		},
		SenderAccountNumber:    derefString(m.SenderAccountNumber),
		RecipientAccountNumber: derefString(m.RecipientAccountNumber),
		RecipientInn:           derefString(m.RecipientInn),
		RecipientPhone:         derefString(m.RecipientPhone),
		Comment:                derefString(m.Comment),
		AuditFields:            ToDomainAuditFields(m.AuditFields),
	}
	if m.CategoryID != nil {
		d.Category = &domain.CategoryRef{
			CategoryID: *m.CategoryID,
			Title:      derefString(m.CategoryTitle),
			TypeCode:   domain.TypeCode(derefString(m.CategoryTypeCode)),
		}
	}
	if m.SenderBankID != nil {
		d.SenderBank = joinedBank(*m.SenderBankID, m.SenderBankTitle, m.SenderBankBIK, m.SenderBankCreatedAt)
	}
	if m.RecipientBankID != nil {
		d.RecipientBank = joinedBank(*m.RecipientBankID, m.RecipientBankTitle, m.RecipientBankBIK, m.RecipientBankCreatedAt)
	}
	return d
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

// ToModelBank converts a domain Bank to a model Bank
func ToModelBank(d domain.Bank) models.Bank {
	return models.Bank{BankID: d.BankID, Title: d.Title, BIK: d.BIK, CreatedAt: d.CreatedAt}
}

// ToDomainBank converts a model Bank to a domain Bank
func ToDomainBank(m models.Bank) domain.Bank {
	return domain.Bank{BankID: m.BankID, Title: m.Title, BIK: m.BIK, CreatedAt: m.CreatedAt}
}

// ToModelCategory converts a domain Category to a model Category
func ToModelCategory(d domain.Category) models.Category {
	m := models.Category{
		CategoryID:  d.CategoryID,
		OwnerID:     d.OwnerID,
		Title:       d.Title,
		TypeID:      d.Type.ID,
		TypeCode:    string(d.Type.Code),
		TypeTitle:   d.Type.Title,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
	if d.Budget != nil {
		m.Budget.Decimal = *d.Budget
		m.Budget.Valid = true
	}
	return m
}

// ToDomainCategory converts a model Category to a domain Category
func ToDomainCategory(m models.Category) domain.Category {
	d := domain.Category{
		CategoryID: m.CategoryID,
		OwnerID:    m.OwnerID,
		Title:      m.Title,
		Type: domain.TransactionType{
			ID:    m.TypeID,
			Code:  domain.TypeCode(m.TypeCode),
			Title: m.TypeTitle,
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.Budget.Valid {
		budget := m.Budget.Decimal
		d.Budget = &budget
	}
	return d
}

func joinedBank(id string, title, bik *string, createdAt *time.Time) *domain.Bank {
	b := &domain.Bank{BankID: id, Title: derefString(title), BIK: derefString(bik)}
	if createdAt != nil {
		b.CreatedAt = *createdAt
	}
	return b
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
