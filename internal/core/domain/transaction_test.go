package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validTransaction() domain.Transaction {
	return domain.Transaction{
		TransactionID:     "txn_123",
		OwnerID:           "user_1",
		OperationDateTime: time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		Type:              domain.TransactionType{ID: "type_expense", Code: domain.TypeExpense, Title: "Expense"},
		Status:            domain.TransactionStatus{ID: "status_new", Code: domain.StatusNew, Title: "New"},
		Amount:            decimal.RequireFromString("400.00000"),
		RecipientInn:      "7707083893",
		RecipientPhone:    "+79161234567",
	}
}

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(tx *domain.Transaction)
		wantErr bool
		errMsg  string
	}{
		{name: "valid transaction", mutate: func(tx *domain.Transaction) {}},
		{name: "twelve digit INN", mutate: func(tx *domain.Transaction) { tx.RecipientInn = "500100732259" }},
		{name: "phone starting with 8", mutate: func(tx *domain.Transaction) { tx.RecipientPhone = "89161234567" }},
		{name: "empty optional counterpart fields", mutate: func(tx *domain.Transaction) {
			tx.RecipientInn = ""
			tx.RecipientPhone = ""
		}},
		{name: "missing owner", mutate: func(tx *domain.Transaction) { tx.OwnerID = "" }, wantErr: true, errMsg: "owner is required"},
		{name: "missing operation time", mutate: func(tx *domain.Transaction) { tx.OperationDateTime = time.Time{} }, wantErr: true, errMsg: "operation date/time"},
		{name: "negative amount", mutate: func(tx *domain.Transaction) { tx.Amount = decimal.NewFromInt(-1) }, wantErr: true, errMsg: "must not be negative"},
		{name: "six fractional digits", mutate: func(tx *domain.Transaction) { tx.Amount = decimal.RequireFromString("1.000001") }, wantErr: true, errMsg: "fractional digits"},
		{name: "eleven integer digits", mutate: func(tx *domain.Transaction) { tx.Amount = decimal.RequireFromString("10000000000") }, wantErr: true, errMsg: "integer digits"},
		{name: "short INN", mutate: func(tx *domain.Transaction) { tx.RecipientInn = "123456789" }, wantErr: true, errMsg: "INN"},
		{name: "INN with letters", mutate: func(tx *domain.Transaction) { tx.RecipientInn = "77070838AB" }, wantErr: true, errMsg: "INN"},
		{name: "malformed phone", mutate: func(tx *domain.Transaction) { tx.RecipientPhone = "+19161234567" }, wantErr: true, errMsg: "phone"},
		{name: "comment too long", mutate: func(tx *domain.Transaction) { tx.Comment = strings.Repeat("x", 1001) }, wantErr: true, errMsg: "comment"},
		{name: "unknown type code", mutate: func(tx *domain.Transaction) { tx.Type.Code = "REFUND" }, wantErr: true, errMsg: "type code"},
		{name: "category of another type", mutate: func(tx *domain.Transaction) {
			tx.Category = &domain.CategoryRef{CategoryID: "cat_1", Title: "Salary", TypeCode: domain.TypeIncome}
		}, wantErr: true, errMsg: "category"},
		{name: "category of the same type", mutate: func(tx *domain.Transaction) {
			tx.Category = &domain.CategoryRef{CategoryID: "cat_2", Title: "Food", TypeCode: domain.TypeExpense}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validTransaction()
			tt.mutate(&tx)
			err := tx.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransaction_EditableAndDeletable(t *testing.T) {
	tests := []struct {
		status    domain.StatusCode
		editable  bool
		deletable bool
	}{
		{domain.StatusNew, true, true},
		{domain.StatusConfirmed, false, false},
		{domain.StatusProcessing, false, false},
		{domain.StatusCancelled, false, false},
		{domain.StatusCompleted, false, false},
		{domain.StatusReturned, false, false},
		{domain.StatusDeleted, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			tx := validTransaction()
			tx.Status.Code = tt.status
			assert.Equal(t, tt.editable, tx.IsEditable())
			assert.Equal(t, tt.deletable, tx.IsDeletable())
		})
	}
}

func TestParseCodes(t *testing.T) {
	code, err := domain.ParseTypeCode("income")
	assert.NoError(t, err)
	assert.Equal(t, domain.TypeIncome, code)
	assert.False(t, code.IsOutflow())
	assert.True(t, domain.TypeTransfer.IsOutflow())
	assert.True(t, domain.TypeExpense.IsOutflow())
	assert.False(t, domain.TypeCode("income").IsOutflow(), "unparsed codes are not outflows")
	assert.False(t, domain.StatusCode("").AllowsDelete())

	_, err = domain.ParseTypeCode("REFUND")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	status, err := domain.ParseStatusCode(" deleted ")
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusDeleted, status)

	_, err = domain.ParseStatusCode("ARCHIVED")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = domain.ParsePersonTypeCode("company")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCategory_Validate(t *testing.T) {
	budget := decimal.RequireFromString("1500.5")
	c := domain.Category{
		CategoryID: "cat_1",
		OwnerID:    "user_1",
		Title:      "Groceries",
		Type:       domain.TransactionType{Code: domain.TypeExpense},
		Budget:     &budget,
	}
	assert.NoError(t, c.Validate())
	assert.Equal(t, domain.TypeExpense, c.Ref().TypeCode)

	c.Title = "  "
	assert.ErrorIs(t, c.Validate(), apperrors.ErrValidation)

	negative := decimal.NewFromInt(-10)
	c.Title = "Groceries"
	c.Budget = &negative
	assert.ErrorIs(t, c.Validate(), apperrors.ErrValidation)
}

func TestBank_Validate(t *testing.T) {
	assert.NoError(t, domain.Bank{Title: "Sberbank", BIK: "044525225"}.Validate())
	assert.ErrorIs(t, domain.Bank{Title: "", BIK: "044525225"}.Validate(), apperrors.ErrValidation)
	assert.ErrorIs(t, domain.Bank{Title: "Sberbank", BIK: "04452522"}.Validate(), apperrors.ErrValidation)
}
