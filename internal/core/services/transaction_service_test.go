package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/core/filter"
	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/core/services"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/SscSPs/personal_finance_app/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var (
	statusNew       = &domain.TransactionStatus{ID: "st_new", Code: domain.StatusNew, Title: "New"}
	statusCompleted = &domain.TransactionStatus{ID: "st_completed", Code: domain.StatusCompleted, Title: "Completed"}
	statusDeleted   = &domain.TransactionStatus{ID: "st_deleted", Code: domain.StatusDeleted, Title: "Deleted"}
	typeIncome      = &domain.TransactionType{ID: "tt_income", Code: domain.TypeIncome, Title: "Income"}
	typeExpense     = &domain.TransactionType{ID: "tt_expense", Code: domain.TypeExpense, Title: "Expense"}
	personIndiv     = &domain.PersonType{ID: "pt_ind", Code: domain.PersonIndividual, Title: "Individual"}
)

type TransactionServiceTestSuite struct {
	suite.Suite
	txnRepo      *MockTransactionRepository
	refRepo      *MockReferenceRepository
	bankRepo     *MockBankRepository
	categoryRepo *MockCategoryRepository
	service      portssvc.TransactionSvcFacade
	ownerID      string
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.txnRepo = new(MockTransactionRepository)
	suite.refRepo = new(MockReferenceRepository)
	suite.bankRepo = new(MockBankRepository)
	suite.categoryRepo = new(MockCategoryRepository)
	suite.service = services.NewTransactionService(suite.txnRepo, suite.refRepo, suite.bankRepo, suite.categoryRepo,
		services.WithTransactionClock(func() time.Time { return fixedNow }))
	suite.ownerID = uuid.NewString()
}

func (suite *TransactionServiceTestSuite) existing(status *domain.TransactionStatus) *domain.Transaction {
	return &domain.Transaction{
		TransactionID:     uuid.NewString(),
		OwnerID:           suite.ownerID,
		PersonType:        *personIndiv,
		OperationDateTime: fixedNow.Add(-time.Hour),
		Type:              *typeExpense,
		Amount:            decimal.RequireFromString("100.00000"),
		Status:            *status,
	}
}

func (suite *TransactionServiceTestSuite) createRequest() dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		PersonType:        "INDIVIDUAL",
		OperationDateTime: fixedNow.Add(-time.Hour),
		TransactionType:   "EXPENSE",
		Amount:            decimal.RequireFromString("1500.5"),
		RecipientInn:      "7707083893",
		Comment:           "groceries",
	}
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	bankID := "bank_1"
	categoryID := "cat_1"
	req := suite.createRequest()
	req.SenderBankID = &bankID
	req.CategoryID = &categoryID

	suite.refRepo.On("FindPersonTypeByCode", ctx, domain.PersonIndividual).Return(personIndiv, nil).Once()
	suite.refRepo.On("FindTypeByCode", ctx, domain.TypeExpense).Return(typeExpense, nil).Once()
	suite.refRepo.On("FindStatusByCode", ctx, domain.StatusNew).Return(statusNew, nil).Once()
	suite.bankRepo.On("FindBankByID", ctx, bankID).Return(&domain.Bank{BankID: bankID, Title: "Sberbank", BIK: "044525225"}, nil).Once()
	suite.categoryRepo.On("FindCategoryByID", ctx, categoryID).
		Return(&domain.Category{CategoryID: categoryID, OwnerID: suite.ownerID, Title: "Food", Type: *typeExpense}, nil).Once()
	suite.txnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.OwnerID == suite.ownerID && t.Status.Code == domain.StatusNew && t.Amount.StringFixed(5) == "1500.50000" &&
			t.Category != nil && t.Category.Title == "Food" && t.SenderBank != nil && t.CreatedAt.Equal(fixedNow)
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.ownerID, req)

	suite.Require().NoError(err)
	suite.NotEmpty(txn.TransactionID)
	suite.True(txn.IsEditable())
	suite.txnRepo.AssertExpectations(suite.T())
	suite.categoryRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_CategoryTypeMismatch() {
	ctx := context.Background()
	categoryID := "cat_income"
	req := suite.createRequest()
	req.CategoryID = &categoryID

	suite.refRepo.On("FindPersonTypeByCode", ctx, domain.PersonIndividual).Return(personIndiv, nil).Once()
	suite.refRepo.On("FindTypeByCode", ctx, domain.TypeExpense).Return(typeExpense, nil).Once()
	suite.refRepo.On("FindStatusByCode", ctx, domain.StatusNew).Return(statusNew, nil).Once()
	suite.categoryRepo.On("FindCategoryByID", ctx, categoryID).
		Return(&domain.Category{CategoryID: categoryID, OwnerID: suite.ownerID, Title: "Salary", Type: *typeIncome}, nil).Once()

	_, err := suite.service.CreateTransaction(ctx, suite.ownerID, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.txnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ForeignCategoryNotFound() {
	ctx := context.Background()
	categoryID := "cat_other"
	req := suite.createRequest()
	req.CategoryID = &categoryID

	suite.refRepo.On("FindPersonTypeByCode", ctx, domain.PersonIndividual).Return(personIndiv, nil).Once()
	suite.refRepo.On("FindTypeByCode", ctx, domain.TypeExpense).Return(typeExpense, nil).Once()
	suite.refRepo.On("FindStatusByCode", ctx, domain.StatusNew).Return(statusNew, nil).Once()
	suite.categoryRepo.On("FindCategoryByID", ctx, categoryID).
		Return(&domain.Category{CategoryID: categoryID, OwnerID: "someone_else", Title: "Food", Type: *typeExpense}, nil).Once()

	_, err := suite.service.CreateTransaction(ctx, suite.ownerID, req)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_InvalidAmount() {
	req := suite.createRequest()
	req.Amount = decimal.RequireFromString("1.123456")

	_, err := suite.service.CreateTransaction(context.Background(), suite.ownerID, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_StatusNotSeeded() {
	ctx := context.Background()
	suite.refRepo.On("FindPersonTypeByCode", ctx, domain.PersonIndividual).Return(personIndiv, nil).Once()
	suite.refRepo.On("FindTypeByCode", ctx, domain.TypeExpense).Return(typeExpense, nil).Once()
	suite.refRepo.On("FindStatusByCode", ctx, domain.StatusNew).Return(nil, apperrors.ErrConfigurationMissing).Once()

	_, err := suite.service.CreateTransaction(ctx, suite.ownerID, suite.createRequest())

	suite.ErrorIs(err, apperrors.ErrConfigurationMissing)
}

func (suite *TransactionServiceTestSuite) TestGetTransactionByID_HidesForeignAndDeleted() {
	ctx := context.Background()
	foreign := suite.existing(statusNew)
	foreign.OwnerID = "someone_else"
	deleted := suite.existing(statusDeleted)

	suite.txnRepo.On("FindTransactionByID", ctx, foreign.TransactionID).Return(foreign, nil).Once()
	suite.txnRepo.On("FindTransactionByID", ctx, deleted.TransactionID).Return(deleted, nil).Once()

	_, err := suite.service.GetTransactionByID(ctx, foreign.TransactionID, suite.ownerID)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.service.GetTransactionByID(ctx, deleted.TransactionID, suite.ownerID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_ComposesOwnerFilterAndPages() {
	ctx := context.Background()
	inn := "7707083893"
	params := dto.ListTransactionsParams{
		Filter: filter.Params{Inn: &inn},
		Sort:   filter.DefaultSort(),
		Limit:  2,
	}
	page := []domain.Transaction{*suite.existing(statusNew), *suite.existing(statusCompleted)}

	suite.txnRepo.On("QueryTransactions", ctx, mock.MatchedBy(func(f filter.Filter) bool {
		return f.Has(filter.KindOwnership) && f.Has(filter.KindNotDeleted) && f.Has(filter.KindInn) && len(f.Predicates()) == 3
	}), params.Sort, &filter.Page{Limit: 2, Offset: 0}).Return(page, int64(5), nil).Once()

	resp, err := suite.service.ListTransactions(ctx, suite.ownerID, params)

	suite.Require().NoError(err)
	suite.Len(resp.Transactions, 2)
	suite.Equal(int64(5), resp.Total)
	suite.Require().NotNil(resp.NextToken)

	offset, err := pagination.DecodeOffsetToken(*resp.NextToken, params.Sort.OrderBy())
	suite.Require().NoError(err)
	suite.Equal(2, offset)
	suite.txnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_TokenForOtherOrderRejected() {
	token := pagination.EncodeOffsetToken(20, filter.Sort{Field: filter.SortByAmount}.OrderBy())
	params := dto.ListTransactionsParams{Sort: filter.DefaultSort(), Limit: 20, NextToken: &token}

	_, err := suite.service.ListTransactions(context.Background(), suite.ownerID, params)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_InvalidRange() {
	min := decimal.RequireFromString("10")
	max := decimal.RequireFromString("1")
	params := dto.ListTransactionsParams{Filter: filter.Params{AmountMin: &min, AmountMax: &max}, Sort: filter.DefaultSort(), Limit: 20}

	_, err := suite.service.ListTransactions(context.Background(), suite.ownerID, params)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_Success() {
	ctx := context.Background()
	txn := suite.existing(statusNew)
	comment := "updated"
	amount := decimal.RequireFromString("42")
	status := "CONFIRMED"
	confirmed := &domain.TransactionStatus{ID: "st_confirmed", Code: domain.StatusConfirmed, Title: "Confirmed"}

	suite.txnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()
	suite.refRepo.On("FindStatusByCode", ctx, domain.StatusConfirmed).Return(confirmed, nil).Once()
	suite.txnRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Comment == comment && t.Amount.StringFixed(5) == "42.00000" && t.Status.Code == domain.StatusConfirmed && t.LastUpdatedAt.Equal(fixedNow)
	}), statusNew.ID).Return(nil).Once()

	updated, err := suite.service.UpdateTransaction(ctx, txn.TransactionID, suite.ownerID, dto.UpdateTransactionRequest{
		Comment:    &comment,
		Amount:     &amount,
		StatusCode: &status,
	})

	suite.Require().NoError(err)
	suite.False(updated.IsEditable())
	suite.txnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_NotEditable() {
	ctx := context.Background()
	txn := suite.existing(statusCompleted)
	comment := "late edit"
	suite.txnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()

	_, err := suite.service.UpdateTransaction(ctx, txn.TransactionID, suite.ownerID, dto.UpdateTransactionRequest{Comment: &comment})

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.NotErrorIs(err, apperrors.ErrValidation)
	suite.txnRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_DeletedMeanwhile() {
	ctx := context.Background()
	txn := suite.existing(statusNew)
	comment := "stale edit"
	suite.txnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()
	suite.txnRepo.On("UpdateTransaction", ctx, mock.Anything, statusNew.ID).
		Return(apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateTransaction(ctx, txn.TransactionID, suite.ownerID, dto.UpdateTransactionRequest{Comment: &comment})

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.txnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_CannotSetDeleted() {
	ctx := context.Background()
	txn := suite.existing(statusNew)
	status := "DELETED"
	suite.txnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()

	_, err := suite.service.UpdateTransaction(ctx, txn.TransactionID, suite.ownerID, dto.UpdateTransactionRequest{StatusCode: &status})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_SoftDeletes() {
	ctx := context.Background()
	txn := suite.existing(statusNew)
	suite.txnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()
	suite.refRepo.On("FindStatusByCode", ctx, domain.StatusDeleted).Return(statusDeleted, nil).Once()
	suite.txnRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.TransactionID == txn.TransactionID && t.IsDeleted()
	}), statusNew.ID).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, txn.TransactionID, suite.ownerID)

	suite.Require().NoError(err)
	suite.txnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_DeletedStatusMissing() {
	ctx := context.Background()
	txn := suite.existing(statusNew)
	suite.txnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()
	suite.refRepo.On("FindStatusByCode", ctx, domain.StatusDeleted).Return(nil, apperrors.ErrConfigurationMissing).Once()

	err := suite.service.DeleteTransaction(ctx, txn.TransactionID, suite.ownerID)

	suite.ErrorIs(err, apperrors.ErrConfigurationMissing)
	suite.txnRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_NotDeletable() {
	ctx := context.Background()
	txn := suite.existing(statusCompleted)
	suite.txnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()

	err := suite.service.DeleteTransaction(ctx, txn.TransactionID, suite.ownerID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.NotErrorIs(err, apperrors.ErrValidation)
	suite.txnRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestGetTransactionByID_RepoError() {
	ctx := context.Background()
	suite.txnRepo.On("FindTransactionByID", ctx, "missing").Return(nil, assert.AnError).Once()

	_, err := suite.service.GetTransactionByID(ctx, "missing", suite.ownerID)

	suite.ErrorIs(err, assert.AnError)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
