package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/core/services"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	categoryRepo *MockCategoryRepository
	refRepo      *MockReferenceRepository
	service      portssvc.CategorySvcFacade
	ownerID      string
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.categoryRepo = new(MockCategoryRepository)
	suite.refRepo = new(MockReferenceRepository)
	suite.service = services.NewCategoryService(suite.categoryRepo, suite.refRepo)
	suite.ownerID = uuid.NewString()
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_Success() {
	ctx := context.Background()
	budget := decimal.RequireFromString("5000")
	req := dto.CreateCategoryRequest{Title: "  Groceries ", TransactionType: "expense", Budget: &budget}

	suite.refRepo.On("FindTypeByCode", ctx, domain.TypeExpense).Return(typeExpense, nil).Once()
	suite.categoryRepo.On("SaveCategory", ctx, mock.MatchedBy(func(c domain.Category) bool {
		return c.Title == "Groceries" && c.OwnerID == suite.ownerID && c.Type.Code == domain.TypeExpense && c.CreatedBy == suite.ownerID
	})).Return(nil).Once()

	category, err := suite.service.CreateCategory(ctx, suite.ownerID, req)

	suite.Require().NoError(err)
	suite.NotEmpty(category.CategoryID)
	suite.categoryRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_UnknownType() {
	_, err := suite.service.CreateCategory(context.Background(), suite.ownerID, dto.CreateCategoryRequest{Title: "X", TransactionType: "GIFT"})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CategoryServiceTestSuite) TestGetCategoryByID_ForeignOwner() {
	ctx := context.Background()
	suite.categoryRepo.On("FindCategoryByID", ctx, "cat_1").
		Return(&domain.Category{CategoryID: "cat_1", OwnerID: "someone_else"}, nil).Once()

	_, err := suite.service.GetCategoryByID(ctx, "cat_1", suite.ownerID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CategoryServiceTestSuite) TestListCategories_EmptyIsNotNil() {
	ctx := context.Background()
	code := domain.TypeIncome
	suite.categoryRepo.On("ListCategoriesByOwner", ctx, suite.ownerID, &code).Return(nil, nil).Once()

	categories, err := suite.service.ListCategories(ctx, suite.ownerID, &code)

	suite.Require().NoError(err)
	suite.NotNil(categories)
	suite.Empty(categories)
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_Success() {
	ctx := context.Background()
	title := "Food"
	existing := &domain.Category{CategoryID: "cat_1", OwnerID: suite.ownerID, Title: "Groceries", Type: *typeExpense}
	suite.categoryRepo.On("FindCategoryByID", ctx, "cat_1").Return(existing, nil).Once()
	suite.categoryRepo.On("UpdateCategory", ctx, mock.MatchedBy(func(c domain.Category) bool {
		return c.Title == title
	})).Return(nil).Once()

	category, err := suite.service.UpdateCategory(ctx, "cat_1", suite.ownerID, dto.UpdateCategoryRequest{Title: &title})

	suite.Require().NoError(err)
	suite.Equal(title, category.Title)
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_StillReferenced() {
	ctx := context.Background()
	suite.categoryRepo.On("FindCategoryByID", ctx, "cat_1").
		Return(&domain.Category{CategoryID: "cat_1", OwnerID: suite.ownerID, Title: "Food", Type: *typeExpense}, nil).Once()
	suite.categoryRepo.On("DeleteCategory", ctx, "cat_1").Return(apperrors.ErrForbidden).Once()

	err := suite.service.DeleteCategory(ctx, "cat_1", suite.ownerID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_RepoError() {
	ctx := context.Background()
	suite.categoryRepo.On("FindCategoryByID", ctx, "cat_1").Return(nil, assert.AnError).Once()

	err := suite.service.DeleteCategory(ctx, "cat_1", suite.ownerID)

	suite.ErrorIs(err, assert.AnError)
	suite.categoryRepo.AssertNotCalled(suite.T(), "DeleteCategory", mock.Anything, mock.Anything)
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}

type BankServiceTestSuite struct {
	suite.Suite
	bankRepo *MockBankRepository
	service  portssvc.BankSvcFacade
}

func (suite *BankServiceTestSuite) SetupTest() {
	suite.bankRepo = new(MockBankRepository)
	suite.service = services.NewBankService(suite.bankRepo)
}

func (suite *BankServiceTestSuite) TestCreateBank_Success() {
	ctx := context.Background()
	suite.bankRepo.On("SaveBank", ctx, mock.MatchedBy(func(b domain.Bank) bool {
		return b.Title == "Tinkoff" && b.BIK == "044525974" && b.BankID != ""
	})).Return(nil).Once()

	bank, err := suite.service.CreateBank(ctx, dto.CreateBankRequest{Title: "Tinkoff", BIK: "044525974"})

	suite.Require().NoError(err)
	suite.Equal("Tinkoff", bank.Title)
	suite.bankRepo.AssertExpectations(suite.T())
}

func (suite *BankServiceTestSuite) TestCreateBank_InvalidBIK() {
	_, err := suite.service.CreateBank(context.Background(), dto.CreateBankRequest{Title: "Bad", BIK: "12345"})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.bankRepo.AssertNotCalled(suite.T(), "SaveBank", mock.Anything, mock.Anything)
}

func (suite *BankServiceTestSuite) TestUpdateBank_NotFound() {
	ctx := context.Background()
	title := "Renamed"
	suite.bankRepo.On("FindBankByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateBank(ctx, "missing", dto.UpdateBankRequest{Title: &title})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BankServiceTestSuite) TestDeleteBank_Referenced() {
	ctx := context.Background()
	suite.bankRepo.On("FindBankByID", ctx, "bank_1").Return(&domain.Bank{BankID: "bank_1", Title: "Sberbank", BIK: "044525225"}, nil).Once()
	suite.bankRepo.On("DeleteBank", ctx, "bank_1").Return(apperrors.ErrForbidden).Once()

	err := suite.service.DeleteBank(ctx, "bank_1")

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func TestBankServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BankServiceTestSuite))
}
