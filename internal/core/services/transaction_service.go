package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/core/filter"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/SscSPs/personal_finance_app/internal/utils/pagination"
	"github.com/google/uuid"
)

type transactionService struct {
	BaseService
	txnRepo      portsrepo.TransactionRepositoryFacade
	refRepo      portsrepo.ReferenceRepository
	bankRepo     portsrepo.BankReader
	categoryRepo portsrepo.CategoryReader
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithTransactionClock overrides the clock used for audit stamps.
func WithTransactionClock(clock func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.Clock = clock
	}
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	refRepo portsrepo.ReferenceRepository,
	bankRepo portsrepo.BankReader,
	categoryRepo portsrepo.CategoryReader,
	options ...TransactionServiceOption,
) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		txnRepo:      txnRepo,
		refRepo:      refRepo,
		bankRepo:     bankRepo,
		categoryRepo: categoryRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction records a new transaction in status NEW.
func (s *transactionService) CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if err := s.RequireOwner(ownerID); err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount(req.Amount); err != nil {
		return nil, err
	}

	personType, err := s.resolvePersonType(ctx, req.PersonType)
	if err != nil {
		return nil, err
	}
	txnType, err := s.resolveType(ctx, req.TransactionType)
	if err != nil {
		return nil, err
	}
	status, err := s.refRepo.FindStatusByCode(ctx, domain.StatusNew)
	if err != nil {
		s.LogError(ctx, err, "Initial transaction status is not configured", slog.String("status_code", string(domain.StatusNew)))
		return nil, fmt.Errorf("failed to resolve initial status: %w", err)
	}

	now := s.Now()
	txn := domain.Transaction{
		TransactionID:          uuid.NewString(),
		OwnerID:                ownerID,
		PersonType:             *personType,
		OperationDateTime:      req.OperationDateTime,
		Type:                   *txnType,
		Amount:                 domain.NormalizeAmount(req.Amount),
		Status:                 *status,
		SenderAccountNumber:    req.SenderAccountNumber,
		RecipientAccountNumber: req.RecipientAccountNumber,
		RecipientInn:           req.RecipientInn,
		RecipientPhone:         req.RecipientPhone,
		Comment:                req.Comment,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}
	if txn.SenderBank, err = s.resolveBank(ctx, req.SenderBankID); err != nil {
		return nil, err
	}
	if txn.RecipientBank, err = s.resolveBank(ctx, req.RecipientBankID); err != nil {
		return nil, err
	}
	if txn.Category, err = s.resolveCategory(ctx, ownerID, req.CategoryID); err != nil {
		return nil, err
	}

	if err := txn.Validate(); err != nil {
		return nil, err
	}
	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created successfully",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("owner_id", ownerID),
		slog.String("type", string(txn.Type.Code)))
	return &txn, nil
}

// GetTransactionByID returns a non-deleted transaction owned by ownerID.
// Foreign and deleted transactions are reported as not found.
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string, ownerID string) (*domain.Transaction, error) {
	if err := s.RequireOwner(ownerID); err != nil {
		return nil, err
	}
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load transaction", slog.String("transaction_id", transactionID))
		}
		return nil, fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}
	if txn.OwnerID != ownerID || txn.IsDeleted() {
		return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}
	return txn, nil
}

// ListTransactions returns one page of the owner's transactions matching params.
func (s *transactionService) ListTransactions(ctx context.Context, ownerID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	f, err := filter.Compose(ownerID, params.Filter)
	if err != nil {
		return nil, err
	}

	ordering := params.Sort.OrderBy()
	offset := 0
	if params.NextToken != nil && *params.NextToken != "" {
		offset, err = pagination.DecodeOffsetToken(*params.NextToken, ordering)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
	}

	txns, total, err := s.txnRepo.QueryTransactions(ctx, f, params.Sort, &filter.Page{Limit: params.Limit, Offset: offset})
	if err != nil {
		s.LogError(ctx, err, "Failed to query transactions", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	s.LogDebug(ctx, "Transactions listed",
		slog.String("owner_id", ownerID),
		slog.Int("count", len(txns)),
		slog.Int64("total", total))
	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		Total:        total,
		NextToken:    pagination.NextOffsetToken(offset, params.Limit, total, ordering),
	}, nil
}

// UpdateTransaction applies req to a transaction that is still NEW.
func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, ownerID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.GetTransactionByID(ctx, transactionID, ownerID)
	if err != nil {
		return nil, err
	}
	if !txn.IsEditable() {
		return nil, fmt.Errorf("%w: transaction in status %s cannot be edited", apperrors.ErrForbidden, txn.Status.Code)
	}
	expectedStatusID := txn.Status.ID

	if req.PersonType != nil {
		pt, err := s.resolvePersonType(ctx, *req.PersonType)
		if err != nil {
			return nil, err
		}
		txn.PersonType = *pt
	}
	if req.OperationDateTime != nil {
		txn.OperationDateTime = *req.OperationDateTime
	}
	if req.TransactionType != nil {
		tt, err := s.resolveType(ctx, *req.TransactionType)
		if err != nil {
			return nil, err
		}
		txn.Type = *tt
	}
	if req.ClearCategory {
		txn.Category = nil
	} else if req.CategoryID != nil {
		if txn.Category, err = s.resolveCategory(ctx, ownerID, req.CategoryID); err != nil {
			return nil, err
		}
	}
	if req.Amount != nil {
		if err := domain.ValidateAmount(*req.Amount); err != nil {
			return nil, err
		}
		txn.Amount = domain.NormalizeAmount(*req.Amount)
	}
	if req.StatusCode != nil {
		code, err := domain.ParseStatusCode(*req.StatusCode)
		if err != nil {
			return nil, err
		}
		if code == domain.StatusDeleted {
			return nil, fmt.Errorf("%w: use delete to remove a transaction", apperrors.ErrValidation)
		}
		status, err := s.refRepo.FindStatusByCode(ctx, code)
		if err != nil {
			s.LogError(ctx, err, "Transaction status is not configured", slog.String("status_code", string(code)))
			return nil, fmt.Errorf("failed to resolve status: %w", err)
		}
		txn.Status = *status
	}
	if req.SenderBankID != nil {
		if txn.SenderBank, err = s.resolveBank(ctx, req.SenderBankID); err != nil {
			return nil, err
		}
	}
	if req.RecipientBankID != nil {
		if txn.RecipientBank, err = s.resolveBank(ctx, req.RecipientBankID); err != nil {
			return nil, err
		}
	}
	if req.SenderAccountNumber != nil {
		txn.SenderAccountNumber = *req.SenderAccountNumber
	}
	if req.RecipientAccountNumber != nil {
		txn.RecipientAccountNumber = *req.RecipientAccountNumber
	}
	if req.RecipientInn != nil {
		txn.RecipientInn = *req.RecipientInn
	}
	if req.RecipientPhone != nil {
		txn.RecipientPhone = *req.RecipientPhone
	}
	if req.Comment != nil {
		txn.Comment = *req.Comment
	}

	txn.LastUpdatedAt = s.Now()
	txn.LastUpdatedBy = ownerID
	if err := txn.Validate(); err != nil {
		return nil, err
	}
	if err := s.txnRepo.UpdateTransaction(ctx, *txn, expectedStatusID); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction updated successfully",
		slog.String("transaction_id", transactionID),
		slog.String("owner_id", ownerID))
	return txn, nil
}

// DeleteTransaction soft-deletes a deletable transaction.
func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string, ownerID string) error {
	txn, err := s.GetTransactionByID(ctx, transactionID, ownerID)
	if err != nil {
		return err
	}
	if !txn.IsDeletable() {
		return fmt.Errorf("%w: transaction in status %s cannot be deleted", apperrors.ErrForbidden, txn.Status.Code)
	}
	expectedStatusID := txn.Status.ID
	deleted, err := s.refRepo.FindStatusByCode(ctx, domain.StatusDeleted)
	if err != nil {
		s.LogError(ctx, err, "Deleted status is not configured", slog.String("status_code", string(domain.StatusDeleted)))
		return fmt.Errorf("failed to resolve deleted status: %w", err)
	}

	txn.Status = *deleted
	txn.LastUpdatedAt = s.Now()
	txn.LastUpdatedBy = ownerID
	if err := s.txnRepo.UpdateTransaction(ctx, *txn, expectedStatusID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction deleted successfully",
		slog.String("transaction_id", transactionID),
		slog.String("owner_id", ownerID))
	return nil
}

func (s *transactionService) resolvePersonType(ctx context.Context, raw string) (*domain.PersonType, error) {
	code, err := domain.ParsePersonTypeCode(raw)
	if err != nil {
		return nil, err
	}
	pt, err := s.refRepo.FindPersonTypeByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve person type %s: %w", code, err)
	}
	return pt, nil
}

func (s *transactionService) resolveType(ctx context.Context, raw string) (*domain.TransactionType, error) {
	code, err := domain.ParseTypeCode(raw)
	if err != nil {
		return nil, err
	}
	tt, err := s.refRepo.FindTypeByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve transaction type %s: %w", code, err)
	}
	return tt, nil
}

// resolveBank returns nil for an absent or empty id.
func (s *transactionService) resolveBank(ctx context.Context, bankID *string) (*domain.Bank, error) {
	if bankID == nil || *bankID == "" {
		return nil, nil
	}
	bank, err := s.bankRepo.FindBankByID(ctx, *bankID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve bank %s: %w", *bankID, err)
	}
	return bank, nil
}

// resolveCategory returns nil for an absent or empty id. Categories of other
// owners are reported as not found.
func (s *transactionService) resolveCategory(ctx context.Context, ownerID string, categoryID *string) (*domain.CategoryRef, error) {
	if categoryID == nil || *categoryID == "" {
		return nil, nil
	}
	category, err := s.categoryRepo.FindCategoryByID(ctx, *categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve category %s: %w", *categoryID, err)
	}
	if category.OwnerID != ownerID {
		return nil, fmt.Errorf("category %s: %w", *categoryID, apperrors.ErrNotFound)
	}
	return category.Ref(), nil
}
