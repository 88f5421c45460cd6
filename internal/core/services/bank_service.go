package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/google/uuid"
)

type bankService struct {
	BaseService
	bankRepo portsrepo.BankRepositoryFacade
}

// NewBankService creates a new bank service.
func NewBankService(bankRepo portsrepo.BankRepositoryFacade) portssvc.BankSvcFacade {
	return &bankService{bankRepo: bankRepo}
}

var _ portssvc.BankSvcFacade = (*bankService)(nil)

func (s *bankService) CreateBank(ctx context.Context, req dto.CreateBankRequest) (*domain.Bank, error) {
	bank := domain.Bank{
		BankID:    uuid.NewString(),
		Title:     strings.TrimSpace(req.Title),
		BIK:       strings.TrimSpace(req.BIK),
		CreatedAt: s.Now(),
	}
	if err := bank.Validate(); err != nil {
		return nil, err
	}
	if err := s.bankRepo.SaveBank(ctx, bank); err != nil {
		s.LogError(ctx, err, "Failed to save bank", slog.String("bik", bank.BIK))
		return nil, fmt.Errorf("failed to create bank: %w", err)
	}
	s.LogInfo(ctx, "Bank created successfully", slog.String("bank_id", bank.BankID))
	return &bank, nil
}

func (s *bankService) GetBankByID(ctx context.Context, bankID string) (*domain.Bank, error) {
	bank, err := s.bankRepo.FindBankByID(ctx, bankID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bank %s: %w", bankID, err)
	}
	return bank, nil
}

func (s *bankService) ListBanks(ctx context.Context) ([]domain.Bank, error) {
	banks, err := s.bankRepo.ListBanks(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list banks")
		return nil, fmt.Errorf("failed to list banks: %w", err)
	}
	if banks == nil {
		return []domain.Bank{}, nil
	}
	return banks, nil
}

func (s *bankService) UpdateBank(ctx context.Context, bankID string, req dto.UpdateBankRequest) (*domain.Bank, error) {
	bank, err := s.GetBankByID(ctx, bankID)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		bank.Title = strings.TrimSpace(*req.Title)
	}
	if req.BIK != nil {
		bank.BIK = strings.TrimSpace(*req.BIK)
	}
	if err := bank.Validate(); err != nil {
		return nil, err
	}
	if err := s.bankRepo.UpdateBank(ctx, *bank); err != nil {
		s.LogError(ctx, err, "Failed to update bank", slog.String("bank_id", bankID))
		return nil, fmt.Errorf("failed to update bank: %w", err)
	}
	return bank, nil
}

// DeleteBank fails with ErrForbidden while transactions still reference the bank.
func (s *bankService) DeleteBank(ctx context.Context, bankID string) error {
	if _, err := s.GetBankByID(ctx, bankID); err != nil {
		return err
	}
	if err := s.bankRepo.DeleteBank(ctx, bankID); err != nil {
		return fmt.Errorf("failed to delete bank: %w", err)
	}
	s.LogInfo(ctx, "Bank deleted successfully", slog.String("bank_id", bankID))
	return nil
}
