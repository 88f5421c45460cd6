package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
)

type referenceService struct {
	BaseService
	refRepo portsrepo.ReferenceRepository
}

// NewReferenceService creates a new reference data service.
func NewReferenceService(refRepo portsrepo.ReferenceRepository) portssvc.ReferenceService {
	return &referenceService{refRepo: refRepo}
}

func (s *referenceService) GetReferenceData(ctx context.Context) (*domain.ReferenceData, error) {
	data, err := s.refRepo.ListReferenceData(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list reference data")
		return nil, fmt.Errorf("failed to list reference data: %w", err)
	}
	return data, nil
}
