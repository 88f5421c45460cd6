package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/google/uuid"
)

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
	refRepo      portsrepo.ReferenceRepository
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade, refRepo portsrepo.ReferenceRepository) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo, refRepo: refRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, ownerID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	if err := s.RequireOwner(ownerID); err != nil {
		return nil, err
	}
	code, err := domain.ParseTypeCode(req.TransactionType)
	if err != nil {
		return nil, err
	}
	txnType, err := s.refRepo.FindTypeByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve transaction type %s: %w", code, err)
	}

	now := s.Now()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		OwnerID:    ownerID,
		Title:      strings.TrimSpace(req.Title),
		Type:       *txnType,
		Budget:     req.Budget,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}
	if err := category.Validate(); err != nil {
		return nil, err
	}
	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	s.LogInfo(ctx, "Category created successfully",
		slog.String("category_id", category.CategoryID),
		slog.String("owner_id", ownerID))
	return &category, nil
}

// GetCategoryByID hides categories of other owners behind ErrNotFound.
func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string, ownerID string) (*domain.Category, error) {
	if err := s.RequireOwner(ownerID); err != nil {
		return nil, err
	}
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load category", slog.String("category_id", categoryID))
		}
		return nil, fmt.Errorf("failed to get category %s: %w", categoryID, err)
	}
	if category.OwnerID != ownerID {
		return nil, fmt.Errorf("category %s: %w", categoryID, apperrors.ErrNotFound)
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, ownerID string, typeCode *domain.TypeCode) ([]domain.Category, error) {
	if err := s.RequireOwner(ownerID); err != nil {
		return nil, err
	}
	if typeCode != nil {
		if _, err := domain.ParseTypeCode(string(*typeCode)); err != nil {
			return nil, err
		}
	}
	categories, err := s.categoryRepo.ListCategoriesByOwner(ctx, ownerID, typeCode)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, ownerID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.GetCategoryByID(ctx, categoryID, ownerID)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		category.Title = strings.TrimSpace(*req.Title)
	}
	if req.Budget != nil {
		category.Budget = req.Budget
	}
	category.LastUpdatedAt = s.Now()
	category.LastUpdatedBy = ownerID
	if err := category.Validate(); err != nil {
		return nil, err
	}
	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, categoryID string, ownerID string) error {
	if _, err := s.GetCategoryByID(ctx, categoryID, ownerID); err != nil {
		return err
	}
	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		s.LogError(ctx, err, "Failed to delete category", slog.String("category_id", categoryID))
		return fmt.Errorf("failed to delete category: %w", err)
	}
	s.LogInfo(ctx, "Category deleted successfully", slog.String("category_id", categoryID))
	return nil
}
