package dto

import (
	"time"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Title           string           `json:"title" binding:"required,max=255" example:"Groceries"`
	TransactionType string           `json:"transactionType" binding:"required,oneof=INCOME EXPENSE TRANSFER" example:"EXPENSE"`
	Budget          *decimal.Decimal `json:"budget,omitempty" swaggertype:"string"`
}

// UpdateCategoryRequest defines the fields of a category that may change.
type UpdateCategoryRequest struct {
	Title  *string          `json:"title,omitempty" binding:"omitempty,max=255"`
	Budget *decimal.Decimal `json:"budget,omitempty" swaggertype:"string"`
}

// ListCategoriesQuery binds the optional type filter of the category listing.
type ListCategoriesQuery struct {
	TypeCode string `form:"typeCode" binding:"omitempty,oneof=INCOME EXPENSE TRANSFER"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID    string            `json:"categoryID"`
	Title         string            `json:"title"`
	Type          ReferenceResponse `json:"type"`
	Budget        *string           `json:"budget,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
	LastUpdatedAt time.Time         `json:"lastUpdatedAt"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	resp := CategoryResponse{
		CategoryID:    c.CategoryID,
		Title:         c.Title,
		Type:          ReferenceResponse{ID: c.Type.ID, Code: string(c.Type.Code), Title: c.Type.Title},
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
	if c.Budget != nil {
		b := c.Budget.StringFixed(domain.AmountScale)
		resp.Budget = &b
	}
	return resp
}

// ToListCategoryResponse converts a slice of domain.Category to a slice of CategoryResponse DTOs
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i := range categories {
		res[i] = ToCategoryResponse(&categories[i])
	}
	return res
}
