package dto

import (
	"time"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
)

// CreateBankRequest defines the data needed to register a bank.
type CreateBankRequest struct {
	Title string `json:"title" binding:"required,max=200" example:"Sberbank"`
	BIK   string `json:"bik" binding:"required,numeric,len=9" example:"044525225"`
}

// UpdateBankRequest defines the fields of a bank that may change.
type UpdateBankRequest struct {
	Title *string `json:"title,omitempty" binding:"omitempty,max=200"`
	BIK   *string `json:"bik,omitempty" binding:"omitempty,numeric,len=9"`
}

// BankResponse defines the data returned for a bank.
type BankResponse struct {
	BankID    string    `json:"bankID"`
	Title     string    `json:"title"`
	BIK       string    `json:"bik"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToBankResponse converts a domain.Bank to BankResponse DTO
func ToBankResponse(b *domain.Bank) BankResponse {
	return BankResponse{BankID: b.BankID, Title: b.Title, BIK: b.BIK, CreatedAt: b.CreatedAt}
}

// ToListBankResponse converts a slice of domain.Bank to a slice of BankResponse DTOs
func ToListBankResponse(banks []domain.Bank) []BankResponse {
	res := make([]BankResponse, len(banks))
	for i := range banks {
		res[i] = ToBankResponse(&banks[i])
	}
	return res
}

// ReferenceDataResponse lists every seeded lookup value.
type ReferenceDataResponse struct {
	Statuses    []ReferenceResponse `json:"statuses"`
	Types       []ReferenceResponse `json:"types"`
	PersonTypes []ReferenceResponse `json:"personTypes"`
}

// ToReferenceDataResponse converts domain.ReferenceData to its response DTO.
func ToReferenceDataResponse(r *domain.ReferenceData) ReferenceDataResponse {
	resp := ReferenceDataResponse{
		Statuses:    make([]ReferenceResponse, 0, len(r.Statuses)),
		Types:       make([]ReferenceResponse, 0, len(r.Types)),
		PersonTypes: make([]ReferenceResponse, 0, len(r.PersonTypes)),
	}
	for _, s := range r.Statuses {
		resp.Statuses = append(resp.Statuses, ReferenceResponse{ID: s.ID, Code: string(s.Code), Title: s.Title})
	}
	for _, t := range r.Types {
		resp.Types = append(resp.Types, ReferenceResponse{ID: t.ID, Code: string(t.Code), Title: t.Title})
	}
	for _, p := range r.PersonTypes {
		resp.PersonTypes = append(resp.PersonTypes, ReferenceResponse{ID: p.ID, Code: string(p.Code), Title: p.Title})
	}
	return resp
}
