package memory

import (
	"time"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
)

// Seeded identifiers. The initial SQL migration inserts the same rows.
const (
	PersonTypeIndividualID = "7f0c7a52-1b8e-4d6a-9f31-0a6d2f6b1c01"
	PersonTypeLegalID      = "7f0c7a52-1b8e-4d6a-9f31-0a6d2f6b1c02"

	TypeIncomeID   = "3a4e1c9d-5b7f-4e2a-8c61-2d9b0e7f4a01"
	TypeExpenseID  = "3a4e1c9d-5b7f-4e2a-8c61-2d9b0e7f4a02"
	TypeTransferID = "3a4e1c9d-5b7f-4e2a-8c61-2d9b0e7f4a03"

	StatusNewID        = "c2d8f6a1-9e3b-4b7c-a5d0-6f1e2b3c4d01"
	StatusConfirmedID  = "c2d8f6a1-9e3b-4b7c-a5d0-6f1e2b3c4d02"
	StatusProcessingID = "c2d8f6a1-9e3b-4b7c-a5d0-6f1e2b3c4d03"
	StatusCancelledID  = "c2d8f6a1-9e3b-4b7c-a5d0-6f1e2b3c4d04"
	StatusCompletedID  = "c2d8f6a1-9e3b-4b7c-a5d0-6f1e2b3c4d05"
	StatusDeletedID    = "c2d8f6a1-9e3b-4b7c-a5d0-6f1e2b3c4d06"
	StatusReturnedID   = "c2d8f6a1-9e3b-4b7c-a5d0-6f1e2b3c4d07"
)

// SeedReferenceData returns the reference rows every store starts with.
func SeedReferenceData() domain.ReferenceData {
	return domain.ReferenceData{
		PersonTypes: []domain.PersonType{
			{ID: PersonTypeIndividualID, Code: domain.PersonIndividual, Title: "Individual"},
			{ID: PersonTypeLegalID, Code: domain.PersonLegal, Title: "Legal entity"},
		},
		Types: []domain.TransactionType{
			{ID: TypeIncomeID, Code: domain.TypeIncome, Title: "Income"},
			{ID: TypeExpenseID, Code: domain.TypeExpense, Title: "Expense"},
			{ID: TypeTransferID, Code: domain.TypeTransfer, Title: "Transfer"},
		},
		Statuses: []domain.TransactionStatus{
			{ID: StatusNewID, Code: domain.StatusNew, Title: "New"},
			{ID: StatusConfirmedID, Code: domain.StatusConfirmed, Title: "Confirmed"},
			{ID: StatusProcessingID, Code: domain.StatusProcessing, Title: "Processing"},
			{ID: StatusCancelledID, Code: domain.StatusCancelled, Title: "Cancelled"},
			{ID: StatusCompletedID, Code: domain.StatusCompleted, Title: "Payment completed"},
			{ID: StatusDeletedID, Code: domain.StatusDeleted, Title: "Deleted"},
			{ID: StatusReturnedID, Code: domain.StatusReturned, Title: "Returned"},
		},
	}
}

// SeedBanks returns the banks every store starts with.
func SeedBanks(now time.Time) []domain.Bank {
	return []domain.Bank{
		{BankID: "b5e0a7c3-2f1d-4c8e-9b6a-1e2d3c4b5a01", Title: "Sberbank", BIK: "044525225", CreatedAt: now},
		{BankID: "b5e0a7c3-2f1d-4c8e-9b6a-1e2d3c4b5a02", Title: "VTB", BIK: "044525187", CreatedAt: now},
		{BankID: "b5e0a7c3-2f1d-4c8e-9b6a-1e2d3c4b5a03", Title: "Alfa-Bank", BIK: "044525593", CreatedAt: now},
		{BankID: "b5e0a7c3-2f1d-4c8e-9b6a-1e2d3c4b5a04", Title: "Tinkoff", BIK: "044525974", CreatedAt: now},
		{BankID: "b5e0a7c3-2f1d-4c8e-9b6a-1e2d3c4b5a05", Title: "Gazprombank", BIK: "044525823", CreatedAt: now},
	}
}
