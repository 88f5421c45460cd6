package services

import (
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, renderer portssvc.DocumentRenderer) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Reference = NewReferenceService(repos.ReferenceRepo)
	container.Bank = NewBankService(repos.BankRepo)
	container.Category = NewCategoryService(repos.CategoryRepo, repos.ReferenceRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.ReferenceRepo, repos.BankRepo, repos.CategoryRepo)

	// Reports consume the aggregation engine rather than the store directly
	container.Aggregation = NewAggregationService(repos.AggregationRepo)
	container.Report = NewReportService(repos.TransactionRepo, container.Aggregation, renderer)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CategorySvcFacade = (*categoryService)(nil)
	_ portssvc.BankSvcFacade     = (*bankService)(nil)
	_ portssvc.ReferenceService  = (*referenceService)(nil)
)
