package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/core/filter"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// Store keeps every entity in process memory. Filters are evaluated with
// filter.Filter.Matches and grouped rows follow the same ordering contract as
// the SQL store.
type Store struct {
	mu           sync.RWMutex
	ref          domain.ReferenceData
	banks        map[string]domain.Bank
	bankOrder    []string
	categories   map[string]domain.Category
	transactions map[string]domain.Transaction
}

// New returns a store seeded with the reference data and the default banks.
func New() *Store {
	s := &Store{
		ref:          SeedReferenceData(),
		banks:        make(map[string]domain.Bank),
		categories:   make(map[string]domain.Category),
		transactions: make(map[string]domain.Transaction),
	}
	for _, b := range SeedBanks(time.Now().UTC()) {
		s.banks[b.BankID] = b
		s.bankOrder = append(s.bankOrder, b.BankID)
	}
	return s
}

// NewWithReferenceData returns an empty store using ref instead of the seeds.
func NewWithReferenceData(ref domain.ReferenceData) *Store {
	return &Store{
		ref:          ref,
		banks:        make(map[string]domain.Bank),
		categories:   make(map[string]domain.Category),
		transactions: make(map[string]domain.Transaction),
	}
}

// Provider exposes the store through every repository port.
func (s *Store) Provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: s,
		AggregationRepo: s,
		ReferenceRepo:   s,
		BankRepo:        s,
		CategoryRepo:    s,
	}
}

var (
	_ portsrepo.TransactionRepositoryFacade = (*Store)(nil)
	_ portsrepo.AggregationRepository       = (*Store)(nil)
	_ portsrepo.ReferenceRepository         = (*Store)(nil)
	_ portsrepo.BankRepositoryFacade        = (*Store)(nil)
	_ portsrepo.CategoryRepositoryFacade    = (*Store)(nil)
)

// hydrate refreshes the bank and category snapshots of t. Callers hold the lock.
func (s *Store) hydrate(t domain.Transaction) domain.Transaction {
	if t.SenderBank != nil {
		if b, ok := s.banks[t.SenderBank.BankID]; ok {
			t.SenderBank = &b
		}
	}
	if t.RecipientBank != nil {
		if b, ok := s.banks[t.RecipientBank.BankID]; ok {
			t.RecipientBank = &b
		}
	}
	if t.Category != nil {
		if c, ok := s.categories[t.Category.CategoryID]; ok {
			t.Category = c.Ref()
		}
	}
	return t
}

// --- transactions ---

func (s *Store) FindTransactionByID(_ context.Context, transactionID string) (*domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.transactions[transactionID]
	if !ok {
		return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}
	t = s.hydrate(t)
	return &t, nil
}

func (s *Store) QueryTransactions(ctx context.Context, f filter.Filter, order filter.Sort, page *filter.Page) ([]domain.Transaction, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	s.mu.RLock()
	matched := make([]domain.Transaction, 0)
	for _, t := range s.transactions {
		t = s.hydrate(t)
		if f.Matches(t) {
			matched = append(matched, t)
		}
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool { return order.Less(matched[i], matched[j]) })
	total := int64(len(matched))
	if page == nil {
		return matched, total, nil
	}
	if page.Offset >= len(matched) {
		return []domain.Transaction{}, total, nil
	}
	matched = matched[page.Offset:]
	if page.Limit > 0 && page.Limit < len(matched) {
		matched = matched[:page.Limit]
	}
	return matched, total, nil
}

func (s *Store) SaveTransaction(_ context.Context, txn domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.transactions[txn.TransactionID]; exists {
		return fmt.Errorf("transaction %s: %w", txn.TransactionID, apperrors.ErrDuplicate)
	}
	s.transactions[txn.TransactionID] = txn
	return nil
}

func (s *Store) UpdateTransaction(_ context.Context, txn domain.Transaction, expectedStatusID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.transactions[txn.TransactionID]
	if !ok || current.IsDeleted() {
		return fmt.Errorf("transaction %s: %w", txn.TransactionID, apperrors.ErrNotFound)
	}
	if current.Status.ID != expectedStatusID {
		return fmt.Errorf("%w: transaction %s changed to status %s", apperrors.ErrForbidden, txn.TransactionID, current.Status.Code)
	}
	txn.OwnerID = current.OwnerID
	txn.CreatedAt, txn.CreatedBy = current.CreatedAt, current.CreatedBy
	s.transactions[txn.TransactionID] = txn
	return nil
}

// --- aggregation ---

// matching returns the hydrated transactions matching c ordered by operation
// time ascending, then transaction id: the first-occurrence order of groups.
func (s *Store) matching(ctx context.Context, c domain.AggregateConstraints) ([]domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, _, err := s.QueryTransactions(ctx, filter.ForAggregation(c), filter.Sort{Field: filter.SortByOperationDateTime}, nil)
	return rows, err
}

func (s *Store) CountTransactions(ctx context.Context, c domain.AggregateConstraints) (int64, error) {
	rows, err := s.matching(ctx, c)
	if err != nil {
		return 0, err
	}
	return int64(len(rows)), nil
}

func (s *Store) SumAmount(ctx context.Context, c domain.AggregateConstraints) (decimal.Decimal, error) {
	rows, err := s.matching(ctx, c)
	if err != nil {
		return decimal.Zero, err
	}
	sum := decimal.Zero
	for _, t := range rows {
		sum = sum.Add(t.Amount)
	}
	return sum, nil
}

// groupKey is one grouped row keyed by entity id.
type groupKey struct {
	key   string
	label string
}

func groupOrder(dim domain.Dimension, rows []domain.Transaction) ([]groupKey, map[string][]domain.Transaction) {
	var order []groupKey
	members := make(map[string][]domain.Transaction)
	for _, t := range rows {
		key, label, ok := dim.Label(t)
		if !ok {
			continue
		}
		if _, seen := members[key]; !seen {
			order = append(order, groupKey{key: key, label: label})
		}
		members[key] = append(members[key], t)
	}
	return order, members
}

func (s *Store) CountByDimension(ctx context.Context, dim domain.Dimension, c domain.AggregateConstraints) ([]domain.LabeledCount, error) {
	rows, err := s.matching(ctx, c)
	if err != nil {
		return nil, err
	}
	order, members := groupOrder(dim, rows)
	out := make([]domain.LabeledCount, 0, len(order))
	for _, g := range order {
		out = append(out, domain.LabeledCount{Label: g.label, Count: int64(len(members[g.key]))})
	}
	return out, nil
}

func (s *Store) SumByDimension(ctx context.Context, dim domain.Dimension, c domain.AggregateConstraints) ([]domain.LabeledAmount, error) {
	rows, err := s.matching(ctx, c)
	if err != nil {
		return nil, err
	}
	order, members := groupOrder(dim, rows)
	out := make([]domain.LabeledAmount, 0, len(order))
	for _, g := range order {
		sum := decimal.Zero
		for _, t := range members[g.key] {
			sum = sum.Add(t.Amount)
		}
		out = append(out, domain.LabeledAmount{Label: g.label, Amount: sum})
	}
	return out, nil
}

// --- reference data ---

func (s *Store) FindStatusByCode(_ context.Context, code domain.StatusCode) (*domain.TransactionStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.ref.Statuses {
		if st.Code == code {
			return &st, nil
		}
	}
	return nil, fmt.Errorf("transaction status %s is not seeded: %w", code, apperrors.ErrConfigurationMissing)
}

func (s *Store) FindStatusByID(_ context.Context, statusID string) (*domain.TransactionStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.ref.Statuses {
		if st.ID == statusID {
			return &st, nil
		}
	}
	return nil, fmt.Errorf("transaction status %s: %w", statusID, apperrors.ErrNotFound)
}

func (s *Store) FindTypeByCode(_ context.Context, code domain.TypeCode) (*domain.TransactionType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, tt := range s.ref.Types {
		if tt.Code == code {
			return &tt, nil
		}
	}
	return nil, fmt.Errorf("transaction type %s is not seeded: %w", code, apperrors.ErrConfigurationMissing)
}

func (s *Store) FindTypeByID(_ context.Context, typeID string) (*domain.TransactionType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, tt := range s.ref.Types {
		if tt.ID == typeID {
			return &tt, nil
		}
	}
	return nil, fmt.Errorf("transaction type %s: %w", typeID, apperrors.ErrNotFound)
}

func (s *Store) FindPersonTypeByCode(_ context.Context, code domain.PersonTypeCode) (*domain.PersonType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, pt := range s.ref.PersonTypes {
		if pt.Code == code {
			return &pt, nil
		}
	}
	return nil, fmt.Errorf("person type %s is not seeded: %w", code, apperrors.ErrConfigurationMissing)
}

func (s *Store) ListReferenceData(_ context.Context) (*domain.ReferenceData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return &domain.ReferenceData{
		Statuses:    append([]domain.TransactionStatus(nil), s.ref.Statuses...),
		Types:       append([]domain.TransactionType(nil), s.ref.Types...),
		PersonTypes: append([]domain.PersonType(nil), s.ref.PersonTypes...),
	}, nil
}

// --- banks ---

func (s *Store) FindBankByID(_ context.Context, bankID string) (*domain.Bank, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.banks[bankID]
	if !ok {
		return nil, fmt.Errorf("bank %s: %w", bankID, apperrors.ErrNotFound)
	}
	return &b, nil
}

func (s *Store) ListBanks(_ context.Context) ([]domain.Bank, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Bank, 0, len(s.bankOrder))
	for _, id := range s.bankOrder {
		out = append(out, s.banks[id])
	}
	return out, nil
}

func (s *Store) SaveBank(_ context.Context, bank domain.Bank) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.banks {
		if b.BIK == bank.BIK {
			return fmt.Errorf("bank with BIK %s: %w", bank.BIK, apperrors.ErrDuplicate)
		}
	}
	s.banks[bank.BankID] = bank
	s.bankOrder = append(s.bankOrder, bank.BankID)
	return nil
}

func (s *Store) UpdateBank(_ context.Context, bank domain.Bank) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.banks[bank.BankID]; !ok {
		return fmt.Errorf("bank %s: %w", bank.BankID, apperrors.ErrNotFound)
	}
	for id, b := range s.banks {
		if id != bank.BankID && b.BIK == bank.BIK {
			return fmt.Errorf("bank with BIK %s: %w", bank.BIK, apperrors.ErrDuplicate)
		}
	}
	s.banks[bank.BankID] = bank
	return nil
}

func (s *Store) DeleteBank(_ context.Context, bankID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.banks[bankID]; !ok {
		return fmt.Errorf("bank %s: %w", bankID, apperrors.ErrNotFound)
	}
	for _, t := range s.transactions {
		if (t.SenderBank != nil && t.SenderBank.BankID == bankID) || (t.RecipientBank != nil && t.RecipientBank.BankID == bankID) {
			return fmt.Errorf("bank %s is still referenced by transactions: %w", bankID, apperrors.ErrForbidden)
		}
	}
	delete(s.banks, bankID)
	for i, id := range s.bankOrder {
		if id == bankID {
			s.bankOrder = append(s.bankOrder[:i], s.bankOrder[i+1:]...)
			break
		}
	}
	return nil
}

// --- categories ---

func (s *Store) FindCategoryByID(_ context.Context, categoryID string) (*domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.categories[categoryID]
	if !ok {
		return nil, fmt.Errorf("category %s: %w", categoryID, apperrors.ErrNotFound)
	}
	return &c, nil
}

// ListCategoriesByOwner returns the owner's categories ordered by title.
func (s *Store) ListCategoriesByOwner(_ context.Context, ownerID string, typeCode *domain.TypeCode) ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Category, 0)
	for _, c := range s.categories {
		if c.OwnerID != ownerID {
			continue
		}
		if typeCode != nil && c.Type.Code != *typeCode {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Title != out[j].Title {
			return out[i].Title < out[j].Title
		}
		return out[i].CategoryID < out[j].CategoryID
	})
	return out, nil
}

func (s *Store) SaveCategory(_ context.Context, category domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.categories[category.CategoryID]; exists {
		return fmt.Errorf("category %s: %w", category.CategoryID, apperrors.ErrDuplicate)
	}
	s.categories[category.CategoryID] = category
	return nil
}

func (s *Store) UpdateCategory(_ context.Context, category domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[category.CategoryID]; !ok {
		return fmt.Errorf("category %s: %w", category.CategoryID, apperrors.ErrNotFound)
	}
	s.categories[category.CategoryID] = category
	return nil
}

func (s *Store) DeleteCategory(_ context.Context, categoryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[categoryID]; !ok {
		return fmt.Errorf("category %s: %w", categoryID, apperrors.ErrNotFound)
	}
	for _, t := range s.transactions {
		if t.Category != nil && t.Category.CategoryID == categoryID {
			return fmt.Errorf("category %s is still referenced by transactions: %w", categoryID, apperrors.ErrForbidden)
		}
	}
	delete(s.categories, categoryID)
	return nil
}
