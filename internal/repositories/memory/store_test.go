package memory_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/core/filter"
	"github.com/SscSPs/personal_finance_app/internal/core/services"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/SscSPs/personal_finance_app/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

type fixture struct {
	store *memory.Store
	ref   domain.ReferenceData
	banks []domain.Bank
	seq   int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	s := memory.New()
	ref, err := s.ListReferenceData(context.Background())
	require.NoError(t, err)
	banks, err := s.ListBanks(context.Background())
	require.NoError(t, err)
	return &fixture{store: s, ref: *ref, banks: banks}
}

func (f *fixture) status(code domain.StatusCode) domain.TransactionStatus {
	for _, s := range f.ref.Statuses {
		if s.Code == code {
			return s
		}
	}
	panic("status not seeded: " + string(code))
}

func (f *fixture) txnType(code domain.TypeCode) domain.TransactionType {
	for _, tt := range f.ref.Types {
		if tt.Code == code {
			return tt
		}
	}
	panic("type not seeded: " + string(code))
}

func (f *fixture) add(t *testing.T, owner string, code domain.TypeCode, status domain.StatusCode, amount string, at time.Time, mutate ...func(*domain.Transaction)) domain.Transaction {
	t.Helper()
	f.seq++
	txn := domain.Transaction{
		TransactionID:     fmt.Sprintf("txn-%03d", f.seq),
		OwnerID:           owner,
		PersonType:        f.ref.PersonTypes[0],
		OperationDateTime: at,
		Type:              f.txnType(code),
		Amount:            decimal.RequireFromString(amount),
		Status:            f.status(status),
	}
	for _, m := range mutate {
		m(&txn)
	}
	require.NoError(t, f.store.SaveTransaction(context.Background(), txn))
	return txn
}

func TestQueryTransactions_OwnerAndDeletedExcluded(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.add(t, "owner_a", domain.TypeIncome, domain.StatusNew, "100", now.Add(-time.Hour))
	f.add(t, "owner_a", domain.TypeExpense, domain.StatusDeleted, "50", now.Add(-2*time.Hour))
	f.add(t, "owner_b", domain.TypeExpense, domain.StatusNew, "70", now.Add(-3*time.Hour))

	composed, err := filter.Compose("owner_a", filter.Params{})
	require.NoError(t, err)
	rows, total, err := f.store.QueryTransactions(ctx, composed, filter.DefaultSort(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	for _, r := range rows {
		assert.Equal(t, "owner_a", r.OwnerID)
		assert.False(t, r.IsDeleted())
	}

	withDeleted, err := filter.Compose("owner_a", filter.Params{}, filter.WithDeleted())
	require.NoError(t, err)
	_, total, err = f.store.QueryTransactions(ctx, withDeleted, filter.DefaultSort(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestQueryTransactions_SortAndPage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		f.add(t, "owner_a", domain.TypeExpense, domain.StatusNew, fmt.Sprintf("%d", 10*(i+1)), now.Add(-time.Duration(i)*time.Hour))
	}
	composed, err := filter.Compose("owner_a", filter.Params{})
	require.NoError(t, err)

	rows, total, err := f.store.QueryTransactions(ctx, composed, filter.DefaultSort(), &filter.Page{Limit: 2, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, rows, 2)
	assert.True(t, rows[0].OperationDateTime.After(rows[1].OperationDateTime), "newest first")
	assert.Equal(t, "txn-002", rows[0].TransactionID)

	rows, _, err = f.store.QueryTransactions(ctx, composed, filter.Sort{Field: filter.SortByAmount}, &filter.Page{Limit: 10, Offset: 4})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "50", rows[0].Amount.String())

	rows, _, err = f.store.QueryTransactions(ctx, composed, filter.DefaultSort(), &filter.Page{Limit: 10, Offset: 9})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestAggregation_BalanceIdentityAndPeriods(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.add(t, "owner_a", domain.TypeIncome, domain.StatusNew, "1000", now.AddDate(0, 0, -2))
	f.add(t, "owner_a", domain.TypeExpense, domain.StatusCompleted, "400", now.AddDate(0, 0, -10))
	f.add(t, "owner_a", domain.TypeTransfer, domain.StatusNew, "150.12345", now.AddDate(0, -2, 0))
	f.add(t, "owner_a", domain.TypeIncome, domain.StatusNew, "999", now.AddDate(0, -6, 0))
	f.add(t, "owner_a", domain.TypeExpense, domain.StatusDeleted, "10000", now.AddDate(0, 0, -1))
	f.add(t, "owner_b", domain.TypeIncome, domain.StatusNew, "5", now.AddDate(0, 0, -1))

	agg := services.NewAggregationService(f.store, services.WithAggregationClock(func() time.Time { return now }))

	w := domain.LastMonth(now)
	totals, err := agg.Balance(ctx, "owner_a", w.Start, w.End)
	require.NoError(t, err)
	assert.Equal(t, "600.00000", totals.Balance.StringFixed(domain.AmountScale))

	yw := domain.LastYear(now)
	income, err := agg.SumByType(ctx, "owner_a", domain.TypeIncome, yw.Start, yw.End)
	require.NoError(t, err)
	outflow, err := agg.SumByTypes(ctx, "owner_a", domain.OutflowTypes, yw.Start, yw.End)
	require.NoError(t, err)
	yearly, err := agg.Balance(ctx, "owner_a", yw.Start, yw.End)
	require.NoError(t, err)
	assert.True(t, income.Sub(outflow).Equal(yearly.Balance))
	assert.Equal(t, "1448.87655", yearly.Balance.StringFixed(domain.AmountScale))

	var previous int64 = -1
	for _, p := range domain.Periods {
		pc, err := agg.CountByPeriod(ctx, "owner_a", p, nil)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, pc.Count, previous, "period %s", p)
		previous = pc.Count
	}
	assert.Equal(t, int64(4), previous)
}

func TestAggregation_GroupsInFirstOccurrenceOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ctxCat := func(id, title string) func(*domain.Transaction) {
		return func(t *domain.Transaction) {
			t.Category = &domain.CategoryRef{CategoryID: id, Title: title, TypeCode: domain.TypeExpense}
		}
	}
	for _, c := range []domain.Category{
		{CategoryID: "cat-rent", OwnerID: "owner_a", Title: "Rent", Type: f.txnType(domain.TypeExpense)},
		{CategoryID: "cat-food", OwnerID: "owner_a", Title: "Food", Type: f.txnType(domain.TypeExpense)},
		{CategoryID: "cat-food-2", OwnerID: "owner_a", Title: "Food", Type: f.txnType(domain.TypeExpense)},
	} {
		require.NoError(t, f.store.SaveCategory(ctx, c))
	}
	f.add(t, "owner_a", domain.TypeExpense, domain.StatusNew, "100", now.AddDate(0, 0, -3), ctxCat("cat-food", "Food"))
	f.add(t, "owner_a", domain.TypeExpense, domain.StatusNew, "700", now.AddDate(0, 0, -5), ctxCat("cat-rent", "Rent"))
	f.add(t, "owner_a", domain.TypeExpense, domain.StatusNew, "200", now.AddDate(0, 0, -1), ctxCat("cat-food-2", "Food"))
	f.add(t, "owner_a", domain.TypeExpense, domain.StatusNew, "50", now.AddDate(0, 0, -1))

	rows, err := f.store.SumByDimension(ctx, domain.DimensionCategory, domain.AggregateConstraints{OwnerID: "owner_a"}.OfTypes(domain.TypeExpense))
	require.NoError(t, err)
	require.Len(t, rows, 3, "one row per category id, uncategorized skipped")
	assert.Equal(t, "Rent", rows[0].Label)

	agg := services.NewAggregationService(f.store)
	groups, err := agg.SumByCategory(ctx, "owner_a", domain.TypeExpense, nil)
	require.NoError(t, err)
	assert.Equal(t, []domain.LabeledAmount{
		{Label: "Rent", Amount: decimal.RequireFromString("700")},
		{Label: "Food", Amount: decimal.RequireFromString("300")},
	}, groups.Rows())
}

func TestAggregation_CountByBankUsesCurrentTitles(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sber := f.banks[0]
	f.add(t, "owner_a", domain.TypeExpense, domain.StatusNew, "10", now, func(t *domain.Transaction) { t.SenderBank = &sber })

	renamed := sber
	renamed.Title = "Sber"
	require.NoError(t, f.store.UpdateBank(ctx, renamed))

	rows, err := f.store.CountByDimension(ctx, domain.DimensionSenderBank, domain.AggregateConstraints{OwnerID: "owner_a"})
	require.NoError(t, err)
	assert.Equal(t, []domain.LabeledCount{{Label: "Sber", Count: 1}}, rows)

	err = f.store.DeleteBank(ctx, sber.BankID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestReferenceLookups(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	st, err := s.FindStatusByCode(ctx, domain.StatusDeleted)
	require.NoError(t, err)
	assert.Equal(t, memory.StatusDeletedID, st.ID)

	_, err = s.FindStatusByID(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	empty := memory.NewWithReferenceData(domain.ReferenceData{})
	_, err = empty.FindStatusByCode(ctx, domain.StatusDeleted)
	assert.ErrorIs(t, err, apperrors.ErrConfigurationMissing)

	banks, err := s.ListBanks(ctx)
	require.NoError(t, err)
	assert.Len(t, banks, 5)
	err = s.SaveBank(ctx, domain.Bank{BankID: "dup", Title: "Copy", BIK: banks[0].BIK})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestDeleteViaServiceHidesTransaction(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	txn := f.add(t, "owner_a", domain.TypeExpense, domain.StatusNew, "10", now)

	repos := f.store.Provider()
	svc := services.NewTransactionService(repos.TransactionRepo, repos.ReferenceRepo, repos.BankRepo, repos.CategoryRepo)
	require.NoError(t, svc.DeleteTransaction(ctx, txn.TransactionID, "owner_a"))

	_, err := svc.GetTransactionByID(ctx, txn.TransactionID, "owner_a")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	stored, err := f.store.FindTransactionByID(ctx, txn.TransactionID)
	require.NoError(t, err)
	assert.True(t, stored.IsDeleted(), "soft delete keeps the row")
}

// racingStore lets a delete land between the service's read and its write.
type racingStore struct {
	*memory.Store
	deleted domain.TransactionStatus
}

func (r *racingStore) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	snapshot, err := r.Store.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	tombstone := *snapshot
	tombstone.Status = r.deleted
	if err := r.Store.UpdateTransaction(ctx, tombstone, snapshot.Status.ID); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func TestUpdateAfterConcurrentDeleteKeepsTombstone(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	txn := f.add(t, "owner_a", domain.TypeExpense, domain.StatusNew, "10", now)

	repos := f.store.Provider()
	racing := &racingStore{Store: f.store, deleted: f.status(domain.StatusDeleted)}
	svc := services.NewTransactionService(racing, repos.ReferenceRepo, repos.BankRepo, repos.CategoryRepo)

	comment := "late edit"
	_, err := svc.UpdateTransaction(ctx, txn.TransactionID, "owner_a", dto.UpdateTransactionRequest{Comment: &comment})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	stored, err := f.store.FindTransactionByID(ctx, txn.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDeleted, stored.Status.Code)
	assert.Empty(t, stored.Comment)
}

func TestUpdateTransaction_ExpectedStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	txn := f.add(t, "owner_a", domain.TypeExpense, domain.StatusCompleted, "10", now)

	stale := txn
	stale.Status = f.status(domain.StatusNew)
	err := f.store.UpdateTransaction(ctx, stale, f.status(domain.StatusNew).ID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	stored, err := f.store.FindTransactionByID(ctx, txn.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, stored.Status.Code)

	tombstone := txn
	tombstone.Status = f.status(domain.StatusDeleted)
	require.NoError(t, f.store.UpdateTransaction(ctx, tombstone, txn.Status.ID))
	err = f.store.UpdateTransaction(ctx, txn, f.status(domain.StatusDeleted).ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
