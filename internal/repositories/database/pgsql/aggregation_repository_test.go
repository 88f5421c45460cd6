package pgsql

import (
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestGroupedQuery_OrdersByFirstOccurrence(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	c := domain.AggregateConstraints{OwnerID: "owner_a"}.InWindow(domain.Window{Start: start, End: end}).OfTypes(domain.TypeExpense)

	query, args := groupedQuery(domain.DimensionCategory, "COALESCE(SUM(t.amount), 0)", c)

	assert.Contains(t, query, "JOIN categories c ON c.category_id = t.category_id")
	assert.Contains(t, query, "GROUP BY c.category_id, c.title")
	assert.Contains(t, query, "ORDER BY MIN(t.operation_date_time), MIN(t.transaction_id::text)")
	assert.Contains(t, query, "ts.code <> 'DELETED'")
	assert.Equal(t, []any{"owner_a", start, end, []string{"EXPENSE"}}, args)
}

func TestGroupedQuery_StatusNeedsNoExtraJoin(t *testing.T) {
	query, args := groupedQuery(domain.DimensionStatus, "COUNT(*)", domain.AggregateConstraints{OwnerID: "owner_a", IncludeDeleted: true})

	assert.False(t, strings.Contains(query, "JOIN banks"))
	assert.NotContains(t, query, "DELETED")
	assert.Contains(t, query, "SELECT ts.id, ts.code, COUNT(*)")
	assert.Equal(t, []any{"owner_a"}, args)
}

func TestDimensionSQL_BanksUseInnerJoin(t *testing.T) {
	join, key, label := dimensionSQL(domain.DimensionRecipientBank)

	assert.Equal(t, " JOIN banks b ON b.bank_id = t.recipient_bank_id", join)
	assert.Equal(t, "b.bank_id", key)
	assert.Equal(t, "b.title", label)
}

func TestIsUUID(t *testing.T) {
	assert.True(t, isUUID("b5e0a7c3-2f1d-4c8e-9b6a-1e2d3c4b5a01"))
	assert.False(t, isUUID("bank_1"))
}
