package filter

import (
	"fmt"
	"strings"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
)

// SortField is a whitelisted ordering column.
type SortField string

const (
	SortByOperationDateTime SortField = "operationDateTime"
	SortByAmount            SortField = "amount"
	SortByCreatedAt         SortField = "createdAt"
)

// Sort orders query results. Ties are broken by transaction id in the same direction.
type Sort struct {
	Field      SortField
	Descending bool
}

// DefaultSort is newest operation first.
func DefaultSort() Sort {
	return Sort{Field: SortByOperationDateTime, Descending: true}
}

// ParseSort validates a field name and a direction ("asc" or "desc").
// Empty values fall back to DefaultSort.
func ParseSort(field, direction string) (Sort, error) {
	s := DefaultSort()
	if field != "" {
		switch f := SortField(field); f {
		case SortByOperationDateTime, SortByAmount, SortByCreatedAt:
			s.Field = f
		default:
			return Sort{}, fmt.Errorf("%w: unsupported sort field %q", apperrors.ErrValidation, field)
		}
	}
	switch strings.ToLower(direction) {
	case "":
	case "asc":
		s.Descending = false
	case "desc":
		s.Descending = true
	default:
		return Sort{}, fmt.Errorf("%w: sort direction must be asc or desc", apperrors.ErrValidation)
	}
	return s, nil
}

func (s Sort) column() string {
	switch s.Field {
	case SortByAmount:
		return "t.amount"
	case SortByCreatedAt:
		return "t.created_at"
	case SortByOperationDateTime:
		return "t.operation_date_time"
	default:
		panic(fmt.Sprintf("filter: unhandled sort field %q", string(s.Field)))
	}
}

// OrderBy renders the ORDER BY list.
func (s Sort) OrderBy() string {
	dir := "ASC"
	if s.Descending {
		dir = "DESC"
	}
	return fmt.Sprintf("%s %s, t.transaction_id %s", s.column(), dir, dir)
}

// Less reports whether a sorts before b.
func (s Sort) Less(a, b domain.Transaction) bool {
	var cmp int
	switch s.Field {
	case SortByAmount:
		cmp = a.Amount.Cmp(b.Amount)
	case SortByCreatedAt:
		cmp = a.CreatedAt.Compare(b.CreatedAt)
	case SortByOperationDateTime:
		cmp = a.OperationDateTime.Compare(b.OperationDateTime)
	default:
		panic(fmt.Sprintf("filter: unhandled sort field %q", string(s.Field)))
	}
	if cmp == 0 {
		cmp = strings.Compare(a.TransactionID, b.TransactionID)
	}
	if s.Descending {
		return cmp > 0
	}
	return cmp < 0
}

// Page bounds a query result. A zero Limit means no limit.
type Page struct {
	Limit  int
	Offset int
}
