package filter

import (
	"fmt"
	"strings"
)

// Column references used by the pushed-down clauses. Queries must alias the
// transactions table as t, transaction_statuses as ts and transaction_types as tt.
const (
	ColOwnerID           = "t.owner_id"
	ColOperationDateTime = "t.operation_date_time"
	ColAmount            = "t.amount"
	ColStatusID          = "t.status_id"
	ColStatusCode        = "ts.code"
	ColSenderBankID      = "t.sender_bank_id"
	ColRecipientBankID   = "t.recipient_bank_id"
	ColTypeID            = "t.transaction_type_id"
	ColTypeCode          = "tt.code"
	ColCategoryID        = "t.category_id"
	ColRecipientInn      = "t.recipient_inn"
)

// Args collects positional query arguments and hands out $n placeholders.
type Args struct {
	values []any
}

// Next appends v and returns its placeholder.
func (a *Args) Next(v any) string {
	a.values = append(a.values, v)
	return fmt.Sprintf("$%d", len(a.values))
}

// Values returns the collected arguments in placeholder order.
func (a *Args) Values() []any {
	return a.values
}

// SQL renders the predicate as a boolean expression, appending its arguments to args.
func (p Predicate) SQL(args *Args) string {
	switch p.Kind {
	case KindOwnership:
		return ColOwnerID + " = " + args.Next(p.Value)
	case KindNotDeleted:
		return ColStatusCode + " <> 'DELETED'"
	case KindDateBetween:
		var parts []string
		if p.From != nil {
			parts = append(parts, ColOperationDateTime+" >= "+args.Next(*p.From))
		}
		if p.To != nil {
			parts = append(parts, ColOperationDateTime+" <= "+args.Next(*p.To))
		}
		return joinOrTrue(parts)
	case KindAmountBetween:
		var parts []string
		if p.Min != nil {
			parts = append(parts, ColAmount+" >= "+args.Next(*p.Min))
		}
		if p.Max != nil {
			parts = append(parts, ColAmount+" <= "+args.Next(*p.Max))
		}
		return joinOrTrue(parts)
	case KindStatus:
		return ColStatusID + " = " + args.Next(p.Value)
	case KindSenderBank:
		return ColSenderBankID + " = " + args.Next(p.Value)
	case KindRecipientBank:
		return ColRecipientBankID + " = " + args.Next(p.Value)
	case KindType:
		return ColTypeID + " = " + args.Next(p.Value)
	case KindCategory:
		return ColCategoryID + " = " + args.Next(p.Value)
	case KindInn:
		return ColRecipientInn + " = " + args.Next(p.Value)
	case KindTypeCodeIn:
		if len(p.TypeCodes) == 0 {
			return "FALSE"
		}
		codes := make([]string, len(p.TypeCodes))
		for i, c := range p.TypeCodes {
			codes[i] = string(c)
		}
		return ColTypeCode + " = ANY(" + args.Next(codes) + ")"
	default:
		return "FALSE"
	}
}

func joinOrTrue(parts []string) string {
	if len(parts) == 0 {
		return "TRUE"
	}
	return strings.Join(parts, " AND ")
}
