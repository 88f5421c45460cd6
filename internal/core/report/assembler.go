package report

import (
	"fmt"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	NoDataText        = "No data for the selected period"
	NoDataShort       = "No data"
	uncategorizedText = "Uncategorized"
	chartFailureText  = "Chart could not be created"
)

// TransactionHeaders are the fixed column labels of the transaction export.
var TransactionHeaders = []string{
	"Date/Time", "Type", "Category", "Amount", "Status", "Sender Bank", "Recipient Bank", "Comment",
}

// CategoryHeaders are the fixed column labels of the category report.
var CategoryHeaders = []string{"Category", "Amount", "% of Total"}

// TransactionsInput is everything the transaction export needs.
type TransactionsInput struct {
	Window       domain.Window
	Transactions []domain.Transaction // already in display order
	Totals       domain.Totals
}

// CategoryInput is everything the category report needs.
type CategoryInput struct {
	Window   domain.Window
	TypeCode domain.TypeCode
	Groups   domain.AmountGroups
	Totals   domain.Totals
}

// PeriodLabel formats a window as the subtitle of a report.
func PeriodLabel(w domain.Window) string {
	return fmt.Sprintf("Period: %s - %s", w.Start.Format(DateTimeLayout), w.End.Format(DateTimeLayout))
}

// TypeLabel is the plural display name of a transaction type.
func TypeLabel(code domain.TypeCode) string {
	switch code {
	case domain.TypeIncome:
		return "Income"
	case domain.TypeExpense:
		return "Expenses"
	case domain.TypeTransfer:
		return "Transfers"
	default:
		panic(fmt.Sprintf("report: unhandled type code %q", string(code)))
	}
}

// writeTotals appends the income / outflow / balance section.
func writeTotals(b *sheetBuilder, t domain.Totals, incomeLabel, outflowLabel string) {
	b.total(Text(incomeLabel), Amount(t.Income))
	b.total(Text(outflowLabel), Outflow(t.Outflow))
	b.total(Text("Balance:"), SignedAmount(t.Balance))
}

// TransactionsReport lays out the filtered transaction export.
func TransactionsReport(in TransactionsInput) Document {
	b := newSheet("Transactions").columns(18, 12, 20, 15, 14, 20, 20, 40)
	b.title("Financial Transactions Report")
	b.subtitle(PeriodLabel(in.Window))
	b.blank()
	b.header(TransactionHeaders...)

	if len(in.Transactions) == 0 {
		b.noData(NoDataText, len(TransactionHeaders))
	}
	for _, t := range in.Transactions {
		b.data(transactionCells(t)...)
	}

	b.blank()
	b.total(Text("TOTAL:"))
	writeTotals(b, in.Totals, "Income:", "Expenses:")

	return Document{Name: "transactions", Sheets: []Sheet{b.build()}}
}

func transactionCells(t domain.Transaction) []Cell {
	category := uncategorizedText
	if t.Category != nil {
		category = t.Category.Title
	}
	var sender, recipient string
	if t.SenderBank != nil {
		sender = t.SenderBank.Title
	}
	if t.RecipientBank != nil {
		recipient = t.RecipientBank.Title
	}
	return []Cell{
		DateTime(t.OperationDateTime),
		Text(t.Type.Title),
		Text(category),
		TypedAmount(t.Amount, t.Type.Code),
		Text(t.Status.Title),
		Text(sender),
		Text(recipient),
		Text(t.Comment),
	}
}

// CategoryReport lays out the per-category distribution of one transaction type
// with a pie chart over the data rows.
func CategoryReport(in CategoryInput) Document {
	b := newSheet("Categories").columns(25, 18, 14)
	b.title("Category Report: " + TypeLabel(in.TypeCode))
	b.subtitle(PeriodLabel(in.Window))
	b.blank()
	headerRow := b.header(CategoryHeaders...)

	groups := in.Groups.Rows()
	total := in.Groups.Total()
	if len(groups) == 0 {
		b.noData(NoDataText, len(CategoryHeaders))
	}
	for _, g := range groups {
		b.data(Text(g.Label), TypedAmount(g.Amount, in.TypeCode), Percent(domain.Percentage(g.Amount, total)))
	}

	totalShare := decimal.Zero
	if !total.IsZero() {
		totalShare = decimal.NewFromInt(1)
	}
	b.total(Text("TOTAL:"), TypedAmount(total, in.TypeCode), Percent(totalShare))
	b.blank()
	writeTotals(b, in.Totals, "Income:", "Expenses:")

	if len(groups) > 0 {
		first, last := headerRow+1, headerRow+len(groups)
		b.chart(Chart{
			Kind:         ChartPie,
			Title:        TypeLabel(in.TypeCode) + " by category",
			SeriesName:   "Amount",
			Categories:   Column(0, first, last),
			Values:       Column(1, first, last),
			Legend:       LegendRight,
			ShowPercent:  true,
			AnchorRow:    b.next() + 1,
			AnchorCol:    0,
			FallbackNote: chartFailureText,
		})
	}

	return Document{Name: "categories", Sheets: []Sheet{b.build()}}
}

// DashboardReport lays out the summary sheet and the charts sheet.
func DashboardReport(in domain.DashboardSummary) Document {
	return Document{Name: "dashboard", Sheets: []Sheet{dashboardSummary(in), dashboardCharts(in)}}
}

func dashboardSummary(in domain.DashboardSummary) Sheet {
	b := newSheet("Summary").columns(30, 18)
	b.title("Financial Dashboard")
	b.subtitle(PeriodLabel(in.Window))
	b.blank()

	b.section("FINANCIAL SUMMARY")
	writeTotals(b, in.Totals, "Total income:", "Total expenses:")
	b.blank()

	b.section("TRANSACTIONS BY PERIOD")
	for _, pc := range in.PeriodCounts {
		b.data(Text(periodRowLabel(pc.Period)), Count(pc.Count))
	}
	b.blank()

	b.section("TRANSACTIONS BY STATUS")
	writeCountGroup(b, "Status", in.ByStatus)
	b.blank()

	b.section("TRANSACTIONS BY BANK")
	b.subtitle("Sender banks")
	writeCountGroup(b, "Bank", in.BySenderBank)
	b.blank()
	b.subtitle("Recipient banks")
	writeCountGroup(b, "Bank", in.ByRecipientBank)

	return b.build()
}

func writeCountGroup(b *sheetBuilder, label string, groups domain.CountGroups) {
	b.header(label, "Count")
	rows := groups.Rows()
	if len(rows) == 0 {
		b.noData(NoDataShort, 2)
		return
	}
	for _, r := range rows {
		b.data(Text(r.Label), Count(r.Count))
	}
}

func periodRowLabel(p domain.Period) string {
	switch p {
	case domain.PeriodWeek:
		return "Last week:"
	case domain.PeriodMonth:
		return "Last month:"
	case domain.PeriodQuarter:
		return "Last quarter:"
	case domain.PeriodYear:
		return "Last year:"
	default:
		panic(fmt.Sprintf("report: unhandled period %q", string(p)))
	}
}

func dashboardCharts(in domain.DashboardSummary) Sheet {
	b := newSheet("Charts").columns(20, 18)
	b.title("Charts")
	b.subtitle(PeriodLabel(in.Window))

	header := b.header("Category", "Amount")
	b.data(Text("Income"), Amount(in.Totals.Income))
	b.data(Text("Expenses"), Outflow(in.Totals.Outflow))
	b.chart(Chart{
		Kind:         ChartBar,
		Title:        "Income vs. expenses",
		SeriesName:   "Amount",
		Categories:   Column(0, header+1, header+2),
		Values:       Column(1, header+1, header+2),
		Legend:       LegendBottom,
		AnchorRow:    0,
		AnchorCol:    3,
		FallbackNote: chartFailureText,
	})
	b.blank()

	periodHeader := b.header("Period", "Count")
	for _, pc := range in.PeriodCounts {
		b.data(Text(periodRowLabel(pc.Period)), Count(pc.Count))
	}
	if len(in.PeriodCounts) > 0 {
		b.chart(Chart{
			Kind:         ChartLine,
			Title:        "Transactions by period",
			SeriesName:   "Count",
			Categories:   Column(0, periodHeader+1, periodHeader+len(in.PeriodCounts)),
			Values:       Column(1, periodHeader+1, periodHeader+len(in.PeriodCounts)),
			Legend:       LegendBottom,
			AnchorRow:    18,
			AnchorCol:    3,
			FallbackNote: chartFailureText,
		})
	}
	return b.build()
}
