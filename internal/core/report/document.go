// Package report assembles transactions and aggregates into an abstract,
// renderer-independent document: ordered sheets of role-tagged rows plus chart
// descriptors that point at ranges already written into the sheet.
package report

import (
	"strconv"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Role tags a row with its purpose so the renderer can style it.
type Role string

const (
	RoleTitle    Role = "title"
	RoleSubtitle Role = "subtitle"
	RoleHeader   Role = "header"
	RoleData     Role = "data"
	RoleTotal    Role = "total"
	RoleNote     Role = "note"
	RoleBlank    Role = "blank"
)

// CellKind selects which value field of a Cell is meaningful.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellAmount
	CellCount
	CellPercent
	CellDateTime
)

// DateTimeLayout is how operation times and period bounds are printed.
const DateTimeLayout = "02.01.2006 15:04"

// Cell is a single typed value. Negative marks outflow or negative amounts
// for distinct styling; it never changes the value.
type Cell struct {
	Kind     CellKind
	Text     string
	Amount   decimal.Decimal
	Count    int64
	Time     time.Time
	Negative bool
}

// Empty is a placeholder cell.
func Empty() Cell { return Cell{Kind: CellEmpty} }

// Text is a string cell.
func Text(s string) Cell { return Cell{Kind: CellText, Text: s} }

// Amount is a monetary cell without a marker.
func Amount(d decimal.Decimal) Cell { return Cell{Kind: CellAmount, Amount: d} }

// Outflow is a monetary cell carrying the negative marker.
func Outflow(d decimal.Decimal) Cell { return Cell{Kind: CellAmount, Amount: d, Negative: true} }

// TypedAmount marks the amount as outflow when the type code is one.
func TypedAmount(d decimal.Decimal, code domain.TypeCode) Cell {
	return Cell{Kind: CellAmount, Amount: d, Negative: code.IsOutflow()}
}

// SignedAmount carries the negative marker only when d is below zero.
func SignedAmount(d decimal.Decimal) Cell {
	return Cell{Kind: CellAmount, Amount: d, Negative: d.IsNegative()}
}

// Count is an integer cell.
func Count(n int64) Cell { return Cell{Kind: CellCount, Count: n} }

// Percent is a ratio cell (0.3 renders as 30%).
func Percent(d decimal.Decimal) Cell { return Cell{Kind: CellPercent, Amount: d} }

// DateTime is a timestamp cell.
func DateTime(t time.Time) Cell { return Cell{Kind: CellDateTime, Time: t} }

// String returns a plain textual form of the value.
func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellAmount:
		return c.Amount.StringFixed(domain.AmountScale)
	case CellCount:
		return strconv.FormatInt(c.Count, 10)
	case CellPercent:
		return c.Amount.StringFixed(4)
	case CellDateTime:
		return c.Time.Format(DateTimeLayout)
	case CellEmpty:
		return ""
	default:
		return ""
	}
}

// Row is one logical row. When Span is greater than one the first cell is
// merged across that many columns.
type Row struct {
	Role   Role
	Cells  []Cell
	Span   int
	NoData bool
}

// CellRange is a rectangular, zero-based, inclusive block of cells.
type CellRange struct {
	FirstRow int
	FirstCol int
	LastRow  int
	LastCol  int
}

// Column is a one-column range spanning rows first..last.
func Column(col, first, last int) CellRange {
	return CellRange{FirstRow: first, FirstCol: col, LastRow: last, LastCol: col}
}

// ChartKind selects the chart type.
type ChartKind string

const (
	ChartPie  ChartKind = "pie"
	ChartBar  ChartKind = "bar"
	ChartLine ChartKind = "line"
)

// LegendPosition places the chart legend.
type LegendPosition string

const (
	LegendRight  LegendPosition = "right"
	LegendBottom LegendPosition = "bottom"
)

// Chart describes a chart over data already present in the sheet.
// When the renderer cannot build it, FallbackNote is written at the anchor instead.
type Chart struct {
	Kind         ChartKind
	Title        string
	SeriesName   string
	Categories   CellRange
	Values       CellRange
	Legend       LegendPosition
	ShowPercent  bool
	AnchorRow    int
	AnchorCol    int
	FallbackNote string
}

// Sheet is an ordered list of rows plus its charts.
type Sheet struct {
	Name         string
	ColumnWidths []float64
	Rows         []Row
	Charts       []Chart
}

// Width is the cell count of the widest header, data or total row.
func (s Sheet) Width() int {
	return widest(s.Rows)
}

// RowsWithRole returns the rows tagged role, in sheet order.
func (s Sheet) RowsWithRole(role Role) []Row {
	var out []Row
	for _, r := range s.Rows {
		if r.Role == role {
			out = append(out, r)
		}
	}
	return out
}

// Document is the full report handed to a renderer.
type Document struct {
	Name   string
	Sheets []Sheet
}

func widest(rows []Row) int {
	w := 0
	for _, r := range rows {
		switch r.Role {
		case RoleHeader, RoleData, RoleTotal:
			if r.NoData {
				continue
			}
			if len(r.Cells) > w {
				w = len(r.Cells)
			}
		case RoleTitle, RoleSubtitle, RoleNote, RoleBlank:
		}
	}
	return w
}
