// Package xlsx renders report documents as Excel workbooks.
package xlsx

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/report"
	"github.com/xuri/excelize/v2"
)

const (
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	Extension   = "xlsx"

	amountFormat   = "#,##0.00000"
	percentFormat  = "0.00%"
	dateTimeFormat = "dd.mm.yyyy hh:mm"
	countFormat    = "0"

	negativeColor = "C00000"
	headerFill    = "DDEBF7"
	totalFill     = "F2F2F2"
	noteColor     = "7F7F7F"
)

// Renderer writes report.Document values into an in-memory workbook.
type Renderer struct {
	logger *slog.Logger
}

// NewRenderer creates a renderer. A nil logger falls back to slog.Default.
func NewRenderer(logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{logger: logger}
}

func (r *Renderer) ContentType() string { return ContentType }

func (r *Renderer) Extension() string { return Extension }

// Render serializes doc. A chart excelize rejects is replaced by its fallback
// note; every other failure is returned wrapped in apperrors.ErrRenderFailure.
func (r *Renderer) Render(ctx context.Context, doc report.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(doc.Sheets) == 0 {
		return nil, fmt.Errorf("%w: document %q has no sheets", apperrors.ErrRenderFailure, doc.Name)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			r.logger.Warn("Failed to close workbook", slog.String("error", err.Error()))
		}
	}()

	w := &workbook{file: f, styles: make(map[styleKey]int), logger: r.logger}
	for i, sheet := range doc.Sheets {
		if err := w.addSheet(i, sheet); err != nil {
			return nil, fmt.Errorf("%w: sheet %q: %v", apperrors.ErrRenderFailure, sheet.Name, err)
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRenderFailure, err)
	}
	return buf.Bytes(), nil
}

type styleKey struct {
	role     report.Role
	kind     report.CellKind
	negative bool
}

type workbook struct {
	file   *excelize.File
	styles map[styleKey]int
	logger *slog.Logger
}

func (w *workbook) addSheet(index int, sheet report.Sheet) error {
	if index == 0 {
		if err := w.file.SetSheetName(w.file.GetSheetName(0), sheet.Name); err != nil {
			return err
		}
	} else if _, err := w.file.NewSheet(sheet.Name); err != nil {
		return err
	}

	for i, width := range sheet.ColumnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := w.file.SetColWidth(sheet.Name, col, col, width); err != nil {
			return err
		}
	}

	for i, row := range sheet.Rows {
		if err := w.writeRow(sheet.Name, i+1, row); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	for _, chart := range sheet.Charts {
		if err := w.addChart(sheet.Name, chart); err != nil {
			w.logger.Warn("Chart could not be rendered, writing fallback note",
				slog.String("sheet", sheet.Name), slog.String("chart", chart.Title), slog.String("error", err.Error()))
			if err := w.writeFallback(sheet.Name, chart); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *workbook) writeRow(sheet string, rowNum int, row report.Row) error {
	for i, c := range row.Cells {
		cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return err
		}
		if err := w.setValue(sheet, cell, c); err != nil {
			return err
		}
		style, err := w.style(styleKey{role: row.Role, kind: c.Kind, negative: c.Negative})
		if err != nil {
			return err
		}
		if err := w.file.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}

	if row.Span > 1 {
		first, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		last, err := excelize.CoordinatesToCellName(row.Span, rowNum)
		if err != nil {
			return err
		}
		if err := w.file.MergeCell(sheet, first, last); err != nil {
			return err
		}
	}
	return nil
}

func (w *workbook) setValue(sheet, cell string, c report.Cell) error {
	switch c.Kind {
	case report.CellText:
		return w.file.SetCellStr(sheet, cell, c.Text)
	case report.CellAmount, report.CellPercent:
		return w.file.SetCellFloat(sheet, cell, c.Amount.InexactFloat64(), -1, 64)
	case report.CellCount:
		return w.file.SetCellValue(sheet, cell, c.Count)
	case report.CellDateTime:
		return w.file.SetCellValue(sheet, cell, c.Time)
	case report.CellEmpty:
		return nil
	default:
		return fmt.Errorf("unsupported cell kind %d", c.Kind)
	}
}

// style returns the cached style id for a role, value kind and sign marker.
func (w *workbook) style(key styleKey) (int, error) {
	if id, ok := w.styles[key]; ok {
		return id, nil
	}

	s := &excelize.Style{Font: &excelize.Font{Family: "Calibri", Size: 11}}
	switch key.role {
	case report.RoleTitle:
		s.Font.Bold = true
		s.Font.Size = 14
		s.Alignment = &excelize.Alignment{Horizontal: "center"}
	case report.RoleSubtitle:
		s.Font.Italic = true
		s.Alignment = &excelize.Alignment{Horizontal: "center"}
	case report.RoleHeader:
		s.Font.Bold = true
		s.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFill}}
		s.Border = thinBorder()
		s.Alignment = &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true}
	case report.RoleData:
		s.Border = thinBorder()
	case report.RoleTotal:
		s.Font.Bold = true
		s.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{totalFill}}
		s.Border = thinBorder()
	case report.RoleNote:
		s.Font.Italic = true
		s.Font.Color = noteColor
	case report.RoleBlank:
	}

	var format string
	switch key.kind {
	case report.CellAmount:
		format = amountFormat
		s.Alignment = &excelize.Alignment{Horizontal: "right"}
	case report.CellPercent:
		format = percentFormat
		s.Alignment = &excelize.Alignment{Horizontal: "right"}
	case report.CellCount:
		format = countFormat
	case report.CellDateTime:
		format = dateTimeFormat
	case report.CellText, report.CellEmpty:
	}
	if format != "" {
		s.CustomNumFmt = &format
	}
	if key.negative {
		s.Font.Color = negativeColor
	}

	id, err := w.file.NewStyle(s)
	if err != nil {
		return 0, err
	}
	w.styles[key] = id
	return id, nil
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "BFBFBF", Style: 1},
		{Type: "top", Color: "BFBFBF", Style: 1},
		{Type: "right", Color: "BFBFBF", Style: 1},
		{Type: "bottom", Color: "BFBFBF", Style: 1},
	}
}

func chartType(kind report.ChartKind) (excelize.ChartType, error) {
	switch kind {
	case report.ChartPie:
		return excelize.Pie, nil
	case report.ChartBar:
		return excelize.Col, nil
	case report.ChartLine:
		return excelize.Line, nil
	default:
		return 0, fmt.Errorf("unsupported chart kind %q", string(kind))
	}
}

// rangeRef renders a zero-based range as an absolute reference on sheet.
func rangeRef(sheet string, r report.CellRange) (string, error) {
	first, err := excelize.CoordinatesToCellName(r.FirstCol+1, r.FirstRow+1, true)
	if err != nil {
		return "", err
	}
	last, err := excelize.CoordinatesToCellName(r.LastCol+1, r.LastRow+1, true)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("'%s'!%s:%s", sheet, first, last), nil
}

func (w *workbook) addChart(sheet string, c report.Chart) error {
	kind, err := chartType(c.Kind)
	if err != nil {
		return err
	}
	categories, err := rangeRef(sheet, c.Categories)
	if err != nil {
		return err
	}
	values, err := rangeRef(sheet, c.Values)
	if err != nil {
		return err
	}
	anchor, err := excelize.CoordinatesToCellName(c.AnchorCol+1, c.AnchorRow+1)
	if err != nil {
		return err
	}

	legend := string(c.Legend)
	if legend == "" {
		legend = string(report.LegendRight)
	}
	return w.file.AddChart(sheet, anchor, &excelize.Chart{
		Type: kind,
		Series: []excelize.ChartSeries{{
			Name:       c.SeriesName,
			Categories: categories,
			Values:     values,
		}},
		Title:  []excelize.RichTextRun{{Text: c.Title}},
		Legend: excelize.ChartLegend{Position: legend},
		PlotArea: excelize.ChartPlotArea{
			ShowPercent: c.ShowPercent,
			ShowVal:     !c.ShowPercent,
		},
		Dimension: excelize.ChartDimension{Width: 480, Height: 300},
	})
}

func (w *workbook) writeFallback(sheet string, c report.Chart) error {
	cell, err := excelize.CoordinatesToCellName(c.AnchorCol+1, c.AnchorRow+1)
	if err != nil {
		return err
	}
	if err := w.file.SetCellStr(sheet, cell, c.FallbackNote); err != nil {
		return err
	}
	style, err := w.style(styleKey{role: report.RoleNote, kind: report.CellText})
	if err != nil {
		return err
	}
	return w.file.SetCellStyle(sheet, cell, cell, style)
}
