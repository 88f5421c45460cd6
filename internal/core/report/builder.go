package report

// sheetBuilder accumulates rows and charts for one sheet. Build returns a
// detached Sheet, so later builder calls never alter a built document.
type sheetBuilder struct {
	name     string
	widths   []float64
	rows     []Row
	charts   []Chart
	fullSpan map[int]bool
}

func newSheet(name string) *sheetBuilder {
	return &sheetBuilder{name: name, fullSpan: map[int]bool{}}
}

func (b *sheetBuilder) columns(widths ...float64) *sheetBuilder {
	b.widths = append([]float64(nil), widths...)
	return b
}

// next is the index the following row will get.
func (b *sheetBuilder) next() int {
	return len(b.rows)
}

func (b *sheetBuilder) add(r Row) int {
	b.rows = append(b.rows, r)
	return len(b.rows) - 1
}

func (b *sheetBuilder) spanning(role Role, text string) int {
	idx := b.add(Row{Role: role, Cells: []Cell{Text(text)}})
	b.fullSpan[idx] = true
	return idx
}

func (b *sheetBuilder) title(text string) int    { return b.spanning(RoleTitle, text) }
func (b *sheetBuilder) subtitle(text string) int { return b.spanning(RoleSubtitle, text) }
func (b *sheetBuilder) note(text string) int     { return b.spanning(RoleNote, text) }
func (b *sheetBuilder) section(text string) int  { return b.spanning(RoleHeader, text) }

func (b *sheetBuilder) blank() int {
	return b.add(Row{Role: RoleBlank})
}

func (b *sheetBuilder) header(labels ...string) int {
	cells := make([]Cell, len(labels))
	for i, l := range labels {
		cells[i] = Text(l)
	}
	return b.add(Row{Role: RoleHeader, Cells: cells})
}

func (b *sheetBuilder) data(cells ...Cell) int {
	return b.add(Row{Role: RoleData, Cells: append([]Cell(nil), cells...)})
}

func (b *sheetBuilder) total(cells ...Cell) int {
	return b.add(Row{Role: RoleTotal, Cells: append([]Cell(nil), cells...)})
}

// noData emits the explicit empty-result row spanning the given header width.
func (b *sheetBuilder) noData(text string, width int) int {
	return b.add(Row{Role: RoleData, Cells: []Cell{Text(text)}, Span: width, NoData: true})
}

func (b *sheetBuilder) chart(c Chart) {
	b.charts = append(b.charts, c)
}

func (b *sheetBuilder) build() Sheet {
	width := widest(b.rows)
	rows := make([]Row, len(b.rows))
	for i, r := range b.rows {
		r.Cells = append([]Cell(nil), r.Cells...)
		if b.fullSpan[i] && width > 1 {
			r.Span = width
		}
		rows[i] = r
	}
	return Sheet{
		Name:         b.name,
		ColumnWidths: append([]float64(nil), b.widths...),
		Rows:         rows,
		Charts:       append([]Chart(nil), b.charts...),
	}
}
