package layout

// Row is a horizontal band of the main region. Columns holds the blocks of
// each column in order; full-width rows have a single column.
type Row struct {
	ID      string
	Columns [][]Block
}

// Page is the block sequence split by region, ready for a template.
type Page struct {
	Sidebar []Block
	Main    []Row
}

// Group splits blocks by region and folds consecutive main blocks sharing a
// row ID into one multi-column row. Order within each column is preserved.
func Group(blocks []Block) Page {
	var p Page
	for _, b := range blocks {
		if b.Region == RegionSidebar {
			p.Sidebar = append(p.Sidebar, b)
			continue
		}

		if b.Row != "" && len(p.Main) > 0 && p.Main[len(p.Main)-1].ID == b.Row {
			last := &p.Main[len(p.Main)-1]
			for len(last.Columns) <= b.Column {
				last.Columns = append(last.Columns, nil)
			}
			last.Columns[b.Column] = append(last.Columns[b.Column], b)
			continue
		}

		row := Row{ID: b.Row, Columns: make([][]Block, b.Column+1)}
		row.Columns[b.Column] = []Block{b}
		p.Main = append(p.Main, row)
	}
	return p
}
