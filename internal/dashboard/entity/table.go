package entity

// Table is an ordered set of equally long columns.
type Table struct {
	Columns []*Column
	Rows    int
}

// Column looks a column up by name.
func (t *Table) Column(name string) (*Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Names returns column names in table order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		names = append(names, c.Name)
	}
	return names
}

// Numeric returns the numeric columns in table order.
func (t *Table) Numeric() []*Column {
	return t.byKind(KindNumeric)
}

// Categorical returns the categorical columns in table order.
func (t *Table) Categorical() []*Column {
	return t.byKind(KindCategorical)
}

func (t *Table) byKind(kind ColumnKind) []*Column {
	var out []*Column
	for _, c := range t.Columns {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Head returns up to n rows as display strings.
func (t *Table) Head(n int) [][]string {
	if n > t.Rows {
		n = t.Rows
	}
	if n < 0 {
		n = 0
	}
	rows := make([][]string, n)
	for i := range rows {
		row := make([]string, len(t.Columns))
		for j, c := range t.Columns {
			row[j] = c.Cell(i)
		}
		rows[i] = row
	}
	return rows
}

// Clone deep-copies the table.
func (t *Table) Clone() *Table {
	out := &Table{Rows: t.Rows, Columns: make([]*Column, len(t.Columns))}
	for i, c := range t.Columns {
		out.Columns[i] = c.clone()
	}
	return out
}
