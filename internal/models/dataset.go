// Package models provides the data structures used throughout the application.
package models

// Row is one record of a tabular dataset, keyed by column name.
type Row map[string]string

// Dataset is a tabular dataset with named columns. Columns preserves the
// column order of the source file; every Row holds one value per column.
type Dataset struct {
	Columns []string
	Rows    []Row
}

// HasColumn reports whether the dataset schema contains the named column.
func (d *Dataset) HasColumn(name string) bool {
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// AddColumn fills every row with the value produced by fill. The column is
// appended to the schema unless it is already there, so a name collision
// replaces the column's values without duplicating the header.
func (d *Dataset) AddColumn(name string, fill func(row Row) string) {
	if !d.HasColumn(name) {
		d.Columns = append(d.Columns, name)
	}
	for _, row := range d.Rows {
		row[name] = fill(row)
	}
}

// Clone returns a deep copy of the dataset. The classification pass works
// on a copy so the caller's input stays untouched.
func (d *Dataset) Clone() *Dataset {
	clone := &Dataset{
		Columns: append([]string(nil), d.Columns...),
		Rows:    make([]Row, len(d.Rows)),
	}
	for i, row := range d.Rows {
		copied := make(Row, len(row))
		for k, v := range row {
			copied[k] = v
		}
		clone.Rows[i] = copied
	}
	return clone
}
