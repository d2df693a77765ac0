package db

// Row pairs a table-scoped identifier with its stored value.
type Row struct {
	ID    int64 `json:"id"`
	Value any   `json:"value"`
}

// Table is an ordered sequence of rows. Order only changes by append (new
// rows go at the end) or removal; ids are assigned in strictly increasing
// order and never reused, even after the row holding one is removed.
type Table struct {
	rows   []Row
	nextID int64
}

// Append adds value at the end of the table and returns the assigned id.
// There is no uniqueness constraint on values; Append always succeeds.
func (t *Table) Append(value any) int64 {
	id := t.nextID
	t.nextID++
	t.rows = append(t.rows, Row{ID: id, Value: value})
	return id
}

// Find returns the value of the row with the given id.
func (t *Table) Find(id int64) (any, error) {
	for _, r := range t.rows {
		if r.ID == id {
			return r.Value, nil
		}
	}
	return nil, ErrRowNotFound
}

// Remove deletes the row with the given id, keeping the remaining rows in
// their original relative order.
func (t *Table) Remove(id int64) error {
	for i, r := range t.rows {
		if r.ID == id {
			t.rows = append(t.rows[:i], t.rows[i+1:]...)
			return nil
		}
	}
	return ErrRowNotFound
}

// Replace swaps the value of the row with the given id in place, keeping
// its id and position.
func (t *Table) Replace(id int64, value any) error {
	for i := range t.rows {
		if t.rows[i].ID == id {
			t.rows[i].Value = value
			return nil
		}
	}
	return ErrRowNotFound
}

// Slice returns rows in table order. A zero limit returns every row, a
// positive limit the first limit rows, a negative limit the last -limit
// rows; fewer when the table holds fewer. The result is a copy.
func (t *Table) Slice(limit int) []Row {
	rows := t.rows
	switch {
	case limit > 0 && limit < len(rows):
		rows = rows[:limit]
	case limit < 0:
		// len+limit cannot overflow, unlike negating limit (math.MinInt).
		if start := len(rows) + limit; start > 0 {
			rows = rows[start:]
		}
	}
	out := make([]Row, len(rows))
	copy(out, rows)
	return out
}

// Len reports the number of rows in the table.
func (t *Table) Len() int {
	return len(t.rows)
}
