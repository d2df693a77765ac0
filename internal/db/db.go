package db

import (
	"fmt"

	"github.com/maloquacious/flatdb/internal/store"
)

// DB is a set of named tables held in memory and persisted as a single
// document through a store.Store. Mutations only touch memory; nothing
// reaches the backend until Save or Close.
//
// A DB has exactly one in-process owner at a time. Methods are not safe
// for concurrent use and no internal locking is provided.
type DB struct {
	backend store.Store
	tables  map[string]*Table
	dirty   bool
	closed  bool
}

// Open loads whatever document the backend holds and returns a connected
// DB. A backend with no document yields an empty DB. Row ids are assigned
// positionally, starting at 0, in document order.
func Open(backend store.Store) (*DB, error) {
	doc, err := backend.Load()
	if err != nil {
		return nil, err
	}
	d := &DB{
		backend: backend,
		tables:  make(map[string]*Table, len(doc)),
	}
	for name, values := range doc {
		t := &Table{}
		for _, v := range values {
			t.Append(v)
		}
		d.tables[name] = t
	}
	return d, nil
}

// CreateTable adds an empty table under name.
func (d *DB) CreateTable(name string) error {
	if d.closed {
		return ErrClosed
	}
	if _, ok := d.tables[name]; ok {
		return fmt.Errorf("create table %q: %w", name, ErrTableExists)
	}
	d.tables[name] = &Table{}
	d.dirty = true
	return nil
}

// DropTable removes the table and every row in it.
func (d *DB) DropTable(name string) error {
	if d.closed {
		return ErrClosed
	}
	if _, ok := d.tables[name]; !ok {
		return fmt.Errorf("drop table %q: %w", name, ErrTableNotFound)
	}
	delete(d.tables, name)
	d.dirty = true
	return nil
}

// Tables returns the names of all tables. Callers must not rely on the
// order of the result.
func (d *DB) Tables() ([]string, error) {
	if d.closed {
		return nil, ErrClosed
	}
	names := make([]string, 0, len(d.tables))
	for name := range d.tables {
		names = append(names, name)
	}
	return names, nil
}

// Insert appends value to the named table and returns the assigned id.
func (d *DB) Insert(table string, value any) (int64, error) {
	if d.closed {
		return 0, ErrClosed
	}
	t, err := d.table(table)
	if err != nil {
		return 0, err
	}
	id := t.Append(value)
	d.dirty = true
	return id, nil
}

// Delete removes the row with the given id from the named table.
func (d *DB) Delete(table string, id int64) error {
	if d.closed {
		return ErrClosed
	}
	t, err := d.table(table)
	if err != nil {
		return err
	}
	if err := t.Remove(id); err != nil {
		return fmt.Errorf("delete from %q: %w", table, err)
	}
	d.dirty = true
	return nil
}

// Update replaces the value of the row with the given id in the named
// table, keeping its id and position.
func (d *DB) Update(table string, id int64, value any) error {
	if d.closed {
		return ErrClosed
	}
	t, err := d.table(table)
	if err != nil {
		return err
	}
	if err := t.Replace(id, value); err != nil {
		return fmt.Errorf("update %q: %w", table, err)
	}
	d.dirty = true
	return nil
}

// Read returns values from the named table in row order, trimmed by limit
// under the Table.Slice contract: 0 for all rows, positive for the first
// limit rows, negative for the last -limit rows.
func (d *DB) Read(table string, limit int) ([]any, error) {
	rows, err := d.Select(table, limit)
	if err != nil {
		return nil, err
	}
	values := make([]any, len(rows))
	for i, r := range rows {
		values[i] = r.Value
	}
	return values, nil
}

// Select is Read with ids kept, so a caller can target a specific row for
// a later Update or Delete.
func (d *DB) Select(table string, limit int) ([]Row, error) {
	if d.closed {
		return nil, ErrClosed
	}
	t, err := d.table(table)
	if err != nil {
		return nil, err
	}
	return t.Slice(limit), nil
}

// Dirty reports whether in-memory state differs from the last saved
// document.
func (d *DB) Dirty() bool {
	return d.dirty
}

// Save serializes every table to the backend and clears the dirty flag.
// A clean store is not rewritten. The document carries values only; ids
// are reassigned positionally on the next load.
func (d *DB) Save() error {
	if d.closed {
		return ErrClosed
	}
	if !d.dirty {
		return nil
	}
	if err := d.backend.Save(d.document()); err != nil {
		return fmt.Errorf("save database: %w", err)
	}
	d.dirty = false
	return nil
}

// Close saves any unsaved mutations and then releases the backend.
// Closing an already-closed DB is a no-op. If the save or the release
// fails, the error propagates and the DB stays open, so the caller knows
// the document may not have reached storage and can retry.
func (d *DB) Close() error {
	if d.closed {
		return nil
	}
	if err := d.Save(); err != nil {
		return err
	}
	if err := d.backend.Close(); err != nil {
		return err
	}
	d.closed = true
	return nil
}

// document flattens the tables into the persisted shape.
func (d *DB) document() store.Document {
	doc := make(store.Document, len(d.tables))
	for name, t := range d.tables {
		values := make([]any, 0, t.Len())
		for _, r := range t.Slice(0) {
			values = append(values, r.Value)
		}
		doc[name] = values
	}
	return doc
}

func (d *DB) table(name string) (*Table, error) {
	t, ok := d.tables[name]
	if !ok {
		return nil, fmt.Errorf("table %q: %w", name, ErrTableNotFound)
	}
	return t, nil
}
