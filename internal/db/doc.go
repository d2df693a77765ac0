// Package db implements the in-memory table model behind a flatdb
// database: named tables of ordered, schema-less rows addressed by
// per-table integer ids, persisted as a single JSON document.
//
// Values are arbitrary JSON-representable data; the store imposes no
// schema. Within one session ids are stable: they increase with insertion
// order and are never reused, even after deletes.
//
// # Row ids are positional, not durable
//
// Ids are NOT written to the document. On every load they are recomputed
// as 0..N-1 in file order, so a save/reload cycle renumbers rows to match
// their positions. Two Select calls separated by a save and reload return
// the same values in the same order, but the ids only coincide if nothing
// was ever deleted. Do not store an id anywhere that outlives the DB
// handle it came from.
//
// # Usage
//
//	st, err := jsonfile.Create("test.fdb")
//	if err != nil { ... }
//	d, err := db.Open(st)
//	if err != nil { ... }
//	_ = d.CreateTable("orders")
//	id, _ := d.Insert("orders", "item #1")
//	_, _ = d.Insert("orders", map[string]any{"item": "widget", "qty": 2})
//	_ = d.Update("orders", id, "item #1 (revised)")
//	if err := d.Close(); err != nil { ... } // Close saves
//
// Mutations live in memory until Save or Close; a crash in between loses
// them. That is the documented contract, not a bug: there is no journal
// and no background flush.
package db
