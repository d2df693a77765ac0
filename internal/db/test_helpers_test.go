package db

import "github.com/maloquacious/flatdb/internal/store"

// memStore is an in-memory store.Store with scriptable failures, used to
// exercise save/close error paths without touching the filesystem.
type memStore struct {
	doc      store.Document
	loadErr  error
	saveErr  error
	closeErr error
	saves    int
	closed   bool
}

func (m *memStore) Load() (store.Document, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.doc == nil {
		return store.Document{}, nil
	}
	return m.doc, nil
}

func (m *memStore) Save(doc store.Document) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.doc = doc
	m.saves++
	return nil
}

func (m *memStore) Close() error {
	if m.closeErr != nil {
		return m.closeErr
	}
	m.closed = true
	return nil
}
