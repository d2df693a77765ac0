// Package jsonfile implements store.Store over a single JSON file.
//
// The whole database is one document: an object mapping table names to
// arrays of row values, written with two-space indentation and a trailing
// newline. A connection holds the file open for its lifetime; Save
// rewrites the full document in place (seek, truncate, write, sync).
// There is no journal, so a crash mid-save can leave a partial document.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/maloquacious/flatdb/internal/store"
)

// File is a document-file connection implementing store.Store.
type File struct {
	path string
	f    *os.File
}

// Create truncates or creates the document file at path and returns a
// connection holding an empty document.
func Create(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return &File{path: path, f: f}, nil
}

// Open connects to the document file at path, creating an empty one when
// it is absent.
func Open(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &File{path: path, f: f}, nil
}

// Path returns the document file path.
func (s *File) Path() string {
	return s.path
}

// Load reads and parses the document. An empty file yields an empty
// document; unparsable content yields a store.FormatError.
func (s *File) Load() (store.Document, error) {
	if s.f == nil {
		return nil, fmt.Errorf("load %s: connection closed", s.path)
	}
	if _, err := s.f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek %s: %w", s.path, err)
	}
	raw, err := io.ReadAll(s.f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return parse(s.path, raw)
}

// Save rewrites the document file in place with the serialized document.
func (s *File) Save(doc store.Document) error {
	if s.f == nil {
		return fmt.Errorf("save %s: connection closed", s.path)
	}
	data, err := Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if _, err := s.f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("seek %s: %w", s.path, err)
	}
	if err := s.f.Truncate(0); err != nil {
		return fmt.Errorf("truncate %s: %w", s.path, err)
	}
	if _, err := s.f.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	if err := s.f.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", s.path, err)
	}
	return nil
}

// Close releases the file handle. Closing twice is a no-op.
func (s *File) Close() error {
	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	if err != nil {
		return fmt.Errorf("close %s: %w", s.path, err)
	}
	return nil
}

// Marshal renders a document in the on-disk format: two-space indented
// JSON with a trailing newline. Table names sort lexically, which keeps
// the output deterministic for a given document.
func Marshal(doc store.Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// CheckState reports the condition of the document file at path without
// opening a connection.
func CheckState(path string) (store.State, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return store.StateMissing, nil
		}
		return store.StateMissing, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return store.StateMissing, fmt.Errorf("document path is a directory, expected file: %s", path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return store.StateMissing, fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return store.StateEmpty, nil
	}
	if _, err := parse(path, raw); err != nil {
		return store.StateCorrupt, nil
	}
	return store.StateReady, nil
}

// parse decodes raw document bytes. Empty input and JSON null both mean
// an empty store.
func parse(path string, raw []byte) (store.Document, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return store.Document{}, nil
	}
	var doc store.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &store.FormatError{Path: path, Err: err}
	}
	if doc == nil {
		doc = store.Document{}
	}
	return doc, nil
}
