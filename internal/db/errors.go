package db

import "errors"

// Failure classes for database operations. "No such table" and "no such
// row" are distinct sentinels so callers get the same diagnostic split SQL
// gives them, instead of a single generic not-found.
var (
	ErrTableNotFound = errors.New("table does not exist")
	ErrTableExists   = errors.New("table already exists")
	ErrRowNotFound   = errors.New("row does not exist")
	ErrClosed        = errors.New("database is closed")
)
