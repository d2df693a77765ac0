package store

// State represents the condition of the document file backing a database.
type State int

const (
	StateMissing State = iota // File doesn't exist
	StateEmpty                // File exists but holds no document
	StateReady                // File holds a parsable document
	StateCorrupt              // File holds content that is not a valid document
)

// String returns the state name for diagnostics and CLI output.
func (s State) String() string {
	switch s {
	case StateMissing:
		return "missing"
	case StateEmpty:
		return "empty"
	case StateReady:
		return "ready"
	case StateCorrupt:
		return "corrupt"
	default:
		return "unknown"
	}
}

// Document is the persisted shape of a database: table name to the
// ordered values of its rows. Row ids are not part of the document; they
// are reassigned positionally on load.
type Document map[string][]any

// Store defines the persistence contract for a database document.
// A Store belongs to exactly one DB at a time; implementations are not
// required to be safe for concurrent use.
type Store interface {
	// Load parses the backing resource into a Document.
	// A missing or empty resource yields an empty Document.
	Load() (Document, error)

	// Save replaces the backing resource with the serialized Document.
	Save(doc Document) error

	// Close releases the backing resource.
	Close() error
}
