package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/maloquacious/flatdb/internal/db"
	"github.com/maloquacious/flatdb/internal/logger"
	"github.com/maloquacious/flatdb/internal/store/jsonfile"
)

// openDB connects to the document named by --db, creating it when absent.
func openDB(opts *RootOptions) (*db.DB, error) {
	st, err := jsonfile.Open(opts.DB)
	if err != nil {
		return nil, err
	}
	d, err := db.Open(st)
	if err != nil {
		st.Close()
		return nil, err
	}
	logger.Default.Debug("opened database", "path", opts.DB)
	return d, nil
}

// parseValue decodes arg as JSON, falling back to the raw string. This
// keeps the store schema-less from the shell: numbers, booleans, arrays
// and objects round-trip, anything else is stored verbatim.
func parseValue(arg string) any {
	var v any
	if err := json.Unmarshal([]byte(arg), &v); err == nil {
		return v
	}
	return arg
}

// parseID parses a row id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid row id %q", arg)
	}
	return id, nil
}
