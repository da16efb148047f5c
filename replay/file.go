package replay

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"regexp"
)

// FileStore persists one JSON file per property under Dir, named after a
// filesystem-safe rendering of the property name — the on-disk layout
// SPEC_FULL.md calls for so a failing case survives across `go test`
// invocations the way a halcheck counterexample file would.
type FileStore struct {
	Dir string
}

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9_.-]+`)

func (f FileStore) pathFor(property string) string {
	name := unsafeFileChars.ReplaceAllString(property, "_")
	return filepath.Join(f.Dir, name+".json")
}

// Read implements Store. A missing file is not an error: it just means no
// counterexample has been recorded yet for this property.
func (f FileStore) Read(property string) (Record, bool, error) {
	data, err := os.ReadFile(f.pathFor(property))
	if errors.Is(err, os.ErrNotExist) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, err
	}
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, false, err
	}
	return r, true, nil
}

// Write implements Store, creating Dir if it doesn't already exist.
func (f FileStore) Write(record Record) error {
	if err := os.MkdirAll(f.Dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.pathFor(record.Property), data, 0o644)
}
