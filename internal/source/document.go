// Package source loads the semi-structured JSON document exported by the
// dashboard and presents it as loosely-typed records ready for migration.
package source

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/Veraticus/hera-migrate/internal/common"
)

// Record is one loosely-typed source row. Field values are whatever the
// JSON decoder produced: string, float64, bool, nil, or nested data.
type Record map[string]any

// Has reports whether the key is present, even with a null value.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// Value returns the raw value for key, or nil when absent.
func (r Record) Value(key string) any {
	return r[key]
}

// String returns the trimmed string value for key, or "" when the value
// is absent, null, or not a string.
func (r Record) String(key string) string {
	s, _ := r[key].(string)
	return strings.TrimSpace(s)
}

// StringOr returns the trimmed string value for key, falling back when
// the value is absent, null, empty, or not a string.
func (r Record) StringOr(key, fallback string) string {
	if s := r.String(key); s != "" {
		return s
	}
	return fallback
}

// Document is the parsed source tree: named sections, each holding a
// list of loosely-typed entries. A section that arrived as a bare JSON
// object is normalized to a one-element list, so every consumer sees a
// uniform shape.
type Document struct {
	sections map[string][]any
}

// Load reads and parses the document at path. A missing file or invalid
// JSON is fatal; there is nothing meaningful to migrate without it.
func Load(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", common.ErrDocumentNotFound, path)
		}
		return nil, fmt.Errorf("failed to read source document: %w", err)
	}
	return Parse(raw)
}

// Parse parses a source document from raw JSON bytes.
func Parse(raw []byte) (*Document, error) {
	var tree map[string]json.RawMessage
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrDocumentInvalid, err)
	}

	doc := &Document{sections: make(map[string][]any, len(tree))}
	for key, msg := range tree {
		var entries []any
		if err := json.Unmarshal(msg, &entries); err == nil {
			doc.sections[key] = entries
			continue
		}
		// Not a list; treat the value as a single entry.
		var entry any
		if err := json.Unmarshal(msg, &entry); err != nil {
			return nil, fmt.Errorf("%w: section %q: %v", common.ErrDocumentInvalid, key, err)
		}
		doc.sections[key] = []any{entry}
	}
	return doc, nil
}

// Section returns the entries under the named key. The second return is
// false when the key is absent from the document.
func (d *Document) Section(name string) ([]any, bool) {
	entries, ok := d.sections[name]
	return entries, ok
}

// Len reports the number of entries in a section, zero when absent.
func (d *Document) Len(name string) int {
	return len(d.sections[name])
}

// Sections lists the document's top-level keys in sorted order.
func (d *Document) Sections() []string {
	keys := make([]string, 0, len(d.sections))
	for key := range d.sections {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// AsRecord converts one section entry into a Record. Entries that are
// not JSON objects cannot be migrated.
func AsRecord(entry any) (Record, error) {
	m, ok := entry.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("record is not an object (got %T)", entry)
	}
	return Record(m), nil
}
