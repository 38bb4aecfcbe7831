package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Document is a JSON flat-file store for a whole document of type T. Every
// read loads the full file; every write rewrites it in full. A per-document
// mutex serializes writes within this process, but nothing guards against a
// second process touching the same file: last write wins.
//
// Writes are plain truncate-and-write, not atomic renames, so a crash mid-save
// can corrupt the file. Load treats a corrupt or missing file as absent and
// degrades to the supplied default instead of propagating an error; Save
// failures surface to the caller.
type Document[T any] struct {
	path string
	mu   sync.Mutex
}

// NewDocument creates a store for the JSON document at path.
func NewDocument[T any](path string) *Document[T] {
	return &Document[T]{path: path}
}

// Path returns the backing file path.
func (d *Document[T]) Path() string {
	return d.path
}

// Load reads and decodes the document, returning def when the file does not
// exist or does not parse.
func (d *Document[T]) Load(def T) T {
	data, err := os.ReadFile(d.path)
	if err != nil {
		return def
	}

	var doc T
	if err := json.Unmarshal(data, &doc); err != nil {
		return def
	}
	return doc
}

// Save serializes doc and overwrites the file in full.
func (d *Document[T]) Save(doc T) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.write(doc)
}

// Mutate runs fn on the current document under the store's mutex and persists
// the result. When fn returns an error nothing is written. The document
// passed to fn is freshly loaded, so concurrent in-process mutations are
// serialized into a consistent read-modify-write sequence.
func (d *Document[T]) Mutate(def T, fn func(T) (T, error)) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc := d.loadLocked(def)
	updated, err := fn(doc)
	if err != nil {
		return err
	}
	return d.write(updated)
}

func (d *Document[T]) loadLocked(def T) T {
	data, err := os.ReadFile(d.path)
	if err != nil {
		return def
	}

	var doc T
	if err := json.Unmarshal(data, &doc); err != nil {
		return def
	}
	return doc
}

func (d *Document[T]) write(doc T) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", d.path, err)
	}

	if err := os.WriteFile(d.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", d.path, err)
	}
	return nil
}
