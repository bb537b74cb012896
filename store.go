package boutique

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Store persists the document to a single JSON file. The whole document is
// always read and written as one unit.
//
// Load never fails its caller: any unrecoverable state degrades to the
// default empty document with a diagnostic, so the shop can keep working.
type Store struct {
	path string
	log  *zap.Logger
}

// NewStore returns a store persisting to path. A nil logger is replaced by a
// no-op one.
func NewStore(path string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{path: path, log: log}
}

// Path returns the location of the persisted document.
func (s *Store) Path() string { return s.path }

// Load reads, migrates and validates the persisted document. An absent,
// unparsable or invalid document yields the default empty document; data is
// never silently half-applied.
func (s *Store) Load() *Document {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultDocument()
	}
	if err != nil {
		s.log.Warn("could not read document, starting from empty",
			zap.String("path", s.path), zap.Error(err))
		return DefaultDocument()
	}

	doc, err := DecodeDocument(data)
	if err != nil {
		s.log.Warn("could not decode document, starting from empty",
			zap.String("path", s.path), zap.Error(err))
		return DefaultDocument()
	}
	if err := doc.Validate(); err != nil {
		s.log.Warn("document failed validation, starting from empty",
			zap.String("path", s.path), zap.Error(err))
		return DefaultDocument()
	}
	sortEntries(doc.Entries)
	return doc
}

// Save validates the document and persists it. An invalid document is
// refused, protecting the file from a partially-constructed object.
func (s *Store) Save(doc *Document) error {
	if err := doc.Validate(); err != nil {
		s.log.Warn("refusing to save invalid document", zap.Error(err))
		return fmt.Errorf("refusing to save invalid document: %w", err)
	}
	sortEntries(doc.Entries)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode document: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for %q: %w", s.path, err)
		}
	}
	if err := os.WriteFile(s.path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("could not write document %q: %w", s.path, err)
	}
	return nil
}

// Clear removes the persisted document entirely, for a full reset.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
