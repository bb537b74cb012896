package boutique

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// This file handles the import/export format: a single human-readable JSON
// object carrying a version tag, the stock list and the entry list, easy to
// move between devices by hand.

// ExportVersion is the only payload version this tool reads and writes.
const ExportVersion = 1

// ExportPayload is the import/export envelope.
type ExportPayload struct {
	Version    int         `json:"version"`
	ExportedAt int64       `json:"exportedAt"` // epoch milliseconds
	Stock      []StockItem `json:"stock"`
	Entries    []Entry     `json:"entries"`
}

// Export writes the document's stock and entries to w in the import/export
// format, stamped with the given instant.
func Export(w io.Writer, doc *Document, now time.Time) error {
	payload := ExportPayload{
		Version:    ExportVersion,
		ExportedAt: now.UnixMilli(),
		Stock:      doc.Stock,
		Entries:    doc.Entries,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("could not write export payload: %w", err)
	}
	return nil
}

// Import parses and validates an import/export payload. Any version other
// than the current one is rejected, and every entry is checked field by
// field before anything is accepted.
func Import(r io.Reader) (*ExportPayload, error) {
	var payload ExportPayload
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("could not parse import payload: %w", err)
	}
	if payload.Version != ExportVersion {
		return nil, fmt.Errorf("unsupported export version %d, want %d", payload.Version, ExportVersion)
	}
	for i, e := range payload.Entries {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("import entry %d: %w", i, err)
		}
	}
	for i, it := range payload.Stock {
		if err := it.Validate(); err != nil {
			return nil, fmt.Errorf("import stock item %d: %w", i, err)
		}
	}
	if payload.Entries == nil {
		payload.Entries = []Entry{}
	}
	if payload.Stock == nil {
		payload.Stock = []StockItem{}
	}
	return &payload, nil
}

// Restore replaces the document's entries and stock with an imported
// payload, keeping the settings, and persists the result.
func (m *Manager) Restore(payload *ExportPayload) error {
	doc := m.store.Load()
	doc.Entries = payload.Entries
	doc.Stock = payload.Stock
	sortEntries(doc.Entries)
	return m.store.Save(doc)
}
