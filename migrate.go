package boutique

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/sdiallo/boutique/date"
)

// LegacyProductID is the sentinel product reference carried by sale entries
// synthesized from the legacy document shape. It never resolves to a stock
// item, so migrated sales have no inventory effect.
const LegacyProductID = "legacy"

// legacyEntry is the old persisted entry shape: one record per day with flat
// numeric sales and expenses totals instead of typed entries.
type legacyEntry struct {
	ID       string    `json:"id"`
	Date     date.Date `json:"date"`
	Sales    float64   `json:"sales"`
	Expenses float64   `json:"expenses"`
}

// legacyDocument is the schema-version-1 document shape.
type legacyDocument struct {
	Settings Settings      `json:"settings"`
	Entries  []legacyEntry `json:"entries"`
	Stock    []StockItem   `json:"stock"`
}

// DecodeDocument parses raw persisted bytes into a current-shape document,
// sniffing the schema version and walking the migration chain when needed.
// The returned document is not yet validated.
func DecodeDocument(data []byte) (*Document, error) {
	switch v := sniffSchemaVersion(data); v {
	case 1:
		var legacy legacyDocument
		if err := json.Unmarshal(data, &legacy); err != nil {
			return nil, fmt.Errorf("could not parse legacy document: %w", err)
		}
		return migrateV1(&legacy), nil
	case CurrentSchemaVersion:
		var doc Document
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("could not parse document: %w", err)
		}
		if doc.Entries == nil {
			doc.Entries = []Entry{}
		}
		if doc.Stock == nil {
			doc.Stock = []StockItem{}
		}
		// Current-shape documents sniffed by their typed entries may predate
		// the version tag.
		doc.SchemaVersion = CurrentSchemaVersion
		return &doc, nil
	default:
		return nil, fmt.Errorf("unsupported schema version %d", v)
	}
}

// sniffSchemaVersion probes the raw JSON for an explicit schemaVersion tag.
// Documents written before the tag existed are recognized by the flat
// sales/expenses numeric fields on their entries.
func sniffSchemaVersion(data []byte) int {
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return 0
	}
	if jval, err := jsonpath.Get("$.schemaVersion", jobj); err == nil {
		if v, ok := jval.(float64); ok {
			return int(v)
		}
	}
	// No tag: classify by entry shape. A legacy entry carries flat numeric
	// sales/expenses fields; a typed entry carries a "type" discriminator.
	if jval, err := jsonpath.Get("$.entries[0].sales", jobj); err == nil {
		if _, ok := jval.(float64); ok {
			return 1
		}
	}
	if jval, err := jsonpath.Get("$.entries[0].expenses", jobj); err == nil {
		if _, ok := jval.(float64); ok {
			return 1
		}
	}
	// Typed entries written before the tag existed must never go through the
	// legacy migration, which would drop them.
	if jval, err := jsonpath.Get("$.entries[0].type", jobj); err == nil {
		if _, ok := jval.(string); ok {
			return CurrentSchemaVersion
		}
	}
	// An untagged document without entries (e.g. first runs of old versions)
	// migrates through the legacy chain, which is a no-op for it.
	return 1
}

// migrateV1 converts a legacy document into the current shape. Each legacy
// day record becomes at most one synthesized sale and one synthesized
// expense in category Autre, preserving the sales and expenses totals
// exactly. Stock items missing totalSold keep the zero default.
func migrateV1(legacy *legacyDocument) *Document {
	doc := &Document{
		SchemaVersion: CurrentSchemaVersion,
		Settings:      legacy.Settings,
		Entries:       make([]Entry, 0, 2*len(legacy.Entries)),
		Stock:         legacy.Stock,
	}
	if doc.Stock == nil {
		doc.Stock = []StockItem{}
	}
	for i, le := range legacy.Entries {
		// Synthesized entries get deterministic ids derived from the legacy
		// record so re-running the migration cannot duplicate them.
		id := le.ID
		if id == "" {
			id = fmt.Sprintf("legacy-%s-%d", le.Date, i)
		}
		ts := le.Date.UnixMilli()
		if le.Sales > 0 {
			doc.Entries = append(doc.Entries, Entry{
				ID:        id + "-sale",
				Date:      le.Date,
				Timestamp: ts,
				Type:      Sale,
				Amount:    M(le.Sales),
				ProductID: LegacyProductID,
				Quantity:  1,
			})
		}
		if le.Expenses > 0 {
			doc.Entries = append(doc.Entries, Entry{
				ID:        id + "-expense",
				Date:      le.Date,
				Timestamp: ts + 1,
				Type:      Expense,
				Amount:    M(le.Expenses),
				Category:  CategoryAutre,
			})
		}
	}
	sortEntries(doc.Entries)
	return doc
}
