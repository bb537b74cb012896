// Package boutique implements the ledger-stock consistency engine and
// analytics pipeline of a single-user shop bookkeeping tool: an editable
// history of sales and expenses, a derived inventory snapshot kept
// consistent with it, and deterministic business-health analytics.
package boutique

// CurrentSchemaVersion tags the persisted document shape. Documents without
// the tag use the legacy flat sales/expenses shape and are migrated on load.
const CurrentSchemaVersion = 2

// Settings holds the shop identity and the optional daily profit target.
// A zero DailyTarget means no target is set.
type Settings struct {
	Name        string `json:"name"`
	DailyTarget Money  `json:"dailyTarget,omitempty"`
}

// Document is the aggregate root: the entire persisted state, loaded and
// saved as one unit, never partially.
type Document struct {
	SchemaVersion int         `json:"schemaVersion"`
	Settings      Settings    `json:"settings"`
	Entries       []Entry     `json:"entries"`
	Stock         []StockItem `json:"stock"`
}

// DefaultDocument returns the empty document used at first run and whenever
// the persisted value cannot be recovered.
func DefaultDocument() *Document {
	return &Document{
		SchemaVersion: CurrentSchemaVersion,
		Entries:       []Entry{},
		Stock:         []StockItem{},
	}
}
