package boutique

import (
	"errors"
	"fmt"
)

// Validate checks the whole document field by field. It returns an error
// joining every violation found, so a diagnostic shows everything wrong at
// once instead of the first problem only.
func (d *Document) Validate() error {
	if d == nil {
		return errors.New("document is nil")
	}
	var errs error
	if d.SchemaVersion != CurrentSchemaVersion {
		errs = errors.Join(errs, fmt.Errorf("unsupported schema version %d, want %d", d.SchemaVersion, CurrentSchemaVersion))
	}
	if d.Settings.DailyTarget.IsNegative() {
		errs = errors.Join(errs, errors.New("settings: daily target cannot be negative"))
	}
	seen := make(map[string]bool, len(d.Entries))
	for i, e := range d.Entries {
		if err := e.Validate(); err != nil {
			errs = errors.Join(errs, fmt.Errorf("entry %d: %w", i, err))
		}
		if e.ID != "" && seen[e.ID] {
			errs = errors.Join(errs, fmt.Errorf("entry %d: duplicate id %q", i, e.ID))
		}
		seen[e.ID] = true
	}
	for i, it := range d.Stock {
		if err := it.Validate(); err != nil {
			errs = errors.Join(errs, fmt.Errorf("stock item %d: %w", i, err))
		}
	}
	return errs
}

// Validate checks a single entry for correctness.
func (e Entry) Validate() error {
	var errs error
	if e.ID == "" {
		errs = errors.Join(errs, errors.New("missing id"))
	}
	if e.Date.IsZero() {
		errs = errors.Join(errs, errors.New("missing date"))
	}
	if e.Timestamp <= 0 {
		errs = errors.Join(errs, errors.New("missing timestamp"))
	}
	if e.Amount.IsNegative() {
		errs = errors.Join(errs, errors.New("amount cannot be negative"))
	}
	switch e.Type {
	case Sale:
		if e.ProductID == "" {
			errs = errors.Join(errs, errors.New("sale must reference a product"))
		}
		if e.Quantity <= 0 {
			errs = errors.Join(errs, errors.New("sale quantity must be positive"))
		}
		if e.Category != "" {
			errs = errors.Join(errs, errors.New("sale cannot carry an expense category"))
		}
	case Expense:
		if _, err := ParseCategory(string(e.Category)); err != nil {
			errs = errors.Join(errs, err)
		}
		if e.Category == CategoryStock {
			if e.Quantity <= 0 {
				errs = errors.Join(errs, errors.New("stock expense quantity must be positive"))
			}
		} else if e.ProductID != "" || e.Quantity != 0 {
			errs = errors.Join(errs, fmt.Errorf("category %q cannot carry a product reference", e.Category))
		}
	default:
		errs = errors.Join(errs, fmt.Errorf("unknown entry type: %q", e.Type))
	}
	return errs
}

// Validate checks a single stock item for correctness.
func (it StockItem) Validate() error {
	var errs error
	if it.ID == "" {
		errs = errors.Join(errs, errors.New("missing id"))
	}
	if it.Quantity < 0 {
		errs = errors.Join(errs, errors.New("quantity cannot be negative"))
	}
	if it.Threshold < 0 {
		errs = errors.Join(errs, errors.New("threshold cannot be negative"))
	}
	if it.TotalSold < 0 {
		errs = errors.Join(errs, errors.New("totalSold cannot be negative"))
	}
	if it.UnitPrice.IsNegative() {
		errs = errors.Join(errs, errors.New("unitPrice cannot be negative"))
	}
	return errs
}
