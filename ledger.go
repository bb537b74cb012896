package boutique

import (
	"errors"
	"fmt"

	"github.com/sdiallo/boutique/date"
	"go.uber.org/zap"
)

// ErrEntryNotFound is returned by Update, Delete and ByID for an unknown entry id.
var ErrEntryNotFound = errors.New("entry not found")

// Manager is the only component permitted to mutate entries and stock
// together, and the only place their consistency is enforced. Every mutation
// is one synchronous load, mutate, validate, save cycle.
type Manager struct {
	store *Store
	log   *zap.Logger
}

// NewManager returns a ledger manager over the given store.
func NewManager(store *Store, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{store: store, log: log}
}

// stockDelta is the inventory effect of one entry, expressed once and applied
// with a +1 or -1 sign so apply and revert share a single code path and
// cannot drift apart.
type stockDelta struct {
	productID string
	removed   int   // units leaving the inventory (negative when stocking in)
	sold      int   // units added to the cumulative sold counter
	revenue   Money // sale amount folded into the weighted-average unit price
}

// sideEffectOf returns the stock side-effect of an entry, or false for
// entries with no inventory impact.
func sideEffectOf(e Entry) (stockDelta, bool) {
	switch {
	case e.Type == Sale:
		return stockDelta{productID: e.ProductID, removed: e.Quantity, sold: e.Quantity, revenue: e.Amount}, true
	case e.Type == Expense && e.Category == CategoryStock:
		// Stocking in: units enter the inventory, no revenue, no sold count.
		return stockDelta{productID: e.ProductID, removed: -e.Quantity}, true
	default:
		return stockDelta{}, false
	}
}

// applyEffect applies the side-effect of an entry to the stock list with the
// given sign (+1 to apply, -1 to revert). A sale referencing a missing
// product is tolerated: the entry stays in the ledger for profit accuracy
// but produces no stock mutation.
func (m *Manager) applyEffect(stock []StockItem, e Entry, sign int) {
	d, ok := sideEffectOf(e)
	if !ok {
		return
	}
	for i, it := range stock {
		if it.ID != d.productID {
			continue
		}
		if sign > 0 && d.sold > 0 {
			// Applying a sale also recomputes the running weighted-average
			// price. Reverting does not restore the previous average: the
			// price is advisory and the drift is an accepted approximation.
			stock[i] = ApplyQuantityAndRevenue(it, d.sold, d.revenue)
			return
		}
		it.Quantity -= sign * d.removed
		if it.Quantity < 0 {
			it.Quantity = 0
		}
		it.TotalSold += sign * d.sold
		if it.TotalSold < 0 {
			it.TotalSold = 0
		}
		stock[i] = it
		return
	}
	m.log.Warn("entry references a missing product, no stock mutation",
		zap.String("entry", e.ID), zap.String("product", d.productID))
}

// Add appends the entry, applies its stock side-effect, and persists.
func (m *Manager) Add(e Entry) error {
	if err := e.Validate(); err != nil {
		return fmt.Errorf("invalid entry: %w", err)
	}
	doc := m.store.Load()
	if _, exists := findEntry(doc.Entries, e.ID); exists {
		return fmt.Errorf("entry %q already exists", e.ID)
	}
	doc.Entries = append(doc.Entries, e)
	m.applyEffect(doc.Stock, e, +1)
	sortEntries(doc.Entries)
	return m.store.Save(doc)
}

// Update replaces the entry with the same id. The old entry's stock
// side-effect is reverted before the new one is applied, so editing an entry
// never leaves residual stock impact from its previous values.
func (m *Manager) Update(e Entry) error {
	if err := e.Validate(); err != nil {
		return fmt.Errorf("invalid entry: %w", err)
	}
	doc := m.store.Load()
	i, exists := findEntry(doc.Entries, e.ID)
	if !exists {
		return fmt.Errorf("update %q: %w", e.ID, ErrEntryNotFound)
	}
	m.applyEffect(doc.Stock, doc.Entries[i], -1)
	doc.Entries[i] = e
	m.applyEffect(doc.Stock, e, +1)
	sortEntries(doc.Entries)
	return m.store.Save(doc)
}

// Delete reverts the entry's stock side-effect and removes it.
func (m *Manager) Delete(id string) error {
	doc := m.store.Load()
	i, exists := findEntry(doc.Entries, id)
	if !exists {
		return fmt.Errorf("delete %q: %w", id, ErrEntryNotFound)
	}
	m.applyEffect(doc.Stock, doc.Entries[i], -1)
	doc.Entries = append(doc.Entries[:i], doc.Entries[i+1:]...)
	return m.store.Save(doc)
}

// ByID returns the entry with the given id.
func (m *Manager) ByID(id string) (Entry, error) {
	doc := m.store.Load()
	if i, ok := findEntry(doc.Entries, id); ok {
		return doc.Entries[i], nil
	}
	return Entry{}, fmt.Errorf("entry %q: %w", id, ErrEntryNotFound)
}

// EntriesForDate returns all entries recorded on the given day, in order.
func (m *Manager) EntriesForDate(day date.Date) []Entry {
	doc := m.store.Load()
	var out []Entry
	for _, e := range doc.Entries {
		if e.Date == day {
			out = append(out, e)
		}
	}
	return out
}

// EntriesForMonth returns all entries of the calendar month containing day,
// both month boundaries included.
func (m *Manager) EntriesForMonth(day date.Date) []Entry {
	doc := m.store.Load()
	month := date.Month(day)
	var out []Entry
	for _, e := range doc.Entries {
		if month.Contains(e.Date) {
			out = append(out, e)
		}
	}
	return out
}

// DayTotals sums sale and expense amounts recorded on the given day.
func (m *Manager) DayTotals(day date.Date) (sales, expenses Money) {
	for _, e := range m.EntriesForDate(day) {
		switch e.Type {
		case Sale:
			sales = sales.Add(e.Amount)
		case Expense:
			expenses = expenses.Add(e.Amount)
		}
	}
	return sales, expenses
}

// AddProduct creates a stock item and persists it.
func (m *Manager) AddProduct(item StockItem) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("invalid stock item: %w", err)
	}
	doc := m.store.Load()
	if _, ok := FindStock(doc.Stock, item.ID); ok {
		return fmt.Errorf("product %q already exists", item.ID)
	}
	doc.Stock = append(doc.Stock, item)
	return m.store.Save(doc)
}

// DeleteProduct removes a stock item. Entries referencing it are kept: the
// ledger stays the source of truth for historical totals, and their future
// side-effects simply stop resolving.
func (m *Manager) DeleteProduct(id string) error {
	doc := m.store.Load()
	for i, it := range doc.Stock {
		if it.ID == id {
			doc.Stock = append(doc.Stock[:i], doc.Stock[i+1:]...)
			return m.store.Save(doc)
		}
	}
	return fmt.Errorf("product %q not found", id)
}

// UpdateSettings persists new shop settings.
func (m *Manager) UpdateSettings(settings Settings) error {
	doc := m.store.Load()
	doc.Settings = settings
	return m.store.Save(doc)
}

func findEntry(entries []Entry, id string) (int, bool) {
	for i, e := range entries {
		if e.ID == id {
			return i, true
		}
	}
	return 0, false
}
