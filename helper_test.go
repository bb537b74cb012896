package boutique

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/sdiallo/boutique/date"
)

// XOF is a helper for tests to create money from a const.
func XOF(v float64) Money { return M(v) }

var tsCounter int64

// testSale builds a sale entry with a deterministic same-day ordering.
func testSale(day string, amount float64, productID string, qty int) Entry {
	tsCounter++
	return Entry{
		ID:        uniqueID("sale"),
		Date:      date.MustParse(day),
		Timestamp: date.MustParse(day).UnixMilli() + tsCounter,
		Type:      Sale,
		Amount:    XOF(amount),
		ProductID: productID,
		Quantity:  qty,
	}
}

// testExpense builds an expense entry in any category but Stock.
func testExpense(day string, category Category, amount float64) Entry {
	tsCounter++
	return Entry{
		ID:        uniqueID("expense"),
		Date:      date.MustParse(day),
		Timestamp: date.MustParse(day).UnixMilli() + tsCounter,
		Type:      Expense,
		Amount:    XOF(amount),
		Category:  category,
	}
}

// testStockExpense builds a stocking-in expense for a product.
func testStockExpense(day string, amount float64, productID string, qty int) Entry {
	e := testExpense(day, CategoryStock, amount)
	e.ProductID = productID
	e.Quantity = qty
	return e
}

func uniqueID(prefix string) string {
	tsCounter++
	return fmt.Sprintf("%s-%d", prefix, tsCounter)
}

// newTestManager returns a manager persisting to a temporary file.
func newTestManager(t *testing.T) *Manager {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "boutique.json"), nil)
	return NewManager(store, nil)
}

// mustAdd fails the test on any add error.
func mustAdd(t *testing.T, m *Manager, entries ...Entry) {
	t.Helper()
	for _, e := range entries {
		if err := m.Add(e); err != nil {
			t.Fatalf("Add(%s): %v", e.ID, err)
		}
	}
}

// stockByID fetches a stock item from the manager's current document.
func stockByID(t *testing.T, m *Manager, id string) StockItem {
	t.Helper()
	it, ok := FindStock(m.store.Load().Stock, id)
	if !ok {
		t.Fatalf("stock item %q not found", id)
	}
	return it
}
