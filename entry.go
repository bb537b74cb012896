package boutique

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sdiallo/boutique/date"
)

// EntryType discriminates the two kinds of financial events.
type EntryType string

const (
	Sale    EntryType = "SALE"
	Expense EntryType = "EXPENSE"
)

// ParseEntryType parses a string into an EntryType.
func ParseEntryType(s string) (EntryType, error) {
	switch EntryType(s) {
	case Sale:
		return Sale, nil
	case Expense:
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown entry type: %q", s)
	}
}

// Category is an expense category. The set is fixed; the French labels come
// from the shops this tool is written for.
type Category string

const (
	CategoryStock     Category = "Stock"
	CategoryTransport Category = "Transport"
	CategoryLoyer     Category = "Loyer"
	CategorySalaire   Category = "Salaire"
	CategoryInternet  Category = "Internet"
	CategoryAutre     Category = "Autre"
)

// Categories lists all expense categories in canonical order.
var Categories = []Category{
	CategoryStock,
	CategoryTransport,
	CategoryLoyer,
	CategorySalaire,
	CategoryInternet,
	CategoryAutre,
}

// ParseCategory parses a string into a Category.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if Category(s) == c {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown expense category: %q", s)
}

// Entry represents one recorded financial event, either a sale or an expense.
//
// Entries are the sole source of truth for historical totals; stock item
// aggregates are only snapshots of the present state.
type Entry struct {
	ID        string    `json:"id"`
	Date      date.Date `json:"date"`
	Timestamp int64     `json:"timestamp"` // creation instant in epoch milliseconds, orders entries within a day
	Type      EntryType `json:"type"`
	Amount    Money     `json:"amount"`
	ProductID string    `json:"productId,omitempty"` // sales, and expenses in category Stock
	Quantity  int       `json:"quantity,omitempty"`  // units sold, or units stocked in
	Category  Category  `json:"category,omitempty"`  // expenses only
}

// NewSale creates a sale entry of qty units of a product for a total amount.
func NewSale(day date.Date, productID string, qty int, amount Money) Entry {
	return Entry{
		ID:        uuid.NewString(),
		Date:      day,
		Timestamp: time.Now().UnixMilli(),
		Type:      Sale,
		Amount:    amount,
		ProductID: productID,
		Quantity:  qty,
	}
}

// NewExpense creates an expense entry. productID and qty are only meaningful
// for the Stock category and must be zero otherwise.
func NewExpense(day date.Date, category Category, amount Money, productID string, qty int) Entry {
	e := Entry{
		ID:        uuid.NewString(),
		Date:      day,
		Timestamp: time.Now().UnixMilli(),
		Type:      Expense,
		Amount:    amount,
		Category:  category,
	}
	if category == CategoryStock {
		e.ProductID = productID
		e.Quantity = qty
	}
	return e
}

// sortEntries orders entries chronologically by day, then by creation instant
// within the same day.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date.Before(entries[j].Date)
		}
		return entries[i].Timestamp < entries[j].Timestamp
	})
}
