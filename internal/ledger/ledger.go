package ledger

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"sync"

	"inventory-service/internal/model"
)

var (
	ErrMissingRequiredField = errors.New("name and sku are required")
	ErrInsufficientStock    = errors.New("insufficient stock")
	ErrItemNotFound         = errors.New("item not found")
)

// Ledger owns the item catalog and the append-only transaction log. All
// quantity changes go through RecordMovement, which enforces the one
// invariant: quantity on hand never goes negative after a committed
// mutation. Readers receive snapshots, never references into the
// underlying slices.
type Ledger struct {
	mu           sync.Mutex
	items        []model.InventoryItem
	transactions []model.Transaction
	nextItemID   int
}

// New returns an empty ledger. Item IDs start at 1.
func New() *Ledger {
	return &Ledger{nextItemID: 1}
}

// parseQuantity converts user-entered quantity text to an integer.
// Unparsable input deliberately falls back to zero instead of failing:
// malformed quantity never blocks item creation or movement entry.
func parseQuantity(text string) int {
	qty, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0
	}
	return qty
}

// AddItem validates and appends a new catalog entry and returns its assigned
// ID. Name and SKU must be non-empty after trimming; the other fields are
// free-form. The quantity text is parsed leniently (see parseQuantity).
// Failed attempts do not consume an ID.
func (l *Ledger) AddItem(name, sku, unit, location, quantityText string) (int, error) {
	name = strings.TrimSpace(name)
	sku = strings.TrimSpace(sku)
	if name == "" || sku == "" {
		return 0, ErrMissingRequiredField
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	item := model.InventoryItem{
		ID:             l.nextItemID,
		Name:           name,
		SKU:            sku,
		Unit:           strings.TrimSpace(unit),
		Location:       strings.TrimSpace(location),
		QuantityOnHand: parseQuantity(quantityText),
	}
	l.nextItemID++
	l.items = append(l.items, item)
	return item.ID, nil
}

// RecordMovement applies a stock movement to the item at itemIndex and logs
// it. Receipts add the parsed quantity, shipments subtract it. If the
// resulting quantity on hand would be negative the movement fails with
// ErrInsufficientStock and neither the item nor the log is touched; on
// success both mutations commit together. Zero-quantity movements are
// recorded as ordinary transactions.
func (l *Ledger) RecordMovement(itemIndex int, quantityText, note string, kind model.MovementKind, date model.Date) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if itemIndex < 0 || itemIndex >= len(l.items) {
		return ErrItemNotFound
	}
	item := &l.items[itemIndex]

	qty := parseQuantity(quantityText)
	delta := qty
	if kind == model.MovementShipment {
		delta = -qty
	}

	newQoh := item.QuantityOnHand + delta
	if newQoh < 0 {
		return ErrInsufficientStock
	}

	item.QuantityOnHand = newQoh
	l.transactions = append(l.transactions, model.Transaction{
		Date:     date,
		ItemID:   item.ID,
		Quantity: qty,
		Note:     note,
		Kind:     kind,
	})
	return nil
}

// ListItems returns a snapshot of the catalog filtered by a case-insensitive
// substring match against name, SKU or location (empty filter matches
// everything), sorted by name ascending with ID as the tie-break.
func (l *Ledger) ListItems(filter string) []model.InventoryItem {
	l.mu.Lock()
	defer l.mu.Unlock()

	needle := strings.ToLower(filter)
	rows := make([]model.InventoryItem, 0, len(l.items))
	for _, item := range l.items {
		if needle == "" ||
			strings.Contains(strings.ToLower(item.Name), needle) ||
			strings.Contains(strings.ToLower(item.SKU), needle) ||
			strings.Contains(strings.ToLower(item.Location), needle) {
			rows = append(rows, item)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Name != rows[j].Name {
			return rows[i].Name < rows[j].Name
		}
		return rows[i].ID < rows[j].ID
	})
	return rows
}

// RecentTransactions returns up to limit transactions, most recent first.
// Recency is strict reverse insertion order of the log, not calendar order
// of the user-chosen dates.
func (l *Ledger) RecentTransactions(limit int) []model.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()

	if limit > len(l.transactions) {
		limit = len(l.transactions)
	}
	if limit < 0 {
		limit = 0
	}
	out := make([]model.Transaction, 0, limit)
	for i := len(l.transactions) - 1; i >= len(l.transactions)-limit; i-- {
		out = append(out, l.transactions[i])
	}
	return out
}

// Item returns a copy of the item with the given ID.
func (l *Ledger) Item(id int) (model.InventoryItem, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, item := range l.items {
		if item.ID == id {
			return item, true
		}
	}
	return model.InventoryItem{}, false
}

// IndexOf returns the catalog position of the item with the given ID, for
// callers addressing items by ID rather than by position.
func (l *Ledger) IndexOf(id int) (int, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, item := range l.items {
		if item.ID == id {
			return i, true
		}
	}
	return 0, false
}

// Len returns the number of items in the catalog.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// TransactionCount returns the length of the transaction log.
func (l *Ledger) TransactionCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.transactions)
}
