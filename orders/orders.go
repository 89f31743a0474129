// Package orders holds the pending order queue and per-chef order assignment.
package orders

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"brigade/kitchen"
)

// ErrUnknownRecipe rejects a submission for a dish the catalog does not know.
// The submitter sees the rejection; no state is mutated.
var ErrUnknownRecipe = errors.New("orders: unknown recipe")

// Status is an order's lifecycle stage.
type Status uint8

const (
	StatusPending Status = iota
	StatusClaimed
	StatusPlated
	StatusCompleted
	StatusCancelled
)

// String returns the lowercase status name.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusClaimed:
		return "claimed"
	case StatusPlated:
		return "plated"
	case StatusCompleted:
		return "completed"
	case StatusCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Order is a single dish request. Owned by at most one chef at a time.
type Order struct {
	ID       uuid.UUID
	Dish     string
	Required []string

	Status    Status
	ClaimedBy int // Chef id; -1 while unclaimed
	Prepared  []string

	CreatedAt float64 // Sim seconds
	ClaimedAt float64
}

// CompletionRecord is the history entry for a delivered order.
type CompletionRecord struct {
	OrderID     uuid.UUID
	Dish        string
	ChefID      int
	Ingredients int
	CompletedAt float64
	Duration    float64 // Claim to delivery, in sim seconds
}

// Book tracks pending orders (FIFO), per-chef claims, and completion history.
type Book struct {
	catalog *kitchen.Catalog
	pending []*Order
	active  map[int]*Order
	history []CompletionRecord
}

// NewBook creates an empty order book backed by the given catalog.
func NewBook(catalog *kitchen.Catalog) *Book {
	return &Book{
		catalog: catalog,
		active:  make(map[int]*Order),
	}
}

// Submit validates a dish name against the catalog and appends a pending
// order. The name is lower-cased and trimmed first. Returns
// ErrUnknownRecipe without mutating anything for unknown dishes.
func (b *Book) Submit(dish string, now float64) (*Order, error) {
	dish = strings.ToLower(strings.TrimSpace(dish))
	required, ok := b.catalog.Get(dish)
	if !ok {
		return nil, ErrUnknownRecipe
	}

	o := &Order{
		ID:        uuid.New(),
		Dish:      dish,
		Required:  required,
		Status:    StatusPending,
		ClaimedBy: -1,
		CreatedAt: now,
	}
	b.pending = append(b.pending, o)
	return o, nil
}

// AssignNext gives the head of the pending queue to a chef. Idempotent:
// a chef that already owns an order gets that order back and the queue
// is untouched. Returns nil when the queue is empty — a normal case,
// not an error.
func (b *Book) AssignNext(chefID int, now float64) *Order {
	if o, ok := b.active[chefID]; ok {
		return o
	}
	if len(b.pending) == 0 {
		return nil
	}

	o := b.pending[0]
	b.pending = b.pending[1:]
	o.Status = StatusClaimed
	o.ClaimedBy = chefID
	o.ClaimedAt = now
	b.active[chefID] = o
	return o
}

// Owned returns the chef's claimed order, or nil.
func (b *Book) Owned(chefID int) *Order {
	return b.active[chefID]
}

// AddIngredient appends a prepared ingredient to the chef's order iff
// the recipe still needs it. Duplicate or irrelevant ingredients are
// rejected and effectively discarded — no refund.
func (b *Book) AddIngredient(chefID int, ingredientType string) bool {
	o, ok := b.active[chefID]
	if !ok {
		return false
	}
	if countOf(o.Prepared, ingredientType) >= countOf(o.Required, ingredientType) {
		return false
	}
	o.Prepared = append(o.Prepared, ingredientType)
	return true
}

// NextNeeded returns the first required ingredient not yet prepared,
// walking the recipe in list order. ok is false when nothing is missing
// or the chef owns no order.
func (b *Book) NextNeeded(chefID int) (string, bool) {
	o, ok := b.active[chefID]
	if !ok {
		return "", false
	}
	for _, t := range o.Required {
		if countOf(o.Prepared, t) < countOf(o.Required, t) {
			return t, true
		}
	}
	return "", false
}

// IsReady reports whether the prepared multiset equals the required
// multiset. Preparation order is irrelevant.
func (b *Book) IsReady(chefID int) bool {
	o, ok := b.active[chefID]
	if !ok {
		return false
	}
	if len(o.Prepared) != len(o.Required) {
		return false
	}
	for _, t := range o.Required {
		if countOf(o.Prepared, t) != countOf(o.Required, t) {
			return false
		}
	}
	return true
}

// SetPlated marks the chef's order plated. The caller must have checked
// IsReady; calling it early is a logic error and is refused.
func (b *Book) SetPlated(chefID int) bool {
	if !b.IsReady(chefID) {
		return false
	}
	b.active[chefID].Status = StatusPlated
	return true
}

// Complete delivers the chef's plated order: it moves to history and
// the chef is freed to claim again. Returns nil if the chef owns no
// order or it is not plated yet.
func (b *Book) Complete(chefID int, now float64) *CompletionRecord {
	o, ok := b.active[chefID]
	if !ok || o.Status != StatusPlated {
		return nil
	}

	delete(b.active, chefID)
	o.Status = StatusCompleted

	rec := CompletionRecord{
		OrderID:     o.ID,
		Dish:        o.Dish,
		ChefID:      chefID,
		Ingredients: len(o.Required),
		CompletedAt: now,
		Duration:    now - o.ClaimedAt,
	}
	b.history = append(b.history, rec)
	return &rec
}

// Cancel force-removes the chef's order without scoring.
func (b *Book) Cancel(chefID int) bool {
	o, ok := b.active[chefID]
	if !ok {
		return false
	}
	o.Status = StatusCancelled
	delete(b.active, chefID)
	return true
}

// CancelPending drops the oldest pending order, if any.
func (b *Book) CancelPending() bool {
	if len(b.pending) == 0 {
		return false
	}
	b.pending[0].Status = StatusCancelled
	b.pending = b.pending[1:]
	return true
}

// PendingCount returns the number of unclaimed orders.
func (b *Book) PendingCount() int {
	return len(b.pending)
}

// ActiveCount returns the number of claimed, undelivered orders.
func (b *Book) ActiveCount() int {
	return len(b.active)
}

// History returns the completion records in delivery order.
func (b *Book) History() []CompletionRecord {
	return b.history
}

func countOf(list []string, t string) int {
	n := 0
	for _, v := range list {
		if v == t {
			n++
		}
	}
	return n
}
