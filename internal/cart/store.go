package cart

import (
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Line is one product inside a user's cart. Price is frozen when the
// line is added so checkout charges what the buyer saw.
type Line struct {
	SupplyListItemID *uuid.UUID      `json:"supply_list_item_id,omitempty"`
	ProductID        uuid.UUID       `json:"product_id"`
	Name             string          `json:"name"`
	Price            decimal.Decimal `json:"price"`
	ImageURL         *string         `json:"image_url,omitempty"`
	Category         *string         `json:"category,omitempty"`
	SelectedQuantity int             `json:"selected_quantity"`
}

// Snapshot is a point-in-time copy of a cart along with its derived
// totals. Totals are recomputed on every read, never cached.
type Snapshot struct {
	Lines      []Line          `json:"lines"`
	ItemCount  int             `json:"item_count"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// Store keeps one cart per user in memory. All operations are total:
// invalid input is normalized rather than rejected.
type Store struct {
	mu    sync.Mutex
	carts map[uuid.UUID][]Line
}

// NewStore constructs an empty cart store.
func NewStore() *Store {
	return &Store{carts: make(map[uuid.UUID][]Line)}
}

// Add merges the line into the user's cart. An existing line for the
// same product has its quantity incremented; otherwise the line is
// appended. Quantities below 1 are normalized to 1.
func (s *Store) Add(userID uuid.UUID, line Line) Snapshot {
	if line.SelectedQuantity < 1 {
		line.SelectedQuantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	for i := range lines {
		if lines[i].ProductID == line.ProductID {
			lines[i].SelectedQuantity += line.SelectedQuantity
			s.carts[userID] = lines
			return snapshotLocked(lines)
		}
	}
	lines = append(lines, line)
	s.carts[userID] = lines
	return snapshotLocked(lines)
}

// Remove deletes the line for the product id. Removing an absent
// product is a no-op.
func (s *Store) Remove(userID, productID uuid.UUID) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	for i := range lines {
		if lines[i].ProductID == productID {
			lines = append(lines[:i], lines[i+1:]...)
			break
		}
	}
	if len(lines) == 0 {
		delete(s.carts, userID)
	} else {
		s.carts[userID] = lines
	}
	return snapshotLocked(lines)
}

// UpdateQuantity sets the line's quantity to an absolute value.
// Quantities at or below zero remove the line entirely.
func (s *Store) UpdateQuantity(userID, productID uuid.UUID, quantity int) Snapshot {
	if quantity <= 0 {
		return s.Remove(userID, productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].SelectedQuantity = quantity
			s.carts[userID] = lines
			break
		}
	}
	return snapshotLocked(lines)
}

// Clear empties the user's cart.
func (s *Store) Clear(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

// Snapshot returns a copy of the user's cart with derived totals.
func (s *Store) Snapshot(userID uuid.UUID) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshotLocked(s.carts[userID])
}

func snapshotLocked(lines []Line) Snapshot {
	copied := make([]Line, len(lines))
	copy(copied, lines)

	snap := Snapshot{
		Lines:      copied,
		TotalPrice: decimal.Zero,
	}
	for _, line := range copied {
		snap.ItemCount += line.SelectedQuantity
		snap.TotalPrice = snap.TotalPrice.Add(line.Price.Mul(decimal.NewFromInt(int64(line.SelectedQuantity))))
	}
	return snap
}

// ParseQuantity coerces raw user input into a usable quantity.
// Anything that does not parse as a positive integer falls back to 1,
// matching the storefront's historical behavior.
func ParseQuantity(raw string) int {
	trimmed := strings.TrimSpace(raw)
	qty, err := strconv.Atoi(trimmed)
	if err != nil || qty < 1 {
		return 1
	}
	return qty
}
