package cart

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func line(productID uuid.UUID, name string, price int64, qty int) Line {
	return Line{
		ProductID:        productID,
		Name:             name,
		Price:            decimal.NewFromInt(price),
		SelectedQuantity: qty,
	}
}

func TestAddMergesByProduct(t *testing.T) {
	store := NewStore()
	user := uuid.New()
	pencil := uuid.New()

	store.Add(user, line(pencil, "Pencil", 5, 2))
	snap := store.Add(user, line(pencil, "Pencil", 5, 3))

	if len(snap.Lines) != 1 {
		t.Fatalf("expected 1 line after merging, got %d", len(snap.Lines))
	}
	if snap.Lines[0].SelectedQuantity != 5 {
		t.Fatalf("expected quantity 5, got %d", snap.Lines[0].SelectedQuantity)
	}
}

func TestDerivedTotals(t *testing.T) {
	store := NewStore()
	user := uuid.New()

	store.Add(user, line(uuid.New(), "Pencil", 5, 3))
	snap := store.Add(user, line(uuid.New(), "Notebook", 20, 2))

	if snap.ItemCount != 5 {
		t.Fatalf("expected item count 5, got %d", snap.ItemCount)
	}
	if !snap.TotalPrice.Equal(decimal.NewFromInt(55)) {
		t.Fatalf("expected total 55, got %s", snap.TotalPrice)
	}
}

func TestRemoveIsNoopForAbsentProduct(t *testing.T) {
	store := NewStore()
	user := uuid.New()
	pencil := uuid.New()

	store.Add(user, line(pencil, "Pencil", 5, 1))
	snap := store.Remove(user, uuid.New())
	if len(snap.Lines) != 1 {
		t.Fatalf("expected untouched cart, got %d lines", len(snap.Lines))
	}

	snap = store.Remove(user, pencil)
	if len(snap.Lines) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(snap.Lines))
	}
}

func TestUpdateQuantitySetsAbsoluteValue(t *testing.T) {
	store := NewStore()
	user := uuid.New()
	pencil := uuid.New()

	store.Add(user, line(pencil, "Pencil", 5, 3))
	snap := store.UpdateQuantity(user, pencil, 7)
	if snap.Lines[0].SelectedQuantity != 7 {
		t.Fatalf("expected absolute set to 7, got %d", snap.Lines[0].SelectedQuantity)
	}
}

func TestUpdateQuantityDeletesOnZeroOrNegative(t *testing.T) {
	store := NewStore()
	user := uuid.New()
	pencil := uuid.New()

	store.Add(user, line(pencil, "Pencil", 5, 3))
	if snap := store.UpdateQuantity(user, pencil, 0); len(snap.Lines) != 0 {
		t.Fatal("expected zero quantity to remove the line")
	}

	store.Add(user, line(pencil, "Pencil", 5, 3))
	if snap := store.UpdateQuantity(user, pencil, -2); len(snap.Lines) != 0 {
		t.Fatal("expected negative quantity to remove the line")
	}
}

func TestAddNormalizesQuantityBelowOne(t *testing.T) {
	store := NewStore()
	user := uuid.New()

	snap := store.Add(user, line(uuid.New(), "Glue", 3, 0))
	if snap.Lines[0].SelectedQuantity != 1 {
		t.Fatalf("expected quantity normalized to 1, got %d", snap.Lines[0].SelectedQuantity)
	}
}

func TestClearEmptiesCart(t *testing.T) {
	store := NewStore()
	user := uuid.New()

	store.Add(user, line(uuid.New(), "Pencil", 5, 3))
	store.Clear(user)

	snap := store.Snapshot(user)
	if len(snap.Lines) != 0 || snap.ItemCount != 0 || !snap.TotalPrice.IsZero() {
		t.Fatalf("expected empty snapshot, got %+v", snap)
	}
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	store := NewStore()
	alice := uuid.New()
	bob := uuid.New()

	store.Add(alice, line(uuid.New(), "Pencil", 5, 1))
	if snap := store.Snapshot(bob); len(snap.Lines) != 0 {
		t.Fatal("expected bob's cart to be empty")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	store := NewStore()
	user := uuid.New()
	pencil := uuid.New()

	store.Add(user, line(pencil, "Pencil", 5, 1))
	snap := store.Snapshot(user)
	snap.Lines[0].SelectedQuantity = 99

	if fresh := store.Snapshot(user); fresh.Lines[0].SelectedQuantity != 1 {
		t.Fatal("mutating a snapshot must not leak into the store")
	}
}

func TestConcurrentAdds(t *testing.T) {
	store := NewStore()
	user := uuid.New()
	pencil := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Add(user, line(pencil, "Pencil", 5, 1))
		}()
	}
	wg.Wait()

	snap := store.Snapshot(user)
	if snap.ItemCount != 50 {
		t.Fatalf("expected 50 after concurrent adds, got %d", snap.ItemCount)
	}
	if len(snap.Lines) != 1 {
		t.Fatalf("expected a single merged line, got %d", len(snap.Lines))
	}
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"3", 3},
		{" 4 ", 4},
		{"0", 1},
		{"", 1},
		{"abc", 1},
		{"2.5", 1},
		{"-2", 1},
		{"-5", 1},
	}
	for _, tt := range tests {
		if got := ParseQuantity(tt.raw); got != tt.want {
			t.Errorf("ParseQuantity(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}
