package cart

import (
	"testing"

	"github.com/google/uuid"
)

func TestAddMergesDuplicates(t *testing.T) {
	itemID := uuid.New()

	c := Cart{}
	c = Add(c, Item{MenuItemID: itemID, Name: "Flat White", UnitPrice: 3.40, Quantity: 1})
	c = Add(c, Item{MenuItemID: itemID, Name: "Flat White", UnitPrice: 3.40, Quantity: 2})

	if len(c.Items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(c.Items))
	}
	if c.Items[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", c.Items[0].Quantity)
	}
}

func TestAddIgnoresNonPositiveQuantity(t *testing.T) {
	c := Add(Cart{}, Item{MenuItemID: uuid.New(), Quantity: 0})
	if len(c.Items) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(c.Items))
	}
}

func TestAddDoesNotMutateOriginal(t *testing.T) {
	itemID := uuid.New()
	original := Add(Cart{}, Item{MenuItemID: itemID, UnitPrice: 2.80, Quantity: 1})

	_ = Add(original, Item{MenuItemID: itemID, UnitPrice: 2.80, Quantity: 5})

	if original.Items[0].Quantity != 1 {
		t.Fatalf("original cart mutated: quantity %d", original.Items[0].Quantity)
	}
}

func TestUpdateQuantity(t *testing.T) {
	itemID := uuid.New()
	c := Add(Cart{}, Item{MenuItemID: itemID, UnitPrice: 3.20, Quantity: 2})

	c = UpdateQuantity(c, itemID, 5)
	if c.Items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", c.Items[0].Quantity)
	}

	c = UpdateQuantity(c, itemID, 0)
	if len(c.Items) != 0 {
		t.Fatalf("expected item removed at zero quantity, got %d lines", len(c.Items))
	}
}

func TestRemoveAndClear(t *testing.T) {
	first := uuid.New()
	second := uuid.New()

	c := Cart{}
	c = Add(c, Item{MenuItemID: first, UnitPrice: 3.40, Quantity: 1})
	c = Add(c, Item{MenuItemID: second, UnitPrice: 2.80, Quantity: 2})

	c = Remove(c, first)
	if len(c.Items) != 1 || c.Items[0].MenuItemID != second {
		t.Fatalf("unexpected cart after remove: %+v", c.Items)
	}

	c = Clear(c)
	if len(c.Items) != 0 {
		t.Fatalf("expected empty cart after clear")
	}
}

func TestTotal(t *testing.T) {
	c := Cart{}
	c = Add(c, Item{MenuItemID: uuid.New(), UnitPrice: 3.40, Quantity: 2})
	c = Add(c, Item{MenuItemID: uuid.New(), UnitPrice: 2.80, Quantity: 1})

	got := Total(c)
	want := 9.60
	if got < want-0.001 || got > want+0.001 {
		t.Fatalf("expected total %.2f, got %.2f", want, got)
	}
}
