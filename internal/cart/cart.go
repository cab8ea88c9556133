// Package cart holds the order basket as an immutable value with pure
// reducer functions. Every operation returns a new Cart; callers never
// mutate one in place.
package cart

import (
	"github.com/google/uuid"
)

type Item struct {
	MenuItemID uuid.UUID
	Name       string
	UnitPrice  float64
	Quantity   int
}

type Cart struct {
	Items []Item
}

// Add merges the item into the cart, combining quantities for an item
// already present
func Add(c Cart, item Item) Cart {
	if item.Quantity <= 0 {
		return c
	}

	items := make([]Item, len(c.Items))
	copy(items, c.Items)

	for i := range items {
		if items[i].MenuItemID == item.MenuItemID {
			items[i].Quantity += item.Quantity
			return Cart{Items: items}
		}
	}

	return Cart{Items: append(items, item)}
}

// Remove drops the item from the cart entirely
func Remove(c Cart, menuItemID uuid.UUID) Cart {
	items := make([]Item, 0, len(c.Items))
	for _, item := range c.Items {
		if item.MenuItemID != menuItemID {
			items = append(items, item)
		}
	}
	return Cart{Items: items}
}

// UpdateQuantity sets the quantity for an item; zero or negative removes it
func UpdateQuantity(c Cart, menuItemID uuid.UUID, quantity int) Cart {
	if quantity <= 0 {
		return Remove(c, menuItemID)
	}

	items := make([]Item, len(c.Items))
	copy(items, c.Items)

	for i := range items {
		if items[i].MenuItemID == menuItemID {
			items[i].Quantity = quantity
			break
		}
	}
	return Cart{Items: items}
}

// Clear empties the cart
func Clear(Cart) Cart {
	return Cart{}
}

// Total is the sum of line totals
func Total(c Cart) float64 {
	var total float64
	for _, item := range c.Items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}
