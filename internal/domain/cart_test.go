package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newTestCart(t *testing.T) *Cart {
	t.Helper()
	c, err := NewCart(uuid.New(), "USD")
	if err != nil {
		t.Fatalf("new cart: %v", err)
	}
	return c
}

func testItem(t *testing.T, productID uuid.UUID, sku, name, price string, qty int) CartItem {
	t.Helper()
	q, err := NewQuantity(qty)
	if err != nil {
		t.Fatal(err)
	}
	item, err := NewCartItem(productID, sku, name, mustMoney(t, price, "USD"), q)
	if err != nil {
		t.Fatal(err)
	}
	return item
}

func TestCart_AddItem_MergesSameProduct(t *testing.T) {
	c := newTestCart(t)
	pid := uuid.New()

	if err := c.AddItem(testItem(t, pid, "AST-1", "Astro Mug", "10.00", 2)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := c.AddItem(testItem(t, pid, "AST-1", "Astro Mug", "12.00", 3)); err != nil {
		t.Fatalf("add: %v", err)
	}

	if len(c.Items) != 1 {
		t.Fatalf("expected single merged line, got %d", len(c.Items))
	}
	if c.Items[0].Quantity != 5 {
		t.Fatalf("quantity = %d", c.Items[0].Quantity)
	}
	// merge keeps the existing entry's price
	if !c.Items[0].UnitPrice.Amount.Equal(decimal.RequireFromString("10.00")) {
		t.Fatalf("merge must keep old price, got %s", c.Items[0].UnitPrice.Amount)
	}
}

func TestCart_AddItem_CurrencyMismatch(t *testing.T) {
	c := newTestCart(t)
	q, _ := NewQuantity(1)
	item, err := NewCartItem(uuid.New(), "AST-1", "Astro Mug", Money{Amount: decimal.New(100, -2), Currency: "EUR"}, q)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.AddItem(item); !errors.Is(err, ErrCurrencyMismatch) {
		t.Fatalf("expected currency mismatch, got %v", err)
	}
}

func TestCart_RemoveItem(t *testing.T) {
	c := newTestCart(t)
	pid := uuid.New()
	_ = c.AddItem(testItem(t, pid, "AST-1", "Astro Mug", "10.00", 1))

	c.RemoveItem(pid)
	if len(c.Items) != 0 {
		t.Fatalf("item not removed")
	}
	// absent product is a no-op, not an error
	c.RemoveItem(uuid.New())
}

func TestCart_Subtotal(t *testing.T) {
	c := newTestCart(t)
	if !c.Subtotal().Equal(Zero("USD")) {
		t.Fatalf("empty subtotal = %s", c.Subtotal().Amount)
	}
	_ = c.AddItem(testItem(t, uuid.New(), "AST-1", "Astro Mug", "10.00", 2))
	_ = c.AddItem(testItem(t, uuid.New(), "AST-2", "Comet Bowl", "5.00", 1))
	if !c.Subtotal().Amount.Equal(decimal.RequireFromString("25.00")) {
		t.Fatalf("subtotal = %s", c.Subtotal().Amount)
	}
}

func TestCart_Checkout(t *testing.T) {
	c := newTestCart(t)
	if _, err := c.Checkout(uuid.New()); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("empty checkout must fail, got %v", err)
	}

	_ = c.AddItem(testItem(t, uuid.New(), "AST-A", "Astro Mug", "10.00", 2))
	_ = c.AddItem(testItem(t, uuid.New(), "AST-B", "Comet Bowl", "5.00", 1))

	order, err := c.Checkout(uuid.New())
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if order.Status != OrderStatusDraft {
		t.Fatalf("order status = %s", order.Status)
	}
	if len(order.Lines) != 2 {
		t.Fatalf("lines = %d", len(order.Lines))
	}
	if !order.Lines[0].LineTotal().Amount.Equal(decimal.RequireFromString("20.00")) {
		t.Fatalf("line 0 total = %s", order.Lines[0].LineTotal().Amount)
	}
	if !order.Lines[1].LineTotal().Amount.Equal(decimal.RequireFromString("5.00")) {
		t.Fatalf("line 1 total = %s", order.Lines[1].LineTotal().Amount)
	}
	if !order.Total().Amount.Equal(decimal.RequireFromString("25.00")) {
		t.Fatalf("total = %s", order.Total().Amount)
	}
	// checkout leaves the cart as it was
	if len(c.Items) != 2 {
		t.Fatalf("cart must stay untouched, items = %d", len(c.Items))
	}
}

func TestCart_Clear(t *testing.T) {
	c := newTestCart(t)
	_ = c.AddItem(testItem(t, uuid.New(), "AST-1", "Astro Mug", "10.00", 1))
	c.Clear()
	if len(c.Items) != 0 {
		t.Fatalf("cart not cleared")
	}
}
