package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cosmos/internal/domain"
)

func storeProduct(t *testing.T, m *MemoryStore, sku, name, price string) *domain.Product {
	t.Helper()
	p, err := domain.NewProduct(domain.NewProductInput{
		ID:       m.NextID(),
		SKU:      sku,
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Currency: "USD",
	})
	if err != nil {
		t.Fatalf("new product: %v", err)
	}
	if err := m.Save(context.Background(), p); err != nil {
		t.Fatalf("save: %v", err)
	}
	return p
}

func TestMemoryStore_ProductCRUD(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	p := storeProduct(t, store, "SKU-1", "Astro Mug", "10.00")

	got, err := store.FindByID(ctx, p.ID)
	if err != nil || got.ID != p.ID {
		t.Fatalf("get: %v", err)
	}

	bySku, err := store.FindBySku(ctx, "SKU-1")
	if err != nil || bySku.ID != p.ID {
		t.Fatalf("by sku: %v", err)
	}
	if _, err := store.FindBySku(ctx, "SKU-404"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if !store.Delete(ctx, p.ID) {
		t.Fatalf("delete reported not found")
	}
	if store.Delete(ctx, p.ID) {
		t.Fatalf("second delete must report not found")
	}
	if _, err := store.FindByID(ctx, p.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	p := storeProduct(t, store, "SKU-1", "Astro Mug", "10.00")

	got, _ := store.FindByID(ctx, p.ID)
	got.Name = "mutated"

	again, _ := store.FindByID(ctx, p.ID)
	if again.Name != "Astro Mug" {
		t.Fatalf("store leaked a live alias: %q", again.Name)
	}
}

func TestMemoryStore_SaveReplacesValue(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	p := storeProduct(t, store, "SKU-1", "Astro Mug", "10.00")

	if err := p.Rename("Comet Mug"); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(ctx, p); err != nil {
		t.Fatal(err)
	}
	got, _ := store.FindByID(ctx, p.ID)
	if got.Name != "Comet Mug" {
		t.Fatalf("save did not replace: %q", got.Name)
	}
}

func TestMemoryCarts_CopiesItems(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	carts := NewMemoryCarts(store)

	cart, err := domain.NewCart(carts.NextID(), "USD")
	if err != nil {
		t.Fatal(err)
	}
	q, _ := domain.NewQuantity(1)
	item, err := domain.NewCartItem(uuid.New(), "AST-1", "Astro Mug", domain.Money{Amount: decimal.New(1000, -2), Currency: "USD"}, q)
	if err != nil {
		t.Fatal(err)
	}
	if err := cart.AddItem(item); err != nil {
		t.Fatal(err)
	}
	if err := carts.Save(ctx, cart); err != nil {
		t.Fatal(err)
	}

	got, _ := carts.FindByID(ctx, cart.ID)
	got.Items[0].Quantity = 99

	again, _ := carts.FindByID(ctx, cart.ID)
	if again.Items[0].Quantity != 1 {
		t.Fatalf("cart items aliased: %d", again.Items[0].Quantity)
	}
}

func TestMemoryOrders_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	orders := NewMemoryOrders(store)

	order, err := domain.NewOrder(orders.NextID(), "USD")
	if err != nil {
		t.Fatal(err)
	}
	if err := orders.Save(ctx, order); err != nil {
		t.Fatal(err)
	}
	got, err := orders.FindByID(ctx, order.ID)
	if err != nil || got.Status != domain.OrderStatusDraft {
		t.Fatalf("round trip: %v", err)
	}
	if _, err := orders.FindByID(ctx, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMemoryCategories_CRUD(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	cats := NewMemoryCategories(store)

	cat, err := domain.NewCategory(cats.NextID(), "Mugs", nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := cats.Save(ctx, cat); err != nil {
		t.Fatal(err)
	}
	got, err := cats.FindByID(ctx, cat.ID)
	if err != nil || got.Name != "Mugs" {
		t.Fatalf("get: %v", err)
	}
	if !cats.Delete(ctx, cat.ID) {
		t.Fatalf("delete reported not found")
	}
	if cats.Delete(ctx, cat.ID) {
		t.Fatalf("second delete must report not found")
	}
}
