package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"cosmos/internal/domain"
)

func seedCatalog(t *testing.T) *MemoryStore {
	t.Helper()
	store := NewMemoryStore()
	storeProduct(t, store, "MUG-RED", "Red Mug", "9.00")
	storeProduct(t, store, "MUG-BLUE", "Blue Mug", "12.00")
	storeProduct(t, store, "CUP-GREEN", "Green Cup", "9.00")
	return store
}

func search(t *testing.T, store *MemoryStore, filter ProductSearch, page PageRequest, sort []Sort) Page[domain.Product] {
	t.Helper()
	res, err := store.Search(context.Background(), filter, page, sort)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	return res
}

func names(page Page[domain.Product]) []string {
	out := make([]string, 0, len(page.Content))
	for _, p := range page.Content {
		out = append(out, p.Name)
	}
	return out
}

func TestSearch_TextFilter(t *testing.T) {
	store := seedCatalog(t)

	res := search(t, store, ProductSearch{Query: "mug"}, PageRequest{Size: 10}, nil)
	if res.TotalElements != 2 {
		t.Fatalf("q=mug total = %d", res.TotalElements)
	}
	for _, p := range res.Content {
		if p.Name == "Green Cup" {
			t.Fatalf("cup must not match mug")
		}
	}

	// sku is searched too
	res = search(t, store, ProductSearch{Query: "cup-"}, PageRequest{Size: 10}, nil)
	if res.TotalElements != 1 {
		t.Fatalf("q=cup- total = %d", res.TotalElements)
	}
}

func TestSearch_PriceBounds(t *testing.T) {
	store := seedCatalog(t)
	min := decimal.RequireFromString("9.00")
	max := decimal.RequireFromString("9.00")

	res := search(t, store, ProductSearch{MinPrice: &min, MaxPrice: &max}, PageRequest{Size: 10}, nil)
	if res.TotalElements != 2 {
		t.Fatalf("bounds are inclusive, total = %d", res.TotalElements)
	}
}

func TestSearch_StatusAndCategory(t *testing.T) {
	store := seedCatalog(t)
	ctx := context.Background()

	p, _ := store.FindBySku(ctx, "MUG-RED")
	if err := p.Activate(); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(ctx, p); err != nil {
		t.Fatal(err)
	}

	active := domain.ProductStatusActive
	res := search(t, store, ProductSearch{Status: &active}, PageRequest{Size: 10}, nil)
	if res.TotalElements != 1 || res.Content[0].SKU != "MUG-RED" {
		t.Fatalf("status filter: %v", names(res))
	}

	cid := store.NextID()
	p.RelinkCategory(&cid)
	if err := store.Save(ctx, p); err != nil {
		t.Fatal(err)
	}
	res = search(t, store, ProductSearch{CategoryID: &cid}, PageRequest{Size: 10}, nil)
	if res.TotalElements != 1 || res.Content[0].SKU != "MUG-RED" {
		t.Fatalf("category filter: %v", names(res))
	}
}

func TestSearch_MultiKeySort(t *testing.T) {
	store := NewMemoryStore()
	storeProduct(t, store, "SKU-Z", "Zeta", "9.00")
	storeProduct(t, store, "SKU-A", "Alpha", "9.00")
	storeProduct(t, store, "SKU-B", "Beta", "12.00")

	res := search(t, store, ProductSearch{}, PageRequest{Size: 10}, []Sort{
		{Field: "price", Direction: Asc},
		{Field: "name", Direction: Asc},
	})
	got := names(res)
	want := []string{"Alpha", "Zeta", "Beta"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}

	// descending primary key
	res = search(t, store, ProductSearch{}, PageRequest{Size: 10}, []Sort{
		{Field: "price", Direction: Desc},
		{Field: "name", Direction: Asc},
	})
	got = names(res)
	want = []string{"Beta", "Alpha", "Zeta"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestSearch_UnknownSortFieldDropped(t *testing.T) {
	store := seedCatalog(t)
	res := search(t, store, ProductSearch{}, PageRequest{Size: 10}, []Sort{
		{Field: "rating", Direction: Asc},
		{Field: "name", Direction: Asc},
	})
	got := names(res)
	if got[0] != "Blue Mug" {
		t.Fatalf("unknown field must be skipped, order = %v", got)
	}
}

func TestSearch_Pagination(t *testing.T) {
	store := seedCatalog(t)

	// no matches at all
	res := search(t, store, ProductSearch{Query: "teapot"}, PageRequest{Size: 10}, nil)
	if len(res.Content) != 0 || res.TotalElements != 0 || res.TotalPages != 0 {
		t.Fatalf("empty result: %+v", res)
	}

	// page past the end keeps the counters
	res = search(t, store, ProductSearch{}, PageRequest{Page: 5, Size: 10}, nil)
	if len(res.Content) != 0 {
		t.Fatalf("out-of-range page must be empty")
	}
	if res.TotalElements != 3 || res.TotalPages != 1 {
		t.Fatalf("counters: %+v", res)
	}

	// size is floored to 1
	res = search(t, store, ProductSearch{}, PageRequest{Page: 0, Size: 0}, nil)
	if res.Size != 1 || len(res.Content) != 1 || res.TotalPages != 3 {
		t.Fatalf("floored size: %+v", res)
	}

	// middle page
	res = search(t, store, ProductSearch{}, PageRequest{Page: 1, Size: 2}, []Sort{{Field: "name"}})
	if len(res.Content) != 1 || res.TotalPages != 2 {
		t.Fatalf("second page: %+v", res)
	}
}
