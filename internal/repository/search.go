package repository

import (
	"context"
	"sort"
	"strings"

	"cosmos/internal/domain"
)

// Search фильтрует весь каталог, затем сортирует и режет на страницы.
// Неизвестные поля сортировки молча отбрасываются; страница за
// пределами результата даёт пустое содержимое, а не ошибку.
func (m *MemoryStore) Search(ctx context.Context, filter ProductSearch, page PageRequest, sortSpec []Sort) (Page[domain.Product], error) {
	m.mu.RLock()
	filtered := make([]domain.Product, 0)
	for _, p := range m.productsByID {
		if matchesFilter(p, filter) {
			filtered = append(filtered, cloneProduct(p))
		}
	}
	m.mu.RUnlock()

	keys := knownSortKeys(sortSpec)
	if len(keys) > 0 {
		sort.SliceStable(filtered, func(i, j int) bool {
			return productLess(filtered[i], filtered[j], keys)
		})
	}

	return paginate(filtered, page), nil
}

func matchesFilter(p domain.Product, f ProductSearch) bool {
	if q := strings.TrimSpace(f.Query); q != "" {
		if !containsIgnoreCase(p.Name, q) &&
			!containsIgnoreCase(p.SKU, q) &&
			!containsIgnoreCase(p.Description, q) {
			return false
		}
	}
	if f.CategoryID != nil {
		if p.CategoryID == nil || *p.CategoryID != *f.CategoryID {
			return false
		}
	}
	if f.Status != nil && p.Status != *f.Status {
		return false
	}
	if f.MinPrice != nil && p.Price.Amount.Cmp(*f.MinPrice) < 0 {
		return false
	}
	if f.MaxPrice != nil && p.Price.Amount.Cmp(*f.MaxPrice) > 0 {
		return false
	}
	return true
}

func knownSortKeys(spec []Sort) []Sort {
	keys := make([]Sort, 0, len(spec))
	for _, s := range spec {
		switch s.Field {
		case "name", "price", "createdAt", "updatedAt", "sku":
			keys = append(keys, s)
		}
	}
	return keys
}

// productLess сцепляет ключи: первый — основной порядок, каждый
// следующий разбирает только совпадения предыдущих.
func productLess(a, b domain.Product, keys []Sort) bool {
	for _, s := range keys {
		c := compareField(a, b, s.Field)
		if c == 0 {
			continue
		}
		if s.Direction == Desc {
			return c > 0
		}
		return c < 0
	}
	return false
}

func compareField(a, b domain.Product, field string) int {
	switch field {
	case "name":
		return strings.Compare(a.Name, b.Name)
	case "price":
		return a.Price.Amount.Cmp(b.Price.Amount)
	case "createdAt":
		return a.CreatedAt.Compare(b.CreatedAt)
	case "updatedAt":
		return a.UpdatedAt.Compare(b.UpdatedAt)
	case "sku":
		return strings.Compare(a.SKU, b.SKU)
	}
	return 0
}

func paginate(all []domain.Product, page PageRequest) Page[domain.Product] {
	size := page.Size
	if size < 1 {
		size = 1
	}
	pageNum := page.Page
	if pageNum < 0 {
		pageNum = 0
	}

	total := len(all)
	from := pageNum * size
	if from > total {
		from = total
	}
	to := from + size
	if to > total {
		to = total
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + size - 1) / size
	}

	return Page[domain.Product]{
		Content:       all[from:to],
		Page:          pageNum,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}
