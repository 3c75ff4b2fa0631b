package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"cosmos/internal/domain"
)

// MemoryStore объединённое in-memory хранилище всех агрегатов.
// Значения кладутся и отдаются глубокими копиями, наружу не уходит ни
// одной живой ссылки на внутренности. Save полностью замещает значение
// по ключу: последняя запись выигрывает, версии здесь не сверяются.
type MemoryStore struct {
	mu             sync.RWMutex
	productsByID   map[uuid.UUID]domain.Product
	categoriesByID map[uuid.UUID]domain.Category
	cartsByID      map[uuid.UUID]domain.Cart
	ordersByID     map[uuid.UUID]domain.Order
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		productsByID:   make(map[uuid.UUID]domain.Product),
		categoriesByID: make(map[uuid.UUID]domain.Category),
		cartsByID:      make(map[uuid.UUID]domain.Cart),
		ordersByID:     make(map[uuid.UUID]domain.Order),
	}
}

// deep-copy helpers: pointer and slice fields must not alias the store

func cloneProduct(p domain.Product) domain.Product {
	if p.CategoryID != nil {
		cid := *p.CategoryID
		p.CategoryID = &cid
	}
	return p
}

func cloneCategory(c domain.Category) domain.Category {
	if c.ParentID != nil {
		pid := *c.ParentID
		c.ParentID = &pid
	}
	return c
}

func cloneCart(c domain.Cart) domain.Cart {
	c.Items = append([]domain.CartItem(nil), c.Items...)
	return c
}

func cloneOrder(o domain.Order) domain.Order {
	o.Lines = append([]domain.OrderLine(nil), o.Lines...)
	return o
}

// Ensure interfaces
var _ ProductRepository = (*MemoryStore)(nil)

// ProductRepository implementation

func (m *MemoryStore) NextID() uuid.UUID { return uuid.New() }

func (m *MemoryStore) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.productsByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := cloneProduct(p)
	return &cp, nil
}

func (m *MemoryStore) FindBySku(ctx context.Context, sku string) (*domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.productsByID {
		if p.SKU == sku {
			cp := cloneProduct(p)
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) Save(ctx context.Context, p *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.productsByID[p.ID] = cloneProduct(*p)
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, id uuid.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.productsByID[id]; !ok {
		return false
	}
	delete(m.productsByID, id)
	return true
}

// CategoryRepository implementation on wrapper type

type MemoryCategories struct{ store *MemoryStore }

func NewMemoryCategories(store *MemoryStore) *MemoryCategories {
	return &MemoryCategories{store: store}
}

var _ CategoryRepository = (*MemoryCategories)(nil)

func (mc *MemoryCategories) NextID() uuid.UUID { return uuid.New() }

func (mc *MemoryCategories) FindByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	mc.store.mu.RLock()
	defer mc.store.mu.RUnlock()
	c, ok := mc.store.categoriesByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := cloneCategory(c)
	return &cp, nil
}

func (mc *MemoryCategories) Save(ctx context.Context, c *domain.Category) error {
	mc.store.mu.Lock()
	defer mc.store.mu.Unlock()
	mc.store.categoriesByID[c.ID] = cloneCategory(*c)
	return nil
}

func (mc *MemoryCategories) Delete(ctx context.Context, id uuid.UUID) bool {
	mc.store.mu.Lock()
	defer mc.store.mu.Unlock()
	if _, ok := mc.store.categoriesByID[id]; !ok {
		return false
	}
	delete(mc.store.categoriesByID, id)
	return true
}

// CartRepository implementation on wrapper type

type MemoryCarts struct{ store *MemoryStore }

func NewMemoryCarts(store *MemoryStore) *MemoryCarts { return &MemoryCarts{store: store} }

var _ CartRepository = (*MemoryCarts)(nil)

func (mc *MemoryCarts) NextID() uuid.UUID { return uuid.New() }

func (mc *MemoryCarts) FindByID(ctx context.Context, id uuid.UUID) (*domain.Cart, error) {
	mc.store.mu.RLock()
	defer mc.store.mu.RUnlock()
	c, ok := mc.store.cartsByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := cloneCart(c)
	return &cp, nil
}

func (mc *MemoryCarts) Save(ctx context.Context, c *domain.Cart) error {
	mc.store.mu.Lock()
	defer mc.store.mu.Unlock()
	mc.store.cartsByID[c.ID] = cloneCart(*c)
	return nil
}

func (mc *MemoryCarts) Delete(ctx context.Context, id uuid.UUID) bool {
	mc.store.mu.Lock()
	defer mc.store.mu.Unlock()
	if _, ok := mc.store.cartsByID[id]; !ok {
		return false
	}
	delete(mc.store.cartsByID, id)
	return true
}

// OrderRepository implementation on wrapper type

type MemoryOrders struct{ store *MemoryStore }

func NewMemoryOrders(store *MemoryStore) *MemoryOrders { return &MemoryOrders{store: store} }

var _ OrderRepository = (*MemoryOrders)(nil)

func (mo *MemoryOrders) NextID() uuid.UUID { return uuid.New() }

func (mo *MemoryOrders) FindByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	mo.store.mu.RLock()
	defer mo.store.mu.RUnlock()
	o, ok := mo.store.ordersByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := cloneOrder(o)
	return &cp, nil
}

func (mo *MemoryOrders) Save(ctx context.Context, o *domain.Order) error {
	mo.store.mu.Lock()
	defer mo.store.mu.Unlock()
	mo.store.ordersByID[o.ID] = cloneOrder(*o)
	return nil
}
