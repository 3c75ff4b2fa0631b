package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cosmos/internal/domain"
)

// ErrNotFound возвращается, когда агрегат не найден по идентификатору
var ErrNotFound = errors.New("not found")

// ProductSearch параметры фильтрации каталога. Отсутствующее поле
// фильтр не накладывает; все заданные условия объединяются по AND.
type ProductSearch struct {
	Query      string
	CategoryID *uuid.UUID
	Status     *domain.ProductStatus
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
}

// Direction направление сортировки
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Sort одна пара (поле, направление). Допустимые поля:
// name, price, createdAt, updatedAt, sku.
type Sort struct {
	Field     string
	Direction Direction
}

// PageRequest запрошенная страница; size меньше 1 поднимается до 1.
type PageRequest struct {
	Page int
	Size int
}

// Page страница результата вместе со сквозными счётчиками.
type Page[T any] struct {
	Content       []T
	Page          int
	Size          int
	TotalElements int
	TotalPages    int
}

// ProductRepository интерфейс репозитория товаров
type ProductRepository interface {
	NextID() uuid.UUID
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	FindBySku(ctx context.Context, sku string) (*domain.Product, error)
	Save(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id uuid.UUID) bool
	Search(ctx context.Context, filter ProductSearch, page PageRequest, sort []Sort) (Page[domain.Product], error)
}

// CategoryRepository интерфейс репозитория категорий
type CategoryRepository interface {
	NextID() uuid.UUID
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	Save(ctx context.Context, c *domain.Category) error
	Delete(ctx context.Context, id uuid.UUID) bool
}

// CartRepository интерфейс репозитория корзин
type CartRepository interface {
	NextID() uuid.UUID
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Cart, error)
	Save(ctx context.Context, c *domain.Cart) error
	Delete(ctx context.Context, id uuid.UUID) bool
}

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	NextID() uuid.UUID
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	Save(ctx context.Context, o *domain.Order) error
}

// helper: case-insensitive contains
func containsIgnoreCase(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
