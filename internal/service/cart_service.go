package service

import (
	"context"

	"github.com/google/uuid"

	"cosmos/internal/domain"
	"cosmos/internal/repository"
)

// CartService реализует сценарии корзины: наполнение и оформление заказа
type CartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
	orders   repository.OrderRepository
}

func NewCartService(carts repository.CartRepository, products repository.ProductRepository, orders repository.OrderRepository) *CartService {
	return &CartService{carts: carts, products: products, orders: orders}
}

func (s *CartService) Create(ctx context.Context, currency string) (*domain.Cart, error) {
	c, err := domain.NewCart(s.carts.NextID(), currency)
	if err != nil {
		return nil, err
	}
	if err := s.carts.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CartService) Get(ctx context.Context, id uuid.UUID) (*domain.Cart, error) {
	return s.carts.FindByID(ctx, id)
}

// AddItem кладёт товар в корзину. Артикул, имя и цена снимаются с
// товара в момент добавления; повтор того же товара сливает количество.
func (s *CartService) AddItem(ctx context.Context, cartID, productID uuid.UUID, qty int) (*domain.Cart, error) {
	cart, err := s.carts.FindByID(ctx, cartID)
	if err != nil {
		return nil, err
	}
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	quantity, err := domain.NewQuantity(qty)
	if err != nil {
		return nil, err
	}
	item, err := domain.NewCartItem(product.ID, product.SKU, product.Name, product.Price, quantity)
	if err != nil {
		return nil, err
	}
	if err := cart.AddItem(item); err != nil {
		return nil, err
	}
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) RemoveItem(ctx context.Context, cartID, productID uuid.UUID) (*domain.Cart, error) {
	cart, err := s.carts.FindByID(ctx, cartID)
	if err != nil {
		return nil, err
	}
	cart.RemoveItem(productID)
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) Clear(ctx context.Context, cartID uuid.UUID) (*domain.Cart, error) {
	cart, err := s.carts.FindByID(ctx, cartID)
	if err != nil {
		return nil, err
	}
	cart.Clear()
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Checkout превращает непустую корзину в новый заказ-черновик.
// Корзина после оформления остаётся как была.
func (s *CartService) Checkout(ctx context.Context, cartID uuid.UUID) (*domain.Order, error) {
	cart, err := s.carts.FindByID(ctx, cartID)
	if err != nil {
		return nil, err
	}
	order, err := cart.Checkout(s.orders.NextID())
	if err != nil {
		return nil, err
	}
	if err := s.orders.Save(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}
