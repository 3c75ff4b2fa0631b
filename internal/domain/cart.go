package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CartItem позиция корзины. Значение, копируется целиком.
type CartItem struct {
	ProductID uuid.UUID
	SKU       string
	Name      string
	UnitPrice Money
	Quantity  Quantity
}

// NewCartItem валидирует позицию перед добавлением в корзину.
func NewCartItem(productID uuid.UUID, sku, name string, unitPrice Money, qty Quantity) (CartItem, error) {
	if err := ValidateSku(sku); err != nil {
		return CartItem{}, err
	}
	if strings.TrimSpace(name) == "" {
		return CartItem{}, ErrBlankName
	}
	if qty <= 0 {
		return CartItem{}, ErrInvalidQuantity
	}
	return CartItem{
		ProductID: productID,
		SKU:       sku,
		Name:      strings.TrimSpace(name),
		UnitPrice: unitPrice,
		Quantity:  qty,
	}, nil
}

// Cart корзина: изменяемый набор позиций одной валюты.
type Cart struct {
	ID        uuid.UUID
	Currency  string
	Items     []CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCart пустая корзина в заданной валюте.
func NewCart(id uuid.UUID, currency string) (*Cart, error) {
	if !currencyRe.MatchString(currency) {
		return nil, ErrInvalidCurrency
	}
	now := time.Now().UTC()
	return &Cart{ID: id, Currency: currency, CreatedAt: now, UpdatedAt: now}, nil
}

// AddItem добавляет позицию. Повтор по ProductID сливается: количество
// складывается, артикул/имя/цена остаются от уже лежащей позиции.
func (c *Cart) AddItem(item CartItem) error {
	if item.UnitPrice.Currency != c.Currency {
		return ErrCurrencyMismatch
	}
	for i, existing := range c.Items {
		if existing.ProductID == item.ProductID {
			c.Items[i].Quantity = existing.Quantity.Add(item.Quantity)
			c.touch()
			return nil
		}
	}
	c.Items = append(c.Items, item)
	c.touch()
	return nil
}

// RemoveItem убирает все позиции товара; отсутствие — не ошибка.
func (c *Cart) RemoveItem(productID uuid.UUID) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	c.Items = kept
	c.touch()
}

// Clear опустошает корзину.
func (c *Cart) Clear() {
	c.Items = nil
	c.touch()
}

// Subtotal нормализованная сумма unitPrice*quantity по всем позициям.
func (c *Cart) Subtotal() Money {
	total := Zero(c.Currency)
	for _, item := range c.Items {
		// currencies are equal by the AddItem invariant
		total, _ = total.Add(item.UnitPrice.Mul(item.Quantity))
	}
	return total.Normalized()
}

// Checkout собирает из непустой корзины новый заказ в статусе DRAFT.
// Сама корзина не очищается.
func (c *Cart) Checkout(orderID uuid.UUID) (*Order, error) {
	if len(c.Items) == 0 {
		return nil, ErrEmptyCart
	}
	lines := make([]OrderLine, 0, len(c.Items))
	for _, item := range c.Items {
		lines = append(lines, OrderLine{
			ProductID: item.ProductID,
			SKU:       item.SKU,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}
	return newOrderWithLines(orderID, c.Currency, lines), nil
}

func (c *Cart) touch() {
	c.UpdatedAt = time.Now().UTC()
}
