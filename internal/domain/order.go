package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus статус заказа.
type OrderStatus string

const (
	OrderStatusDraft     OrderStatus = "DRAFT"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// OrderLine неизменяемая строка заказа.
type OrderLine struct {
	ProductID uuid.UUID
	SKU       string
	Name      string
	UnitPrice Money
	Quantity  Quantity
}

// LineTotal производная сумма строки, отдельно не хранится.
func (l OrderLine) LineTotal() Money {
	return l.UnitPrice.Mul(l.Quantity)
}

// Order заказ со строками и машиной статусов DRAFT -> PAID / CANCELLED.
type Order struct {
	ID        uuid.UUID
	Currency  string
	Lines     []OrderLine
	Status    OrderStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewOrder пустой заказ в статусе DRAFT.
func NewOrder(id uuid.UUID, currency string) (*Order, error) {
	if !currencyRe.MatchString(currency) {
		return nil, ErrInvalidCurrency
	}
	return newOrderWithLines(id, currency, nil), nil
}

func newOrderWithLines(id uuid.UUID, currency string, lines []OrderLine) *Order {
	now := time.Now().UTC()
	return &Order{
		ID:        id,
		Currency:  currency,
		Lines:     lines,
		Status:    OrderStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddLine добавляет строку той же валюты. Статус заказа здесь намеренно
// не проверяется, см. DESIGN.md.
func (o *Order) AddLine(line OrderLine) error {
	if line.UnitPrice.Currency != o.Currency {
		return ErrCurrencyMismatch
	}
	o.Lines = append(o.Lines, line)
	o.touch()
	return nil
}

// RemoveLine убирает все строки товара; отсутствие — не ошибка.
func (o *Order) RemoveLine(productID uuid.UUID) {
	kept := o.Lines[:0]
	for _, line := range o.Lines {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	o.Lines = kept
	o.touch()
}

// Total нормализованная сумма строк заказа.
func (o *Order) Total() Money {
	total := Zero(o.Currency)
	for _, line := range o.Lines {
		total, _ = total.Add(line.LineTotal())
	}
	return total.Normalized()
}

// Pay оплатить можно только черновик.
func (o *Order) Pay() error {
	if o.Status != OrderStatusDraft {
		return ErrOrderNotDraft
	}
	o.Status = OrderStatusPaid
	o.touch()
	return nil
}

// Cancel оплаченный заказ отменить нельзя; повторная отмена допустима.
func (o *Order) Cancel() error {
	if o.Status == OrderStatusPaid {
		return ErrOrderAlreadyPaid
	}
	o.Status = OrderStatusCancelled
	o.touch()
	return nil
}

func (o *Order) touch() {
	o.UpdatedAt = time.Now().UTC()
}
