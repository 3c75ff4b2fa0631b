package domain

import (
	"regexp"

	"github.com/shopspring/decimal"
)

var currencyRe = regexp.MustCompile(`^[A-Z]{3}$`)

// Money денежное значение с валютой. Неизменяемое: каждая операция
// возвращает новое значение, арифметика только десятичная.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// NewMoney строит Money из сырой суммы и кода валюты ISO 4217.
// Хранимый масштаб не может превышать два знака после запятой.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if !currencyRe.MatchString(currency) {
		return Money{}, ErrInvalidCurrency
	}
	if amount.Exponent() < -2 {
		return Money{}, ErrMoneyScale
	}
	return Money{Amount: amount, Currency: currency}, nil
}

// Zero аддитивный ноль в заданной валюте, масштаб 2.
func Zero(currency string) Money {
	return Money{Amount: decimal.New(0, -2), Currency: currency}
}

// Add складывает суммы одной валюты.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, ErrCurrencyMismatch
	}
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

// Mul умножает сумму на целочисленное количество.
func (m Money) Mul(qty Quantity) Money {
	return Money{Amount: m.Amount.Mul(decimal.NewFromInt(int64(qty))), Currency: m.Currency}
}

// Normalized округляет до двух знаков (half-up). Идемпотентно.
func (m Money) Normalized() Money {
	return Money{Amount: m.Amount.Round(2), Currency: m.Currency}
}

// NonNegative возвращает ошибку, если сумма отрицательна.
func (m Money) NonNegative() (Money, error) {
	if m.Amount.IsNegative() {
		return Money{}, ErrNegativeMoney
	}
	return m, nil
}

// Equal сравнивает по содержимому: 10.0 USD == 10.00 USD.
func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}

// Quantity положительный целочисленный множитель.
type Quantity int

// NewQuantity отклоняет ноль и отрицательные значения.
func NewQuantity(v int) (Quantity, error) {
	if v <= 0 {
		return 0, ErrInvalidQuantity
	}
	return Quantity(v), nil
}

func (q Quantity) Add(other Quantity) Quantity {
	return q + other
}

// Sub вычитает; результат обязан остаться положительным.
func (q Quantity) Sub(other Quantity) (Quantity, error) {
	if q <= other {
		return 0, ErrInvalidQuantity
	}
	return q - other, nil
}
