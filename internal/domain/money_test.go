package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func mustMoney(t *testing.T, amount, currency string) Money {
	t.Helper()
	m, err := NewMoney(decimal.RequireFromString(amount), currency)
	if err != nil {
		t.Fatalf("money %s %s: %v", amount, currency, err)
	}
	return m
}

func TestMoney_New_RejectsScaleAndCurrency(t *testing.T) {
	if _, err := NewMoney(decimal.RequireFromString("10.001"), "USD"); !errors.Is(err, ErrMoneyScale) {
		t.Fatalf("expected scale error, got %v", err)
	}
	if _, err := NewMoney(decimal.RequireFromString("10.00"), "usd"); !errors.Is(err, ErrInvalidCurrency) {
		t.Fatalf("expected currency error, got %v", err)
	}
	if _, err := NewMoney(decimal.RequireFromString("10.00"), "USD"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestMoney_Add(t *testing.T) {
	a := mustMoney(t, "10.50", "USD")
	b := mustMoney(t, "2.25", "USD")
	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !sum.Amount.Equal(a.Amount.Add(b.Amount)) {
		t.Fatalf("sum = %s", sum.Amount)
	}

	eur := mustMoney(t, "1.00", "EUR")
	if _, err := a.Add(eur); !errors.Is(err, ErrCurrencyMismatch) {
		t.Fatalf("expected currency mismatch, got %v", err)
	}
}

func TestMoney_Normalized_Idempotent(t *testing.T) {
	m := Money{Amount: decimal.RequireFromString("10.5"), Currency: "USD"}
	once := m.Normalized()
	twice := once.Normalized()
	if !once.Equal(twice) {
		t.Fatalf("normalize not idempotent: %s vs %s", once.Amount, twice.Amount)
	}
}

func TestMoney_NonNegative(t *testing.T) {
	if _, err := (Money{Amount: decimal.RequireFromString("-0.01"), Currency: "USD"}).NonNegative(); !errors.Is(err, ErrNegativeMoney) {
		t.Fatalf("expected negative money error, got %v", err)
	}
	if _, err := mustMoney(t, "0.00", "USD").NonNegative(); err != nil {
		t.Fatalf("zero must pass: %v", err)
	}
}

func TestMoney_MulAndZero(t *testing.T) {
	m := mustMoney(t, "9.99", "USD")
	q, _ := NewQuantity(3)
	got := m.Mul(q)
	if !got.Amount.Equal(decimal.RequireFromString("29.97")) {
		t.Fatalf("mul = %s", got.Amount)
	}
	z := Zero("USD")
	if !z.Amount.IsZero() || z.Currency != "USD" {
		t.Fatalf("bad zero: %+v", z)
	}
}

func TestQuantity(t *testing.T) {
	if _, err := NewQuantity(0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected quantity error, got %v", err)
	}
	if _, err := NewQuantity(-2); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected quantity error, got %v", err)
	}
	a, _ := NewQuantity(2)
	b, _ := NewQuantity(3)
	if a.Add(b) != 5 {
		t.Fatalf("add = %d", a.Add(b))
	}
	if _, err := a.Sub(b); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("underflow must fail, got %v", err)
	}
	if d, err := b.Sub(a); err != nil || d != 1 {
		t.Fatalf("sub = %d, %v", d, err)
	}
}
