package domain

import "errors"

// Ошибки нарушения инвариантов домена. Возникают синхронно в точке
// нарушения и никогда не обрабатываются внутри самого ядра.
var (
	ErrCurrencyMismatch = errors.New("currency mismatch")
	ErrNegativeMoney    = errors.New("money amount is negative")
	ErrMoneyScale       = errors.New("money scale exceeds 2 digits")
	ErrInvalidCurrency  = errors.New("invalid currency code")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrBlankName        = errors.New("name is blank")
	ErrInvalidSku       = errors.New("invalid sku")
	ErrEmptyCart        = errors.New("cart is empty")
)

// Ошибки недопустимых переходов статуса. Отделены от прочих нарушений,
// чтобы граница HTTP могла отдавать на них 409, а не 400.
var (
	ErrProductArchived  = errors.New("archived product cannot be activated")
	ErrOrderNotDraft    = errors.New("only draft order can be paid")
	ErrOrderAlreadyPaid = errors.New("paid order cannot be cancelled")
)

// IsStateError сообщает, является ли ошибка отказом перехода статуса.
func IsStateError(err error) bool {
	return errors.Is(err, ErrProductArchived) ||
		errors.Is(err, ErrOrderNotDraft) ||
		errors.Is(err, ErrOrderAlreadyPaid)
}

// IsInvariantError сообщает, является ли ошибка нарушением инварианта
// входных данных (а не перехода статуса).
func IsInvariantError(err error) bool {
	for _, target := range []error{
		ErrCurrencyMismatch, ErrNegativeMoney, ErrMoneyScale,
		ErrInvalidCurrency, ErrInvalidQuantity, ErrBlankName,
		ErrInvalidSku, ErrEmptyCart,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
