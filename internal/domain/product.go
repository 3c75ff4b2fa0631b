package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var skuRe = regexp.MustCompile(`^[A-Z0-9-]{3,32}$`)

// ValidateSku проверяет артикул по шаблону ^[A-Z0-9-]{3,32}$.
func ValidateSku(sku string) error {
	if !skuRe.MatchString(sku) {
		return ErrInvalidSku
	}
	return nil
}

// ProductStatus статус жизненного цикла товара.
type ProductStatus string

const (
	ProductStatusDraft    ProductStatus = "DRAFT"
	ProductStatusActive   ProductStatus = "ACTIVE"
	ProductStatusArchived ProductStatus = "ARCHIVED"
)

// Product товар каталога. Состояние меняется только именованными
// операциями, каждая успешная мутация обновляет UpdatedAt.
type Product struct {
	ID          uuid.UUID
	SKU         string
	Name        string
	Description string // пустая строка = описания нет
	Price       Money
	Currency    string
	CategoryID  *uuid.UUID
	Status      ProductStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProductInput входные данные фабрики товара.
type NewProductInput struct {
	ID          uuid.UUID
	SKU         string
	Name        string
	Description string
	Price       decimal.Decimal
	Currency    string
	CategoryID  *uuid.UUID
	Status      ProductStatus
}

// NewProduct фабрика товара: валидирует артикул, имя и цену,
// нормализует цену в валюте самого товара.
func NewProduct(in NewProductInput) (*Product, error) {
	if err := ValidateSku(in.SKU); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrBlankName
	}
	price, err := NewMoney(in.Price, in.Currency)
	if err != nil {
		return nil, err
	}
	price, err = price.Normalized().NonNegative()
	if err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = ProductStatusDraft
	}
	now := time.Now().UTC()
	return &Product{
		ID:          in.ID,
		SKU:         in.SKU,
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Price:       price,
		Currency:    in.Currency,
		CategoryID:  in.CategoryID,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Activate переводит товар в ACTIVE. Из ARCHIVED возврата нет.
func (p *Product) Activate() error {
	if p.Status == ProductStatusArchived {
		return ErrProductArchived
	}
	p.Status = ProductStatusActive
	p.touch()
	return nil
}

// Archive архивирует товар. Допустимо из любого статуса, идемпотентно.
func (p *Product) Archive() {
	p.Status = ProductStatusArchived
	p.touch()
}

// Rename меняет имя; пустое после обрезки — ошибка.
func (p *Product) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrBlankName
	}
	p.Name = name
	p.touch()
	return nil
}

// ChangePrice нормализует новую цену и требует неотрицательности.
func (p *Product) ChangePrice(price Money) error {
	if price.Currency != p.Currency {
		return ErrCurrencyMismatch
	}
	price, err := price.Normalized().NonNegative()
	if err != nil {
		return err
	}
	p.Price = price
	p.touch()
	return nil
}

// ChangeDescription пустое описание схлопывается в отсутствие.
func (p *Product) ChangeDescription(desc string) {
	p.Description = strings.TrimSpace(desc)
	p.touch()
}

// RelinkCategory перевешивает товар на категорию; nil отвязывает.
func (p *Product) RelinkCategory(categoryID *uuid.UUID) {
	p.CategoryID = categoryID
	p.touch()
}

// ChangeSku меняет артикул с повторной валидацией.
func (p *Product) ChangeSku(sku string) error {
	if err := ValidateSku(sku); err != nil {
		return err
	}
	p.SKU = sku
	p.touch()
	return nil
}

func (p *Product) touch() {
	p.UpdatedAt = time.Now().UTC()
}

// ProductPatch частичное обновление: применяются только заданные поля.
type ProductPatch struct {
	SKU         *string
	Name        *string
	Description *string
	Price       *decimal.Decimal
	CategoryID  *uuid.UUID
	Status      *ProductStatus
}

// ApplyPatch накладывает патч поле за полем. Вызывающий применяет его к
// копии агрегата и сохраняет только при полном успехе, поэтому
// неудавшееся поле не оставляет частичных изменений в хранилище.
func (p *Product) ApplyPatch(patch ProductPatch) error {
	if patch.SKU != nil {
		if err := p.ChangeSku(*patch.SKU); err != nil {
			return err
		}
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) != "" {
		if err := p.Rename(*patch.Name); err != nil {
			return err
		}
	}
	if patch.Description != nil {
		p.ChangeDescription(*patch.Description)
	}
	if patch.Price != nil {
		price, err := NewMoney(*patch.Price, p.Currency)
		if err != nil {
			return err
		}
		if err := p.ChangePrice(price); err != nil {
			return err
		}
	}
	if patch.CategoryID != nil {
		p.RelinkCategory(patch.CategoryID)
	}
	if patch.Status != nil {
		switch *patch.Status {
		case ProductStatusDraft:
			// no-op
		case ProductStatusActive:
			if err := p.Activate(); err != nil {
				return err
			}
		case ProductStatusArchived:
			p.Archive()
		}
	}
	return nil
}
