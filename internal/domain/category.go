package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category узел каталога с необязательной ссылкой на родителя.
// Ссылка только хранится, циклы здесь не проверяются.
type Category struct {
	ID        uuid.UUID
	Name      string
	ParentID  *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory фабрика категории; имя обязательно.
func NewCategory(id uuid.UUID, name string, parentID *uuid.UUID) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrBlankName
	}
	now := time.Now().UTC()
	return &Category{
		ID:        id,
		Name:      name,
		ParentID:  parentID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Rename единственная мутация категории.
func (c *Category) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrBlankName
	}
	c.Name = name
	c.UpdatedAt = time.Now().UTC()
	return nil
}
