package service

import (
	"context"

	"github.com/google/uuid"

	"cosmos/internal/domain"
	"cosmos/internal/repository"
)

// CategoryService операции над категориями каталога
type CategoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) Create(ctx context.Context, name string, parentID *uuid.UUID) (*domain.Category, error) {
	c, err := domain.NewCategory(s.repo.NextID(), name, parentID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) Get(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CategoryService) Rename(ctx context.Context, id uuid.UUID, name string) (*domain.Category, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.Rename(name); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if !s.repo.Delete(ctx, id) {
		return repository.ErrNotFound
	}
	return nil
}
