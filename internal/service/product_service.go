package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cosmos/internal/domain"
	"cosmos/internal/repository"
)

// ErrSkuConflict артикул уже занят другим товаром
var ErrSkuConflict = errors.New("sku already exists")

// ProductService инкапсулирует бизнес-логику вокруг каталога товаров
type ProductService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// ProductCreateInput данные создания либо полной замены товара
type ProductCreateInput struct {
	SKU         string
	Name        string
	Description string
	Price       decimal.Decimal
	Currency    string
	CategoryID  *uuid.UUID
	Status      domain.ProductStatus
}

func (s *ProductService) Create(ctx context.Context, in ProductCreateInput) (*domain.Product, error) {
	if err := s.requireUniqueSku(ctx, in.SKU); err != nil {
		return nil, err
	}
	p, err := domain.NewProduct(domain.NewProductInput{
		ID:          s.repo.NextID(),
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Currency:    in.Currency,
		CategoryID:  in.CategoryID,
		Status:      in.Status,
	})
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// Search прогоняет фильтр через движок запросов репозитория.
// Токены сортировки имеют вид "field" или "field,desc"; неизвестные
// поля молча отбрасываются.
func (s *ProductService) Search(ctx context.Context, filter repository.ProductSearch, page repository.PageRequest, sortTokens []string) (repository.Page[domain.Product], error) {
	return s.repo.Search(ctx, filter, page, parseSort(sortTokens))
}

// Replace полная замена: собирает свежий агрегат под прежним id
func (s *ProductService) Replace(ctx context.Context, id uuid.UUID, in ProductCreateInput) (*domain.Product, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.SKU != in.SKU {
		if err := s.requireUniqueSku(ctx, in.SKU); err != nil {
			return nil, err
		}
	}
	p, err := domain.NewProduct(domain.NewProductInput{
		ID:          id,
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Currency:    in.Currency,
		CategoryID:  in.CategoryID,
		Status:      in.Status,
	})
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Patch применяет частичное обновление к загруженной копии и сохраняет
// только при успехе всех полей: в хранилище не попадает половина патча.
func (s *ProductService) Patch(ctx context.Context, id uuid.UUID, patch domain.ProductPatch) (*domain.Product, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.SKU != nil && *patch.SKU != existing.SKU {
		if err := s.requireUniqueSku(ctx, *patch.SKU); err != nil {
			return nil, err
		}
	}
	if err := existing.ApplyPatch(patch); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if !s.repo.Delete(ctx, id) {
		return repository.ErrNotFound
	}
	return nil
}

func (s *ProductService) requireUniqueSku(ctx context.Context, sku string) error {
	_, err := s.repo.FindBySku(ctx, sku)
	if err == nil {
		return ErrSkuConflict
	}
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	return err
}

func parseSort(tokens []string) []repository.Sort {
	spec := make([]repository.Sort, 0, len(tokens))
	for _, tok := range tokens {
		parts := strings.SplitN(tok, ",", 2)
		field := strings.TrimSpace(parts[0])
		switch field {
		case "name", "price", "createdAt", "updatedAt", "sku":
		default:
			continue
		}
		dir := repository.Asc
		if len(parts) == 2 && strings.EqualFold(strings.TrimSpace(parts[1]), "desc") {
			dir = repository.Desc
		}
		spec = append(spec, repository.Sort{Field: field, Direction: dir})
	}
	return spec
}
