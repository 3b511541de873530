package postgres

import (
	"context"

	"mpeshop/internal/domain/entity"
	"mpeshop/internal/domain/repository"
	"mpeshop/internal/errors"
	"mpeshop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a ProductRepository backed by PostgreSQL.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *productRepository) FindBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	return r.findOne(ctx, "slug = ?", slug)
}

func (r *productRepository) FindBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	return r.findOne(ctx, "sku = ?", sku)
}

func (r *productRepository) findOne(ctx context.Context, query string, arg any) (*entity.Product, error) {
	var m model.ProductModel
	err := r.db.WithContext(ctx).First(&m, query, arg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return productToEntity(&m), nil
}

func (r *productRepository) FindActiveByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var ms []*model.ProductModel
	err := r.db.WithContext(ctx).
		Where("id IN ? AND is_active = ?", ids, true).
		Order("sort_order asc, name asc").
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products by ids")
	}

	products := make([]*entity.Product, 0, len(ms))
	for _, m := range ms {
		products = append(products, productToEntity(m))
	}

	return products, nil
}

func (r *productRepository) Save(ctx context.Context, product *entity.Product) error {
	m := productToModel(product)
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(err, "product slug already exists")
		}

		return errors.Wrap(err, "failed to save product")
	}

	product.ID = m.ID
	product.CreatedAt = m.CreatedAt

	return nil
}

func productToEntity(m *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:        m.ID,
		Name:      m.Name,
		Slug:      m.Slug,
		SKU:       m.SKU,
		Category:  entity.ProductCategory(m.Category),
		Price:     m.Price,
		ShowPrice: m.ShowPrice,
		InStock:   m.InStock,
		IsActive:  m.IsActive,
		SortOrder: m.SortOrder,
		CreatedAt: m.CreatedAt,
	}
}

func productToModel(p *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:        p.ID,
		Name:      p.Name,
		Slug:      p.Slug,
		SKU:       p.SKU,
		Category:  string(p.Category),
		Price:     p.Price,
		ShowPrice: p.ShowPrice,
		InStock:   p.InStock,
		IsActive:  p.IsActive,
		SortOrder: p.SortOrder,
		CreatedAt: p.CreatedAt,
	}
}
