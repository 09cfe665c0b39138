package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopsync/backend/internal/domain/product"
	"github.com/shopsync/backend/internal/infrastructure/persistence/models"
)

// GormProductRepository implements product.ProductRepository on GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new repository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Save upserts the product. The row is matched by shopify id when the
// product carries one, else by SKU; variants are replaced wholesale so
// the stored set always mirrors the aggregate.
func (r *GormProductRepository) Save(ctx context.Context, p product.Product) (product.Product, error) {
	var saved product.Product

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := r.findExistingRow(tx, p)
		if err != nil {
			return err
		}

		model := models.ProductModelFromDomain(p)
		if existing != nil {
			model.ID = existing.ID
			model.CreatedAt = existing.CreatedAt
		} else if model.ID == uuid.Nil {
			model.ID = uuid.New()
		}

		variants := model.Variants
		model.Variants = nil
		for i := range variants {
			if variants[i].ID == uuid.Nil {
				variants[i].ID = uuid.New()
			}
			variants[i].ProductID = model.ID
		}

		if existing != nil {
			if err := tx.Save(model).Error; err != nil {
				return fmt.Errorf("update product: %w", err)
			}
		} else {
			if err := tx.Create(model).Error; err != nil {
				return fmt.Errorf("create product: %w", err)
			}
		}
		if err := tx.Where("product_id = ?", model.ID).Delete(&models.ProductVariantModel{}).Error; err != nil {
			return fmt.Errorf("clear variants: %w", err)
		}
		if len(variants) > 0 {
			if err := tx.Create(&variants).Error; err != nil {
				return fmt.Errorf("save variants: %w", err)
			}
		}

		var reloaded models.ProductModel
		if err := tx.Preload("Variants").First(&reloaded, "id = ?", model.ID).Error; err != nil {
			return fmt.Errorf("reload product: %w", err)
		}
		saved, err = reloaded.ToDomain()
		return err
	})
	if err != nil {
		return product.Product{}, err
	}
	return saved, nil
}

func (r *GormProductRepository) findExistingRow(tx *gorm.DB, p product.Product) (*models.ProductModel, error) {
	var existing models.ProductModel

	if p.HasShopifyID() {
		err := tx.First(&existing, "shopify_id = ?", p.ShopifyID()).Error
		if err == nil {
			return &existing, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("find by shopify id: %w", err)
		}
	}

	err := tx.First(&existing, "sku = ?", p.Sku().Value()).Error
	if err == nil {
		return &existing, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return nil, fmt.Errorf("find by sku: %w", err)
}

// FindBySku returns the product with the given SKU
func (r *GormProductRepository) FindBySku(ctx context.Context, sku product.Sku) (*product.Product, error) {
	return r.findOne(ctx, "sku = ?", sku.Value())
}

// FindByShopifyID returns the product linked to the given remote id
func (r *GormProductRepository) FindByShopifyID(ctx context.Context, shopifyID string) (*product.Product, error) {
	return r.findOne(ctx, "shopify_id = ?", shopifyID)
}

// FindByID returns the product with the given local id
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *GormProductRepository) findOne(ctx context.Context, query string, arg any) (*product.Product, error) {
	var model models.ProductModel
	err := r.db.WithContext(ctx).Preload("Variants").First(&model, query, arg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, product.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}

	p, err := model.ToDomain()
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindAll returns one page of products, newest first
func (r *GormProductRepository) FindAll(ctx context.Context, page, perPage int) (*product.ProductPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 15
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.ProductModel{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	var rows []models.ProductModel
	err := r.db.WithContext(ctx).
		Preload("Variants").
		Order("created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	data := make([]product.Product, 0, len(rows))
	for _, row := range rows {
		p, err := row.ToDomain()
		if err != nil {
			return nil, err
		}
		data = append(data, p)
	}

	return &product.ProductPage{
		Data:    data,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}

// Delete removes the product with the given SKU and its variants
func (r *GormProductRepository) Delete(ctx context.Context, sku product.Sku) error {
	return r.deleteWhere(ctx, "sku = ?", sku.Value())
}

// DeleteByID removes the product with the given local id and its variants
func (r *GormProductRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return r.deleteWhere(ctx, "id = ?", id)
}

func (r *GormProductRepository) deleteWhere(ctx context.Context, query string, arg any) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.ProductModel
		err := tx.First(&model, query, arg).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return product.ErrProductNotFound
		}
		if err != nil {
			return fmt.Errorf("find product for delete: %w", err)
		}

		if err := tx.Where("product_id = ?", model.ID).Delete(&models.ProductVariantModel{}).Error; err != nil {
			return fmt.Errorf("delete variants: %w", err)
		}
		if err := tx.Delete(&model).Error; err != nil {
			return fmt.Errorf("delete product: %w", err)
		}
		return nil
	})
}

// ExistsBySku reports whether a product with the given SKU exists
func (r *GormProductRepository) ExistsBySku(ctx context.Context, sku product.Sku) (bool, error) {
	return r.exists(ctx, "sku = ?", sku.Value())
}

// ExistsByShopifyID reports whether a product is linked to the remote id
func (r *GormProductRepository) ExistsByShopifyID(ctx context.Context, shopifyID string) (bool, error) {
	return r.exists(ctx, "shopify_id = ?", shopifyID)
}

func (r *GormProductRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ProductModel{}).Where(query, arg).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check product exists: %w", err)
	}
	return count > 0, nil
}

// Count returns the total number of products
func (r *GormProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ProductModel{}).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}

var _ product.ProductRepository = (*GormProductRepository)(nil)
