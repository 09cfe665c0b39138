package product

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/shopsync/backend/internal/domain/product"
)

// DefaultListTTL bounds how long a cached listing page may serve stale data.
const DefaultListTTL = 5 * time.Minute

// QueryService serves the read side of the catalog. Listing pages are
// cached under the products tag so syncs and deletes invalidate them.
type QueryService struct {
	repo    product.ProductRepository
	cache   Cache
	keys    CacheKeyGenerator
	listTTL time.Duration
	logger  *zap.Logger
}

// NewQueryService creates a new QueryService. A non-positive listTTL
// falls back to DefaultListTTL.
func NewQueryService(repo product.ProductRepository, cache Cache, listTTL time.Duration, logger *zap.Logger) *QueryService {
	if listTTL <= 0 {
		listTTL = DefaultListTTL
	}
	return &QueryService{
		repo:    repo,
		cache:   cache,
		listTTL: listTTL,
		logger:  logger,
	}
}

// List returns one page of products, served from cache when possible
func (s *QueryService) List(ctx context.Context, page, perPage int) (*ProductListDTO, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 15
	}

	payload, err := s.cache.RememberWithTags(ctx, []string{ProductsTag}, s.keys.ProductsListKey(page, perPage), s.listTTL, func() (string, error) {
		result, err := s.repo.FindAll(ctx, page, perPage)
		if err != nil {
			return "", err
		}

		dtos := make([]ProductDTO, 0, len(result.Data))
		for _, p := range result.Data {
			dtos = append(dtos, ToProductDTO(p))
		}

		raw, err := json.Marshal(ProductListDTO{
			Data:    dtos,
			Total:   result.Total,
			Page:    result.Page,
			PerPage: result.PerPage,
		})
		if err != nil {
			return "", err
		}
		return string(raw), nil
	})
	if err != nil {
		return nil, err
	}

	var list ProductListDTO
	if err := json.Unmarshal([]byte(payload), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetBySku returns a single product by SKU
func (s *QueryService) GetBySku(ctx context.Context, rawSku string) (*ProductDTO, error) {
	sku, err := product.NewSku(rawSku)
	if err != nil {
		return nil, err
	}

	p, err := s.repo.FindBySku(ctx, sku)
	if err != nil {
		return nil, err
	}

	dto := ToProductDTO(*p)
	return &dto, nil
}

// Delete removes a product by SKU and invalidates cached listings
func (s *QueryService) Delete(ctx context.Context, rawSku string) error {
	sku, err := product.NewSku(rawSku)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, sku); err != nil {
		return err
	}

	if err := s.cache.FlushTags(ctx, []string{ProductsTag}); err != nil {
		s.logger.Warn("Failed to flush product cache after delete",
			zap.String("sku", sku.Value()),
			zap.Error(err),
		)
	}

	s.logger.Info("Product deleted", zap.String("sku", sku.Value()))
	return nil
}
