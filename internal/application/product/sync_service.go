package product

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/shopsync/backend/internal/domain/product"
	"github.com/shopsync/backend/internal/domain/shopify"
)

// SyncService imports a single product from the remote catalog into the
// local store.
type SyncService struct {
	repo       product.ProductRepository
	client     shopify.Client
	cache      Cache
	dispatcher EventDispatcher
	logger     *zap.Logger
}

// NewSyncService creates a new SyncService
func NewSyncService(
	repo product.ProductRepository,
	client shopify.Client,
	cache Cache,
	dispatcher EventDispatcher,
	logger *zap.Logger,
) *SyncService {
	return &SyncService{
		repo:       repo,
		client:     client,
		cache:      cache,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Execute syncs the product identified by shopifyID. When the product is
// already known locally and forceUpdate is false, the local copy is
// returned without any remote call. Otherwise remote data is fetched,
// parsed, reconciled against the existing row (local id transplant so
// persistence updates in place), persisted, the products cache tag is
// flushed and a ProductSynced event is dispatched. Every failure is
// logged and wrapped in a SyncError preserving the remote id.
func (s *SyncService) Execute(ctx context.Context, shopifyID string, forceUpdate bool) (*product.Product, error) {
	existing, err := s.repo.FindByShopifyID(ctx, shopifyID)
	if err != nil && !errors.Is(err, product.ErrProductNotFound) {
		return nil, s.fail(shopifyID, err)
	}

	if existing != nil && !forceUpdate {
		s.logger.Info("Product already synced, skipping",
			zap.String("shopify_id", shopifyID),
			zap.String("sku", existing.Sku().Value()),
		)
		return existing, nil
	}

	data, err := s.client.GetProduct(ctx, shopifyID)
	if err != nil {
		return nil, s.fail(shopifyID, err)
	}

	p, err := product.FromShopifyData(*data)
	if err != nil {
		return nil, s.fail(shopifyID, err)
	}

	if existing != nil {
		p = p.WithID(existing.ID())
	}

	saved, err := s.repo.Save(ctx, p)
	if err != nil {
		return nil, s.fail(shopifyID, err)
	}

	if err := s.cache.FlushTags(ctx, []string{ProductsTag}); err != nil {
		return nil, s.fail(shopifyID, err)
	}

	if err := s.dispatcher.Dispatch(ctx, product.NewProductSyncedEvent(saved, product.SyncSourceShopify)); err != nil {
		return nil, s.fail(shopifyID, err)
	}

	s.logger.Info("Product synced from Shopify",
		zap.String("shopify_id", shopifyID),
		zap.String("sku", saved.Sku().Value()),
		zap.Bool("force_update", forceUpdate),
	)

	return &saved, nil
}

func (s *SyncService) fail(shopifyID string, err error) error {
	s.logger.Error("Product sync failed",
		zap.String("shopify_id", shopifyID),
		zap.Error(err),
	)
	return NewSyncError(shopifyID, err)
}
