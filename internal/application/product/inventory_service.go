package product

import (
	"context"

	"go.uber.org/zap"

	"github.com/shopsync/backend/internal/domain/product"
)

// InventoryService adjusts the local stock quantity of a product.
// Remote inventory is not touched here; pushing stock back to the
// platform is a separate concern of the shopify client.
type InventoryService struct {
	repo       product.ProductRepository
	dispatcher EventDispatcher
	logger     *zap.Logger
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(repo product.ProductRepository, dispatcher EventDispatcher, logger *zap.Logger) *InventoryService {
	return &InventoryService{
		repo:       repo,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Execute sets the quantity of the product identified by rawSku and
// emits an InventoryUpdated event carrying the previous and new values.
// Fails with ErrProductNotFound for an unknown SKU without writing.
func (s *InventoryService) Execute(ctx context.Context, rawSku string, quantity int, reason string) error {
	sku, err := product.NewSku(rawSku)
	if err != nil {
		return err
	}
	if quantity < 0 {
		return product.ErrNegativeInventory
	}

	existing, err := s.repo.FindBySku(ctx, sku)
	if err != nil {
		return err
	}

	previous := existing.InventoryQuantity()

	updated, err := existing.WithInventoryQuantity(quantity)
	if err != nil {
		return err
	}

	if _, err := s.repo.Save(ctx, updated); err != nil {
		return err
	}

	event := product.NewInventoryUpdatedEvent(sku, previous, quantity, reason)
	if err := s.dispatcher.Dispatch(ctx, event); err != nil {
		return err
	}

	s.logger.Info("Inventory updated",
		zap.String("sku", sku.Value()),
		zap.Int("previous_quantity", previous),
		zap.Int("new_quantity", quantity),
		zap.String("reason", reason),
	)

	return nil
}
