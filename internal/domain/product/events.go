package product

import (
	"github.com/shopsync/backend/internal/domain/shared"
)

// Event types emitted by the catalog domain
const (
	EventTypeProductSynced    = "product.synced"
	EventTypeInventoryUpdated = "product.inventory_updated"
	EventTypeProductCreated   = "product.created"
)

// SyncSourceShopify identifies the Shopify platform as the origin of a sync.
const SyncSourceShopify = "shopify"

// eventTimeLayout is the fixed wire format for event timestamps.
const eventTimeLayout = "2006-01-02 15:04:05"

// ProductSyncedEvent is emitted after a product has been fetched from the
// remote catalog and persisted locally.
type ProductSyncedEvent struct {
	shared.BaseDomainEvent
	Product Product
	Source  string
}

// NewProductSyncedEvent stamps a ProductSyncedEvent at construction time
func NewProductSyncedEvent(p Product, source string) *ProductSyncedEvent {
	return &ProductSyncedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductSynced),
		Product:         p,
		Source:          source,
	}
}

// ToMap renders the event as a flat mapping for transport
func (e *ProductSyncedEvent) ToMap() map[string]any {
	return map[string]any{
		"event_id":    e.EventID().String(),
		"event_type":  e.EventType(),
		"sku":         e.Product.Sku().Value(),
		"shopify_id":  e.Product.ShopifyID(),
		"title":       e.Product.Title(),
		"source":      e.Source,
		"occurred_at": e.OccurredAt().Format(eventTimeLayout),
	}
}

// InventoryUpdatedEvent is emitted after a local inventory adjustment.
type InventoryUpdatedEvent struct {
	shared.BaseDomainEvent
	Sku              Sku
	PreviousQuantity int
	NewQuantity      int
	Reason           string
}

// NewInventoryUpdatedEvent stamps an InventoryUpdatedEvent at construction time
func NewInventoryUpdatedEvent(sku Sku, previous, updated int, reason string) *InventoryUpdatedEvent {
	return &InventoryUpdatedEvent{
		BaseDomainEvent:  shared.NewBaseDomainEvent(EventTypeInventoryUpdated),
		Sku:              sku,
		PreviousQuantity: previous,
		NewQuantity:      updated,
		Reason:           reason,
	}
}

// Difference returns the signed quantity change
func (e *InventoryUpdatedEvent) Difference() int {
	return e.NewQuantity - e.PreviousQuantity
}

// IsIncrease returns true if stock went up
func (e *InventoryUpdatedEvent) IsIncrease() bool {
	return e.Difference() > 0
}

// IsDecrease returns true if stock went down
func (e *InventoryUpdatedEvent) IsDecrease() bool {
	return e.Difference() < 0
}

// ToMap renders the event as a flat mapping for transport
func (e *InventoryUpdatedEvent) ToMap() map[string]any {
	return map[string]any{
		"event_id":          e.EventID().String(),
		"event_type":        e.EventType(),
		"sku":               e.Sku.Value(),
		"previous_quantity": e.PreviousQuantity,
		"new_quantity":      e.NewQuantity,
		"difference":        e.Difference(),
		"reason":            e.Reason,
		"occurred_at":       e.OccurredAt().Format(eventTimeLayout),
	}
}

// ProductCreatedEvent is emitted when a product is created locally.
type ProductCreatedEvent struct {
	shared.BaseDomainEvent
	Product Product
}

// NewProductCreatedEvent stamps a ProductCreatedEvent at construction time
func NewProductCreatedEvent(p Product) *ProductCreatedEvent {
	return &ProductCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductCreated),
		Product:         p,
	}
}

// ToMap renders the event as a flat mapping for transport
func (e *ProductCreatedEvent) ToMap() map[string]any {
	return map[string]any{
		"event_id":    e.EventID().String(),
		"event_type":  e.EventType(),
		"sku":         e.Product.Sku().Value(),
		"title":       e.Product.Title(),
		"status":      e.Product.Status().String(),
		"occurred_at": e.OccurredAt().Format(eventTimeLayout),
	}
}
