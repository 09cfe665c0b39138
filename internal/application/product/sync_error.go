package product

import "fmt"

// SyncError wraps any failure during a single-product sync, preserving
// the remote product id and the original cause.
type SyncError struct {
	ShopifyID string
	Err       error
}

// Error implements the error interface
func (e *SyncError) Error() string {
	return fmt.Sprintf("failed to sync product %s from Shopify: %v", e.ShopifyID, e.Err)
}

// Unwrap exposes the original cause to errors.Is / errors.As
func (e *SyncError) Unwrap() error {
	return e.Err
}

// NewSyncError wraps err with the remote product id
func NewSyncError(shopifyID string, err error) *SyncError {
	return &SyncError{ShopifyID: shopifyID, Err: err}
}
