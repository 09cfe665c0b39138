package product

import (
	"context"

	"go.uber.org/zap"

	"github.com/shopsync/backend/internal/domain/product"
)

// BulkImportError records one failed item of a bulk import
type BulkImportError struct {
	ShopifyID string `json:"shopify_id"`
	Message   string `json:"message"`
}

// BulkImportResult summarizes a bulk import run
type BulkImportResult struct {
	SuccessCount int               `json:"success_count"`
	FailedCount  int               `json:"failed_count"`
	SkippedCount int               `json:"skipped_count"`
	Errors       []BulkImportError `json:"errors"`
}

// TotalProcessed returns the number of items the run looked at
func (r BulkImportResult) TotalProcessed() int {
	return r.SuccessCount + r.FailedCount + r.SkippedCount
}

// HasErrors returns true if any item failed
func (r BulkImportResult) HasErrors() bool {
	return r.FailedCount > 0
}

// SuccessRate returns the percentage of successful items, 0 for an empty run
func (r BulkImportResult) SuccessRate() float64 {
	total := r.TotalProcessed()
	if total == 0 {
		return 0
	}
	return float64(r.SuccessCount) / float64(total) * 100
}

// BulkImportService imports a batch of remote products, isolating
// per-item failures so one bad product never aborts the run.
type BulkImportService struct {
	repo   product.ProductRepository
	sync   *SyncService
	logger *zap.Logger
}

// NewBulkImportService creates a new BulkImportService
func NewBulkImportService(repo product.ProductRepository, sync *SyncService, logger *zap.Logger) *BulkImportService {
	return &BulkImportService{
		repo:   repo,
		sync:   sync,
		logger: logger,
	}
}

// Execute imports the given remote product ids. With skipDuplicates set,
// products already known locally are counted as skipped without a remote
// call; otherwise every item is force-synced. Failed items are recorded
// in the result and the loop continues.
func (s *BulkImportService) Execute(ctx context.Context, shopifyIDs []string, skipDuplicates bool) BulkImportResult {
	var result BulkImportResult

	for _, shopifyID := range shopifyIDs {
		if skipDuplicates {
			exists, err := s.repo.ExistsByShopifyID(ctx, shopifyID)
			if err != nil {
				result.FailedCount++
				result.Errors = append(result.Errors, BulkImportError{
					ShopifyID: shopifyID,
					Message:   err.Error(),
				})
				continue
			}
			if exists {
				result.SkippedCount++
				continue
			}
		}

		if _, err := s.sync.Execute(ctx, shopifyID, !skipDuplicates); err != nil {
			result.FailedCount++
			result.Errors = append(result.Errors, BulkImportError{
				ShopifyID: shopifyID,
				Message:   err.Error(),
			})
			continue
		}
		result.SuccessCount++
	}

	s.logger.Info("Bulk import finished",
		zap.Int("total", result.TotalProcessed()),
		zap.Int("success", result.SuccessCount),
		zap.Int("failed", result.FailedCount),
		zap.Int("skipped", result.SkippedCount),
		zap.Float64("success_rate", result.SuccessRate()),
	)

	return result
}
