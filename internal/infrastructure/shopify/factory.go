package shopify

import (
	"go.uber.org/zap"

	"github.com/shopsync/backend/internal/domain/shopify"
)

// NewClient selects the client strategy for the given credentials:
// a static Admin token gets the full read/write Admin client, an API
// key pair gets the read-only discovery client, and anything else
// (including an explicit mock flag) gets the deterministic mock.
func NewClient(cfg Config, logger *zap.Logger) shopify.Client {
	switch {
	case cfg.UseMock:
		logger.Info("Using mock Shopify client (configured)")
		return NewMockClient(logger)
	case cfg.HasStaticToken():
		logger.Info("Using Shopify Admin API client",
			zap.String("store_domain", cfg.StoreDomain),
			zap.String("api_version", cfg.APIVersion),
		)
		return NewAdminClient(cfg, logger)
	case cfg.CanUseOAuth():
		logger.Info("Using read-only Shopify discovery client",
			zap.String("store_domain", cfg.StoreDomain),
		)
		return NewDiscoveryClient(cfg, logger)
	default:
		logger.Warn("No Shopify credentials configured, using mock client")
		return NewMockClient(logger)
	}
}
