// Package shopify contains the remote catalog client implementations:
// the authenticated Admin REST client, the read-only discovery client
// and a deterministic mock for development and tests.
package shopify

import "strings"

// staticTokenPrefix marks a Shopify Admin API access token.
const staticTokenPrefix = "shpat_"

// Config carries the platform credentials and endpoint settings
type Config struct {
	StoreDomain string
	AccessToken string
	APIKey      string
	APISecret   string
	APIVersion  string
	UseMock     bool
}

// HasStaticToken reports whether a usable Admin API token is configured
func (c Config) HasStaticToken() bool {
	return strings.HasPrefix(c.AccessToken, staticTokenPrefix)
}

// CanUseOAuth reports whether the client-credentials flow is available
func (c Config) CanUseOAuth() bool {
	return c.APIKey != "" && c.APISecret != ""
}
