package config

import (
	"strings"
	"time"
)

// MarketplaceConfig configures the upstream marketplace API client.
type MarketplaceConfig struct {
	BaseURL string        `env:"MARKETPLACE_API_URL"     envDefault:"http://localhost:3000/api"`
	Timeout time.Duration `env:"MARKETPLACE_API_TIMEOUT" envDefault:"10s"`

	// ListItemsPath is a JMESPath expression that extracts the items of a list
	// envelope. Bare arrays are accepted regardless.
	ListItemsPath string `env:"MARKETPLACE_LIST_ITEMS_PATH" envDefault:"rows"`

	// ErrorMessagePath is a JMESPath expression that extracts a human message
	// from an error body.
	ErrorMessagePath string `env:"MARKETPLACE_ERROR_MESSAGE_PATH" envDefault:"message || error.message || error"`
}

// Sanitize trims expressions and restores the default timeout.
func (c *MarketplaceConfig) Sanitize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	c.ListItemsPath = strings.TrimSpace(c.ListItemsPath)
	c.ErrorMessagePath = strings.TrimSpace(c.ErrorMessagePath)
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
}
