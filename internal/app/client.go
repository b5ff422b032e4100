package app

import (
	"fmt"

	"github.com/samvad-hq/vzaar-go/internal/config"
	"github.com/samvad-hq/vzaar-go/internal/logger"
	"github.com/samvad-hq/vzaar-go/pkg/httpclient"
	"github.com/samvad-hq/vzaar-go/pkg/vzaar"
)

// NewClient builds an API client from config, logging through log.
func NewClient(cfg *config.Config, log logger.Logger) (*vzaar.Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}

	client, err := vzaar.NewFromSource(cfg,
		vzaar.WithHTTPClient(httpclient.NewRestyClient(cfg.HTTPTimeout)),
		vzaar.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("init vzaar client: %w", err)
	}

	settings := client.Settings()
	log.InfoObj("vzaar client initialized", "client_config", map[string]any{
		"base_url":        settings.BaseURL,
		"profile":         cfg.Profile,
		"max_video_size":  settings.MaxVideoSize,
		"timeout_seconds": int(cfg.HTTPTimeout.Seconds()),
	})
	return client, nil
}
