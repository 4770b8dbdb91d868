package collector

import (
	"fmt"

	"github.com/qepting91/reddit-hotwalk/internal/config"
	"github.com/qepting91/reddit-hotwalk/internal/domain"
)

// NewCollector selects the correct implementation based on the mode
func NewCollector(cfg config.Reddit) (domain.Collector, error) {
	switch cfg.Mode {
	case "public", "":
		return NewPublicClient(cfg.BaseURL, cfg.UserAgent, cfg.Timeout, cfg.RequestInterval)
	case "api":
		if cfg.UserAgent == "" {
			return nil, fmt.Errorf("REDDIT_USER_AGENT is required for api mode")
		}
		return NewAPIClient(Credentials{
			ID:       cfg.ClientID,
			Secret:   cfg.ClientSecret,
			Username: cfg.Username,
			Password: cfg.Password,
		}, cfg.BaseURL, cfg.UserAgent, cfg.Timeout, cfg.RequestInterval)
	case "mock":
		return NewMockClient(), nil
	default:
		return nil, fmt.Errorf("unknown COLLECTOR_MODE: %s (use 'public', 'api', or 'mock')", cfg.Mode)
	}
}
