package infrastructure

import (
	"time"

	"blogapi.app/internal/config"
	"blogapi.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetAppConfig returns application configuration
func (c *ConfigProviderAdapter) GetAppConfig() ports.AppConfig {
	return ports.AppConfig{
		Port:     c.config.Server.Port,
		LogLevel: c.config.Server.LogLevel,
	}
}

// GetCacheTTLConfig returns the lifetimes of cached stats lookups
func (c *ConfigProviderAdapter) GetCacheTTLConfig() ports.CacheTTLConfig {
	return ports.CacheTTLConfig{
		StatsOne:    seconds(c.config.Cache.StatsOneTTLSeconds),
		StatsMap:    seconds(c.config.Cache.StatsMapTTLSeconds),
		StatsSorted: seconds(c.config.Cache.StatsSortedTTLSeconds),
	}
}

// GetCooldownConfig returns the comment and contact cooldowns
func (c *ConfigProviderAdapter) GetCooldownConfig() ports.CooldownConfig {
	return ports.CooldownConfig{
		Comment: seconds(c.config.Cooldown.CommentSeconds),
		Contact: seconds(c.config.Cooldown.ContactSeconds),
	}
}

// GetViewsConfig returns unique view counting configuration
func (c *ConfigProviderAdapter) GetViewsConfig() ports.ViewsConfig {
	return ports.ViewsConfig{
		LedgerType: c.config.Views.LedgerType.String(),
		PerDay:     c.config.Views.PerDay,
		LoadLimit:  c.config.Views.LoadLimit,
	}
}

// GetBackendConfig returns record store configuration
func (c *ConfigProviderAdapter) GetBackendConfig() ports.BackendConfig {
	return ports.BackendConfig{
		BaseURL:                   c.config.Backend.URL,
		PostStatsCollection:       c.config.Backend.PostStatsCollection,
		CommentsCollection:        c.config.Backend.CommentsCollection,
		ContactMessagesCollection: c.config.Backend.ContactMessagesCollection,
	}
}

// GetContactConfig returns contact form configuration
func (c *ConfigProviderAdapter) GetContactConfig() ports.ContactConfig {
	return ports.ContactConfig{
		NotifyTo:       c.config.Contact.NotifyTo,
		CaptchaEnabled: c.config.Contact.CaptchaEnabled,
	}
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

var _ ports.ConfigProvider = (*ConfigProviderAdapter)(nil)
