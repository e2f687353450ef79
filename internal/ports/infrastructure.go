package ports

import "time"

// AppConfig represents application configuration
type AppConfig struct {
	Port     int
	LogLevel string
}

// CacheTTLConfig holds the lifetimes of the cached backend lookups
type CacheTTLConfig struct {
	StatsOne    time.Duration
	StatsMap    time.Duration
	StatsSorted time.Duration
}

// CooldownConfig holds the minimum spacing between rate-limited actions
type CooldownConfig struct {
	Comment time.Duration
	Contact time.Duration
}

// ViewsConfig represents unique view counting configuration
type ViewsConfig struct {
	LedgerType string
	PerDay     bool
	LoadLimit  int
}

// BackendConfig represents backend record store configuration
type BackendConfig struct {
	BaseURL                   string
	PostStatsCollection       string
	CommentsCollection        string
	ContactMessagesCollection string
}

// ContactConfig represents contact form configuration
type ContactConfig struct {
	NotifyTo       string
	CaptchaEnabled bool
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetAppConfig() AppConfig
	GetCacheTTLConfig() CacheTTLConfig
	GetCooldownConfig() CooldownConfig
	GetViewsConfig() ViewsConfig
	GetBackendConfig() BackendConfig
	GetContactConfig() ContactConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}
