package config

import (
	"fmt"
	"strings"
	"time"

	"blogapi.app/pkg/errors"
	"github.com/kelseyhightower/envconfig"
)

const (
	maxRedisDB        = 15
	maxPortNumber     = 65535
	maxCacheTTLSecond = 3600
	maxLoadLimit      = 10_000_000
)

// Config represents the application configuration structure
type Config struct {
	Server   ServerConfig   `split_words:"true"`
	Backend  BackendConfig  `split_words:"true"`
	Cache    CacheConfig    `split_words:"true"`
	Views    ViewsConfig    `split_words:"true"`
	Database DatabaseConfig `split_words:"true"`
	Redis    RedisConfig    `split_words:"true"`
	Cooldown CooldownConfig `split_words:"true"`
	Submit   SubmitConfig   `split_words:"true"`
	Contact  ContactConfig  `split_words:"true"`
}

type ServerConfig struct {
	Port       int    `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	AdminToken string `envconfig:"ADMIN_TOKEN"`
}

// BackendConfig configures the PocketBase record store
type BackendConfig struct {
	URL                       string `envconfig:"PB_URL" required:"true"`
	Token                     string `envconfig:"PB_TOKEN"`
	TimeoutSeconds            int    `envconfig:"PB_TIMEOUT_SECONDS" default:"5"`
	PostsCollection           string `envconfig:"PB_POSTS_COLLECTION" default:"posts"`
	PostStatsCollection       string `envconfig:"PB_POST_STATS_COLLECTION" default:"post_stats"`
	CommentsCollection        string `envconfig:"PB_COMMENTS_COLLECTION" default:"comments"`
	ContactMessagesCollection string `envconfig:"PB_CONTACT_MESSAGES_COLLECTION" default:"contact_messages"`
	LogFilePath               string `envconfig:"BACKEND_LOG_FILE_PATH"`
}

func (b BackendConfig) Timeout() time.Duration {
	return time.Duration(b.TimeoutSeconds) * time.Second
}

type CacheConfig struct {
	StatsOneTTLSeconds    int `envconfig:"CACHE_STATS_ONE_TTL_SECONDS" default:"5"`
	StatsMapTTLSeconds    int `envconfig:"CACHE_STATS_MAP_TTL_SECONDS" default:"10"`
	StatsSortedTTLSeconds int `envconfig:"CACHE_STATS_SORTED_TTL_SECONDS" default:"10"`
}

// LedgerType selects where the unique view ledger keeps seen pairs
type LedgerType int

const (
	LedgerTypeUnknown LedgerType = iota
	LedgerTypeFile
	LedgerTypeDatabase
	LedgerTypeRedis
)

// String returns the string representation of ledger type
func (l LedgerType) String() string {
	switch l {
	case LedgerTypeFile:
		return "file"
	case LedgerTypeDatabase:
		return "database"
	case LedgerTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the ledger type is valid
func (l LedgerType) IsValid() bool {
	return l == LedgerTypeFile || l == LedgerTypeDatabase || l == LedgerTypeRedis
}

// LedgerTypeFromString converts string to LedgerType enum
func LedgerTypeFromString(s string) LedgerType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "file":
		return LedgerTypeFile
	case "database":
		return LedgerTypeDatabase
	case "redis":
		return LedgerTypeRedis
	default:
		return LedgerTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (l *LedgerType) UnmarshalText(text []byte) error {
	*l = LedgerTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (l LedgerType) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

type ViewsConfig struct {
	LedgerType            LedgerType `envconfig:"VIEWS_LEDGER_TYPE" default:"file"`
	LogPath               string     `envconfig:"VIEWS_LOG_PATH" default:"data/views.log.jsonl"`
	LoadLimit             int        `envconfig:"VIEWS_LOG_LOAD_LIMIT" default:"0"`
	Fsync                 bool       `envconfig:"VIEWS_LOG_FSYNC" default:"false"`
	PerDay                bool       `envconfig:"VIEWS_PER_DAY" default:"true"`
	ReloadIntervalMinutes int        `envconfig:"VIEWS_RELOAD_INTERVAL_MINUTES" default:"0"`
}

func (v ViewsConfig) ReloadInterval() time.Duration {
	return time.Duration(v.ReloadIntervalMinutes) * time.Minute
}

type DatabaseConfig struct {
	Driver     string `envconfig:"DB_DRIVER" default:"postgres"`
	Host       string `envconfig:"DB_HOST" default:"localhost"`
	Port       int    `envconfig:"DB_PORT" default:"5432"`
	User       string `envconfig:"DB_USER" default:"postgres"`
	Password   string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name       string `envconfig:"DB_NAME" default:"blogapi"`
	SSLMode    string `envconfig:"DB_SSL_MODE" default:"disable"`
	SQLitePath string `envconfig:"DB_SQLITE_PATH" default:"data/views.db"`
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
	KeyPrefix    string `envconfig:"REDIS_KEY_PREFIX" default:"views:seen"`
}

type CooldownConfig struct {
	CommentSeconds int `envconfig:"COMMENT_COOLDOWN_SECONDS" default:"300"`
	ContactSeconds int `envconfig:"CONTACT_COOLDOWN_SECONDS" default:"600"`
}

// SubmitConfig limits how fast one client may hit the submission endpoints
type SubmitConfig struct {
	RatePerMinute int `envconfig:"SUBMIT_RATE_PER_MINUTE" default:"10"`
	Burst         int `envconfig:"SUBMIT_BURST" default:"5"`
}

type ContactConfig struct {
	NotifyTo       string `envconfig:"CONTACT_NOTIFY_EMAIL"`
	CaptchaEnabled bool   `envconfig:"CONTACT_CAPTCHA_ENABLED" default:"false"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Backend.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.Views.Validate(); err != nil {
		return err
	}
	switch c.Views.LedgerType {
	case LedgerTypeDatabase:
		if err := c.Database.Validate(); err != nil {
			return err
		}
	case LedgerTypeRedis:
		if err := c.Redis.Validate(); err != nil {
			return err
		}
	}
	if err := c.Cooldown.Validate(); err != nil {
		return err
	}
	if err := c.Submit.Validate(); err != nil {
		return err
	}
	return c.Contact.Validate()
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	switch strings.ToLower(s.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
	}
	return nil
}

func (b *BackendConfig) Validate() error {
	if b.URL == "" {
		return errors.NewConfigurationError("PB_URL cannot be empty", nil)
	}
	if !strings.HasPrefix(b.URL, "http://") && !strings.HasPrefix(b.URL, "https://") {
		return errors.NewConfigurationError("PB_URL must start with http:// or https://", nil)
	}
	if b.TimeoutSeconds < 1 {
		return errors.NewConfigurationError("PB_TIMEOUT_SECONDS must be at least 1 second", nil)
	}
	if b.PostStatsCollection == "" || b.CommentsCollection == "" || b.ContactMessagesCollection == "" {
		return errors.NewConfigurationError("PocketBase collection names cannot be empty", nil)
	}
	return nil
}

func (c *CacheConfig) Validate() error {
	for name, v := range map[string]int{
		"CACHE_STATS_ONE_TTL_SECONDS":    c.StatsOneTTLSeconds,
		"CACHE_STATS_MAP_TTL_SECONDS":    c.StatsMapTTLSeconds,
		"CACHE_STATS_SORTED_TTL_SECONDS": c.StatsSortedTTLSeconds,
	} {
		if v < 1 || v > maxCacheTTLSecond {
			return errors.NewConfigurationError(fmt.Sprintf("%s must be between 1 and %d seconds", name, maxCacheTTLSecond), nil)
		}
	}
	return nil
}

func (v *ViewsConfig) Validate() error {
	if !v.LedgerType.IsValid() {
		return errors.NewConfigurationError("VIEWS_LEDGER_TYPE must be one of: file, database, redis", nil)
	}
	if v.LedgerType == LedgerTypeFile && v.LogPath == "" {
		return errors.NewConfigurationError("VIEWS_LOG_PATH cannot be empty when using the file ledger", nil)
	}
	if v.LoadLimit < 0 || v.LoadLimit > maxLoadLimit {
		return errors.NewConfigurationError("VIEWS_LOG_LOAD_LIMIT must be between 0 and 10000000", nil)
	}
	if v.ReloadIntervalMinutes < 0 {
		return errors.NewConfigurationError("VIEWS_RELOAD_INTERVAL_MINUTES cannot be negative", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	switch d.Driver {
	case "sqlite":
		if d.SQLitePath == "" {
			return errors.NewConfigurationError("DB_SQLITE_PATH cannot be empty when DB_DRIVER is sqlite", nil)
		}
		return nil
	case "postgres":
	default:
		return errors.NewConfigurationError("DB_DRIVER must be one of: postgres, sqlite", nil)
	}

	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using the redis ledger", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	if r.KeyPrefix == "" {
		return errors.NewConfigurationError("REDIS_KEY_PREFIX cannot be empty", nil)
	}
	return nil
}

func (c *CooldownConfig) Validate() error {
	if c.CommentSeconds < 0 {
		return errors.NewConfigurationError("COMMENT_COOLDOWN_SECONDS cannot be negative", nil)
	}
	if c.ContactSeconds < 0 {
		return errors.NewConfigurationError("CONTACT_COOLDOWN_SECONDS cannot be negative", nil)
	}
	return nil
}

func (s *SubmitConfig) Validate() error {
	if s.RatePerMinute < 1 {
		return errors.NewConfigurationError("SUBMIT_RATE_PER_MINUTE must be at least 1", nil)
	}
	if s.Burst < 1 {
		return errors.NewConfigurationError("SUBMIT_BURST must be at least 1", nil)
	}
	return nil
}

func (c *ContactConfig) Validate() error {
	if c.NotifyTo != "" && !strings.Contains(c.NotifyTo, "@") {
		return errors.NewConfigurationError("CONTACT_NOTIFY_EMAIL must be a valid email address", nil)
	}
	return nil
}
