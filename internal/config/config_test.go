package config

import (
	"os"
	"testing"
	"time"

	"blogapi.app/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("RequiredFieldsMissing", func(t *testing.T) {
		os.Clearenv()

		config, err := LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, config)
		assert.Contains(t, err.Error(), "required key PB_URL missing")
	})

	t.Run("DefaultValues", func(t *testing.T) {
		os.Clearenv()
		require.NoError(t, os.Setenv("PB_URL", "http://127.0.0.1:8090"))

		config, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 8080, config.Server.Port)
		assert.Equal(t, "info", config.Server.LogLevel)
		assert.Equal(t, 5*time.Second, config.Backend.Timeout())
		assert.Equal(t, "post_stats", config.Backend.PostStatsCollection)
		assert.Equal(t, "comments", config.Backend.CommentsCollection)
		assert.Equal(t, "contact_messages", config.Backend.ContactMessagesCollection)
		assert.Equal(t, 5, config.Cache.StatsOneTTLSeconds)
		assert.Equal(t, 10, config.Cache.StatsMapTTLSeconds)
		assert.Equal(t, 10, config.Cache.StatsSortedTTLSeconds)
		assert.Equal(t, LedgerTypeFile, config.Views.LedgerType)
		assert.Equal(t, "data/views.log.jsonl", config.Views.LogPath)
		assert.True(t, config.Views.PerDay)
		assert.Zero(t, config.Views.ReloadInterval())
		assert.Equal(t, 300, config.Cooldown.CommentSeconds)
		assert.Equal(t, 600, config.Cooldown.ContactSeconds)
		assert.Equal(t, 10, config.Submit.RatePerMinute)
		assert.Equal(t, 5, config.Submit.Burst)
		assert.Equal(t, "views:seen", config.Redis.KeyPrefix)
	})

	t.Run("CustomValues", func(t *testing.T) {
		os.Clearenv()
		require.NoError(t, os.Setenv("PB_URL", "https://pb.example.com"))
		require.NoError(t, os.Setenv("SERVER_PORT", "9090"))
		require.NoError(t, os.Setenv("LOG_LEVEL", "debug"))
		require.NoError(t, os.Setenv("VIEWS_LEDGER_TYPE", "redis"))
		require.NoError(t, os.Setenv("REDIS_ADDR", "redis:6379"))
		require.NoError(t, os.Setenv("VIEWS_PER_DAY", "false"))
		require.NoError(t, os.Setenv("VIEWS_RELOAD_INTERVAL_MINUTES", "15"))
		require.NoError(t, os.Setenv("COMMENT_COOLDOWN_SECONDS", "60"))
		require.NoError(t, os.Setenv("CONTACT_NOTIFY_EMAIL", "owner@example.com"))

		config, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 9090, config.Server.Port)
		assert.Equal(t, "debug", config.Server.LogLevel)
		assert.Equal(t, LedgerTypeRedis, config.Views.LedgerType)
		assert.Equal(t, "redis:6379", config.Redis.Addr)
		assert.False(t, config.Views.PerDay)
		assert.Equal(t, 15*time.Minute, config.Views.ReloadInterval())
		assert.Equal(t, 60, config.Cooldown.CommentSeconds)
		assert.Equal(t, "owner@example.com", config.Contact.NotifyTo)
	})

	t.Run("InvalidValues", func(t *testing.T) {
		tests := []struct {
			name string
			env  map[string]string
		}{
			{"BadPort", map[string]string{"SERVER_PORT": "70000"}},
			{"BadLogLevel", map[string]string{"LOG_LEVEL": "loud"}},
			{"BadURL", map[string]string{"PB_URL": "pb.local"}},
			{"BadLedger", map[string]string{"VIEWS_LEDGER_TYPE": "memory"}},
			{"ZeroTTL", map[string]string{"CACHE_STATS_ONE_TTL_SECONDS": "0"}},
			{"NegativeLoadLimit", map[string]string{"VIEWS_LOG_LOAD_LIMIT": "-1"}},
			{"BadDriver", map[string]string{"VIEWS_LEDGER_TYPE": "database", "DB_DRIVER": "mysql"}},
			{"BadRedisDB", map[string]string{"VIEWS_LEDGER_TYPE": "redis", "REDIS_DB": "16"}},
			{"ZeroBurst", map[string]string{"SUBMIT_BURST": "0"}},
			{"BadNotifyEmail", map[string]string{"CONTACT_NOTIFY_EMAIL": "owner"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				os.Clearenv()
				require.NoError(t, os.Setenv("PB_URL", "http://127.0.0.1:8090"))
				for k, v := range tt.env {
					require.NoError(t, os.Setenv(k, v))
				}

				config, err := LoadConfig()
				assert.Nil(t, config)
				assert.True(t, errors.IsConfigurationError(err))
			})
		}
	})
}

func TestLedgerType(t *testing.T) {
	tests := []struct {
		in    string
		want  LedgerType
		valid bool
	}{
		{"file", LedgerTypeFile, true},
		{"Database", LedgerTypeDatabase, true},
		{" redis ", LedgerTypeRedis, true},
		{"memory", LedgerTypeUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var lt LedgerType
			require.NoError(t, lt.UnmarshalText([]byte(tt.in)))
			assert.Equal(t, tt.want, lt)
			assert.Equal(t, tt.valid, lt.IsValid())
		})
	}

	text, err := LedgerTypeDatabase.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "database", string(text))
}

func TestDatabaseConfig_SQLite(t *testing.T) {
	d := DatabaseConfig{Driver: "sqlite", SQLitePath: "data/views.db"}
	assert.NoError(t, d.Validate())

	d.SQLitePath = ""
	assert.Error(t, d.Validate())
}

func TestDatabaseConfig_GetDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", Name: "blog", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=blog sslmode=disable", d.GetDSN())
}
