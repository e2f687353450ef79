package storage

import (
	"context"
	"fmt"

	"blogapi.app/internal/adapters/database"
	"blogapi.app/internal/config"
	"blogapi.app/internal/core/uniqueevent"
	"blogapi.app/internal/ports"
	"blogapi.app/pkg/errors"
	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"
)

// Ledger is a views ledger together with the resources it owns
type Ledger struct {
	ports.UniqueEventLedger
	Type config.LedgerType

	// FileLog is set for the file ledger, DB for the database ledger and Redis for the redis ledger
	FileLog *FileEventLog
	Log     *uniqueevent.Log
	DB      *gorm.DB
	Redis   *RedisLedgerAdapter
}

// Close releases the ledger's file, connection pool or client
func (l *Ledger) Close() error {
	switch {
	case l.FileLog != nil:
		return l.FileLog.Close()
	case l.DB != nil:
		sqlDB, err := l.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	case l.Redis != nil:
		return l.Redis.Close()
	}
	return nil
}

// Ping checks the backing store is reachable
func (l *Ledger) Ping(ctx context.Context) error {
	switch {
	case l.DB != nil:
		sqlDB, err := l.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	case l.Redis != nil:
		return l.Redis.Ping(ctx)
	}
	return nil
}

type LedgerFactory struct {
	clock  clockwork.Clock
	logger ports.Logger
}

func NewLedgerFactory(clock clockwork.Clock, logger ports.Logger) *LedgerFactory {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &LedgerFactory{clock: clock, logger: logger}
}

// CreateLedger builds the ledger selected by VIEWS_LEDGER_TYPE. The result is not loaded yet.
func (f *LedgerFactory) CreateLedger(cfg *config.Config) (*Ledger, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("config cannot be nil", nil)
	}

	switch cfg.Views.LedgerType {
	case config.LedgerTypeFile:
		fileLog, err := NewFileEventLog(cfg.Views.LogPath, cfg.Views.Fsync)
		if err != nil {
			return nil, err
		}
		log, err := uniqueevent.NewLog(uniqueevent.Dependencies{
			Store:  fileLog,
			Clock:  f.clock,
			Logger: f.logger,
		})
		if err != nil {
			_ = fileLog.Close()
			return nil, err
		}
		return &Ledger{UniqueEventLedger: log, Type: config.LedgerTypeFile, FileLog: fileLog, Log: log}, nil

	case config.LedgerTypeDatabase:
		db, err := database.Open(cfg.Database)
		if err != nil {
			return nil, err
		}
		return &Ledger{
			UniqueEventLedger: database.NewViewLedgerAdapter(db, f.clock),
			Type:              config.LedgerTypeDatabase,
			DB:                db,
		}, nil

	case config.LedgerTypeRedis:
		redisLedger, err := NewRedisLedgerAdapter(&cfg.Redis, f.clock)
		if err != nil {
			return nil, err
		}
		return &Ledger{UniqueEventLedger: redisLedger, Type: config.LedgerTypeRedis, Redis: redisLedger}, nil

	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported views ledger type: %s", cfg.Views.LedgerType.String()), nil)
	}
}
