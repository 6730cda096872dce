package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/renato0307/bancada/internal/config"
	"github.com/renato0307/bancada/internal/domain"
	"github.com/renato0307/bancada/internal/logging"
	"github.com/renato0307/bancada/internal/ports"
)

const maxRetries = 5

// SQLiteRecentRepository implements ports.RecentRepository on a key-value table
type SQLiteRecentRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.RecentRepository = (*SQLiteRecentRepository)(nil)

// NewSQLiteRecentRepository opens (creating if needed) the UI-local store
func NewSQLiteRecentRepository(dbPath string) (*SQLiteRecentRepository, error) {
	dbPath = config.ExpandPath(dbPath)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for concurrent access
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&KVModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate local_kv schema: %w", err)
	}

	repo := &SQLiteRecentRepository{db: db}
	if err := repo.ensureSchemaVersion(); err != nil {
		return nil, err
	}

	logging.Logger.Debug("Opened local store", "path", dbPath)
	return repo, nil
}

// ensureSchemaVersion records the format version on first open and refuses newer ones
func (r *SQLiteRecentRepository) ensureSchemaVersion() error {
	value, found, err := r.get(context.Background(), KeySchemaVersion)
	if err != nil {
		return err
	}
	if !found {
		return r.put(context.Background(), KeySchemaVersion, strconv.Itoa(domain.RecentItemsVersion))
	}
	version, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid schema_version %q: %w", value, err)
	}
	if version > domain.RecentItemsVersion {
		return fmt.Errorf("local store schema version %d is newer than supported version %d", version, domain.RecentItemsVersion)
	}
	return nil
}

// LoadRecent implements RecentRepository.LoadRecent; a missing key is an empty list
func (r *SQLiteRecentRepository) LoadRecent(ctx context.Context, kind domain.RecentKind) (domain.RecentList, error) {
	value, _, err := r.get(ctx, recentKey(kind))
	if err != nil {
		return nil, err
	}
	return recentListFromValue(value)
}

// SaveRecent implements RecentRepository.SaveRecent
func (r *SQLiteRecentRepository) SaveRecent(ctx context.Context, kind domain.RecentKind, list domain.RecentList) error {
	value, err := recentListToValue(list)
	if err != nil {
		return err
	}
	if err := r.put(ctx, recentKey(kind), value); err != nil {
		return err
	}
	logging.Logger.Debug("Saved recent list", "kind", kind, "count", len(list))
	return nil
}

// Close closes the database connection
func (r *SQLiteRecentRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (r *SQLiteRecentRepository) get(ctx context.Context, key string) (string, bool, error) {
	var model KVModel
	var found bool
	err := withRetry(func() error {
		result := r.db.WithContext(ctx).Where(&KVModel{Key: key}).Limit(1).Find(&model)
		if result.Error != nil {
			return result.Error
		}
		found = result.RowsAffected > 0
		return nil
	}, maxRetries)
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return model.Value, found, nil
}

func (r *SQLiteRecentRepository) put(ctx context.Context, key, value string) error {
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&KVModel{Key: key, Value: value}).Error
	}, maxRetries)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// withRetry retries fn while SQLite reports the database busy or locked
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
