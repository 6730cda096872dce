package storage

import "time"

// Keys of the local key-value table
const (
	KeyRecentFiles   = "recentFiles"
	KeyRecentFolders = "recentFolders"
	KeySchemaVersion = "schema_version"
)

// KVModel is the GORM model for the local_kv table
type KVModel struct {
	CreatedAt time.Time
	Key       string `gorm:"primaryKey"`
	UpdatedAt time.Time
	Value     string `gorm:"not null;default:''"`
}

// TableName specifies the table name for GORM
func (KVModel) TableName() string { return "local_kv" }
