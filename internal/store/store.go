// Package store persists the whole application document into a local
// SQLite key-value table, the server-side stand-in for the browser
// localStorage the data format was born in. The document is written and
// read as one JSON blob so nothing in the shape is lost between sessions.
package store

import (
	"encoding/json"
	"errors"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/doantruongnsg/sobanhang/internal/auth"
	"github.com/doantruongnsg/sobanhang/internal/models"
)

// documentKey matches the original storage key so existing exports stay
// importable.
const documentKey = "so_ban_hang_pro_data"

type kvEntry struct {
	Key   string `gorm:"primaryKey;size:64"`
	Value []byte
}

func (kvEntry) TableName() string { return "kv_store" }

// Store wraps the SQLite-backed key-value document storage.
type Store struct {
	db *gorm.DB
}

// Open connects to (or creates) the database file and syncs the schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Load reads the document, falling back to the seeded defaults when the key
// is absent or the stored blob is unreadable - the same recovery the
// original storage layer performed. Seed accounts carry plaintext
// passwords; they are bcrypt-hashed here before the document is handed out.
func (s *Store) Load() (models.AppData, error) {
	var row kvEntry
	err := s.db.First(&row, "key = ?", documentKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		data := models.DefaultData()
		data.Accounts = auth.EnsureHashed(data.Accounts)
		return data, nil
	}
	if err != nil {
		return models.AppData{}, err
	}

	var data models.AppData
	if err := json.Unmarshal(row.Value, &data); err != nil {
		data = models.DefaultData()
	}
	data.Accounts = auth.EnsureHashed(data.Accounts)
	return data, nil
}

// Save upserts the whole document under the well-known key. The engine
// already produced the new state; this is the only durable side effect in
// the system and it is never retried here.
func (s *Store) Save(data models.AppData) error {
	blob, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&kvEntry{Key: documentKey, Value: blob}).Error
}

// Reset drops the stored document so the next Load starts from defaults.
func (s *Store) Reset() error {
	return s.db.Delete(&kvEntry{}, "key = ?", documentKey).Error
}
