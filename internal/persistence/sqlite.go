// Package persistence implements the store's durable slot: the entire
// state is serialized as one JSON document and written into a local
// key-value table after every mutation, then read back once at
// startup.
package persistence

import (
	"encoding/json"
	stderrors "errors"

	"github.com/motmot/nexlink/backend/internal/store"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// DefaultSlotKey is the row key the snapshot document lives under.
// Changing it orphans existing snapshots.
const DefaultSlotKey = "social-nexus-db"

// slotRecord is a single row in the local key-value table.
type slotRecord struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"column:value;type:text"`
}

func (slotRecord) TableName() string { return "slots" }

// SQLiteSlot stores the snapshot document in a local SQLite database.
type SQLiteSlot struct {
	db  *gorm.DB
	key string
}

// NewSQLiteSlot opens (or creates) the database file and migrates the
// slot table. Use ":memory:" for an ephemeral slot.
func NewSQLiteSlot(path string) (*SQLiteSlot, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&slotRecord{}); err != nil {
		return nil, err
	}
	return &SQLiteSlot{db: db, key: DefaultSlotKey}, nil
}

// Load reads the snapshot document. A missing row (first run) returns
// (nil, nil).
func (s *SQLiteSlot) Load() (*store.State, error) {
	var rec slotRecord
	err := s.db.First(&rec, "key = ?", s.key).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var state store.State
	if err := json.Unmarshal([]byte(rec.Value), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// Save upserts the snapshot document.
func (s *SQLiteSlot) Save(state *store.State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&slotRecord{Key: s.key, Value: string(raw)}).Error
}
