// Package sqlite_kv implements key-value storage on a single SQLite table.
// Package sqlite_kv 实现基于单张 SQLite 表的键值存储
package sqlite_kv

import (
	"os"
	"path/filepath"

	"github.com/haierkeys/note-desk/pkg/code"
	"github.com/haierkeys/note-desk/pkg/timex"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

type Config struct {
	// Path 数据库文件路径
	Path string `yaml:"path" default:"storage/data/notes.sqlite3"`
}

// Entry 键值表模型
type Entry struct {
	Key       string     `gorm:"column:key;primaryKey"`
	Value     []byte     `gorm:"column:value"`
	UpdatedAt timex.Time `gorm:"column:updated_at"`
}

// TableName 指定表名
func (Entry) TableName() string {
	return "kv_entry"
}

type SQLiteKV struct {
	db *gorm.DB
}

func NewClient(conf *Config) (*SQLiteKV, error) {
	if conf.Path == "" {
		return nil, errors.New("sqlite_kv: database path is required")
	}
	if err := os.MkdirAll(filepath.Dir(conf.Path), 0755); err != nil {
		return nil, errors.Wrap(err, "sqlite_kv: create database directory failed")
	}

	db, err := gorm.Open(sqlite.Open(conf.Path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "sqlite_kv: open database failed")
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, errors.Wrap(err, "sqlite_kv: migrate failed")
	}

	return &SQLiteKV{db: db}, nil
}

// Get reads the value for key, absent keys yield (nil, nil)
// Get 读取键对应的值，键不存在时返回 (nil, nil)
func (s *SQLiteKV) Get(key string) ([]byte, error) {
	var entry Entry
	err := s.db.Where("key = ?", key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(code.ErrorStorageReadFailed, "sqlite_kv: key %q: %s", key, err)
	}
	return entry.Value, nil
}

// Put upserts the value for key
// Put 插入或更新键对应的值
func (s *SQLiteKV) Put(key string, content []byte) error {
	entry := Entry{
		Key:       key,
		Value:     content,
		UpdatedAt: timex.Now(),
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return errors.Wrapf(err, "sqlite_kv: write key %q failed", key)
	}
	return nil
}

// Delete removes the value for key
// Delete 删除键对应的值
func (s *SQLiteKV) Delete(key string) error {
	err := s.db.Where("key = ?", key).Delete(&Entry{}).Error
	if err != nil {
		return errors.Wrapf(err, "sqlite_kv: delete key %q failed", key)
	}
	return nil
}
