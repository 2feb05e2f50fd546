// Package storage provides key-value persistence backends.
// Package storage 提供键值持久化后端
package storage

import (
	"github.com/haierkeys/note-desk/pkg/code"
	"github.com/haierkeys/note-desk/pkg/storage/local_fs"
	"github.com/haierkeys/note-desk/pkg/storage/sqlite_kv"
)

type Type = string

const LOCAL Type = "localfs"
const SQLITE Type = "sqlite"

var StorageTypeMap = map[Type]bool{
	LOCAL:  true,
	SQLITE: true,
}

// Config Unified storage configuration
// Config 统一存储配置
type Config struct {
	Type Type `yaml:"type" default:"localfs"`

	// Local FS
	// SavePath 本地文件存储目录
	SavePath string `yaml:"save-path" default:"storage/data"`

	// SQLite
	// Path SQLite 数据库文件路径
	Path string `yaml:"path" default:"storage/data/notes.sqlite3"`
}

// Storager single-key value store contract
// Storager 单键值存储契约
type Storager interface {
	// Get returns the stored value for key, or (nil, nil) when absent
	// Get 返回键对应的值，键不存在时返回 (nil, nil)
	Get(key string) ([]byte, error)

	// Put overwrites the stored value for key
	// Put 覆盖写入键对应的值
	Put(key string, content []byte) error

	// Delete removes the stored value for key
	// Delete 删除键对应的值
	Delete(key string) error
}

// NewClient creates a storage client for the configured backend
// NewClient 根据配置创建存储客户端
func NewClient(config *Config) (Storager, error) {
	if config == nil {
		return nil, code.ErrorInvalidStorageType
	}

	switch config.Type {
	case LOCAL:
		return local_fs.NewClient(&local_fs.Config{
			SavePath: config.SavePath,
		})
	case SQLITE:
		return sqlite_kv.NewClient(&sqlite_kv.Config{
			Path: config.Path,
		})
	default:
		return nil, code.ErrorInvalidStorageType.WithDetails(config.Type)
	}
}
