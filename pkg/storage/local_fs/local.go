// Package local_fs implements key-value storage on the local filesystem.
// Package local_fs 实现基于本地文件系统的键值存储
package local_fs

import (
	"os"
	"path/filepath"

	"github.com/haierkeys/note-desk/pkg/code"

	"github.com/pkg/errors"
)

type Config struct {
	// SavePath 存储目录
	SavePath string `yaml:"save-path" default:"storage/data"`
}

type LocalFS struct {
	Config *Config
}

func NewClient(conf *Config) (*LocalFS, error) {
	if conf.SavePath == "" {
		return nil, errors.New("local_fs: save path is required")
	}
	if err := os.MkdirAll(conf.SavePath, 0755); err != nil {
		return nil, errors.Wrap(err, "local_fs: create save path failed")
	}
	return &LocalFS{Config: conf}, nil
}

// keyPath maps a storage key to its file path
// keyPath 将存储键映射到文件路径
func (l *LocalFS) keyPath(key string) string {
	return filepath.Join(l.Config.SavePath, key+".json")
}

// Get reads the value for key, absent keys yield (nil, nil)
// Get 读取键对应的值，键不存在时返回 (nil, nil)
func (l *LocalFS) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(l.keyPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(code.ErrorStorageReadFailed, "local_fs: key %q: %s", key, err)
	}
	return data, nil
}

// Put writes the value atomically, temp file then rename
// Put 原子写入，先写临时文件再重命名
func (l *LocalFS) Put(key string, content []byte) error {
	path := l.keyPath(key)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, content, 0644); err != nil {
		return errors.Wrapf(err, "local_fs: write key %q failed", key)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrapf(err, "local_fs: rename key %q failed", key)
	}
	return nil
}

// Delete removes the value for key, absent keys are a no-op
// Delete 删除键对应的值，键不存在时不视为错误
func (l *LocalFS) Delete(key string) error {
	err := os.Remove(l.keyPath(key))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "local_fs: delete key %q failed", key)
	}
	return nil
}
