// Package dao 实现数据访问层
package dao

import (
	"github.com/haierkeys/note-desk/pkg/storage"

	"go.uber.org/zap"
)

// Dao 数据访问对象，封装底层键值存储客户端
type Dao struct {
	store  storage.Storager
	logger *zap.Logger
}

// Option Dao 构造选项
type Option func(*Dao)

// WithLogger 注入日志器
func WithLogger(logger *zap.Logger) Option {
	return func(d *Dao) {
		d.logger = logger
	}
}

// New 创建 Dao 实例
func New(store storage.Storager, opts ...Option) *Dao {
	d := &Dao{
		store:  store,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}
