// Package domain 定义领域模型和接口
package domain

import "context"

// NoteRepository 笔记集合持久化接口
// 集合以整体为单位读写：启动时 Load 一次，之后每次变更后全量 Save
type NoteRepository interface {
	// Load 加载全部笔记
	// 存储键不存在或内容无法解析时返回空集合而不是错误
	Load(ctx context.Context) ([]*Note, error)

	// Save 全量覆盖保存笔记集合
	Save(ctx context.Context, notes []*Note) error
}
