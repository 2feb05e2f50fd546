// Package domain 定义领域模型和接口
package domain

import "time"

// Note 笔记领域模型
// ID 在集合生命周期内唯一；CreatedAt 创建后不再变化；
// UpdatedAt 每次成功编辑后严格递增，且不早于 CreatedAt
type Note struct {
	ID        string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone 返回笔记的独立副本
func (n *Note) Clone() *Note {
	if n == nil {
		return nil
	}
	clone := *n
	return &clone
}

// CloneAll 返回笔记切片的独立副本
func CloneAll(notes []*Note) []*Note {
	out := make([]*Note, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.Clone())
	}
	return out
}
