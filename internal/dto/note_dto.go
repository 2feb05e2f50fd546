// Package dto Defines data transfer objects (operation parameters and persisted records)
// Package dto 定义数据传输对象（操作参数和持久化记录）
package dto

import (
	"github.com/haierkeys/note-desk/pkg/timex"
)

// NoteRecord Persisted note record, one element of the JSON array under the storage key
// NoteRecord 持久化的笔记记录，存储键下 JSON 数组的单个元素
type NoteRecord struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	CreatedAt timex.Time `json:"createdAt"`
	UpdatedAt timex.Time `json:"updatedAt"`
}

// NoteCreateRequest Parameters for creating a note
// NoteCreateRequest 创建笔记的参数
type NoteCreateRequest struct {
	Title   string `json:"title" form:"title"`
	Content string `json:"content" form:"content"`
}

// NoteUpdateRequest Parameters for updating a note
// NoteUpdateRequest 更新笔记的参数
type NoteUpdateRequest struct {
	ID      string `json:"id" form:"id"`
	Title   string `json:"title" form:"title"`
	Content string `json:"content" form:"content"`
}

// NoteDeleteRequest Parameters for deleting a note
// NoteDeleteRequest 删除笔记的参数
type NoteDeleteRequest struct {
	ID string `json:"id" form:"id"`
}
