package ui

import (
	"time"

	"github.com/haierkeys/note-desk/internal/domain"

	"github.com/charmbracelet/bubbles/list"
)

// noteItem 列表面板中的单条笔记
type noteItem struct {
	id        string
	title     string
	updatedAt time.Time
}

func (i noteItem) FilterValue() string { return i.title }

func (i noteItem) Title() string { return i.title }

func (i noteItem) Description() string {
	return "Updated: " + i.updatedAt.Format("2006-01-02 15:04")
}

// toItems 将笔记集合转换为列表项，保持集合顺序
func toItems(notes []*domain.Note) []list.Item {
	items := make([]list.Item, 0, len(notes))
	for _, n := range notes {
		items = append(items, noteItem{
			id:        n.ID,
			title:     n.Title,
			updatedAt: n.UpdatedAt,
		})
	}
	return items
}
