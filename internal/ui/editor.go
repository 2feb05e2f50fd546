package ui

import (
	"context"

	"github.com/haierkeys/note-desk/internal/dto"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// openCreate 打开新建编辑器，草稿字段重置为空
func (m Model) openCreate() (Model, tea.Cmd) {
	m.editor = editorCreate
	m.editingID = ""
	m.titleInput.SetValue("")
	m.contentInput.SetValue("")
	m.focus = focusTitle
	m.contentInput.Blur()
	return m, m.titleInput.Focus()
}

// openEdit 打开编辑器并用选中笔记预填草稿
func (m Model) openEdit(id string) (Model, tea.Cmd) {
	n, err := m.svc.Get(id)
	if err != nil {
		return m, nil
	}

	m.editor = editorEdit
	m.editingID = n.ID
	m.titleInput.SetValue(n.Title)
	m.contentInput.SetValue(n.Content)
	m.focus = focusTitle
	m.contentInput.Blur()
	return m, m.titleInput.Focus()
}

// closeEditor 关闭编辑器并丢弃草稿
func (m Model) closeEditor() Model {
	m.editor = editorClosed
	m.editingID = ""
	m.titleInput.Blur()
	m.contentInput.Blur()
	m.focus = focusTitle
	return m
}

// switchEditorFocus 在标题与内容字段之间切换焦点
func (m Model) switchEditorFocus() Model {
	if m.focus == focusTitle {
		m.focus = focusContent
		m.titleInput.Blur()
		m.contentInput.Focus()
	} else {
		m.focus = focusTitle
		m.contentInput.Blur()
		m.titleInput.Focus()
	}
	return m
}

// submitEditor 提交草稿
// 新建模式创建并选中新笔记；编辑模式就地更新，集合位置不变
func (m Model) submitEditor() (Model, tea.Cmd) {
	ctx := context.Background()
	title := m.titleInput.Value()
	content := m.contentInput.Value()

	switch m.editor {
	case editorCreate:
		n, err := m.svc.Create(ctx, &dto.NoteCreateRequest{
			Title:   title,
			Content: content,
		})
		if err != nil {
			m.logger.Warn("create failed", zap.Error(err))
			m.status = err.Error()
			return m, nil
		}
		m.selectedID = n.ID
		m.status = "note created"

	case editorEdit:
		_, err := m.svc.Update(ctx, &dto.NoteUpdateRequest{
			ID:      m.editingID,
			Title:   title,
			Content: content,
		})
		if err != nil {
			m.logger.Warn("update failed", zap.Error(err))
			m.status = err.Error()
			return m, nil
		}
		m.status = "note saved"

	default:
		return m, nil
	}

	m = m.closeEditor()
	m.refreshList()
	return m, nil
}
