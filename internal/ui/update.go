package ui

import (
	"context"

	"github.com/haierkeys/note-desk/internal/dto"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.applyLayout()
		return m, nil

	case tea.KeyMsg:
		// 状态优先级：删除确认 > 编辑器 > 浏览
		if m.confirmDeleteID != "" {
			return m.handleConfirmUpdate(msg)
		}
		if m.editor != editorClosed {
			return m.handleEditorUpdate(msg)
		}
		return m.handleBrowseUpdate(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleBrowseUpdate 浏览模式的按键处理
func (m Model) handleBrowseUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.New):
		return m.openCreate()

	case key.Matches(msg, m.keys.Edit):
		// 编辑要求存在选中的笔记，否则不做任何事
		if _, err := m.svc.Get(m.selectedID); err != nil {
			return m, nil
		}
		return m.openEdit(m.selectedID)

	case key.Matches(msg, m.keys.Delete):
		// 删除前先请求确认
		if _, err := m.svc.Get(m.selectedID); err != nil {
			return m, nil
		}
		m.confirmDeleteID = m.selectedID
		return m, nil

	case key.Matches(msg, m.keys.Select):
		// 选中列表光标所在的笔记并切换到详情视图
		if id := m.cursorID(); id != "" {
			m.selectedID = id
		}
		return m, nil

	case key.Matches(msg, m.keys.TogglePanel):
		m.panelOpen = !m.panelOpen
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleEditorUpdate 编辑器打开时的按键处理
// 草稿只存在于输入组件中，提交前不触达集合
func (m Model) handleEditorUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m.closeEditor(), nil

	case key.Matches(msg, m.keys.Submit):
		return m.submitEditor()

	case key.Matches(msg, m.keys.SwitchFocus):
		return m.switchEditorFocus(), nil

	case key.Matches(msg, m.keys.DeleteOpen):
		// 在编辑模式下请求删除正在编辑的笔记
		if m.editor == editorEdit {
			m.confirmDeleteID = m.editingID
		}
		return m, nil
	}

	// 标题字段中回车把焦点移到内容
	if m.focus == focusTitle && msg.Type == tea.KeyEnter {
		return m.switchEditorFocus(), nil
	}

	var cmd tea.Cmd
	if m.focus == focusTitle {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.contentInput, cmd = m.contentInput.Update(msg)
	}
	return m, cmd
}

// handleConfirmUpdate 删除确认的按键处理
// 确认键执行删除，其余任意键取消且不产生任何变更
func (m Model) handleConfirmUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := m.confirmDeleteID
	m.confirmDeleteID = ""

	if !key.Matches(msg, m.keys.Confirm) {
		return m, nil
	}

	if err := m.svc.Delete(context.Background(), &dto.NoteDeleteRequest{ID: id}); err != nil {
		m.logger.Warn("delete failed", zap.Error(err))
		m.status = err.Error()
		return m, nil
	}

	// 删除选中笔记时清除选中状态
	if m.selectedID == id {
		m.selectedID = ""
	}
	// 删除正在编辑的笔记时关闭编辑器
	if m.editor != editorClosed && m.editingID == id {
		m = m.closeEditor()
	}
	m.refreshList()
	m.status = "note deleted"
	return m, nil
}
