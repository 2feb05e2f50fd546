package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	var main string
	switch {
	case m.confirmDeleteID != "":
		main = m.viewConfirm()
	case m.editor != editorClosed:
		main = m.viewEditor()
	default:
		main = m.viewDetail()
	}

	var body string
	if m.panelOpen {
		panel := panelStyle.Render(m.list.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, panel, main)
	} else {
		body = main
	}

	return appStyle.Render(body + "\n" + m.viewStatusBar())
}

// viewDetail 选中笔记的只读详情，无选中时显示占位提示
func (m Model) viewDetail() string {
	n, err := m.svc.Get(m.selectedID)
	if err != nil {
		return detailStyle.Render(placeholderStyle.Render("No note selected.\n\nPress n to create a note, enter to view one."))
	}

	var b strings.Builder
	b.WriteString(detailTitleStyle.Render(n.Title))
	b.WriteString("\n")
	b.WriteString(detailMetaStyle.Render(fmt.Sprintf(
		"created %s · updated %s",
		n.CreatedAt.Format("2006-01-02 15:04"),
		n.UpdatedAt.Format("2006-01-02 15:04"),
	)))
	b.WriteString("\n\n")
	b.WriteString(n.Content)

	return detailStyle.Render(b.String())
}

// viewEditor 新建/编辑表单
func (m Model) viewEditor() string {
	header := "Edit Note"
	if m.editor == editorCreate {
		header = "New Note"
	}

	var b strings.Builder
	b.WriteString(modalTitleStyle.Render(header))
	b.WriteString("\n\n")
	b.WriteString(m.titleInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.contentInput.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("ctrl+s: save   esc: cancel   tab: switch field"))

	return modalStyle.Render(b.String())
}

// viewConfirm 删除确认对话框
func (m Model) viewConfirm() string {
	title := m.confirmDeleteID
	if n, err := m.svc.Get(m.confirmDeleteID); err == nil {
		title = n.Title
	}

	body := fmt.Sprintf("Delete note %q?\n\nThis cannot be undone.", title)
	return modalStyle.Render(
		modalTitleStyle.Render("Confirm Delete") + "\n\n" +
			body + "\n\n" +
			helpStyle.Render("y/enter: delete   any other key: cancel"),
	)
}

// viewStatusBar 底部状态栏：临时提示 + 按键帮助
func (m Model) viewStatusBar() string {
	help := "n: new  e: edit  d: delete  enter: view  p: panel  q: quit"
	if m.editor != editorClosed {
		help = "ctrl+s: save  esc: cancel  ctrl+d: delete"
	}

	if m.status != "" {
		return statusStyle.Render(m.status) + "  " + helpStyle.Render(help)
	}
	return helpStyle.Render(help)
}
