// Package ui 实现终端交互界面
// 单线程事件驱动：所有状态变更都在 Bubble Tea 的更新循环中同步完成
package ui

import (
	"github.com/haierkeys/note-desk/internal/app"
	"github.com/haierkeys/note-desk/internal/service"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// editorMode 编辑器状态机的状态
type editorMode int

const (
	// editorClosed 编辑器关闭
	editorClosed editorMode = iota
	// editorCreate 新建笔记
	editorCreate
	// editorEdit 编辑已选中笔记
	editorEdit
)

// editorFocus 编辑器中的焦点字段
type editorFocus int

const (
	focusTitle editorFocus = iota
	focusContent
)

// Model 终端界面模型
// 持有选中状态、编辑器状态机与删除确认状态
type Model struct {
	svc    service.NoteService
	cfg    *app.AppConfig
	logger *zap.Logger

	list list.Model
	keys keyMap

	width  int
	height int
	// panelOpen 列表面板是否展开，随终端宽度自动调整
	panelOpen bool

	// selectedID 当前选中的笔记，空串表示无选中
	selectedID string

	// 编辑器状态
	editor       editorMode
	editingID    string
	titleInput   textinput.Model
	contentInput textarea.Model
	focus        editorFocus

	// confirmDeleteID 待确认删除的笔记，空串表示无待确认删除
	confirmDeleteID string

	// status 状态栏的临时提示
	status string
}

// New 创建界面模型
func New(a *app.App) Model {
	cfg := a.Config()

	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.CharLimit = cfg.Note.TitleMaxLength
	ti.Width = 48

	ta := textarea.New()
	ta.Placeholder = "Write…"
	ta.CharLimit = cfg.Note.ContentMaxLength
	ta.SetWidth(64)
	ta.SetHeight(10)
	ta.ShowLineNumbers = false

	l := list.New(toItems(a.NoteService.List()), list.NewDefaultDelegate(), 0, 0)
	l.Title = "Notes"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	return Model{
		svc:          a.NoteService,
		cfg:          cfg,
		logger:       a.Logger(),
		list:         l,
		keys:         newKeyMap(),
		panelOpen:    true,
		titleInput:   ti,
		contentInput: ta,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// refreshList 用服务的当前集合重建列表项
func (m *Model) refreshList() {
	m.list.SetItems(toItems(m.svc.List()))
}

// cursorID 返回列表光标所在笔记的 ID
func (m *Model) cursorID() string {
	if it, ok := m.list.SelectedItem().(noteItem); ok {
		return it.id
	}
	return ""
}

// applyLayout 根据终端尺寸调整布局
// 面板在阈值之下自动折叠、之上自动展开，每次 resize 重新判定
func (m *Model) applyLayout() {
	m.panelOpen = m.width >= m.cfg.UI.PanelThreshold

	h, v := appStyle.GetFrameSize()
	panelWidth := m.cfg.UI.PanelWidth
	listHeight := m.height - v - 2
	if listHeight < 4 {
		listHeight = 4
	}
	m.list.SetSize(panelWidth-2, listHeight)

	detailWidth := m.width - h
	if m.panelOpen {
		detailWidth -= panelWidth
	}
	if detailWidth < 20 {
		detailWidth = 20
	}
	m.titleInput.Width = detailWidth - 8
	m.contentInput.SetWidth(detailWidth - 6)

	contentHeight := m.height - v - 10
	if contentHeight < 4 {
		contentHeight = 4
	}
	m.contentInput.SetHeight(contentHeight)
}
