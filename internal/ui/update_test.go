package ui

import (
	"context"
	"testing"

	"github.com/haierkeys/note-desk/internal/app"
	"github.com/haierkeys/note-desk/internal/dto"
	"github.com/haierkeys/note-desk/pkg/storage"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/creasty/defaults"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestModel(t *testing.T) Model {
	t.Helper()

	cfg := new(app.AppConfig)
	if err := defaults.Set(cfg); err != nil {
		t.Fatal(err)
	}
	cfg.Storage = storage.Config{
		Type:     storage.LOCAL,
		SavePath: t.TempDir(),
	}

	a, err := app.NewApp(cfg, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	m := New(a)
	// 初始 resize，宽度在阈值之上
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model)
}

func keyRune(m Model, r rune) Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return next.(Model)
}

func keyType(m Model, t tea.KeyType) Model {
	next, _ := m.Update(tea.KeyMsg{Type: t})
	return next.(Model)
}

func typeString(m Model, s string) Model {
	for _, r := range s {
		m = keyRune(m, r)
	}
	return m
}

func TestEditor_ClosedByDefault(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, editorClosed, m.editor)
}

func TestEditor_EditWithoutSelectionIsNoop(t *testing.T) {
	m := newTestModel(t)

	// 无选中时按编辑键，编辑器保持关闭
	m = keyRune(m, 'e')
	assert.Equal(t, editorClosed, m.editor)
}

func TestEditor_CreateFlow(t *testing.T) {
	m := newTestModel(t)

	m = keyRune(m, 'n')
	assert.Equal(t, editorCreate, m.editor)
	assert.Empty(t, m.titleInput.Value())
	assert.Empty(t, m.contentInput.Value())

	// 标题通过按键输入；tab 切换到内容字段
	m = typeString(m, "Groceries")
	m = keyType(m, tea.KeyTab)
	assert.Equal(t, focusContent, m.focus)
	m = typeString(m, "Milk")

	m = keyType(m, tea.KeyCtrlS)

	// 提交后编辑器关闭，新笔记被选中
	assert.Equal(t, editorClosed, m.editor)
	assert.Equal(t, 1, m.svc.Count())

	n, err := m.svc.Get(m.selectedID)
	assert.Nil(t, err)
	assert.Equal(t, "Groceries", n.Title)
	assert.Equal(t, "Milk", n.Content)
}

func TestEditor_CreateBlankTitle(t *testing.T) {
	m := newTestModel(t)

	m = keyRune(m, 'n')
	m = keyType(m, tea.KeyCtrlS)

	n, err := m.svc.Get(m.selectedID)
	assert.Nil(t, err)
	assert.Equal(t, "Untitled Note", n.Title)
}

func TestEditor_CancelDiscardsDraft(t *testing.T) {
	m := newTestModel(t)

	m = keyRune(m, 'n')
	m = typeString(m, "draft title")
	m = keyType(m, tea.KeyEsc)

	// 取消后编辑器关闭且集合没有变化
	assert.Equal(t, editorClosed, m.editor)
	assert.Equal(t, 0, m.svc.Count())
}

func TestEditor_EditFlow(t *testing.T) {
	m := newTestModel(t)

	n, err := m.svc.Create(context.Background(), &dto.NoteCreateRequest{Title: "Groceries", Content: "Milk"})
	assert.Nil(t, err)
	m.refreshList()
	m.selectedID = n.ID

	m = keyRune(m, 'e')
	assert.Equal(t, editorEdit, m.editor)

	// 草稿预填选中笔记的内容
	assert.Equal(t, "Groceries", m.titleInput.Value())
	assert.Equal(t, "Milk", m.contentInput.Value())

	m.titleInput.SetValue("Groceries v2")
	m = keyType(m, tea.KeyCtrlS)

	assert.Equal(t, editorClosed, m.editor)
	got, err := m.svc.Get(n.ID)
	assert.Nil(t, err)
	assert.Equal(t, "Groceries v2", got.Title)
	assert.True(t, got.UpdatedAt.After(n.UpdatedAt))
}

func TestSelect_EnterSelectsCursorNote(t *testing.T) {
	m := newTestModel(t)

	n, _ := m.svc.Create(context.Background(), &dto.NoteCreateRequest{Title: "pick me"})
	m.refreshList()

	m = keyType(m, tea.KeyEnter)
	assert.Equal(t, n.ID, m.selectedID)
}

func TestDelete_RequiresConfirmation(t *testing.T) {
	m := newTestModel(t)

	n, _ := m.svc.Create(context.Background(), &dto.NoteCreateRequest{Title: "doomed"})
	m.refreshList()
	m.selectedID = n.ID

	// 第一次按删除键只进入确认状态，不产生变更
	m = keyRune(m, 'd')
	assert.Equal(t, n.ID, m.confirmDeleteID)
	assert.Equal(t, 1, m.svc.Count())

	// 非确认键取消删除
	m = keyRune(m, 'x')
	assert.Empty(t, m.confirmDeleteID)
	assert.Equal(t, 1, m.svc.Count())

	// 再次请求并确认
	m = keyRune(m, 'd')
	m = keyRune(m, 'y')
	assert.Equal(t, 0, m.svc.Count())

	// 删除选中笔记后清除选中状态
	assert.Empty(t, m.selectedID)
}

func TestDelete_WithoutSelectionIsNoop(t *testing.T) {
	m := newTestModel(t)

	m = keyRune(m, 'd')
	assert.Empty(t, m.confirmDeleteID)
}

func TestDelete_ClosesOpenEditor(t *testing.T) {
	m := newTestModel(t)

	n, _ := m.svc.Create(context.Background(), &dto.NoteCreateRequest{Title: "editing"})
	m.refreshList()
	m.selectedID = n.ID

	// 打开编辑器后经 ctrl+d 请求删除正在编辑的笔记
	m = keyRune(m, 'e')
	assert.Equal(t, editorEdit, m.editor)

	m = keyType(m, tea.KeyCtrlD)
	assert.Equal(t, n.ID, m.confirmDeleteID)

	m = keyRune(m, 'y')
	assert.Equal(t, editorClosed, m.editor)
	assert.Equal(t, 0, m.svc.Count())
}

func TestPanel_AutoCollapseOnResize(t *testing.T) {
	m := newTestModel(t)
	assert.True(t, m.panelOpen)

	// 阈值（默认 80 列）之下自动折叠
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 40})
	m = next.(Model)
	assert.False(t, m.panelOpen)

	// 阈值之上自动展开
	next, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)
	assert.True(t, m.panelOpen)
}

func TestView_RendersPlaceholderWithoutSelection(t *testing.T) {
	m := newTestModel(t)
	assert.Contains(t, m.View(), "No note selected")
}
