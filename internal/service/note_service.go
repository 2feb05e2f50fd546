// Package service 实现业务逻辑层
package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/haierkeys/note-desk/internal/domain"
	"github.com/haierkeys/note-desk/internal/dto"
	"github.com/haierkeys/note-desk/pkg/code"
	"github.com/haierkeys/note-desk/pkg/convert"
	"github.com/haierkeys/note-desk/pkg/diff"
	"github.com/haierkeys/note-desk/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NoteService 定义笔记业务服务接口
// 服务持有内存中的有序笔记集合，每次变更后同步写回持久化存储
type NoteService interface {
	// Load 从持久化存储加载集合，启动时调用一次
	Load(ctx context.Context) error

	// List 获取全部笔记，新建在前的插入顺序
	List() []*domain.Note

	// Get 获取单条笔记
	Get(id string) (*domain.Note, error)

	// Create 创建笔记并插入到集合头部
	Create(ctx context.Context, params *dto.NoteCreateRequest) (*domain.Note, error)

	// Update 更新笔记的标题和内容，集合位置保持不变
	Update(ctx context.Context, params *dto.NoteUpdateRequest) (*domain.Note, error)

	// Delete 删除笔记
	Delete(ctx context.Context, params *dto.NoteDeleteRequest) error

	// Count 获取笔记数量
	Count() int
}

// Config 笔记服务配置
type Config struct {
	// TitleMaxLength 标题最大长度
	TitleMaxLength int
	// ContentMaxLength 内容最大长度
	ContentMaxLength int
	// UntitledTitle 空标题的默认值
	UntitledTitle string
}

// noteService 实现 NoteService 接口
type noteService struct {
	repo   domain.NoteRepository
	config *Config
	logger *zap.Logger

	mu    sync.Mutex
	notes []*domain.Note
}

// NewNoteService 创建 NoteService 实例
func NewNoteService(repo domain.NoteRepository, config *Config, lg *zap.Logger) NoteService {
	if lg == nil {
		lg = zap.NewNop()
	}
	return &noteService{
		repo:   repo,
		config: config,
		logger: lg,
	}
}

// Load 从持久化存储加载集合
func (s *noteService) Load(ctx context.Context) error {
	start := time.Now()
	notes, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.notes = notes
	s.mu.Unlock()

	s.logger.Info("note collection loaded",
		zap.Int(logger.FieldCount, len(notes)),
		zap.Duration(logger.FieldDuration, time.Since(start)))
	return nil
}

// List 获取全部笔记
// 返回副本，调用方的修改不会影响集合
func (s *noteService) List() []*domain.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CloneAll(s.notes)
}

// Get 获取单条笔记
func (s *noteService) Get(id string) (*domain.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.find(id)
	if n == nil {
		return nil, code.ErrorNoteNotFound.WithDetails(id)
	}
	return n.Clone(), nil
}

// Count 获取笔记数量
func (s *noteService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.notes)
}

// Create 创建笔记并插入到集合头部
// 空白标题使用默认标题；创建时 CreatedAt 与 UpdatedAt 相同
func (s *noteService) Create(ctx context.Context, params *dto.NoteCreateRequest) (*domain.Note, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" {
		title = s.config.UntitledTitle
	}
	if err := s.checkLimits(title, params.Content); err != nil {
		return nil, err
	}

	now := time.Now()
	n := convert.StructAssign(params, &domain.Note{}).(*domain.Note)
	n.ID = uuid.NewString()
	n.Title = title
	n.CreatedAt = now
	n.UpdatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()

	// 新建笔记排在集合头部
	prev := s.notes
	s.notes = append([]*domain.Note{n}, s.notes...)

	if err := s.repo.Save(ctx, s.notes); err != nil {
		// 写回失败时还原内存状态
		s.notes = prev
		s.logger.Error("note save after create failed",
			zap.String(logger.FieldNoteID, n.ID),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("note created",
		zap.String(logger.FieldAction, "create"),
		zap.String(logger.FieldNoteID, n.ID),
		zap.String(logger.FieldTitle, n.Title))
	return n.Clone(), nil
}

// Update 更新笔记的标题和内容
// UpdatedAt 严格递增；笔记在集合中的位置保持不变
func (s *noteService) Update(ctx context.Context, params *dto.NoteUpdateRequest) (*domain.Note, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" {
		title = s.config.UntitledTitle
	}
	if err := s.checkLimits(title, params.Content); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.find(params.ID)
	if n == nil {
		return nil, code.ErrorNoteNotFound.WithDetails(params.ID)
	}

	stats := diff.ChangeStats(n.Content, params.Content)

	prevTitle := n.Title
	prevContent := n.Content
	prevUpdated := n.UpdatedAt

	n.Title = title
	n.Content = params.Content

	// 时钟分辨率不足时以 1ns 步进保证严格递增
	now := time.Now()
	if !now.After(n.UpdatedAt) {
		now = n.UpdatedAt.Add(time.Nanosecond)
	}
	n.UpdatedAt = now

	if err := s.repo.Save(ctx, s.notes); err != nil {
		// 写回失败时还原内存状态
		n.Title = prevTitle
		n.Content = prevContent
		n.UpdatedAt = prevUpdated
		s.logger.Error("note save after update failed",
			zap.String(logger.FieldNoteID, n.ID),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("note updated",
		zap.String(logger.FieldAction, "update"),
		zap.String(logger.FieldNoteID, n.ID),
		zap.String(logger.FieldTitle, n.Title),
		zap.Int(logger.FieldCharsAdded, stats.CharsAdded),
		zap.Int(logger.FieldCharsRemoved, stats.CharsRemoved))
	return n.Clone(), nil
}

// Delete 删除笔记
func (s *noteService) Delete(ctx context.Context, params *dto.NoteDeleteRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, n := range s.notes {
		if n.ID == params.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return code.ErrorNoteNotFound.WithDetails(params.ID)
	}

	removed := s.notes[idx]
	rest := make([]*domain.Note, 0, len(s.notes)-1)
	rest = append(rest, s.notes[:idx]...)
	rest = append(rest, s.notes[idx+1:]...)

	prev := s.notes
	s.notes = rest

	if err := s.repo.Save(ctx, s.notes); err != nil {
		s.notes = prev
		s.logger.Error("note save after delete failed",
			zap.String(logger.FieldNoteID, params.ID),
			zap.Error(err))
		return err
	}

	s.logger.Info("note deleted",
		zap.String(logger.FieldAction, "delete"),
		zap.String(logger.FieldNoteID, removed.ID),
		zap.String(logger.FieldTitle, removed.Title))
	return nil
}

// find 在集合中查找笔记，调用方必须持有锁
func (s *noteService) find(id string) *domain.Note {
	if id == "" {
		return nil
	}
	for _, n := range s.notes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// checkLimits 校验标题与内容长度
func (s *noteService) checkLimits(title, content string) error {
	if s.config.TitleMaxLength > 0 && len([]rune(title)) > s.config.TitleMaxLength {
		return code.ErrorNoteTitleTooLong
	}
	if s.config.ContentMaxLength > 0 && len([]rune(content)) > s.config.ContentMaxLength {
		return code.ErrorNoteContentTooLong
	}
	return nil
}
