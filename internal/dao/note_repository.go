// Package dao 实现数据访问层
package dao

import (
	"context"
	"time"

	"github.com/haierkeys/note-desk/internal/domain"
	"github.com/haierkeys/note-desk/internal/dto"
	"github.com/haierkeys/note-desk/pkg/code"
	"github.com/haierkeys/note-desk/pkg/logger"
	"github.com/haierkeys/note-desk/pkg/timex"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// NoteStorageKey 笔记集合的固定存储键
const NoteStorageKey = "notes"

// noteRepository 实现 domain.NoteRepository 接口
type noteRepository struct {
	dao *Dao
}

// NewNoteRepository 创建 NoteRepository 实例
func NewNoteRepository(dao *Dao) domain.NoteRepository {
	return &noteRepository{dao: dao}
}

// toDomain 将持久化记录转换为领域模型
func (r *noteRepository) toDomain(rec *dto.NoteRecord) *domain.Note {
	if rec == nil {
		return nil
	}
	return &domain.Note{
		ID:        rec.ID,
		Title:     rec.Title,
		Content:   rec.Content,
		CreatedAt: time.Time(rec.CreatedAt),
		UpdatedAt: time.Time(rec.UpdatedAt),
	}
}

// toRecord 将领域模型转换为持久化记录
func (r *noteRepository) toRecord(n *domain.Note) *dto.NoteRecord {
	if n == nil {
		return nil
	}
	return &dto.NoteRecord{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: timex.Time(n.CreatedAt),
		UpdatedAt: timex.Time(n.UpdatedAt),
	}
}

// Load 加载全部笔记
// 存储键不存在或内容无法解析时按空集合处理，只记录告警日志
func (r *noteRepository) Load(ctx context.Context) ([]*domain.Note, error) {
	data, err := r.dao.store.Get(NoteStorageKey)
	if err != nil {
		r.dao.logger.Warn("note storage read failed, starting with empty collection",
			zap.String(logger.FieldStorageKey, NoteStorageKey),
			zap.Error(err))
		return []*domain.Note{}, nil
	}
	if len(data) == 0 {
		return []*domain.Note{}, nil
	}

	var records []*dto.NoteRecord
	if err := sonic.Unmarshal(data, &records); err != nil {
		r.dao.logger.Warn("note storage payload undecodable, starting with empty collection",
			zap.String(logger.FieldStorageKey, NoteStorageKey),
			zap.Error(err))
		return []*domain.Note{}, nil
	}

	notes := make([]*domain.Note, 0, len(records))
	for _, rec := range records {
		notes = append(notes, r.toDomain(rec))
	}
	return notes, nil
}

// Save 全量覆盖保存笔记集合
func (r *noteRepository) Save(ctx context.Context, notes []*domain.Note) error {
	records := make([]*dto.NoteRecord, 0, len(notes))
	for _, n := range notes {
		records = append(records, r.toRecord(n))
	}

	data, err := sonic.Marshal(records)
	if err != nil {
		return errors.Wrap(err, "marshal note records failed")
	}

	if err := r.dao.store.Put(NoteStorageKey, data); err != nil {
		return errors.Wrap(code.ErrorStorageWriteFailed, err.Error())
	}
	return nil
}
