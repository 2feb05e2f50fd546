package dao

import (
	"context"
	"testing"
	"time"

	"github.com/haierkeys/note-desk/internal/domain"
	"github.com/haierkeys/note-desk/pkg/storage"

	"github.com/stretchr/testify/assert"
)

func newTestRepository(t *testing.T) domain.NoteRepository {
	t.Helper()

	client, err := storage.NewClient(&storage.Config{
		Type:     storage.LOCAL,
		SavePath: t.TempDir(),
	})
	if err != nil {
		t.Fatal(err)
	}
	return NewNoteRepository(New(client))
}

func TestNoteRepository_LoadEmpty(t *testing.T) {
	repo := newTestRepository(t)

	// 没有存储值时返回空集合而不是错误
	notes, err := repo.Load(context.Background())
	assert.Nil(t, err)
	assert.Empty(t, notes)
}

func TestNoteRepository_RoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created := time.Date(2024, 3, 1, 10, 0, 0, 500, time.UTC)
	updated := created.Add(2 * time.Hour)

	in := []*domain.Note{
		{ID: "id-b", Title: "Second", Content: "b content", CreatedAt: updated, UpdatedAt: updated},
		{ID: "id-a", Title: "First", Content: "a content", CreatedAt: created, UpdatedAt: updated},
	}

	err := repo.Save(ctx, in)
	assert.Nil(t, err)

	// 读取结果与写入内容完全一致，顺序保持
	out, err := repo.Load(ctx)
	assert.Nil(t, err)
	assert.Len(t, out, 2)
	for i := range in {
		assert.Equal(t, in[i].ID, out[i].ID)
		assert.Equal(t, in[i].Title, out[i].Title)
		assert.Equal(t, in[i].Content, out[i].Content)
		assert.True(t, in[i].CreatedAt.Equal(out[i].CreatedAt))
		assert.True(t, in[i].UpdatedAt.Equal(out[i].UpdatedAt))
	}
}

func TestNoteRepository_CorruptPayload(t *testing.T) {
	client, err := storage.NewClient(&storage.Config{
		Type:     storage.LOCAL,
		SavePath: t.TempDir(),
	})
	if err != nil {
		t.Fatal(err)
	}

	// 预先写入无法解析的内容
	err = client.Put(NoteStorageKey, []byte("{not json"))
	assert.Nil(t, err)

	repo := NewNoteRepository(New(client))
	notes, err := repo.Load(context.Background())

	// 解析失败按空集合处理，不向上层报错
	assert.Nil(t, err)
	assert.Empty(t, notes)
}

func TestNoteRepository_SaveOverwrites(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	now := time.Now()
	err := repo.Save(ctx, []*domain.Note{
		{ID: "x", Title: "keep", CreatedAt: now, UpdatedAt: now},
		{ID: "y", Title: "drop", CreatedAt: now, UpdatedAt: now},
	})
	assert.Nil(t, err)

	// 再次保存较小的集合必须完全覆盖旧值
	err = repo.Save(ctx, []*domain.Note{
		{ID: "x", Title: "keep", CreatedAt: now, UpdatedAt: now},
	})
	assert.Nil(t, err)

	out, err := repo.Load(ctx)
	assert.Nil(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, "x", out[0].ID)
}
