package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/haierkeys/note-desk/pkg/code"

	"github.com/stretchr/testify/assert"
)

func TestNewClient_LocalFS(t *testing.T) {
	dir := t.TempDir()

	client, err := NewClient(&Config{
		Type:     LOCAL,
		SavePath: dir,
	})
	assert.Nil(t, err)

	// 写入后读取
	err = client.Put("notes", []byte(`[{"id":"a"}]`))
	assert.Nil(t, err)

	data, err := client.Get("notes")
	assert.Nil(t, err)
	assert.Equal(t, []byte(`[{"id":"a"}]`), data)

	// 覆盖写入
	err = client.Put("notes", []byte(`[]`))
	assert.Nil(t, err)
	data, err = client.Get("notes")
	assert.Nil(t, err)
	assert.Equal(t, []byte(`[]`), data)

	// 删除后读取返回 nil
	err = client.Delete("notes")
	assert.Nil(t, err)
	data, err = client.Get("notes")
	assert.Nil(t, err)
	assert.Nil(t, data)
}

func TestNewClient_SQLite(t *testing.T) {
	dir := t.TempDir()

	client, err := NewClient(&Config{
		Type: SQLITE,
		Path: filepath.Join(dir, "kv.sqlite3"),
	})
	assert.Nil(t, err)

	// 不存在的键返回 nil
	data, err := client.Get("notes")
	assert.Nil(t, err)
	assert.Nil(t, data)

	err = client.Put("notes", []byte(`payload-1`))
	assert.Nil(t, err)

	// 同键覆盖
	err = client.Put("notes", []byte(`payload-2`))
	assert.Nil(t, err)

	data, err = client.Get("notes")
	assert.Nil(t, err)
	assert.Equal(t, []byte(`payload-2`), data)

	err = client.Delete("notes")
	assert.Nil(t, err)
	data, err = client.Get("notes")
	assert.Nil(t, err)
	assert.Nil(t, data)
}

func TestNewClient_LocalFSReadFailure(t *testing.T) {
	dir := t.TempDir()

	client, err := NewClient(&Config{
		Type:     LOCAL,
		SavePath: dir,
	})
	assert.Nil(t, err)

	// 键文件被目录占据时读取失败，返回类型化的读取错误
	err = os.Mkdir(filepath.Join(dir, "notes.json"), 0755)
	assert.Nil(t, err)

	_, err = client.Get("notes")
	assert.ErrorIs(t, err, code.ErrorStorageReadFailed)
}

func TestNewClient_InvalidType(t *testing.T) {
	_, err := NewClient(&Config{Type: "ftp"})
	assert.NotNil(t, err)

	_, err = NewClient(nil)
	assert.NotNil(t, err)
}
