package repo

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/obsworks/telegraf-confd/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) IConfigRepository {
	t.Helper()
	cr, err := NewConfigRepo(filepath.Join(t.TempDir(), "configs"))
	require.NoError(t, err)
	return cr
}

func testRecord(name string) *model.ConfigRecord {
	return &model.ConfigRecord{
		Name:           name,
		CreatedAt:      time.Now().Format(time.RFC3339),
		Description:    "test record",
		TelegrafConfig: "[agent]\n  interval = \"10s\"\n",
		Format:         model.FormatToml,
	}
}

func TestNewConfigRepo_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "configs")

	_, err := NewConfigRepo(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestConfigRepo_SaveAndGet(t *testing.T) {
	cr := newTestRepo(t)

	record := testRecord("web-server")
	path, err := cr.Save(record)
	require.NoError(t, err)
	assert.Equal(t, "web-server.json", filepath.Base(path))

	got, err := cr.Get("web-server")
	require.NoError(t, err)
	assert.Equal(t, record.Name, got.Name)
	assert.Equal(t, record.Description, got.Description)
	assert.Equal(t, record.TelegrafConfig, got.TelegrafConfig)
	assert.Equal(t, record.Format, got.Format)
}

func TestConfigRepo_Get_NotFound(t *testing.T) {
	cr := newTestRepo(t)

	_, err := cr.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConfigRepo_Save_Overwrite(t *testing.T) {
	cr := newTestRepo(t)

	first := testRecord("dup")
	first.TelegrafConfig = "[agent]\n  interval = \"10s\"\n"
	_, err := cr.Save(first)
	require.NoError(t, err)

	second := testRecord("dup")
	second.TelegrafConfig = "[agent]\n  interval = \"30s\"\n"
	_, err = cr.Save(second)
	require.NoError(t, err)

	got, err := cr.Get("dup")
	require.NoError(t, err)
	assert.Equal(t, second.TelegrafConfig, got.TelegrafConfig)

	summaries, err := cr.List()
	require.NoError(t, err)
	assert.Len(t, summaries, 1)
}

func TestConfigRepo_List_Empty(t *testing.T) {
	cr := newTestRepo(t)

	summaries, err := cr.List()
	require.NoError(t, err)
	assert.Empty(t, summaries)
	assert.NotNil(t, summaries)
}

func TestConfigRepo_List_SkipsCorruptRecords(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "configs")
	cr, err := NewConfigRepo(dir)
	require.NoError(t, err)

	_, err = cr.Save(testRecord("good"))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644))

	summaries, err := cr.List()
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "good", summaries[0].Name)
	assert.Equal(t, "good.json", summaries[0].Filename)
}

func TestConfigRepo_List_IgnoresForeignFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "configs")
	cr, err := NewConfigRepo(dir)
	require.NoError(t, err)

	_, err = cr.Save(testRecord("only"))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))

	summaries, err := cr.List()
	require.NoError(t, err)
	assert.Len(t, summaries, 1)
}

func TestConfigRepo_Delete(t *testing.T) {
	cr := newTestRepo(t)

	_, err := cr.Save(testRecord("gone"))
	require.NoError(t, err)

	require.NoError(t, cr.Delete("gone"))

	_, err = cr.Get("gone")
	assert.ErrorIs(t, err, ErrNotFound)

	summaries, err := cr.List()
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestConfigRepo_Delete_NotFound(t *testing.T) {
	cr := newTestRepo(t)

	assert.ErrorIs(t, cr.Delete("missing"), ErrNotFound)
}

func TestConfigRepo_Count(t *testing.T) {
	cr := newTestRepo(t)

	count, err := cr.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = cr.Save(testRecord("a"))
	require.NoError(t, err)
	_, err = cr.Save(testRecord("b"))
	require.NoError(t, err)

	count, err = cr.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestConfigRepo_Get_MissingFieldsDefaulted(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "configs")
	cr, err := NewConfigRepo(dir)
	require.NoError(t, err)

	// hand-edited legacy record without description or format
	legacy := []byte(`{"name": "legacy", "telegraf_config": "[agent]\n"}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "legacy.json"), legacy, 0o644))

	got, err := cr.Get("legacy")
	require.NoError(t, err)
	assert.Equal(t, "legacy", got.Name)
	assert.Equal(t, "", got.Description)
	assert.Equal(t, "", got.CreatedAt)
}
