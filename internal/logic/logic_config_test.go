package logic

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/obsworks/telegraf-confd/internal/model"
	"github.com/obsworks/telegraf-confd/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogic(t *testing.T) (*ConfigLogic, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "configs")
	configRepo, err := repo.NewConfigRepo(dir)
	require.NoError(t, err)
	return NewConfigLogic(configRepo, NewValidateLogic()), dir
}

const validToml = "[agent]\n  interval = \"10s\"\n\n[[inputs.cpu]]\n  percpu = true\n"

func TestConfigLogic_SaveConfig(t *testing.T) {
	cl, _ := newTestLogic(t)

	rep, err := cl.SaveConfig(&model.SaveConfigReq{
		Name:        "cpu-monitor",
		Description: "cpu only",
		Config:      validToml,
	})
	require.NoError(t, err)
	assert.Equal(t, "Configuration saved successfully", rep.Message)
	assert.Equal(t, "cpu-monitor.json", filepath.Base(rep.ConfigFile))

	record, err := cl.GetConfig("cpu-monitor")
	require.NoError(t, err)
	assert.Equal(t, "cpu-monitor", record.Name)
	assert.Equal(t, "cpu only", record.Description)
	assert.Equal(t, validToml, record.TelegrafConfig)
	assert.Equal(t, model.FormatToml, record.Format)

	_, err = time.Parse(time.RFC3339, record.CreatedAt)
	assert.NoError(t, err)
}

func TestConfigLogic_SaveConfig_InvalidName(t *testing.T) {
	cl, dir := newTestLogic(t)

	tests := []struct {
		name    string
		reqName string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"path separator", "a/b"},
		{"parent dir", ".."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cl.SaveConfig(&model.SaveConfigReq{Name: tt.reqName, Config: validToml})
			assert.ErrorIs(t, err, ErrInvalidName)
		})
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestConfigLogic_SaveConfig_InvalidSyntax(t *testing.T) {
	cl, dir := newTestLogic(t)

	_, err := cl.SaveConfig(&model.SaveConfigReq{
		Name:   "bad",
		Config: "not valid [[[",
	})

	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.NotEmpty(t, syntaxErr.Diag)
	assert.Contains(t, syntaxErr.Error(), "Invalid TOML syntax")

	// nothing written on validation failure
	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestConfigLogic_SaveConfig_EmptyContentBypassesValidation(t *testing.T) {
	cl, _ := newTestLogic(t)

	_, err := cl.SaveConfig(&model.SaveConfigReq{Name: "blank", Config: ""})
	require.NoError(t, err)

	record, err := cl.GetConfig("blank")
	require.NoError(t, err)
	assert.Equal(t, "", record.TelegrafConfig)
}

func TestConfigLogic_SaveConfig_NameTrimmed(t *testing.T) {
	cl, _ := newTestLogic(t)

	_, err := cl.SaveConfig(&model.SaveConfigReq{Name: "  padded  ", Config: validToml})
	require.NoError(t, err)

	// identical trim rules on lookup
	record, err := cl.GetConfig("padded")
	require.NoError(t, err)
	assert.Equal(t, "padded", record.Name)

	record, err = cl.GetConfig(" padded ")
	require.NoError(t, err)
	assert.Equal(t, "padded", record.Name)
}

func TestConfigLogic_SaveConfig_OverwriteRefreshesRecord(t *testing.T) {
	cl, _ := newTestLogic(t)

	_, err := cl.SaveConfig(&model.SaveConfigReq{Name: "a", Description: "v1", Config: "[agent]\n  interval = \"10s\"\n"})
	require.NoError(t, err)

	_, err = cl.SaveConfig(&model.SaveConfigReq{Name: "a", Description: "v2", Config: "[agent]\n  interval = \"30s\"\n"})
	require.NoError(t, err)

	record, err := cl.GetConfig("a")
	require.NoError(t, err)
	assert.Equal(t, "v2", record.Description)
	assert.Equal(t, "[agent]\n  interval = \"30s\"\n", record.TelegrafConfig)

	summaries, err := cl.ListConfigs()
	require.NoError(t, err)
	assert.Len(t, summaries, 1)
}

func TestConfigLogic_ListConfigs_Empty(t *testing.T) {
	cl, _ := newTestLogic(t)

	summaries, err := cl.ListConfigs()
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestConfigLogic_GetConfig_NotFound(t *testing.T) {
	cl, _ := newTestLogic(t)

	_, err := cl.GetConfig("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConfigLogic_DownloadConfig(t *testing.T) {
	cl, _ := newTestLogic(t)

	_, err := cl.SaveConfig(&model.SaveConfigReq{
		Name:        "dl",
		Description: "metadata is dropped",
		Config:      validToml,
	})
	require.NoError(t, err)

	content, filename, err := cl.DownloadConfig("dl")
	require.NoError(t, err)
	assert.Equal(t, validToml, content)
	assert.Equal(t, "dl.conf", filename)
}

func TestConfigLogic_DownloadConfig_NotFound(t *testing.T) {
	cl, _ := newTestLogic(t)

	_, _, err := cl.DownloadConfig("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConfigLogic_DeleteConfig(t *testing.T) {
	cl, _ := newTestLogic(t)

	_, err := cl.SaveConfig(&model.SaveConfigReq{Name: "victim", Config: validToml})
	require.NoError(t, err)

	require.NoError(t, cl.DeleteConfig("victim"))

	_, err = cl.GetConfig("victim")
	assert.ErrorIs(t, err, ErrNotFound)

	summaries, err := cl.ListConfigs()
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestConfigLogic_DeleteConfig_NotFound(t *testing.T) {
	cl, _ := newTestLogic(t)

	assert.ErrorIs(t, cl.DeleteConfig("missing"), ErrNotFound)
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"plain", "plain", false},
		{"  trimmed  ", "trimmed", false},
		{"", "", true},
		{"   ", "", true},
		{"a/b", "", true},
		{`a\b`, "", true},
		{".", "", true},
		{"..", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeName(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidName)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
