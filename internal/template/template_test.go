package template

import (
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	templates := Catalog()

	wantIds := []string{
		"basic_cpu",
		"memory_disk",
		"network_monitoring",
		"docker_containers",
		"diskio_monitoring",
		"comprehensive_disk",
	}
	require.Len(t, templates, len(wantIds))
	for _, id := range wantIds {
		tpl, ok := templates[id]
		require.True(t, ok, "missing template %s", id)
		assert.NotEmpty(t, tpl.Name)
		assert.NotEmpty(t, tpl.Description)
		assert.NotEmpty(t, tpl.Config)
	}
}

func TestCatalog_PayloadsAreValidToml(t *testing.T) {
	for id, tpl := range Catalog() {
		t.Run(id, func(t *testing.T) {
			var doc map[string]any
			assert.NoError(t, toml.Unmarshal([]byte(tpl.Config), &doc))
		})
	}
}

func TestCatalog_ReturnsFreshMap(t *testing.T) {
	first := Catalog()
	delete(first, "basic_cpu")

	second := Catalog()
	assert.Contains(t, second, "basic_cpu")
}
