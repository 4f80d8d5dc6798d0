package template

import (
	"embed"

	"github.com/obsworks/telegraf-confd/internal/model"
)

//go:embed templates
var templateFS embed.FS

// catalog maps template id to its display metadata. Payloads are embedded
// .conf files keyed by the same id. These are trusted hand-authored
// documents and are served without parsing.
var catalog = map[string]struct {
	name        string
	description string
}{
	"basic_cpu": {
		name:        "Basic CPU Monitoring",
		description: "Monitor CPU usage with 10-second intervals",
	},
	"memory_disk": {
		name:        "Memory and Disk Monitoring",
		description: "Monitor memory usage and disk statistics",
	},
	"network_monitoring": {
		name:        "Network Interface Monitoring",
		description: "Monitor network interface statistics",
	},
	"docker_containers": {
		name:        "Docker Container Monitoring",
		description: "Monitor Docker container statistics",
	},
	"diskio_monitoring": {
		name:        "Disk I/O Monitoring",
		description: "Monitor disk I/O performance metrics including reads, writes, and timing statistics",
	},
	"comprehensive_disk": {
		name:        "Comprehensive Disk Monitoring",
		description: "Monitor both disk usage and I/O performance metrics",
	},
}

// Catalog returns the full template catalog keyed by template id. The
// catalog is static; a fresh map is returned so callers cannot mutate it.
func Catalog() map[string]model.Template {
	templates := make(map[string]model.Template, len(catalog))
	for id, meta := range catalog {
		config, err := templateFS.ReadFile("templates/" + id + ".conf")
		if err != nil {
			// embedded file set is fixed at compile time
			panic(err)
		}
		templates[id] = model.Template{
			Name:        meta.name,
			Description: meta.description,
			Config:      string(config),
		}
	}
	return templates
}
