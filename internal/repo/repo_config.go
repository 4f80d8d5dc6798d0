package repo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/obsworks/telegraf-confd/internal/model"
	"github.com/obsworks/telegraf-confd/pkg/log"
)

// ErrNotFound is returned when no record file exists for a name.
var ErrNotFound = errors.New("configuration not found")

const recordSuffix = ".json"

type IConfigRepository interface {
	Save(record *model.ConfigRecord) (string, error)
	Get(name string) (*model.ConfigRecord, error)
	List() ([]model.ConfigSummary, error)
	Delete(name string) error
	Count() (int, error)
}

// ConfigRepo stores one JSON record file per configuration name under a
// single root directory. Identity is the name; saving an existing name
// replaces the file wholesale. Concurrent saves on the same name race and
// the last writer wins, which is the accepted contract.
type ConfigRepo struct {
	dir string
}

// NewConfigRepo creates the root directory if absent and returns the repo.
func NewConfigRepo(dir string) (IConfigRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create config directory %s: %w", dir, err)
	}
	return &ConfigRepo{dir: dir}, nil
}

// Save writes the record as <name>.json and returns the file path. The
// write goes through a temp file and rename so a concurrent reader never
// sees a half-written record.
func (cr *ConfigRepo) Save(record *model.ConfigRecord) (string, error) {
	data, err := sonic.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode configuration %s: %w", record.Name, err)
	}

	path := cr.recordPath(record.Name)

	tmp, err := os.CreateTemp(cr.dir, record.Name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file for %s: %w", record.Name, err)
	}
	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write configuration %s: %w", record.Name, err)
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write configuration %s: %w", record.Name, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to store configuration %s: %w", record.Name, err)
	}

	return path, nil
}

// Get returns the full record for a name, or ErrNotFound.
func (cr *ConfigRepo) Get(name string) (*model.ConfigRecord, error) {
	data, err := os.ReadFile(cr.recordPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read configuration %s: %w", name, err)
	}

	var record model.ConfigRecord
	if err := sonic.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to decode configuration %s: %w", name, err)
	}
	return &record, nil
}

// List scans the root directory and returns one summary per record file,
// in directory enumeration order. Corrupt record files are skipped with a
// warning rather than failing the whole listing.
func (cr *ConfigRepo) List() ([]model.ConfigSummary, error) {
	entries, err := os.ReadDir(cr.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan config directory: %w", err)
	}

	summaries := make([]model.ConfigSummary, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), recordSuffix) {
			continue
		}

		data, err := os.ReadFile(filepath.Join(cr.dir, entry.Name()))
		if err != nil {
			log.Warnw("skipping unreadable config record", "file", entry.Name(), "error", err)
			continue
		}

		var record model.ConfigRecord
		if err := sonic.Unmarshal(data, &record); err != nil {
			log.Warnw("skipping corrupt config record", "file", entry.Name(), "error", err)
			continue
		}

		summaries = append(summaries, model.ConfigSummary{
			Name:        record.Name,
			Description: record.Description,
			CreatedAt:   record.CreatedAt,
			Filename:    entry.Name(),
		})
	}

	return summaries, nil
}

// Delete removes the record file for a name, or returns ErrNotFound.
func (cr *ConfigRepo) Delete(name string) error {
	err := os.Remove(cr.recordPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete configuration %s: %w", name, err)
	}
	return nil
}

// Count returns the number of record files currently in the store.
func (cr *ConfigRepo) Count() (int, error) {
	entries, err := os.ReadDir(cr.dir)
	if err != nil {
		return 0, fmt.Errorf("failed to scan config directory: %w", err)
	}

	count := 0
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), recordSuffix) {
			count++
		}
	}
	return count, nil
}

func (cr *ConfigRepo) recordPath(name string) string {
	return filepath.Join(cr.dir, name+recordSuffix)
}
