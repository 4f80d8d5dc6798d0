package logic

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/obsworks/telegraf-confd/internal/model"
	"github.com/obsworks/telegraf-confd/internal/repo"
	"github.com/obsworks/telegraf-confd/pkg/log"
	"github.com/obsworks/telegraf-confd/pkg/metrics"
)

var (
	// ErrInvalidName rejects empty or path-escaping configuration names.
	ErrInvalidName = errors.New("configuration name is required")

	// ErrNotFound mirrors repo.ErrNotFound at the logic boundary.
	ErrNotFound = repo.ErrNotFound
)

// SyntaxError wraps the parser diagnostic for content rejected on save.
type SyntaxError struct {
	Diag string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Invalid TOML syntax: %s", e.Diag)
}

type ConfigLogic struct {
	configRepo    repo.IConfigRepository
	validateLogic *ValidateLogic
}

func NewConfigLogic(configRepo repo.IConfigRepository, validateLogic *ValidateLogic) *ConfigLogic {
	return &ConfigLogic{
		configRepo:    configRepo,
		validateLogic: validateLogic,
	}
}

// SaveConfig validates and persists one configuration record, overwriting
// any record of the same name. Nothing is written when validation fails.
// Empty content skips syntax validation and is stored as-is.
func (cl *ConfigLogic) SaveConfig(req *model.SaveConfigReq) (*model.SaveConfigRep, error) {
	name, err := normalizeName(req.Name)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Config) != "" {
		result, err := cl.validateLogic.ValidateToml(req.Config)
		if err != nil {
			return nil, err
		}
		if !result.Valid {
			return nil, &SyntaxError{Diag: result.Error}
		}
	}

	record := &model.ConfigRecord{
		Name:           name,
		CreatedAt:      time.Now().Format(time.RFC3339),
		Description:    req.Description,
		TelegrafConfig: req.Config,
		Format:         model.FormatToml,
	}

	path, err := cl.configRepo.Save(record)
	if err != nil {
		log.Errorf("save config err: %v", err)
		return nil, err
	}

	metrics.RecordConfigSaved()
	cl.updateStoredGauge()

	return &model.SaveConfigRep{
		Message:    "Configuration saved successfully",
		ConfigFile: path,
	}, nil
}

// ListConfigs returns one summary per stored record, empty slice on an
// empty store.
func (cl *ConfigLogic) ListConfigs() ([]model.ConfigSummary, error) {
	summaries, err := cl.configRepo.List()
	if err != nil {
		log.Errorf("list configs err: %v", err)
		return nil, err
	}
	return summaries, nil
}

// GetConfig returns the full record for a name.
func (cl *ConfigLogic) GetConfig(name string) (*model.ConfigRecord, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	return cl.configRepo.Get(name)
}

// DownloadConfig returns the raw Telegraf document for a name together
// with the suggested attachment filename. Record metadata is dropped.
func (cl *ConfigLogic) DownloadConfig(name string) (string, string, error) {
	name, err := normalizeName(name)
	if err != nil {
		return "", "", err
	}

	record, err := cl.configRepo.Get(name)
	if err != nil {
		return "", "", err
	}

	return record.TelegrafConfig, name + ".conf", nil
}

// DeleteConfig removes the record for a name.
func (cl *ConfigLogic) DeleteConfig(name string) error {
	name, err := normalizeName(name)
	if err != nil {
		return err
	}

	if err := cl.configRepo.Delete(name); err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			log.Errorf("delete config err: %v", err)
		}
		return err
	}

	metrics.RecordConfigDeleted()
	cl.updateStoredGauge()
	return nil
}

func (cl *ConfigLogic) updateStoredGauge() {
	count, err := cl.configRepo.Count()
	if err != nil {
		log.Warnw("failed to count stored configs", "error", err)
		return
	}
	metrics.UpdateStoredConfigs(count)
}

// normalizeName applies the single identity rule shared by save, get,
// download and delete: trim whitespace, reject empty, and reject names
// that would escape the record directory.
func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrInvalidName
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", ErrInvalidName
	}
	return name, nil
}
