package logic

import (
	"errors"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/obsworks/telegraf-confd/internal/model"
	"github.com/obsworks/telegraf-confd/pkg/metrics"
)

// ErrEmptyContent is returned when validation is asked about an empty or
// whitespace-only document.
var ErrEmptyContent = errors.New("TOML content is empty")

type ValidateLogic struct{}

func NewValidateLogic() *ValidateLogic {
	return &ValidateLogic{}
}

// ValidateToml checks whether content is syntactically valid TOML. It is a
// pure grammar check, no required sections or keys are enforced. The parser
// diagnostic is passed through verbatim on failure.
func (vl *ValidateLogic) ValidateToml(content string) (*model.ValidateTomlRep, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	var doc map[string]any
	if err := toml.Unmarshal([]byte(content), &doc); err != nil {
		metrics.RecordValidationFailure()
		return &model.ValidateTomlRep{
			Valid: false,
			Error: err.Error(),
		}, nil
	}

	return &model.ValidateTomlRep{
		Valid:   true,
		Message: "Valid TOML syntax",
	}, nil
}
