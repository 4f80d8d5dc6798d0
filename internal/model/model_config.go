package model

// FormatToml is the only content format the store accepts.
const FormatToml = "toml"

// ConfigRecord is a persisted Telegraf configuration with its metadata.
// The JSON keys are the on-disk contract; existing stores written by older
// deployments must keep decoding, so fields missing on read stay zero-valued.
type ConfigRecord struct {
	Name           string `json:"name"`
	CreatedAt      string `json:"created_at"`
	Description    string `json:"description"`
	TelegrafConfig string `json:"telegraf_config"`
	Format         string `json:"format"`
}

// ConfigSummary is one entry of the listing, record metadata plus file key.
type ConfigSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	Filename    string `json:"filename"`
}

// SaveConfigReq is the save request body.
type SaveConfigReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Config      string `json:"config"`
}

// SaveConfigRep carries the save confirmation and the record's file key.
type SaveConfigRep struct {
	Message    string `json:"message"`
	ConfigFile string `json:"config_file"`
}

// ValidateTomlReq is the standalone validation request body.
type ValidateTomlReq struct {
	Content string `json:"content"`
}

// ValidateTomlRep is the validation outcome. Error carries the parser
// diagnostic verbatim when Valid is false.
type ValidateTomlRep struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
