package model

// Template is one static catalog entry. Config is the complete Telegraf
// document the user starts editing from.
type Template struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Config      string `json:"config"`
}
