package storage

// ServerSettings is one guild's configuration, written by the setup command.
// JSON keys match the settings file layout consumed by earlier deployments.
type ServerSettings struct {
	MenuChannelID string `json:"menu_channel"`
	JobChannelID  string `json:"job_channel"`
	WebhookURL    string `json:"webhook"`
}

// Settings maps guild ID to that guild's record.
type Settings map[string]ServerSettings

// SettingsStore persists per-guild settings. Put is read-modify-write over
// the whole settings set: the last writer wins for the entire file.
type SettingsStore interface {
	Load() (Settings, error)
	Save(settings Settings) error
	Get(guildID string) (ServerSettings, bool)
	Put(guildID string, record ServerSettings) error
}
