package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/CrazyAlex15/PaletoBot-PriceCalculator-Bot/pkg/storage"
)

// SettingsStore keeps every guild's settings in one flat JSON file that is
// rewritten in full on every save. A mutex serializes writers inside this
// process; across processes the last writer still wins for the whole file,
// which is accepted for the expected single-admin write rate.
type SettingsStore struct {
	path string
	mu   sync.Mutex
}

func New(path string) *SettingsStore {
	return &SettingsStore{path: path}
}

// Load reads the whole settings file. A missing or malformed file loads as
// empty settings, never as an error.
func (s *SettingsStore) Load() (storage.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(), nil
}

// Save rewrites the whole settings file.
func (s *SettingsStore) Save(settings storage.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(settings)
}

// Get returns one guild's record.
func (s *SettingsStore) Get(guildID string) (storage.ServerSettings, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.read()[guildID]
	return record, ok
}

// Put overwrites one guild's record wholesale, leaving other guilds intact.
func (s *SettingsStore) Put(guildID string, record storage.ServerSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := s.read()
	settings[guildID] = record
	return s.write(settings)
}

func (s *SettingsStore) read() storage.Settings {
	settings := make(storage.Settings)

	data, err := os.ReadFile(s.path)
	if err != nil {
		return settings
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		return make(storage.Settings)
	}
	return settings
}

func (s *SettingsStore) write(settings storage.Settings) error {
	data, err := json.MarshalIndent(settings, "", "    ")
	if err != nil {
		return fmt.Errorf("can't marshal settings: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("can't write settings file: %w", err)
	}
	return nil
}
