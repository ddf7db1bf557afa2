package jsonfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CrazyAlex15/PaletoBot-PriceCalculator-Bot/pkg/storage"
)

func newStore(t *testing.T) *SettingsStore {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "server_settings.json"))
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	settings, err := newStore(t).Load()
	require.NoError(t, err)
	assert.Empty(t, settings)
}

func TestLoadMalformedFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server_settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{oops"), 0o644))

	settings, err := New(path).Load()
	require.NoError(t, err)
	assert.Empty(t, settings)
}

func TestPutOverwritesOneGuildOnly(t *testing.T) {
	store := newStore(t)

	first := storage.ServerSettings{MenuChannelID: "100", JobChannelID: "101", WebhookURL: "https://discord.com/api/webhooks/1/aaa"}
	other := storage.ServerSettings{MenuChannelID: "200", JobChannelID: "201", WebhookURL: "https://discord.com/api/webhooks/2/bbb"}
	require.NoError(t, store.Put("guild-1", first))
	require.NoError(t, store.Put("guild-2", other))

	updated := storage.ServerSettings{MenuChannelID: "110", JobChannelID: "111", WebhookURL: "https://discord.com/api/webhooks/3/ccc"}
	require.NoError(t, store.Put("guild-1", updated))

	settings, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, updated, settings["guild-1"])
	assert.Equal(t, other, settings["guild-2"])
}

func TestGet(t *testing.T) {
	store := newStore(t)
	record := storage.ServerSettings{MenuChannelID: "1", JobChannelID: "2", WebhookURL: "u"}
	require.NoError(t, store.Put("guild-1", record))

	got, ok := store.Get("guild-1")
	require.True(t, ok)
	assert.Equal(t, record, got)

	_, ok = store.Get("guild-9")
	assert.False(t, ok)
}

func TestSaveRewritesWholeFile(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Put("guild-1", storage.ServerSettings{MenuChannelID: "1"}))
	require.NoError(t, store.Put("guild-2", storage.ServerSettings{MenuChannelID: "2"}))

	require.NoError(t, store.Save(storage.Settings{
		"guild-2": {MenuChannelID: "22"},
	}))

	settings, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, settings, 1)
	assert.Equal(t, "22", settings["guild-2"].MenuChannelID)
}

func TestRoundTripKeepsFileKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server_settings.json")
	store := New(path)
	require.NoError(t, store.Put("guild-1", storage.ServerSettings{
		MenuChannelID: "100",
		JobChannelID:  "101",
		WebhookURL:    "https://discord.com/api/webhooks/1/aaa",
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"menu_channel"`)
	assert.Contains(t, string(data), `"job_channel"`)
	assert.Contains(t, string(data), `"webhook"`)
}
