package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setenv(t *testing.T, key, value string) {
	t.Helper()
	old, had := os.LookupEnv(key)
	require.NoError(t, os.Setenv(key, value))
	t.Cleanup(func() {
		if had {
			os.Setenv(key, old)
		} else {
			os.Unsetenv(key)
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setenv(t, "CANARY_CONFIG_FILE", "")
		c, err := Load()
		require.NoError(t, err)
		assert.Equal(t, Default(), c)
	})

	t.Run("file then environment", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "canary.yaml")
		contents := "players: 6\nseed: 12\nlog:\n  level: debug\n  format: json\n"
		require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

		setenv(t, "CANARY_CONFIG_FILE", path)
		setenv(t, "CANARY_SEED", "99")

		c, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 6, c.Players)
		assert.Equal(t, int64(99), c.Seed)
		assert.Equal(t, "debug", c.Log.Level)
		assert.Equal(t, "json", c.Log.Format)
		assert.Equal(t, "game_data.txt", c.RecordsPath)
	})

	t.Run("missing file", func(t *testing.T) {
		setenv(t, "CANARY_CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("invalid player count", func(t *testing.T) {
		setenv(t, "CANARY_CONFIG_FILE", "")
		setenv(t, "CANARY_PLAYERS", "9")
		_, err := Load()
		assert.True(t, errors.Is(err, ErrTooManyPlayers))
	})
}

func TestValidate(t *testing.T) {
	c := Default()
	assert.NoError(t, c.Validate())

	c.Players = 1
	assert.True(t, errors.Is(c.Validate(), ErrTooFewPlayers))

	c = Default()
	c.MaxTurnsFactor = -1
	assert.Error(t, c.Validate())
}
