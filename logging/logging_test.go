package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_DisabledByDefault(t *testing.T) {
	logger, closer, err := Setup(Options{})
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestSetup_EnabledWritesFile(t *testing.T) {
	dir := t.TempDir()

	logger, closer, err := Setup(Options{Enabled: true, Dir: dir, Level: "debug"})
	require.NoError(t, err)

	logger.Debug().Str("k", "v").Msg("test log message")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "test log message")
	assert.Contains(t, string(data), `"k":"v"`)
}

func TestSetup_LevelFilters(t *testing.T) {
	dir := t.TempDir()

	logger, closer, err := Setup(Options{Enabled: true, Dir: dir, Level: "warn"})
	require.NoError(t, err)

	logger.Info().Msg("quiet")
	logger.Warn().Msg("loud")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "quiet")
	assert.Contains(t, string(data), "loud")
}

func TestSetup_InvalidLevel(t *testing.T) {
	_, _, err := Setup(Options{Enabled: true, Dir: t.TempDir(), Level: "chatty"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestSetup_Rotation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	require.NoError(t, os.WriteFile(path, make([]byte, 2048), 0644))

	_, closer, err := Setup(Options{Enabled: true, Dir: dir, MaxSize: 1024})
	require.NoError(t, err)
	defer closer.Close()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != FileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
		}
	}
	assert.True(t, rotatedFound, "expected rotated log file")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(1024))
}

func TestSetup_NoRotationUnderLimit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("existing\n"), 0644))

	_, closer, err := Setup(Options{Enabled: true, Dir: dir})
	require.NoError(t, err)
	defer closer.Close()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, level)

	level, err = ParseLevel("ERROR")
	require.NoError(t, err)
	assert.Equal(t, zerolog.ErrorLevel, level)
}
