package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"medman/internal/query"
)

func load(t *testing.T, args ...string) (*Config, error) {
	t.Helper()

	var (
		cfg *Config
		err error
	)
	app := &cli.App{
		Name:  "medman",
		Flags: Flags(),
		Action: func(c *cli.Context) error {
			cfg, err = FromContext(c)
			return nil
		},
	}
	require.NoError(t, app.Run(append([]string{"medman"}, args...)))
	return cfg, err
}

func TestDefaults(t *testing.T) {
	cfg, err := load(t)
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
	assert.Equal(t, []string{"mp3"}, cfg.Extensions)
	assert.Equal(t, query.MatchEach, cfg.MatchMode)
	assert.False(t, cfg.Strict)
	assert.True(t, cfg.Progress)
}

func TestFlags(t *testing.T) {
	cfg, err := load(t,
		"--log-level", "debug",
		"--ext", ".MP3,flac",
		"--ext", "ogg",
		"--strict",
		"--match", "all",
		"--no-progress",
	)
	require.NoError(t, err)

	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
	assert.Equal(t, []string{"mp3", "flac", "ogg"}, cfg.Extensions)
	assert.True(t, cfg.Strict)
	assert.Equal(t, query.MatchAll, cfg.MatchMode)
	assert.False(t, cfg.Progress)
}

func TestEnvVars(t *testing.T) {
	t.Setenv("MEDMAN_MATCH", "all")
	t.Setenv("MEDMAN_STRICT", "true")

	cfg, err := load(t)
	require.NoError(t, err)

	assert.Equal(t, query.MatchAll, cfg.MatchMode)
	assert.True(t, cfg.Strict)
}

func TestInvalidValues(t *testing.T) {
	_, err := load(t, "--log-level", "loud")
	assert.Error(t, err)

	_, err = load(t, "--match", "any")
	assert.Error(t, err)

	_, err = load(t, "--ext", " , ")
	assert.Error(t, err)

	_, err = load(t, "--ext", "a/b")
	assert.Error(t, err)
}
