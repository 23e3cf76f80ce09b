package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	v, err := NewViper("")
	require.NoError(t, err)

	s, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "african_news_links.json", s.Output)
	assert.Equal(t, "all", s.Site)
	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, 10*time.Second, s.HTTPTimeout())
	assert.Equal(t, time.Second, s.RequestDelay())
	assert.Empty(t, s.PublishersFile)
}

func TestLoadFromConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	content := []byte("output: out.json\nsite: rfi\nhttp_timeout_seconds: 5\nrequest_delay_seconds: 0\n")
	require.NoError(t, os.WriteFile(cfgPath, content, 0o644))

	v, err := NewViper(cfgPath)
	require.NoError(t, err)

	s, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "out.json", s.Output)
	assert.Equal(t, "rfi", s.Site)
	assert.Equal(t, 5*time.Second, s.HTTPTimeout())
	assert.Equal(t, time.Duration(0), s.RequestDelay())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cases := map[string]string{
		"empty output":     "output: \"\"\n",
		"zero timeout":     "http_timeout_seconds: 0\n",
		"negative delay":   "request_delay_seconds: -1\n",
		"negative timeout": "http_timeout_seconds: -3\n",
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			cfgPath := filepath.Join(dir, name+".yaml")
			require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))

			v, err := NewViper(cfgPath)
			require.NoError(t, err)

			_, err = Load(v)
			require.Error(t, err)
		})
	}
}

func TestNewViperMissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := NewViper(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
