package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Environment string
	Stream      struct {
		Interval time.Duration
		Origins  []string
	}
}

const testYAML = `
environment: local
stream:
  interval: 250ms
  origins: "a.com,b.com"
`

func TestUnmarshalDecodeHooks(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewBufferString(testYAML)))

	var cfg testConfig
	require.NoError(t, unmarshal(v, &cfg))
	assert.Equal(t, "local", cfg.Environment)
	assert.Equal(t, 250*time.Millisecond, cfg.Stream.Interval)
	assert.Equal(t, []string{"a.com", "b.com"}, cfg.Stream.Origins)
}

func TestNewConfigEnvOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "felfeltest.yaml"), []byte(testYAML), 0o600))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("FELFELTEST_STREAM_INTERVAL", "2s")

	var cfg testConfig
	require.NoError(t, NewConfig("felfeltest", "FELFELTEST", &cfg))
	assert.Equal(t, 2*time.Second, cfg.Stream.Interval)
	assert.Equal(t, "local", cfg.Environment)
}

func TestNewConfigMissingFile(t *testing.T) {
	var cfg testConfig
	assert.Error(t, NewConfig("does-not-exist", "NOPE", &cfg))
}
