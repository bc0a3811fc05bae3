package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: test
  serviceName: blog
  debug: true
  log:
    level: debug
    pretty: true
http:
  port: 9090
  timeouts:
    readTimeout: 5s
    idleTimeout: 1m
secretKey:
  access: from-file
auth:
  passwordScheme: plaintext
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))

	return dir
}

func TestLoadWithEnv_ReadsYAML(t *testing.T) {
	dir := writeConfig(t, testYAML)

	cfg, err := LoadWithEnv[Config]("config", dir)
	require.NoError(t, err)

	assert.Equal(t, "blog", cfg.Env.ServiceName)
	assert.True(t, cfg.Env.Debug)
	assert.Equal(t, "debug", cfg.Env.Log.Level)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	assert.Equal(t, time.Minute, cfg.HTTP.Timeouts.IdleTimeout)
	assert.Equal(t, "from-file", cfg.SecretKey.Access)
	assert.Nil(t, cfg.PubSub)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := writeConfig(t, testYAML)
	t.Setenv("SECRETKEY_ACCESS", "from-env")
	t.Setenv("AUTH_PASSWORDSCHEME", "bcrypt")

	cfg, err := LoadWithEnv[Config]("config", dir)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.SecretKey.Access)
	assert.Equal(t, PasswordSchemeBcrypt, cfg.PasswordScheme())
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.yaml not found")
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.HTTP.Port = 8080
		cfg.SecretKey.Access = "secret"

		return cfg
	}

	t.Run("valid with default scheme", func(t *testing.T) {
		cfg := valid()
		require.NoError(t, cfg.Validate())
		assert.Equal(t, PasswordSchemePlaintext, cfg.PasswordScheme())
	})

	t.Run("missing secret", func(t *testing.T) {
		cfg := valid()
		cfg.SecretKey.Access = "  "
		assert.ErrorContains(t, cfg.Validate(), "secretKey.access")
	})

	t.Run("bad port", func(t *testing.T) {
		cfg := valid()
		cfg.HTTP.Port = 70000
		assert.ErrorContains(t, cfg.Validate(), "http.port")
	})

	t.Run("bad worker port", func(t *testing.T) {
		cfg := valid()
		cfg.Worker.Port = -1
		assert.ErrorContains(t, cfg.Validate(), "worker.port")
	})

	t.Run("unknown scheme", func(t *testing.T) {
		cfg := valid()
		cfg.Auth = &AuthConfig{PasswordScheme: "md5"}
		assert.ErrorContains(t, cfg.Validate(), "passwordScheme")
	})

	t.Run("bootstrap author", func(t *testing.T) {
		cfg := valid()
		cfg.Bootstrap = &BootstrapConfig{}
		require.NoError(t, cfg.Validate())
		assert.Nil(t, cfg.BootstrapAuthor())

		cfg.Bootstrap.Author = &BootstrapAuthor{Name: "admin"}
		assert.ErrorContains(t, cfg.Validate(), "bootstrap.author")

		cfg.Bootstrap.Author.Password = "asdfgqwert"
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "admin", cfg.BootstrapAuthor().Name)
	})
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultPort, cfg.HTTP.Port)
	assert.Equal(t, defaultWorkerPort, cfg.Worker.Port)
}
