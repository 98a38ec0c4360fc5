package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chainforge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestInitializeDefaults(t *testing.T) {
	cfg, err := Initialize("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, int64(20), cfg.LLM.MaxInflight)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "DEPLOYER_PRIVATE_KEY", cfg.Deploy.PrivateKeyEnv)
	assert.Equal(t, int64(50), cfg.Deploy.MaxInflight)
	assert.Equal(t, 4, cfg.Workers.WorkerCount)
	assert.Less(t, cfg.Workers.HeartbeatInterval, cfg.Workers.OrphanThreshold)
}

func TestInitializeOverridesFromFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
llm:
  provider: openai
  openai:
    api_key_env: MY_OPENAI_KEY
    model: gpt-4o
workers:
  worker_count: 8
networks_file: /etc/chainforge/networks.yaml
`)

	cfg, err := Initialize(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "MY_OPENAI_KEY", cfg.LLM.OpenAI.APIKeyEnv)
	assert.Equal(t, "gpt-4o", cfg.LLM.OpenAI.Model)
	assert.Equal(t, 8, cfg.Workers.WorkerCount)
	assert.Equal(t, "/etc/chainforge/networks.yaml", cfg.NetworksFile)

	// Untouched sections keep their defaults.
	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.Gemini.Model)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestInitializeExpandsEnvironment(t *testing.T) {
	t.Setenv("TEST_REDIS_ADDR", "redis.internal:6380")
	path := writeConfig(t, `
redis:
  addr: {{.TEST_REDIS_ADDR}}
`)

	cfg, err := Initialize(path)
	require.NoError(t, err)
	assert.Equal(t, "redis.internal:6380", cfg.Redis.Addr)
}

func TestInitializeMissingFile(t *testing.T) {
	_, err := Initialize(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "bad provider",
			mutate:  func(c *Config) { c.LLM.Provider = "anthropic" },
			wantErr: "llm.provider",
		},
		{
			name:    "zero workers",
			mutate:  func(c *Config) { c.Workers.WorkerCount = 0 },
			wantErr: "worker_count",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "server.port",
		},
		{
			name:    "heartbeat above orphan threshold",
			mutate:  func(c *Config) { c.Workers.HeartbeatInterval = 5 * time.Minute },
			wantErr: "heartbeat_interval",
		},
		{
			name:    "missing private key env",
			mutate:  func(c *Config) { c.Deploy.PrivateKeyEnv = "" },
			wantErr: "private_key_env",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSecretResolution(t *testing.T) {
	t.Setenv("TEST_KEY_ENV", "sk-abc")
	p := ProviderConfig{APIKeyEnv: "TEST_KEY_ENV"}
	assert.Equal(t, "sk-abc", p.APIKey())

	d := DeployConfig{PrivateKeyEnv: "UNSET_KEY_ENV"}
	assert.Empty(t, d.PrivateKey())
}
