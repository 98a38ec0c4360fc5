// Package config loads and validates the engine configuration from
// chainforge.yaml plus environment variables. Secrets never live in YAML;
// the file names the environment variable that carries them.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// Config is the fully resolved engine configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	LLM       LLMConfig       `yaml:"llm"`
	Solc      SolcConfig      `yaml:"solc"`
	Audit     AuditConfig     `yaml:"audit"`
	Testing   TestingConfig   `yaml:"testing"`
	Deploy    DeployConfig    `yaml:"deploy"`
	Redis     RedisConfig     `yaml:"redis"`
	Workers   WorkersConfig   `yaml:"workers"`
	Retention RetentionConfig `yaml:"retention"`

	// NetworksFile optionally extends the built-in network catalog.
	NetworksFile string `yaml:"networks_file"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port             int      `yaml:"port"`
	AllowedWSOrigins []string `yaml:"allowed_ws_origins"`
}

// LLMConfig selects and tunes the generation and embedding providers.
type LLMConfig struct {
	// Provider selects the generation backend: "gemini" or "openai".
	Provider string `yaml:"provider"`

	Gemini ProviderConfig `yaml:"gemini"`
	OpenAI ProviderConfig `yaml:"openai"`

	// Timeout bounds one generation call; retries get a fresh budget.
	Timeout time.Duration `yaml:"timeout"`

	// MaxInflight caps concurrent provider calls across all workers.
	MaxInflight int64 `yaml:"max_inflight"`
}

// ProviderConfig holds per-provider settings. APIKeyEnv names the
// environment variable carrying the key.
type ProviderConfig struct {
	APIKeyEnv string `yaml:"api_key_env"`
	Model     string `yaml:"model"`
}

// APIKey resolves the provider's API key from the environment.
func (p ProviderConfig) APIKey() string {
	return os.Getenv(p.APIKeyEnv)
}

// SolcConfig locates the Solidity compiler binaries.
type SolcConfig struct {
	// BinDir holds versioned binaries named "solc-<version>".
	BinDir string `yaml:"bin_dir"`

	// DefaultBinary is used when no versioned binary matches the pragma.
	DefaultBinary string `yaml:"default_binary"`

	Timeout time.Duration `yaml:"timeout"`
}

// AuditConfig locates the audit tool binaries. An empty path disables the
// tool; the audit stage degrades per its advisory rules.
type AuditConfig struct {
	SlitherPath string `yaml:"slither_path"`
	MythrilPath string `yaml:"mythril_path"`
	EchidnaPath string `yaml:"echidna_path"`

	// Strict makes a failed audit verdict fatal to the workflow.
	Strict bool `yaml:"strict"`
}

// TestingConfig tunes the testing stage.
type TestingConfig struct {
	// Strict makes test failures fatal to the workflow.
	Strict bool `yaml:"strict"`
}

// DeployConfig holds deployment settings. The signing key is read from the
// environment once at startup and held in memory only.
type DeployConfig struct {
	PrivateKeyEnv string `yaml:"private_key_env"`

	// MaxInflight caps concurrent transaction submissions per network.
	MaxInflight int64 `yaml:"max_inflight"`

	EigenDAEndpoint string        `yaml:"eigenda_endpoint"`
	EigenDATimeout  time.Duration `yaml:"eigenda_timeout"`
}

// PrivateKey resolves the deployer key from the environment.
func (d DeployConfig) PrivateKey() string {
	return os.Getenv(d.PrivateKeyEnv)
}

// RedisConfig holds event bus connection settings.
type RedisConfig struct {
	Addr        string `yaml:"addr"`
	PasswordEnv string `yaml:"password_env"`
	DB          int    `yaml:"db"`
}

// Password resolves the Redis password from the environment.
func (r RedisConfig) Password() string {
	return os.Getenv(r.PasswordEnv)
}

// WorkersConfig tunes the workflow worker pool.
type WorkersConfig struct {
	WorkerCount        int           `yaml:"worker_count"`
	MaxConcurrent      int           `yaml:"max_concurrent"`
	PollInterval       time.Duration `yaml:"poll_interval"`
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`
	WorkflowTimeout    time.Duration `yaml:"workflow_timeout"`
	HeartbeatInterval  time.Duration `yaml:"heartbeat_interval"`
	OrphanThreshold    time.Duration `yaml:"orphan_threshold"`
	OrphanScanInterval time.Duration `yaml:"orphan_scan_interval"`
}

// RetentionConfig tunes the background retention job. EventTTL is how long
// a terminal workflow's event log is kept.
type RetentionConfig struct {
	Enabled  bool          `yaml:"enabled"`
	EventTTL time.Duration `yaml:"event_ttl"`
	Interval time.Duration `yaml:"interval"`
}

// Default returns the built-in configuration. A YAML file overrides
// individual fields.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
		},
		LLM: LLMConfig{
			Provider:    "gemini",
			Gemini:      ProviderConfig{APIKeyEnv: "GOOGLE_API_KEY", Model: "gemini-2.5-flash"},
			OpenAI:      ProviderConfig{APIKeyEnv: "OPENAI_API_KEY", Model: "gpt-4o-mini"},
			Timeout:     30 * time.Second,
			MaxInflight: 20,
		},
		Solc: SolcConfig{
			DefaultBinary: "solc",
			Timeout:       60 * time.Second,
		},
		Audit: AuditConfig{
			SlitherPath: "slither",
			MythrilPath: "myth",
			EchidnaPath: "echidna",
		},
		Deploy: DeployConfig{
			PrivateKeyEnv:  "DEPLOYER_PRIVATE_KEY",
			MaxInflight:    50,
			EigenDATimeout: 60 * time.Second,
		},
		Redis: RedisConfig{
			Addr:        "localhost:6379",
			PasswordEnv: "REDIS_PASSWORD",
		},
		Workers: WorkersConfig{
			WorkerCount:        4,
			MaxConcurrent:      10,
			PollInterval:       2 * time.Second,
			PollIntervalJitter: 500 * time.Millisecond,
			WorkflowTimeout:    15 * time.Minute,
			HeartbeatInterval:  10 * time.Second,
			OrphanThreshold:    2 * time.Minute,
			OrphanScanInterval: time.Minute,
		},
		Retention: RetentionConfig{
			Enabled:  true,
			EventTTL: 7 * 24 * time.Hour,
			Interval: time.Hour,
		},
	}
}

// Validate checks the resolved configuration for contradictions the engine
// cannot start with.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}

	switch c.LLM.Provider {
	case "gemini", "openai":
	default:
		errs = append(errs, fmt.Errorf("llm.provider %q unknown (want gemini or openai)", c.LLM.Provider))
	}
	if c.LLM.MaxInflight <= 0 {
		errs = append(errs, errors.New("llm.max_inflight must be positive"))
	}
	if c.LLM.Timeout <= 0 {
		errs = append(errs, errors.New("llm.timeout must be positive"))
	}

	if c.Deploy.MaxInflight <= 0 {
		errs = append(errs, errors.New("deploy.max_inflight must be positive"))
	}
	if c.Deploy.PrivateKeyEnv == "" {
		errs = append(errs, errors.New("deploy.private_key_env is required"))
	}

	if c.Redis.Addr == "" {
		errs = append(errs, errors.New("redis.addr is required"))
	}

	if c.Workers.WorkerCount <= 0 {
		errs = append(errs, errors.New("workers.worker_count must be positive"))
	}
	if c.Workers.WorkflowTimeout <= 0 {
		errs = append(errs, errors.New("workers.workflow_timeout must be positive"))
	}
	if c.Workers.HeartbeatInterval >= c.Workers.OrphanThreshold {
		errs = append(errs, errors.New("workers.heartbeat_interval must be below workers.orphan_threshold"))
	}

	if c.Retention.Enabled {
		if c.Retention.EventTTL <= 0 {
			errs = append(errs, errors.New("retention.event_ttl must be positive"))
		}
		if c.Retention.Interval <= 0 {
			errs = append(errs, errors.New("retention.interval must be positive"))
		}
	}

	return errors.Join(errs...)
}
