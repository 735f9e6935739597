// Package config resolves the console settings from ~/.ra/config.toml and
// RA_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/remote-assist-console/internal/application"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".ra"
	envPrefix  = "RA"

	KeyOperatorName     = "operator.name"
	KeyTicketsPath      = "tickets.path"
	KeyAffectedVehicles = "fleet.affected_vehicles"
	KeyReasonPolicy     = "dispatch.reason_policy"
	KeyOutboxDriver     = "outbox.driver"
	KeyOutboxPath       = "outbox.path"
	KeyHTTPAddr         = "http.addr"
	KeyLogLevel         = "log.level"
	KeyLogFormat        = "log.format"

	DefaultOperator = "Sarah K."
	DefaultHTTPAddr = "127.0.0.1:8787"
)

type OutboxDriver string

const (
	OutboxSQLite OutboxDriver = "sqlite"
	OutboxFile   OutboxDriver = "file"
	OutboxChain  OutboxDriver = "chain"
	OutboxNone   OutboxDriver = "none"
)

func (d OutboxDriver) Valid() bool {
	switch d {
	case OutboxSQLite, OutboxFile, OutboxChain, OutboxNone:
		return true
	default:
		return false
	}
}

type LogFormat string

const (
	LogText LogFormat = "text"
	LogJSON LogFormat = "json"
)

type Config struct {
	// File is the config file that was read, empty when none was found.
	File string

	Operator         string
	TicketsPath      string
	AffectedVehicles int
	ReasonPolicy     application.ReasonPolicy

	OutboxDriver OutboxDriver
	OutboxPath   string

	HTTPAddr string

	LogLevel  slog.Level
	LogFormat LogFormat
}

// Load reads the config into cfg and validates it. When cfg already has an
// explicit config file set, that file must exist; otherwise ~/.ra/config.toml
// is optional.
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	baseDir := filepath.Join(homeDir, configDir)

	explicit := cfg.ConfigFileUsed() != ""
	if !explicit {
		cfg.SetConfigName(configName)
		cfg.SetConfigType(configType)
		cfg.AddConfigPath(baseDir)
	}

	cfg.SetDefault(KeyOperatorName, DefaultOperator)
	cfg.SetDefault(KeyTicketsPath, filepath.Join(baseDir, "tickets.toml"))
	cfg.SetDefault(KeyAffectedVehicles, application.DefaultAffectedVehicles)
	cfg.SetDefault(KeyReasonPolicy, string(application.ReasonPolicyKeep))
	cfg.SetDefault(KeyOutboxDriver, string(OutboxFile))
	cfg.SetDefault(KeyOutboxPath, filepath.Join(baseDir, "outbox"))
	cfg.SetDefault(KeyHTTPAddr, DefaultHTTPAddr)
	cfg.SetDefault(KeyLogLevel, "info")
	cfg.SetDefault(KeyLogFormat, string(LogText))

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	out := Config{
		File:             cfg.ConfigFileUsed(),
		Operator:         strings.TrimSpace(cfg.GetString(KeyOperatorName)),
		AffectedVehicles: cfg.GetInt(KeyAffectedVehicles),
		ReasonPolicy:     application.ReasonPolicy(strings.ToLower(cfg.GetString(KeyReasonPolicy))),
		OutboxDriver:     OutboxDriver(strings.ToLower(cfg.GetString(KeyOutboxDriver))),
		HTTPAddr:         cfg.GetString(KeyHTTPAddr),
		LogFormat:        LogFormat(strings.ToLower(cfg.GetString(KeyLogFormat))),
	}

	if out.TicketsPath, err = expandPath(cfg.GetString(KeyTicketsPath), homeDir); err != nil {
		return Config{}, fmt.Errorf("%s: %w", KeyTicketsPath, err)
	}
	if out.OutboxPath, err = expandPath(cfg.GetString(KeyOutboxPath), homeDir); err != nil {
		return Config{}, fmt.Errorf("%s: %w", KeyOutboxPath, err)
	}
	if err := out.LogLevel.UnmarshalText([]byte(cfg.GetString(KeyLogLevel))); err != nil {
		return Config{}, fmt.Errorf("%s: %w", KeyLogLevel, err)
	}

	if err := out.Validate(); err != nil {
		return Config{}, err
	}

	return out, nil
}

func (c Config) Validate() error {
	if c.AffectedVehicles <= 0 {
		return fmt.Errorf("%s must be positive, got %d", KeyAffectedVehicles, c.AffectedVehicles)
	}
	if !c.ReasonPolicy.Valid() {
		return fmt.Errorf("%s must be keep or clear, got %q", KeyReasonPolicy, c.ReasonPolicy)
	}
	if !c.OutboxDriver.Valid() {
		return fmt.Errorf("%s must be one of sqlite, file, chain, none; got %q", KeyOutboxDriver, c.OutboxDriver)
	}
	if c.LogFormat != LogText && c.LogFormat != LogJSON {
		return fmt.Errorf("%s must be text or json, got %q", KeyLogFormat, c.LogFormat)
	}
	if c.HTTPAddr == "" {
		return fmt.Errorf("%s is empty", KeyHTTPAddr)
	}

	return nil
}

// TicketsFormat reports which seed file codec the tickets path selects.
func (c Config) TicketsFormat() string {
	switch strings.ToLower(filepath.Ext(c.TicketsPath)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "toml"
	}
}

func expandPath(path, homeDir string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("path is empty")
	}
	if path == "~" {
		path = homeDir
	} else if strings.HasPrefix(path, "~/") {
		path = filepath.Join(homeDir, path[2:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}

	return filepath.Clean(absPath), nil
}
