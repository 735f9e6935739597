package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/remote-assist-console/internal/application"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, home, body string) string {
	t.Helper()

	dir := filepath.Join(home, configDir)
	require.NoError(t, os.MkdirAll(dir, 0o700))
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Empty(t, cfg.File)
	assert.Equal(t, DefaultOperator, cfg.Operator)
	assert.Equal(t, filepath.Join(home, ".ra", "tickets.toml"), cfg.TicketsPath)
	assert.Equal(t, "toml", cfg.TicketsFormat())
	assert.Equal(t, application.DefaultAffectedVehicles, cfg.AffectedVehicles)
	assert.Equal(t, application.ReasonPolicyKeep, cfg.ReasonPolicy)
	assert.Equal(t, OutboxFile, cfg.OutboxDriver)
	assert.Equal(t, filepath.Join(home, ".ra", "outbox"), cfg.OutboxPath)
	assert.Equal(t, DefaultHTTPAddr, cfg.HTTPAddr)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, LogText, cfg.LogFormat)
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := writeConfig(t, home, `
[operator]
name = "Mike T."

[tickets]
path = "~/seed/tickets.yaml"

[fleet]
affected_vehicles = 30

[dispatch]
reason_policy = "clear"

[outbox]
driver = "sqlite"

[log]
level = "debug"
format = "json"
`)

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, path, cfg.File)
	assert.Equal(t, "Mike T.", cfg.Operator)
	assert.Equal(t, filepath.Join(home, "seed", "tickets.yaml"), cfg.TicketsPath)
	assert.Equal(t, "yaml", cfg.TicketsFormat())
	assert.Equal(t, 30, cfg.AffectedVehicles)
	assert.Equal(t, application.ReasonPolicyClear, cfg.ReasonPolicy)
	assert.Equal(t, OutboxSQLite, cfg.OutboxDriver)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, LogJSON, cfg.LogFormat)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, "[operator]\nname = \"Mike T.\"\n")
	t.Setenv("RA_OPERATOR_NAME", "Ana P.")
	t.Setenv("RA_OUTBOX_DRIVER", "none")

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "Ana P.", cfg.Operator)
	assert.Equal(t, OutboxNone, cfg.OutboxDriver)
}

func TestLoadExplicitFileMustExist(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	v := viper.New()
	v.SetConfigFile(filepath.Join(t.TempDir(), "missing.toml"))

	_, err := Load(v)
	require.ErrorContains(t, err, "read config file")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "reason policy", body: "[dispatch]\nreason_policy = \"forget\"\n", want: KeyReasonPolicy},
		{name: "outbox driver", body: "[outbox]\ndriver = \"kafka\"\n", want: KeyOutboxDriver},
		{name: "affected vehicles", body: "[fleet]\naffected_vehicles = 0\n", want: KeyAffectedVehicles},
		{name: "log level", body: "[log]\nlevel = \"loud\"\n", want: KeyLogLevel},
		{name: "log format", body: "[log]\nformat = \"xml\"\n", want: KeyLogFormat},
		{name: "broken toml", body: "[operator\n", want: "read config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			t.Setenv("HOME", home)
			writeConfig(t, home, tt.body)

			_, err := Load(viper.New())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
