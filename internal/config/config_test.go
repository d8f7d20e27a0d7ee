package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"SERVER_ADDRESS", "BASE_PATH", "CONTROLLERS_PATH", "WHITELIST_FILE",
	"DEFAULT_CONTROLLER", "USE_REWRITE_RULE", "MAX_SHORTCUT_DEPTH", "LOG_LEVEL",
	"ENABLE_HTTPS", "TLS_CERT_FILE", "TLS_KEY_FILE", "CONFIG",
}

// clearEnv обнуляет переменные окружения конфигурации на время теста
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
}

func parse(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	return Parse(flag.NewFlagSet("test", flag.ContinueOnError), args)
}

func TestParseDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := parse(t)
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "controllers", cfg.ControllersPath)
	assert.Equal(t, "whitelist.json", cfg.WhitelistFile)
	assert.Equal(t, "example", cfg.DefaultController)
	assert.True(t, cfg.UseRewriteRule)
	assert.Equal(t, 16, cfg.MaxShortcutDepth)
	assert.False(t, cfg.IsHTTPSEnabled())
}

func TestConfigPriority(t *testing.T) {
	tests := []struct {
		name           string
		envServerAddr  string
		envController  string
		args           []string
		wantServerAddr string
		wantController string
	}{
		{
			name:           "Default values",
			args:           nil,
			wantServerAddr: ":8080",
			wantController: "example",
		},
		{
			name:           "Environment variables override defaults",
			envServerAddr:  ":9090",
			envController:  "blog",
			wantServerAddr: ":9090",
			wantController: "blog",
		},
		{
			name:           "Command line flags override defaults",
			args:           []string{"-a", ":7070", "-d", "shop"},
			wantServerAddr: ":7070",
			wantController: "shop",
		},
		{
			name:           "Environment variables override command line flags",
			envServerAddr:  ":9090",
			envController:  "blog",
			args:           []string{"-a", ":7070", "-d", "shop"},
			wantServerAddr: ":9090",
			wantController: "blog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("SERVER_ADDRESS", tt.envServerAddr)
			t.Setenv("DEFAULT_CONTROLLER", tt.envController)

			cfg, err := parse(t, tt.args...)
			require.NoError(t, err)

			assert.Equal(t, tt.wantServerAddr, cfg.ServerAddress)
			assert.Equal(t, tt.wantController, cfg.DefaultController)
		})
	}
}

func TestParseRoutingFlags(t *testing.T) {
	clearEnv(t)

	cfg, err := parse(t, "-r=false", "-b", "/site", "-m", "4", "-p", "/srv/controllers", "-w", "/etc/gyg/whitelist.json")
	require.NoError(t, err)

	assert.False(t, cfg.UseRewriteRule)
	assert.Equal(t, "/site", cfg.BasePath)
	assert.Equal(t, 4, cfg.MaxShortcutDepth)
	assert.Equal(t, "/srv/controllers", cfg.ControllersPath)
	assert.Equal(t, "/etc/gyg/whitelist.json", cfg.WhitelistFile)
}

func TestParseRoutingEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("USE_REWRITE_RULE", "false")
	t.Setenv("MAX_SHORTCUT_DEPTH", "8")

	cfg, err := parse(t)
	require.NoError(t, err)

	assert.False(t, cfg.UseRewriteRule)
	assert.Equal(t, 8, cfg.MaxShortcutDepth)
}

func TestParseErrors(t *testing.T) {
	clearEnv(t)

	_, err := parse(t, "-m", "0")
	assert.Error(t, err)

	_, err = parse(t, "-d", "")
	assert.Error(t, err)

	_, err = parse(t, "-unknown")
	assert.Error(t, err)

	t.Setenv("MAX_SHORTCUT_DEPTH", "many")
	_, err = parse(t)
	assert.Error(t, err)
}

func TestNewConfig(t *testing.T) {
	clearEnv(t)

	oldArgs := os.Args
	oldCommandLine := flag.CommandLine
	defer func() {
		os.Args = oldArgs
		flag.CommandLine = oldCommandLine
	}()

	os.Args = []string{"gyg", "-a", ":7071"}
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, ":7071", cfg.ServerAddress)
}

func TestParseWithConfigFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"server_address": "json:8080",
		"default_controller": "blog",
		"use_rewrite_rule": false,
		"log_level": "debug"
	}`), 0o644))

	// Флаг -a задан явно и должен победить JSON, -d не задан
	cfg, err := parse(t, "-c", path, "-a", ":7070")
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.ServerAddress)
	assert.Equal(t, "blog", cfg.DefaultController)
	assert.False(t, cfg.UseRewriteRule)
	assert.Equal(t, "debug", cfg.LogLevel)

	// Путь к файлу из переменной окружения
	t.Setenv("CONFIG", path)
	t.Setenv("LOG_LEVEL", "warn")
	cfg, err = parse(t)
	require.NoError(t, err)
	assert.Equal(t, "json:8080", cfg.ServerAddress)
	assert.Equal(t, "warn", cfg.LogLevel)
}
