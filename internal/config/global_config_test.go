package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aleister1102/discordmsg/internal/common/errorwrapper"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultGlobalConfig(t *testing.T) {
	cfg := NewDefaultGlobalConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, DefaultLogLevel, cfg.LogConfig.LogLevel)
	assert.Equal(t, DefaultLogFormat, cfg.LogConfig.LogFormat)
	assert.Equal(t, DefaultHTTPMaxRetries, cfg.HTTPConfig.MaxRetries)
	assert.Equal(t, []int{429, 502, 503, 504}, cfg.HTTPConfig.RetryStatusCodes)
	assert.True(t, cfg.StorageConfig.RecordDeliveries)
	assert.False(t, cfg.NotificationConfig.HasWebhook())
	assert.False(t, cfg.NotificationConfig.HasBot())
	assert.NoError(t, ValidateConfig(cfg))
}

func TestLoadGlobalConfig_NoConfigFile(t *testing.T) {
	t.Setenv(ConfigPathEnv, "")

	cfg, err := LoadGlobalConfig("", zerolog.Nop())

	require.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, DefaultLogLevel, cfg.LogConfig.LogLevel)
}

func TestLoadGlobalConfig_NonExistentFile(t *testing.T) {
	cfg, err := LoadGlobalConfig("/nonexistent/config.json", zerolog.Nop())

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config file does not exist")
}

func TestLoadGlobalConfig_JSONFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.json")

	configData := `{
		"log_config": {
			"log_level": "debug"
		},
		"notification_config": {
			"webhook_url": "https://discord.com/api/webhooks/1/abc",
			"username": "Alerts"
		},
		"http_config": {
			"max_retries": 5
		}
	}`
	require.NoError(t, os.WriteFile(configFile, []byte(configData), 0644))

	cfg, err := LoadGlobalConfig(configFile, zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogConfig.LogLevel)
	assert.Equal(t, "https://discord.com/api/webhooks/1/abc", cfg.NotificationConfig.WebhookURL)
	assert.Equal(t, "Alerts", cfg.NotificationConfig.Username)
	assert.Equal(t, 5, cfg.HTTPConfig.MaxRetries)
	// Untouched sections keep their defaults
	assert.Equal(t, DefaultHTTPTimeoutSecs, cfg.HTTPConfig.TimeoutSecs)
	assert.Equal(t, DefaultStorageDeliveryDBPath, cfg.StorageConfig.DeliveryDBPath)
}

func TestLoadGlobalConfig_YAMLFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")

	configData := `
log_config:
  log_format: json
notification_config:
  channel_id: "123456789"
  mention_role_ids: ["111", "222"]
storage_config:
  record_deliveries: false
`
	require.NoError(t, os.WriteFile(configFile, []byte(configData), 0644))

	cfg, err := LoadGlobalConfig(configFile, zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogConfig.LogFormat)
	assert.Equal(t, "123456789", cfg.NotificationConfig.ChannelID)
	assert.Equal(t, []string{"111", "222"}, cfg.NotificationConfig.MentionRoleIDs)
	assert.False(t, cfg.StorageConfig.RecordDeliveries)
}

func TestLoadGlobalConfig_InvalidContent(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("log_config: [unclosed"), 0644))

	_, err := LoadGlobalConfig(configFile, zerolog.Nop())
	assert.Error(t, err)
}

func TestLoadGlobalConfig_EnvOverrides(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("notification_config:\n  webhook_url: https://example.com/file\n"), 0644))

	t.Setenv("DISCORD_WEBHOOK_URL", "https://example.com/env")
	t.Setenv("DISCORD_BOT_TOKEN", "token")
	t.Setenv("DISCORD_CHANNEL_ID", "42")
	t.Setenv("DISCORDMSG_LOG_LEVEL", "warn")

	cfg, err := LoadGlobalConfig(configFile, zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/env", cfg.NotificationConfig.WebhookURL)
	assert.Equal(t, "token", cfg.NotificationConfig.BotToken)
	assert.Equal(t, "42", cfg.NotificationConfig.ChannelID)
	assert.Equal(t, "warn", cfg.LogConfig.LogLevel)
	assert.True(t, cfg.NotificationConfig.HasBot())
}

func TestGetConfigPath(t *testing.T) {
	dir := t.TempDir()
	flagPath := filepath.Join(dir, "flag.yaml")
	envPath := filepath.Join(dir, "env.yaml")
	require.NoError(t, os.WriteFile(flagPath, []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(envPath, []byte("{}"), 0644))

	t.Setenv(ConfigPathEnv, envPath)
	assert.Equal(t, flagPath, GetConfigPath(flagPath))
	assert.Equal(t, envPath, GetConfigPath(""))
	assert.Equal(t, envPath, GetConfigPath(filepath.Join(dir, "missing.yaml")))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *GlobalConfig)
		rule   string
	}{
		{"bad log level", func(cfg *GlobalConfig) { cfg.LogConfig.LogLevel = "verbose" }, "loglevel"},
		{"bad log format", func(cfg *GlobalConfig) { cfg.LogConfig.LogFormat = "xml" }, "logformat"},
		{"bad webhook url", func(cfg *GlobalConfig) { cfg.NotificationConfig.WebhookURL = "not-a-url" }, "url"},
		{"non numeric channel", func(cfg *GlobalConfig) { cfg.NotificationConfig.ChannelID = "general" }, "numeric"},
		{"too many retries", func(cfg *GlobalConfig) { cfg.HTTPConfig.MaxRetries = 50 }, "max"},
		{"zero timeout", func(cfg *GlobalConfig) { cfg.HTTPConfig.TimeoutSecs = 0 }, "min"},
		{"journal without path", func(cfg *GlobalConfig) { cfg.StorageConfig.DeliveryDBPath = "" }, "required_if"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultGlobalConfig()
			tt.mutate(cfg)

			err := ValidateConfig(cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, errorwrapper.ErrInvalidConfiguration)
			assert.Contains(t, err.Error(), "rule '"+tt.rule+"'")
		})
	}
}

func TestValidateConfig_HidesSecrets(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	cfg.NotificationConfig.WebhookURL = "secret-token-value"

	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret-token-value")
}
