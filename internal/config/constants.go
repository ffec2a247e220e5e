package config

const (
	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// HTTP Defaults
	DefaultHTTPTimeoutSecs  = 30
	DefaultHTTPMaxRetries   = 3
	DefaultHTTPBaseDelayMs  = 500
	DefaultHTTPMaxDelaySecs = 30
	DefaultHTTPUserAgent    = "DiscordBot (https://github.com/aleister1102/discordmsg, 1.0)"

	// Storage Defaults
	DefaultStorageDeliveryDBPath = "database/deliveries.db"

	// ConfigPathEnv names the environment variable that points at the config file.
	ConfigPathEnv = "DISCORDMSG_CONFIG_PATH"
)
