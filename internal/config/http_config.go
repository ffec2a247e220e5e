package config

// HTTPConfig defines the HTTP client used for webhook delivery
type HTTPConfig struct {
	TimeoutSecs int    `json:"timeout_secs,omitempty" yaml:"timeout_secs,omitempty" validate:"min=1,max=300"`
	UserAgent   string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	Proxy       string `json:"proxy,omitempty" yaml:"proxy,omitempty" env:"DISCORDMSG_HTTP_PROXY" validate:"omitempty,url"`
	// Only for local testing against self-signed endpoints
	InsecureSkipVerify bool `json:"insecure_skip_verify,omitempty" yaml:"insecure_skip_verify,omitempty"`
	// Maximum number of retries for rate limited (429) and transient 5xx responses
	MaxRetries int `json:"max_retries" yaml:"max_retries" validate:"min=0,max=10"`
	// Base delay in milliseconds for exponential backoff when Retry-After is missing
	BaseDelayMs int `json:"base_delay_ms,omitempty" yaml:"base_delay_ms,omitempty" validate:"min=1,max=60000"`
	// Upper bound for any single wait, including Retry-After
	MaxDelaySecs int `json:"max_delay_secs,omitempty" yaml:"max_delay_secs,omitempty" validate:"min=1,max=3600"`
	// Enable jitter to randomize delays slightly
	EnableJitter bool `json:"enable_jitter" yaml:"enable_jitter"`
	// HTTP status codes that should trigger retries
	RetryStatusCodes []int `json:"retry_status_codes,omitempty" yaml:"retry_status_codes,omitempty" validate:"dive,min=400,max=599"`
}

// NewDefaultHTTPConfig creates default HTTP configuration
func NewDefaultHTTPConfig() HTTPConfig {
	return HTTPConfig{
		TimeoutSecs:      DefaultHTTPTimeoutSecs,
		UserAgent:        DefaultHTTPUserAgent,
		MaxRetries:       DefaultHTTPMaxRetries,
		BaseDelayMs:      DefaultHTTPBaseDelayMs,
		MaxDelaySecs:     DefaultHTTPMaxDelaySecs,
		EnableJitter:     true,
		RetryStatusCodes: []int{429, 502, 503, 504},
	}
}
