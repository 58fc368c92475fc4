package smsactivate

import (
	"fmt"
	"net/url"
	"time"
)

const (
	DefaultBaseURL   = "https://api.sms-activate.org/stubs/handler_api.php"
	DefaultTimeout   = 15 * time.Second
	DefaultRetryWait = 250 * time.Millisecond
)

type Config struct {
	APIKey     string        `mapstructure:"api_key"`
	BaseURL    string        `mapstructure:"base_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	ProxyURL   string        `mapstructure:"proxy_url"`
	MaxRetries int           `mapstructure:"max_retries"`
	RetryWait  time.Duration `mapstructure:"retry_wait"`
	Referral   string        `mapstructure:"referral"`
	RateLimit  float64       `mapstructure:"rate_limit"`
	RateBurst  int           `mapstructure:"rate_burst"`
}

// WithDefaults returns a copy of c with zero values replaced by defaults.
func (c Config) WithDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.RetryWait <= 0 {
		c.RetryWait = DefaultRetryWait
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.RateLimit > 0 && c.RateBurst <= 0 {
		c.RateBurst = 1
	}
	return c
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}

	if _, err := c.Proxy(); err != nil {
		return err
	}

	return nil
}

// Proxy parses ProxyURL. It returns nil when no proxy is configured.
func (c Config) Proxy() (*url.URL, error) {
	if c.ProxyURL == "" {
		return nil, nil
	}

	u, err := url.Parse(c.ProxyURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidProxy, c.ProxyURL)
	}

	return u, nil
}
