package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Behyna/sms-services/smsactivate/internal/smoke"
	"github.com/Behyna/sms-services/smsactivate/pkg/smsactivate"
	"github.com/spf13/viper"
)

type Config struct {
	Logger      Logger             `mapstructure:"logger"`
	SMSActivate smsactivate.Config `mapstructure:"smsactivate"`
	Smoke       smoke.Config       `mapstructure:"smoke"`
}

type Logger struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

func Load() (cfg *Config, err error) {
	return LoadFrom("./config")
}

// LoadFrom reads config.yml from path. A missing file is not an error; every
// key can also be set through the environment, e.g. SMSACTIVATE_API_KEY.
func LoadFrom(path string) (cfg *Config, err error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(path)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	err = v.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.development", false)

	v.SetDefault("smsactivate.api_key", "")
	v.SetDefault("smsactivate.base_url", smsactivate.DefaultBaseURL)
	v.SetDefault("smsactivate.timeout", smsactivate.DefaultTimeout)
	v.SetDefault("smsactivate.proxy_url", "")
	v.SetDefault("smsactivate.max_retries", 0)
	v.SetDefault("smsactivate.retry_wait", smsactivate.DefaultRetryWait)
	v.SetDefault("smsactivate.referral", "")
	v.SetDefault("smsactivate.rate_limit", 0)
	v.SetDefault("smsactivate.rate_burst", 0)

	v.SetDefault("smoke.service", "mm")
	v.SetDefault("smoke.country", "RU")
	v.SetDefault("smoke.poll_interval", smsactivate.DefaultPollInterval)
	v.SetDefault("smoke.poll_timeout", 0)
}
