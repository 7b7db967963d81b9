package settings

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const envPrefix = "TOOLBOX"

// Load reads the configuration file at path, applies defaults, and overlays
// TOOLBOX_* environment variables (dots become underscores, e.g.
// TOOLBOX_LOGGER_LOG_LEVEL).
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	return cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	cfg := &Config{}
	// Unmarshalling defaults cannot fail; the keys mirror the struct tags.
	_ = v.Unmarshal(cfg)

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.log_level", "info")
	v.SetDefault("logger.encoder", "json")
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.compress", false)

	v.SetDefault("watcher.interval", 2000)
	v.SetDefault("watcher.queue_size", 1024)
	v.SetDefault("watcher.subscriber_buffer", 64)

	v.SetDefault("runner.timeout", 60)
	v.SetDefault("runner.max_parallel", 4)

	v.SetDefault("sandbox.root", "")
	v.SetDefault("sandbox.read_only", false)
}
