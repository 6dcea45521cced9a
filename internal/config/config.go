package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Input    InputConfig    `mapstructure:"input"`
	Output   OutputConfig   `mapstructure:"output"`
	Tracker  TrackerConfig  `mapstructure:"tracker"`
	Database DatabaseConfig `mapstructure:"database"`
	RocketMQ RocketMQConfig `mapstructure:"rocketmq"`
	Serve    bool           `mapstructure:"serve"`
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// InputConfig points at the access log to analyze
type InputConfig struct {
	Path string `mapstructure:"path"`
}

// OutputConfig points at the directory result files are written to
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// TrackerConfig represents the tuning of the four trackers
type TrackerConfig struct {
	Window        time.Duration `mapstructure:"window"`
	LoginMethod   string        `mapstructure:"login_method"`
	LoginPath     string        `mapstructure:"login_path"`
	LoginProtocol string        `mapstructure:"login_protocol"`
	FailureWindow time.Duration `mapstructure:"failure_window"`
	MaxFailures   int           `mapstructure:"max_failures"`
	BlockDuration time.Duration `mapstructure:"block_duration"`
	Concurrent    bool          `mapstructure:"concurrent"`
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	MySQL MySQLConfig `mapstructure:"mysql"`
	Redis RedisConfig `mapstructure:"redis"`
}

// MySQLConfig represents MySQL configuration
type MySQLConfig struct {
	DSN string `mapstructure:"dsn"`
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// RocketMQConfig represents RocketMQ configuration
type RocketMQConfig struct {
	NameServer string `mapstructure:"nameserver"`
	Topic      string `mapstructure:"topic"`
	LogTopic   string `mapstructure:"log_topic"`
	Group      string `mapstructure:"group"`
}

// Load loads configuration from file. An empty configPath runs on
// defaults only.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand environment variables
	cfg.Database.Redis.Password = expandEnv(cfg.Database.Redis.Password)
	cfg.Database.MySQL.DSN = expandEnv(cfg.Database.MySQL.DSN)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Flags returns the command line flags understood by Load
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("analyzer", pflag.ContinueOnError)
	fs.String("config", "configs/config.yaml", "path to the YAML config file")
	fs.String("input", "", "access log to analyze")
	fs.String("output", "", "directory for result files")
	fs.Bool("serve", false, "serve the report API instead of a batch run")
	return fs
}

// bindFlags lets explicitly set flags override the config file
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	bindings := map[string]string{
		"input":  "input.path",
		"output": "output.dir",
		"serve":  "serve",
	}
	for flag, key := range bindings {
		f := fs.Lookup(flag)
		if f == nil || !f.Changed {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("input.path", "log_input/log.txt")
	v.SetDefault("output.dir", "log_output")
	v.SetDefault("tracker.window", "60m")
	v.SetDefault("tracker.login_method", "POST")
	v.SetDefault("tracker.login_path", "/login")
	v.SetDefault("tracker.login_protocol", "HTTP/1.0")
	v.SetDefault("tracker.failure_window", "20s")
	v.SetDefault("tracker.max_failures", 3)
	v.SetDefault("tracker.block_duration", "5m")
	v.SetDefault("tracker.concurrent", true)
	v.SetDefault("rocketmq.topic", "blocked_requests")
	v.SetDefault("rocketmq.log_topic", "access_log")
	v.SetDefault("rocketmq.group", "fansite_analyzer_group")
}

func (c *Config) validate() error {
	switch {
	case c.Tracker.Window <= time.Second:
		return fmt.Errorf("invalid tracker.window: %s", c.Tracker.Window)
	case c.Tracker.MaxFailures < 1:
		return fmt.Errorf("invalid tracker.max_failures: %d", c.Tracker.MaxFailures)
	case c.Tracker.BlockDuration <= 0:
		return fmt.Errorf("invalid tracker.block_duration: %s", c.Tracker.BlockDuration)
	}
	return nil
}

// expandEnv expands environment variables in the string
func expandEnv(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		return os.Getenv(s[2 : len(s)-1])
	}
	return s
}
