package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTP struct {
		Port           int           `mapstructure:"port"`
		RequestTimeout time.Duration `mapstructure:"request_timeout"`
	} `mapstructure:"http"`

	DB struct {
		Host         string        `mapstructure:"host"`
		Port         int           `mapstructure:"port"`
		User         string        `mapstructure:"user"`
		Password     string        `mapstructure:"password"`
		Name         string        `mapstructure:"name"`
		SslMode      string        `mapstructure:"sslmode"`
		LockTimeout  time.Duration `mapstructure:"lock_timeout"`
		MaxOpenConns int           `mapstructure:"max_open_conns"`
		AutoMigrate  bool          `mapstructure:"auto_migrate"`
	} `mapstructure:"db"`

	Time struct {
		DisplayZone   string        `mapstructure:"display_zone"`
		DisplayOffset time.Duration `mapstructure:"display_offset"`
	} `mapstructure:"time"`

	History struct {
		ResolveLimit int `mapstructure:"resolve_limit"`
		SearchLimit  int `mapstructure:"search_limit"`
	} `mapstructure:"history"`

	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

var defaults = map[string]any{
	"http.port":             8080,
	"http.request_timeout":  15 * time.Second,
	"db.host":               "localhost",
	"db.port":               5432,
	"db.user":               "postgres",
	"db.password":           "",
	"db.name":               "tracking",
	"db.sslmode":            "disable",
	"db.lock_timeout":       5 * time.Second,
	"db.max_open_conns":     10,
	"db.auto_migrate":       true,
	"time.display_zone":     "Asia/Karachi",
	"time.display_offset":   5 * time.Hour,
	"history.resolve_limit": 50,
	"history.search_limit":  100,
	"log.level":             "info",
}

// LoadConfig reads .env, then the YAML file at path when one is given, then
// the environment. db.host is bound to DB_HOST, http.port to HTTP_PORT.
func LoadConfig(path string) (Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var problems []error
	if strings.TrimSpace(c.DB.Host) == "" {
		problems = append(problems, errors.New("db.host is required"))
	}
	if c.DB.Port <= 0 {
		problems = append(problems, fmt.Errorf("db.port must be positive, got %d", c.DB.Port))
	}
	if c.HTTP.Port <= 0 {
		problems = append(problems, fmt.Errorf("http.port must be positive, got %d", c.HTTP.Port))
	}
	if c.History.ResolveLimit <= 0 {
		problems = append(problems, fmt.Errorf("history.resolve_limit must be positive, got %d", c.History.ResolveLimit))
	}
	if c.History.SearchLimit <= 0 {
		problems = append(problems, fmt.Errorf("history.search_limit must be positive, got %d", c.History.SearchLimit))
	}
	return errors.Join(problems...)
}

// DSN is the libpq keyword string for the gorm postgres driver.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DB.Host, c.DB.Port, c.DB.User, c.DB.Password, c.DB.Name, c.DB.SslMode)
}
