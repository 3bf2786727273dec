package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/aliskhannn/flashcard-quiz-bot/pkg/validator"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Question bank sources.
const (
	BankSourceJSON     = "json"
	BankSourcePostgres = "postgres"
	BankSourceSQLite   = "sqlite"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string   `mapstructure:"env" validate:"required"` // current application environment (local, dev, production)
	TelegramAPIToken string   `mapstructure:"-"`                       // Telegram API token loaded from environment
	Bank             Bank     `mapstructure:"bank"`                    // question bank source
	DB               DB       `mapstructure:"database"`                // database configuration section
	Audio            Audio    `mapstructure:"audio"`                   // tone cue delivery
	Storage          Storage  `mapstructure:"storage"`                 // in-memory session store
	Telegram         Telegram `mapstructure:"telegram"`                // bot transport options
	Game             Game     `mapstructure:"game"`                    // game defaults
}

// Bank selects where categories and questions are loaded from.
type Bank struct {
	Source     string `mapstructure:"source" validate:"oneof=json postgres sqlite"`
	JSONPath   string `mapstructure:"json_path"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                                 // database connection string loaded from environment
	MaxConnections  int32         `mapstructure:"max_connections" validate:"min=1"`  // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime" validate:"min=0"` // maximum lifetime of a single connection
}

// Audio configures rendering and delivery of tone cues.
type Audio struct {
	Enabled     bool          `mapstructure:"enabled"`
	SampleRate  int           `mapstructure:"sample_rate" validate:"min=4000,max=48000"`
	Workers     int           `mapstructure:"workers" validate:"min=1,max=32"`
	QueueSize   int           `mapstructure:"queue_size" validate:"min=1"`
	SendTimeout time.Duration `mapstructure:"send_timeout" validate:"min=0"`
}

// Storage configures idle session eviction.
type Storage struct {
	IdleTTL   time.Duration `mapstructure:"idle_ttl" validate:"min=0"`
	SweepSpec string        `mapstructure:"sweep_spec" validate:"required"`
}

// Telegram configures the bot transport.
type Telegram struct {
	Debug         bool `mapstructure:"debug"`
	TimerRefresh  int  `mapstructure:"timer_refresh" validate:"min=1"`  // seconds between countdown redraws
	UpdateTimeout int  `mapstructure:"update_timeout" validate:"min=0"` // long polling timeout in seconds
}

// Game holds defaults for new sessions.
type Game struct {
	DefaultDuration int `mapstructure:"default_duration" validate:"min=1"` // minutes
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists.
	_ = godotenv.Load()

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("bank.source", BankSourceJSON)
	v.SetDefault("bank.json_path", "assets/data/questions.json")
	v.SetDefault("bank.sqlite_path", "data/questions.db")
	v.SetDefault("database.max_connections", 5)
	v.SetDefault("database.max_conn_lifetime", "30s")
	v.SetDefault("audio.enabled", false)
	v.SetDefault("audio.sample_rate", 8000)
	v.SetDefault("audio.workers", 2)
	v.SetDefault("audio.queue_size", 32)
	v.SetDefault("audio.send_timeout", "10s")
	v.SetDefault("storage.idle_ttl", "6h")
	v.SetDefault("storage.sweep_spec", "@every 10m")
	v.SetDefault("telegram.debug", false)
	v.SetDefault("telegram.timer_refresh", 10)
	v.SetDefault("telegram.update_timeout", 60)
	v.SetDefault("game.default_duration", 5)

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	cfg.DB.URL = v.GetString("database_url")
	if cfg.Bank.Source == BankSourcePostgres && cfg.DB.URL == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
