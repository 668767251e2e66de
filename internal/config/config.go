package config

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingDBSource = errors.New("config: DB_SOURCE is required")

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Env              string `mapstructure:"APP_ENV"`
	LogLevel         string `mapstructure:"LOG_LEVEL"`
	DBSource         string `mapstructure:"DB_SOURCE"`
	ServerAddress    string `mapstructure:"SERVER_ADDRESS"`
	QuestionsPerPage int    `mapstructure:"QUESTIONS_PER_PAGE"`
	QuestionsPerPlay int    `mapstructure:"QUESTIONS_PER_PLAY"`
	MigrateOnStart   bool   `mapstructure:"MIGRATE_ON_START"`
	QuizStateKey     string `mapstructure:"QUIZ_STATE_KEY"`
}

// IsLocal reports whether the app runs on a developer machine.
func (c Config) IsLocal() bool {
	return c.Env == "" || c.Env == "local"
}

// LoadConfig reads configuration from app.env in path, a .env file in the
// working directory, and the environment, in increasing order of precedence.
func LoadConfig(path string) (Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("APP_ENV", "local")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_SOURCE", "")
	v.SetDefault("SERVER_ADDRESS", ":8080")
	v.SetDefault("QUESTIONS_PER_PAGE", 10)
	v.SetDefault("QUESTIONS_PER_PLAY", 5)
	v.SetDefault("MIGRATE_ON_START", true)
	v.SetDefault("QUIZ_STATE_KEY", "")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: failed to unmarshal: %w", err)
	}

	if cfg.DBSource == "" {
		return Config{}, ErrMissingDBSource
	}
	if cfg.QuestionsPerPage <= 0 {
		cfg.QuestionsPerPage = 10
	}
	if cfg.QuestionsPerPlay <= 0 {
		cfg.QuestionsPerPlay = 5
	}

	return cfg, nil
}
