// Package config loads application settings from hanzi.yaml, a .env file
// and HANZI_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/abhisek/hanzi/internal/llm"
)

// Store drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds application configuration.
type Config struct {
	Env   string      `mapstructure:"env" validate:"oneof=development production test"`
	Log   LogConfig   `mapstructure:"log"`
	Data  DataConfig  `mapstructure:"data"`
	Store StoreConfig `mapstructure:"store"`
	Quiz  QuizConfig  `mapstructure:"quiz"`
	LLM   llm.Config  `mapstructure:"llm"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	File  string `mapstructure:"file"` // log file for TUI runs; empty means the data dir
}

// DataConfig locates the dictionary and schedule documents.
type DataConfig struct {
	Dictionary string `mapstructure:"dictionary" validate:"required"`
	Schedule   string `mapstructure:"schedule" validate:"required"`
}

// StoreConfig selects the completion store backend. An empty DSN means
// the default SQLite file for the sqlite driver.
type StoreConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=sqlite postgres"`
	DSN    string `mapstructure:"dsn" validate:"required_if=Driver postgres"`
}

// QuizConfig controls quiz generation.
type QuizConfig struct {
	Size int `mapstructure:"size" validate:"min=2,max=50"`
}

// LoadOptions adjust Load for a single invocation.
type LoadOptions struct {
	// ConfigFile is an explicit config path. When empty, hanzi.yaml is
	// looked up in the working directory and the user config dir.
	ConfigFile string

	// EnvFile is the dotenv file to load. Defaults to ".env"; a missing
	// file is ignored.
	EnvFile string

	// Overrides are applied last, keyed like the config file
	// ("data.dictionary", "store.dsn").
	Overrides map[string]any
}

var validate = validator.New()

// Load reads configuration from defaults, the config file, the dotenv
// file, the environment and overrides, in increasing precedence.
func Load(opts LoadOptions) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading %s: %w", envFile, err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("hanzi")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "hanzi"))
		}
	}

	setDefaults(v)

	v.SetEnvPrefix("HANZI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Provider keys are also read from their conventional variables.
	_ = v.BindEnv("llm.anthropic.api_key", "HANZI_LLM_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY")
	_ = v.BindEnv("llm.openai.api_key", "HANZI_LLM_OPENAI_API_KEY", "OPENAI_API_KEY")
	_ = v.BindEnv("llm.gemini.api_key", "HANZI_LLM_GEMINI_API_KEY", "GEMINI_API_KEY")
	_ = v.BindEnv("llm.openrouter.api_key", "HANZI_LLM_OPENROUTER_API_KEY", "OPENROUTER_API_KEY")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	for key, value := range opts.Overrides {
		v.Set(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := llm.DefaultConfig()

	v.SetDefault("env", "development")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("data.dictionary", "assets/tzdict.json")
	v.SetDefault("data.schedule", "assets/schedule.json")
	v.SetDefault("store.driver", DriverSQLite)
	v.SetDefault("store.dsn", "")
	v.SetDefault("quiz.size", 10)

	v.SetDefault("llm.provider", d.Provider)
	for name, pc := range map[string]llm.ProviderConfig{
		llm.ProviderAnthropic:  d.Anthropic,
		llm.ProviderOpenAI:     d.OpenAI,
		llm.ProviderGemini:     d.Gemini,
		llm.ProviderOpenRouter: d.OpenRouter,
	} {
		v.SetDefault("llm."+name+".api_key", "")
		v.SetDefault("llm."+name+".model", pc.Model)
		v.SetDefault("llm."+name+".base_url", pc.BaseURL)
	}
	v.SetDefault("llm.retry.max_attempts", d.Retry.MaxAttempts)
	v.SetDefault("llm.retry.initial_wait", d.Retry.InitialWait)
	v.SetDefault("llm.retry.max_wait", d.Retry.MaxWait)
	v.SetDefault("llm.retry.multiplier", d.Retry.Multiplier)
	v.SetDefault("llm.timeout", d.Timeout)
	v.SetDefault("llm.rate", d.Rate)
	v.SetDefault("llm.concurrency", d.Concurrency)
}

