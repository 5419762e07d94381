package cmd

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/shashikanthshadow/talentscout/internal/ai"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "talentscout"
)

type Config struct {
	HistoryWindow int       `mapstructure:"history-window" validate:"gte=0"`
	ExportFile    string    `mapstructure:"export-file" validate:"required"`
	AI            *AIConfig `mapstructure:"ai" validate:"required"`
}

type AIConfig struct {
	Provider string        `mapstructure:"provider" validate:"omitempty,oneof=gemini"`
	Gemini   *GeminiConfig `mapstructure:"gemini" validate:"required"`
}

type GeminiConfig struct {
	APIKey       string        `mapstructure:"api-key" json:"-"`
	APIKeyFile   string        `mapstructure:"api-key-file"`
	Model        string        `mapstructure:"model" validate:"required"`
	BaseURL      string        `mapstructure:"base-url" validate:"omitempty,url"`
	Timeout      time.Duration `mapstructure:"timeout" validate:"gt=0"`
	MaxLogLength int           `mapstructure:"max-log-length" validate:"gte=0"`
	ai.Params    `mapstructure:",squash"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "talentscout is a hiring assistant that collects candidate details in a chat and generates tailored technical questions",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	for key, env := range map[string]string{
		"ai.gemini.api-key":      "GEMINI_API_KEY",
		"ai.gemini.api-key-file": "GEMINI_API_KEY_FILE",
	} {
		if err := viper.BindEnv(key, env); err != nil {
			log.Fatalf("binding %s environment variable: %v", env, err)
		}
	}

	setDefaults()

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is talentscout.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func setDefaults() {
	params := ai.DefaultParams()

	viper.SetDefault("history-window", 10)
	viper.SetDefault("export-file", "candidate.csv")
	viper.SetDefault("ai.provider", "gemini")
	viper.SetDefault("ai.gemini.model", "gemini-2.0-flash")
	viper.SetDefault("ai.gemini.timeout", "60s")
	viper.SetDefault("ai.gemini.max-log-length", 200)
	viper.SetDefault("ai.gemini.temperature", *params.Temperature)
	viper.SetDefault("ai.gemini.top-k", *params.TopK)
	viper.SetDefault("ai.gemini.top-p", *params.TopP)
	viper.SetDefault("ai.gemini.max-output-tokens", *params.MaxOutputTokens)
	viper.SetDefault("ai.gemini.response-mime-type", params.ResponseMIMEType)
}

func initConfig() {
	// A missing .env is fine, the key may come from the environment or the config file.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		// We can't proceed if the config file parsed with error.
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if config == nil {
		return nil, errors.New("config is required")
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}
