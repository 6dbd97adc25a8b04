package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

//go:embed config.yml
var embeddedConfig []byte

type Config struct {
	Mode     string `mapstructure:"mode"`
	Dotenv   string `mapstructure:"dotenv"`
	Handlers struct {
		Prometheus struct {
			Port string `mapstructure:"port"`
		} `mapstructure:"prometheus"`
	} `mapstructure:"handlers"`
	Server struct {
		HTTPPort string        `mapstructure:"HTTPPort"`
		Timeout  time.Duration `mapstructure:"HTTPTimeout"`
	} `mapstructure:"server"`
	Itinerary struct {
		Path     string `mapstructure:"path"`
		Title    string `mapstructure:"title"`
		Subtitle string `mapstructure:"subtitle"`
	} `mapstructure:"itinerary"`
	Map struct {
		TileURL       string `mapstructure:"tileURL"`
		Attribution   string `mapstructure:"attribution"`
		NavigationURL string `mapstructure:"navigationURL"`
	} `mapstructure:"map"`
	GenAI struct {
		Model     string `mapstructure:"model"`
		APIKeyEnv string `mapstructure:"apiKeyEnv"`
	} `mapstructure:"genai"`
	Tips struct {
		TaskTTL         time.Duration `mapstructure:"taskTTL"`
		CleanupInterval time.Duration `mapstructure:"cleanupInterval"`
		RateLimit       int           `mapstructure:"rateLimit"`
	} `mapstructure:"tips"`
	CORS struct {
		AllowedOrigins []string `mapstructure:"allowedOrigins"`
	} `mapstructure:"cors"`
}

// APIKey returns the text-generation credential from the environment.
// An empty string means the tip generator is disabled.
func (c Config) APIKey() string {
	if c.GenAI.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(c.GenAI.APIKeyEnv)
}

func InitConfig() (Config, error) {
	v := viper.New()

	v.AddConfigPath(".")
	v.AddConfigPath("config")
	v.AddConfigPath("/app/config")

	v.SetConfigName("config")
	v.SetConfigType("yml")

	err := v.ReadInConfig()
	if err != nil {
		fmt.Printf("Warning: Failed to find file-based config: %s. Falling back to embedded config.\n", err)
		if err = v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
			return Config{}, fmt.Errorf("failed to read embedded config: %w", err)
		}
	}
	return unmarshal(v)
}

// LoadEmbedded reads only the embedded defaults. Used by tests.
func LoadEmbedded() (Config, error) {
	v := viper.New()
	v.SetConfigType("yml")
	if err := v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
		return Config{}, fmt.Errorf("failed to read embedded config: %w", err)
	}
	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (Config, error) {
	// ITINERARY_PATH, SERVER_HTTPPORT, ... override file values.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return config, nil
}
