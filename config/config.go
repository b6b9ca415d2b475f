package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string `mapstructure:"port"`
	UploadDir      string `mapstructure:"upload_dir"`
	AIProvider     string `mapstructure:"ai_provider"`
	AIEndpoint     string `mapstructure:"ai_endpoint"`
	Model          string `mapstructure:"model"`
	EmbeddingModel string `mapstructure:"embedding_model"`
	ChunkSize      int    `mapstructure:"chunk_size"`
	ChunkOverlap   int    `mapstructure:"chunk_overlap"`
	RetrievalLimit int    `mapstructure:"retrieval_limit"`
	OpenAIAPIKey   string `mapstructure:"OPENAI_API_KEY"`
	GeminiAPIKey   string `mapstructure:"GEMINI_API_KEY"`
	WeaviateURL    string `mapstructure:"WEAVIATE_CLUSTER_URL"`
	WeaviateAPIKey string `mapstructure:"WEAVIATE_APIKEY"`
}

// WeaviateConfig is the subset of settings the vector store needs.
type WeaviateConfig struct {
	ClusterURL string
	APIKey     string
}

func (c *Config) WeaviateStoreConfig() WeaviateConfig {
	return WeaviateConfig{
		ClusterURL: c.WeaviateURL,
		APIKey:     c.WeaviateAPIKey,
	}
}

// LoadConfig reads the yaml config file if present and overlays
// environment variables. Missing credentials are not an error here; the
// corresponding external call fails at use time instead.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("port", "5000")
	v.SetDefault("upload_dir", "uploads")
	v.SetDefault("ai_provider", "openai")
	v.SetDefault("model", "gpt-4-1106-preview")
	v.SetDefault("embedding_model", "text-embedding-ada-002")
	v.SetDefault("chunk_size", 512)
	v.SetDefault("chunk_overlap", 20)
	v.SetDefault("retrieval_limit", 5)

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(configPath); statErr == nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file; defaults and environment are enough.
	}

	v.BindEnv("OPENAI_API_KEY")
	v.BindEnv("GEMINI_API_KEY")
	v.BindEnv("WEAVIATE_CLUSTER_URL")
	v.BindEnv("WEAVIATE_APIKEY")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}
