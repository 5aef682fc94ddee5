package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	LLM      LLMConfig
	Wikidata WikidataConfig
	Text     TextConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	DialTimeout     time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// LLMConfig holds the chat-completion backend configuration
type LLMConfig struct {
	BaseURL     string
	Model       string
	APIKey      string
	Temperature float32
	Timeout     time.Duration
}

// WikidataConfig holds knowledge-base client configuration
type WikidataConfig struct {
	APIURL          string
	SPARQLURL       string
	UserAgent       string
	SearchTimeout   time.Duration
	VerifyTimeout   time.Duration
	SelfTestTimeout time.Duration
	VerifyDelay     time.Duration // pacing between type-verification queries
	KnownEntities   string        // optional YAML file of manual name->QID mappings
}

// TextConfig holds normalizer/chunker configuration
type TextConfig struct {
	StopwordDir  string // cache directory for downloaded stopword lists
	ChunkSize    int
	ChunkOverlap int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:             getEnv("DB_URL", ""),
			MaxConns:        getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:        getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:     getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		LLM: LLMConfig{
			BaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			Temperature: getEnvAsFloat32("OPENAI_TEMPERATURE", 0.3),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
		},
		Wikidata: WikidataConfig{
			APIURL:          getEnv("WIKIDATA_API_URL", "https://www.wikidata.org/w/api.php"),
			SPARQLURL:       getEnv("WIKIDATA_SPARQL_URL", "https://query.wikidata.org/sparql"),
			UserAgent:       getEnv("WIKIDATA_USER_AGENT", "DocsMetadataEnhancerBot/1.0"),
			SearchTimeout:   getEnvAsDuration("WIKIDATA_SEARCH_TIMEOUT", 10*time.Second),
			VerifyTimeout:   getEnvAsDuration("WIKIDATA_VERIFY_TIMEOUT", 15*time.Second),
			SelfTestTimeout: getEnvAsDuration("WIKIDATA_SELFTEST_TIMEOUT", 5*time.Second),
			VerifyDelay:     getEnvAsDuration("WIKIDATA_VERIFY_DELAY", 500*time.Millisecond),
			KnownEntities:   getEnv("WIKIDATA_KNOWN_ENTITIES", ""),
		},
		Text: TextConfig{
			StopwordDir:  getEnv("STOPWORD_DIR", "./nltk_data"),
			ChunkSize:    getEnvAsInt("CHUNK_SIZE", 3000),
			ChunkOverlap: getEnvAsInt("CHUNK_OVERLAP", 200),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate checks the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Text.ChunkOverlap >= c.Text.ChunkSize {
		return NewAppError("CONFIG_ERROR", "CHUNK_OVERLAP must be smaller than CHUNK_SIZE", ErrInvalidInput)
	}
	return nil
}
