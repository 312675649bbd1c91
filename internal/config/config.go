package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type GeneralConfig struct {
	Env      string
	LogLevel string
	Port     int
}

// AgentConfig holds the agent platform settings. The agent ids select
// behavior on the platform side and are opaque here.
type AgentConfig struct {
	BaseURL        string
	ContentAgentID string
	VisualAgentID  string
	Timeout        time.Duration
}

// SnapshotConfig selects and configures the campaign snapshot backend.
type SnapshotConfig struct {
	Backend       string // file | redis | postgres
	FilePath      string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisKey      string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	ConnMaxIdleTime int
}

type appConfig struct {
	GeneralConfig  GeneralConfig
	AgentConfig    AgentConfig
	SnapshotConfig SnapshotConfig
	DatabaseConfig DatabaseConfig
}

var AppConfigInstance appConfig

// LoadConfigs loads the configurations from the environment variables
func LoadConfigs() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: Error loading .env files: %v", err)
	}

	loadGeneralConfigs()
	loadAgentConfigs()
	loadSnapshotConfigs()
	loadDatabaseConfigs()
}

func loadGeneralConfigs() {
	AppConfigInstance.GeneralConfig.Env = getEnv("APP_ENV", "dev")
	AppConfigInstance.GeneralConfig.LogLevel = getEnv("LOG_LEVEL", "info")
	AppConfigInstance.GeneralConfig.Port = getEnvInt("PORT", 8080)
}

func loadAgentConfigs() {
	AppConfigInstance.AgentConfig.BaseURL = getEnv("AGENT_BASE_URL", "http://localhost:8090")
	AppConfigInstance.AgentConfig.ContentAgentID = getEnv("CONTENT_AGENT_ID", "69a23753f89af5d059caa28b")
	AppConfigInstance.AgentConfig.VisualAgentID = getEnv("VISUAL_AGENT_ID", "69a237532d763c5cd41488c1")
	AppConfigInstance.AgentConfig.Timeout = getEnvDuration("AGENT_TIMEOUT", 120*time.Second)
}

func loadSnapshotConfigs() {
	AppConfigInstance.SnapshotConfig.Backend = getEnv("SNAPSHOT_BACKEND", "file")
	AppConfigInstance.SnapshotConfig.FilePath = getEnv("SNAPSHOT_FILE", "data/campaigns.json")
	AppConfigInstance.SnapshotConfig.RedisAddr = getEnv("REDIS_ADDR", "localhost:6379")
	AppConfigInstance.SnapshotConfig.RedisPassword = getEnv("REDIS_PASSWORD", "")
	AppConfigInstance.SnapshotConfig.RedisDB = getEnvInt("REDIS_DB", 0)
	AppConfigInstance.SnapshotConfig.RedisKey = getEnv("SNAPSHOT_REDIS_KEY", "marketflow:campaigns")
}

func loadDatabaseConfigs() {
	AppConfigInstance.DatabaseConfig.Host = getEnv("DB_HOST", "localhost")
	AppConfigInstance.DatabaseConfig.Port = getEnvInt("DB_PORT", 5432)
	AppConfigInstance.DatabaseConfig.User = getEnv("DB_USER", "postgres")
	AppConfigInstance.DatabaseConfig.Password = getEnv("DB_PASSWORD", "postgres")
	AppConfigInstance.DatabaseConfig.DBName = getEnv("DB_NAME", "marketflow")
	AppConfigInstance.DatabaseConfig.SSLMode = getEnv("DB_SSLMODE", "disable")
	AppConfigInstance.DatabaseConfig.MaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", 25)
	AppConfigInstance.DatabaseConfig.MaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", 5)
	AppConfigInstance.DatabaseConfig.ConnMaxLifetime = getEnvInt("DB_CONN_MAX_LIFETIME", 30)
	AppConfigInstance.DatabaseConfig.ConnMaxIdleTime = getEnvInt("DB_CONN_MAX_IDLE_TIME", 5)
}

// getEnv returns the environment variable value if it exists, otherwise returns the fallback value
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns the environment variable value as int if it exists, otherwise returns the fallback value
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvDuration returns the environment variable value as duration if it exists, otherwise returns the fallback value
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
