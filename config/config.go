package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds everything the application reads from the environment.
// It is loaded once in main and passed by reference into the components
// that need it; nothing else reads os.Getenv after startup.
type Config struct {
	AppHost string
	AppPort string

	// Postgres settings. When DBHost is empty the store falls back to a
	// local sqlite file at SQLitePath.
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	SQLitePath    string
	LogFile       string
	BackupDir     string
	SessionSecret string

	SeedDemo bool
}

// Load reads the environment (with .env support) and applies local defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file loaded:", err)
	}

	cfg := &Config{
		AppHost:       getEnv("APP_HOST", "0.0.0.0"),
		AppPort:       getEnv("APP_PORT", "5000"),
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBName:        getEnv("DB_DATABASE", "saree_crm"),
		DBUser:        os.Getenv("DB_USERNAME"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		SQLitePath:    getEnv("SQLITE_PATH", "saree_crm.db"),
		LogFile:       getEnv("LOG_FILE", filepath.Join("logs", "crm.log")),
		BackupDir:     getEnv("BACKUP_DIR", "backups"),
		SessionSecret: getEnv("SESSION_SECRET", "dev-secret"),
		SeedDemo:      os.Getenv("SEED_DEMO") == "1",
	}

	os.MkdirAll(filepath.Dir(cfg.LogFile), os.ModePerm)
	os.MkdirAll(cfg.BackupDir, os.ModePerm)

	return cfg
}

// UsePostgres reports whether a Postgres host is configured.
func (c *Config) UsePostgres() bool {
	return c.DBHost != ""
}

// PostgresDSN builds the connection string for the Postgres driver.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// StorePath describes the configured store for the settings view.
func (c *Config) StorePath() string {
	if c.UsePostgres() {
		return fmt.Sprintf("postgres://%s:%s/%s", c.DBHost, c.DBPort, c.DBName)
	}
	return c.SQLitePath
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
