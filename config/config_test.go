package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsePostgres(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.UsePostgres())

	cfg.DBHost = "db.internal"
	assert.True(t, cfg.UsePostgres())
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "db.internal",
		DBPort:     "5432",
		DBUser:     "crm",
		DBPassword: "secret",
		DBName:     "saree_crm",
		DBSSLMode:  "disable",
	}
	assert.Equal(t,
		"host=db.internal port=5432 user=crm password=secret dbname=saree_crm sslmode=disable",
		cfg.PostgresDSN())
}

func TestStorePath(t *testing.T) {
	cfg := &Config{SQLitePath: "saree_crm.db"}
	assert.Equal(t, "saree_crm.db", cfg.StorePath())

	cfg.DBHost = "db.internal"
	cfg.DBPort = "5432"
	cfg.DBName = "saree_crm"
	assert.Equal(t, "postgres://db.internal:5432/saree_crm", cfg.StorePath())
}

func TestGetEnvFallback(t *testing.T) {
	t.Setenv("SOME_TEST_KEY", "")
	assert.Equal(t, "fallback", getEnv("SOME_TEST_KEY", "fallback"))

	t.Setenv("SOME_TEST_KEY", "value")
	assert.Equal(t, "value", getEnv("SOME_TEST_KEY", "fallback"))
}
