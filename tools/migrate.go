package main

import (
	"fmt"
	"os"

	"saree-crm/config"
	"saree-crm/database"
	"saree-crm/logger"
)

// Standalone migration runner: brings the schema up to date without
// starting the server.
//
//	go run tools/migrate.go
func main() {
	cfg := config.Load()
	logger.Init(cfg.LogFile)

	fmt.Println("🚀 Running database migrations...")
	if _, err := database.Init(cfg); err != nil {
		fmt.Printf("❌ Migration failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("✅ Migration completed successfully!")
}
