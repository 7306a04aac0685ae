package database

import (
	"fmt"

	"saree-crm/config"
	"saree-crm/logger"
	"saree-crm/models/customer"
	"saree-crm/models/deliverylog"
	"saree-crm/models/followup"
	"saree-crm/models/log"
	"saree-crm/models/order"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Init opens the configured store and brings the schema up to date. Any
// error here is fatal for the caller; the application must not serve
// traffic against a half-initialized schema.
func Init(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if cfg.UsePostgres() {
		dialector = postgres.Open(cfg.PostgresDSN())
	} else {
		dialector = sqlite.Open(cfg.SQLitePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	logger.Success("Successfully connected to the store: " + cfg.StorePath())

	// Additive column migration first, so a database created before the
	// delivery-tracking columns existed is patched in place.
	if err := EnsureDeliveryColumns(db); err != nil {
		return nil, fmt.Errorf("ensure delivery columns: %w", err)
	}

	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	logger.Success("All migrations completed successfully")

	if err := createIndexes(db); err != nil {
		return nil, fmt.Errorf("create indexes: %w", err)
	}

	return db, nil
}

func autoMigrate(db *gorm.DB) error {
	// Customers first, then the models that reference them.
	models := []interface{}{
		&customer.Customer{},
		&order.Order{},
		&followup.FollowUp{},
		&deliverylog.DeliveryLog{},
		&log.Log{},
	}

	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}
	return nil
}

// createIndexes creates additional indexes for better performance
func createIndexes(db *gorm.DB) error {
	indexes := []struct {
		name string
		sql  string
	}{
		{"idx_orders_date", "CREATE INDEX IF NOT EXISTS idx_orders_date ON orders(date)"},
		{"idx_orders_payment_status", "CREATE INDEX IF NOT EXISTS idx_orders_payment_status ON orders(payment_status)"},
		{"idx_orders_delivery_status", "CREATE INDEX IF NOT EXISTS idx_orders_delivery_status ON orders(delivery_status)"},
		{"idx_delivery_logs_order_id", "CREATE INDEX IF NOT EXISTS idx_delivery_logs_order_id ON delivery_logs(order_id)"},
		{"idx_follow_ups_due_date", "CREATE INDEX IF NOT EXISTS idx_follow_ups_due_date ON follow_ups(due_date)"},
	}

	for _, idx := range indexes {
		if err := db.Exec(idx.sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}
	return nil
}
