package database

import (
	"fmt"

	"saree-crm/logger"
	"saree-crm/models/order"

	"gorm.io/gorm"
)

// deliveryColumns are the columns added to the orders table after the
// original release. Older databases are patched additively; no existing
// data is touched.
var deliveryColumns = []struct {
	name    string
	sqlType string
}{
	{"courier", "text"},
	{"tracking_id", "text"},
	{"shipment_date", "date"},
	{"delivery_eta", "date"},
	{"delivered_date", "date"},
	{"last_update", "timestamp"},
}

// EnsureDeliveryColumns inspects the orders table and adds any missing
// delivery-tracking columns. Idempotent across restarts; a no-op when the
// table does not exist yet (AutoMigrate will create it fully formed).
func EnsureDeliveryColumns(db *gorm.DB) error {
	migrator := db.Migrator()
	if !migrator.HasTable(&order.Order{}) {
		return nil
	}

	for _, col := range deliveryColumns {
		if migrator.HasColumn(&order.Order{}, col.name) {
			continue
		}
		sql := fmt.Sprintf("ALTER TABLE orders ADD COLUMN %s %s", col.name, col.sqlType)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("add column orders.%s: %w", col.name, err)
		}
		logger.Success("Added column orders." + col.name)
	}
	return nil
}
