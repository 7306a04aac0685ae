package deliverylog

import (
	"time"

	"saree-crm/models/order"
)

// DeliveryLog is an append-only snapshot of an order's delivery status at
// the moment it changed. Rows are never updated or deleted.
type DeliveryLog struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	OrderID uint        `gorm:"not null;index" json:"order_id"`
	Order   order.Order `gorm:"foreignKey:OrderID" json:"order"`

	When   time.Time            `gorm:"column:when;not null;autoCreateTime" json:"when"`
	Status order.DeliveryStatus `gorm:"type:varchar(32);not null" json:"status"`
	Note   *string              `gorm:"type:varchar(200)" json:"note,omitempty"`
}

func (DeliveryLog) TableName() string {
	return "delivery_logs"
}
