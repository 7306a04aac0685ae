package order

import (
	"time"

	"saree-crm/models/customer"
)

// Order is a single saree sale. Amount is whole rupees and may never go
// negative; the check constraint backs up the handler-side clamp.
type Order struct {
	ID      uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID string    `gorm:"type:varchar(30);not null;unique;index" json:"order_id"`
	Date    time.Time `gorm:"type:date;index" json:"date"`

	CustomerID uint              `gorm:"not null;index" json:"customer_id"`
	Customer   customer.Customer `gorm:"foreignKey:CustomerID" json:"customer"`

	SareeType string `gorm:"type:varchar(120);not null" json:"saree_type"` // e.g. Banarasi, Silk
	Amount    int    `gorm:"not null;default:0;check:amount >= 0" json:"amount"`

	Purchase       PurchaseType   `gorm:"type:varchar(20);default:Online" json:"purchase"`
	PaymentStatus  PaymentStatus  `gorm:"type:varchar(20);default:Pending;index" json:"payment_status"`
	PaymentMode    PaymentMode    `gorm:"type:varchar(20);default:Pending" json:"payment_mode"`
	DeliveryStatus DeliveryStatus `gorm:"type:varchar(20);default:Pending;index" json:"delivery_status"`

	Courier       *string    `gorm:"type:text" json:"courier,omitempty"`
	TrackingID    *string    `gorm:"column:tracking_id;type:text" json:"tracking_id,omitempty"`
	ShipmentDate  *time.Time `gorm:"type:date" json:"shipment_date,omitempty"`
	DeliveryETA   *time.Time `gorm:"column:delivery_eta;type:date" json:"delivery_eta,omitempty"`
	DeliveredDate *time.Time `gorm:"type:date" json:"delivered_date,omitempty"`
	LastUpdate    *time.Time `json:"last_update,omitempty"`

	Remarks string `gorm:"type:varchar(255)" json:"remarks"`
}

func (Order) TableName() string {
	return "orders"
}
