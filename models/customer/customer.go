package customer

import (
	"time"
)

// Customer represents a buyer. Deleting a customer also deletes their
// orders; follow-ups are kept on purpose so reminders survive cleanup.
type Customer struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Code      string    `gorm:"type:varchar(20);not null;unique;index" json:"code"`
	Name      string    `gorm:"type:varchar(120);not null" json:"name"`
	Instagram string    `gorm:"type:varchar(120);default:None" json:"instagram"`
	Phone     *string   `gorm:"type:varchar(20)" json:"phone,omitempty"`
	City      string    `gorm:"type:varchar(120)" json:"city"`
	Notes     string    `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Customer) TableName() string {
	return "customers"
}
