package followup

import (
	"time"

	"saree-crm/models/customer"
)

type Status string

const (
	StatusOpen       Status = "Open"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusClosed     Status = "Closed"
	StatusDropped    Status = "Dropped"

	// StatusDone is only produced by the legacy two-state toggle.
	StatusDone Status = "Done"
)

func (s Status) String() string {
	return string(s)
}

// IsValid reports membership in the five-value status set accepted by the
// status-update action. StatusDone is deliberately excluded; the toggle is
// the only path that writes it.
func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusCompleted, StatusClosed, StatusDropped:
		return true
	default:
		return false
	}
}

// FollowUp is a scheduled reminder to contact a customer, independent of
// any order. Not removed when the customer is deleted.
type FollowUp struct {
	ID      uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	DueDate time.Time `gorm:"type:date;not null;index" json:"due_date"`

	CustomerID uint              `gorm:"not null;index" json:"customer_id"`
	Customer   customer.Customer `gorm:"foreignKey:CustomerID" json:"customer"`

	Notes  string `gorm:"type:varchar(255)" json:"notes"`
	Status Status `gorm:"type:varchar(20);default:Open" json:"status"`
}

func (FollowUp) TableName() string {
	return "follow_ups"
}
