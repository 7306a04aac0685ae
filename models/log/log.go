package log

import (
	"time"
)

// Log is an append-only record of a mutating HTTP request.
type Log struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Method     string    `gorm:"type:varchar(10);not null" json:"method"`
	Path       string    `gorm:"type:text;not null" json:"path"`
	Form       string    `gorm:"type:text" json:"form"`
	StatusCode int       `gorm:"type:int" json:"status_code"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}
