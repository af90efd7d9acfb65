package models

import "time"

// Notification with a nil UserID is a broadcast visible to every user.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    *uint     `gorm:"index" json:"user_id,omitempty"`
	Title     string    `gorm:"size:191;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Date      time.Time `gorm:"not null" json:"date"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Notification) TableName() string {
	return "notifications"
}
