package models

import "time"

// Commission is a multi-level referral payout record. Level 1 is a direct
// referral, levels 2..5 are indirect.
type Commission struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Date      time.Time `gorm:"not null" json:"date"`
	FromUser  string    `gorm:"size:191;not null" json:"from_user"`
	Level     int       `gorm:"not null" json:"level"`
	Amount    float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	CreatedAt time.Time `json:"-"`
}

func (Commission) TableName() string {
	return "commissions"
}
