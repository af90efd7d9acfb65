package models

import "time"

const (
	ProfitTypeDaily    = "Daily Profit"
	ProfitTypeReferral = "Referral Bonus"
	ProfitTypeRank     = "Rank Bonus"
)

type ProfitEntry struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Date        time.Time `gorm:"not null" json:"date"`
	Amount      float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	Type        string    `gorm:"size:30;not null" json:"type"`
	Description string    `gorm:"size:191" json:"description"`
	CreatedAt   time.Time `json:"-"`
}

func (ProfitEntry) TableName() string {
	return "profit_entries"
}
