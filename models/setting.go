package models

import "time"

// Withdrawal fee rules. Fixed at build time; the seeded Setting row mirrors
// them so clients can display the same numbers the quote applies.
const (
	MinWithdraw      = 35.0
	BaseFeePercent   = 6.0
	HighFeePercent   = 20.0
	HighFeeThreshold = 0.8
)

// Setting is a single-row table with the platform wide withdrawal rules.
type Setting struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"size:100;not null" json:"name"`
	MinWithdraw      float64   `gorm:"type:decimal(15,2);not null;default:35" json:"min_withdraw"`
	BaseFeePercent   float64   `gorm:"type:decimal(5,2);not null;default:6" json:"base_fee_percent"`
	HighFeePercent   float64   `gorm:"type:decimal(5,2);not null;default:20" json:"high_fee_percent"`
	HighFeeThreshold float64   `gorm:"type:decimal(5,2);not null;default:0.8" json:"high_fee_threshold"`
	Maintenance      bool      `gorm:"not null;default:false" json:"maintenance"`
	CreatedAt        time.Time `json:"-"`
	UpdatedAt        time.Time `json:"-"`
}

func (Setting) TableName() string {
	return "settings"
}
