package models

import "time"

type WithdrawalRequest struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	OrderID       string    `gorm:"size:191;uniqueIndex;not null" json:"order_id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	UserEmail     string    `gorm:"size:191;not null" json:"user_email"`
	Amount        float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	FeePercent    float64   `gorm:"type:decimal(5,2);not null" json:"fee_percent"`
	Fee           float64   `gorm:"type:decimal(15,2);not null;default:0.00" json:"fee"`
	NetAmount     float64   `gorm:"type:decimal(15,2);not null" json:"net_amount"`
	WalletName    string    `gorm:"size:100;not null" json:"wallet_name"`
	WalletAddress string    `gorm:"size:191;not null" json:"wallet_address"`
	Network       string    `gorm:"size:50;not null" json:"network"`
	Status        string    `gorm:"size:10;not null;default:'pending';index" json:"status"`
	Date          time.Time `gorm:"not null" json:"date"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}

func (WithdrawalRequest) TableName() string {
	return "withdrawal_requests"
}
