package models

import "time"

// Request statuses shared by deposit and withdrawal requests. Transitions are
// one-way: pending -> approved or pending -> declined.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDeclined = "declined"
)

type DepositRequest struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	OrderID       string    `gorm:"size:191;uniqueIndex;not null" json:"order_id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	UserEmail     string    `gorm:"size:191;not null" json:"user_email"`
	Amount        float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	TransactionID string    `gorm:"size:191;not null" json:"transaction_id"`
	Screenshot    string    `gorm:"type:text" json:"screenshot"`
	Status        string    `gorm:"size:10;not null;default:'pending';index" json:"status"`
	Date          time.Time `gorm:"not null" json:"date"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}

func (DepositRequest) TableName() string {
	return "deposit_requests"
}
