package models

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

const (
	UserStatusActive  = "Active"
	UserStatusPending = "Pending"
)

type User struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	FirstName       string    `gorm:"size:100;not null" json:"first_name"`
	LastName        string    `gorm:"size:100" json:"last_name"`
	Email           string    `gorm:"size:191;uniqueIndex;not null" json:"email"`
	Phone           string    `gorm:"size:30" json:"phone"`
	Password        string    `gorm:"size:255;not null" json:"-"`
	Role            string    `gorm:"size:10;not null;default:'user'" json:"role"`
	ReferralCode    string    `gorm:"size:30;uniqueIndex;not null" json:"referral_code"`
	ReferredBy      *uint     `gorm:"column:referred_by;index" json:"referred_by,omitempty"`
	WalletBalance   float64   `gorm:"type:decimal(15,2);default:0" json:"wallet_balance"`
	TotalInvested   float64   `gorm:"type:decimal(15,2);default:0" json:"total_invested"`
	TeamSize        int       `gorm:"default:0" json:"team_size"`
	TeamInvested    float64   `gorm:"type:decimal(15,2);default:0" json:"team_invested"`
	TotalWithdrawal float64   `gorm:"type:decimal(15,2);default:0" json:"total_withdrawal"`
	DailyProfit     float64   `gorm:"type:decimal(15,2);default:0" json:"daily_profit"`
	TotalProfit     float64   `gorm:"type:decimal(15,2);default:0" json:"total_profit"`
	Status          string    `gorm:"size:10;not null;default:'Active'" json:"status"`
	JoinDate        time.Time `gorm:"not null" json:"join_date"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
