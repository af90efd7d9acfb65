package models

import "time"

const (
	OTPPurposeSignup = "signup"
	OTPPurposeReset  = "reset-password"
)

// PasswordOTP holds a one-time code issued for signup activation or a
// password reset. Codes are single use and expire.
type PasswordOTP struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Code      string    `gorm:"size:10;not null" json:"-"`
	Purpose   string    `gorm:"size:20;not null" json:"purpose"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Consumed  bool      `gorm:"not null;default:false" json:"consumed"`
	CreatedAt time.Time `json:"-"`
}

func (PasswordOTP) TableName() string {
	return "password_otps"
}
