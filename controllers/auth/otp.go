package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"fin2x/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const otpTTL = 10 * time.Minute

var errOTPInvalid = errors.New("invalid or expired code")

// issueOTP invalidates any open code for the same purpose and creates a
// fresh 6-digit one.
func issueOTP(db *gorm.DB, userID uint, purpose string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	code := fmt.Sprintf("%06d", n.Int64())

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.PasswordOTP{}).
			Where("user_id = ? AND purpose = ? AND consumed = ?", userID, purpose, false).
			Update("consumed", true).Error; err != nil {
			return err
		}
		return tx.Create(&models.PasswordOTP{
			UserID:    userID,
			Code:      code,
			Purpose:   purpose,
			ExpiresAt: time.Now().Add(otpTTL),
		}).Error
	})
	if err != nil {
		return "", err
	}
	return code, nil
}

// consumeOTP validates a code and marks it used in the same transaction.
func consumeOTP(db *gorm.DB, userID uint, purpose, code string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var otp models.PasswordOTP
		err := tx.Where("user_id = ? AND purpose = ? AND code = ? AND consumed = ?", userID, purpose, code, false).
			Order("id DESC").First(&otp).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errOTPInvalid
			}
			return err
		}
		if time.Now().After(otp.ExpiresAt) {
			return errOTPInvalid
		}
		return tx.Model(&otp).Update("consumed", true).Error
	})
}

// deliverOTP stands in for an email sender. Codes are logged so a local
// operator can complete signup and reset flows.
func deliverOTP(email, code string) {
	logrus.WithFields(logrus.Fields{"email": email, "code": code}).Info("otp issued")
}
