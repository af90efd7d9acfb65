package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"fin2x/database"
	"fin2x/middleware"
	"fin2x/models"
	"fin2x/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var appSetting models.Setting
	if err := database.DB.Model(&models.Setting{}).Select("maintenance, name").Take(&appSetting).Error; err == nil && appSetting.Maintenance {
		utils.WriteJSON(w, http.StatusServiceUnavailable, utils.APIResponse{
			Success: false,
			Message: "The platform is under maintenance. Please try again later.",
			Data:    map[string]interface{}{"maintenance": true},
		})
		return
	}

	if locked, retry := middleware.IsAccountLocked(req.Email); locked {
		utils.WriteJSON(w, http.StatusTooManyRequests, utils.APIResponse{
			Success: false,
			Message: "Too many failed login attempts. Try again later.",
			Data:    map[string]interface{}{"retry_after_seconds": int(retry.Seconds())},
		})
		return
	}

	db := database.DB

	var user models.User
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.RecordFailedLogin(req.Email)
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Incorrect email or password"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		middleware.RecordFailedLogin(req.Email)
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Incorrect email or password"})
		return
	}

	if user.Status == models.UserStatusPending {
		otp, err := issueOTP(db, user.ID, models.OTPPurposeSignup)
		if err == nil {
			deliverOTP(user.Email, otp)
		}
		utils.WriteJSON(w, http.StatusForbidden, utils.APIResponse{
			Success: false,
			Message: "Please verify your account. A new code has been sent to your email.",
			Data:    map[string]interface{}{"verification_required": true, "email": user.Email},
		})
		return
	}
	if user.Status != models.UserStatusActive {
		utils.WriteJSON(w, http.StatusForbidden, utils.APIResponse{Success: false, Message: "Your account is not active, please contact support"})
		return
	}

	middleware.ResetFailedLogin(req.Email)

	exp := time.Now().Add(15 * time.Minute)
	accessToken, err := utils.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Login failed"})
		return
	}
	refreshID, err := utils.GenerateRefreshToken(user.ID)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to store refresh token"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Login successful! Redirecting to dashboard...",
		Data: map[string]interface{}{
			"access_token":  accessToken,
			"access_expire": exp.UTC().Format(time.RFC3339),
			"refresh_token": refreshID,
			"role":          user.Role,
			"user":          userPayload(&user),
		},
	})
}

// userPayload is the common user shape returned by auth endpoints.
func userPayload(user *models.User) map[string]interface{} {
	return map[string]interface{}{
		"id":               user.ID,
		"first_name":       user.FirstName,
		"last_name":        user.LastName,
		"full_name":        user.FullName(),
		"email":            user.Email,
		"role":             user.Role,
		"referral_code":    user.ReferralCode,
		"wallet_balance":   user.WalletBalance,
		"total_invested":   user.TotalInvested,
		"team_size":        user.TeamSize,
		"team_invested":    user.TeamInvested,
		"total_withdrawal": user.TotalWithdrawal,
		"daily_profit":     user.DailyProfit,
		"total_profit":     user.TotalProfit,
		"status":           user.Status,
		"join_date":        user.JoinDate.Format("2006-01-02"),
	}
}
