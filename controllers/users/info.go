package users

import (
	"errors"
	"net/http"

	"fin2x/database"
	"fin2x/models"
	"fin2x/utils"

	"gorm.io/gorm"
)

// InfoHandler returns the logged-in user's wallet and profile snapshot.
func InfoHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	db := database.DB

	var user models.User
	if err := db.First(&user, uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "User not found"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	var pendingDeposits, pendingWithdrawals int64
	db.Model(&models.DepositRequest{}).Where("user_id = ? AND status = ?", uid, models.StatusPending).Count(&pendingDeposits)
	db.Model(&models.WithdrawalRequest{}).Where("user_id = ? AND status = ?", uid, models.StatusPending).Count(&pendingWithdrawals)

	var setting models.Setting
	db.Take(&setting)

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"user": map[string]interface{}{
				"id":               user.ID,
				"first_name":       user.FirstName,
				"last_name":        user.LastName,
				"full_name":        user.FullName(),
				"email":            user.Email,
				"phone":            user.Phone,
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
			},
			"pending_requests": map[string]interface{}{
				"deposits":    pendingDeposits,
				"withdrawals": pendingWithdrawals,
			},
			"withdrawal_rules": map[string]interface{}{
				"min_withdraw":       setting.MinWithdraw,
				"base_fee_percent":   setting.BaseFeePercent,
				"high_fee_percent":   setting.HighFeePercent,
				"high_fee_threshold": setting.HighFeeThreshold,
			},
		},
	})
}
