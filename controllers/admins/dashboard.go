package admins

import (
	"errors"
	"net/http"
	"time"

	"fin2x/database"
	"fin2x/models"
	"fin2x/utils"
)

// parseCustomRange reads start/end query params as YYYY-MM-DD in local time.
func parseCustomRange(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation("2006-01-02", startStr, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.ParseInLocation("2006-01-02", endStr, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.New("end before start")
	}
	return start, end, nil
}

// DashboardHandler serves the admin overview: scalar cards plus the three
// time-bucketed charts (approved deposits, approved withdrawals, signups).
//
// GET /v1/admins/dashboard?period=daily|weekly|monthly|custom&start=&end=
func DashboardHandler(w http.ResponseWriter, r *http.Request) {
	period := utils.Period(r.URL.Query().Get("period"))
	if period == "" {
		period = utils.PeriodDaily
	}

	var customStart, customEnd time.Time
	if period == utils.PeriodCustom {
		var err error
		customStart, customEnd, err = parseCustomRange(r.URL.Query().Get("start"), r.URL.Query().Get("end"))
		if err != nil {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid custom range, expected start and end as YYYY-MM-DD"})
			return
		}
	}

	window, err := utils.NewBucketWindow(period, time.Now(), customStart, customEnd)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Period must be daily, weekly, monthly or custom"})
		return
	}

	db := database.DB

	var deposits []models.DepositRequest
	if err := db.Where("status = ?", models.StatusApproved).Find(&deposits).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve dashboard data"})
		return
	}
	var withdrawals []models.WithdrawalRequest
	if err := db.Where("status = ?", models.StatusApproved).Find(&withdrawals).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve dashboard data"})
		return
	}
	var users []models.User
	if err := db.Where("role = ?", models.RoleUser).Find(&users).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve dashboard data"})
		return
	}

	depositRecords := make([]utils.Record, 0, len(deposits))
	totalDeposits := 0.0
	for _, d := range deposits {
		depositRecords = append(depositRecords, utils.Record{Date: d.Date, Amount: d.Amount})
		totalDeposits += d.Amount
	}
	withdrawalRecords := make([]utils.Record, 0, len(withdrawals))
	totalWithdrawals := 0.0
	for _, wd := range withdrawals {
		withdrawalRecords = append(withdrawalRecords, utils.Record{Date: wd.Date, Amount: wd.Amount})
		totalWithdrawals += wd.Amount
	}
	signupRecords := make([]utils.Record, 0, len(users))
	activeUsers := 0
	for i := range users {
		signupRecords = append(signupRecords, utils.Record{Date: users[i].JoinDate, Amount: 1})
		if users[i].WalletBalance > 0 {
			activeUsers++
		}
	}

	var pendingDeposits, pendingWithdrawals int64
	db.Model(&models.DepositRequest{}).Where("status = ?", models.StatusPending).Count(&pendingDeposits)
	db.Model(&models.WithdrawalRequest{}).Where("status = ?", models.StatusPending).Count(&pendingWithdrawals)

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"cards": map[string]interface{}{
				"total_deposits":      utils.RoundFloat(totalDeposits, 2),
				"total_withdrawals":   utils.RoundFloat(totalWithdrawals, 2),
				"pending_deposits":    pendingDeposits,
				"pending_withdrawals": pendingWithdrawals,
				"total_users":         len(users),
				"active_users":        activeUsers,
				"inactive_users":      len(users) - activeUsers,
			},
			"charts": map[string]interface{}{
				"labels":      window.Labels,
				"deposits":    window.Aggregate(depositRecords),
				"withdrawals": window.Aggregate(withdrawalRecords),
				"signups":     window.Aggregate(signupRecords),
			},
			"period": period,
		},
	})
}
