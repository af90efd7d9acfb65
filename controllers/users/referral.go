package users

import (
	"net/http"
	"strconv"
	"time"

	"fin2x/database"
	"fin2x/models"
	"fin2x/utils"

	"github.com/shopspring/decimal"
)

// referralHistoryPageSize is the fixed page size of the commission history.
const referralHistoryPageSize = 5

// commissionTotals sums all commissions and those dated within the current
// local day.
func commissionTotals(records []models.Commission, now time.Time) (total, today float64) {
	dayStart := utils.DayStart(now)
	dayEnd := dayStart.AddDate(0, 0, 1)
	sum := decimal.Zero
	todaySum := decimal.Zero
	for _, c := range records {
		amt := decimal.NewFromFloat(c.Amount)
		sum = sum.Add(amt)
		if !c.Date.Before(dayStart) && c.Date.Before(dayEnd) {
			todaySum = todaySum.Add(amt)
		}
	}
	total, _ = sum.Round(2).Float64()
	today, _ = todaySum.Round(2).Float64()
	return total, today
}

// ReferralHandler returns commission totals, the paginated commission
// history and the list of directly referred users.
//
// GET /v1/users/referrals?page=1
func ReferralHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	db := database.DB

	var user models.User
	if err := db.First(&user, uid).Error; err != nil {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "User not found"})
		return
	}

	var commissions []models.Commission
	if err := db.Where("user_id = ?", uid).Order("date DESC, id DESC").Find(&commissions).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve referral data"})
		return
	}

	total, today := commissionTotals(commissions, time.Now())

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	info := utils.ClampPage(len(commissions), page, referralHistoryPageSize)
	start, end := info.Bounds()

	history := make([]map[string]interface{}, 0, end-start)
	for _, c := range commissions[start:end] {
		history = append(history, map[string]interface{}{
			"id":        c.ID,
			"date":      c.Date.Format("2006-01-02"),
			"from_user": c.FromUser,
			"level":     c.Level,
			"amount":    c.Amount,
		})
	}

	var referred []models.User
	if err := db.Where("referred_by = ?", uid).Order("join_date DESC").Find(&referred).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve referral data"})
		return
	}

	referredRows := make([]map[string]interface{}, 0, len(referred))
	for i := range referred {
		ru := &referred[i]
		referredRows = append(referredRows, map[string]interface{}{
			"name":           ru.FullName(),
			"email":          ru.Email,
			"join_date":      ru.JoinDate.Format("2006-01-02"),
			"status":         ru.Status,
			"total_invested": ru.TotalInvested,
		})
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"referral_code":    user.ReferralCode,
			"total_commission": total,
			"today_commission": today,
			"history": map[string]interface{}{
				"data":       history,
				"pagination": info,
			},
			"referred_users": referredRows,
		},
	})
}
