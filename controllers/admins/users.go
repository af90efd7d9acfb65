package admins

import (
	"net/http"
	"strconv"
	"strings"

	"fin2x/database"
	"fin2x/models"
	"fin2x/utils"
)

// GetUsers lists platform users with the dashboard's filter semantics:
// active means wallet_balance > 0, inactive means zero balance.
//
// GET /v1/admins/users?filter=all|active|inactive&search=&page=
func GetUsers(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	filter := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("filter")))
	search := strings.TrimSpace(r.URL.Query().Get("search"))

	db := database.DB

	query := db.Model(&models.User{}).Where("role = ?", models.RoleUser)
	switch filter {
	case "", "all":
	case "active":
		query = query.Where("wallet_balance > 0")
	case "inactive":
		query = query.Where("wallet_balance <= 0")
	default:
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Filter must be all, active or inactive"})
		return
	}
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(referral_code) LIKE ?", like, like, like, like)
	}

	var totalRows int64
	if err := query.Count(&totalRows).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve user data"})
		return
	}

	info := utils.ClampPage(int(totalRows), page, limit)

	var users []models.User
	if err := query.Order("id ASC").Limit(info.Limit).Offset(info.Offset()).Find(&users).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve user data"})
		return
	}

	rows := make([]map[string]interface{}, 0, len(users))
	for i := range users {
		u := &users[i]
		rows = append(rows, map[string]interface{}{
			"id":               u.ID,
			"name":             u.FullName(),
			"email":            u.Email,
			"phone":            u.Phone,
			"referral_code":    u.ReferralCode,
			"referred_by":      u.ReferredBy,
			"wallet_balance":   u.WalletBalance,
			"total_invested":   u.TotalInvested,
			"team_size":        u.TeamSize,
			"team_invested":    u.TeamInvested,
			"total_withdrawal": u.TotalWithdrawal,
			"status":           u.Status,
			"active":           u.WalletBalance > 0,
			"join_date":        u.JoinDate.Format("2006-01-02"),
		})
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"data":       rows,
			"pagination": info,
		},
	})
}
