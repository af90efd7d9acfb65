package users

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"fin2x/database"
	"fin2x/models"
	"fin2x/utils"
)

// ProfitsHandler lists the user's earnings ledger, optionally filtered by
// type (Daily Profit, Referral Bonus, Rank Bonus).
//
// GET /v1/users/profits
func ProfitsHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	db := database.DB
	profitType := strings.TrimSpace(r.URL.Query().Get("type"))

	countQuery := db.Model(&models.ProfitEntry{}).Where("user_id = ?", uid)
	if profitType != "" {
		countQuery = countQuery.Where("type = ?", profitType)
	}
	var totalRows int64
	if err := countQuery.Count(&totalRows).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve profit data"})
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	info := utils.ClampPage(int(totalRows), page, limit)

	var entries []models.ProfitEntry
	query := db.Where("user_id = ?", uid)
	if profitType != "" {
		query = query.Where("type = ?", profitType)
	}
	if err := query.Order("date DESC, id DESC").Limit(info.Limit).Offset(info.Offset()).Find(&entries).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve profit data"})
		return
	}

	rows := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, map[string]interface{}{
			"id":          e.ID,
			"date":        e.Date.Format(time.RFC3339),
			"amount":      e.Amount,
			"type":        e.Type,
			"description": e.Description,
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
