package users

import (
	"net/http"
	"strconv"
	"time"

	"fin2x/database"
	"fin2x/models"
	"fin2x/utils"
)

// NotificationsHandler lists broadcast notifications plus the ones addressed
// to the logged-in user, newest first.
//
// GET /v1/users/notifications
func NotificationsHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	db := database.DB

	var totalRows int64
	base := db.Model(&models.Notification{}).Where("user_id IS NULL OR user_id = ?", uid)
	if err := base.Count(&totalRows).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve notifications"})
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	info := utils.ClampPage(int(totalRows), page, limit)

	var notifications []models.Notification
	if err := db.Where("user_id IS NULL OR user_id = ?", uid).
		Order("date DESC, id DESC").
		Limit(info.Limit).Offset(info.Offset()).
		Find(&notifications).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve notifications"})
		return
	}

	rows := make([]map[string]interface{}, 0, len(notifications))
	for _, n := range notifications {
		rows = append(rows, map[string]interface{}{
			"id":        n.ID,
			"title":     n.Title,
			"content":   n.Content,
			"date":      n.Date.Format(time.RFC3339),
			"broadcast": n.UserID == nil,
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
