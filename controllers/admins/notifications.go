package admins

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fin2x/database"
	"fin2x/middleware"
	"fin2x/models"
	"fin2x/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type NotificationRequest struct {
	Title   string `json:"title" validate:"required,min=3,max=191"`
	Content string `json:"content" validate:"required,min=3"`
	UserID  *uint  `json:"user_id"`
}

// GET /v1/admins/notifications
func GetNotifications(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	db := database.DB

	var totalRows int64
	if err := db.Model(&models.Notification{}).Count(&totalRows).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve notifications"})
		return
	}

	info := utils.ClampPage(int(totalRows), page, limit)

	var notifications []models.Notification
	if err := db.Order("id DESC").Limit(info.Limit).Offset(info.Offset()).Find(&notifications).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve notifications"})
		return
	}

	rows := make([]map[string]interface{}, 0, len(notifications))
	for _, n := range notifications {
		rows = append(rows, map[string]interface{}{
			"id":        n.ID,
			"user_id":   n.UserID,
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

// CreateNotification publishes a broadcast (user_id omitted) or a message
// addressed to a single user.
//
// POST /v1/admins/notifications
func CreateNotification(w http.ResponseWriter, r *http.Request) {
	var req NotificationRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	db := database.DB

	if req.UserID != nil {
		var target models.User
		if err := db.First(&target, *req.UserID).Error; err != nil {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Target user not found"})
			return
		}
	}

	n := models.Notification{
		UserID:  req.UserID,
		Title:   strings.TrimSpace(req.Title),
		Content: strings.TrimSpace(req.Content),
		Date:    time.Now(),
	}
	if err := db.Create(&n).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to create notification"})
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "Notification created",
		Data:    map[string]interface{}{"id": n.ID},
	})
}

// PUT /v1/admins/notifications/{id}
func UpdateNotification(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid notification ID"})
		return
	}

	var req NotificationRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	db := database.DB

	var n models.Notification
	if err := db.First(&n, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Notification not found"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	updates := map[string]interface{}{
		"title":   strings.TrimSpace(req.Title),
		"content": strings.TrimSpace(req.Content),
	}
	if err := db.Model(&n).Updates(updates).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to update notification"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Notification updated"})
}

// DELETE /v1/admins/notifications/{id}
func DeleteNotification(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid notification ID"})
		return
	}

	res := database.DB.Delete(&models.Notification{}, id)
	if res.Error != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to delete notification"})
		return
	}
	if res.RowsAffected == 0 {
		utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Notification not found"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Notification deleted"})
}
