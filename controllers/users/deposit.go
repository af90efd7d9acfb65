package users

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"fin2x/database"
	"fin2x/middleware"
	"fin2x/models"
	"fin2x/utils"
)

type DepositSubmitRequest struct {
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	TransactionID string  `json:"transaction_id" validate:"required,min=4,max=191"`
	Screenshot    string  `json:"screenshot"`
}

// SubmitDepositHandler records a pending deposit request. The wallet is only
// credited when an admin approves it.
func SubmitDepositHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var req DepositSubmitRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	db := database.DB

	var user models.User
	if err := db.First(&user, uid).Error; err != nil {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "User not found"})
		return
	}

	dr := models.DepositRequest{
		OrderID:       utils.GenerateOrderID(),
		UserID:        user.ID,
		UserEmail:     user.Email,
		Amount:        req.Amount,
		TransactionID: strings.TrimSpace(req.TransactionID),
		Screenshot:    req.Screenshot,
		Status:        models.StatusPending,
		Date:          time.Now(),
	}
	if err := db.Create(&dr).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to submit deposit request"})
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "Deposit request submitted. You will be notified once it is reviewed.",
		Data: map[string]interface{}{
			"deposit": map[string]interface{}{
				"id":             dr.ID,
				"order_id":       dr.OrderID,
				"amount":         dr.Amount,
				"transaction_id": dr.TransactionID,
				"status":         dr.Status,
				"date":           dr.Date.Format(time.RFC3339),
			},
		},
	})
}

// GET /v1/users/deposits
func ListDepositsHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	status := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("status")))

	db := database.DB

	countQuery := db.Model(&models.DepositRequest{}).Where("user_id = ?", uid)
	if status != "" {
		countQuery = countQuery.Where("status = ?", status)
	}
	var totalRows int64
	if err := countQuery.Count(&totalRows).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve deposit data"})
		return
	}

	info := utils.ClampPage(int(totalRows), page, limit)

	var deposits []models.DepositRequest
	query := db.Where("user_id = ?", uid)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("id DESC").Limit(info.Limit).Offset(info.Offset()).Find(&deposits).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve deposit data"})
		return
	}

	rows := make([]map[string]interface{}, 0, len(deposits))
	for _, dr := range deposits {
		rows = append(rows, map[string]interface{}{
			"id":             dr.ID,
			"order_id":       dr.OrderID,
			"amount":         dr.Amount,
			"transaction_id": dr.TransactionID,
			"status":         dr.Status,
			"date":           dr.Date.Format(time.RFC3339),
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
