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
	"gorm.io/gorm/clause"
)

// GET /v1/admins/deposits
func GetDeposits(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	status := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("status")))
	search := strings.TrimSpace(r.URL.Query().Get("search"))

	db := database.DB

	query := db.Model(&models.DepositRequest{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("order_id LIKE ? OR user_email LIKE ? OR transaction_id LIKE ?", like, like, like)
	}

	var totalRows int64
	if err := query.Count(&totalRows).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve deposit data"})
		return
	}

	info := utils.ClampPage(int(totalRows), page, limit)

	var deposits []models.DepositRequest
	if err := query.Order("id DESC").Limit(info.Limit).Offset(info.Offset()).Find(&deposits).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve deposit data"})
		return
	}

	rows := make([]map[string]interface{}, 0, len(deposits))
	for _, dr := range deposits {
		rows = append(rows, map[string]interface{}{
			"id":             dr.ID,
			"order_id":       dr.OrderID,
			"user_id":        dr.UserID,
			"user_email":     dr.UserEmail,
			"amount":         dr.Amount,
			"transaction_id": dr.TransactionID,
			"screenshot":     dr.Screenshot,
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

var errNotPending = errors.New("request is not pending")

// POST /v1/admins/deposits/{id}/approve
func ApproveDeposit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid deposit ID"})
		return
	}

	db := database.DB

	var deposit models.DepositRequest
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&deposit, id).Error; err != nil {
			return err
		}
		if deposit.Status != models.StatusPending {
			return errNotPending
		}

		var user models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, deposit.UserID).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{
			"wallet_balance": utils.RoundFloat(user.WalletBalance+deposit.Amount, 2),
			"total_invested": utils.RoundFloat(user.TotalInvested+deposit.Amount, 2),
		}
		if err := tx.Model(&user).Updates(updates).Error; err != nil {
			return err
		}

		if err := tx.Model(&deposit).Update("status", models.StatusApproved).Error; err != nil {
			return err
		}

		return tx.Create(&models.Notification{
			UserID:  &deposit.UserID,
			Title:   "Deposit approved",
			Content: "Your deposit " + deposit.OrderID + " has been approved and credited to your wallet.",
			Date:    time.Now(),
		}).Error
	})
	if err != nil {
		writeRequestActionError(w, err, "deposit")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Deposit approved",
		Data:    map[string]interface{}{"id": deposit.ID, "status": models.StatusApproved},
	})
}

type DeclineRequest struct {
	Reason string `json:"reason" validate:"required,min=3,max=500"`
}

// POST /v1/admins/deposits/{id}/decline
func DeclineDeposit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid deposit ID"})
		return
	}

	var req DeclineRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	db := database.DB

	var deposit models.DepositRequest
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&deposit, id).Error; err != nil {
			return err
		}
		if deposit.Status != models.StatusPending {
			return errNotPending
		}
		if err := tx.Model(&deposit).Update("status", models.StatusDeclined).Error; err != nil {
			return err
		}
		return tx.Create(&models.Notification{
			UserID:  &deposit.UserID,
			Title:   "Deposit declined",
			Content: "Your deposit " + deposit.OrderID + " was declined: " + strings.TrimSpace(req.Reason),
			Date:    time.Now(),
		}).Error
	})
	if err != nil {
		writeRequestActionError(w, err, "deposit")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Deposit declined",
		Data:    map[string]interface{}{"id": deposit.ID, "status": models.StatusDeclined},
	})
}

// writeRequestActionError maps approve/decline failures to responses shared
// by the deposit and withdrawal flows.
func writeRequestActionError(w http.ResponseWriter, err error, kind string) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: strings.ToUpper(kind[:1]) + kind[1:] + " request not found"})
	case errors.Is(err, errNotPending):
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Only pending requests can be processed"})
	case errors.Is(err, errInsufficientFunds):
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "User balance no longer covers this withdrawal"})
	default:
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to update " + kind + " request"})
	}
}
