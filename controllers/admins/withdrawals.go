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

// GET /v1/admins/withdrawals
func GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	status := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("status")))
	search := strings.TrimSpace(r.URL.Query().Get("search"))

	db := database.DB

	query := db.Model(&models.WithdrawalRequest{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("order_id LIKE ? OR user_email LIKE ? OR wallet_address LIKE ?", like, like, like)
	}

	var totalRows int64
	if err := query.Count(&totalRows).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve withdrawal data"})
		return
	}

	info := utils.ClampPage(int(totalRows), page, limit)

	var withdrawals []models.WithdrawalRequest
	if err := query.Order("id DESC").Limit(info.Limit).Offset(info.Offset()).Find(&withdrawals).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve withdrawal data"})
		return
	}

	rows := make([]map[string]interface{}, 0, len(withdrawals))
	for _, wr := range withdrawals {
		rows = append(rows, map[string]interface{}{
			"id":             wr.ID,
			"order_id":       wr.OrderID,
			"user_id":        wr.UserID,
			"user_email":     wr.UserEmail,
			"amount":         wr.Amount,
			"fee_percent":    wr.FeePercent,
			"fee":            wr.Fee,
			"net_amount":     wr.NetAmount,
			"wallet_name":    wr.WalletName,
			"wallet_address": wr.WalletAddress,
			"network":        wr.Network,
			"status":         wr.Status,
			"date":           wr.Date.Format(time.RFC3339),
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

var errInsufficientFunds = errors.New("insufficient funds")

// POST /v1/admins/withdrawals/{id}/approve
func ApproveWithdrawal(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid withdrawal ID"})
		return
	}

	db := database.DB

	var withdrawal models.WithdrawalRequest
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&withdrawal, id).Error; err != nil {
			return err
		}
		if withdrawal.Status != models.StatusPending {
			return errNotPending
		}

		var user models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, withdrawal.UserID).Error; err != nil {
			return err
		}
		if user.WalletBalance < withdrawal.Amount {
			return errInsufficientFunds
		}

		updates := map[string]interface{}{
			"wallet_balance":   utils.RoundFloat(user.WalletBalance-withdrawal.Amount, 2),
			"total_withdrawal": utils.RoundFloat(user.TotalWithdrawal+withdrawal.Amount, 2),
		}
		if err := tx.Model(&user).Updates(updates).Error; err != nil {
			return err
		}

		if err := tx.Model(&withdrawal).Update("status", models.StatusApproved).Error; err != nil {
			return err
		}

		return tx.Create(&models.Notification{
			UserID:  &withdrawal.UserID,
			Title:   "Withdrawal approved",
			Content: "Your withdrawal " + withdrawal.OrderID + " has been approved and is on its way.",
			Date:    time.Now(),
		}).Error
	})
	if err != nil {
		writeRequestActionError(w, err, "withdrawal")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Withdrawal approved",
		Data:    map[string]interface{}{"id": withdrawal.ID, "status": models.StatusApproved},
	})
}

// POST /v1/admins/withdrawals/{id}/decline
func DeclineWithdrawal(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid withdrawal ID"})
		return
	}

	var req DeclineRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	db := database.DB

	var withdrawal models.WithdrawalRequest
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&withdrawal, id).Error; err != nil {
			return err
		}
		if withdrawal.Status != models.StatusPending {
			return errNotPending
		}
		if err := tx.Model(&withdrawal).Update("status", models.StatusDeclined).Error; err != nil {
			return err
		}
		return tx.Create(&models.Notification{
			UserID:  &withdrawal.UserID,
			Title:   "Withdrawal declined",
			Content: "Your withdrawal " + withdrawal.OrderID + " was declined: " + strings.TrimSpace(req.Reason),
			Date:    time.Now(),
		}).Error
	})
	if err != nil {
		writeRequestActionError(w, err, "withdrawal")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Withdrawal declined",
		Data:    map[string]interface{}{"id": withdrawal.ID, "status": models.StatusDeclined},
	})
}
