package users

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

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WithdrawalSubmitRequest struct {
	Amount        float64 `json:"amount" validate:"required"`
	WalletName    string  `json:"wallet_name" validate:"required,max=100"`
	Network       string  `json:"network" validate:"required,max=50"`
	WalletAddress string  `json:"wallet_address" validate:"required,max=191"`
}

// QuoteHandler returns the live fee preview for an amount. Nothing is
// persisted; invalid amounts still get a preview.
//
// GET /v1/users/withdrawal/quote?amount=850
func QuoteHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var user models.User
	if err := database.DB.First(&user, uid).Error; err != nil {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "User not found"})
		return
	}

	amount, _ := strconv.ParseFloat(strings.TrimSpace(r.URL.Query().Get("amount")), 64)
	quote := utils.QuoteWithdrawal(amount, user.WalletBalance)

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data:    map[string]interface{}{"quote": quote},
	})
}

var errBalanceHeld = errors.New("balance held by pending withdrawals")

// SubmitWithdrawalHandler records a pending withdrawal request. The wallet is
// only debited when an admin approves it, so the submit check counts earlier
// pending withdrawals against the balance.
func SubmitWithdrawalHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var req WithdrawalSubmitRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	db := database.DB

	var user models.User
	if err := db.First(&user, uid).Error; err != nil {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "User not found"})
		return
	}

	if err := utils.ValidateWithdrawal(req.Amount, user.WalletBalance, req.WalletName, req.Network, req.WalletAddress); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: capitalize(err.Error())})
		return
	}

	quote := utils.QuoteWithdrawal(req.Amount, user.WalletBalance)

	var wr models.WithdrawalRequest
	err := db.Transaction(func(tx *gorm.DB) error {
		var lockedUser models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&lockedUser, uid).Error; err != nil {
			return err
		}

		var pendingHeld float64
		if err := tx.Model(&models.WithdrawalRequest{}).
			Where("user_id = ? AND status = ?", uid, models.StatusPending).
			Select("COALESCE(SUM(amount),0)").Scan(&pendingHeld).Error; err != nil {
			return err
		}
		if req.Amount > lockedUser.WalletBalance-pendingHeld {
			return errBalanceHeld
		}

		wr = models.WithdrawalRequest{
			OrderID:       utils.GenerateOrderID(),
			UserID:        lockedUser.ID,
			UserEmail:     lockedUser.Email,
			Amount:        quote.Amount,
			FeePercent:    quote.FeePercent,
			Fee:           quote.Fee,
			NetAmount:     quote.Net,
			WalletName:    strings.TrimSpace(req.WalletName),
			WalletAddress: strings.TrimSpace(req.WalletAddress),
			Network:       strings.TrimSpace(req.Network),
			Status:        models.StatusPending,
			Date:          time.Now(),
		}
		return tx.Create(&wr).Error
	})
	if err != nil {
		if errors.Is(err, errBalanceHeld) {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Your pending withdrawals already hold this amount"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to submit withdrawal request"})
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "Withdrawal request submitted. You will be notified once it is reviewed.",
		Data: map[string]interface{}{
			"withdrawal": withdrawalPayload(&wr),
		},
	})
}

// GET /v1/users/withdrawal
func ListWithdrawalsHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	status := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("status")))

	db := database.DB

	countQuery := db.Model(&models.WithdrawalRequest{}).Where("user_id = ?", uid)
	if status != "" {
		countQuery = countQuery.Where("status = ?", status)
	}
	var totalRows int64
	if err := countQuery.Count(&totalRows).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve withdrawal data"})
		return
	}

	info := utils.ClampPage(int(totalRows), page, limit)

	var withdrawals []models.WithdrawalRequest
	query := db.Where("user_id = ?", uid)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("id DESC").Limit(info.Limit).Offset(info.Offset()).Find(&withdrawals).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve withdrawal data"})
		return
	}

	rows := make([]map[string]interface{}, 0, len(withdrawals))
	for i := range withdrawals {
		rows = append(rows, withdrawalPayload(&withdrawals[i]))
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

func withdrawalPayload(wr *models.WithdrawalRequest) map[string]interface{} {
	return map[string]interface{}{
		"id":             wr.ID,
		"order_id":       wr.OrderID,
		"amount":         wr.Amount,
		"fee_percent":    wr.FeePercent,
		"fee":            wr.Fee,
		"net_amount":     wr.NetAmount,
		"wallet_name":    wr.WalletName,
		"wallet_address": wr.WalletAddress,
		"network":        wr.Network,
		"status":         wr.Status,
		"date":           wr.Date.Format(time.RFC3339),
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
