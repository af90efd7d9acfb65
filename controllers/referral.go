package controllers

import (
	"errors"
	"net/http"
	"strings"

	"fin2x/database"
	"fin2x/models"
	"fin2x/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// ReferralLookupHandler resolves a referral code to its owner so the signup
// page can show who invited the visitor. Unknown codes return 404.
//
// GET /v1/ref/{code}
func ReferralLookupHandler(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimSpace(mux.Vars(r)["code"])
	if code == "" {
		utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Referral code not found"})
		return
	}

	var owner models.User
	if err := database.DB.Where("referral_code = ?", code).First(&owner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Referral code not found"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"referral_code": owner.ReferralCode,
			"referrer_name": owner.FullName(),
		},
	})
}
