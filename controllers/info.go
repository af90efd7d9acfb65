package controllers

import (
	"net/http"

	"fin2x/database"
	"fin2x/models"
	"fin2x/utils"
)

// InfoPublicHandler exposes platform flags the login and signup pages need
// before any authentication.
//
// GET /v1/info
func InfoPublicHandler(w http.ResponseWriter, r *http.Request) {
	var setting models.Setting
	if err := database.DB.Model(&models.Setting{}).
		Select("name, maintenance, min_withdraw").
		Take(&setting).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"name":         setting.Name,
			"maintenance":  setting.Maintenance,
			"min_withdraw": setting.MinWithdraw,
		},
	})
}
