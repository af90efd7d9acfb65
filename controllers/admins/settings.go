package admins

import (
	"net/http"

	"fin2x/database"
	"fin2x/middleware"
	"fin2x/models"
	"fin2x/utils"
)

// GET /v1/admins/settings
func GetSettings(w http.ResponseWriter, r *http.Request) {
	var setting models.Setting
	if err := database.DB.Take(&setting).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve settings"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data:    map[string]interface{}{"settings": setting},
	})
}

type UpdateSettingsRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	Maintenance *bool   `json:"maintenance"`
}

// UpdateSettings toggles maintenance mode and the display name. The
// withdrawal fee rules are fixed and not editable at runtime.
//
// PUT /v1/admins/settings
func UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	db := database.DB

	var setting models.Setting
	if err := db.Take(&setting).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve settings"})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Maintenance != nil {
		updates["maintenance"] = *req.Maintenance
	}
	if len(updates) == 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Nothing to update"})
		return
	}

	if err := db.Model(&setting).Updates(updates).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to update settings"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Settings updated"})
}
