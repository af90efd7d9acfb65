package users

import (
	"net/http"

	"fin2x/database"
	"fin2x/models"
	"fin2x/utils"
)

// RanksHandler reports the user's progress toward each reward tier based on
// their team investment.
//
// GET /v1/users/ranks
func RanksHandler(w http.ResponseWriter, r *http.Request) {
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

	tiers := make([]map[string]interface{}, 0, len(models.RewardTiers))
	var current *models.RewardTier
	for i := range models.RewardTiers {
		tier := models.RewardTiers[i]
		achieved := user.TeamInvested >= tier.Target
		if achieved {
			current = &models.RewardTiers[i]
		}
		progress := 0.0
		if tier.Target > 0 {
			progress = utils.RoundFloat(user.TeamInvested/tier.Target*100, 2)
			if progress > 100 {
				progress = 100
			}
		}
		tiers = append(tiers, map[string]interface{}{
			"title":            tier.Title,
			"target":           tier.Target,
			"reward":           tier.Reward,
			"description":      tier.Description,
			"achieved":         achieved,
			"progress_percent": progress,
		})
	}

	data := map[string]interface{}{
		"team_invested": user.TeamInvested,
		"tiers":         tiers,
	}
	if current != nil {
		data["current_rank"] = current.Title
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data:    data,
	})
}
