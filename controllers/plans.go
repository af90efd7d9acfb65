package controllers

import (
	"net/http"

	"fin2x/models"
	"fin2x/utils"
)

// PlansHandler returns the fixed investment plan catalog.
//
// GET /v1/plans
func PlansHandler(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"plans":        models.InvestmentPlans,
			"reward_tiers": models.RewardTiers,
			"team_levels":  models.TeamLevels,
		},
	})
}
