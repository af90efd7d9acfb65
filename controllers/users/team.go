package users

import (
	"net/http"
	"strconv"

	"fin2x/database"
	"fin2x/models"
	"fin2x/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// teamLevels walks the referral tree breadth-first and returns the members
// of each of the five levels. Level 1 is the user's direct referrals.
func teamLevels(db *gorm.DB, rootID uint) ([][]models.User, error) {
	levels := make([][]models.User, 0, models.MaxTeamLevel)
	parentIDs := []uint{rootID}

	for depth := 1; depth <= models.MaxTeamLevel; depth++ {
		if len(parentIDs) == 0 {
			levels = append(levels, nil)
			continue
		}
		var members []models.User
		if err := db.Where("referred_by IN ?", parentIDs).Find(&members).Error; err != nil {
			return nil, err
		}
		levels = append(levels, members)

		parentIDs = parentIDs[:0]
		for _, m := range members {
			parentIDs = append(parentIDs, m.ID)
		}
	}
	return levels, nil
}

func levelSummary(members []models.User) map[string]interface{} {
	active := 0
	invested := 0.0
	for i := range members {
		if members[i].Status == models.UserStatusActive {
			active++
		}
		invested += members[i].TotalInvested
	}
	return map[string]interface{}{
		"count":          len(members),
		"active":         active,
		"inactive":       len(members) - active,
		"total_invested": utils.RoundFloat(invested, 2),
	}
}

// TeamHandler summarizes all five referral levels.
//
// GET /v1/users/team
func TeamHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	levels, err := teamLevels(database.DB, uid)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve team data"})
		return
	}

	resp := map[string]interface{}{}
	totalSize := 0
	totalInvested := 0.0
	for i, members := range levels {
		resp[strconv.Itoa(i+1)] = levelSummary(members)
		totalSize += len(members)
		for j := range members {
			totalInvested += members[j].TotalInvested
		}
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"levels":        resp,
			"team_size":     totalSize,
			"team_invested": utils.RoundFloat(totalInvested, 2),
			"level_catalog": models.TeamLevels,
			"deepest_level": models.MaxTeamLevel,
		},
	})
}

// TeamLevelHandler lists the members of a single referral level.
//
// GET /v1/users/team/{level}
func TeamLevelHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	level, err := strconv.Atoi(mux.Vars(r)["level"])
	if err != nil || level < 1 || level > models.MaxTeamLevel {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Level must be between 1 and 5"})
		return
	}

	levels, err := teamLevels(database.DB, uid)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve team data"})
		return
	}
	members := levels[level-1]

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	info := utils.ClampPage(len(members), page, limit)
	start, end := info.Bounds()

	data := make([]map[string]interface{}, 0, end-start)
	for i := range members[start:end] {
		m := &members[start+i]
		data = append(data, map[string]interface{}{
			"name":           m.FullName(),
			"email":          m.Email,
			"join_date":      m.JoinDate.Format("2006-01-02"),
			"active":         m.Status == models.UserStatusActive,
			"total_invested": m.TotalInvested,
		})
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"level":      level,
			"members":    data,
			"pagination": info,
		},
	})
}
