package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"fin2x/database"
	"fin2x/models"
	"fin2x/utils"

	"github.com/golang-jwt/jwt/v5"
)

func bearerClaims(r *http.Request) (jwt.MapClaims, error) {
	authz := r.Header.Get("Authorization")
	if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
		return nil, errors.New("missing or invalid Authorization header")
	}
	return utils.ValidateAccessToken(strings.TrimSpace(strings.TrimPrefix(authz, "Bearer ")))
}

// AdminAuthMiddleware verifies the request carries an admin token and that
// the admin account still exists and is active.
func AdminAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := bearerClaims(r)
		if err != nil {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized: Invalid token"})
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != models.RoleAdmin {
			utils.WriteJSON(w, http.StatusForbidden, utils.APIResponse{Success: false, Message: "Forbidden: Admin access required"})
			return
		}

		adminID := utils.ClaimsUserID(claims)
		var admin models.User
		if err := database.DB.Where("id = ? AND role = ?", adminID, models.RoleAdmin).First(&admin).Error; err != nil {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized: Admin not found"})
			return
		}
		if admin.Status != models.UserStatusActive {
			utils.WriteJSON(w, http.StatusForbidden, utils.APIResponse{Success: false, Message: "Forbidden"})
			return
		}

		ctx := context.WithValue(r.Context(), utils.UserIDKey, adminID)
		ctx = context.WithValue(ctx, utils.UserRoleKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
