package routes

import (
	"net/http"
	"time"

	"fin2x/controllers/admins"
	"fin2x/middleware"

	"github.com/gorilla/mux"
)

// SetAdminRoutes registers the admin surface. Admins log in through the
// shared /auth/login endpoint; the role claim gates everything below.
func SetAdminRoutes(api *mux.Router) {
	adminLimiter := middleware.NewIPRateLimiter(240, time.Minute)

	adminRouter := api.PathPrefix("/admins").Subrouter()
	adminRouter.Use(adminLimiter.Middleware, middleware.AdminAuthMiddleware)

	adminRouter.Handle("/dashboard", http.HandlerFunc(admins.DashboardHandler)).Methods(http.MethodGet)

	// Request review
	adminRouter.Handle("/deposits", http.HandlerFunc(admins.GetDeposits)).Methods(http.MethodGet)
	adminRouter.Handle("/deposits/{id:[0-9]+}/approve", http.HandlerFunc(admins.ApproveDeposit)).Methods(http.MethodPost)
	adminRouter.Handle("/deposits/{id:[0-9]+}/decline", http.HandlerFunc(admins.DeclineDeposit)).Methods(http.MethodPost)
	adminRouter.Handle("/withdrawals", http.HandlerFunc(admins.GetWithdrawals)).Methods(http.MethodGet)
	adminRouter.Handle("/withdrawals/{id:[0-9]+}/approve", http.HandlerFunc(admins.ApproveWithdrawal)).Methods(http.MethodPost)
	adminRouter.Handle("/withdrawals/{id:[0-9]+}/decline", http.HandlerFunc(admins.DeclineWithdrawal)).Methods(http.MethodPost)

	// User management
	adminRouter.Handle("/users", http.HandlerFunc(admins.GetUsers)).Methods(http.MethodGet)

	// Notifications
	adminRouter.Handle("/notifications", http.HandlerFunc(admins.GetNotifications)).Methods(http.MethodGet)
	adminRouter.Handle("/notifications", http.HandlerFunc(admins.CreateNotification)).Methods(http.MethodPost)
	adminRouter.Handle("/notifications/{id:[0-9]+}", http.HandlerFunc(admins.UpdateNotification)).Methods(http.MethodPut)
	adminRouter.Handle("/notifications/{id:[0-9]+}", http.HandlerFunc(admins.DeleteNotification)).Methods(http.MethodDelete)

	// Settings
	adminRouter.Handle("/settings", http.HandlerFunc(admins.GetSettings)).Methods(http.MethodGet)
	adminRouter.Handle("/settings", http.HandlerFunc(admins.UpdateSettings)).Methods(http.MethodPut)
}
