package routes

import (
	"net/http"
	"time"

	"fin2x/controllers/auth"
	"fin2x/controllers/users"
	"fin2x/middleware"

	"github.com/gorilla/mux"
)

// UsersRoutes registers the auth and user surface on the given subrouter.
func UsersRoutes(api *mux.Router) {
	// Login/register: 30 per IP per 5 minutes
	loginLimiter := middleware.NewIPRateLimiter(30, 5*time.Minute)
	// Session traffic: 120 per user per minute
	userLimiter := middleware.NewIPRateLimiter(120, time.Minute)

	authed := func(h http.HandlerFunc) http.Handler {
		return middleware.AuthMiddleware(userLimiter.UserMiddleware(h))
	}

	// Register & Login
	api.Handle("/auth/register", loginLimiter.Middleware(http.HandlerFunc(auth.RegisterHandler))).Methods(http.MethodPost)
	api.Handle("/auth/verify-otp", loginLimiter.Middleware(http.HandlerFunc(auth.VerifyOTPHandler))).Methods(http.MethodPost)
	api.Handle("/auth/login", loginLimiter.Middleware(http.HandlerFunc(auth.LoginHandler))).Methods(http.MethodPost)
	api.Handle("/auth/refresh", loginLimiter.Middleware(http.HandlerFunc(auth.RefreshHandler))).Methods(http.MethodPost)
	api.Handle("/auth/logout", userLimiter.Middleware(http.HandlerFunc(auth.LogoutHandler))).Methods(http.MethodPost)

	// Forgot password
	api.Handle("/auth/forgot-password", loginLimiter.Middleware(http.HandlerFunc(auth.ForgotPasswordHandler))).Methods(http.MethodPost)
	api.Handle("/auth/reset-password", loginLimiter.Middleware(http.HandlerFunc(auth.ResetPasswordHandler))).Methods(http.MethodPost)

	// Profile
	api.Handle("/users/info", authed(users.InfoHandler)).Methods(http.MethodGet)
	api.Handle("/users/profile", authed(users.UpdateProfileHandler)).Methods(http.MethodPut)
	api.Handle("/users/change-password", authed(users.ChangePasswordHandler)).Methods(http.MethodPost)

	// Wallet requests
	api.Handle("/users/deposit", authed(users.SubmitDepositHandler)).Methods(http.MethodPost)
	api.Handle("/users/deposit", authed(users.ListDepositsHandler)).Methods(http.MethodGet)
	api.Handle("/users/withdrawal/quote", authed(users.QuoteHandler)).Methods(http.MethodGet)
	api.Handle("/users/withdrawal", authed(users.SubmitWithdrawalHandler)).Methods(http.MethodPost)
	api.Handle("/users/withdrawal", authed(users.ListWithdrawalsHandler)).Methods(http.MethodGet)

	// Referrals and team
	api.Handle("/users/referrals", authed(users.ReferralHandler)).Methods(http.MethodGet)
	api.Handle("/users/team", authed(users.TeamHandler)).Methods(http.MethodGet)
	api.Handle("/users/team/{level:[0-9]+}", authed(users.TeamLevelHandler)).Methods(http.MethodGet)
	api.Handle("/users/ranks", authed(users.RanksHandler)).Methods(http.MethodGet)

	// Earnings and notifications
	api.Handle("/users/profits", authed(users.ProfitsHandler)).Methods(http.MethodGet)
	api.Handle("/users/notifications", authed(users.NotificationsHandler)).Methods(http.MethodGet)
}
