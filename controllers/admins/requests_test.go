package admins

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"fin2x/database"
	"fin2x/models"

	"github.com/gorilla/mux"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("test db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	database.DB = db
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, balance float64) models.User {
	t.Helper()
	user := models.User{
		FirstName: "Ana", LastName: "Silva",
		Email:         "ana@example.com",
		Password:      "x",
		Role:          models.RoleUser,
		ReferralCode:  "ana123",
		Status:        models.UserStatusActive,
		WalletBalance: balance,
		JoinDate:      time.Now(),
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func requestWithID(method, target string, body string, id uint) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	return mux.SetURLVars(req, map[string]string{"id": strconv.FormatUint(uint64(id), 10)})
}

func TestApproveDeposit_CreditsBalanceOnce(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 100)

	dep := models.DepositRequest{
		OrderID: "FIN-AAAA00000001", UserID: user.ID, UserEmail: user.Email,
		Amount: 250, TransactionID: "0xabc123",
		Status: models.StatusPending, Date: time.Now(),
	}
	if err := db.Create(&dep).Error; err != nil {
		t.Fatalf("create deposit: %v", err)
	}

	rr := httptest.NewRecorder()
	ApproveDeposit(rr, requestWithID(http.MethodPost, "/v1/admins/deposits/1/approve", "", dep.ID))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rr.Code, rr.Body.String())
	}

	var got models.User
	db.First(&got, user.ID)
	if got.WalletBalance != 350 {
		t.Fatalf("wallet_balance = %v, want 350", got.WalletBalance)
	}
	if got.TotalInvested != 250 {
		t.Fatalf("total_invested = %v, want 250", got.TotalInvested)
	}

	// The request is now terminal; a second approve must be rejected and the
	// balance must not move again.
	rr2 := httptest.NewRecorder()
	ApproveDeposit(rr2, requestWithID(http.MethodPost, "/v1/admins/deposits/1/approve", "", dep.ID))
	if rr2.Code != http.StatusBadRequest {
		t.Fatalf("second approve status = %d, want 400", rr2.Code)
	}
	db.First(&got, user.ID)
	if got.WalletBalance != 350 {
		t.Fatalf("wallet_balance after double approve = %v, want 350", got.WalletBalance)
	}
}

func TestDeclineDeposit_NotifiesUserWithReason(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 100)

	dep := models.DepositRequest{
		OrderID: "FIN-BBBB00000001", UserID: user.ID, UserEmail: user.Email,
		Amount: 80, TransactionID: "0xdef456",
		Status: models.StatusPending, Date: time.Now(),
	}
	if err := db.Create(&dep).Error; err != nil {
		t.Fatalf("create deposit: %v", err)
	}

	rr := httptest.NewRecorder()
	DeclineDeposit(rr, requestWithID(http.MethodPost, "/v1/admins/deposits/1/decline",
		`{"reason":"Transaction hash not found on chain"}`, dep.ID))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rr.Code, rr.Body.String())
	}

	var gotDep models.DepositRequest
	db.First(&gotDep, dep.ID)
	if gotDep.Status != models.StatusDeclined {
		t.Fatalf("status = %q, want declined", gotDep.Status)
	}

	var note models.Notification
	if err := db.Where("user_id = ?", user.ID).First(&note).Error; err != nil {
		t.Fatalf("expected an addressed notification: %v", err)
	}
	if !strings.Contains(note.Content, "Transaction hash not found on chain") {
		t.Fatalf("notification content %q missing the decline reason", note.Content)
	}
	if !strings.Contains(note.Content, dep.OrderID) {
		t.Fatalf("notification content %q missing the order id", note.Content)
	}

	var got models.User
	db.First(&got, user.ID)
	if got.WalletBalance != 100 {
		t.Fatalf("decline must not touch the balance, got %v", got.WalletBalance)
	}

	// Declined is terminal too.
	rr2 := httptest.NewRecorder()
	ApproveDeposit(rr2, requestWithID(http.MethodPost, "/v1/admins/deposits/1/approve", "", dep.ID))
	if rr2.Code != http.StatusBadRequest {
		t.Fatalf("approve after decline status = %d, want 400", rr2.Code)
	}
}

func TestApproveWithdrawal_DebitsBalanceOnce(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 1000)

	wd := models.WithdrawalRequest{
		OrderID: "FIN-CCCC00000001", UserID: user.ID, UserEmail: user.Email,
		Amount: 200, FeePercent: 6, Fee: 12, NetAmount: 188,
		WalletName: "Binance", WalletAddress: "0xAbC123", Network: "BEP20",
		Status: models.StatusPending, Date: time.Now(),
	}
	if err := db.Create(&wd).Error; err != nil {
		t.Fatalf("create withdrawal: %v", err)
	}

	rr := httptest.NewRecorder()
	ApproveWithdrawal(rr, requestWithID(http.MethodPost, "/v1/admins/withdrawals/1/approve", "", wd.ID))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rr.Code, rr.Body.String())
	}

	var got models.User
	db.First(&got, user.ID)
	if got.WalletBalance != 800 {
		t.Fatalf("wallet_balance = %v, want 800", got.WalletBalance)
	}
	if got.TotalWithdrawal != 200 {
		t.Fatalf("total_withdrawal = %v, want 200", got.TotalWithdrawal)
	}

	rr2 := httptest.NewRecorder()
	ApproveWithdrawal(rr2, requestWithID(http.MethodPost, "/v1/admins/withdrawals/1/approve", "", wd.ID))
	if rr2.Code != http.StatusBadRequest {
		t.Fatalf("second approve status = %d, want 400", rr2.Code)
	}
	db.First(&got, user.ID)
	if got.WalletBalance != 800 {
		t.Fatalf("wallet_balance after double approve = %v, want 800", got.WalletBalance)
	}
}
