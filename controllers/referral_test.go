package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fin2x/database"
	"fin2x/models"
	"fin2x/utils"

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

func TestReferralLookupHandler_KnownCode(t *testing.T) {
	db := setupTestDB(t)
	user := models.User{
		FirstName: "John", LastName: "Doe",
		Email: "john.doe@example.com", Password: "x",
		Role: models.RoleUser, ReferralCode: "johndoe123",
		Status: models.UserStatusActive, JoinDate: time.Now(),
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	rr := httptest.NewRecorder()
	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/v1/ref/johndoe123", nil),
		map[string]string{"code": "johndoe123"})
	ReferralLookupHandler(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rr.Code, rr.Body.String())
	}
	var resp utils.APIResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("data = %T, want object", resp.Data)
	}
	if data["referral_code"] != "johndoe123" {
		t.Fatalf("referral_code = %v, want johndoe123", data["referral_code"])
	}
	if data["referrer_name"] != "John Doe" {
		t.Fatalf("referrer_name = %v, want John Doe", data["referrer_name"])
	}
}

func TestReferralLookupHandler_UnknownCode(t *testing.T) {
	setupTestDB(t)

	rr := httptest.NewRecorder()
	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/v1/ref/nosuchcode", nil),
		map[string]string{"code": "nosuchcode"})
	ReferralLookupHandler(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404, body %s", rr.Code, rr.Body.String())
	}
}

func TestReferralLookupHandler_BlankCode(t *testing.T) {
	setupTestDB(t)

	rr := httptest.NewRecorder()
	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/v1/ref/%20", nil),
		map[string]string{"code": "  "})
	ReferralLookupHandler(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}
