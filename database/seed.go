package database

import (
	"time"

	"fin2x/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.DepositRequest{},
		&models.WithdrawalRequest{},
		&models.Notification{},
		&models.Commission{},
		&models.ProfitEntry{},
		&models.Setting{},
		&models.RefreshToken{},
		&models.PasswordOTP{},
	)
}

// Seed loads the demo dataset into a fresh store. The store lives in memory,
// so this runs on every boot; the guard only protects against a second call
// within the same process.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	userPass, err := bcrypt.GenerateFromPassword([]byte(getenv("SEED_USER_PASSWORD", "password123")), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	adminPass, err := bcrypt.GenerateFromPassword([]byte(getenv("SEED_ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.Setting{
			Name:             "FIN2X",
			MinWithdraw:      models.MinWithdraw,
			BaseFeePercent:   models.BaseFeePercent,
			HighFeePercent:   models.HighFeePercent,
			HighFeeThreshold: models.HighFeeThreshold,
		}).Error; err != nil {
			return err
		}

		admin := models.User{
			FirstName: "Admin", LastName: "User",
			Email: "admin@example.com", Phone: "987-654-3210",
			Password: string(adminPass), Role: models.RoleAdmin,
			ReferralCode: "admin", Status: models.UserStatusActive,
			JoinDate: date(2023, 1, 1),
		}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}

		john := models.User{
			FirstName: "John", LastName: "Doe",
			Email: "john.doe@example.com", Phone: "123-456-7890",
			Password: string(userPass), Role: models.RoleUser,
			ReferralCode: "johndoe123", Status: models.UserStatusActive,
			WalletBalance: 1250.75, TotalInvested: 5000,
			TeamSize: 137, TeamInvested: 41500, TotalWithdrawal: 1500,
			DailyProfit: 15.50, TotalProfit: 1850.25,
			JoinDate: date(2023, 10, 1),
		}
		if err := tx.Create(&john).Error; err != nil {
			return err
		}

		jane := models.User{
			FirstName: "Jane", LastName: "Smith",
			Email: "jane.smith@example.com", Phone: "123-555-7891",
			Password: string(userPass), Role: models.RoleUser,
			ReferralCode: "janesmith456", ReferredBy: &john.ID,
			Status:        models.UserStatusActive,
			WalletBalance: 3450.00, TotalInvested: 10000,
			TeamSize: 250, TeamInvested: 80000, TotalWithdrawal: 4000,
			DailyProfit: 30.00, TotalProfit: 3200.00,
			JoinDate: date(2023, 9, 15),
		}
		if err := tx.Create(&jane).Error; err != nil {
			return err
		}

		peter := models.User{
			FirstName: "Peter", LastName: "Jones",
			Email: "peter.j@example.com", Phone: "234-567-8901",
			Password: string(userPass), Role: models.RoleUser,
			ReferralCode: "peterj789", ReferredBy: &john.ID,
			Status:        models.UserStatusActive,
			WalletBalance: 800.50, TotalInvested: 1500,
			TeamSize: 50, TeamInvested: 12000, TotalWithdrawal: 200,
			DailyProfit: 5.00, TotalProfit: 250.75,
			JoinDate: date(2023, 10, 10),
		}
		if err := tx.Create(&peter).Error; err != nil {
			return err
		}

		susan := models.User{
			FirstName: "Susan", LastName: "Boyle",
			Email: "susan.b@example.com", Phone: "345-678-9012",
			Password: string(userPass), Role: models.RoleUser,
			ReferralCode: "susanb101", ReferredBy: &jane.ID,
			Status:        models.UserStatusActive,
			WalletBalance: 0, TotalInvested: 30000,
			TeamSize: 500, TeamInvested: 250000, TotalWithdrawal: 10000,
			DailyProfit: 70.00, TotalProfit: 8500.00,
			JoinDate: date(2023, 9, 20),
		}
		if err := tx.Create(&susan).Error; err != nil {
			return err
		}

		mike := models.User{
			FirstName: "Mike", LastName: "Tyson",
			Email: "mike.t@example.com", Phone: "456-789-0123",
			Password: string(userPass), Role: models.RoleUser,
			ReferralCode: "miket202", ReferredBy: &john.ID,
			Status:   models.UserStatusPending,
			JoinDate: date(2023, 10, 28),
		}
		if err := tx.Create(&mike).Error; err != nil {
			return err
		}

		deposits := []models.DepositRequest{
			{OrderID: "FIN-D1A2B3C4D5E6", UserID: jane.ID, UserEmail: jane.Email, Amount: 500, TransactionID: "0x123abc", Screenshot: "https://placehold.co/600x400/png?text=Screenshot+1", Status: models.StatusPending, Date: date(2023, 10, 27)},
			{OrderID: "FIN-D2B3C4D5E6F7", UserID: peter.ID, UserEmail: peter.Email, Amount: 1000, TransactionID: "0x456def", Screenshot: "https://placehold.co/600x400/png?text=Screenshot+2", Status: models.StatusApproved, Date: date(2023, 10, 26)},
			{OrderID: "FIN-D3C4D5E6F7A8", UserID: susan.ID, UserEmail: susan.Email, Amount: 250, TransactionID: "0x789ghi", Screenshot: "https://placehold.co/600x400/png?text=Screenshot+3", Status: models.StatusDeclined, Date: date(2023, 10, 26)},
			{OrderID: "FIN-D4D5E6F7A8B9", UserID: john.ID, UserEmail: john.Email, Amount: 2000, TransactionID: "0x012jkl", Screenshot: "https://placehold.co/600x400/png?text=Screenshot+4", Status: models.StatusPending, Date: date(2023, 10, 28)},
		}
		if err := tx.Create(&deposits).Error; err != nil {
			return err
		}

		withdrawals := []models.WithdrawalRequest{
			{OrderID: "FIN-W1A2B3C4D5E6", UserID: john.ID, UserEmail: john.Email, Amount: 200, FeePercent: 6, Fee: 12, NetAmount: 188, WalletName: "Binance", WalletAddress: "0xAbC123DeF456GhI789JkL012MnOpQ345RsT678Uv", Network: "BEP20", Status: models.StatusPending, Date: date(2023, 10, 28)},
			{OrderID: "FIN-W2B3C4D5E6F7", UserID: jane.ID, UserEmail: jane.Email, Amount: 1000, FeePercent: 6, Fee: 60, NetAmount: 940, WalletName: "Trust Wallet", WalletAddress: "0x123AbcDef456GhI789jKl012mNoPqR345sT678uV", Network: "ERC20", Status: models.StatusApproved, Date: date(2023, 10, 27)},
			{OrderID: "FIN-W3C4D5E6F7A8", UserID: susan.ID, UserEmail: susan.Email, Amount: 500, FeePercent: 6, Fee: 30, NetAmount: 470, WalletName: "Metamask", WalletAddress: "0x789gHiJkL012mNoPqR345sT678uV123AbcDef456", Network: "BEP20", Status: models.StatusDeclined, Date: date(2023, 10, 26)},
		}
		if err := tx.Create(&withdrawals).Error; err != nil {
			return err
		}

		notifications := []models.Notification{
			{Title: "System Maintenance Scheduled", Content: "We will be undergoing scheduled maintenance on Sunday at 2 AM UTC. The platform may be temporarily unavailable.", Date: date(2023, 10, 25)},
			{Title: "New Rank Rewards Added!", Content: "Check out the Ranks & Rewards page for exciting new bonuses for our top performers. Keep growing your network!", Date: date(2023, 10, 22)},
		}
		if err := tx.Create(&notifications).Error; err != nil {
			return err
		}

		commissions := []models.Commission{
			{UserID: john.ID, Date: date(2023, 10, 27), FromUser: "Jane Smith", Level: 1, Amount: 50.00},
			{UserID: john.ID, Date: date(2023, 10, 26), FromUser: "A. Friend (L2)", Level: 2, Amount: 12.50},
			{UserID: john.ID, Date: date(2023, 10, 25), FromUser: "B. Friend (L2)", Level: 2, Amount: 15.00},
			{UserID: john.ID, Date: date(2023, 10, 24), FromUser: "Peter Jones", Level: 1, Amount: 7.50},
			{UserID: john.ID, Date: date(2023, 10, 23), FromUser: "C. Indirect (L3)", Level: 3, Amount: 8.00},
			{UserID: john.ID, Date: date(2023, 10, 22), FromUser: "D. Indirect (L4)", Level: 4, Amount: 5.50},
			{UserID: john.ID, Date: date(2023, 10, 21), FromUser: "E. Indirect (L5)", Level: 5, Amount: 2.75},
			{UserID: jane.ID, Date: date(2023, 10, 21), FromUser: "Susan Boyle", Level: 1, Amount: 120.00},
		}
		if err := tx.Create(&commissions).Error; err != nil {
			return err
		}

		profits := []models.ProfitEntry{
			{UserID: john.ID, Date: date(2023, 10, 28), Amount: 15.50, Type: models.ProfitTypeDaily, Description: "Daily investment return"},
			{UserID: john.ID, Date: date(2023, 10, 27), Amount: 50.00, Type: models.ProfitTypeReferral, Description: "From user jane.smith"},
			{UserID: john.ID, Date: date(2023, 10, 27), Amount: 15.50, Type: models.ProfitTypeDaily, Description: "Daily investment return"},
			{UserID: john.ID, Date: date(2023, 10, 26), Amount: 100.00, Type: models.ProfitTypeRank, Description: "Achieved Silver Rank"},
			{UserID: john.ID, Date: date(2023, 10, 26), Amount: 15.50, Type: models.ProfitTypeDaily, Description: "Daily investment return"},
			{UserID: jane.ID, Date: date(2023, 10, 28), Amount: 30.00, Type: models.ProfitTypeDaily, Description: "Daily investment return"},
			{UserID: jane.ID, Date: date(2023, 10, 28), Amount: 75.00, Type: models.ProfitTypeReferral, Description: "From user peter.j"},
			{UserID: jane.ID, Date: date(2023, 10, 27), Amount: 30.00, Type: models.ProfitTypeDaily, Description: "Daily investment return"},
			{UserID: jane.ID, Date: date(2023, 10, 25), Amount: 30.00, Type: models.ProfitTypeDaily, Description: "Daily investment return"},
			{UserID: peter.ID, Date: date(2023, 10, 28), Amount: 5.00, Type: models.ProfitTypeDaily, Description: "Daily investment return"},
			{UserID: peter.ID, Date: date(2023, 10, 26), Amount: 15.00, Type: models.ProfitTypeReferral, Description: "From new user"},
			{UserID: peter.ID, Date: date(2023, 10, 25), Amount: 5.00, Type: models.ProfitTypeDaily, Description: "Daily investment return"},
			{UserID: susan.ID, Date: date(2023, 10, 28), Amount: 70.00, Type: models.ProfitTypeDaily, Description: "Daily investment return"},
			{UserID: susan.ID, Date: date(2023, 10, 28), Amount: 250.00, Type: models.ProfitTypeRank, Description: "Achieved Gold Rank"},
			{UserID: susan.ID, Date: date(2023, 10, 27), Amount: 70.00, Type: models.ProfitTypeDaily, Description: "Daily investment return"},
			{UserID: susan.ID, Date: date(2023, 10, 27), Amount: 120.00, Type: models.ProfitTypeReferral, Description: "From 3 new members"},
		}
		return tx.Create(&profits).Error
	})
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}
