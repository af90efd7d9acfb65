package users

import (
	"testing"
	"time"

	"fin2x/models"
)

func TestCommissionTotals(t *testing.T) {
	now := time.Date(2023, 10, 27, 15, 0, 0, 0, time.Local)
	today := time.Date(2023, 10, 27, 9, 30, 0, 0, time.Local)
	yesterday := time.Date(2023, 10, 26, 18, 0, 0, 0, time.Local)

	records := []models.Commission{
		{Date: today, Amount: 50.00},
		{Date: today, Amount: 12.50},
		{Date: yesterday, Amount: 7.50},
	}

	total, todaySum := commissionTotals(records, now)
	if total != 70.00 {
		t.Fatalf("total = %v, want 70.00", total)
	}
	if todaySum != 62.50 {
		t.Fatalf("today = %v, want 62.50", todaySum)
	}
}

func TestCommissionTotals_MidnightBoundary(t *testing.T) {
	now := time.Date(2023, 10, 27, 0, 30, 0, 0, time.Local)
	midnight := time.Date(2023, 10, 27, 0, 0, 0, 0, time.Local)
	justBefore := midnight.Add(-time.Second)

	records := []models.Commission{
		{Date: midnight, Amount: 10},
		{Date: justBefore, Amount: 5},
	}

	total, today := commissionTotals(records, now)
	if total != 15 {
		t.Fatalf("total = %v, want 15", total)
	}
	if today != 10 {
		t.Fatalf("today = %v, want 10: entries at exactly midnight count as today", today)
	}
}

func TestCommissionTotals_FutureDateExcluded(t *testing.T) {
	now := time.Date(2023, 10, 27, 15, 0, 0, 0, time.Local)
	tomorrow := time.Date(2023, 10, 28, 0, 0, 0, 0, time.Local)

	records := []models.Commission{
		{Date: now, Amount: 20},
		{Date: tomorrow, Amount: 100},
	}

	total, today := commissionTotals(records, now)
	if total != 120 {
		t.Fatalf("total = %v, want 120", total)
	}
	if today != 20 {
		t.Fatalf("today = %v, want 20: entries dated past today are not today's", today)
	}
}

func TestCommissionTotals_Empty(t *testing.T) {
	total, today := commissionTotals(nil, time.Now())
	if total != 0 || today != 0 {
		t.Fatalf("empty records should yield zero totals, got %v / %v", total, today)
	}
}
