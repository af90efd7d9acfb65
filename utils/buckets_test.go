package utils

import (
	"reflect"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewBucketWindow_Daily(t *testing.T) {
	now := time.Date(2023, time.October, 27, 15, 30, 0, 0, time.UTC)
	w, err := NewBucketWindow(PeriodDaily, now, time.Time{}, time.Time{})
	if err != nil {
		t.Fatal(err)
	}
	if len(w.Labels) != 7 {
		t.Fatalf("labels = %d, want 7", len(w.Labels))
	}
	if w.Labels[0] != "Oct 21" || w.Labels[6] != "Oct 27" {
		t.Fatalf("labels span = %s .. %s, want Oct 21 .. Oct 27", w.Labels[0], w.Labels[6])
	}

	got := w.Aggregate([]Record{
		{Date: date(2023, time.October, 21), Amount: 10}, // first bucket
		{Date: date(2023, time.October, 27), Amount: 5},  // last bucket
		{Date: date(2023, time.October, 20), Amount: 99}, // before the window
		{Date: date(2023, time.October, 28), Amount: 99}, // after the window
	})
	want := []float64{10, 0, 0, 0, 0, 0, 5}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("aggregate = %v, want %v", got, want)
	}
}

func TestNewBucketWindow_WeeklyFloorAssignment(t *testing.T) {
	now := time.Date(2023, time.October, 27, 9, 0, 0, 0, time.UTC)
	w, err := NewBucketWindow(PeriodWeekly, now, time.Time{}, time.Time{})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"3 Weeks Ago", "2 Weeks Ago", "Last Week", "This Week"}
	if !reflect.DeepEqual(w.Labels, want) {
		t.Fatalf("labels = %v, want %v", w.Labels, want)
	}

	got := w.Aggregate([]Record{
		{Date: date(2023, time.September, 30), Amount: 1}, // day 0, bucket 0
		{Date: date(2023, time.October, 6), Amount: 2},    // day 6, still bucket 0
		{Date: date(2023, time.October, 7), Amount: 4},    // day 7 rolls into bucket 1
		{Date: date(2023, time.October, 27), Amount: 8},   // day 27, bucket 3
	})
	if !reflect.DeepEqual(got, []float64{3, 4, 0, 8}) {
		t.Fatalf("aggregate = %v, want [3 4 0 8]", got)
	}
}

func TestNewBucketWindow_Monthly(t *testing.T) {
	now := time.Date(2023, time.October, 27, 12, 0, 0, 0, time.UTC)
	w, err := NewBucketWindow(PeriodMonthly, now, time.Time{}, time.Time{})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"May", "Jun", "Jul", "Aug", "Sep", "Oct"}
	if !reflect.DeepEqual(w.Labels, want) {
		t.Fatalf("labels = %v, want %v", w.Labels, want)
	}

	records := []Record{
		{Date: date(2023, time.May, 1), Amount: 100},
		{Date: date(2023, time.May, 31), Amount: 1},
		{Date: date(2023, time.October, 27), Amount: 50},
		{Date: date(2023, time.April, 30), Amount: 99}, // before the window
	}
	got := w.Aggregate(records)
	if !reflect.DeepEqual(got, []float64{101, 0, 0, 0, 0, 50}) {
		t.Fatalf("aggregate = %v", got)
	}

	// aggregating the same inputs again yields the same buckets
	again := w.Aggregate(records)
	if !reflect.DeepEqual(got, again) {
		t.Fatalf("second aggregation differs: %v vs %v", got, again)
	}
}

func TestNewBucketWindow_CustomShortRangeUsesDays(t *testing.T) {
	start := date(2023, time.October, 1)
	end := date(2023, time.October, 14)
	w, err := NewBucketWindow(PeriodCustom, end, start, end)
	if err != nil {
		t.Fatal(err)
	}
	if w.Interval != IntervalDay {
		t.Fatal("a 14-day span should bucket by day")
	}
	if len(w.Labels) != 14 {
		t.Fatalf("labels = %d, want 14", len(w.Labels))
	}
}

func TestNewBucketWindow_CustomWideRangeUsesWeeks(t *testing.T) {
	// Sunday Oct 1 through Tuesday Oct 31
	start := date(2023, time.October, 3)
	end := date(2023, time.October, 31)
	w, err := NewBucketWindow(PeriodCustom, end, start, end)
	if err != nil {
		t.Fatal(err)
	}
	if w.Interval != IntervalWeek {
		t.Fatal("a span over 14 days should bucket by week")
	}
	// Oct 3 2023 is a Tuesday; its week starts Sunday Oct 1
	if w.Labels[0] != "Oct 1-7" {
		t.Fatalf("first label = %s, want Oct 1-7", w.Labels[0])
	}

	got := w.Aggregate([]Record{
		{Date: date(2023, time.October, 2), Amount: 99}, // inside the first week but before the requested start
		{Date: date(2023, time.October, 3), Amount: 10}, // requested start itself
		{Date: date(2023, time.October, 8), Amount: 5},  // second week
	})
	if got[0] != 10 {
		t.Fatalf("bucket 0 = %v, want 10: records before the requested start are dropped", got[0])
	}
	if got[1] != 5 {
		t.Fatalf("bucket 1 = %v, want 5", got[1])
	}
}

func TestNewBucketWindow_InvalidPeriod(t *testing.T) {
	if _, err := NewBucketWindow(Period("yearly"), time.Now(), time.Time{}, time.Time{}); err == nil {
		t.Fatal("expected an error for an unknown period")
	}
}

func TestNewBucketWindow_CustomEndBeforeStart(t *testing.T) {
	if _, err := NewBucketWindow(PeriodCustom, time.Now(), date(2023, time.October, 10), date(2023, time.October, 1)); err == nil {
		t.Fatal("expected an error when end precedes start")
	}
}
