package utils

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Calendar bucketing for the dashboard charts. All date math is done at
// local midnight, matching how record dates are stored. Windows are pure
// values: aggregating the same records over the same window twice yields the
// same result.

type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodCustom  Period = "custom"
)

type Interval int

const (
	IntervalDay Interval = iota
	IntervalWeek
	IntervalMonth
)

var ErrInvalidPeriod = errors.New("invalid period")

// BucketWindow is a fixed set of labeled time buckets. Start is the origin
// used for index arithmetic; records outside [Start, End] are dropped.
type BucketWindow struct {
	Start    time.Time
	End      time.Time
	Interval Interval
	Labels   []string

	// filterStart, when set, narrows the drop filter without moving the
	// index origin (custom weekly windows begin mid-week).
	filterStart time.Time
}

// Record is a dated value to be bucketed. Use Amount 1 to count events.
type Record struct {
	Date   time.Time
	Amount float64
}

// DayStart normalizes a time to local midnight.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NewBucketWindow builds the bucket set for a period relative to now.
// customStart/customEnd are only read when period is PeriodCustom.
//
//   - daily: 7 one-day buckets spanning [now-6d, now]
//   - weekly: 4 seven-day buckets spanning the last 28 days
//   - monthly: 6 calendar months ending with the current month
//   - custom: day buckets when the inclusive span is 14 days or fewer,
//     otherwise Sunday-start week buckets covering the range
func NewBucketWindow(period Period, now, customStart, customEnd time.Time) (BucketWindow, error) {
	today := DayStart(now)

	switch period {
	case PeriodDaily:
		w := BucketWindow{
			Start:    today.AddDate(0, 0, -6),
			End:      today,
			Interval: IntervalDay,
		}
		for i := 0; i < 7; i++ {
			w.Labels = append(w.Labels, w.Start.AddDate(0, 0, i).Format("Jan 2"))
		}
		return w, nil

	case PeriodWeekly:
		return BucketWindow{
			Start:    today.AddDate(0, 0, -27),
			End:      today,
			Interval: IntervalWeek,
			Labels:   []string{"3 Weeks Ago", "2 Weeks Ago", "Last Week", "This Week"},
		}, nil

	case PeriodMonthly:
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		w := BucketWindow{
			Start:    first.AddDate(0, -5, 0),
			End:      today,
			Interval: IntervalMonth,
		}
		for i := 0; i < 6; i++ {
			w.Labels = append(w.Labels, w.Start.AddDate(0, i, 0).Format("Jan"))
		}
		return w, nil

	case PeriodCustom:
		start := DayStart(customStart)
		end := DayStart(customEnd)
		if end.Before(start) {
			return BucketWindow{}, errors.New("end date before start date")
		}
		span := daysBetween(start, end)
		if span <= 14 {
			w := BucketWindow{Start: start, End: end, Interval: IntervalDay}
			for i := 0; i <= span; i++ {
				w.Labels = append(w.Labels, start.AddDate(0, 0, i).Format("Jan 2"))
			}
			return w, nil
		}
		// Wider ranges bucket by calendar week, Sunday start. The index
		// origin is the start week so labels and assignment agree.
		weekStart := start.AddDate(0, 0, -int(start.Weekday()))
		w := BucketWindow{Start: weekStart, End: end, Interval: IntervalWeek}
		for cur := weekStart; !cur.After(end); cur = cur.AddDate(0, 0, 7) {
			weekEnd := cur.AddDate(0, 0, 6)
			w.Labels = append(w.Labels, fmt.Sprintf("%s-%s", cur.Format("Jan 2"), weekEnd.Format("2")))
		}
		// Records still filter from the requested start, not the week start.
		w.filterStart = start
		return w, nil

	default:
		return BucketWindow{}, ErrInvalidPeriod
	}
}

// Aggregate sums record amounts into the window's buckets. A record landing
// exactly on a bucket boundary belongs to the bucket it starts, by floor
// division of the elapsed time.
func (w BucketWindow) Aggregate(records []Record) []float64 {
	out := make([]float64, len(w.Labels))
	from := w.Start
	if !w.filterStart.IsZero() {
		from = w.filterStart
	}
	for _, rec := range records {
		d := DayStart(rec.Date)
		if d.Before(from) || d.After(w.End) {
			continue
		}
		var idx int
		switch w.Interval {
		case IntervalDay:
			idx = daysBetween(w.Start, d)
		case IntervalWeek:
			idx = daysBetween(w.Start, d) / 7
		case IntervalMonth:
			idx = (d.Year()-w.Start.Year())*12 + int(d.Month()) - int(w.Start.Month())
		}
		if idx >= 0 && idx < len(out) {
			out[idx] += rec.Amount
		}
	}
	return out
}

// daysBetween counts whole days from a to b, both at local midnight.
// Rounding absorbs DST transitions that make a day 23 or 25 hours.
func daysBetween(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / 24))
}
