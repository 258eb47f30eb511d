package analytics_test

import (
	"time"

	"github.com/2beens/squashcoach/internal/coaching/analytics"
)

// Monday.
var testNow = time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC)

func newTestEngine() *analytics.Engine {
	return analytics.NewEngine(analytics.WithClock(analytics.FixedClock(testNow)))
}

// dailyLogs returns n logs, one per day, ending the day before testNow.
func dailyLogs(n int, mutate func(i int, l *analytics.WorkoutLog)) []analytics.WorkoutLog {
	start := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -n)
	logs := make([]analytics.WorkoutLog, 0, n)
	for i := 0; i < n; i++ {
		date := start.AddDate(0, 0, i)
		l := analytics.WorkoutLog{
			ID:              i + 1,
			Date:            date,
			IntensityRating: 6,
			ConditionRating: 6,
			FatigueLevel:    4,
			MuscleSoreness:  3,
			SleepQuality:    7,
			Completed:       true,
			DurationMinutes: 60,
			Category:        "squash",
			LoggedAt:        date.Add(19 * time.Hour),
		}
		if mutate != nil {
			mutate(i, &l)
		}
		logs = append(logs, l)
	}
	return logs
}

func memos(contents ...string) []analytics.Memo {
	res := make([]analytics.Memo, 0, len(contents))
	for i, c := range contents {
		res = append(res, analytics.Memo{
			ID:      i + 1,
			Date:    testNow.AddDate(0, 0, -i),
			Content: c,
		})
	}
	return res
}
