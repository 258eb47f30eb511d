package analytics

import (
	"math"
	"sort"
	"strings"
	"time"
)

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// variance is the population variance.
func variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	sum := 0.0
	for _, v := range values {
		sum += (v - m) * (v - m)
	}
	return sum / float64(len(values))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// sortedLogs returns a chronologically sorted copy of logs.
func sortedLogs(logs []WorkoutLog) []WorkoutLog {
	sorted := make([]WorkoutLog, len(logs))
	copy(sorted, logs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].LoggedAt.Before(sorted[j].LoggedAt)
		}
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// recentLogs returns the last n logs in chronological order.
func recentLogs(logs []WorkoutLog, n int) []WorkoutLog {
	sorted := sortedLogs(logs)
	if n >= 0 && len(sorted) > n {
		return sorted[len(sorted)-n:]
	}
	return sorted
}

func avgOf(logs []WorkoutLog, metric func(WorkoutLog) float64) float64 {
	values := make([]float64, 0, len(logs))
	for _, l := range logs {
		values = append(values, metric(l))
	}
	return mean(values)
}

func countOf(logs []WorkoutLog, pred func(WorkoutLog) bool) int {
	count := 0
	for _, l := range logs {
		if pred(l) {
			count++
		}
	}
	return count
}

func intensity(l WorkoutLog) float64 { return float64(l.IntensityRating) }
func condition(l WorkoutLog) float64 { return float64(l.ConditionRating) }
func fatigue(l WorkoutLog) float64   { return float64(l.FatigueLevel) }
func sleep(l WorkoutLog) float64     { return float64(l.SleepQuality) }

func performance(l WorkoutLog) float64 {
	return (intensity(l) + condition(l)) / 2
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// weekStart returns the Monday of the ISO week containing t.
func weekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return dayStart(t).AddDate(0, 0, -offset)
}

// weeklyBuckets groups logs by ISO week and averages metric per week. Weeks without
// entries are omitted; buckets are ordered by week.
func weeklyBuckets(logs []WorkoutLog, metric func(WorkoutLog) float64) []WeeklyBucket {
	byWeek := make(map[time.Time][]float64)
	for _, l := range logs {
		week := weekStart(l.Date)
		byWeek[week] = append(byWeek[week], metric(l))
	}

	buckets := make([]WeeklyBucket, 0, len(byWeek))
	for week, values := range byWeek {
		buckets = append(buckets, WeeklyBucket{
			WeekStart: week,
			Value:     mean(values),
			Entries:   len(values),
		})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].WeekStart.Before(buckets[j].WeekStart)
	})
	return buckets
}

func bucketValues(buckets []WeeklyBucket) []float64 {
	values := make([]float64, len(buckets))
	for i, b := range buckets {
		values[i] = b.Value
	}
	return values
}

// classifyTrend compares the mean of the later half of the buckets with the earlier half.
func classifyTrend(buckets []WeeklyBucket, delta float64) Trend {
	if len(buckets) < 2 {
		return TrendStable
	}
	values := bucketValues(buckets)
	half := len(values) / 2
	diff := mean(values[half:]) - mean(values[:half])
	switch {
	case diff > delta:
		return TrendImproving
	case diff < -delta:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// countTerms counts case-insensitive occurrences of every term in text.
func countTerms(text string, terms ...string) int {
	text = strings.ToLower(text)
	count := 0
	for _, term := range terms {
		count += strings.Count(text, strings.ToLower(term))
	}
	return count
}

func containsAny(text string, terms ...string) bool {
	return countTerms(text, terms...) > 0
}
