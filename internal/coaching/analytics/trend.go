package analytics

import (
	"math"

	"github.com/2beens/squashcoach/internal/coaching/messages"
)

// AnalyzeTrends classifies the weekly performance trend of the most recent logs,
// detects plateaus and projects progress a few weeks ahead.
func (e *Engine) AnalyzeTrends(logs []WorkoutLog) TrendResult {
	t := e.thresholds
	if len(logs) < t.MinHistoryLogs {
		return TrendResult{
			Trend:             TrendStable,
			RecommendedAction: messages.New(messages.TrendNeedMoreData),
			Buckets:           []WeeklyBucket{},
		}
	}

	recent := recentLogs(logs, t.TrendWindow)
	buckets := weeklyBuckets(recent, performance)
	trend := classifyTrend(buckets, t.TrendDelta)
	plateau := detectPlateau(buckets, t.PlateauBuckets, t.PlateauVariance)

	return TrendResult{
		Trend:             trend,
		PlateauDetected:   plateau,
		RecommendedAction: trendAction(trend, plateau),
		ProjectedProgress: projectProgress(buckets, t.ProjectionPeriods),
		Buckets:           buckets,
	}
}

func detectPlateau(buckets []WeeklyBucket, window int, maxVariance float64) bool {
	if window <= 0 || len(buckets) < window {
		return false
	}
	return variance(bucketValues(buckets[len(buckets)-window:])) < maxVariance
}

func trendAction(trend Trend, plateau bool) messages.Message {
	if plateau {
		return messages.New(messages.TrendActionPlateau)
	}
	switch trend {
	case TrendImproving:
		return messages.New(messages.TrendActionImproving)
	case TrendDeclining:
		return messages.New(messages.TrendActionDeclining)
	default:
		return messages.New(messages.TrendActionStable)
	}
}

// projectProgress compounds the average weekly growth rate of the last three
// buckets over the given number of periods, on a x10 scale.
func projectProgress(buckets []WeeklyBucket, periods int) int {
	if len(buckets) == 0 {
		return 0
	}

	tail := buckets
	if len(tail) > 3 {
		tail = tail[len(tail)-3:]
	}
	latest := tail[len(tail)-1].Value

	var rates []float64
	for i := 1; i < len(tail); i++ {
		base := tail[i-1].Value
		if base == 0 {
			continue
		}
		rates = append(rates, (tail[i].Value-base)/base)
	}
	if len(rates) == 0 {
		return int(math.Round(latest * 10))
	}

	projected := latest * math.Pow(1+mean(rates), float64(periods))
	return int(math.Round(projected * 10))
}
