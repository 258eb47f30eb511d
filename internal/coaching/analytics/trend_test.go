package analytics_test

import (
	"testing"

	"github.com/2beens/squashcoach/internal/coaching/analytics"
	"github.com/2beens/squashcoach/internal/coaching/messages"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeTrends_NotEnoughData(t *testing.T) {
	engine := newTestEngine()

	for _, n := range []int{0, 1, 9} {
		res := engine.AnalyzeTrends(dailyLogs(n, nil))
		assert.Equal(t, analytics.TrendStable, res.Trend)
		assert.False(t, res.PlateauDetected)
		assert.Equal(t, 0, res.ProjectedProgress)
		assert.Equal(t, messages.TrendNeedMoreData, res.RecommendedAction.Key)
		assert.Empty(t, res.Buckets)
	}
}

func TestAnalyzeTrends_Improving(t *testing.T) {
	engine := newTestEngine()
	// four full ISO weeks with weekly performance 3, 5, 7, 9
	logs := dailyLogs(28, func(i int, l *analytics.WorkoutLog) {
		v := 3 + (i/7)*2
		l.IntensityRating = v
		l.ConditionRating = v
	})

	res := engine.AnalyzeTrends(logs)
	require.Len(t, res.Buckets, 4)
	assert.Equal(t, analytics.TrendImproving, res.Trend)
	assert.False(t, res.PlateauDetected)
	assert.Equal(t, messages.TrendActionImproving, res.RecommendedAction.Key)
	assert.InDelta(t, 3.0, res.Buckets[0].Value, 0.0001)
	assert.InDelta(t, 9.0, res.Buckets[3].Value, 0.0001)
	assert.Equal(t, 7, res.Buckets[0].Entries)
	// growth of the last three weeks compounded over four periods
	assert.Equal(t, 293, res.ProjectedProgress)
}

func TestAnalyzeTrends_Declining(t *testing.T) {
	engine := newTestEngine()
	logs := dailyLogs(28, func(i int, l *analytics.WorkoutLog) {
		v := 9 - (i/7)*2
		l.IntensityRating = v
		l.ConditionRating = v
	})

	res := engine.AnalyzeTrends(logs)
	assert.Equal(t, analytics.TrendDeclining, res.Trend)
	assert.False(t, res.PlateauDetected)
	assert.Equal(t, messages.TrendActionDeclining, res.RecommendedAction.Key)
	assert.Less(t, res.ProjectedProgress, 30)
}

func TestAnalyzeTrends_Plateau(t *testing.T) {
	engine := newTestEngine()
	logs := dailyLogs(28, nil)

	res := engine.AnalyzeTrends(logs)
	assert.Equal(t, analytics.TrendStable, res.Trend)
	assert.True(t, res.PlateauDetected)
	assert.Equal(t, messages.TrendActionPlateau, res.RecommendedAction.Key)
	assert.Equal(t, 60, res.ProjectedProgress)
}

func TestAnalyzeTrends_PlateauNeedsFourWeeks(t *testing.T) {
	engine := newTestEngine()
	// 14 days spread over exactly two ISO weeks
	logs := dailyLogs(14, nil)

	res := engine.AnalyzeTrends(logs)
	require.Len(t, res.Buckets, 2)
	assert.False(t, res.PlateauDetected)
	assert.Equal(t, messages.TrendActionStable, res.RecommendedAction.Key)
}

func TestAnalyzeTrends_UsesMostRecentEntries(t *testing.T) {
	engine := newTestEngine()
	// 20 old entries with poor ratings are outside the 28 entry window
	logs := dailyLogs(48, func(i int, l *analytics.WorkoutLog) {
		if i < 20 {
			l.IntensityRating = 1
			l.ConditionRating = 1
		}
	})

	res := engine.AnalyzeTrends(logs)
	assert.Equal(t, analytics.TrendStable, res.Trend)
	assert.True(t, res.PlateauDetected)
}

func TestAnalyzeTrends_BalancedRatingsArePlateau(t *testing.T) {
	engine := newTestEngine()
	faker := gofakeit.New(7)

	for run := 0; run < 20; run++ {
		// intensity and condition move in opposite directions, performance stays at 6
		logs := dailyLogs(28, func(i int, l *analytics.WorkoutLog) {
			delta := faker.IntRange(-1, 1)
			l.IntensityRating = 6 + delta
			l.ConditionRating = 6 - delta
		})

		res := engine.AnalyzeTrends(logs)
		assert.True(t, res.PlateauDetected)
		assert.Equal(t, analytics.TrendStable, res.Trend)
	}
}

func TestAnalyzeTrends_DoesNotMutateInput(t *testing.T) {
	engine := newTestEngine()
	logs := dailyLogs(20, func(i int, l *analytics.WorkoutLog) {
		l.IntensityRating = 1 + i%10
	})
	reversed := make([]analytics.WorkoutLog, len(logs))
	for i := range logs {
		reversed[len(logs)-1-i] = logs[i]
	}
	snapshot := make([]analytics.WorkoutLog, len(reversed))
	copy(snapshot, reversed)

	assert.Equal(t, engine.AnalyzeTrends(logs), engine.AnalyzeTrends(reversed))
	assert.Equal(t, snapshot, reversed)
}
