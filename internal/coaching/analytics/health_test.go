package analytics_test

import (
	"testing"

	"github.com/2beens/squashcoach/internal/coaching/analytics"
	"github.com/2beens/squashcoach/internal/coaching/messages"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeHealth_Healthy(t *testing.T) {
	engine := newTestEngine()

	res := engine.AnalyzeHealth(dailyLogs(14, nil), memos("good session"))
	assert.Equal(t, 91.0, res.HealthScore)
	assert.InDelta(t, 7.0, res.AvgSleepQuality, 0.0001)
	assert.Equal(t, analytics.StressLow, res.StressLevel)
	assert.Empty(t, res.NutritionRecommendations)
	assert.Empty(t, res.RecoveryProtocol)
	assert.Equal(t, analytics.TrendStable, res.SleepQualityTrend)
}

func TestAnalyzeHealth_PoorSleep(t *testing.T) {
	engine := newTestEngine()
	logs := dailyLogs(14, func(i int, l *analytics.WorkoutLog) {
		l.SleepQuality = 4
	})

	res := engine.AnalyzeHealth(logs, nil)
	assert.Equal(t, 82.0, res.HealthScore)
	assert.Equal(t, []messages.Message{messages.New(messages.NutritionMagnesium)}, res.NutritionRecommendations)
	assert.Empty(t, res.RecoveryProtocol)
}

func TestAnalyzeHealth_HighStress(t *testing.T) {
	engine := newTestEngine()
	logs := dailyLogs(14, func(i int, l *analytics.WorkoutLog) {
		l.SleepQuality = 2
	})
	journal := memos("스트레스 스트레스 불안", "걱정이 많다, stress and nervous")

	res := engine.AnalyzeHealth(logs, journal)
	assert.Equal(t, 6, res.StressKeywordCount)
	assert.Equal(t, analytics.StressHigh, res.StressLevel)
	assert.Equal(t, 56.0, res.HealthScore)
	assert.Equal(t, []messages.Message{
		messages.New(messages.RecoveryMeditation),
		messages.New(messages.RecoveryFoamRolling),
		messages.New(messages.RecoveryScreenCurfew),
		messages.New(messages.RecoveryYoga),
		messages.New(messages.RecoveryOutdoorWalk),
	}, res.RecoveryProtocol)
}

func TestAnalyzeHealth_RecoveryAgreesWithAdvice(t *testing.T) {
	thresholds := analytics.DefaultThresholds()
	// 62.857 before rounding, 62.9 reported
	thresholds.RecoveryScore = 62.88
	thresholds.AdviceHealth = 62.88
	engine := analytics.NewEngine(
		analytics.WithClock(analytics.FixedClock(testNow)),
		analytics.WithThresholds(thresholds),
	)
	logs := dailyLogs(14, func(i int, l *analytics.WorkoutLog) {
		l.SleepQuality = 4
		if i >= 10 {
			l.SleepQuality = 5
		}
	})
	journal := memos("스트레스 스트레스 불안", "걱정이 많다, stress and nervous")

	res := engine.AnalyzeHealth(logs, journal)
	require.Equal(t, analytics.StressHigh, res.StressLevel)
	assert.Equal(t, 62.9, res.HealthScore)
	assert.NotContains(t, res.RecoveryProtocol, messages.New(messages.RecoveryMeditation))

	for _, a := range engine.AnalyzeWorkoutData(logs, journal) {
		assert.NotEqual(t, analytics.AdviceHealth, a.Type)
	}

	// one step lower both fire
	thresholds.RecoveryScore = 63
	thresholds.AdviceHealth = 63
	engine = analytics.NewEngine(
		analytics.WithClock(analytics.FixedClock(testNow)),
		analytics.WithThresholds(thresholds),
	)
	res = engine.AnalyzeHealth(logs, journal)
	assert.Contains(t, res.RecoveryProtocol, messages.New(messages.RecoveryMeditation))
	healthAdvice := 0
	for _, a := range engine.AnalyzeWorkoutData(logs, journal) {
		if a.Type == analytics.AdviceHealth {
			healthAdvice++
		}
	}
	assert.Equal(t, 1, healthAdvice)
}

func TestAnalyzeHealth_MediumStress(t *testing.T) {
	engine := newTestEngine()

	res := engine.AnalyzeHealth(dailyLogs(14, nil), memos("stress", "긴장 짜증"))
	assert.Equal(t, analytics.StressMedium, res.StressLevel)
	assert.Equal(t, 81.0, res.HealthScore)
}

func TestAnalyzeHealth_HardTrainingNutrition(t *testing.T) {
	engine := newTestEngine()
	logs := dailyLogs(14, func(i int, l *analytics.WorkoutLog) {
		l.IntensityRating = 8
	})

	res := engine.AnalyzeHealth(logs, nil)
	assert.Equal(t, []messages.Message{
		messages.New(messages.NutritionCarbProtein),
		messages.New(messages.NutritionProteinPerKg),
	}, res.NutritionRecommendations)
}

func TestAnalyzeHealth_NoLogs(t *testing.T) {
	engine := newTestEngine()

	res := engine.AnalyzeHealth(nil, nil)
	assert.Equal(t, 70.0, res.HealthScore)
	assert.Equal(t, 0.0, res.AvgSleepQuality)
	require.Len(t, res.NutritionRecommendations, 1)
	assert.Empty(t, res.RecoveryProtocol)
}

func TestAnalyzeHealth_SleepTrend(t *testing.T) {
	engine := newTestEngine()
	logs := dailyLogs(14, func(i int, l *analytics.WorkoutLog) {
		if i < 7 {
			l.SleepQuality = 4
		} else {
			l.SleepQuality = 8
		}
	})

	res := engine.AnalyzeHealth(logs, nil)
	assert.Equal(t, analytics.TrendImproving, res.SleepQualityTrend)
}

func TestAnalyzeHealth_ScoreAlwaysInRange(t *testing.T) {
	engine := newTestEngine()
	faker := gofakeit.New(11)
	stressWords := []string{"stress", "불안", "걱정", "nervous", "fine"}

	for run := 0; run < 100; run++ {
		logs := dailyLogs(faker.IntRange(0, 40), func(i int, l *analytics.WorkoutLog) {
			l.SleepQuality = faker.IntRange(0, 10)
			l.IntensityRating = faker.IntRange(0, 10)
		})
		var contents []string
		for i := faker.IntRange(0, 10); i > 0; i-- {
			contents = append(contents, faker.Sentence(5)+" "+faker.RandomString(stressWords))
		}

		res := engine.AnalyzeHealth(logs, memos(contents...))
		assert.GreaterOrEqual(t, res.HealthScore, 0.0)
		assert.LessOrEqual(t, res.HealthScore, 100.0)
	}
}
