package analytics

import (
	"github.com/2beens/squashcoach/internal/coaching/messages"
)

var stressTerms = []string{
	"스트레스", "불안", "걱정", "우울", "짜증", "긴장",
	"stress", "anxious", "anxiety", "worried", "overwhelmed", "nervous",
}

// AnalyzeHealth combines sleep quality, journal stress signals and training load into
// a 0-100 health score with nutrition and recovery recommendations.
func (e *Engine) AnalyzeHealth(logs []WorkoutLog, memos []Memo) HealthResult {
	t := e.thresholds
	window := recentLogs(logs, t.HealthWindow)

	avgSleep := avgOf(window, sleep)
	score := 100 - (10-avgSleep)*3

	stressCount := 0
	for _, m := range memos {
		stressCount += countTerms(m.Content, stressTerms...)
	}
	stress := StressLow
	switch {
	case stressCount > t.StressHighCount:
		stress = StressHigh
		score -= t.StressHighPenalty
	case stressCount > t.StressMediumCount:
		stress = StressMedium
		score -= t.StressMediumPenalty
	}

	// protocol and advice both judge the reported score
	score = round1(clamp(score, 0, 100))

	nutrition := []messages.Message{}
	if avgSleep < t.LowSleepAvg {
		nutrition = append(nutrition, messages.New(messages.NutritionMagnesium))
	}
	hard := countOf(window, func(l WorkoutLog) bool { return l.IntensityRating > t.HardSessionIntensity })
	if hard > t.HardSessionCount {
		nutrition = append(nutrition,
			messages.New(messages.NutritionCarbProtein),
			messages.New(messages.NutritionProteinPerKg),
		)
	}

	recovery := []messages.Message{}
	if score < t.RecoveryScore {
		recovery = append(recovery,
			messages.New(messages.RecoveryMeditation),
			messages.New(messages.RecoveryFoamRolling),
			messages.New(messages.RecoveryScreenCurfew),
		)
	}
	if stress == StressHigh {
		recovery = append(recovery,
			messages.New(messages.RecoveryYoga),
			messages.New(messages.RecoveryOutdoorWalk),
		)
	}

	return HealthResult{
		HealthScore:              score,
		AvgSleepQuality:          avgSleep,
		StressLevel:              stress,
		StressKeywordCount:       stressCount,
		NutritionRecommendations: nutrition,
		RecoveryProtocol:         recovery,
		SleepQualityTrend:        classifyTrend(weeklyBuckets(window, sleep), t.TrendDelta),
	}
}
