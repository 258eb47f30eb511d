package analytics

import (
	"github.com/2beens/squashcoach/internal/coaching/messages"
)

const (
	fatigueRiskPoints  = 3
	volumeRiskPoints   = 2
	sorenessRiskPoints = 2
	sleepRiskPoints    = 1

	highRiskRecoveryDays   = 3
	mediumRiskRecoveryDays = 1
)

// PredictInjuryRisk scores fatigue, load progression, soreness and sleep over the
// most recent logs and maps the score to a risk tier.
func (e *Engine) PredictInjuryRisk(logs []WorkoutLog) InjuryRiskResult {
	t := e.thresholds
	window := recentLogs(logs, t.RiskWindow)

	score := 0
	factors := []messages.Message{}
	measures := []messages.Message{}
	add := func(points int, factor, measure messages.Key) {
		score += points
		factors = append(factors, messages.New(factor))
		measures = append(measures, messages.New(measure))
	}

	if len(window) > 0 && avgOf(window, fatigue) > t.RiskFatigueAvg {
		add(fatigueRiskPoints, messages.RiskFactorFatigue, messages.RiskMeasureFatigue)
	}

	if volumeIncreasePct(window) > t.RiskVolumePct {
		add(volumeRiskPoints, messages.RiskFactorVolume, messages.RiskMeasureVolume)
	}

	sore := countOf(window, func(l WorkoutLog) bool { return l.MuscleSoreness > t.RiskSorenessLevel })
	if sore > t.RiskSorenessCount {
		add(sorenessRiskPoints, messages.RiskFactorSoreness, messages.RiskMeasureSoreness)
	}

	poorSleep := countOf(window, func(l WorkoutLog) bool { return l.SleepQuality < t.RiskSleepLevel })
	if poorSleep > t.RiskSleepCount {
		add(sleepRiskPoints, messages.RiskFactorSleep, messages.RiskMeasureSleep)
	}

	result := InjuryRiskResult{
		RiskLevel:   RiskLow,
		Score:       score,
		RiskFactors: factors,
	}
	switch {
	case score >= t.RiskHighScore:
		result.RiskLevel = RiskHigh
		result.RecoveryDays = highRiskRecoveryDays
		measures = append([]messages.Message{messages.New(messages.RiskMeasureFullRest)}, measures...)
	case score >= t.RiskMediumScore:
		result.RiskLevel = RiskMedium
		result.RecoveryDays = mediumRiskRecoveryDays
		measures = append([]messages.Message{messages.New(messages.RiskMeasureReduceIntense)}, measures...)
	}
	result.PreventiveMeasures = measures

	return result
}

// volumeIncreasePct compares completed sessions in the first seven logs of the window
// with the next seven. It reports 0 when the earlier half has no completed session.
func volumeIncreasePct(window []WorkoutLog) float64 {
	const half = 7
	if len(window) <= half {
		return 0
	}
	end := min(len(window), 2*half)
	completed := func(l WorkoutLog) bool { return l.Completed }
	first := countOf(window[:half], completed)
	second := countOf(window[half:end], completed)
	if first == 0 {
		return 0
	}
	return float64(second-first) / float64(first) * 100
}
