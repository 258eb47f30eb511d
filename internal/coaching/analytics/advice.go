package analytics

import (
	"github.com/2beens/squashcoach/internal/coaching/messages"
)

// WorkoutSummary condenses recent logs into the signals the advice rules look at.
type WorkoutSummary struct {
	TotalLogs      int     `json:"totalLogs"`
	AvgIntensity   float64 `json:"avgIntensity"`
	AvgCondition   float64 `json:"avgCondition"`
	AvgFatigue     float64 `json:"avgFatigue"`
	CompletionRate float64 `json:"completionRate"`
	CurrentStreak  int     `json:"currentStreak"`
}

// SummarizeWorkouts summarises the most recent logs. CurrentStreak counts consecutive
// calendar days with a completed session, ending at the day of the latest log.
func (e *Engine) SummarizeWorkouts(logs []WorkoutLog) WorkoutSummary {
	recent := recentLogs(logs, e.thresholds.AdviceWindow)
	if len(recent) == 0 {
		return WorkoutSummary{}
	}

	completed := countOf(recent, func(l WorkoutLog) bool { return l.Completed })
	return WorkoutSummary{
		TotalLogs:      len(recent),
		AvgIntensity:   avgOf(recent, intensity),
		AvgCondition:   avgOf(recent, condition),
		AvgFatigue:     avgOf(recent, fatigue),
		CompletionRate: float64(completed) / float64(len(recent)) * 100,
		CurrentStreak:  currentStreak(recent),
	}
}

func currentStreak(sorted []WorkoutLog) int {
	if len(sorted) == 0 {
		return 0
	}
	completedDays := make(map[string]bool)
	for _, l := range sorted {
		if l.Completed {
			completedDays[l.Date.Format("2006-01-02")] = true
		}
	}

	streak := 0
	day := dayStart(sorted[len(sorted)-1].Date)
	for completedDays[day.Format("2006-01-02")] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// AnalyzeWorkoutData summarises the logs and synthesises advice from the summary.
func (e *Engine) AnalyzeWorkoutData(logs []WorkoutLog, memos []Memo) []AdviceEntry {
	if len(logs) == 0 {
		return []AdviceEntry{}
	}
	return e.SynthesizeAdvice(e.SummarizeWorkouts(logs), logs, memos)
}

// SynthesizeAdvice applies the summary rules and, with enough history, adds plateau,
// injury prevention and health advice from the deeper analyses.
func (e *Engine) SynthesizeAdvice(data WorkoutSummary, logs []WorkoutLog, memos []Memo) []AdviceEntry {
	t := e.thresholds
	advice := []AdviceEntry{}
	add := func(typ AdviceType, prio Priority, msg messages.Message) {
		advice = append(advice, AdviceEntry{Type: typ, Priority: prio, Message: msg})
	}

	if data.AvgFatigue > t.AdviceFatigue {
		add(AdviceRecovery, PriorityHigh, messages.New(messages.AdviceRecovery))
	}
	if data.AvgIntensity > t.AdviceIntensity && data.AvgCondition < t.AdviceCondition {
		add(AdviceProgramAdjustment, PriorityHigh, messages.New(messages.AdviceReduceIntensity))
	}
	if data.CurrentStreak > t.AdviceStreak {
		add(AdviceRest, PriorityMedium, messages.New(messages.AdviceRestDay))
	}
	switch {
	case data.CompletionRate < t.CompletionLow:
		add(AdviceMotivation, PriorityMedium, messages.New(messages.AdviceMotivationLow))
	case data.CompletionRate > t.CompletionHigh:
		add(AdviceMotivation, PriorityLow, messages.New(messages.AdviceMotivationHigh))
	}

	if len(logs) < t.MinHistoryLogs {
		return advice
	}

	trend := e.AnalyzeTrends(logs)
	if trend.PlateauDetected {
		add(AdvicePlateau, PriorityMedium, messages.New(messages.AdvicePlateau, trend.RecommendedAction.Key))
	}

	risk := e.PredictInjuryRisk(logs)
	if risk.RiskLevel != RiskLow {
		prio := PriorityMedium
		if risk.RiskLevel == RiskHigh {
			prio = PriorityHigh
		}
		add(AdviceInjuryPrevention, prio, messages.New(messages.AdviceInjury, risk.RiskLevel.Label(), risk.RecoveryDays))
	}

	health := e.AnalyzeHealth(logs, memos)
	if health.HealthScore < t.AdviceHealth {
		add(AdviceHealth, PriorityMedium, messages.New(messages.AdviceHealth, health.HealthScore))
	}

	return advice
}

var (
	fatigueTerms   = []string{"피곤", "지침", "지쳤", "힘들", "tired", "exhausted", "fatigue", "worn out"}
	techniqueTerms = []string{"포핸드", "백핸드", "forehand", "backhand"}
	positiveTerms  = []string{"좋았", "최고", "만족", "성공", "great", "good", "awesome", "happy"}
	injuryTerms    = []string{"아프", "통증", "부상", "pain", "hurt", "injury", "sore"}
	strokeTerms    = []string{"샷", "스윙", "자세", "shot", "swing", "posture"}
)

// InterpretJournalEntry replies to a free-text journal entry. Keyword groups are
// checked in order (fatigue, technique, positive, injury) and the first match wins.
// With enough history, an entry about strokes is answered with the top drill instead.
func (e *Engine) InterpretJournalEntry(text string, memos []Memo, logs []WorkoutLog) messages.Message {
	reply := messages.New(messages.JournalGeneric)
	switch {
	case containsAny(text, fatigueTerms...):
		reply = messages.New(messages.JournalRecovery)
	case containsAny(text, techniqueTerms...):
		reply = messages.New(messages.JournalTechnique)
	case containsAny(text, positiveTerms...):
		reply = messages.New(messages.JournalPositive)
	case containsAny(text, injuryTerms...):
		reply = messages.New(messages.JournalInjury)
	}

	if len(logs) >= e.thresholds.MinHistoryLogs && containsAny(text, strokeTerms...) {
		technique := e.AnalyzeTechnique(memos, logs)
		if len(technique.SkillGaps) > 0 {
			gap := technique.SkillGaps[0]
			reply = messages.New(messages.JournalDrill, gap.Area, gap.Drill, gap.Frequency)
		}
	}

	return reply
}

// PhaseMetrics are the current averages the phase adjustment rules look at.
type PhaseMetrics struct {
	Intensity float64 `json:"intensity"`
	Condition float64 `json:"condition"`
	Fatigue   float64 `json:"fatigue"`
}

// PhaseMetricsFrom averages the last week of logs.
func (e *Engine) PhaseMetricsFrom(logs []WorkoutLog) PhaseMetrics {
	recent := recentLogs(logs, 7)
	return PhaseMetrics{
		Intensity: avgOf(recent, intensity),
		Condition: avgOf(recent, condition),
		Fatigue:   avgOf(recent, fatigue),
	}
}

// SuggestPhaseAdjustment returns a single adjustment for the given week of a
// periodisation phase.
func (e *Engine) SuggestPhaseAdjustment(week int, phase Phase, m PhaseMetrics) messages.Message {
	switch phase {
	case PhasePreparation:
		switch {
		case m.Fatigue > 7:
			return messages.New(messages.PhasePreparationVolume)
		case week <= 2:
			return messages.New(messages.PhasePreparationEase)
		default:
			return messages.New(messages.PhasePreparationBuild)
		}
	case PhaseIntensity:
		switch {
		case m.Fatigue > 7:
			return messages.New(messages.PhaseIntensityRecovery)
		case m.Condition >= 7 && m.Fatigue <= 5:
			return messages.New(messages.PhaseIntensityProgress)
		default:
			return messages.New(messages.PhaseIntensityHold)
		}
	case PhasePeak:
		switch {
		case m.Condition < 6:
			return messages.New(messages.PhasePeakTaper)
		case m.Condition >= 8:
			return messages.New(messages.PhasePeakSharpen)
		}
	case PhaseRecovery:
		switch {
		case m.Intensity > 6:
			return messages.New(messages.PhaseRecoveryKeepLight)
		case m.Fatigue > 5:
			return messages.New(messages.PhaseRecoveryRest)
		default:
			return messages.New(messages.PhaseRecoveryReady)
		}
	}
	return messages.New(messages.PhaseMaintainCurrentPlan)
}
