package analytics

import (
	"github.com/2beens/squashcoach/internal/coaching/messages"
)

// BuildComprehensiveReport runs the trend, injury, health and technique analyses and
// composes them into a single report.
func (e *Engine) BuildComprehensiveReport(logs []WorkoutLog, memos []Memo, phase Phase) ComprehensiveReport {
	trend := e.AnalyzeTrends(logs)
	risk := e.PredictInjuryRisk(logs)
	health := e.AnalyzeHealth(logs, memos)
	technique := e.AnalyzeTechnique(memos, logs)

	recommendations := []messages.Message{}
	recommendations = append(recommendations, health.NutritionRecommendations...)
	recommendations = append(recommendations, risk.PreventiveMeasures[:min(2, len(risk.PreventiveMeasures))]...)
	recommendations = append(recommendations, trend.RecommendedAction)

	nextSteps := make([]messages.Message, 0, len(technique.SkillGaps))
	for _, gap := range technique.SkillGaps {
		nextSteps = append(nextSteps, messages.New(messages.ReportNextStep, gap.Area, gap.Drill, gap.Frequency))
	}

	warnings := []messages.Message{}
	if risk.RiskLevel == RiskHigh {
		warnings = append(warnings, messages.New(messages.ReportWarningHighRisk))
	}
	if health.StressLevel == StressHigh {
		warnings = append(warnings, messages.New(messages.ReportWarningStress))
	}
	if trend.PlateauDetected {
		warnings = append(warnings, messages.New(messages.ReportWarningPlateau))
	}

	return ComprehensiveReport{
		Phase:           phase,
		Summary:         messages.New(messages.ReportSummary, trend.Trend.Label(), health.HealthScore, risk.RiskLevel.Label()),
		Trend:           trend,
		InjuryRisk:      risk,
		Health:          health,
		Technique:       technique,
		Recommendations: recommendations,
		NextSteps:       nextSteps,
		Warnings:        warnings,
	}
}
