package analytics

import (
	"math"
	"time"

	"github.com/2beens/squashcoach/internal/coaching/messages"
)

const milestoneCount = 4

// PredictPerformance extrapolates the current performance level to the target date
// using the long-run improvement rate.
func (e *Engine) PredictPerformance(logs []WorkoutLog, target time.Time) PerformancePrediction {
	t := e.thresholds
	now := e.Now()

	series := performanceSeries(recentLogs(logs, t.PerformanceWindow))
	current := mean(series)
	rate := improvementRate(sortedLogs(logs), t.ImprovementChunk, t.DefaultImprovementRate)

	days := int(math.Ceil(target.Sub(now).Hours() / 24))
	predicted := current + rate*float64(days)

	stdErr := 0.0
	if len(series) > 0 {
		stdErr = math.Sqrt(variance(series) / float64(len(series)))
	}

	milestones := make([]Milestone, 0, milestoneCount)
	for i := 1; i <= milestoneCount; i++ {
		level := current + (predicted-current)*float64(i)/milestoneCount
		offset := time.Duration(float64(days) * float64(i) / milestoneCount * float64(24*time.Hour))
		milestones = append(milestones, Milestone{
			Date:  now.Add(offset),
			Level: level,
			Label: milestoneLabel(level),
		})
	}

	return PerformancePrediction{
		CurrentPerformance: current,
		ImprovementRate:    rate,
		TargetDate:         target,
		DaysUntilTarget:    days,
		PredictedLevel:     predicted,
		StandardError:      stdErr,
		ConfidenceInterval: ConfidenceInterval{
			Lower: predicted - 1.96*stdErr,
			Upper: predicted + 1.96*stdErr,
		},
		Milestones:           milestones,
		RecommendedIntensity: recommendedIntensity(current, rate),
	}
}

// performanceSeries maps each log to a 0-100ish score where completion counts as 10.
func performanceSeries(logs []WorkoutLog) []float64 {
	series := make([]float64, 0, len(logs))
	for _, l := range logs {
		completed := 0.0
		if l.Completed {
			completed = 1
		}
		series = append(series, (intensity(l)+condition(l)+completed*10)/3*10)
	}
	return series
}

// improvementRate is the per-day change between the first and the last full chunk of
// chronologically ordered logs.
func improvementRate(sorted []WorkoutLog, chunkSize int, fallback float64) float64 {
	if chunkSize <= 0 || len(sorted) < chunkSize {
		return fallback
	}
	chunks := len(sorted) / chunkSize
	if chunks < 2 {
		return fallback
	}
	first := mean(performanceSeries(sorted[:chunkSize]))
	last := mean(performanceSeries(sorted[(chunks-1)*chunkSize : chunks*chunkSize]))
	return (last - first) / float64((chunks-1)*chunkSize)
}

func milestoneLabel(level float64) messages.Key {
	switch {
	case level > 80:
		return messages.MilestoneAdvanced
	case level > 60:
		return messages.MilestoneUpperIntermediate
	case level > 40:
		return messages.MilestoneIntermediate
	default:
		return messages.MilestoneFoundation
	}
}

func recommendedIntensity(current, rate float64) float64 {
	base := 7.0
	switch {
	case current > 70:
		base = 8
	case current < 40:
		base = 6
	}
	switch {
	case rate > 0.5:
		base += 0.5
	case rate < 0.1:
		base += 1
	}
	return clamp(base, 5, 10)
}
