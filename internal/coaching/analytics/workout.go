package analytics

import (
	"github.com/2beens/squashcoach/internal/coaching/messages"
)

// GenerateWorkout builds a session for the given phase that targets the weaknesses,
// sized by the current capacity and scheduled at the best performing time of day.
func (e *Engine) GenerateWorkout(logs []WorkoutLog, phase Phase, weaknesses []Weakness) WorkoutPlan {
	capacity := e.capacity(logs)

	exercises := []Exercise{}
	for _, w := range weaknesses {
		switch w {
		case WeaknessBackhand:
			exercises = append(exercises, Exercise{
				Name:  messages.ExerciseBackhandWallDrill,
				Focus: string(w),
				Sets:  4,
				Reps:  20,
			})
		case WeaknessEndurance:
			exercises = append(exercises, Exercise{
				Name:        messages.ExerciseHIITRunning,
				Focus:       string(w),
				Sets:        8,
				WorkSeconds: 30,
				RestSeconds: 30,
			})
		case WeaknessPower:
			exercises = append(exercises, Exercise{
				Name:        messages.ExercisePlyometricJumps,
				Focus:       string(w),
				Sets:        3,
				Reps:        12,
				RestSeconds: 60,
			})
		}
	}
	if phase == PhasePeak {
		exercises = append(exercises, Exercise{
			Name:  messages.ExerciseMatchSimulation,
			Focus: string(phase),
			Sets:  3,
			Reps:  11,
		})
	}

	duration := 60
	switch {
	case capacity > 80:
		duration = 90
	case capacity > 60:
		duration = 75
	}

	return WorkoutPlan{
		Phase:           phase,
		OptimalTime:     optimalTime(logs),
		Capacity:        capacity,
		Exercises:       exercises,
		DurationMinutes: duration,
	}
}

func (e *Engine) capacity(logs []WorkoutLog) float64 {
	recent := recentLogs(logs, e.thresholds.CapacityWindow)
	if len(recent) == 0 {
		return 0
	}
	raw := (avgOf(recent, intensity)+avgOf(recent, condition))*10 - avgOf(recent, fatigue)*5
	return clamp(raw, 0, 100)
}

func timeOfDay(hour int) TimeOfDay {
	switch {
	case hour >= 5 && hour <= 11:
		return Morning
	case hour >= 12 && hour <= 17:
		return Afternoon
	default:
		return Evening
	}
}

// optimalTime picks the time-of-day bucket with the best mean of condition plus
// intensity. Ties keep the earlier bucket; without logs it is the evening.
func optimalTime(logs []WorkoutLog) TimeOfDay {
	scores := make(map[TimeOfDay][]float64)
	for _, l := range logs {
		tod := timeOfDay(l.LoggedAt.Hour())
		scores[tod] = append(scores[tod], condition(l)+intensity(l))
	}

	best := Evening
	bestScore := -1.0
	for _, tod := range []TimeOfDay{Morning, Afternoon, Evening} {
		values, ok := scores[tod]
		if !ok {
			continue
		}
		if s := mean(values); s > bestScore {
			best, bestScore = tod, s
		}
	}
	return best
}
