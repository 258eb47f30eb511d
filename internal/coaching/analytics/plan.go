package analytics

import (
	"time"

	"github.com/2beens/squashcoach/internal/coaching/messages"
)

const planDays = 7

var planRestDays = map[int]bool{3: true, 6: true}

// IdentifyWeaknesses derives training focus areas from the most recent logs.
// Backhand is always included.
// TODO: derive the backhand focus from AnalyzeTechnique counts instead of always adding it.
func (e *Engine) IdentifyWeaknesses(logs []WorkoutLog) []Weakness {
	t := e.thresholds
	recent := recentLogs(logs, t.WeaknessWindow)

	weaknesses := []Weakness{}
	if len(recent) > 0 {
		if avgOf(recent, condition) < t.WeaknessCondition {
			weaknesses = append(weaknesses, WeaknessEndurance)
		}
		if avgOf(recent, intensity) < t.WeaknessIntensity {
			weaknesses = append(weaknesses, WeaknessPower)
		}
	}
	return append(weaknesses, WeaknessBackhand)
}

// BuildWeeklyPlan lays out the next seven days starting today, with two fixed rest
// days, the generated workout on every training day and the weekly goals.
func (e *Engine) BuildWeeklyPlan(logs []WorkoutLog, phase Phase, target time.Time) WeeklyPlan {
	weaknesses := e.IdentifyWeaknesses(logs)
	workout := e.GenerateWorkout(logs, phase, weaknesses)
	prediction := e.PredictPerformance(logs, target)
	start := e.Today()

	days := make([]PlanDay, 0, planDays)
	trainingDays := 0
	for i := 0; i < planDays; i++ {
		day := PlanDay{
			DayIndex:  i,
			Date:      start.AddDate(0, 0, i),
			Exercises: []Exercise{},
		}
		if planRestDays[i] {
			day.Rest = true
		} else {
			trainingDays++
			day.TimeOfDay = workout.OptimalTime
			day.TargetIntensity = prediction.RecommendedIntensity
			day.Exercises = append(day.Exercises, workout.Exercises...)
			day.DurationMinutes = workout.DurationMinutes
		}
		days = append(days, day)
	}

	return WeeklyPlan{
		Phase:      phase,
		StartDate:  start,
		Weaknesses: weaknesses,
		Workout:    workout,
		Prediction: prediction,
		Days:       days,
		WeeklyGoals: []messages.Message{
			messages.New(messages.PlanGoalIntensity, prediction.RecommendedIntensity),
			messages.New(messages.PlanGoalTime, workout.OptimalTime.Label()),
			messages.New(messages.PlanGoalAttendance, trainingDays),
			messages.New(messages.PlanGoalStretching),
		},
		AdjustmentTriggers: []messages.Message{
			messages.New(messages.PlanTriggerFatigue),
			messages.New(messages.PlanTriggerCondition),
			messages.New(messages.PlanTriggerMisses),
		},
	}
}
