package analytics

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/squashcoach/internal/coaching/messages"
)

var ErrUnknownPhase = errors.New("unknown training phase")

// WorkoutLog is a single logged training session. Ratings are on a 1-10 scale and are
// trusted as already clamped by the producer; a missing rating is 0.
type WorkoutLog struct {
	ID              int       `json:"id"`
	Date            time.Time `json:"date"`
	IntensityRating int       `json:"intensityRating"`
	ConditionRating int       `json:"conditionRating"`
	FatigueLevel    int       `json:"fatigueLevel"`
	MuscleSoreness  int       `json:"muscleSoreness"`
	SleepQuality    int       `json:"sleepQuality"`
	Completed       bool      `json:"completed"`
	DurationMinutes int       `json:"durationMinutes"`
	Category        string    `json:"category"`
	LoggedAt        time.Time `json:"loggedAt"`
}

// Memo is a free-text journal entry.
type Memo struct {
	ID      int       `json:"id"`
	Date    time.Time `json:"date"`
	Content string    `json:"content"`
	Tags    []string  `json:"tags,omitempty"`
}

type Phase string

const (
	PhasePreparation Phase = "preparation"
	PhaseIntensity   Phase = "intensity"
	PhasePeak        Phase = "peak"
	PhaseRecovery    Phase = "recovery"
)

func (p Phase) String() string {
	return string(p)
}

func (p Phase) IsValid() bool {
	switch p {
	case PhasePreparation, PhaseIntensity, PhasePeak, PhaseRecovery:
		return true
	default:
		return false
	}
}

func ParsePhase(s string) (Phase, error) {
	p := Phase(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPhase, s)
	}
	return p, nil
}

type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

func (t Trend) Label() messages.Key {
	switch t {
	case TrendImproving:
		return messages.LabelTrendImproving
	case TrendDeclining:
		return messages.LabelTrendDeclining
	default:
		return messages.LabelTrendStable
	}
}

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

func (r RiskLevel) Label() messages.Key {
	switch r {
	case RiskHigh:
		return messages.LabelRiskHigh
	case RiskMedium:
		return messages.LabelRiskMedium
	default:
		return messages.LabelRiskLow
	}
}

func (r RiskLevel) rank() int {
	switch r {
	case RiskHigh:
		return 2
	case RiskMedium:
		return 1
	default:
		return 0
	}
}

type StressLevel string

const (
	StressLow    StressLevel = "low"
	StressMedium StressLevel = "medium"
	StressHigh   StressLevel = "high"
)

func (s StressLevel) Label() messages.Key {
	switch s {
	case StressHigh:
		return messages.LabelStressHigh
	case StressMedium:
		return messages.LabelStressMedium
	default:
		return messages.LabelStressLow
	}
}

type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
)

func (t TimeOfDay) Label() messages.Key {
	switch t {
	case Morning:
		return messages.LabelTimeMorning
	case Afternoon:
		return messages.LabelTimeAfternoon
	default:
		return messages.LabelTimeEvening
	}
}

// Weakness is a training focus area fed into the workout generator.
type Weakness string

const (
	WeaknessBackhand  Weakness = "backhand"
	WeaknessEndurance Weakness = "endurance"
	WeaknessPower     Weakness = "power"
)

type Skill string

const (
	SkillForehand Skill = "forehand"
	SkillBackhand Skill = "backhand"
	SkillServe    Skill = "serve"
	SkillVolley   Skill = "volley"
	SkillDrop     Skill = "drop"
	SkillDrive    Skill = "drive"
	SkillBoast    Skill = "boast"
	SkillLob      Skill = "lob"
)

func (s Skill) Label() messages.Key {
	return messages.Key("skill." + string(s))
}

type AdviceType string

const (
	AdviceRecovery          AdviceType = "recovery"
	AdviceProgramAdjustment AdviceType = "program_adjustment"
	AdviceRest              AdviceType = "rest"
	AdviceMotivation        AdviceType = "motivation"
	AdvicePlateau           AdviceType = "plateau"
	AdviceInjuryPrevention  AdviceType = "injury_prevention"
	AdviceHealth            AdviceType = "health"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type AdviceEntry struct {
	Type     AdviceType       `json:"type"`
	Priority Priority         `json:"priority"`
	Message  messages.Message `json:"message"`
}

// WeeklyBucket is the mean of a metric over the entries of one ISO week.
type WeeklyBucket struct {
	WeekStart time.Time `json:"weekStart"`
	Value     float64   `json:"value"`
	Entries   int       `json:"entries"`
}

type TrendResult struct {
	Trend             Trend            `json:"trend"`
	PlateauDetected   bool             `json:"plateauDetected"`
	RecommendedAction messages.Message `json:"recommendedAction"`
	ProjectedProgress int              `json:"projectedProgress"`
	Buckets           []WeeklyBucket   `json:"buckets"`
}

type InjuryRiskResult struct {
	RiskLevel          RiskLevel          `json:"riskLevel"`
	Score              int                `json:"score"`
	RiskFactors        []messages.Message `json:"riskFactors"`
	PreventiveMeasures []messages.Message `json:"preventiveMeasures"`
	RecoveryDays       int                `json:"recoveryDays"`
}

// SkillGap is a detected weakness together with the drill that addresses it.
type SkillGap struct {
	Area      messages.Key `json:"area"`
	Drill     messages.Key `json:"drill"`
	Frequency messages.Key `json:"frequency"`
}

type TechniqueResult struct {
	SkillCounts    map[Skill]int      `json:"skillCounts"`
	Strengths      []Skill            `json:"strengths"`
	SkillGaps      []SkillGap         `json:"skillGaps"`
	TacticalAdvice []messages.Message `json:"tacticalAdvice"`
}

type HealthResult struct {
	HealthScore              float64            `json:"healthScore"`
	AvgSleepQuality          float64            `json:"avgSleepQuality"`
	StressLevel              StressLevel        `json:"stressLevel"`
	StressKeywordCount       int                `json:"stressKeywordCount"`
	NutritionRecommendations []messages.Message `json:"nutritionRecommendations"`
	RecoveryProtocol         []messages.Message `json:"recoveryProtocol"`
	SleepQualityTrend        Trend              `json:"sleepQualityTrend"`
}

type ConfidenceInterval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

type Milestone struct {
	Date  time.Time    `json:"date"`
	Level float64      `json:"level"`
	Label messages.Key `json:"label"`
}

type PerformancePrediction struct {
	CurrentPerformance   float64            `json:"currentPerformance"`
	ImprovementRate      float64            `json:"improvementRate"`
	TargetDate           time.Time          `json:"targetDate"`
	DaysUntilTarget      int                `json:"daysUntilTarget"`
	PredictedLevel       float64            `json:"predictedLevel"`
	StandardError        float64            `json:"standardError"`
	ConfidenceInterval   ConfidenceInterval `json:"confidenceInterval"`
	Milestones           []Milestone        `json:"milestones"`
	RecommendedIntensity float64            `json:"recommendedIntensity"`
}

type Exercise struct {
	Name        messages.Key `json:"name"`
	Focus       string       `json:"focus"`
	Sets        int          `json:"sets"`
	Reps        int          `json:"reps,omitempty"`
	WorkSeconds int          `json:"workSeconds,omitempty"`
	RestSeconds int          `json:"restSeconds,omitempty"`
}

type WorkoutPlan struct {
	Phase           Phase      `json:"phase"`
	OptimalTime     TimeOfDay  `json:"optimalTime"`
	Capacity        float64    `json:"capacity"`
	Exercises       []Exercise `json:"exercises"`
	DurationMinutes int        `json:"durationMinutes"`
}

type ComprehensiveReport struct {
	Phase           Phase              `json:"phase"`
	Summary         messages.Message   `json:"summary"`
	Trend           TrendResult        `json:"trend"`
	InjuryRisk      InjuryRiskResult   `json:"injuryRisk"`
	Health          HealthResult       `json:"health"`
	Technique       TechniqueResult    `json:"technique"`
	Recommendations []messages.Message `json:"recommendations"`
	NextSteps       []messages.Message `json:"nextSteps"`
	Warnings        []messages.Message `json:"warnings"`
}

type PlanDay struct {
	DayIndex        int        `json:"dayIndex"`
	Date            time.Time  `json:"date"`
	Rest            bool       `json:"rest"`
	TimeOfDay       TimeOfDay  `json:"timeOfDay,omitempty"`
	TargetIntensity float64    `json:"targetIntensity"`
	Exercises       []Exercise `json:"exercises"`
	DurationMinutes int        `json:"durationMinutes"`
}

type WeeklyPlan struct {
	Phase              Phase                 `json:"phase"`
	StartDate          time.Time             `json:"startDate"`
	Weaknesses         []Weakness            `json:"weaknesses"`
	Workout            WorkoutPlan           `json:"workout"`
	Prediction         PerformancePrediction `json:"prediction"`
	Days               []PlanDay             `json:"days"`
	WeeklyGoals        []messages.Message    `json:"weeklyGoals"`
	AdjustmentTriggers []messages.Message    `json:"adjustmentTriggers"`
}
