package coaching

import (
	"time"

	"github.com/2beens/squashcoach/internal/coaching/analytics"
	"github.com/2beens/squashcoach/internal/coaching/messages"
)

// View is a Result with every message rendered in one language.
type View struct {
	ID          string            `json:"id"`
	UserID      string            `json:"userId"`
	Kind        string            `json:"kind"`
	GeneratedAt time.Time         `json:"generatedAt"`
	Cached      bool              `json:"cached"`
	Language    messages.Language `json:"language"`
	Data        any               `json:"data"`
}

type renderer struct {
	catalog *messages.Catalog
	lang    messages.Language
}

func (r renderer) msg(m messages.Message) string {
	return r.catalog.Render(r.lang, m)
}

func (r renderer) msgs(ms []messages.Message) []string {
	return r.catalog.RenderAll(r.lang, ms)
}

func (r renderer) key(k messages.Key) string {
	return r.catalog.Template(r.lang, k)
}

func newView[T any](r renderer, res *Result[T], data any) View {
	return View{
		ID:          res.ID,
		UserID:      res.UserID,
		Kind:        res.Kind,
		GeneratedAt: res.GeneratedAt,
		Cached:      res.Cached,
		Language:    r.lang,
		Data:        data,
	}
}

type LabeledValue struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func (r renderer) labeled(value string, label messages.Key) LabeledValue {
	return LabeledValue{Value: value, Label: r.key(label)}
}

type TrendView struct {
	Trend             LabeledValue             `json:"trend"`
	PlateauDetected   bool                     `json:"plateauDetected"`
	RecommendedAction string                   `json:"recommendedAction"`
	ProjectedProgress int                      `json:"projectedProgress"`
	Buckets           []analytics.WeeklyBucket `json:"buckets"`
}

func (r renderer) trend(t analytics.TrendResult) TrendView {
	return TrendView{
		Trend:             r.labeled(string(t.Trend), t.Trend.Label()),
		PlateauDetected:   t.PlateauDetected,
		RecommendedAction: r.msg(t.RecommendedAction),
		ProjectedProgress: t.ProjectedProgress,
		Buckets:           t.Buckets,
	}
}

type InjuryRiskView struct {
	RiskLevel          LabeledValue `json:"riskLevel"`
	Score              int          `json:"score"`
	RiskFactors        []string     `json:"riskFactors"`
	PreventiveMeasures []string     `json:"preventiveMeasures"`
	RecoveryDays       int          `json:"recoveryDays"`
}

func (r renderer) injuryRisk(i analytics.InjuryRiskResult) InjuryRiskView {
	return InjuryRiskView{
		RiskLevel:          r.labeled(string(i.RiskLevel), i.RiskLevel.Label()),
		Score:              i.Score,
		RiskFactors:        r.msgs(i.RiskFactors),
		PreventiveMeasures: r.msgs(i.PreventiveMeasures),
		RecoveryDays:       i.RecoveryDays,
	}
}

type HealthView struct {
	HealthScore              float64      `json:"healthScore"`
	AvgSleepQuality          float64      `json:"avgSleepQuality"`
	StressLevel              LabeledValue `json:"stressLevel"`
	StressKeywordCount       int          `json:"stressKeywordCount"`
	NutritionRecommendations []string     `json:"nutritionRecommendations"`
	RecoveryProtocol         []string     `json:"recoveryProtocol"`
	SleepQualityTrend        LabeledValue `json:"sleepQualityTrend"`
}

func (r renderer) health(h analytics.HealthResult) HealthView {
	return HealthView{
		HealthScore:              h.HealthScore,
		AvgSleepQuality:          h.AvgSleepQuality,
		StressLevel:              r.labeled(string(h.StressLevel), h.StressLevel.Label()),
		StressKeywordCount:       h.StressKeywordCount,
		NutritionRecommendations: r.msgs(h.NutritionRecommendations),
		RecoveryProtocol:         r.msgs(h.RecoveryProtocol),
		SleepQualityTrend:        r.labeled(string(h.SleepQualityTrend), h.SleepQualityTrend.Label()),
	}
}

type SkillGapView struct {
	Area      string `json:"area"`
	Drill     string `json:"drill"`
	Frequency string `json:"frequency"`
}

type TechniqueView struct {
	SkillCounts    map[string]int `json:"skillCounts"`
	Strengths      []LabeledValue `json:"strengths"`
	SkillGaps      []SkillGapView `json:"skillGaps"`
	TacticalAdvice []string       `json:"tacticalAdvice"`
}

func (r renderer) technique(t analytics.TechniqueResult) TechniqueView {
	v := TechniqueView{
		SkillCounts:    make(map[string]int, len(t.SkillCounts)),
		Strengths:      make([]LabeledValue, 0, len(t.Strengths)),
		SkillGaps:      make([]SkillGapView, 0, len(t.SkillGaps)),
		TacticalAdvice: r.msgs(t.TacticalAdvice),
	}
	for skill, count := range t.SkillCounts {
		v.SkillCounts[string(skill)] = count
	}
	for _, skill := range t.Strengths {
		v.Strengths = append(v.Strengths, r.labeled(string(skill), skill.Label()))
	}
	for _, gap := range t.SkillGaps {
		v.SkillGaps = append(v.SkillGaps, SkillGapView{
			Area:      r.key(gap.Area),
			Drill:     r.key(gap.Drill),
			Frequency: r.key(gap.Frequency),
		})
	}
	return v
}

type MilestoneView struct {
	Date  time.Time `json:"date"`
	Level float64   `json:"level"`
	Label string    `json:"label"`
}

type PredictionView struct {
	CurrentPerformance   float64                      `json:"currentPerformance"`
	ImprovementRate      float64                      `json:"improvementRate"`
	TargetDate           time.Time                    `json:"targetDate"`
	DaysUntilTarget      int                          `json:"daysUntilTarget"`
	PredictedLevel       float64                      `json:"predictedLevel"`
	StandardError        float64                      `json:"standardError"`
	ConfidenceInterval   analytics.ConfidenceInterval `json:"confidenceInterval"`
	Milestones           []MilestoneView              `json:"milestones"`
	RecommendedIntensity float64                      `json:"recommendedIntensity"`
}

func (r renderer) prediction(p analytics.PerformancePrediction) PredictionView {
	v := PredictionView{
		CurrentPerformance:   p.CurrentPerformance,
		ImprovementRate:      p.ImprovementRate,
		TargetDate:           p.TargetDate,
		DaysUntilTarget:      p.DaysUntilTarget,
		PredictedLevel:       p.PredictedLevel,
		StandardError:        p.StandardError,
		ConfidenceInterval:   p.ConfidenceInterval,
		Milestones:           make([]MilestoneView, 0, len(p.Milestones)),
		RecommendedIntensity: p.RecommendedIntensity,
	}
	for _, m := range p.Milestones {
		v.Milestones = append(v.Milestones, MilestoneView{
			Date:  m.Date,
			Level: m.Level,
			Label: r.key(m.Label),
		})
	}
	return v
}

type ExerciseView struct {
	Name        string `json:"name"`
	Focus       string `json:"focus"`
	Sets        int    `json:"sets"`
	Reps        int    `json:"reps,omitempty"`
	WorkSeconds int    `json:"workSeconds,omitempty"`
	RestSeconds int    `json:"restSeconds,omitempty"`
}

func (r renderer) exercises(exs []analytics.Exercise) []ExerciseView {
	views := make([]ExerciseView, 0, len(exs))
	for _, ex := range exs {
		views = append(views, ExerciseView{
			Name:        r.key(ex.Name),
			Focus:       ex.Focus,
			Sets:        ex.Sets,
			Reps:        ex.Reps,
			WorkSeconds: ex.WorkSeconds,
			RestSeconds: ex.RestSeconds,
		})
	}
	return views
}

type WorkoutView struct {
	Phase           analytics.Phase `json:"phase"`
	OptimalTime     LabeledValue    `json:"optimalTime"`
	Capacity        float64         `json:"capacity"`
	Exercises       []ExerciseView  `json:"exercises"`
	DurationMinutes int             `json:"durationMinutes"`
}

func (r renderer) workout(w analytics.WorkoutPlan) WorkoutView {
	return WorkoutView{
		Phase:           w.Phase,
		OptimalTime:     r.labeled(string(w.OptimalTime), w.OptimalTime.Label()),
		Capacity:        w.Capacity,
		Exercises:       r.exercises(w.Exercises),
		DurationMinutes: w.DurationMinutes,
	}
}

type AdviceView struct {
	Type     analytics.AdviceType `json:"type"`
	Priority analytics.Priority   `json:"priority"`
	Message  string               `json:"message"`
}

func (r renderer) advice(entries []analytics.AdviceEntry) []AdviceView {
	views := make([]AdviceView, 0, len(entries))
	for _, e := range entries {
		views = append(views, AdviceView{
			Type:     e.Type,
			Priority: e.Priority,
			Message:  r.msg(e.Message),
		})
	}
	return views
}

type JournalView struct {
	Text    string `json:"text"`
	Message string `json:"message"`
}

func (r renderer) journal(j JournalInterpretation) JournalView {
	return JournalView{Text: j.Text, Message: r.msg(j.Message)}
}

type PhaseAdjustmentView struct {
	Week       int                    `json:"week"`
	Phase      analytics.Phase        `json:"phase"`
	Metrics    analytics.PhaseMetrics `json:"metrics"`
	Suggestion string                 `json:"suggestion"`
}

func (r renderer) phaseAdjustment(p PhaseAdjustment) PhaseAdjustmentView {
	return PhaseAdjustmentView{
		Week:       p.Week,
		Phase:      p.Phase,
		Metrics:    p.Metrics,
		Suggestion: r.msg(p.Suggestion),
	}
}

type ReportView struct {
	Phase           analytics.Phase `json:"phase"`
	Summary         string          `json:"summary"`
	Trend           TrendView       `json:"trend"`
	InjuryRisk      InjuryRiskView  `json:"injuryRisk"`
	Health          HealthView      `json:"health"`
	Technique       TechniqueView   `json:"technique"`
	Recommendations []string        `json:"recommendations"`
	NextSteps       []string        `json:"nextSteps"`
	Warnings        []string        `json:"warnings"`
}

func (r renderer) report(rep analytics.ComprehensiveReport) ReportView {
	return ReportView{
		Phase:           rep.Phase,
		Summary:         r.msg(rep.Summary),
		Trend:           r.trend(rep.Trend),
		InjuryRisk:      r.injuryRisk(rep.InjuryRisk),
		Health:          r.health(rep.Health),
		Technique:       r.technique(rep.Technique),
		Recommendations: r.msgs(rep.Recommendations),
		NextSteps:       r.msgs(rep.NextSteps),
		Warnings:        r.msgs(rep.Warnings),
	}
}

type PlanDayView struct {
	DayIndex        int            `json:"dayIndex"`
	Date            time.Time      `json:"date"`
	Rest            bool           `json:"rest"`
	TimeOfDay       *LabeledValue  `json:"timeOfDay,omitempty"`
	TargetIntensity float64        `json:"targetIntensity"`
	Exercises       []ExerciseView `json:"exercises"`
	DurationMinutes int            `json:"durationMinutes"`
}

type WeeklyPlanView struct {
	Phase              analytics.Phase      `json:"phase"`
	StartDate          time.Time            `json:"startDate"`
	Weaknesses         []analytics.Weakness `json:"weaknesses"`
	Workout            WorkoutView          `json:"workout"`
	Prediction         PredictionView       `json:"prediction"`
	Days               []PlanDayView        `json:"days"`
	WeeklyGoals        []string             `json:"weeklyGoals"`
	AdjustmentTriggers []string             `json:"adjustmentTriggers"`
}

func (r renderer) weeklyPlan(p analytics.WeeklyPlan) WeeklyPlanView {
	v := WeeklyPlanView{
		Phase:              p.Phase,
		StartDate:          p.StartDate,
		Weaknesses:         p.Weaknesses,
		Workout:            r.workout(p.Workout),
		Prediction:         r.prediction(p.Prediction),
		Days:               make([]PlanDayView, 0, len(p.Days)),
		WeeklyGoals:        r.msgs(p.WeeklyGoals),
		AdjustmentTriggers: r.msgs(p.AdjustmentTriggers),
	}
	for _, d := range p.Days {
		day := PlanDayView{
			DayIndex:        d.DayIndex,
			Date:            d.Date,
			Rest:            d.Rest,
			TargetIntensity: d.TargetIntensity,
			Exercises:       r.exercises(d.Exercises),
			DurationMinutes: d.DurationMinutes,
		}
		if d.TimeOfDay != "" {
			tod := r.labeled(string(d.TimeOfDay), d.TimeOfDay.Label())
			day.TimeOfDay = &tod
		}
		v.Days = append(v.Days, day)
	}
	return v
}

// Views renders service results in a single language.
type Views struct {
	r renderer
}

func NewViews(catalog *messages.Catalog, lang messages.Language) Views {
	return Views{r: renderer{catalog: catalog, lang: lang}}
}

func (v Views) Language() messages.Language {
	return v.r.lang
}

func (v Views) Trend(res *Result[analytics.TrendResult]) View {
	return newView(v.r, res, v.r.trend(res.Data))
}

func (v Views) InjuryRisk(res *Result[analytics.InjuryRiskResult]) View {
	return newView(v.r, res, v.r.injuryRisk(res.Data))
}

func (v Views) Health(res *Result[analytics.HealthResult]) View {
	return newView(v.r, res, v.r.health(res.Data))
}

func (v Views) Technique(res *Result[analytics.TechniqueResult]) View {
	return newView(v.r, res, v.r.technique(res.Data))
}

func (v Views) Prediction(res *Result[analytics.PerformancePrediction]) View {
	return newView(v.r, res, v.r.prediction(res.Data))
}

func (v Views) Workout(res *Result[analytics.WorkoutPlan]) View {
	return newView(v.r, res, v.r.workout(res.Data))
}

func (v Views) Advice(res *Result[[]analytics.AdviceEntry]) View {
	return newView(v.r, res, v.r.advice(res.Data))
}

func (v Views) Journal(res *Result[JournalInterpretation]) View {
	return newView(v.r, res, v.r.journal(res.Data))
}

func (v Views) PhaseAdjustment(res *Result[PhaseAdjustment]) View {
	return newView(v.r, res, v.r.phaseAdjustment(res.Data))
}

func (v Views) Report(res *Result[analytics.ComprehensiveReport]) View {
	return newView(v.r, res, v.r.report(res.Data))
}

func (v Views) WeeklyPlan(res *Result[analytics.WeeklyPlan]) View {
	return newView(v.r, res, v.r.weeklyPlan(res.Data))
}
