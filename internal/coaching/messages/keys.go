package messages

// trend analysis
const (
	TrendNeedMoreData    Key = "trend.need_more_data"
	TrendActionPlateau   Key = "trend.action.plateau"
	TrendActionImproving Key = "trend.action.improving"
	TrendActionDeclining Key = "trend.action.declining"
	TrendActionStable    Key = "trend.action.stable"

	LabelTrendImproving Key = "label.trend.improving"
	LabelTrendStable    Key = "label.trend.stable"
	LabelTrendDeclining Key = "label.trend.declining"
)

// injury risk
const (
	RiskFactorFatigue        Key = "risk.factor.fatigue"
	RiskFactorVolume         Key = "risk.factor.volume"
	RiskFactorSoreness       Key = "risk.factor.soreness"
	RiskFactorSleep          Key = "risk.factor.sleep"
	RiskMeasureFatigue       Key = "risk.measure.fatigue"
	RiskMeasureVolume        Key = "risk.measure.volume"
	RiskMeasureSoreness      Key = "risk.measure.soreness"
	RiskMeasureSleep         Key = "risk.measure.sleep"
	RiskMeasureFullRest      Key = "risk.measure.full_rest"
	RiskMeasureReduceIntense Key = "risk.measure.reduce_intensity"

	LabelRiskLow    Key = "label.risk.low"
	LabelRiskMedium Key = "label.risk.medium"
	LabelRiskHigh   Key = "label.risk.high"
)

// technique
const (
	SkillForehand Key = "skill.forehand"
	SkillBackhand Key = "skill.backhand"
	SkillServe    Key = "skill.serve"
	SkillVolley   Key = "skill.volley"
	SkillDrop     Key = "skill.drop"
	SkillDrive    Key = "skill.drive"
	SkillBoast    Key = "skill.boast"
	SkillLob      Key = "skill.lob"

	WeaknessDropAccuracy   Key = "weakness.drop_accuracy"
	WeaknessVolleyReaction Key = "weakness.volley_reaction"
	DrillDropFrontCorner   Key = "drill.drop_front_corner"
	DrillVolleyExchange    Key = "drill.volley_exchange"
	FrequencyDaily15Min    Key = "frequency.daily_15min"
	FrequencyThreePerWeek  Key = "frequency.three_per_week"

	TacticPacing             Key = "tactic.pacing"
	TacticBackhandCrossCourt Key = "tactic.backhand_cross_court"
	TacticTRecovery          Key = "tactic.t_recovery"
)

// holistic health
const (
	NutritionMagnesium    Key = "nutrition.magnesium"
	NutritionCarbProtein  Key = "nutrition.carb_protein"
	NutritionProteinPerKg Key = "nutrition.protein_per_kg"

	RecoveryMeditation   Key = "recovery.meditation"
	RecoveryFoamRolling  Key = "recovery.foam_rolling"
	RecoveryScreenCurfew Key = "recovery.screen_curfew"
	RecoveryYoga         Key = "recovery.yoga"
	RecoveryOutdoorWalk  Key = "recovery.outdoor_walk"

	LabelStressLow    Key = "label.stress.low"
	LabelStressMedium Key = "label.stress.medium"
	LabelStressHigh   Key = "label.stress.high"
)

// performance milestones
const (
	MilestoneAdvanced          Key = "milestone.advanced"
	MilestoneUpperIntermediate Key = "milestone.upper_intermediate"
	MilestoneIntermediate      Key = "milestone.intermediate"
	MilestoneFoundation        Key = "milestone.foundation"
)

// workout generation
const (
	ExerciseBackhandWallDrill Key = "exercise.backhand_wall_drill"
	ExerciseHIITRunning       Key = "exercise.hiit_running"
	ExercisePlyometricJumps   Key = "exercise.plyometric_jumps"
	ExerciseMatchSimulation   Key = "exercise.match_simulation"

	LabelTimeMorning   Key = "label.time.morning"
	LabelTimeAfternoon Key = "label.time.afternoon"
	LabelTimeEvening   Key = "label.time.evening"
	LabelRestDay       Key = "label.rest_day"
)

// advice
const (
	AdviceRecovery        Key = "advice.recovery"
	AdviceReduceIntensity Key = "advice.reduce_intensity"
	AdviceRestDay         Key = "advice.rest_day"
	AdviceMotivationLow   Key = "advice.motivation_low"
	AdviceMotivationHigh  Key = "advice.motivation_high"
	AdvicePlateau         Key = "advice.plateau"
	AdviceInjury          Key = "advice.injury"
	AdviceHealth          Key = "advice.health"
)

// journal interpretation
const (
	JournalRecovery  Key = "journal.recovery"
	JournalTechnique Key = "journal.technique"
	JournalPositive  Key = "journal.positive"
	JournalInjury    Key = "journal.injury"
	JournalGeneric   Key = "journal.generic"
	JournalDrill     Key = "journal.drill"
)

// training phase adjustments
const (
	PhasePreparationEase     Key = "phase.preparation.ease"
	PhasePreparationVolume   Key = "phase.preparation.volume"
	PhasePreparationBuild    Key = "phase.preparation.build"
	PhaseIntensityRecovery   Key = "phase.intensity.recovery"
	PhaseIntensityProgress   Key = "phase.intensity.progress"
	PhaseIntensityHold       Key = "phase.intensity.hold"
	PhasePeakTaper           Key = "phase.peak.taper"
	PhasePeakSharpen         Key = "phase.peak.sharpen"
	PhaseRecoveryKeepLight   Key = "phase.recovery.keep_light"
	PhaseRecoveryRest        Key = "phase.recovery.rest"
	PhaseRecoveryReady       Key = "phase.recovery.ready"
	PhaseMaintainCurrentPlan Key = "phase.maintain"
)

// report and weekly plan
const (
	ReportSummary         Key = "report.summary"
	ReportNextStep        Key = "report.next_step"
	ReportWarningHighRisk Key = "report.warning.high_risk"
	ReportWarningStress   Key = "report.warning.high_stress"
	ReportWarningPlateau  Key = "report.warning.plateau"

	PlanGoalIntensity  Key = "plan.goal.intensity"
	PlanGoalTime       Key = "plan.goal.time"
	PlanGoalAttendance Key = "plan.goal.attendance"
	PlanGoalStretching Key = "plan.goal.stretching"

	PlanTriggerFatigue   Key = "plan.trigger.fatigue"
	PlanTriggerCondition Key = "plan.trigger.condition"
	PlanTriggerMisses    Key = "plan.trigger.misses"
)
