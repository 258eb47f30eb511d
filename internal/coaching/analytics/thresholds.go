package analytics

// Thresholds holds every tunable constant used by the engine. The zero value is not
// useful; start from DefaultThresholds and override single fields.
type Thresholds struct {
	MinHistoryLogs int `toml:"min_history_logs"`

	TrendWindow       int     `toml:"trend_window"`
	TrendDelta        float64 `toml:"trend_delta"`
	PlateauBuckets    int     `toml:"plateau_buckets"`
	PlateauVariance   float64 `toml:"plateau_variance"`
	ProjectionPeriods int     `toml:"projection_periods"`

	RiskWindow        int     `toml:"risk_window"`
	RiskFatigueAvg    float64 `toml:"risk_fatigue_avg"`
	RiskVolumePct     float64 `toml:"risk_volume_pct"`
	RiskSorenessLevel int     `toml:"risk_soreness_level"`
	RiskSorenessCount int     `toml:"risk_soreness_count"`
	RiskSleepLevel    int     `toml:"risk_sleep_level"`
	RiskSleepCount    int     `toml:"risk_sleep_count"`
	RiskHighScore     int     `toml:"risk_high_score"`
	RiskMediumScore   int     `toml:"risk_medium_score"`

	TechniqueDropMin   int     `toml:"technique_drop_min"`
	TechniqueVolleyMin int     `toml:"technique_volley_min"`
	TacticalWindow     int     `toml:"tactical_window"`
	TacticalIntensity  float64 `toml:"tactical_intensity"`

	HealthWindow         int     `toml:"health_window"`
	StressHighCount      int     `toml:"stress_high_count"`
	StressMediumCount    int     `toml:"stress_medium_count"`
	StressHighPenalty    float64 `toml:"stress_high_penalty"`
	StressMediumPenalty  float64 `toml:"stress_medium_penalty"`
	LowSleepAvg          float64 `toml:"low_sleep_avg"`
	HardSessionIntensity int     `toml:"hard_session_intensity"`
	HardSessionCount     int     `toml:"hard_session_count"`
	RecoveryScore        float64 `toml:"recovery_score"`

	PerformanceWindow      int     `toml:"performance_window"`
	ImprovementChunk       int     `toml:"improvement_chunk"`
	DefaultImprovementRate float64 `toml:"default_improvement_rate"`

	CapacityWindow int `toml:"capacity_window"`

	AdviceWindow    int     `toml:"advice_window"`
	AdviceFatigue   float64 `toml:"advice_fatigue"`
	AdviceIntensity float64 `toml:"advice_intensity"`
	AdviceCondition float64 `toml:"advice_condition"`
	AdviceStreak    int     `toml:"advice_streak"`
	CompletionLow   float64 `toml:"completion_low"`
	CompletionHigh  float64 `toml:"completion_high"`
	AdviceHealth    float64 `toml:"advice_health"`

	WeaknessWindow    int     `toml:"weakness_window"`
	WeaknessCondition float64 `toml:"weakness_condition"`
	WeaknessIntensity float64 `toml:"weakness_intensity"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		MinHistoryLogs: 10,

		TrendWindow:       28,
		TrendDelta:        0.5,
		PlateauBuckets:    4,
		PlateauVariance:   0.25,
		ProjectionPeriods: 4,

		RiskWindow:        14,
		RiskFatigueAvg:    7,
		RiskVolumePct:     50,
		RiskSorenessLevel: 6,
		RiskSorenessCount: 5,
		RiskSleepLevel:    5,
		RiskSleepCount:    7,
		RiskHighScore:     6,
		RiskMediumScore:   3,

		TechniqueDropMin:   2,
		TechniqueVolleyMin: 3,
		TacticalWindow:     10,
		TacticalIntensity:  7,

		HealthWindow:         14,
		StressHighCount:      5,
		StressMediumCount:    2,
		StressHighPenalty:    20,
		StressMediumPenalty:  10,
		LowSleepAvg:          6,
		HardSessionIntensity: 7,
		HardSessionCount:     7,
		RecoveryScore:        70,

		PerformanceWindow:      14,
		ImprovementChunk:       30,
		DefaultImprovementRate: 0.1,

		CapacityWindow: 7,

		AdviceWindow:    30,
		AdviceFatigue:   7,
		AdviceIntensity: 8,
		AdviceCondition: 5,
		AdviceStreak:    6,
		CompletionLow:   70,
		CompletionHigh:  90,
		AdviceHealth:    70,

		WeaknessWindow:    14,
		WeaknessCondition: 6,
		WeaknessIntensity: 6,
	}
}

// Merge returns t with every non-zero field of override applied on top.
func (t Thresholds) Merge(override Thresholds) Thresholds {
	mergeInt := func(dst *int, v int) {
		if v != 0 {
			*dst = v
		}
	}
	mergeFloat := func(dst *float64, v float64) {
		if v != 0 {
			*dst = v
		}
	}

	mergeInt(&t.MinHistoryLogs, override.MinHistoryLogs)
	mergeInt(&t.TrendWindow, override.TrendWindow)
	mergeFloat(&t.TrendDelta, override.TrendDelta)
	mergeInt(&t.PlateauBuckets, override.PlateauBuckets)
	mergeFloat(&t.PlateauVariance, override.PlateauVariance)
	mergeInt(&t.ProjectionPeriods, override.ProjectionPeriods)

	mergeInt(&t.RiskWindow, override.RiskWindow)
	mergeFloat(&t.RiskFatigueAvg, override.RiskFatigueAvg)
	mergeFloat(&t.RiskVolumePct, override.RiskVolumePct)
	mergeInt(&t.RiskSorenessLevel, override.RiskSorenessLevel)
	mergeInt(&t.RiskSorenessCount, override.RiskSorenessCount)
	mergeInt(&t.RiskSleepLevel, override.RiskSleepLevel)
	mergeInt(&t.RiskSleepCount, override.RiskSleepCount)
	mergeInt(&t.RiskHighScore, override.RiskHighScore)
	mergeInt(&t.RiskMediumScore, override.RiskMediumScore)

	mergeInt(&t.TechniqueDropMin, override.TechniqueDropMin)
	mergeInt(&t.TechniqueVolleyMin, override.TechniqueVolleyMin)
	mergeInt(&t.TacticalWindow, override.TacticalWindow)
	mergeFloat(&t.TacticalIntensity, override.TacticalIntensity)

	mergeInt(&t.HealthWindow, override.HealthWindow)
	mergeInt(&t.StressHighCount, override.StressHighCount)
	mergeInt(&t.StressMediumCount, override.StressMediumCount)
	mergeFloat(&t.StressHighPenalty, override.StressHighPenalty)
	mergeFloat(&t.StressMediumPenalty, override.StressMediumPenalty)
	mergeFloat(&t.LowSleepAvg, override.LowSleepAvg)
	mergeInt(&t.HardSessionIntensity, override.HardSessionIntensity)
	mergeInt(&t.HardSessionCount, override.HardSessionCount)
	mergeFloat(&t.RecoveryScore, override.RecoveryScore)

	mergeInt(&t.PerformanceWindow, override.PerformanceWindow)
	mergeInt(&t.ImprovementChunk, override.ImprovementChunk)
	mergeFloat(&t.DefaultImprovementRate, override.DefaultImprovementRate)

	mergeInt(&t.CapacityWindow, override.CapacityWindow)

	mergeInt(&t.AdviceWindow, override.AdviceWindow)
	mergeFloat(&t.AdviceFatigue, override.AdviceFatigue)
	mergeFloat(&t.AdviceIntensity, override.AdviceIntensity)
	mergeFloat(&t.AdviceCondition, override.AdviceCondition)
	mergeInt(&t.AdviceStreak, override.AdviceStreak)
	mergeFloat(&t.CompletionLow, override.CompletionLow)
	mergeFloat(&t.CompletionHigh, override.CompletionHigh)
	mergeFloat(&t.AdviceHealth, override.AdviceHealth)

	mergeInt(&t.WeaknessWindow, override.WeaknessWindow)
	mergeFloat(&t.WeaknessCondition, override.WeaknessCondition)
	mergeFloat(&t.WeaknessIntensity, override.WeaknessIntensity)

	return t
}
