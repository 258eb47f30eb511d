package messages

var translations = map[Language]map[Key]string{
	English: english,
	Korean:  korean,
}

var english = map[Key]string{
	TrendNeedMoreData:    "Log at least 10 sessions to unlock trend analysis.",
	TrendActionPlateau:   "Performance has stalled: raise intensity by about 15% or introduce a new drill.",
	TrendActionImproving: "You are improving: maintain the current program.",
	TrendActionDeclining: "Performance is dropping: check your recovery and nutrition.",
	TrendActionStable:    "Performance is steady: keep training consistently and add small variations.",
	LabelTrendImproving:  "improving",
	LabelTrendStable:     "stable",
	LabelTrendDeclining:  "declining",

	RiskFactorFatigue:        "fatigue accumulation",
	RiskFactorVolume:         "rapid training volume increase",
	RiskFactorSoreness:       "persistent muscle soreness",
	RiskFactorSleep:          "insufficient sleep",
	RiskMeasureFatigue:       "active recovery sessions and massage",
	RiskMeasureVolume:        "progressive load management (max +10% per week)",
	RiskMeasureSoreness:      "increase protein intake and sleep time",
	RiskMeasureSleep:         "improve sleep hygiene and manage stress",
	RiskMeasureFullRest:      "take 2-3 days of complete rest immediately",
	RiskMeasureReduceIntense: "reduce training intensity by 50%",
	LabelRiskLow:             "low",
	LabelRiskMedium:          "medium",
	LabelRiskHigh:            "high",

	SkillForehand:            "forehand",
	SkillBackhand:            "backhand",
	SkillServe:               "serve",
	SkillVolley:              "volley",
	SkillDrop:                "drop shot",
	SkillDrive:               "drive",
	SkillBoast:               "boast",
	SkillLob:                 "lob",
	WeaknessDropAccuracy:     "drop shot accuracy",
	WeaknessVolleyReaction:   "volley reaction speed",
	DrillDropFrontCorner:     "repeated front-corner drop shots",
	DrillVolleyExchange:      "fast volley exchange drills",
	FrequencyDaily15Min:      "daily, 15 min",
	FrequencyThreePerWeek:    "3 times a week",
	TacticPacing:             "Your intensity is high: pace rallies and save energy for the deciding points.",
	TacticBackhandCrossCourt: "Attack the opponent's backhand with cross-court drives.",
	TacticTRecovery:          "Recover to the T position faster after every shot.",

	NutritionMagnesium:    "Eat magnesium-rich foods (bananas, nuts) before sleep.",
	NutritionCarbProtein:  "Within 30 minutes after training, eat carbs and protein at a 3:1 ratio.",
	NutritionProteinPerKg: "Aim for 1.6-2.0 g of protein per kg of body weight daily.",
	RecoveryMeditation:    "10 minutes of meditation or breathing exercises daily.",
	RecoveryFoamRolling:   "Massage or foam rolling twice a week.",
	RecoveryScreenCurfew:  "No screens one hour before bed.",
	RecoveryYoga:          "Add a weekly yoga or pilates session.",
	RecoveryOutdoorWalk:   "Take a 30-minute walk outdoors.",
	LabelStressLow:        "low",
	LabelStressMedium:     "medium",
	LabelStressHigh:       "high",

	MilestoneAdvanced:          "advanced level reached",
	MilestoneUpperIntermediate: "upper-intermediate level",
	MilestoneIntermediate:      "intermediate mastery",
	MilestoneFoundation:        "foundation complete",

	ExerciseBackhandWallDrill: "backhand wall drill",
	ExerciseHIITRunning:       "high-intensity interval running",
	ExercisePlyometricJumps:   "plyometric jumps",
	ExerciseMatchSimulation:   "match simulation",
	LabelTimeMorning:          "morning",
	LabelTimeAfternoon:        "afternoon",
	LabelTimeEvening:          "evening",
	LabelRestDay:              "rest day",

	AdviceRecovery:        "Fatigue is building up. Prioritise recovery: sleep, stretching and an easy day.",
	AdviceReduceIntensity: "Your intensity is high while your condition is low. Reduce the training intensity.",
	AdviceRestDay:         "You have trained many days in a row. Take a rest day.",
	AdviceMotivationLow:   "Your completion rate is low. Set smaller goals and build the habit step by step.",
	AdviceMotivationHigh:  "Great consistency! You are completing almost every session.",
	AdvicePlateau:         "Plateau detected. %v",
	AdviceInjury:          "Injury risk is %v. Plan %v recovery day(s).",
	AdviceHealth:          "Your health score is %v/100. Focus on sleep and stress management.",

	JournalRecovery:  "Sounds like you are tired. Take it easy today and focus on recovery.",
	JournalTechnique: "Nice technique work! Keep repeating the stroke with a consistent swing.",
	JournalPositive:  "Great session! Keep that energy going.",
	JournalInjury:    "Pain is a warning sign. Rest the area and warm up thoroughly before playing.",
	JournalGeneric:   "Thanks for logging your session. Every entry brings you closer to your goal!",
	JournalDrill:     "Work on your %v: %v (%v).",

	PhasePreparationEase:     "Early preparation: keep intensity moderate and build your base.",
	PhasePreparationVolume:   "Fatigue is high for the preparation phase: reduce volume this week.",
	PhasePreparationBuild:    "Preparation is on track: gradually increase training volume.",
	PhaseIntensityRecovery:   "Fatigue is high during the intensity phase: add an extra recovery day.",
	PhaseIntensityProgress:   "You are handling the load well: increase intensity by about 10%.",
	PhaseIntensityHold:       "Hold the current intensity and focus on quality.",
	PhasePeakTaper:           "Condition is low before the peak: taper and cut volume by 40%.",
	PhasePeakSharpen:         "Peak phase: sharpen with short, match-like sessions.",
	PhaseRecoveryKeepLight:   "Recovery phase: keep sessions light, intensity is too high.",
	PhaseRecoveryRest:        "Still fatigued: take extra full rest days.",
	PhaseRecoveryReady:       "Well recovered: get ready for the next preparation phase.",
	PhaseMaintainCurrentPlan: "Maintain the current plan.",

	ReportSummary:         "Performance trend: %v, health score: %v/100, injury risk: %v.",
	ReportNextStep:        "%v: %v (%v)",
	ReportWarningHighRisk: "High injury risk: rest before your next session.",
	ReportWarningStress:   "High stress detected in your journal.",
	ReportWarningPlateau:  "Performance plateau detected.",

	PlanGoalIntensity:  "Keep session intensity around %v/10.",
	PlanGoalTime:       "Train in the %v, when you perform best.",
	PlanGoalAttendance: "Complete all %v planned sessions.",
	PlanGoalStretching: "Stretch for 10 minutes after every session.",

	PlanTriggerFatigue:   "Fatigue 8 or higher: reduce the session by 30%.",
	PlanTriggerCondition: "Condition 3 or lower: turn the day into a rest day.",
	PlanTriggerMisses:    "3 missed sessions in a row: halve the volume and restart.",
}

var korean = map[Key]string{
	TrendNeedMoreData:    "추세 분석을 위해 최소 10회 이상의 운동 기록이 필요합니다.",
	TrendActionPlateau:   "정체기입니다: 강도를 약 15% 높이거나 새로운 드릴을 도입하세요.",
	TrendActionImproving: "향상 중입니다: 현재 프로그램을 유지하세요.",
	TrendActionDeclining: "하락세입니다: 회복과 영양 상태를 점검하세요.",
	TrendActionStable:    "안정적입니다: 꾸준히 훈련하며 작은 변화를 주세요.",
	LabelTrendImproving:  "향상",
	LabelTrendStable:     "유지",
	LabelTrendDeclining:  "하락",

	RiskFactorFatigue:        "피로 누적",
	RiskFactorVolume:         "급격한 운동량 증가",
	RiskFactorSoreness:       "지속적인 근육통",
	RiskFactorSleep:          "수면 부족",
	RiskMeasureFatigue:       "액티브 리커버리와 마사지",
	RiskMeasureVolume:        "점진적 부하 관리 (주당 최대 10% 증가)",
	RiskMeasureSoreness:      "단백질 섭취와 수면 시간 늘리기",
	RiskMeasureSleep:         "수면 위생 개선과 스트레스 관리",
	RiskMeasureFullRest:      "즉시 2~3일 완전 휴식",
	RiskMeasureReduceIntense: "훈련 강도 50% 감소",
	LabelRiskLow:             "낮음",
	LabelRiskMedium:          "보통",
	LabelRiskHigh:            "높음",

	SkillForehand:            "포핸드",
	SkillBackhand:            "백핸드",
	SkillServe:               "서브",
	SkillVolley:              "발리",
	SkillDrop:                "드롭샷",
	SkillDrive:               "드라이브",
	SkillBoast:               "보스트",
	SkillLob:                 "로브",
	WeaknessDropAccuracy:     "드롭샷 정확도",
	WeaknessVolleyReaction:   "발리 반응 속도",
	DrillDropFrontCorner:     "프론트 코너 드롭샷 반복 연습",
	DrillVolleyExchange:      "빠른 발리 교환 드릴",
	FrequencyDaily15Min:      "매일 15분",
	FrequencyThreePerWeek:    "주 3회",
	TacticPacing:             "강도가 높습니다: 랠리 페이스를 조절하고 결정적인 순간을 위해 체력을 아끼세요.",
	TacticBackhandCrossCourt: "크로스 코트 드라이브로 상대의 백핸드를 공략하세요.",
	TacticTRecovery:          "매 샷 이후 T 포지션으로 더 빠르게 복귀하세요.",

	NutritionMagnesium:    "잠들기 전 마그네슘이 풍부한 음식(바나나, 견과류)을 드세요.",
	NutritionCarbProtein:  "운동 후 30분 이내에 탄수화물과 단백질을 3:1 비율로 섭취하세요.",
	NutritionProteinPerKg: "하루 체중 1kg당 1.6~2.0g의 단백질을 섭취하세요.",
	RecoveryMeditation:    "매일 10분 명상 또는 호흡 운동을 하세요.",
	RecoveryFoamRolling:   "주 2회 마사지 또는 폼롤링을 하세요.",
	RecoveryScreenCurfew:  "잠들기 1시간 전에는 화면을 보지 마세요.",
	RecoveryYoga:          "주 1회 요가 또는 필라테스를 추가하세요.",
	RecoveryOutdoorWalk:   "야외에서 30분 산책하세요.",
	LabelStressLow:        "낮음",
	LabelStressMedium:     "보통",
	LabelStressHigh:       "높음",

	MilestoneAdvanced:          "상급 수준 도달",
	MilestoneUpperIntermediate: "중상급 수준",
	MilestoneIntermediate:      "중급 숙달",
	MilestoneFoundation:        "기초 완성",

	ExerciseBackhandWallDrill: "백핸드 벽치기 드릴",
	ExerciseHIITRunning:       "고강도 인터벌 러닝",
	ExercisePlyometricJumps:   "플라이오메트릭 점프",
	ExerciseMatchSimulation:   "실전 경기 시뮬레이션",
	LabelTimeMorning:          "오전",
	LabelTimeAfternoon:        "오후",
	LabelTimeEvening:          "저녁",
	LabelRestDay:              "휴식일",

	AdviceRecovery:        "피로가 누적되고 있습니다. 수면, 스트레칭, 가벼운 운동으로 회복에 집중하세요.",
	AdviceReduceIntensity: "컨디션에 비해 강도가 높습니다. 운동 강도를 낮추세요.",
	AdviceRestDay:         "연속으로 많은 날을 운동했습니다. 휴식일을 가지세요.",
	AdviceMotivationLow:   "완료율이 낮습니다. 작은 목표부터 세우고 습관을 만들어 보세요.",
	AdviceMotivationHigh:  "훌륭한 꾸준함입니다! 거의 모든 운동을 완료하고 있어요.",
	AdvicePlateau:         "정체기가 감지되었습니다. %v",
	AdviceInjury:          "부상 위험도가 %v입니다. %v일의 회복 기간을 계획하세요.",
	AdviceHealth:          "건강 점수가 %v/100입니다. 수면과 스트레스 관리에 집중하세요.",

	JournalRecovery:  "많이 피곤하신 것 같아요. 오늘은 무리하지 말고 회복에 집중하세요.",
	JournalTechnique: "기술 연습 좋습니다! 일정한 스윙으로 반복 연습을 계속하세요.",
	JournalPositive:  "멋진 운동이었어요! 그 에너지를 계속 이어가세요.",
	JournalInjury:    "통증은 경고 신호입니다. 해당 부위를 쉬게 하고 충분히 워밍업하세요.",
	JournalGeneric:   "기록해 주셔서 감사합니다. 모든 기록이 목표에 한 걸음 더 가까워지게 합니다!",
	JournalDrill:     "%v 보완: %v (%v).",

	PhasePreparationEase:     "준비기 초반: 강도는 적당히 유지하고 기초 체력을 쌓으세요.",
	PhasePreparationVolume:   "준비기에 비해 피로가 높습니다: 이번 주 운동량을 줄이세요.",
	PhasePreparationBuild:    "준비기가 순조롭습니다: 운동량을 점진적으로 늘리세요.",
	PhaseIntensityRecovery:   "강화기에 피로가 높습니다: 회복일을 하루 추가하세요.",
	PhaseIntensityProgress:   "부하를 잘 소화하고 있습니다: 강도를 약 10% 높이세요.",
	PhaseIntensityHold:       "현재 강도를 유지하며 질에 집중하세요.",
	PhasePeakTaper:           "시합 전 컨디션이 낮습니다: 테이퍼링하며 운동량을 40% 줄이세요.",
	PhasePeakSharpen:         "시합기: 짧고 실전 같은 세션으로 감각을 끌어올리세요.",
	PhaseRecoveryKeepLight:   "회복기: 강도가 높습니다. 가볍게 운동하세요.",
	PhaseRecoveryRest:        "아직 피로합니다: 완전 휴식일을 더 가지세요.",
	PhaseRecoveryReady:       "충분히 회복되었습니다: 다음 준비기를 준비하세요.",
	PhaseMaintainCurrentPlan: "현재 계획을 유지하세요.",

	ReportSummary:         "경기력 추세: %v, 건강 점수: %v/100, 부상 위험도: %v.",
	ReportNextStep:        "%v: %v (%v)",
	ReportWarningHighRisk: "부상 위험이 높습니다: 다음 운동 전에 휴식하세요.",
	ReportWarningStress:   "일지에서 높은 스트레스가 감지되었습니다.",
	ReportWarningPlateau:  "경기력 정체기가 감지되었습니다.",

	PlanGoalIntensity:  "운동 강도를 %v/10 수준으로 유지하세요.",
	PlanGoalTime:       "컨디션이 가장 좋은 %v 시간대에 운동하세요.",
	PlanGoalAttendance: "계획된 %v회의 운동을 모두 완료하세요.",
	PlanGoalStretching: "매 운동 후 10분간 스트레칭하세요.",

	PlanTriggerFatigue:   "피로도 8 이상: 운동량을 30% 줄이세요.",
	PlanTriggerCondition: "컨디션 3 이하: 휴식일로 전환하세요.",
	PlanTriggerMisses:    "3회 연속 불참: 운동량을 절반으로 줄이고 다시 시작하세요.",
}
