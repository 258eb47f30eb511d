package analytics

import (
	"github.com/2beens/squashcoach/internal/coaching/messages"
)

var skillTerms = []struct {
	skill Skill
	terms []string
}{
	{SkillForehand, []string{"forehand", "포핸드"}},
	{SkillBackhand, []string{"backhand", "백핸드"}},
	{SkillServe, []string{"serve", "서브"}},
	{SkillVolley, []string{"volley", "발리"}},
	{SkillDrop, []string{"drop", "드롭"}},
	{SkillDrive, []string{"drive", "드라이브"}},
	{SkillBoast, []string{"boast", "보스트"}},
	{SkillLob, []string{"lob", "로브"}},
}

// AnalyzeTechnique counts skill mentions in the journal, picks the stronger side and
// proposes drills for under-practised shots.
func (e *Engine) AnalyzeTechnique(memos []Memo, logs []WorkoutLog) TechniqueResult {
	t := e.thresholds

	counts := make(map[Skill]int, len(skillTerms))
	for _, st := range skillTerms {
		counts[st.skill] = 0
		for _, m := range memos {
			counts[st.skill] += countTerms(m.Content, st.terms...)
		}
	}

	strength := SkillForehand
	if counts[SkillBackhand] > counts[SkillForehand] {
		strength = SkillBackhand
	}

	gaps := []SkillGap{}
	if counts[SkillDrop] < t.TechniqueDropMin {
		gaps = append(gaps, SkillGap{
			Area:      messages.WeaknessDropAccuracy,
			Drill:     messages.DrillDropFrontCorner,
			Frequency: messages.FrequencyDaily15Min,
		})
	}
	if counts[SkillVolley] < t.TechniqueVolleyMin {
		gaps = append(gaps, SkillGap{
			Area:      messages.WeaknessVolleyReaction,
			Drill:     messages.DrillVolleyExchange,
			Frequency: messages.FrequencyThreePerWeek,
		})
	}

	tactics := []messages.Message{}
	recent := recentLogs(logs, t.TacticalWindow)
	if len(recent) > 0 && avgOf(recent, intensity) > t.TacticalIntensity {
		tactics = append(tactics, messages.New(messages.TacticPacing))
	}
	tactics = append(tactics,
		messages.New(messages.TacticBackhandCrossCourt),
		messages.New(messages.TacticTRecovery),
	)

	return TechniqueResult{
		SkillCounts:    counts,
		Strengths:      []Skill{strength},
		SkillGaps:      gaps,
		TacticalAdvice: tactics,
	}
}
