package mcp

import (
	"context"
	"time"

	"github.com/2beens/squashcoach/internal/coaching"
	"github.com/2beens/squashcoach/internal/coaching/analytics"
)

// coachService is the subset of coaching.Service the tools call.
type coachService interface {
	Report(ctx context.Context, userID string, phase analytics.Phase) (*coaching.Result[analytics.ComprehensiveReport], error)
	WeeklyPlan(ctx context.Context, userID string, phase analytics.Phase, target time.Time) (*coaching.Result[analytics.WeeklyPlan], error)
	Advice(ctx context.Context, userID string) (*coaching.Result[[]analytics.AdviceEntry], error)
	InjuryRisk(ctx context.Context, userID string) (*coaching.Result[analytics.InjuryRiskResult], error)
	Prediction(ctx context.Context, userID string, target time.Time) (*coaching.Result[analytics.PerformancePrediction], error)
	PhaseAdjustment(ctx context.Context, userID string, week int, phase analytics.Phase) (*coaching.Result[coaching.PhaseAdjustment], error)
	InterpretJournal(ctx context.Context, userID, text string) (*coaching.Result[coaching.JournalInterpretation], error)
}
