package mcp

import (
	"net/http"

	"github.com/2beens/squashcoach/internal/coaching/messages"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with the coaching tools: report, weekly plan,
// advice, injury risk, prediction, phase adjustment and journal replies.
// Served over stdio by cmd/coach_mcp and over HTTP at /mcp by the main service.
func NewServer(service coachService, catalog *messages.Catalog) *mcp.Server {
	h := NewHandler(service, catalog)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "squashcoach",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_report",
		Description: "Returns the comprehensive report for a player: performance trend, injury risk, health, technique, warnings, recommendations and next steps. Optional: phase (preparation, intensity, peak, recovery), lang (ko, en).",
	}, h.GetReportTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_weekly_plan",
		Description: "Returns the next seven days of training for a player with rest days, exercises, target intensity and weekly goals. Optional: phase, target_date (YYYY-MM-DD), lang.",
	}, h.GetWeeklyPlanTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_advice",
		Description: "Returns prioritised advice (recovery, program adjustment, rest, motivation, plateau, injury prevention, health) from the player's recent workouts and journal. Optional: lang.",
	}, h.GetAdviceTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_injury_risk",
		Description: "Returns the injury risk level, score, risk factors, preventive measures and recommended recovery days. Optional: lang.",
	}, h.GetInjuryRiskTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_prediction",
		Description: "Returns the predicted performance level at a target date with a confidence interval and milestones. Optional: target_date (YYYY-MM-DD, defaults to 12 weeks from today), lang.",
	}, h.GetPredictionTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_phase_adjustment",
		Description: "Returns a training adjustment for the given week of a periodization phase, based on current intensity, condition and fatigue. Optional: phase, week, lang.",
	}, h.GetPhaseAdjustmentTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "interpret_journal",
		Description: "Replies to a free-text journal entry of the player (Korean or English). Args: user_id, text; optional: lang.",
	}, h.InterpretJournalTool())

	return s
}

// NewHTTPHandler serves the MCP server over streamable HTTP.
func NewHTTPHandler(s *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s
	}, nil)
}
