package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/2beens/squashcoach/internal/coaching"
	"github.com/2beens/squashcoach/internal/coaching/analytics"
	"github.com/2beens/squashcoach/internal/coaching/messages"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const dateLayout = "2006-01-02"

// Handler parses tool input, calls the coaching service and renders the result
// as localized JSON text content.
type Handler struct {
	service coachService
	catalog *messages.Catalog
}

func NewHandler(service coachService, catalog *messages.Catalog) *Handler {
	return &Handler{
		service: service,
		catalog: catalog,
	}
}

type UserInput struct {
	UserID string `json:"user_id" jsonschema:"Id of the player"`
	Lang   string `json:"lang,omitempty" jsonschema:"Output language (ko or en)"`
}

type PhaseInput struct {
	UserID string `json:"user_id" jsonschema:"Id of the player"`
	Phase  string `json:"phase,omitempty" jsonschema:"Training phase: preparation, intensity, peak or recovery"`
	Lang   string `json:"lang,omitempty" jsonschema:"Output language (ko or en)"`
}

type PlanInput struct {
	UserID     string `json:"user_id" jsonschema:"Id of the player"`
	Phase      string `json:"phase,omitempty" jsonschema:"Training phase: preparation, intensity, peak or recovery"`
	TargetDate string `json:"target_date,omitempty" jsonschema:"Competition date (YYYY-MM-DD)"`
	Lang       string `json:"lang,omitempty" jsonschema:"Output language (ko or en)"`
}

type PredictionInput struct {
	UserID     string `json:"user_id" jsonschema:"Id of the player"`
	TargetDate string `json:"target_date,omitempty" jsonschema:"Date to predict the performance for (YYYY-MM-DD)"`
	Lang       string `json:"lang,omitempty" jsonschema:"Output language (ko or en)"`
}

type PhaseAdjustmentInput struct {
	UserID string `json:"user_id" jsonschema:"Id of the player"`
	Phase  string `json:"phase,omitempty" jsonschema:"Training phase: preparation, intensity, peak or recovery"`
	Week   int    `json:"week,omitempty" jsonschema:"Week within the phase, starting at 1"`
	Lang   string `json:"lang,omitempty" jsonschema:"Output language (ko or en)"`
}

type JournalInput struct {
	UserID string `json:"user_id" jsonschema:"Id of the player"`
	Text   string `json:"text" jsonschema:"Journal entry to reply to"`
	Lang   string `json:"lang,omitempty" jsonschema:"Output language (ko or en)"`
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

func (h *Handler) views(lang string) coaching.Views {
	return coaching.NewViews(h.catalog, messages.ParseLanguage(lang, h.catalog.DefaultLanguage()))
}

func validUser(userID string) bool {
	return strings.TrimSpace(userID) != ""
}

func parsePhase(s string) (analytics.Phase, error) {
	if s == "" {
		return analytics.PhasePreparation, nil
	}
	return analytics.ParsePhase(s)
}

// parseDate returns the zero time for an empty value, the service then applies its default.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, s)
}

func serviceError(op string, err error) *mcp.CallToolResult {
	if errors.Is(err, analytics.ErrUnknownPhase) || errors.Is(err, coaching.ErrInvalidWeek) {
		return errorResult("Invalid input: " + err.Error())
	}
	return errorResult("Error building " + op + ": " + err.Error())
}

func (h *Handler) GetReportTool() func(context.Context, *mcp.CallToolRequest, PhaseInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in PhaseInput) (*mcp.CallToolResult, any, error) {
		if !validUser(in.UserID) {
			return errorResult("Missing user_id"), nil, nil
		}
		phase, err := parsePhase(in.Phase)
		if err != nil {
			return serviceError("report", err), nil, nil
		}
		res, err := h.service.Report(ctx, in.UserID, phase)
		if err != nil {
			return serviceError("report", err), nil, nil
		}
		return jsonResult(h.views(in.Lang).Report(res)), nil, nil
	}
}

func (h *Handler) GetWeeklyPlanTool() func(context.Context, *mcp.CallToolRequest, PlanInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in PlanInput) (*mcp.CallToolResult, any, error) {
		if !validUser(in.UserID) {
			return errorResult("Missing user_id"), nil, nil
		}
		phase, err := parsePhase(in.Phase)
		if err != nil {
			return serviceError("weekly plan", err), nil, nil
		}
		target, err := parseDate(in.TargetDate)
		if err != nil {
			return errorResult("Invalid target_date: use YYYY-MM-DD"), nil, nil
		}
		res, err := h.service.WeeklyPlan(ctx, in.UserID, phase, target)
		if err != nil {
			return serviceError("weekly plan", err), nil, nil
		}
		return jsonResult(h.views(in.Lang).WeeklyPlan(res)), nil, nil
	}
}

func (h *Handler) GetAdviceTool() func(context.Context, *mcp.CallToolRequest, UserInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserInput) (*mcp.CallToolResult, any, error) {
		if !validUser(in.UserID) {
			return errorResult("Missing user_id"), nil, nil
		}
		res, err := h.service.Advice(ctx, in.UserID)
		if err != nil {
			return serviceError("advice", err), nil, nil
		}
		return jsonResult(h.views(in.Lang).Advice(res)), nil, nil
	}
}

func (h *Handler) GetInjuryRiskTool() func(context.Context, *mcp.CallToolRequest, UserInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserInput) (*mcp.CallToolResult, any, error) {
		if !validUser(in.UserID) {
			return errorResult("Missing user_id"), nil, nil
		}
		res, err := h.service.InjuryRisk(ctx, in.UserID)
		if err != nil {
			return serviceError("injury risk", err), nil, nil
		}
		return jsonResult(h.views(in.Lang).InjuryRisk(res)), nil, nil
	}
}

func (h *Handler) GetPredictionTool() func(context.Context, *mcp.CallToolRequest, PredictionInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in PredictionInput) (*mcp.CallToolResult, any, error) {
		if !validUser(in.UserID) {
			return errorResult("Missing user_id"), nil, nil
		}
		target, err := parseDate(in.TargetDate)
		if err != nil {
			return errorResult("Invalid target_date: use YYYY-MM-DD"), nil, nil
		}
		res, err := h.service.Prediction(ctx, in.UserID, target)
		if err != nil {
			return serviceError("prediction", err), nil, nil
		}
		return jsonResult(h.views(in.Lang).Prediction(res)), nil, nil
	}
}

func (h *Handler) GetPhaseAdjustmentTool() func(context.Context, *mcp.CallToolRequest, PhaseAdjustmentInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in PhaseAdjustmentInput) (*mcp.CallToolResult, any, error) {
		if !validUser(in.UserID) {
			return errorResult("Missing user_id"), nil, nil
		}
		phase, err := parsePhase(in.Phase)
		if err != nil {
			return serviceError("phase adjustment", err), nil, nil
		}
		week := in.Week
		if week == 0 {
			week = 1
		}
		res, err := h.service.PhaseAdjustment(ctx, in.UserID, week, phase)
		if err != nil {
			return serviceError("phase adjustment", err), nil, nil
		}
		return jsonResult(h.views(in.Lang).PhaseAdjustment(res)), nil, nil
	}
}

func (h *Handler) InterpretJournalTool() func(context.Context, *mcp.CallToolRequest, JournalInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in JournalInput) (*mcp.CallToolResult, any, error) {
		if !validUser(in.UserID) {
			return errorResult("Missing user_id"), nil, nil
		}
		text := strings.TrimSpace(in.Text)
		if text == "" {
			return errorResult("Missing text"), nil, nil
		}
		res, err := h.service.InterpretJournal(ctx, in.UserID, text)
		if err != nil {
			return serviceError("journal reply", err), nil, nil
		}
		return jsonResult(h.views(in.Lang).Journal(res)), nil, nil
	}
}
