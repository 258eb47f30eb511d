package coaching

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/squashcoach/internal/coaching/analytics"
	"github.com/2beens/squashcoach/internal/coaching/messages"
	"github.com/2beens/squashcoach/internal/coaching/store"
	"github.com/2beens/squashcoach/internal/middleware"
	"github.com/2beens/squashcoach/internal/telemetry/metrics"
	"github.com/2beens/squashcoach/internal/telemetry/tracing"
	"github.com/2beens/squashcoach/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const (
	maxJournalTextLen = 4000
	dateLayout        = "2006-01-02"
)

type Handler struct {
	service     *Service
	catalog     *messages.Catalog
	versionInfo string
}

func NewHandler(service *Service, catalog *messages.Catalog, versionInfo string) *Handler {
	return &Handler{
		service:     service,
		catalog:     catalog,
		versionInfo: versionInfo,
	}
}

type InterpretRequest struct {
	Text string `json:"text"`
}

type LanguagesResponse struct {
	Default   messages.Language   `json:"default"`
	Supported []messages.Language `json:"supported"`
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
	journalAllowedPerMin int,
) {
	coachRouter := mainRouter.PathPrefix("/coach").Subrouter()
	coachRouter.HandleFunc("/health", handler.handleHealthCheck).Methods("GET").Name("health-check")
	coachRouter.HandleFunc("/version", handler.handleVersion).Methods("GET").Name("version")
	coachRouter.HandleFunc("/languages", handler.handleLanguages).Methods("GET").Name("languages")

	userRouter := coachRouter.PathPrefix("/users/{user}").Subrouter()
	userRouter.HandleFunc("/logs", handler.handleAddLog).Methods("POST", "OPTIONS").Name("add-log")
	userRouter.HandleFunc("/memos", handler.handleAddMemo).Methods("POST", "OPTIONS").Name("add-memo")
	userRouter.HandleFunc("/trends", handler.handleTrends).Methods("GET", "OPTIONS").Name("trends")
	userRouter.HandleFunc("/injury-risk", handler.handleInjuryRisk).Methods("GET", "OPTIONS").Name("injury-risk")
	userRouter.HandleFunc("/health", handler.handleHealth).Methods("GET", "OPTIONS").Name("health")
	userRouter.HandleFunc("/technique", handler.handleTechnique).Methods("GET", "OPTIONS").Name("technique")
	userRouter.HandleFunc("/prediction", handler.handlePrediction).Methods("GET", "OPTIONS").Name("prediction")
	userRouter.HandleFunc("/workout", handler.handleWorkout).Methods("GET", "OPTIONS").Name("workout")
	userRouter.HandleFunc("/advice", handler.handleAdvice).Methods("GET", "OPTIONS").Name("advice")
	userRouter.HandleFunc("/phase-adjustment", handler.handlePhaseAdjustment).Methods("GET", "OPTIONS").Name("phase-adjustment")
	userRouter.HandleFunc("/report", handler.handleReport).Methods("GET", "OPTIONS").Name("report")
	userRouter.HandleFunc("/plan", handler.handleWeeklyPlan).Methods("GET", "OPTIONS").Name("weekly-plan")

	journalRouter := userRouter.PathPrefix("/journal").Subrouter()
	journalRouter.HandleFunc("/interpret", handler.handleInterpretJournal).Methods("POST", "OPTIONS").Name("interpret-journal")
	journalRouter.Use(middleware.RateLimit(rateLimiter, metricsManager, "journal", journalAllowedPerMin))
}

func (handler *Handler) language(r *http.Request) messages.Language {
	fallback := handler.catalog.DefaultLanguage()
	if lang := r.URL.Query().Get("lang"); lang != "" {
		return messages.ParseLanguage(lang, fallback)
	}
	return messages.ParseLanguage(r.Header.Get("Accept-Language"), fallback)
}

func (handler *Handler) views(r *http.Request) Views {
	return NewViews(handler.catalog, handler.language(r))
}

func userID(r *http.Request) (string, bool) {
	user := strings.TrimSpace(mux.Vars(r)["user"])
	return user, user != ""
}

func phaseParam(r *http.Request) (analytics.Phase, error) {
	raw := r.URL.Query().Get("phase")
	if raw == "" {
		return analytics.PhasePreparation, nil
	}
	return analytics.ParsePhase(raw)
}

func targetParam(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("target")
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, raw)
}

// writeServiceError maps service errors to status codes.
func writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, analytics.ErrUnknownPhase),
		errors.Is(err, ErrInvalidWeek),
		errors.Is(err, store.ErrInvalidLog),
		errors.Is(err, store.ErrInvalidMemo):
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, store.ErrDuplicateLog):
		pkg.WriteJSONError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, context.Canceled):
		log.Debugf("%s: request cancelled", op)
	default:
		log.Errorf("%s: %s", op, err)
		pkg.WriteJSONError(w, op+" failed", http.StatusInternalServerError)
	}
}

func (handler *Handler) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "ok")
}

func (handler *Handler) handleVersion(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}

func (handler *Handler) handleLanguages(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSON(w, LanguagesResponse{
		Default:   handler.catalog.DefaultLanguage(),
		Supported: messages.SupportedLanguages(),
	}, http.StatusOK)
}

func (handler *Handler) handleAddLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.addLog")
	defer span.End()

	user, ok := userID(r)
	if !ok {
		pkg.WriteJSONError(w, "user missing", http.StatusBadRequest)
		return
	}

	var l analytics.WorkoutLog
	if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
		log.Errorf("add log, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid workout log", http.StatusBadRequest)
		return
	}

	added, err := handler.service.AddLog(ctx, user, l)
	if err != nil {
		writeServiceError(w, "add log", err)
		return
	}
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) handleAddMemo(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.addMemo")
	defer span.End()

	user, ok := userID(r)
	if !ok {
		pkg.WriteJSONError(w, "user missing", http.StatusBadRequest)
		return
	}

	var m analytics.Memo
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		log.Errorf("add memo, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid memo", http.StatusBadRequest)
		return
	}

	added, err := handler.service.AddMemo(ctx, user, m)
	if err != nil {
		writeServiceError(w, "add memo", err)
		return
	}
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) handleTrends(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.trends")
	defer span.End()

	user, ok := userID(r)
	if !ok {
		pkg.WriteJSONError(w, "user missing", http.StatusBadRequest)
		return
	}

	res, err := handler.service.Trends(ctx, user)
	if err != nil {
		writeServiceError(w, "trends", err)
		return
	}
	pkg.WriteJSON(w, handler.views(r).Trend(res), http.StatusOK)
}

func (handler *Handler) handleInjuryRisk(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.injuryRisk")
	defer span.End()

	user, ok := userID(r)
	if !ok {
		pkg.WriteJSONError(w, "user missing", http.StatusBadRequest)
		return
	}

	res, err := handler.service.InjuryRisk(ctx, user)
	if err != nil {
		writeServiceError(w, "injury risk", err)
		return
	}
	pkg.WriteJSON(w, handler.views(r).InjuryRisk(res), http.StatusOK)
}

func (handler *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.health")
	defer span.End()

	user, ok := userID(r)
	if !ok {
		pkg.WriteJSONError(w, "user missing", http.StatusBadRequest)
		return
	}

	res, err := handler.service.Health(ctx, user)
	if err != nil {
		writeServiceError(w, "health", err)
		return
	}
	pkg.WriteJSON(w, handler.views(r).Health(res), http.StatusOK)
}

func (handler *Handler) handleTechnique(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.technique")
	defer span.End()

	user, ok := userID(r)
	if !ok {
		pkg.WriteJSONError(w, "user missing", http.StatusBadRequest)
		return
	}

	res, err := handler.service.Technique(ctx, user)
	if err != nil {
		writeServiceError(w, "technique", err)
		return
	}
	pkg.WriteJSON(w, handler.views(r).Technique(res), http.StatusOK)
}

func (handler *Handler) handlePrediction(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.prediction")
	defer span.End()

	user, ok := userID(r)
	if !ok {
		pkg.WriteJSONError(w, "user missing", http.StatusBadRequest)
		return
	}
	target, err := targetParam(r)
	if err != nil {
		pkg.WriteJSONError(w, "invalid target date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	res, err := handler.service.Prediction(ctx, user, target)
	if err != nil {
		writeServiceError(w, "prediction", err)
		return
	}
	pkg.WriteJSON(w, handler.views(r).Prediction(res), http.StatusOK)
}

func (handler *Handler) handleWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.workout")
	defer span.End()

	user, ok := userID(r)
	if !ok {
		pkg.WriteJSONError(w, "user missing", http.StatusBadRequest)
		return
	}
	phase, err := phaseParam(r)
	if err != nil {
		writeServiceError(w, "workout", err)
		return
	}

	res, err := handler.service.Workout(ctx, user, phase)
	if err != nil {
		writeServiceError(w, "workout", err)
		return
	}
	pkg.WriteJSON(w, handler.views(r).Workout(res), http.StatusOK)
}

func (handler *Handler) handleAdvice(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.advice")
	defer span.End()

	user, ok := userID(r)
	if !ok {
		pkg.WriteJSONError(w, "user missing", http.StatusBadRequest)
		return
	}

	res, err := handler.service.Advice(ctx, user)
	if err != nil {
		writeServiceError(w, "advice", err)
		return
	}
	pkg.WriteJSON(w, handler.views(r).Advice(res), http.StatusOK)
}

func (handler *Handler) handleInterpretJournal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.interpretJournal")
	defer span.End()

	user, ok := userID(r)
	if !ok {
		pkg.WriteJSONError(w, "user missing", http.StatusBadRequest)
		return
	}

	var req InterpretRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("interpret journal, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid request", http.StatusBadRequest)
		return
	}
	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		pkg.WriteJSONError(w, "text empty", http.StatusBadRequest)
		return
	}
	if len(req.Text) > maxJournalTextLen {
		pkg.WriteJSONError(w, "text too long", http.StatusRequestEntityTooLarge)
		return
	}

	res, err := handler.service.InterpretJournal(ctx, user, req.Text)
	if err != nil {
		writeServiceError(w, "interpret journal", err)
		return
	}
	pkg.WriteJSON(w, handler.views(r).Journal(res), http.StatusOK)
}

func (handler *Handler) handlePhaseAdjustment(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.phaseAdjustment")
	defer span.End()

	user, ok := userID(r)
	if !ok {
		pkg.WriteJSONError(w, "user missing", http.StatusBadRequest)
		return
	}
	phase, err := phaseParam(r)
	if err != nil {
		writeServiceError(w, "phase adjustment", err)
		return
	}
	week := 1
	if raw := r.URL.Query().Get("week"); raw != "" {
		week, err = strconv.Atoi(raw)
		if err != nil {
			pkg.WriteJSONError(w, "week NaN", http.StatusBadRequest)
			return
		}
	}

	res, err := handler.service.PhaseAdjustment(ctx, user, week, phase)
	if err != nil {
		writeServiceError(w, "phase adjustment", err)
		return
	}
	pkg.WriteJSON(w, handler.views(r).PhaseAdjustment(res), http.StatusOK)
}

func (handler *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.report")
	defer span.End()

	user, ok := userID(r)
	if !ok {
		pkg.WriteJSONError(w, "user missing", http.StatusBadRequest)
		return
	}
	phase, err := phaseParam(r)
	if err != nil {
		writeServiceError(w, "report", err)
		return
	}

	res, err := handler.service.Report(ctx, user, phase)
	if err != nil {
		writeServiceError(w, "report", err)
		return
	}
	pkg.WriteJSON(w, handler.views(r).Report(res), http.StatusOK)
}

func (handler *Handler) handleWeeklyPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.weeklyPlan")
	defer span.End()

	user, ok := userID(r)
	if !ok {
		pkg.WriteJSONError(w, "user missing", http.StatusBadRequest)
		return
	}
	phase, err := phaseParam(r)
	if err != nil {
		writeServiceError(w, "weekly plan", err)
		return
	}
	target, err := targetParam(r)
	if err != nil {
		pkg.WriteJSONError(w, "invalid target date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	res, err := handler.service.WeeklyPlan(ctx, user, phase, target)
	if err != nil {
		writeServiceError(w, "weekly plan", err)
		return
	}
	pkg.WriteJSON(w, handler.views(r).WeeklyPlan(res), http.StatusOK)
}
