package coaching

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/squashcoach/internal/coaching/analytics"
	"github.com/2beens/squashcoach/internal/coaching/cache"
	"github.com/2beens/squashcoach/internal/coaching/messages"
	"github.com/2beens/squashcoach/internal/coaching/store"
	"github.com/2beens/squashcoach/internal/telemetry/metrics"
	"github.com/2beens/squashcoach/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=service.go -destination=service_mocks_test.go -package=coaching_test

const (
	KindTrends          = "trends"
	KindInjuryRisk      = "injury_risk"
	KindHealth          = "health"
	KindTechnique       = "technique"
	KindPrediction      = "prediction"
	KindWorkout         = "workout"
	KindAdvice          = "advice"
	KindJournal         = "journal"
	KindPhaseAdjustment = "phase_adjustment"
	KindReport          = "report"
	KindWeeklyPlan      = "weekly_plan"

	kindRevision = "revision"

	// DefaultTargetWeeks is used for predictions and plans when no target date is given.
	DefaultTargetWeeks = 12
)

var ErrInvalidWeek = errors.New("week must be positive")

type LogProvider interface {
	GetLogs(ctx context.Context, userID string, q store.LogQuery) ([]analytics.WorkoutLog, error)
}

type MemoProvider interface {
	GetMemos(ctx context.Context, userID string, limit int) ([]analytics.Memo, error)
}

type Recorder interface {
	AddLog(ctx context.Context, userID string, l analytics.WorkoutLog) (analytics.WorkoutLog, error)
	AddMemo(ctx context.Context, userID string, m analytics.Memo) (analytics.Memo, error)
}

type Store interface {
	LogProvider
	MemoProvider
	Recorder
}

// Result wraps every analysis with the metadata of the run that produced it.
type Result[T any] struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Kind        string    `json:"kind"`
	GeneratedAt time.Time `json:"generatedAt"`
	Cached      bool      `json:"cached"`
	Data        T         `json:"data"`
}

type PhaseAdjustment struct {
	Week       int                    `json:"week"`
	Phase      analytics.Phase        `json:"phase"`
	Metrics    analytics.PhaseMetrics `json:"metrics"`
	Suggestion messages.Message       `json:"suggestion"`
}

type JournalInterpretation struct {
	Text    string           `json:"text"`
	Message messages.Message `json:"message"`
}

type ServiceParams struct {
	Store        Store
	Cache        cache.Cache // optional
	Engine       *analytics.Engine
	Metrics      *metrics.Manager
	CacheTTL     time.Duration
	HistoryLimit int
	MemoLimit    int
}

type Service struct {
	store        Store
	cache        cache.Cache
	engine       *analytics.Engine
	metrics      *metrics.Manager
	cacheTTL     time.Duration
	historyLimit int
	memoLimit    int

	inflight singleflight.Group
}

func NewService(params ServiceParams) *Service {
	engine := params.Engine
	if engine == nil {
		engine = analytics.NewEngine()
	}
	return &Service{
		store:        params.Store,
		cache:        params.Cache,
		engine:       engine,
		metrics:      params.Metrics,
		cacheTTL:     params.CacheTTL,
		historyLimit: params.HistoryLimit,
		memoLimit:    params.MemoLimit,
	}
}

type input struct {
	logs  []analytics.WorkoutLog
	memos []analytics.Memo
}

func (s *Service) fetch(ctx context.Context, userID string) (_ input, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.coach.fetch")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var in input
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logs, err := s.store.GetLogs(gCtx, userID, store.LogQuery{Limit: s.historyLimit})
		if err != nil {
			return fmt.Errorf("get logs: %w", err)
		}
		in.logs = logs
		return nil
	})
	g.Go(func() error {
		memos, err := s.store.GetMemos(gCtx, userID, s.memoLimit)
		if err != nil {
			return fmt.Errorf("get memos: %w", err)
		}
		in.memos = memos
		return nil
	})
	if err := g.Wait(); err != nil {
		return input{}, err
	}

	span.SetAttributes(
		attribute.Int("logs", len(in.logs)),
		attribute.Int("memos", len(in.memos)),
	)
	return in, nil
}

// revision changes every time the user adds data. It is part of every analysis key,
// stale entries are never read again and just expire. A lost revision is replaced by a
// fresh one, never by a value an older revision may have had.
func (s *Service) revision(ctx context.Context, userID string) string {
	if s.cache == nil {
		return "0"
	}
	if rev, ok := s.currentRevision(ctx, userID); ok {
		return rev
	}

	// concurrent first readers agree on one revision
	shared, _, _ := s.inflight.Do(cache.Key(userID, kindRevision, "init"), func() (any, error) {
		if rev, ok := s.currentRevision(ctx, userID); ok {
			return rev, nil
		}
		return s.bumpRevision(ctx, userID), nil
	})
	return shared.(string)
}

func (s *Service) currentRevision(ctx context.Context, userID string) (string, bool) {
	entry, found, err := s.cache.Get(ctx, cache.Key(userID, kindRevision, "current"))
	if err != nil {
		log.Errorf("coach service: get revision for [%s]: %s", userID, err)
		return "", false
	}
	if !found {
		return "", false
	}
	var rev string
	if err := json.Unmarshal(entry.Data, &rev); err != nil || rev == "" {
		return "", false
	}
	return rev, true
}

// bumpRevision stores and returns a new revision. If storing fails the revision is
// still unique, so nothing cached before can match it.
func (s *Service) bumpRevision(ctx context.Context, userID string) string {
	rev := uuid.NewString()
	if s.cache == nil {
		return rev
	}
	data, _ := json.Marshal(rev)
	if err := s.cache.Set(ctx, cache.Key(userID, kindRevision, "current"), data, 0); err != nil {
		log.Errorf("coach service: bump revision for [%s]: %s", userID, err)
	}
	return rev
}

func (s *Service) countCache(kind, result string) {
	if s.metrics == nil {
		return
	}
	s.metrics.CounterCache.With(prometheus.Labels{"kind": kind, "result": result}).Inc()
}

func (s *Service) observe(kind string, begin time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.CounterAnalyses.With(prometheus.Labels{"kind": kind}).Inc()
	s.metrics.HistogramAnalysisDuration.With(prometheus.Labels{"kind": kind}).Observe(time.Since(begin).Seconds())
}

func newResult[T any](s *Service, userID, kind string, data T) *Result[T] {
	return &Result[T]{
		ID:          uuid.NewString(),
		UserID:      userID,
		Kind:        kind,
		GeneratedAt: s.engine.Now().UTC(),
		Data:        data,
	}
}

// analyze returns the cached result for (user, kind, variant) or computes, stores and
// returns a fresh one. Concurrent misses on the same key share one computation.
func analyze[T any](
	ctx context.Context,
	s *Service,
	userID, kind, variant string,
	compute func(in input) T,
) (_ *Result[T], err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.coach.analyze")
	span.SetAttributes(attribute.String("kind", kind), attribute.String("variant", variant))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	key := cache.Key(userID, kind, variant+"::"+s.revision(ctx, userID))
	if s.cache != nil {
		entry, found, err := s.cache.Get(ctx, key)
		switch {
		case err != nil:
			log.Errorf("coach service: cache get [%s]: %s", key, err)
			s.countCache(kind, "error")
		case found:
			var res Result[T]
			if err := json.Unmarshal(entry.Data, &res); err == nil {
				log.Tracef("coach service: cache hit [%s]", key)
				s.countCache(kind, "hit")
				res.Cached = true
				return &res, nil
			}
			log.Errorf("coach service: corrupt cache entry [%s]", key)
			s.countCache(kind, "error")
		default:
			log.Tracef("coach service: cache miss [%s]", key)
			s.countCache(kind, "miss")
		}
	}

	// the computation outlives a cancelled caller, other waiters may still need it
	shared, err, _ := s.inflight.Do(key, func() (any, error) {
		flightCtx := context.WithoutCancel(ctx)
		in, err := s.fetch(flightCtx, userID)
		if err != nil {
			return nil, err
		}

		begin := time.Now()
		res := newResult(s, userID, kind, compute(in))
		s.observe(kind, begin)

		if s.cache != nil {
			if data, err := json.Marshal(res); err != nil {
				log.Errorf("coach service: marshal [%s]: %s", key, err)
			} else if err := s.cache.Set(flightCtx, key, data, s.cacheTTL); err != nil {
				log.Errorf("coach service: cache set [%s]: %s", key, err)
			}
		}
		return res, nil
	})
	if err != nil {
		return nil, err
	}

	res := *shared.(*Result[T])
	return &res, nil
}

func (s *Service) Trends(ctx context.Context, userID string) (*Result[analytics.TrendResult], error) {
	return analyze(ctx, s, userID, KindTrends, "all", func(in input) analytics.TrendResult {
		return s.engine.AnalyzeTrends(in.logs)
	})
}

func (s *Service) InjuryRisk(ctx context.Context, userID string) (*Result[analytics.InjuryRiskResult], error) {
	return analyze(ctx, s, userID, KindInjuryRisk, "all", func(in input) analytics.InjuryRiskResult {
		return s.engine.PredictInjuryRisk(in.logs)
	})
}

func (s *Service) Health(ctx context.Context, userID string) (*Result[analytics.HealthResult], error) {
	return analyze(ctx, s, userID, KindHealth, "all", func(in input) analytics.HealthResult {
		return s.engine.AnalyzeHealth(in.logs, in.memos)
	})
}

func (s *Service) Technique(ctx context.Context, userID string) (*Result[analytics.TechniqueResult], error) {
	return analyze(ctx, s, userID, KindTechnique, "all", func(in input) analytics.TechniqueResult {
		return s.engine.AnalyzeTechnique(in.memos, in.logs)
	})
}

// Prediction forecasts performance at target; a zero target means DefaultTargetWeeks from now.
func (s *Service) Prediction(ctx context.Context, userID string, target time.Time) (*Result[analytics.PerformancePrediction], error) {
	target = s.targetOrDefault(target)
	variant := dateVariant(target) + "::" + s.todayVariant()
	return analyze(ctx, s, userID, KindPrediction, variant, func(in input) analytics.PerformancePrediction {
		return s.engine.PredictPerformance(in.logs, target)
	})
}

func (s *Service) Workout(ctx context.Context, userID string, phase analytics.Phase) (*Result[analytics.WorkoutPlan], error) {
	if !phase.IsValid() {
		return nil, fmt.Errorf("%w: %q", analytics.ErrUnknownPhase, phase)
	}
	return analyze(ctx, s, userID, KindWorkout, phase.String(), func(in input) analytics.WorkoutPlan {
		return s.engine.GenerateWorkout(in.logs, phase, s.engine.IdentifyWeaknesses(in.logs))
	})
}

func (s *Service) Advice(ctx context.Context, userID string) (*Result[[]analytics.AdviceEntry], error) {
	return analyze(ctx, s, userID, KindAdvice, "all", func(in input) []analytics.AdviceEntry {
		return s.engine.AnalyzeWorkoutData(in.logs, in.memos)
	})
}

// InterpretJournal is never cached, the text is different on every call.
func (s *Service) InterpretJournal(ctx context.Context, userID, text string) (_ *Result[JournalInterpretation], err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.coach.interpretJournal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	in, err := s.fetch(ctx, userID)
	if err != nil {
		return nil, err
	}

	begin := time.Now()
	res := newResult(s, userID, KindJournal, JournalInterpretation{
		Text:    text,
		Message: s.engine.InterpretJournalEntry(text, in.memos, in.logs),
	})
	s.observe(KindJournal, begin)

	return res, nil
}

func (s *Service) PhaseAdjustment(ctx context.Context, userID string, week int, phase analytics.Phase) (*Result[PhaseAdjustment], error) {
	if week <= 0 {
		return nil, ErrInvalidWeek
	}
	if !phase.IsValid() {
		return nil, fmt.Errorf("%w: %q", analytics.ErrUnknownPhase, phase)
	}
	variant := phase.String() + "::" + strconv.Itoa(week)
	return analyze(ctx, s, userID, KindPhaseAdjustment, variant, func(in input) PhaseAdjustment {
		m := s.engine.PhaseMetricsFrom(in.logs)
		return PhaseAdjustment{
			Week:       week,
			Phase:      phase,
			Metrics:    m,
			Suggestion: s.engine.SuggestPhaseAdjustment(week, phase, m),
		}
	})
}

func (s *Service) Report(ctx context.Context, userID string, phase analytics.Phase) (*Result[analytics.ComprehensiveReport], error) {
	if !phase.IsValid() {
		return nil, fmt.Errorf("%w: %q", analytics.ErrUnknownPhase, phase)
	}
	return analyze(ctx, s, userID, KindReport, phase.String(), func(in input) analytics.ComprehensiveReport {
		return s.engine.BuildComprehensiveReport(in.logs, in.memos, phase)
	})
}

func (s *Service) WeeklyPlan(ctx context.Context, userID string, phase analytics.Phase, target time.Time) (*Result[analytics.WeeklyPlan], error) {
	if !phase.IsValid() {
		return nil, fmt.Errorf("%w: %q", analytics.ErrUnknownPhase, phase)
	}
	target = s.targetOrDefault(target)
	variant := phase.String() + "::" + dateVariant(target) + "::" + s.todayVariant()
	return analyze(ctx, s, userID, KindWeeklyPlan, variant, func(in input) analytics.WeeklyPlan {
		return s.engine.BuildWeeklyPlan(in.logs, phase, target)
	})
}

func (s *Service) AddLog(ctx context.Context, userID string, l analytics.WorkoutLog) (analytics.WorkoutLog, error) {
	added, err := s.store.AddLog(ctx, userID, l)
	if err != nil {
		return analytics.WorkoutLog{}, fmt.Errorf("add log: %w", err)
	}
	if s.metrics != nil {
		s.metrics.CounterWorkoutLogs.Inc()
	}
	s.bumpRevision(ctx, userID)
	log.Debugf("coach service: user [%s] added workout log %d", userID, added.ID)
	return added, nil
}

func (s *Service) AddMemo(ctx context.Context, userID string, m analytics.Memo) (analytics.Memo, error) {
	added, err := s.store.AddMemo(ctx, userID, m)
	if err != nil {
		return analytics.Memo{}, fmt.Errorf("add memo: %w", err)
	}
	if s.metrics != nil {
		s.metrics.CounterMemos.Inc()
	}
	s.bumpRevision(ctx, userID)
	log.Debugf("coach service: user [%s] added memo %d", userID, added.ID)
	return added, nil
}

func (s *Service) targetOrDefault(target time.Time) time.Time {
	if !target.IsZero() {
		return target
	}
	return s.engine.Now().AddDate(0, 0, 7*DefaultTargetWeeks)
}

// todayVariant keys the analyses that count days from today, they go stale at midnight.
func (s *Service) todayVariant() string {
	return dateVariant(s.engine.Today())
}

func dateVariant(t time.Time) string {
	return t.Format("2006-01-02")
}
