package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/squashcoach/internal/coaching/analytics"
	"github.com/2beens/squashcoach/internal/telemetry/tracing"
	"github.com/2beens/squashcoach/pkg"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrInvalidLog   = errors.New("invalid workout log")
	ErrInvalidMemo  = errors.New("invalid memo")
	ErrDuplicateLog = errors.New("workout log already recorded")
)

const maxRating = 10

// LogQuery narrows the logs returned by GetLogs. Zero values mean no bound.
// With a Limit, the most recent logs are kept.
type LogQuery struct {
	Limit int
	From  time.Time
	To    time.Time
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func ValidateLog(l analytics.WorkoutLog) error {
	if l.Date.IsZero() {
		return fmt.Errorf("%w: date missing", ErrInvalidLog)
	}
	ratings := map[string]int{
		"intensity": l.IntensityRating,
		"condition": l.ConditionRating,
		"fatigue":   l.FatigueLevel,
		"soreness":  l.MuscleSoreness,
		"sleep":     l.SleepQuality,
	}
	for name, v := range ratings {
		if v < 0 || v > maxRating {
			return fmt.Errorf("%w: %s rating %d out of range", ErrInvalidLog, name, v)
		}
	}
	if l.DurationMinutes < 0 {
		return fmt.Errorf("%w: negative duration", ErrInvalidLog)
	}
	return nil
}

func ValidateMemo(m analytics.Memo) error {
	if strings.TrimSpace(m.Content) == "" {
		return fmt.Errorf("%w: content empty", ErrInvalidMemo)
	}
	if m.Date.IsZero() {
		return fmt.Errorf("%w: date missing", ErrInvalidMemo)
	}
	return nil
}

func (r *Repo) AddLog(ctx context.Context, userID string, l analytics.WorkoutLog) (_ analytics.WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.coach.addLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := ValidateLog(l); err != nil {
		return analytics.WorkoutLog{}, err
	}
	if l.LoggedAt.IsZero() {
		l.LoggedAt = time.Now()
	}

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workout_log (
				user_id, date, intensity_rating, condition_rating, fatigue_level,
				muscle_soreness, sleep_quality, completed, duration_minutes, category, logged_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id;`,
		userID, l.Date, l.IntensityRating, l.ConditionRating, l.FatigueLevel,
		l.MuscleSoreness, l.SleepQuality, l.Completed, l.DurationMinutes, l.Category, l.LoggedAt,
	).Scan(&l.ID)
	if pkg.IsUniqueViolationError(err) {
		return analytics.WorkoutLog{}, fmt.Errorf("%w: logged at %s", ErrDuplicateLog, l.LoggedAt.Format(time.RFC3339))
	}
	if err != nil {
		return analytics.WorkoutLog{}, fmt.Errorf("insert workout log: %w", err)
	}

	return l, nil
}

func (r *Repo) AddMemo(ctx context.Context, userID string, m analytics.Memo) (_ analytics.Memo, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.coach.addMemo")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := ValidateMemo(m); err != nil {
		return analytics.Memo{}, err
	}
	if m.Tags == nil {
		m.Tags = []string{}
	}

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO user_memo (user_id, date, content, tags) VALUES ($1, $2, $3, $4) RETURNING id;`,
		userID, m.Date, m.Content, m.Tags,
	).Scan(&m.ID)
	if err != nil {
		return analytics.Memo{}, fmt.Errorf("insert memo: %w", err)
	}

	return m, nil
}

// calendarDay brings a scanned date back to UTC. The driver hands timestamptz values
// back in the server's zone, west of UTC that moves a day into the one before.
func calendarDay(t time.Time) time.Time {
	return t.UTC()
}

// GetLogs returns the user's logs in chronological order.
func (r *Repo) GetLogs(ctx context.Context, userID string, q LogQuery) (_ []analytics.WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.coach.getLogs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("limit", q.Limit))

	conditions := []string{"user_id = $1"}
	args := []any{userID}
	if !q.From.IsZero() {
		args = append(args, q.From)
		conditions = append(conditions, fmt.Sprintf("date >= $%d", len(args)))
	}
	if !q.To.IsZero() {
		args = append(args, q.To)
		conditions = append(conditions, fmt.Sprintf("date <= $%d", len(args)))
	}
	limitClause := ""
	if q.Limit > 0 {
		args = append(args, q.Limit)
		limitClause = fmt.Sprintf(" LIMIT $%d", len(args))
	}

	query := `
		SELECT
			id, date, intensity_rating, condition_rating, fatigue_level,
			muscle_soreness, sleep_quality, completed, duration_minutes, category, logged_at
		FROM workout_log
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY date DESC, logged_at DESC` + limitClause + `;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query workout logs: %w", err)
	}
	defer rows.Close()

	var logs []analytics.WorkoutLog
	for rows.Next() {
		var l analytics.WorkoutLog
		if err := rows.Scan(
			&l.ID, &l.Date, &l.IntensityRating, &l.ConditionRating, &l.FatigueLevel,
			&l.MuscleSoreness, &l.SleepQuality, &l.Completed, &l.DurationMinutes, &l.Category, &l.LoggedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		l.Date = calendarDay(l.Date)
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iterate: %w", err)
	}

	// newest first from the query, callers expect oldest first
	for i, j := 0, len(logs)-1; i < j; i, j = i+1, j-1 {
		logs[i], logs[j] = logs[j], logs[i]
	}
	return logs, nil
}

// GetMemos returns the most recent memos, newest first.
func (r *Repo) GetMemos(ctx context.Context, userID string, limit int) (_ []analytics.Memo, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.coach.getMemos")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	query := `SELECT id, date, content, tags FROM user_memo WHERE user_id = $1 ORDER BY date DESC, id DESC`
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query+";", args...)
	if err != nil {
		return nil, fmt.Errorf("query memos: %w", err)
	}
	defer rows.Close()

	var memos []analytics.Memo
	for rows.Next() {
		var m analytics.Memo
		if err := rows.Scan(&m.ID, &m.Date, &m.Content, &m.Tags); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		m.Date = calendarDay(m.Date)
		memos = append(memos, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iterate: %w", err)
	}

	return memos, nil
}
