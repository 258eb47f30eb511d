package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/2beens/squashcoach/internal/coaching/analytics"
	"github.com/2beens/squashcoach/internal/telemetry/tracing"
)

// Snapshot is an offline export of one user's history, as read by coachctl.
type Snapshot struct {
	UserID     string                 `json:"userId,omitempty"`
	ExportedAt time.Time              `json:"exportedAt,omitempty"`
	Logs       []analytics.WorkoutLog `json:"logs"`
	Memos      []analytics.Memo       `json:"memos"`
}

// Export reads all logs in [from, to] and all memos of the user.
func (r *Repo) Export(ctx context.Context, userID string, from, to time.Time) (_ *Snapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.coach.export")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	logs, err := r.GetLogs(ctx, userID, LogQuery{From: from, To: to})
	if err != nil {
		return nil, err
	}
	memos, err := r.GetMemos(ctx, userID, 0)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		UserID:     userID,
		ExportedAt: time.Now().UTC(),
		Logs:       logs,
		Memos:      memos,
	}, nil
}

func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode snapshot [%s]: %w", path, err)
	}
	return &s, nil
}

func (s *Snapshot) WriteFile(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write snapshot [%s]: %w", path, err)
	}
	return nil
}
