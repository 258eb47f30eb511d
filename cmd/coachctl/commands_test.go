package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/2beens/squashcoach/internal/coaching/analytics"
	"github.com/2beens/squashcoach/internal/coaching/messages"
	"github.com/2beens/squashcoach/internal/coaching/store"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSnapshot(t *testing.T, days int) string {
	t.Helper()
	start := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	snap := store.Snapshot{}
	for i := 0; i < days; i++ {
		snap.Logs = append(snap.Logs, analytics.WorkoutLog{
			ID:              i + 1,
			Date:            start.AddDate(0, 0, i),
			IntensityRating: 6,
			ConditionRating: 6,
			FatigueLevel:    4,
			SleepQuality:    7,
			Completed:       true,
			DurationMinutes: 60,
			LoggedAt:        start.AddDate(0, 0, i),
		})
	}
	snap.Memos = []analytics.Memo{
		{ID: 1, Date: start, Content: "forehand drive felt solid"},
	}

	data, err := json.Marshal(snap)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	out := &bytes.Buffer{}
	root := newRootCmd()
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestReportCmd(t *testing.T) {
	path := writeSnapshot(t, 14)

	out, err := runCmd(t, "report", "--file", path, "--lang", "en", "--today", "2026-03-15")
	require.NoError(t, err)
	assert.Contains(t, out, "REPORT")
	assert.Contains(t, out, "Performance trend:")

	out, err = runCmd(t, "report", "-f", path, "--lang", "ko", "--today", "2026-03-15")
	require.NoError(t, err)
	assert.Contains(t, out, "경기력 추세:")
}

func TestPlanCmd(t *testing.T) {
	path := writeSnapshot(t, 20)
	catalog := messages.NewCatalog(messages.English)

	out, err := runCmd(t, "plan", "--file", path, "--lang", "en", "--phase", "intensity",
		"--today", "2026-03-20", "--target", "2026-05-01")
	require.NoError(t, err)
	assert.Contains(t, out, "PLAN intensity")
	assert.Equal(t, 2, strings.Count(out, "  "+catalog.Template(messages.English, messages.LabelRestDay)+"\n"))
}

func TestAdviceCmd(t *testing.T) {
	path := writeSnapshot(t, 10)

	out, err := runCmd(t, "advice", "--file", path, "--today", "2026-03-10")
	require.NoError(t, err)
	assert.Contains(t, out, "ADVICE")
}

func TestInterpretCmd(t *testing.T) {
	path := writeSnapshot(t, 0)
	catalog := messages.NewCatalog(messages.English)

	out, err := runCmd(t, "interpret", "--file", path, "--lang", "en", "so", "tired", "today")
	require.NoError(t, err)
	assert.Contains(t, out, catalog.Render(messages.English, messages.New(messages.JournalRecovery)))

	_, err = runCmd(t, "interpret", "--file", path)
	assert.Error(t, err)
}

func TestCmd_InvalidInput(t *testing.T) {
	path := writeSnapshot(t, 3)

	_, err := runCmd(t, "report")
	assert.EqualError(t, err, "--file is required")

	_, err = runCmd(t, "report", "--file", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "read snapshot")

	_, err = runCmd(t, "report", "--file", path, "--phase", "offseason")
	assert.ErrorIs(t, err, analytics.ErrUnknownPhase)

	_, err = runCmd(t, "plan", "--file", path, "--target", "soon")
	assert.ErrorContains(t, err, "invalid --target")

	_, err = runCmd(t, "advice", "--file", path, "--today", "yesterday")
	assert.ErrorContains(t, err, "invalid --today")
}
