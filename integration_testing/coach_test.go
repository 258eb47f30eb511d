//go:build integration_test || all_tests

package integration_testing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/2beens/squashcoach/internal/coaching/analytics"
	"github.com/2beens/squashcoach/internal/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type viewResponse struct {
	ID       string          `json:"id"`
	UserID   string          `json:"userId"`
	Kind     string          `json:"kind"`
	Cached   bool            `json:"cached"`
	Language string          `json:"language"`
	Data     json.RawMessage `json:"data"`
}

func (s *IntegrationTestSuite) do(ctx context.Context, method, path string, body any) (int, []byte) {
	t := s.T()

	var reqBody io.Reader
	if body != nil {
		bodyJson, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(bodyJson)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.AuthTokenHeader, testAPIToken)

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, respBytes
}

func (s *IntegrationTestSuite) getView(ctx context.Context, path string) viewResponse {
	t := s.T()
	status, respBytes := s.do(ctx, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, status, string(respBytes))

	var view viewResponse
	require.NoError(t, json.Unmarshal(respBytes, &view))
	return view
}

func (s *IntegrationTestSuite) addLogs(ctx context.Context, user string, days int) {
	t := s.T()
	today := time.Now().UTC().Truncate(24 * time.Hour)
	for i := days; i > 0; i-- {
		status, respBytes := s.do(ctx, http.MethodPost, fmt.Sprintf("/coach/users/%s/logs", user), analytics.WorkoutLog{
			Date:            today.AddDate(0, 0, -i).Add(18 * time.Hour),
			IntensityRating: 6,
			ConditionRating: 7,
			FatigueLevel:    4,
			SleepQuality:    7,
			Completed:       true,
			DurationMinutes: 60,
			Category:        "court",
		})
		require.Equal(t, http.StatusCreated, status, string(respBytes))
	}
}

func (s *IntegrationTestSuite) TestPublicEndpoints() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	status, body := s.do(ctx, http.MethodGet, "/coach/version", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "test-version-info", string(body))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, serverEndpoint+"/coach/users/nobody/report", nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestReport_CachedUntilNewData() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	user := "integration-report"
	s.addLogs(ctx, user, 14)

	first := s.getView(ctx, "/coach/users/"+user+"/report?phase=intensity&lang=en")
	assert.False(t, first.Cached)
	assert.Equal(t, user, first.UserID)
	assert.Equal(t, "en", first.Language)

	second := s.getView(ctx, "/coach/users/"+user+"/report?phase=intensity&lang=ko")
	assert.True(t, second.Cached)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "ko", second.Language)

	status, body := s.do(ctx, http.MethodPost, "/coach/users/"+user+"/memos", analytics.Memo{
		Date:    time.Now().UTC(),
		Content: "backhand drop felt weak today",
	})
	require.Equal(t, http.StatusCreated, status, string(body))

	third := s.getView(ctx, "/coach/users/"+user+"/report?phase=intensity&lang=en")
	assert.False(t, third.Cached)
	assert.NotEqual(t, first.ID, third.ID)
}

func (s *IntegrationTestSuite) TestAnalyses() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	user := "integration-analyses"
	s.addLogs(ctx, user, 21)

	for _, path := range []string{
		"trends",
		"injury-risk",
		"health",
		"technique",
		"prediction",
		"workout?phase=peak",
		"advice",
		"phase-adjustment?phase=recovery&week=2",
		"plan?phase=preparation",
	} {
		view := s.getView(ctx, "/coach/users/"+user+"/"+path)
		assert.Equal(t, user, view.UserID, path)
		assert.NotEmpty(t, view.Data, path)
	}

	var plan struct {
		Days []json.RawMessage `json:"days"`
	}
	view := s.getView(ctx, "/coach/users/"+user+"/plan?phase=preparation")
	assert.True(t, view.Cached)
	require.NoError(t, json.Unmarshal(view.Data, &plan))
	assert.Len(t, plan.Days, 7)

	status, _ := s.do(ctx, http.MethodGet, "/coach/users/"+user+"/workout?phase=offseason", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func (s *IntegrationTestSuite) TestInvalidLogRejected() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	status, body := s.do(ctx, http.MethodPost, "/coach/users/integration-invalid/logs", analytics.WorkoutLog{
		Date:            time.Now().UTC(),
		IntensityRating: 12,
	})
	assert.Equal(s.T(), http.StatusBadRequest, status, string(body))
}

func (s *IntegrationTestSuite) TestInterpretJournal() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	status, body := s.do(ctx, http.MethodPost, "/coach/users/integration-journal/journal/interpret?lang=en",
		map[string]string{"text": "so tired after the league match"},
	)
	require.Equal(t, http.StatusOK, status, string(body))

	var view viewResponse
	require.NoError(t, json.Unmarshal(body, &view))
	var journal struct {
		Text    string `json:"text"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(view.Data, &journal))
	assert.Equal(t, "so tired after the league match", journal.Text)
	assert.NotEmpty(t, journal.Message)
}
