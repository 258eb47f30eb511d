package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/squashcoach/internal/telemetry/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func Test_panicRecoveryMiddleware_nonPanic(t *testing.T) {
	metricsManager := metrics.NewTestManager()

	handler := PanicRecovery(metricsManager)
	next := &panicRecTestHandler{}
	handlerFunc := handler(next)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	handlerFunc.ServeHTTP(rr, req)

	assert.True(t, next.called)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, float64(0), testutil.ToFloat64(metricsManager.CounterHandleRequestPanic))
}

func Test_panicRecoveryMiddleware_panic(t *testing.T) {
	metricsManager := metrics.NewTestManager()

	r := mux.NewRouter()
	next := &panicRecTestHandler{panicWith: "YOLO"}
	r.Handle("/coach/users/{user}/report", next).Name("report")
	r.Use(PanicRecovery(metricsManager))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/coach/users/jimin/report", nil)
	r.ServeHTTP(rr, req)

	assert.True(t, next.called)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"internal error"}`, rr.Body.String())
	assert.Equal(t, float64(1), testutil.ToFloat64(metricsManager.CounterHandleRequestPanic))
}

func Test_panicRecoveryMiddleware_abortHandler(t *testing.T) {
	metricsManager := metrics.NewTestManager()

	handlerFunc := PanicRecovery(metricsManager)(&panicRecTestHandler{panicWith: http.ErrAbortHandler})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/coach/users/jimin/plan", nil)
	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		handlerFunc.ServeHTTP(rr, req)
	})
	assert.Equal(t, float64(0), testutil.ToFloat64(metricsManager.CounterHandleRequestPanic))
}

type panicRecTestHandler struct {
	panicWith any
	called    bool
}

func (p *panicRecTestHandler) ServeHTTP(http.ResponseWriter, *http.Request) {
	p.called = true
	if p.panicWith != nil {
		panic(p.panicWith)
	}
}
