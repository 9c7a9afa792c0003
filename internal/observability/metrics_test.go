package observability

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRecordsAndServes(t *testing.T) {
	m := NewMetrics(WithNamespace("test"))

	m.ObserveHTTPRequest(http.MethodGet, "/api/gigscore/:profileId", 200, 5*time.Millisecond)
	m.ObserveHTTPRequest(http.MethodGet, "", 404, time.Millisecond)
	m.ObserveScore("gigscore", time.Millisecond, nil)
	m.ObserveScore("gigscore", time.Millisecond, errors.New("boom"))
	m.IncBadgeAward("safety_verified")
	m.IncBusPublish("gigscore.updated", nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/gigscore/:profileId", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "unmatched", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.scoreComputed.WithLabelValues("gigscore", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.badgeAwards.WithLabelValues("safety_verified")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "test_badges_awards_total"))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/", 200, time.Millisecond)
		m.ObserveScore("community", time.Millisecond, nil)
		m.ObservePersistedScore(50)
		m.IncBadgeAward("x")
		m.IncRecompute("ok")
		m.IncBusPublish("x", nil)
		m.IncInflight()
		m.DecInflight()
	})
	assert.Nil(t, m.Registry())
}
