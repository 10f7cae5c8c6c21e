package utils

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIMetricsRecording(t *testing.T) {
	m := NewAPIMetrics(nil)

	m.RecordSegmentation(12, 2)
	m.RecordSegmentation(0, 0)
	m.RecordError("ValidationError")
	m.RecordError("ValidationError")
	m.RecordAPIRequest("/segment", http.MethodPost, http.StatusOK, 3*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.SegmentsTotal()))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ErrorCount("ValidationError")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.ErrorCount("InternalError")))
}

func TestAPIMetricsInstancesAreIndependent(t *testing.T) {
	a := NewAPIMetrics(nil)
	b := NewAPIMetrics(nil)

	a.RecordSegmentation(5, 1)

	assert.Equal(t, 1.0, testutil.ToFloat64(a.SegmentsTotal()))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.SegmentsTotal()))
}

func TestAPIMetricsHandler(t *testing.T) {
	m := NewAPIMetrics(nil)
	m.RecordAPIRequest("/health", http.MethodGet, http.StatusOK, time.Millisecond)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `segmentation_api_requests_total{method="GET",path="/health",status="200"} 1`)
}
