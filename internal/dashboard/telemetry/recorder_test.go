package telemetry

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := New(reg, "test", func() int { return 3 })
	require.NoError(t, err)

	r.Upload("ok", 2048)
	r.Upload("ok", 10)
	r.Upload("ERROR_CODE_TOO_LARGE", 0)
	r.Render("overview", "ok", 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.uploads.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.uploads.WithLabelValues("ERROR_CODE_TOO_LARGE")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.renders.WithLabelValues("overview", "ok")))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.sessions))
	assert.Equal(t, 1, testutil.CollectAndCount(r.renderTime))
}

func TestRecorderDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg, "test", nil)
	require.NoError(t, err)

	_, err = New(reg, "test", nil)
	assert.Error(t, err)
}
