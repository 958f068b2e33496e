package prometheus

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.ObserveRequest("GET", "/health", 200, 2*time.Millisecond)
	c.ObserveRequest("GET", "/health", 200, time.Millisecond)
	c.ObserveRequest("GET", "/", 200, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.requestsTotal.WithLabelValues("GET", "/health", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.requestsTotal.WithLabelValues("GET", "/", "200")))
	assert.Equal(t, 2, testutil.CollectAndCount(c.requestDuration))
}

func TestInFlight(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	c.IncInFlight()
	c.IncInFlight()
	c.DecInFlight()

	assert.Equal(t, 1.0, testutil.ToFloat64(c.requestsInFlight))
}

func TestServiceInfo(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.SetServiceInfo("nijouzu-api", "0.1.0")

	expected := `
# HELP nijouzu_service_info Service metadata, always 1
# TYPE nijouzu_service_info gauge
nijouzu_service_info{service="nijouzu-api",version="0.1.0"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "nijouzu_service_info"))
}

func TestCollectorsAreIsolatedPerRegistry(t *testing.T) {
	assert.NotPanics(t, func() {
		NewCollector(prometheus.NewRegistry())
		NewCollector(prometheus.NewRegistry())
	})
}
