package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	registry := NewRegistry("moar")

	assert.NotNil(t, registry)
	assert.NotNil(t, registry.registry)
	assert.InDelta(t, 0.0, testutil.ToFloat64(registry.interactions), 0.0001)
	assert.InDelta(t, 0.0, testutil.ToFloat64(registry.providerErrors), 0.0001)
	assert.InDelta(t, 0.0, testutil.ToFloat64(registry.generalExceptions), 0.0001)
	assert.InDelta(t, 0.0, testutil.ToFloat64(registry.commandErrors.WithLabelValues("moar")), 0.0001)
}

func TestRegistry_Counters(t *testing.T) {
	registry := NewRegistry()

	registry.IncInteractions()
	registry.IncInteractions()
	registry.IncProviderErrors()
	registry.IncCommandErrors("moar")
	registry.IncGeneralExceptions()

	assert.InDelta(t, 2.0, testutil.ToFloat64(registry.interactions), 0.0001)
	assert.InDelta(t, 1.0, testutil.ToFloat64(registry.providerErrors), 0.0001)
	assert.InDelta(t, 1.0, testutil.ToFloat64(registry.commandErrors.WithLabelValues("moar")), 0.0001)
	assert.InDelta(t, 1.0, testutil.ToFloat64(registry.generalExceptions), 0.0001)
}

func TestRegistry_SetUptime(t *testing.T) {
	registry := NewRegistry()

	registry.SetUptime(12.5)

	assert.InDelta(t, 12.5, testutil.ToFloat64(registry.uptime), 0.0001)
}

func TestRegistry_Render(t *testing.T) {
	t.Run("should expose counters at zero before any command", func(t *testing.T) {
		registry := NewRegistry("moar")
		registry.SetUptime(3)

		body, err := registry.Render()
		require.NoError(t, err)

		text := string(body)
		require.Contains(t, text, "purposebot_interactions_total 0")
		require.Contains(t, text, "purposebot_openai_errors_total 0")
		require.Contains(t, text, "purposebot_general_exceptions_total 0")
		require.Contains(t, text, `purposebot_command_errors_total{command="moar"} 0`)
		require.Contains(t, text, "purposebot_uptime_minutes 3")
		require.Contains(t, text, "# TYPE purposebot_response_latency_seconds summary")
	})

	t.Run("should include latency observations", func(t *testing.T) {
		registry := NewRegistry()
		registry.ObserveLatency(250 * time.Millisecond)
		registry.ObserveLatency(750 * time.Millisecond)

		body, err := registry.Render()
		require.NoError(t, err)

		text := string(body)
		require.Contains(t, text, "purposebot_response_latency_seconds_count 2")
		require.Contains(t, text, "purposebot_response_latency_seconds_sum 1")
	})

	t.Run("should render every family exactly once", func(t *testing.T) {
		registry := NewRegistry()

		body, err := registry.Render()
		require.NoError(t, err)

		require.Equal(t, 1, strings.Count(string(body), "# TYPE purposebot_interactions_total counter"))
	})
}
