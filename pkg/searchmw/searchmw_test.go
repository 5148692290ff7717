package searchmw_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// setupMeter installs a meter provider backed by a manual reader. It must be
// called before the middleware under test is constructed.
func setupMeter(t *testing.T) sdkmetric.Reader {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(provider)

	t.Cleanup(func() {
		require.NoError(t, provider.Shutdown(context.Background()))
	})
	return reader
}

func histogramPoints(t *testing.T, reader sdkmetric.Reader, name string) []metricdata.HistogramDataPoint[float64] {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			hist, ok := m.Data.(metricdata.Histogram[float64])
			require.True(t, ok, "%s is not a float64 histogram", name)
			return hist.DataPoints
		}
	}
	return nil
}

func attr(t *testing.T, dp metricdata.HistogramDataPoint[float64], key attribute.Key) attribute.Value {
	t.Helper()

	v, ok := dp.Attributes.Value(key)
	require.True(t, ok, "missing attribute %s", key)
	return v
}
