package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	// Register should be safe to call multiple times
	Register()
	Register()

	ObserveHTTP("/shop/men", "GET", 200, 5*time.Millisecond)
	ObserveHTTP("/shop/men", "GET", 200, 7*time.Millisecond)
	assert.Equal(t, 2.0, testutil.ToFloat64(httpRequests.WithLabelValues("/shop/men", "GET", "200")))

	SetCatalogItems("menclothes", 12)
	assert.Equal(t, 12.0, testutil.ToFloat64(catalogItems.WithLabelValues("menclothes")))
}
