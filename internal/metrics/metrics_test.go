package metrics

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(PrometheusMiddleware())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/error", func(c *gin.Context) {
		c.String(http.StatusInternalServerError, "error")
	})

	tests := []struct {
		name           string
		path           string
		label          string
		expectedStatus int
	}{
		{
			name:           "records metrics for successful request",
			path:           "/test",
			label:          "/test",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "records metrics for error request",
			path:           "/error",
			label:          "/error",
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "unmatched routes share one label",
			path:           "/nope/123",
			label:          "unmatched",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues(http.MethodGet, tt.label, strconv.Itoa(tt.expectedStatus)))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			after := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues(http.MethodGet, tt.label, strconv.Itoa(tt.expectedStatus)))
			assert.Equal(t, before+1, after)
		})
	}
}

func TestRecordFuelCalculation(t *testing.T) {
	before := testutil.ToFloat64(FuelCalculationsTotal.WithLabelValues(StatusSuccess))
	RecordFuelCalculation(2*time.Millisecond, StatusSuccess)
	RecordFuelCalculation(time.Millisecond, StatusInvalidInput)

	assert.Equal(t, before+1, testutil.ToFloat64(FuelCalculationsTotal.WithLabelValues(StatusSuccess)))
}

func TestRecordFuelWarning(t *testing.T) {
	RecordFuelWarning("2-Axle Truck")
	RecordFuelWarning("2-Axle Truck")

	assert.GreaterOrEqual(t, testutil.ToFloat64(FuelWarningsTotal.WithLabelValues("2-Axle Truck")), 2.0)
}

func TestRecordCacheOperation(t *testing.T) {
	before := testutil.ToFloat64(CacheOperationsTotal.WithLabelValues("get", "hit"))
	RecordCacheOperation("get", "hit")
	RecordCacheOperation("get", "miss")

	assert.Equal(t, before+1, testutil.ToFloat64(CacheOperationsTotal.WithLabelValues("get", "hit")))
}

func TestGauges(t *testing.T) {
	UpdateCacheMetrics(50, 100)
	assert.Equal(t, 50.0, testutil.ToFloat64(CacheSize))
	assert.Equal(t, 100.0, testutil.ToFloat64(CacheCapacity))

	SetCircuitBreakerState("truck_classes", 2)
	assert.Equal(t, 2.0, testutil.ToFloat64(CircuitBreakerState.WithLabelValues("truck_classes")))

	SetActiveTruckClasses(5)
	assert.Equal(t, 5.0, testutil.ToFloat64(TruckClassesActive))
}
