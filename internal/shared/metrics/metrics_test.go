package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveAdviceIncrementsCounter(t *testing.T) {
	before := testutil.ToFloat64(adviceComputedTotal.WithLabelValues("id", "true"))
	ObserveAdvice("id", true, 4)
	after := testutil.ToFloat64(adviceComputedTotal.WithLabelValues("id", "true"))
	if after-before != 1 {
		t.Fatalf("expected counter to increase by 1, got %v", after-before)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	IncScansRecorded()

	r := gin.New()
	r.Use(Middleware())
	r.GET("/metrics", Handler())

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "glowyze_scans_recorded_total") {
		t.Fatalf("expected scans counter in output")
	}
}
