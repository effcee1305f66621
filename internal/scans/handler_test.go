package scans

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"glowyze-backend/internal/shared/server/middleware"
)

const testGuestID = "3f1c2a7e-5b8d-4c21-9a0e-2b7d6f4e8c11"

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")
	api.Use(middleware.Auth())
	NewHandler(NewService(NewMemoryRepo())).RegisterRoutes(api)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Guest-Id", testGuestID)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestScanLifecycleOverHTTP(t *testing.T) {
	r := newTestRouter()

	resp := do(r, http.MethodGet, "/api/v1/scans/latest", "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 before any scan, got %d", resp.Code)
	}

	resp = do(r, http.MethodPost, "/api/v1/scans",
		`{"overallScore":64,"metrics":{"acne":55,"wrinkles":12,"pigmentation":33,"texture":40},"summary":"Active breakouts"}`)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var created View
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.PrimaryConcern != "acne" || created.Bands["acne"] != BandPoor {
		t.Fatalf("unexpected view %+v", created)
	}

	resp = do(r, http.MethodGet, "/api/v1/scans", "")
	if resp.Code != http.StatusOK || !strings.Contains(resp.Body.String(), created.ID) {
		t.Fatalf("expected scan in history, got %d: %s", resp.Code, resp.Body.String())
	}

	resp = do(r, http.MethodDelete, "/api/v1/scans/"+created.ID, "")
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
	resp = do(r, http.MethodDelete, "/api/v1/scans/"+created.ID, "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", resp.Code)
	}
}

func TestCreateScanRejectsOutOfRange(t *testing.T) {
	r := newTestRouter()
	resp := do(r, http.MethodPost, "/api/v1/scans",
		`{"overallScore":64,"metrics":{"acne":155,"wrinkles":12,"pigmentation":33,"texture":40}}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "metrics.acne") {
		t.Fatalf("expected field name in details, got %s", resp.Body.String())
	}
}

func TestListRejectsBadLimit(t *testing.T) {
	r := newTestRouter()
	resp := do(r, http.MethodGet, "/api/v1/scans?limit=many", "")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
