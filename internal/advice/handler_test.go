package advice

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"glowyze-backend/internal/profiles"
	"glowyze-backend/internal/scans"
	"glowyze-backend/internal/shared/server/middleware"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := newTestService(t, stubProfiles{profile: profiles.Default("guest")}, stubScans{err: scans.ErrNotFound})
	h := NewHandler(svc)

	r := gin.New()
	api := r.Group("/api/v1")
	h.RegisterPublicRoutes(api)
	protected := api.Group("")
	protected.Use(middleware.Auth())
	h.RegisterRoutes(protected)
	return r
}

func TestAdviceRequiresIdentity(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/advice", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestAdviceForGuest(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/advice?lang=id", nil)
	req.Header.Set("X-Guest-Id", "3f1c2a7e-5b8d-4c21-9a0e-2b7d6f4e8c11")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var page Page
	if err := json.Unmarshal(resp.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if page.Title != "Saran Kandungan" || page.Focus != "Normal" || len(page.Items) == 0 {
		t.Fatalf("unexpected page %+v", page)
	}
}

func TestPreviewEndpoint(t *testing.T) {
	r := newTestRouter(t)
	body := `{"skinType":"Sensitive","scan":{"acne":10,"wrinkles":80,"pigmentation":10,"texture":10}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/advice/preview", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var page Page
	if err := json.Unmarshal(resp.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if page.PrimaryConcern == nil || page.PrimaryConcern.Metric != "wrinkles" {
		t.Fatalf("unexpected concern %+v", page.PrimaryConcern)
	}
	if page.Items[0].ID != "retinol" || page.Items[0].Priority != 100 {
		t.Fatalf("unexpected top item %+v", page.Items[0])
	}
}

func TestPreviewEndpointValidation(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/advice/preview", strings.NewReader(`{"skinType":"Greasy"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestIngredientsEndpointNegotiates(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/ingredients", nil)
	req.Header.Set("Accept-Language", "id")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"locale":"id"`) {
		t.Fatalf("expected id locale, got %s", resp.Body.String())
	}
}
