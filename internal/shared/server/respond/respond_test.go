package respond

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func serve(t *testing.T, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", handler)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/x", nil))
	return resp
}

func TestItemsSendsEmptyArrayForNil(t *testing.T) {
	resp := serve(t, func(c *gin.Context) { Items[string](c, nil) })
	if resp.Code != http.StatusOK || resp.Body.String() != `{"items":[]}` {
		t.Fatalf("unexpected response %d %s", resp.Code, resp.Body.String())
	}
}

func TestStatusHelpers(t *testing.T) {
	cases := []struct {
		name    string
		handler gin.HandlerFunc
		status  int
	}{
		{"ok", func(c *gin.Context) { OK(c, gin.H{"ok": true}) }, http.StatusOK},
		{"created", func(c *gin.Context) { Created(c, gin.H{"id": "s1"}) }, http.StatusCreated},
		{"no content", NoContent, http.StatusNoContent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if resp := serve(t, tc.handler); resp.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, resp.Code)
			}
		})
	}
}

func TestValidationErrorEnvelope(t *testing.T) {
	resp := serve(t, func(c *gin.Context) {
		ValidationError(c, "metrics.acne must be at most 100", []string{"metrics.acne"})
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	var body ErrorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v: %s", err, resp.Body.String())
	}
	if body.Error.Code != "validation_error" || body.Error.Message != "metrics.acne must be at most 100" {
		t.Fatalf("unexpected body %+v", body)
	}
}
