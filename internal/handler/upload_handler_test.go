package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/devfolio/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

type stubPresigner struct{}

func (stubPresigner) PresignUpload(ctx context.Context, key, contentType string, expires time.Duration) (string, error) {
	return "https://bucket.example.com/" + key + "?signed", nil
}

func newPresignRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	uploadService := service.NewUploadService(stubPresigner{}, time.Minute)
	h := NewUploadHandler(uploadService, nil)

	router := gin.New()
	router.POST("/api/r2/presign", h.Presign)
	return router
}

func postPresign(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/r2/presign", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPresignEndpointRejectsUnsupportedType(t *testing.T) {
	router := newPresignRouter()

	w := postPresign(t, router, `{"filename":"a.zip","contentType":"application/zip","size":1024}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}

	var res map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if res["error"] == "" {
		t.Error("expected an error message")
	}
}

func TestPresignEndpointRejectsOversizedFile(t *testing.T) {
	router := newPresignRouter()

	w := postPresign(t, router, `{"filename":"big.mp4","contentType":"video/mp4","size":314572800}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
}

func TestPresignEndpointRejectsMalformedBody(t *testing.T) {
	router := newPresignRouter()

	for _, body := range []string{
		`{}`,
		`{"filename":"a.png","contentType":"image/png"}`,
		`{"filename":"a.png","contentType":"image/png","size":"ten"}`,
	} {
		if w := postPresign(t, router, body); w.Code != http.StatusBadRequest {
			t.Errorf("body %s: status %d, want 400", body, w.Code)
		}
	}
}

func TestPresignEndpointReturnsURLAndKey(t *testing.T) {
	router := newPresignRouter()

	w := postPresign(t, router, `{"filename":"photo.png","contentType":"image/png","size":2048}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200 (body %s)", w.Code, w.Body.String())
	}

	var res struct {
		URL string `json:"url"`
		Key string `json:"key"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if res.URL == "" {
		t.Error("missing url")
	}
	if !strings.Contains(res.Key, "photo.png") {
		t.Errorf("key %q does not contain the original filename", res.Key)
	}
}
