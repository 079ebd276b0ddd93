package uploads

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-intake/internal/resumes"
	"resume-intake/internal/shared/server/middleware"
)

func newTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	h.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestSubmitRouteStoresUpload(t *testing.T) {
	h, deps := newTestHandler(t)
	router := newTestRouter(h)

	body, ct := buildForm(t, janeFields(), pdfFile(10))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes", bytes.NewReader(body))
	req.Header.Set("Content-Type", ct)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d %q", resp.Code, resp.Body.String())
	}
	if resp.Body.String() != "Resume uploaded successfully" {
		t.Fatalf("unexpected body: %q", resp.Body.String())
	}
	if len(deps.records.All()) != 1 {
		t.Fatalf("expected one record")
	}
}

func TestSubmitRouteRejectsOversizedRequest(t *testing.T) {
	h := NewHandler(newFakeObjects(), resumes.NewMemoryRepo(), &fakePublisher{}, Limits{MaxFileMB: 1, AllowedContentType: "application/pdf"})
	router := newTestRouter(h)

	body, ct := buildForm(t, janeFields(), pdfFile(3<<20))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes", bytes.NewReader(body))
	req.Header.Set("Content-Type", ct)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if resp.Body.String() != "File size exceeds 1 MB limit" {
		t.Fatalf("unexpected body: %q", resp.Body.String())
	}
}

func TestSubmitRouteRejectsWrongContentType(t *testing.T) {
	h, _ := newTestHandler(t)
	router := newTestRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes", bytes.NewReader([]byte(`{"name":"Jane"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest || resp.Body.String() != "Invalid Content-Type" {
		t.Fatalf("unexpected response: %d %q", resp.Code, resp.Body.String())
	}
}

type brokenBody struct{}

func (brokenBody) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestSubmitRouteBodyReadFailureIsInternalError(t *testing.T) {
	h, deps := newTestHandler(t)
	router := newTestRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes", brokenBody{})
	req.Header.Set("Content-Type", "multipart/form-data; boundary=abc")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError || resp.Body.String() != "Internal server error" {
		t.Fatalf("unexpected response: %d %q", resp.Code, resp.Body.String())
	}
	if len(deps.objects.objects) != 0 || len(deps.records.All()) != 0 {
		t.Fatalf("no side effects expected")
	}
}
