package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gpa-calculator/domain"
	"gpa-calculator/repository"
	"gpa-calculator/service"
)

func newTestRouter(t *testing.T, limiter *RateLimiter) http.Handler {
	t.Helper()

	logger := zap.NewNop()
	store := repository.NewMemoryStore()
	grades := service.NewGradeService(store, repository.NewMemoryCache(0), service.NewNarrator(service.NarratorConfig{}, logger), logger)
	themes := service.NewThemeService(store, logger)

	if limiter == nil {
		limiter = NewRateLimiter(1000, time.Minute)
	}

	return NewRouter(RouterConfig{
		Grades:  grades,
		Themes:  themes,
		Limiter: limiter,
		Metrics: NewMetrics(),
		Logger:  logger,
	})
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

const coursesBody = `{
	"courses": [
		{"name": "Math", "gradeValue": 5, "credits": 3},
		{"name": "Phys", "gradeValue": "3", "credits": "2"},
		{"name": "", "gradeValue": 4, "credits": 3},
		{"name": "Draft", "gradeValue": "", "credits": 3}
	]
}`

func TestCalculateHandler_OK(t *testing.T) {
	router := newTestRouter(t, nil)

	w := doJSON(t, router, http.MethodPost, "/gpa/calculate", coursesBody)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))

	var resp calculateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "4.20", resp.Result.GPADisplay)
	assert.Equal(t, 2, resp.Result.TotalCourses)
	assert.Equal(t, 21.0, resp.Result.TotalGradePoints)
	assert.False(t, resp.Advice.Congratulatory)
	require.Len(t, resp.Advice.Recommendations, 1)
	assert.Equal(t, "First Class", resp.Advice.Recommendations[0].ThresholdLabel)
	assert.NotEmpty(t, resp.Advice.Summary)
}

func TestCalculateHandler_EmptyList(t *testing.T) {
	router := newTestRouter(t, nil)

	w := doJSON(t, router, http.MethodPost, "/gpa/calculate", `{"courses": []}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp calculateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "0.00", resp.Result.GPADisplay)
	assert.Equal(t, 0, resp.Result.TotalCourses)
}

func TestCalculateHandler_Excellent(t *testing.T) {
	router := newTestRouter(t, nil)

	w := doJSON(t, router, http.MethodPost, "/gpa/calculate", `{"courses": [{"name": "A", "gradeValue": 5, "credits": 3}]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp calculateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Advice.Congratulatory)
	assert.Empty(t, resp.Advice.Recommendations)
	assert.Equal(t, "15.00", resp.Result.Courses[0].GradePointsDisplay)
}

func TestCalculateHandler_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(t, nil)

	w := doJSON(t, router, http.MethodGet, "/gpa/calculate", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, http.MethodPost, w.Header().Get("Allow"))
}

func TestCalculateHandler_BadRequest(t *testing.T) {
	router := newTestRouter(t, nil)

	w := doJSON(t, router, http.MethodPost, "/gpa/calculate", `{invalid-json}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalculateHandler_UnsupportedMediaType(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/gpa/calculate", strings.NewReader(coursesBody))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestAdviseHandler(t *testing.T) {
	router := newTestRouter(t, nil)

	w := doJSON(t, router, http.MethodPost, "/gpa/advise", `{"gpa": 3.0, "totalCredits": 12, "totalGradePoints": 36}`)
	require.Equal(t, http.StatusOK, w.Code)

	var advice domain.Advice
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &advice))
	require.Len(t, advice.Recommendations, 2)
	assert.Contains(t, advice.Recommendations[1].Message, "B (4.0)")

	w = doJSON(t, router, http.MethodPost, "/gpa/advise", `{"gpa": -2}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCoursesHandler_Lifecycle(t *testing.T) {
	router := newTestRouter(t, nil)

	w := doJSON(t, router, http.MethodGet, "/courses/alice", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPut, "/courses/alice", coursesBody)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var saved domain.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	assert.Len(t, saved.Courses, 2)
	assert.False(t, saved.SavedAt.IsZero())

	w = doJSON(t, router, http.MethodGet, "/courses/alice", "")
	require.Equal(t, http.StatusOK, w.Code)
	var loaded domain.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loaded))
	assert.Equal(t, saved.Courses, loaded.Courses)
	assert.True(t, saved.SavedAt.Equal(loaded.SavedAt))

	w = doJSON(t, router, http.MethodDelete, "/courses/alice", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodGet, "/courses/alice", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCoursesHandler_RejectsEmptySave(t *testing.T) {
	router := newTestRouter(t, nil)

	w := doJSON(t, router, http.MethodPut, "/courses/alice", `{"courses": [{"name": "", "gradeValue": 5, "credits": 3}]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/courses/alice", coursesBody)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestThemeHandler(t *testing.T) {
	router := newTestRouter(t, nil)

	readTheme := func(w *httptest.ResponseRecorder) string {
		t.Helper()
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var body themeBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		return body.Theme
	}

	assert.Equal(t, "dark", readTheme(doJSON(t, router, http.MethodGet, "/preferences/alice/theme?system=dark", "")))
	assert.Equal(t, "light", readTheme(doJSON(t, router, http.MethodGet, "/preferences/alice/theme", "")))

	assert.Equal(t, "light", readTheme(doJSON(t, router, http.MethodPost, "/preferences/alice/theme/toggle?system=dark", "")))
	assert.Equal(t, "light", readTheme(doJSON(t, router, http.MethodGet, "/preferences/alice/theme?system=dark", "")))

	assert.Equal(t, "dark", readTheme(doJSON(t, router, http.MethodPut, "/preferences/alice/theme", `{"theme": "dark"}`)))

	w := doJSON(t, router, http.MethodPut, "/preferences/alice/theme", `{"theme": "sepia"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_RateLimited(t *testing.T) {
	router := newTestRouter(t, NewRateLimiter(2, time.Hour))

	for i := 0; i < 2; i++ {
		w := doJSON(t, router, http.MethodPost, "/gpa/calculate", coursesBody)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, router, http.MethodPost, "/gpa/calculate", coursesBody)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRouter_MetricsAndHealth(t *testing.T) {
	router := newTestRouter(t, nil)

	doJSON(t, router, http.MethodPost, "/gpa/calculate", coursesBody)

	w := doJSON(t, router, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `gpa_http_requests_total{code="200",route="/gpa/calculate"} 1`)

	w = doJSON(t, router, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}
