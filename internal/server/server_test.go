package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"trivia-app/internal/metrics"
	"trivia-app/internal/middleware"
	"trivia-app/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeQuestions is an empty question bank with a single category.
type fakeQuestions struct{}

func (fakeQuestions) Categories(context.Context) ([]models.Category, error) {
	return []models.Category{{ID: 1, Type: "Science"}}, nil
}

func (fakeQuestions) CategoryMap(context.Context) (map[int]string, error) {
	return map[int]string{1: "Science"}, nil
}

func (fakeQuestions) Page(context.Context, int, *int) (*models.QuestionPage, error) {
	return nil, models.ErrNotFound
}

func (fakeQuestions) ByCategory(context.Context, int) ([]models.Question, error) {
	return []models.Question{}, nil
}

func (fakeQuestions) Search(context.Context, string) ([]models.Question, error) {
	return []models.Question{}, nil
}

func (fakeQuestions) Get(context.Context, int) (*models.Question, error) {
	return nil, models.ErrNotFound
}

func (fakeQuestions) Create(context.Context, models.NewQuestion) (int, error) {
	return 1, nil
}

func (fakeQuestions) Delete(context.Context, int) error {
	return models.ErrNotFound
}

func (fakeQuestions) PerPage() int { return 10 }

type fakeQuiz struct{}

func (fakeQuiz) Next(context.Context, models.QuizRequest) (*models.Question, error) {
	return nil, nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(Deps{
		Questions: fakeQuestions{},
		Quiz:      fakeQuiz{},
		PerPlay:   5,
		Log:       zerolog.Nop(),
	})
}

func serve(r http.Handler, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestHealth(t *testing.T) {
	w := serve(newTestRouter(), http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestAPI(t *testing.T) {
	r := newTestRouter()

	t.Run("categories", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/api/categories")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, true, body["success"])
	})

	t.Run("unknown api path", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/api/nothing/here")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"success":false,"error":404,"message":"Resource not found"}`, w.Body.String())
	})

	t.Run("preflight", func(t *testing.T) {
		w := serve(r, http.MethodOptions, "/api/questions")

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "DELETE")
	})
}

func TestSitePaths(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		path   string
		status int
		marker string
	}{
		{path: "/", status: http.StatusOK, marker: `<a href="/" class="nav-link active">List</a>`},
		{path: "/add", status: http.StatusOK, marker: `<a href="/add" class="nav-link active">Add</a>`},
		{path: "/play", status: http.StatusOK, marker: `<a href="/play" class="nav-link active">Play</a>`},
		{path: "/no/such/page", status: http.StatusOK, marker: "No questions found."},
		{path: "/apiary", status: http.StatusOK, marker: "No questions found."},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := serve(r, http.MethodGet, tt.path)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.marker)
			assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/html"))
		})
	}
}

func TestStatic(t *testing.T) {
	r := newTestRouter()

	w := serve(r, http.MethodGet, "/static/nav.js")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, http.MethodGet, "/static/missing.js")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotContains(t, w.Body.String(), "nav-link")

	w = serve(r, http.MethodGet, "/static/")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotContains(t, w.Body.String(), "app.css")
}

func TestSwagger(t *testing.T) {
	w := serve(newTestRouter(), http.MethodGet, "/swagger/doc.json")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/quizzes")
}

func TestMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(Deps{
		Questions: fakeQuestions{},
		Quiz:      fakeQuiz{},
		PerPlay:   5,
		Log:       zerolog.Nop(),
		Metrics:   metrics.New(),
	})

	serve(r, http.MethodGet, "/health")
	w := serve(r, http.MethodGet, "/metrics")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `trivia_http_requests_total{method="GET",path="/health",status_code="200"} 1`)

	assert.Equal(t, http.StatusOK, serve(newTestRouter(), http.MethodGet, "/metrics").Code)
}
