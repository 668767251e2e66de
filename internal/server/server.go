package server

import (
	"net/http"
	"strings"

	_ "trivia-app/docs"
	"trivia-app/internal/handler"
	"trivia-app/internal/metrics"
	"trivia-app/internal/middleware"
	"trivia-app/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	apiPrefix    = "/api"
	staticPrefix = "/static/"
)

// QuestionService is the question bank as seen by both the API and the site.
type QuestionService interface {
	handler.QuestionService
	web.QuestionService
}

// Deps are the services the router wires into its handlers.
type Deps struct {
	Questions QuestionService
	Quiz      handler.QuizService
	PerPlay   int
	Log       zerolog.Logger

	// QuizStateKey signs quiz progress; empty means a per-process random key.
	QuizStateKey []byte

	// Metrics is optional; nil leaves /metrics unmounted.
	Metrics *metrics.Metrics
}

// NewRouter builds the engine: the JSON API under /api, swagger docs, and the
// server-rendered site, which answers every path nothing else claims.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(d.Log), gin.Recovery())
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware())
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group(apiPrefix, middleware.CORS())
	// preflight requests for any API path
	api.OPTIONS("/*path", func(c *gin.Context) {})
	handler.NewQuestionHandler(d.Questions).Register(api)
	handler.NewQuizHandler(d.Quiz).Register(api)

	site := web.NewSite(d.Questions, d.Quiz, d.PerPlay, d.QuizStateKey, d.Log)
	site.Register(r)

	r.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		switch {
		case path == apiPrefix || strings.HasPrefix(path, apiPrefix+"/"):
			handler.NotFound(c)
		case strings.HasPrefix(path, staticPrefix):
			c.String(http.StatusNotFound, http.StatusText(http.StatusNotFound))
		default:
			site.Serve(c)
		}
	})

	return r
}
