package main

import (
	"context"

	"trivia-app/internal/config"
	"trivia-app/internal/logger"
	"trivia-app/internal/metrics"
	"trivia-app/internal/repository"
	"trivia-app/internal/server"
	"trivia-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

//	@title			Trivia API
//	@version		1.0
//	@description	Questions, categories and quizzes for the trivia site.
//	@BasePath		/api
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	appLog := logger.New(config)
	if !config.IsLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	if config.MigrateOnStart {
		if err := repository.Migrate(config.DBSource); err != nil {
			appLog.Fatal().Err(err).Msg("cannot migrate db")
		}
	}

	// Database connection
	conn, err := pgxpool.New(context.Background(), config.DBSource)
	if err != nil {
		appLog.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	m := metrics.New()
	if err := m.Register(metrics.PoolCollectors(func() metrics.PoolStats { return conn.Stat() })...); err != nil {
		appLog.Fatal().Err(err).Msg("cannot register pool metrics")
	}

	if config.QuizStateKey == "" {
		appLog.Warn().Msg("QUIZ_STATE_KEY is not set, quiz games will not survive a restart")
	}

	// Initialize layers
	repo := repository.NewRepository(conn)

	questionService := service.NewQuestionService(repo, config.QuestionsPerPage)
	quizService := service.NewQuizService(repo)

	r := server.NewRouter(server.Deps{
		Questions:    questionService,
		Quiz:         quizService,
		PerPlay:      config.QuestionsPerPlay,
		QuizStateKey: []byte(config.QuizStateKey),
		Log:          appLog,
		Metrics:      m,
	})

	appLog.Info().Str("addr", config.ServerAddress).Msg("starting server")
	if err := r.Run(config.ServerAddress); err != nil {
		appLog.Fatal().Err(err).Msg("server stopped")
	}
}
