package handler

import (
	"context"
	"errors"
	"net/http"

	"trivia-app/internal/models"

	"github.com/gin-gonic/gin"
)

// QuizHandler handles quiz requests
type QuizHandler struct {
	service QuizService
}

// Service interface for dependency injection
type QuizService interface {
	Next(ctx context.Context, req models.QuizRequest) (*models.Question, error)
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(svc QuizService) *QuizHandler {
	return &QuizHandler{service: svc}
}

// Register mounts the quiz routes on r
func (h *QuizHandler) Register(r gin.IRoutes) {
	r.POST("/quizzes", h.PlayQuiz)
}

var errEmptyQuizRequest = errors.New("handler: quiz request has neither previous_questions nor quiz_category")

// PlayQuiz handles POST /quizzes requests
//
//	@Summary	Draw the next quiz question
//	@Tags		quizzes
//	@Accept		json
//	@Produce	json
//	@Param		quiz	body		models.QuizRequest	true	"Quiz state"
//	@Success	200		{object}	map[string]interface{}
//	@Failure	422		{object}	ErrorResponse
//	@Router		/quizzes [post]
func (h *QuizHandler) PlayQuiz(c *gin.Context) {
	var body models.QuizRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithError(c, http.StatusUnprocessableEntity, err)
		return
	}
	if body.PreviousQuestions == nil && body.QuizCategory == nil {
		abortWithError(c, http.StatusUnprocessableEntity, errEmptyQuizRequest)
		return
	}

	question, err := h.service.Next(c.Request.Context(), body)
	if err != nil {
		abortWithError(c, http.StatusUnprocessableEntity, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"question": question,
	})
}
