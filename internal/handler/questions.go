package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"trivia-app/internal/models"

	"github.com/gin-gonic/gin"
)

// QuestionHandler handles question and category requests
type QuestionHandler struct {
	service QuestionService
}

// Service interface for dependency injection
type QuestionService interface {
	CategoryMap(ctx context.Context) (map[int]string, error)
	Page(ctx context.Context, page int, categoryID *int) (*models.QuestionPage, error)
	ByCategory(ctx context.Context, categoryID int) ([]models.Question, error)
	Search(ctx context.Context, term string) ([]models.Question, error)
	Create(ctx context.Context, q models.NewQuestion) (int, error)
	Delete(ctx context.Context, id int) error
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(svc QuestionService) *QuestionHandler {
	return &QuestionHandler{service: svc}
}

// SearchRequest is the body of POST /questions/search
type SearchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// Register mounts the question routes on r
func (h *QuestionHandler) Register(r gin.IRoutes) {
	r.GET("/categories", h.GetCategories)
	r.GET("/categories/:id/questions", h.GetQuestionsByCategory)
	r.GET("/questions", h.GetQuestions)
	r.POST("/questions", h.CreateQuestion)
	r.POST("/questions/search", h.SearchQuestions)
	r.DELETE("/questions/:id", h.DeleteQuestion)
}

// GetCategories handles GET /categories requests
//
//	@Summary	List categories
//	@Tags		categories
//	@Produce	json
//	@Success	200	{object}	map[string]interface{}
//	@Failure	500	{object}	ErrorResponse
//	@Router		/categories [get]
func (h *QuestionHandler) GetCategories(c *gin.Context) {
	categories, err := h.service.CategoryMap(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"categories": categories,
	})
}

// GetQuestions handles GET /questions requests
//
//	@Summary	List a page of questions
//	@Tags		questions
//	@Produce	json
//	@Param		page	query		int	false	"1-based page number"
//	@Success	200		{object}	map[string]interface{}
//	@Failure	404		{object}	ErrorResponse
//	@Router		/questions [get]
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	result, err := h.service.Page(c.Request.Context(), page, nil)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, err)
			return
		}
		abortWithError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"questions":        result.Questions,
		"total_questions":  result.TotalQuestions,
		"categories":       result.Categories,
		"current_category": nil,
	})
}

// GetQuestionsByCategory handles GET /categories/:id/questions requests
//
//	@Summary	List the questions of a category
//	@Tags		categories
//	@Produce	json
//	@Param		id	path		int	true	"Category ID"
//	@Success	200	{object}	map[string]interface{}
//	@Failure	404	{object}	ErrorResponse
//	@Router		/categories/{id}/questions [get]
func (h *QuestionHandler) GetQuestionsByCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusNotFound, err)
		return
	}

	questions, err := h.service.ByCategory(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, err)
			return
		}
		abortWithError(c, http.StatusUnprocessableEntity, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"questions":        questions,
		"total_questions":  len(questions),
		"current_category": id,
	})
}

// CreateQuestion handles POST /questions requests
//
//	@Summary	Add a question
//	@Tags		questions
//	@Accept		json
//	@Produce	json
//	@Param		question	body		models.NewQuestion	true	"New question"
//	@Success	200			{object}	map[string]interface{}
//	@Failure	400			{object}	ErrorResponse
//	@Router		/questions [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var body models.NewQuestion
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}

	id, err := h.service.Create(c.Request.Context(), body)
	if err != nil {
		if errors.Is(err, models.ErrInvalidInput) {
			abortWithError(c, http.StatusBadRequest, err)
			return
		}
		abortWithError(c, http.StatusUnprocessableEntity, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"created": id,
	})
}

// SearchQuestions handles POST /questions/search requests
//
//	@Summary	Search questions by text
//	@Tags		questions
//	@Accept		json
//	@Produce	json
//	@Param		search	body		SearchRequest	true	"Search term"
//	@Success	200		{object}	map[string]interface{}
//	@Failure	422		{object}	ErrorResponse
//	@Router		/questions/search [post]
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var body SearchRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithError(c, http.StatusUnprocessableEntity, err)
		return
	}

	questions, err := h.service.Search(c.Request.Context(), body.SearchTerm)
	if err != nil {
		abortWithError(c, http.StatusUnprocessableEntity, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"questions":        questions,
		"total_questions":  len(questions),
		"current_category": nil,
	})
}

// DeleteQuestion handles DELETE /questions/:id requests
//
//	@Summary	Delete a question
//	@Tags		questions
//	@Produce	json
//	@Param		id	path		int	true	"Question ID"
//	@Success	200	{object}	map[string]interface{}
//	@Failure	422	{object}	ErrorResponse
//	@Router		/questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusNotFound, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		abortWithError(c, http.StatusUnprocessableEntity, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"deleted": id,
	})
}
