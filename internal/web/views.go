package web

import (
	"context"
	"strconv"

	"trivia-app/internal/models"
)

// QuestionService is what the leaf views need from the question bank.
type QuestionService interface {
	Categories(ctx context.Context) ([]models.Category, error)
	Page(ctx context.Context, page int, categoryID *int) (*models.QuestionPage, error)
	Search(ctx context.Context, term string) ([]models.Question, error)
	Get(ctx context.Context, id int) (*models.Question, error)
	Create(ctx context.Context, q models.NewQuestion) (int, error)
	Delete(ctx context.Context, id int) error
	PerPage() int
}

// QuizService draws quiz questions.
type QuizService interface {
	Next(ctx context.Context, req models.QuizRequest) (*models.Question, error)
}

func atoiOr(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func optionalInt(s string) *int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func categoryName(categories []models.Category, id int) string {
	for _, c := range categories {
		if c.ID == id {
			return c.Type
		}
	}
	return ""
}
