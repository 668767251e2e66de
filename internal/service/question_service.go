package service

import (
	"context"
	"errors"
	"fmt"

	"trivia-app/internal/models"
)

// QuestionService contains the business logic for browsing and editing the question bank
type QuestionService struct {
	repo    QuestionRepository
	perPage int
}

// Repository interface for dependency injection
type QuestionRepository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id int) (*models.Category, error)
	CountQuestions(ctx context.Context, categoryID *int) (int, error)
	ListQuestions(ctx context.Context, offset, limit int, categoryID *int) ([]models.Question, error)
	SearchQuestions(ctx context.Context, term string) ([]models.Question, error)
	GetQuestion(ctx context.Context, id int) (*models.Question, error)
	CreateQuestion(ctx context.Context, q models.NewQuestion) (int, error)
	DeleteQuestion(ctx context.Context, id int) error
}

// NewQuestionService creates a new question service showing perPage questions per page
func NewQuestionService(repo QuestionRepository, perPage int) *QuestionService {
	if perPage <= 0 {
		perPage = 10
	}
	return &QuestionService{repo: repo, perPage: perPage}
}

// PerPage returns the page size used by Page
func (s *QuestionService) PerPage() int {
	return s.perPage
}

// Categories returns every category ordered by id
func (s *QuestionService) Categories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list categories: %w", err)
	}
	return categories, nil
}

// CategoryMap returns the categories keyed by id
func (s *QuestionService) CategoryMap(ctx context.Context) (map[int]string, error) {
	categories, err := s.Categories(ctx)
	if err != nil {
		return nil, err
	}

	m := make(map[int]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m, nil
}

// Page returns the 1-based page of questions, optionally restricted to one category.
// A page past the end yields models.ErrNotFound.
func (s *QuestionService) Page(ctx context.Context, page int, categoryID *int) (*models.QuestionPage, error) {
	if page < 1 {
		page = 1
	}

	if categoryID != nil {
		if _, err := s.repo.GetCategory(ctx, *categoryID); err != nil {
			return nil, fmt.Errorf("service: failed to get category: %w", err)
		}
	}

	total, err := s.repo.CountQuestions(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to count questions: %w", err)
	}

	questions, err := s.repo.ListQuestions(ctx, (page-1)*s.perPage, s.perPage, categoryID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("service: page %d is empty: %w", page, models.ErrNotFound)
	}

	categories, err := s.CategoryMap(ctx)
	if err != nil {
		return nil, err
	}

	return &models.QuestionPage{
		Questions:       questions,
		TotalQuestions:  total,
		Categories:      categories,
		CurrentCategory: categoryID,
	}, nil
}

// ByCategory returns every question of the category with the given id
func (s *QuestionService) ByCategory(ctx context.Context, categoryID int) ([]models.Question, error) {
	if _, err := s.repo.GetCategory(ctx, categoryID); err != nil {
		return nil, fmt.Errorf("service: failed to get category: %w", err)
	}

	total, err := s.repo.CountQuestions(ctx, &categoryID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to count questions: %w", err)
	}
	if total == 0 {
		return []models.Question{}, nil
	}

	questions, err := s.repo.ListQuestions(ctx, 0, total, &categoryID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list questions: %w", err)
	}
	return questions, nil
}

// Search returns every question containing term. An empty term matches all questions.
func (s *QuestionService) Search(ctx context.Context, term string) ([]models.Question, error) {
	questions, err := s.repo.SearchQuestions(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("service: failed to search questions: %w", err)
	}
	return questions, nil
}

// Get returns the question with the given id
func (s *QuestionService) Get(ctx context.Context, id int) (*models.Question, error) {
	q, err := s.repo.GetQuestion(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get question: %w", err)
	}
	return q, nil
}

// Create validates and stores a new question, returning its id
func (s *QuestionService) Create(ctx context.Context, q models.NewQuestion) (int, error) {
	if err := q.Validate(); err != nil {
		return 0, fmt.Errorf("service: %w", err)
	}

	if _, err := s.repo.GetCategory(ctx, q.Category); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return 0, fmt.Errorf("service: %w", errors.Join(models.ErrInvalidInput, fmt.Errorf("category %d does not exist", q.Category)))
		}
		return 0, fmt.Errorf("service: failed to get category: %w", err)
	}

	id, err := s.repo.CreateQuestion(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("service: failed to create question: %w", err)
	}
	return id, nil
}

// Delete removes the question with the given id
func (s *QuestionService) Delete(ctx context.Context, id int) error {
	if err := s.repo.DeleteQuestion(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete question: %w", err)
	}
	return nil
}
