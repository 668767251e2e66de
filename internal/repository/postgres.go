package repository

import (
	"context"
	"errors"
	"fmt"

	"trivia-app/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository implements question and category storage on PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// ListCategories returns every category ordered by id
func (r *Repository) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, type FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, fmt.Errorf("repository: failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return categories, nil
}

// GetCategory returns the category with the given id
func (r *Repository) GetCategory(ctx context.Context, id int) (*models.Category, error) {
	var c models.Category
	err := r.db.QueryRow(ctx, `SELECT id, type FROM categories WHERE id = $1`, id).Scan(&c.ID, &c.Type)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("repository: category %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("repository: failed to query category: %w", err)
	}
	return &c, nil
}

// CountQuestions counts the questions, optionally restricted to one category
func (r *Repository) CountQuestions(ctx context.Context, categoryID *int) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM questions
		WHERE ($1::int IS NULL OR category = $1)
	`, categoryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to count questions: %w", err)
	}
	return count, nil
}

// ListQuestions returns a window of questions ordered by id, optionally restricted to one category
func (r *Repository) ListQuestions(ctx context.Context, offset, limit int, categoryID *int) ([]models.Question, error) {
	sql := `
		SELECT id, question, answer, category, difficulty
		FROM questions
		WHERE ($1::int IS NULL OR category = $1)
		ORDER BY id
		OFFSET $2
		LIMIT $3
	`

	rows, err := r.db.Query(ctx, sql, categoryID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute list query: %w", err)
	}
	return collectQuestions(rows)
}

// SearchQuestions returns every question whose text contains term, ignoring case
func (r *Repository) SearchQuestions(ctx context.Context, term string) ([]models.Question, error) {
	sql := `
		SELECT id, question, answer, category, difficulty
		FROM questions
		WHERE question ILIKE '%' || $1 || '%'
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, sql, term)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute search query: %w", err)
	}
	return collectQuestions(rows)
}

// GetQuestion returns the question with the given id
func (r *Repository) GetQuestion(ctx context.Context, id int) (*models.Question, error) {
	var q models.Question
	err := r.db.QueryRow(ctx, `
		SELECT id, question, answer, category, difficulty
		FROM questions
		WHERE id = $1
	`, id).Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("repository: question %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("repository: failed to query question: %w", err)
	}
	return &q, nil
}

// CreateQuestion inserts a question and returns its id
func (r *Repository) CreateQuestion(ctx context.Context, q models.NewQuestion) (int, error) {
	var id int
	err := r.db.QueryRow(ctx, `
		INSERT INTO questions (question, answer, category, difficulty)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, q.Question, q.Answer, q.Category, q.Difficulty).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to insert question: %w", err)
	}
	return id, nil
}

// DeleteQuestion removes the question with the given id
func (r *Repository) DeleteQuestion(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete question: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repository: question %d: %w", id, models.ErrNotFound)
	}
	return nil
}

// QuizCandidates returns the questions still available to a quiz: those not in
// exclude, optionally restricted to one category
func (r *Repository) QuizCandidates(ctx context.Context, categoryID *int, exclude []int) ([]models.Question, error) {
	if exclude == nil {
		exclude = []int{}
	}

	sql := `
		SELECT id, question, answer, category, difficulty
		FROM questions
		WHERE ($1::int IS NULL OR category = $1)
		  AND NOT (id = ANY($2::int[]))
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, sql, categoryID, exclude)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute quiz query: %w", err)
	}
	return collectQuestions(rows)
}

func collectQuestions(rows pgx.Rows) ([]models.Question, error) {
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		err := rows.Scan(
			&q.ID,
			&q.Question,
			&q.Answer,
			&q.Category,
			&q.Difficulty,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan question: %w", err)
		}
		questions = append(questions, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return questions, nil
}
