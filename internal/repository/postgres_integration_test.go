//go:build integration

package repository

import (
	"context"
	"testing"

	"trivia-app/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jackc/pgx/v5/pgxpool"
)

func setupTestDatabase(t *testing.T) *pgxpool.Pool {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "testdb",
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	postgresC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		postgresC.Terminate(ctx)
	})

	host, err := postgresC.Host(ctx)
	require.NoError(t, err)

	port, err := postgresC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connString := "postgres://testuser:testpass@" + host + ":" + port.Port() + "/testdb?sslmode=disable"

	require.NoError(t, Migrate(connString))
	// a second run is a no-op
	require.NoError(t, Migrate(connString))

	pool, err := pgxpool.New(ctx, connString)
	require.NoError(t, err)

	t.Cleanup(func() {
		pool.Close()
	})

	_, err = pool.Exec(ctx, `
		INSERT INTO questions (question, answer, category, difficulty) VALUES
		('What is the heaviest organ in the human body?', 'The Liver', 1, 4),
		('Which Dutch graphic artist rendered mathematical perspectives?', 'Escher', 2, 1),
		('What is the largest lake in Africa?', 'Lake Victoria', 3, 2),
		('What is the capital of Australia?', 'Canberra', 3, 3);
	`)
	require.NoError(t, err)

	return pool
}

func TestRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	repo := NewRepository(pool)
	ctx := context.Background()
	geography := 3

	t.Run("list categories", func(t *testing.T) {
		categories, err := repo.ListCategories(ctx)
		require.NoError(t, err)
		require.Len(t, categories, 6)
		assert.Equal(t, models.Category{ID: 1, Type: "Science"}, categories[0])
	})

	t.Run("get missing category", func(t *testing.T) {
		_, err := repo.GetCategory(ctx, 1000)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("count and list by category", func(t *testing.T) {
		count, err := repo.CountQuestions(ctx, &geography)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		questions, err := repo.ListQuestions(ctx, 0, 10, &geography)
		require.NoError(t, err)
		require.Len(t, questions, 2)
		assert.Equal(t, "Lake Victoria", questions[0].Answer)
	})

	t.Run("list window", func(t *testing.T) {
		questions, err := repo.ListQuestions(ctx, 1, 2, nil)
		require.NoError(t, err)
		require.Len(t, questions, 2)
		assert.Equal(t, 2, questions[0].ID)
		assert.Equal(t, 3, questions[1].ID)

		questions, err = repo.ListQuestions(ctx, 100, 10, nil)
		require.NoError(t, err)
		assert.Equal(t, []models.Question{}, questions)
	})

	t.Run("search is case insensitive", func(t *testing.T) {
		questions, err := repo.SearchQuestions(ctx, "CAPITAL")
		require.NoError(t, err)
		require.Len(t, questions, 1)
		assert.Equal(t, "Canberra", questions[0].Answer)
	})

	t.Run("quiz candidates exclude previous questions", func(t *testing.T) {
		questions, err := repo.QuizCandidates(ctx, &geography, []int{3})
		require.NoError(t, err)
		require.Len(t, questions, 1)
		assert.Equal(t, 4, questions[0].ID)

		questions, err = repo.QuizCandidates(ctx, nil, nil)
		require.NoError(t, err)
		assert.Len(t, questions, 4)
	})

	t.Run("create and delete", func(t *testing.T) {
		id, err := repo.CreateQuestion(ctx, models.NewQuestion{
			Question: "Who painted the Mona Lisa?", Answer: "Leonardo da Vinci", Category: 2, Difficulty: 1,
		})
		require.NoError(t, err)
		assert.Positive(t, id)

		q, err := repo.GetQuestion(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Leonardo da Vinci", q.Answer)

		require.NoError(t, repo.DeleteQuestion(ctx, id))
		_, err = repo.GetQuestion(ctx, id)
		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.ErrorIs(t, repo.DeleteQuestion(ctx, id), models.ErrNotFound)
	})

	// runs last: it empties the tables
	t.Run("seed rollback with questions present", func(t *testing.T) {
		down, err := migrationsFS.ReadFile("migrations/000002_seed_categories.down.sql")
		require.NoError(t, err)

		_, err = pool.Exec(ctx, string(down))
		require.NoError(t, err)

		var categories, questions int
		require.NoError(t, pool.QueryRow(ctx, "SELECT count(*) FROM categories").Scan(&categories))
		require.NoError(t, pool.QueryRow(ctx, "SELECT count(*) FROM questions").Scan(&questions))
		assert.Zero(t, categories)
		assert.Zero(t, questions)
	})
}
