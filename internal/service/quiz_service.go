package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode"

	"trivia-app/internal/models"
)

// QuizService picks quiz questions
type QuizService struct {
	repo QuizRepository
	pick func(n int) int
}

// Repository interface for dependency injection
type QuizRepository interface {
	QuizCandidates(ctx context.Context, categoryID *int, exclude []int) ([]models.Question, error)
}

// NewQuizService creates a new quiz service drawing questions uniformly at random
func NewQuizService(repo QuizRepository) *QuizService {
	return &QuizService{repo: repo, pick: rand.IntN}
}

// Next returns a random question not yet asked in this quiz, or nil when none is left
func (s *QuizService) Next(ctx context.Context, req models.QuizRequest) (*models.Question, error) {
	candidates, err := s.repo.QuizCandidates(ctx, req.CategoryID(), req.PreviousQuestions)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load quiz candidates: %w", err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	q := candidates[s.pick(len(candidates))]
	return &q, nil
}

// EvaluateGuess reports whether guess matches answer: after lowering and
// dropping punctuation, every word of the answer must appear in the guess.
// An empty guess is never right.
func EvaluateGuess(guess, answer string) bool {
	g := normalize(guess)
	if strings.TrimSpace(g) == "" {
		return false
	}

	words := strings.Fields(normalize(answer))
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		if !strings.Contains(g, w) {
			return false
		}
	}
	return true
}

func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsSpace(r):
			return unicode.ToLower(r)
		default:
			return -1
		}
	}, s)
}
