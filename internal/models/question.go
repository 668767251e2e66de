package models

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when a requested question, category or page does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned when a new question fails validation.
	ErrInvalidInput = errors.New("invalid input")
)

const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// Category groups questions by topic, e.g. "Science" or "Art".
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// Question is a single trivia question together with its answer.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// NewQuestion holds the fields supplied when adding a question.
type NewQuestion struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Validate trims the text fields and checks every field is present and in range.
func (q *NewQuestion) Validate() error {
	q.Question = strings.TrimSpace(q.Question)
	q.Answer = strings.TrimSpace(q.Answer)

	switch {
	case q.Question == "":
		return errors.Join(ErrInvalidInput, errors.New("question is required"))
	case q.Answer == "":
		return errors.Join(ErrInvalidInput, errors.New("answer is required"))
	case q.Category <= 0:
		return errors.Join(ErrInvalidInput, errors.New("category is required"))
	case q.Difficulty < MinDifficulty || q.Difficulty > MaxDifficulty:
		return errors.Join(ErrInvalidInput, errors.New("difficulty must be between 1 and 5"))
	}
	return nil
}

// QuestionPage is one page of the question list.
type QuestionPage struct {
	Questions       []Question     `json:"questions"`
	TotalQuestions  int            `json:"total_questions"`
	Categories      map[int]string `json:"categories"`
	CurrentCategory *int           `json:"current_category"`
}

// QuizRequest asks for the next quiz question. A nil or zero-ID category
// draws from every category.
type QuizRequest struct {
	PreviousQuestions []int     `json:"previous_questions"`
	QuizCategory      *Category `json:"quiz_category"`
}

// CategoryID returns the category filter of the request, or nil for all.
func (r QuizRequest) CategoryID() *int {
	if r.QuizCategory == nil || r.QuizCategory.ID == 0 {
		return nil
	}
	id := r.QuizCategory.ID
	return &id
}
