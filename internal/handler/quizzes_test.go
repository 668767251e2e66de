package handler

import (
	"context"
	"net/http"
	"testing"

	"trivia-app/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockQuizService is a mock implementation of the QuizService interface
type MockQuizService struct {
	mock.Mock
}

func (m *MockQuizService) Next(ctx context.Context, req models.QuizRequest) (*models.Question, error) {
	args := m.Called(ctx, req)
	q, _ := args.Get(0).(*models.Question)
	return q, args.Error(1)
}

func TestQuizHandler_PlayQuiz(t *testing.T) {
	history := models.QuizRequest{
		PreviousQuestions: []int{20, 21},
		QuizCategory:      &models.Category{ID: 5, Type: "Entertainment"},
	}

	tests := []struct {
		name           string
		body           any
		expectedReq    *models.QuizRequest
		mockQuestion   *models.Question
		mockError      error
		expectedStatus int
		expectedBody   map[string]any
	}{
		{
			name:           "next question",
			body:           history,
			expectedReq:    &history,
			mockQuestion:   &sampleQuestion,
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]any{"success": true, "question": sampleQuestionJSON()},
		},
		{
			name:           "all questions used",
			body:           map[string]any{"previous_questions": []int{}},
			expectedReq:    &models.QuizRequest{PreviousQuestions: []int{}},
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]any{"success": true, "question": nil},
		},
		{
			name:           "empty object",
			body:           map[string]any{},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   errorJSON(422, "Unprocessable entity"),
		},
		{
			name:           "malformed body",
			body:           "[1,2",
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   errorJSON(422, "Unprocessable entity"),
		},
		{
			name:           "service error",
			body:           history,
			expectedReq:    &history,
			mockError:      assert.AnError,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   errorJSON(422, "Unprocessable entity"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockQuizService)
			if tt.expectedReq != nil {
				mockSvc.On("Next", mock.Anything, *tt.expectedReq).Return(tt.mockQuestion, tt.mockError)
			}
			r := newTestRouter(NewQuizHandler(mockSvc).Register)

			status, body := doRequest(t, r, http.MethodPost, "/quizzes", tt.body)

			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedBody, body)
			mockSvc.AssertExpectations(t)
		})
	}
}
