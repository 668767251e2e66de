package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"trivia-app/internal/models"
	"trivia-app/internal/service"

	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// QuizView plays a quiz. A game is a chain of POSTs to /play: the category
// chooser starts one, and every later form carries the signed quiz state in
// a hidden "state" field next to the player's "guess".
type QuizView struct {
	questions QuestionService
	quiz      QuizService
	perPlay   int
	codec     *stateCodec
}

// NewQuizView creates the quiz view. A quiz ends after perPlay questions.
// stateKey signs the game state; see newStateCodec.
func NewQuizView(questions QuestionService, quiz QuizService, perPlay int, stateKey []byte) *QuizView {
	if perPlay <= 0 {
		perPlay = 5
	}
	return &QuizView{questions: questions, quiz: quiz, perPlay: perPlay, codec: newStateCodec(stateKey)}
}

func (v *QuizView) Name() string { return "play" }

func (v *QuizView) Render(c *gin.Context) (Result, error) {
	if c.Request.Method != http.MethodPost {
		return v.choose(c, http.StatusOK, "")
	}

	raw := c.PostForm("state")
	if raw == "" {
		return v.next(c, quizState{Category: atoiOr(c.PostForm("category"), 0)})
	}

	st, err := v.codec.decode(raw)
	if err != nil {
		_ = c.Error(err)
		return v.choose(c, http.StatusBadRequest, "That game could not be resumed. Pick a category to start a new one.")
	}
	if st.Current != 0 {
		return v.answer(c, st, c.PostForm("guess"))
	}
	return v.next(c, st)
}

func (v *QuizView) choose(c *gin.Context, status int, message string) (Result, error) {
	categories, err := v.questions.Categories(c.Request.Context())
	if err != nil {
		return Result{}, fmt.Errorf("web: failed to load categories: %w", err)
	}
	res := quizResult(chooseCategory(categories, message))
	res.Status = status
	return res, nil
}

func (v *QuizView) next(c *gin.Context, st quizState) (Result, error) {
	st.Current = 0
	if len(st.Previous) >= v.perPlay {
		return quizResult(finalScore(st)), nil
	}

	q, err := v.quiz.Next(c.Request.Context(), models.QuizRequest{
		PreviousQuestions: st.Previous,
		QuizCategory:      &models.Category{ID: st.Category},
	})
	if err != nil {
		return Result{}, fmt.Errorf("web: failed to draw a question: %w", err)
	}
	if q == nil {
		return quizResult(finalScore(st)), nil
	}

	st.Current = q.ID
	token, err := v.codec.encode(st)
	if err != nil {
		return Result{}, err
	}
	return quizResult(askQuestion(token, *q)), nil
}

func (v *QuizView) answer(c *gin.Context, st quizState, guess string) (Result, error) {
	q, err := v.questions.Get(c.Request.Context(), st.Current)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			// deleted mid-game, draw another
			return v.next(c, st)
		}
		return Result{}, fmt.Errorf("web: failed to load question: %w", err)
	}

	correct := service.EvaluateGuess(guess, q.Answer)
	if correct {
		st.Score++
	}
	st.Previous = append(st.Previous, q.ID)
	st.Current = 0

	token, err := v.codec.encode(st)
	if err != nil {
		return Result{}, err
	}
	return quizResult(showAnswer(token, *q, guess, correct)), nil
}

func quizResult(content g.Node) Result {
	return Result{Title: "Play", Content: h.Div(h.Class("quiz-play-holder"), content)}
}

func chooseCategory(categories []models.Category, message string) g.Node {
	return h.Form(h.Class("choose-category"), h.Method("post"), h.Action("/play"),
		h.H2(g.Text("Choose Category")),
		g.If(message != "", h.P(h.Class("form-error"), g.Text(message))),
		h.Div(h.Class("category-holder"),
			categoryButton(0, "ALL"),
			g.Map(categories, func(cat models.Category) g.Node {
				return categoryButton(cat.ID, cat.Type)
			}),
		),
	)
}

func categoryButton(id int, label string) g.Node {
	return h.Button(h.Class("play-category"), h.Type("submit"), h.Name("category"), h.Value(strconv.Itoa(id)), g.Text(label))
}

func stateField(token string) g.Node {
	return h.Input(h.Type("hidden"), h.Name("state"), h.Value(token))
}

func askQuestion(token string, q models.Question) g.Node {
	return h.Form(h.Class("quiz-play"), h.Method("post"), h.Action("/play"),
		stateField(token),
		h.Div(h.Class("quiz-question"), g.Text(q.Question)),
		h.Input(h.Type("text"), h.Name("guess"), h.AutoFocus(), g.Attr("autocomplete", "off")),
		h.Input(h.Class("submit-guess button"), h.Type("submit"), h.Value("Submit Answer")),
	)
}

func showAnswer(token string, q models.Question, guess string, correct bool) g.Node {
	verdict := h.Div(h.Class("wrong"), g.Text("You were incorrect"))
	if correct {
		verdict = h.Div(h.Class("correct"), g.Text("You were correct!"))
	}

	return h.Form(h.Class("quiz-play"), h.Method("post"), h.Action("/play"),
		stateField(token),
		h.Div(h.Class("quiz-question"), g.Text(q.Question)),
		verdict,
		h.Div(h.Class("quiz-guess"), g.Textf("Your answer: %s", guess)),
		h.Div(h.Class("quiz-answer"), g.Textf("The answer was: %s", q.Answer)),
		h.Input(h.Class("next-question button"), h.Type("submit"), h.Value("Next Question")),
	)
}

func finalScore(st quizState) g.Node {
	return h.Div(h.Class("quiz-end"),
		h.Div(h.Class("final-header"), g.Textf("Your Final Score is %d", st.Score)),
		h.A(h.Class("play-again button"), h.Href("/play"), g.Text("Play Again?")),
	)
}
