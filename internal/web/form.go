package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"trivia-app/internal/models"

	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// FormView shows the add-question form and handles its submission.
type FormView struct {
	questions QuestionService
}

// NewFormView creates the add-question view
func NewFormView(questions QuestionService) *FormView {
	return &FormView{questions: questions}
}

func (v *FormView) Name() string { return "add" }

func (v *FormView) Render(c *gin.Context) (Result, error) {
	ctx := c.Request.Context()

	categories, err := v.questions.Categories(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("web: failed to load categories: %w", err)
	}

	if c.Request.Method != http.MethodPost {
		return Result{Title: "Add a Question", Content: questionForm(categories, models.NewQuestion{Difficulty: models.MinDifficulty}, "")}, nil
	}

	input := models.NewQuestion{
		Question:   c.PostForm("question"),
		Answer:     c.PostForm("answer"),
		Category:   atoiOr(c.PostForm("category"), 0),
		Difficulty: atoiOr(c.PostForm("difficulty"), 0),
	}

	if _, err := v.questions.Create(ctx, input); err != nil {
		if errors.Is(err, models.ErrInvalidInput) {
			return Result{
				Title:   "Add a Question",
				Status:  http.StatusUnprocessableEntity,
				Content: questionForm(categories, input, validationMessage(err)),
			}, nil
		}
		return Result{}, fmt.Errorf("web: failed to create question: %w", err)
	}

	return Result{Redirect: "/"}, nil
}

// validationMessage is the user-facing part of a validation error: the last
// line of a joined error, or a generic text when none is available.
func validationMessage(err error) string {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		if errs := joined.Unwrap(); len(errs) > 0 {
			return errs[len(errs)-1].Error()
		}
	}
	return "Please check the question and try again."
}

func questionForm(categories []models.Category, in models.NewQuestion, message string) g.Node {
	return h.Div(h.ID("add-form"),
		h.H2(g.Text("Add a New Trivia Question")),
		g.If(message != "", h.P(h.Class("form-error"), g.Text(message))),
		h.Form(h.Class("form-view"), h.Method("post"), h.Action("/add"),
			h.Label(g.Text("Question"),
				h.Input(h.Type("text"), h.Name("question"), h.Value(in.Question), h.Required()),
			),
			h.Label(g.Text("Answer"),
				h.Input(h.Type("text"), h.Name("answer"), h.Value(in.Answer), h.Required()),
			),
			h.Label(g.Text("Difficulty"),
				h.Select(h.Name("difficulty"),
					g.Group(difficultyOptions(in.Difficulty)),
				),
			),
			h.Label(g.Text("Category"),
				h.Select(h.Name("category"),
					g.Map(categories, func(cat models.Category) g.Node {
						return h.Option(h.Value(strconv.Itoa(cat.ID)), g.If(cat.ID == in.Category, h.Selected()), g.Text(cat.Type))
					}),
				),
			),
			h.Input(h.Type("submit"), h.Class("button"), h.Value("Submit")),
		),
	)
}

func difficultyOptions(selected int) []g.Node {
	opts := make([]g.Node, 0, models.MaxDifficulty)
	for d := models.MinDifficulty; d <= models.MaxDifficulty; d++ {
		opts = append(opts, h.Option(h.Value(strconv.Itoa(d)), g.If(d == selected, h.Selected()), g.Text(strconv.Itoa(d))))
	}
	return opts
}
