package web

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"trivia-app/internal/models"

	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ListView shows the question bank, one page at a time, filtered by category
// or by a search term.
type ListView struct {
	questions QuestionService
}

// NewListView creates the question list view
func NewListView(questions QuestionService) *ListView {
	return &ListView{questions: questions}
}

func (v *ListView) Name() string { return "list" }

type listState struct {
	categories []models.Category
	questions  []models.Question
	total      int
	page       int
	perPage    int
	category   *int
	search     string
	back       string // where a delete form returns to
}

func (v *ListView) Render(c *gin.Context) (Result, error) {
	ctx := c.Request.Context()

	categories, err := v.questions.Categories(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("web: failed to load categories: %w", err)
	}

	st := listState{
		categories: categories,
		page:       max(atoiOr(c.Query("page"), 1), 1),
		perPage:    v.questions.PerPage(),
		category:   optionalInt(c.Query("category")),
		search:     c.Query("q"),
		back:       c.Request.URL.RequestURI(),
	}

	if st.search != "" {
		st.questions, err = v.questions.Search(ctx, st.search)
		if err != nil {
			return Result{}, fmt.Errorf("web: failed to search questions: %w", err)
		}
		st.total = len(st.questions)
		st.category = nil
	} else {
		page, err := v.questions.Page(ctx, st.page, st.category)
		switch {
		case errors.Is(err, models.ErrNotFound):
		case err != nil:
			return Result{}, fmt.Errorf("web: failed to load questions: %w", err)
		default:
			st.questions = page.Questions
			st.total = page.TotalQuestions
		}
	}

	return Result{Title: "Questions", Content: questionList(st)}, nil
}

func questionList(st listState) g.Node {
	return h.Div(h.Class("question-view"),
		h.Div(h.Class("categories-list"),
			h.H2(h.A(h.Href("/"), g.Text("Categories"))),
			h.Ul(
				g.Map(st.categories, func(cat models.Category) g.Node {
					cls := "category"
					if st.category != nil && *st.category == cat.ID {
						cls = "category selected"
					}
					return h.Li(h.A(h.Class(cls), h.Href("/?category="+strconv.Itoa(cat.ID)), g.Text(cat.Type)))
				}),
			),
			searchForm(st.search),
		),
		h.Div(h.Class("questions-list"),
			h.H2(g.Text("Questions")),
			g.If(st.search != "", h.P(h.Class("search-summary"),
				g.Textf("%d result(s) for %q", st.total, st.search),
			)),
			g.If(len(st.questions) == 0, h.P(h.Class("empty"), g.Text("No questions found."))),
			g.Map(st.questions, func(q models.Question) g.Node {
				return questionCard(q, categoryName(st.categories, q.Category), st.back)
			}),
			g.If(st.search == "", pagination(st)),
		),
	)
}

func searchForm(term string) g.Node {
	return h.Form(h.Class("search-form"), h.Method("get"), h.Action("/"),
		h.Input(h.Type("search"), h.Name("q"), h.Placeholder("search questions..."), h.Value(term)),
		h.Button(h.Type("submit"), g.Text("Submit")),
	)
}

func questionCard(q models.Question, category, back string) g.Node {
	return h.Div(h.Class("question-holder"), g.Attr("data-question-id", strconv.Itoa(q.ID)),
		h.Div(h.Class("question"), g.Text(q.Question)),
		h.Div(h.Class("question-status"),
			h.Span(h.Class("category-name"), g.Text(category)),
			h.Span(h.Class("difficulty"), g.Textf("Difficulty: %d", q.Difficulty)),
			h.Form(h.Method("post"), h.Action(fmt.Sprintf("/questions/%d/delete", q.ID)),
				h.Input(h.Type("hidden"), h.Name(returnField), h.Value(back)),
				h.Button(h.Class("delete"), h.Type("submit"), g.Text("Delete")),
			),
		),
		h.Details(h.Class("answer-holder"),
			h.Summary(g.Text("Show Answer")),
			h.Span(h.Class("answer"), g.Text(q.Answer)),
		),
	)
}

func pagination(st listState) g.Node {
	if st.perPage <= 0 {
		return nil
	}
	pages := (st.total + st.perPage - 1) / st.perPage
	if pages <= 1 {
		return nil
	}

	links := make([]g.Node, 0, pages)
	for p := 1; p <= pages; p++ {
		cls := "page-num"
		if p == st.page {
			cls = "page-num active"
		}
		links = append(links, h.A(h.Class(cls), h.Href(pageHref(p, st.category)), g.Text(strconv.Itoa(p))))
	}
	return h.Div(h.Class("pagination-menu"), g.Group(links))
}

func pageHref(page int, category *int) string {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	if category != nil {
		q.Set("category", strconv.Itoa(*category))
	}
	return "/?" + q.Encode()
}
