package web

import (
	"embed"
	"errors"
	"io/fs"
	"net/http"
	"net/url"
	"strings"

	"trivia-app/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

//go:embed static
var staticFS embed.FS

// Site is the server-rendered trivia front end.
type Site struct {
	questions QuestionService
	shell     *Shell
	views     Views
	log       zerolog.Logger
}

// NewSite wires the leaf views into the default routing table. stateKey
// signs the quiz state carried by the play form.
func NewSite(questions QuestionService, quiz QuizService, perPlay int, stateKey []byte, log zerolog.Logger) *Site {
	views := Views{
		List: NewListView(questions),
		Add:  NewFormView(questions),
		Play: NewQuizView(questions, quiz, perPlay, stateKey),
	}
	return &Site{
		questions: questions,
		shell:     NewShell(DefaultTable(views), log),
		views:     views,
		log:       log,
	}
}

// Register mounts the static assets and the form actions. Page rendering
// itself is Serve, meant to be the engine's NoRoute handler so that every
// path resolves to a view.
func (s *Site) Register(r gin.IRoutes) {
	assets, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	entries, err := fs.ReadDir(assets, ".")
	if err != nil {
		panic(err)
	}
	// one route per file, so /static/ itself has no listing
	files := http.FS(assets)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		r.StaticFileFS("/static/"+e.Name(), e.Name(), files)
	}

	r.POST("/add", s.renderView(s.views.Add))
	r.POST("/play", s.renderView(s.views.Play))
	r.POST("/questions/:id/delete", s.DeleteQuestion)
}

// Serve renders the page for the request path.
func (s *Site) Serve(c *gin.Context) {
	s.shell.Serve(c)
}

func (s *Site) renderView(v View) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.shell.Render(c, v)
	}
}

// returnField carries the list page a delete form was rendered on.
const returnField = "return"

// DeleteQuestion handles the delete button of the question list and sends
// the browser back to the page it came from. A question that is already gone
// is not an error.
func (s *Site) DeleteQuestion(c *gin.Context) {
	back := localPath(c.PostForm(returnField))
	id := optionalInt(c.Param("id"))
	if id == nil {
		c.Redirect(http.StatusSeeOther, back)
		return
	}

	if err := s.questions.Delete(c.Request.Context(), *id); err != nil && !errors.Is(err, models.ErrNotFound) {
		s.log.Error().Err(err).Int("question_id", *id).Msg("failed to delete question")
		_ = c.Error(err)
	}
	c.Redirect(http.StatusSeeOther, back)
}

// localPath returns target when it is a path on this site, and "/" otherwise.
func localPath(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.ContainsRune(target, '\\') {
		return "/"
	}
	u, err := url.Parse(target)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	return u.RequestURI()
}
