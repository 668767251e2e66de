package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

// PartialHeader asks for the shell fragment instead of a full document. The
// navigation script sets it when swapping views in place.
const PartialHeader = "X-Trivia-Partial"

// Shell renders the page chrome around whichever view the table selects.
type Shell struct {
	table *Table
	log   zerolog.Logger
}

// NewShell creates a shell over the routing table
func NewShell(table *Table, log zerolog.Logger) *Shell {
	return &Shell{table: table, log: log}
}

// Serve renders the view for the request path. It answers GET and HEAD only.
func (s *Shell) Serve(ctx *gin.Context) {
	if ctx.Request.Method != http.MethodGet && ctx.Request.Method != http.MethodHead {
		ctx.String(http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
		return
	}
	s.Render(ctx, s.table.Resolve(ctx.Request.URL.Path))
}

// Render writes a view inside the shell, using the request path for the
// header. Form handlers use it to answer a POST with a page.
func (s *Shell) Render(ctx *gin.Context, v View) {
	path := ctx.Request.URL.Path

	res, err := v.Render(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("view", v.Name()).Str("path", path).Msg("view failed")
		_ = ctx.Error(err)
		res = Result{Title: "Error", Status: http.StatusInternalServerError, Content: errorPanel()}
	}
	if res.Redirect != "" {
		ctx.Redirect(http.StatusSeeOther, res.Redirect)
		return
	}
	if res.Status == 0 {
		res.Status = http.StatusOK
	}

	var doc g.Node
	if ctx.GetHeader(PartialHeader) != "" {
		doc = Fragment(path, res)
	} else {
		doc = Document(path, res)
	}

	ctx.Header("Vary", PartialHeader)
	ctx.Header("Content-Type", "text/html; charset=utf-8")
	ctx.Status(res.Status)
	if ctx.Request.Method == http.MethodHead {
		return
	}
	if err := doc.Render(ctx.Writer); err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("failed to write page")
	}
}

// Fragment is the header followed by the main content region.
func Fragment(path string, res Result) g.Node {
	return g.Group{
		Header(path),
		h.Main(h.Class("main-content"), g.Attr("data-view-title", pageTitle(res)), res.Content),
	}
}

// Document is a full HTML page wrapping Fragment.
func Document(path string, res Result) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:    pageTitle(res),
		Language: "en",
		Head: []g.Node{
			h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
			h.Link(h.Rel("stylesheet"), h.Href("/static/app.css")),
			h.Script(h.Src("/static/nav.js"), h.Defer()),
		},
		Body: []g.Node{
			h.Div(h.ID("app"), h.Class("App"), Fragment(path, res)),
		},
	})
}

func pageTitle(res Result) string {
	if res.Title == "" {
		return SiteTitle
	}
	return res.Title + " | " + SiteTitle
}

func errorPanel() g.Node {
	return h.Div(h.Class("error-panel"),
		h.H2(g.Text("Something went wrong")),
		h.P(g.Text("The page could not be loaded. Please try again.")),
	)
}
