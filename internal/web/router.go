package web

import (
	"strings"

	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"
)

// Result is a rendered leaf view. A zero Status means 200 OK. A non-empty
// Redirect sends the browser there with 303 See Other instead of rendering.
type Result struct {
	Title    string
	Status   int
	Content  g.Node
	Redirect string
}

// View is a top-level page rendered for one route. It reads whatever it needs
// from the request itself.
type View interface {
	Name() string
	Render(c *gin.Context) (Result, error)
}

// Matcher decides whether a route applies to a path.
type Matcher func(path string) bool

// Exact matches only the path p itself.
func Exact(p string) Matcher {
	return func(path string) bool { return path == p }
}

// Prefix matches p and every path below it, ignoring case. The match ends on
// a segment boundary, so Prefix("/add") takes "/ADD/x" but not "/address".
func Prefix(p string) Matcher {
	p = strings.TrimSuffix(p, "/")
	return func(path string) bool {
		if len(path) < len(p) || !strings.EqualFold(path[:len(p)], p) {
			return false
		}
		return len(path) == len(p) || path[len(p)] == '/'
	}
}

// Route pairs a matcher with the view it selects.
type Route struct {
	Match Matcher
	View  View
}

// Table maps a path to exactly one view. Routes are tried in order and the
// first match wins; the fallback takes everything else. A Table is immutable
// and safe for concurrent use.
type Table struct {
	routes   []Route
	fallback View
}

// NewTable builds a routing table. fallback must not be nil.
func NewTable(routes []Route, fallback View) *Table {
	if fallback == nil {
		panic("web: routing table needs a fallback view")
	}
	rs := make([]Route, len(routes))
	copy(rs, routes)
	return &Table{routes: rs, fallback: fallback}
}

// Resolve returns the view for path. It never returns nil.
func (t *Table) Resolve(path string) View {
	for _, r := range t.routes {
		if r.Match(path) {
			return r.View
		}
	}
	return t.fallback
}

// Views are the leaf views of the trivia app.
type Views struct {
	List View
	Add  View
	Play View
}

// DefaultTable is the app's routing: "/" and anything unmatched show the
// question list, "/add..." the question form and "/play..." the quiz.
func DefaultTable(v Views) *Table {
	return NewTable([]Route{
		{Match: Exact("/"), View: v.List},
		{Match: Prefix("/add"), View: v.Add},
		{Match: Prefix("/play"), View: v.Play},
	}, v.List)
}
