package web

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	g "maragu.dev/gomponents"
)

type stubView struct {
	name string
	res  Result
	err  error
}

func (v *stubView) Name() string { return v.name }

func (v *stubView) Render(*gin.Context) (Result, error) {
	if v.res.Content == nil && v.err == nil && v.res.Redirect == "" {
		return Result{Title: v.name, Content: g.Text("view:" + v.name), Status: v.res.Status}, nil
	}
	return v.res, v.err
}

func stubViews() Views {
	return Views{
		List: &stubView{name: "list"},
		Add:  &stubView{name: "add"},
		Play: &stubView{name: "play"},
	}
}

func TestDefaultTable_Resolve(t *testing.T) {
	table := DefaultTable(stubViews())

	tests := []struct {
		path     string
		expected string
	}{
		{path: "/", expected: "list"},
		{path: "/add", expected: "add"},
		{path: "/add/", expected: "add"},
		{path: "/add/question", expected: "add"},
		{path: "/address", expected: "list"},
		{path: "/Add", expected: "add"},
		{path: "/ADD/question", expected: "add"},
		{path: "/play", expected: "play"},
		{path: "/play/science", expected: "play"},
		{path: "/PLAY/x", expected: "play"},
		{path: "/Play/x", expected: "play"},
		{path: "/player", expected: "list"},
		{path: "/unknown", expected: "list"},
		{path: "/questions", expected: "list"},
		{path: "/ad", expected: "list"},
		{path: "", expected: "list"},
		{path: "//", expected: "list"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			v := table.Resolve(tt.path)
			if assert.NotNil(t, v) {
				assert.Equal(t, tt.expected, v.Name())
			}
		})
	}
}

func TestTable_FirstMatchWins(t *testing.T) {
	first := &stubView{name: "first"}
	second := &stubView{name: "second"}
	fallback := &stubView{name: "fallback"}

	table := NewTable([]Route{
		{Match: Prefix("/a"), View: first},
		{Match: Exact("/a"), View: second},
	}, fallback)

	assert.Equal(t, "first", table.Resolve("/a").Name())
	assert.Equal(t, "fallback", table.Resolve("/b").Name())
}

func TestNewTable_CopiesRoutes(t *testing.T) {
	routes := []Route{{Match: Exact("/x"), View: &stubView{name: "x"}}}
	table := NewTable(routes, &stubView{name: "fallback"})

	routes[0] = Route{Match: Exact("/x"), View: &stubView{name: "changed"}}

	assert.Equal(t, "x", table.Resolve("/x").Name())
}

func TestNewTable_RequiresFallback(t *testing.T) {
	assert.Panics(t, func() { NewTable(nil, nil) })
}

func TestMatchers(t *testing.T) {
	assert.True(t, Exact("/")("/"))
	assert.False(t, Exact("/")("/add"))
	assert.True(t, Prefix("/play")("/play"))
	assert.True(t, Prefix("/play")("/play/"))
	assert.True(t, Prefix("/play")("/Play/round"))
	assert.False(t, Prefix("/play")("/player"))
	assert.False(t, Prefix("/play")("/pla"))
	assert.False(t, Prefix("/play")("/x/play"))
}
