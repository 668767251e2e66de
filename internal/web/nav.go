package web

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// SiteTitle is shown in the header and the document title.
const SiteTitle = "Udacitrivia"

// NavLink is one entry of the header menu.
type NavLink struct {
	Label  string
	Target string
}

var navLinks = []NavLink{
	{Label: "List", Target: "/"},
	{Label: "Add", Target: "/add"},
	{Label: "Play", Target: "/play"},
}

// NavLinks returns the header menu in display order.
func NavLinks() []NavLink {
	out := make([]NavLink, len(navLinks))
	copy(out, navLinks)
	return out
}

// Active reports whether a link to target is the current location. Only an
// exact match counts, so "/add/x" marks no link and "/" only marks List.
func Active(current, target string) bool {
	return current == target
}

// LinkClass is the class attribute of a nav link to target.
func LinkClass(current, target string) string {
	if Active(current, target) {
		return "nav-link active"
	}
	return "nav-link"
}

// Header renders the site title and the menu for the current path.
func Header(current string) g.Node {
	return h.Div(h.Class("App-header"),
		h.Div(h.Class("header-content"),
			h.A(h.Href("/"), h.Class("nav-link"),
				h.H1(g.Text(SiteTitle)),
			),
			h.Nav(h.Class("nav-menu"),
				g.Map(navLinks, func(l NavLink) g.Node {
					return h.A(h.Href(l.Target), h.Class(LinkClass(current, l.Target)), g.Text(l.Label))
				}),
			),
		),
	)
}
