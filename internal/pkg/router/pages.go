package router

// PageRoute binds one URL path to one static view. The table is fixed at
// startup and never mutated; every path is unique and the view file must
// exist under views/.
type PageRoute struct {
	Path  string
	View  string
	Title string
}

var pageRoutes = []PageRoute{
	{Path: "/home", View: "front", Title: "Verdict Ventures"},
	{Path: "/acts", View: "acts", Title: "Acts Overview"},
	{Path: "/acts/chap1", View: "chap1", Title: "Chapter I: Preliminary"},
	{Path: "/acts/chap2", View: "chap2", Title: "Chapter II: Authorities"},
	{Path: "/acts/chap3", View: "chap3", Title: "Chapter III: Reference of Disputes"},
	{Path: "/acts/chap3a", View: "chap3a", Title: "Chapter III-A: Special Provisions"},
	{Path: "/acts/chap4", View: "chap4", Title: "Chapter IV: Procedure and Powers"},
	{Path: "/acts/chap5", View: "chap5", Title: "Chapter V: Strikes and Lock-outs"},
	{Path: "/acts/chap6", View: "chap6", Title: "Chapter VI: Penalties"},
	{Path: "/acts/chap7", View: "chap7", Title: "Chapter VII: Miscellaneous"},
	{Path: "/work", View: "work", Title: "How It Works"},
	{Path: "/ethics", View: "ethics", Title: "Ethics Statement"},
	{Path: "/form", View: "form", Title: "Submit a Document"},
}

// PageRoutes returns the static page route table.
func PageRoutes() []PageRoute {
	return pageRoutes
}
