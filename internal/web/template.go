package web

import (
	_ "embed"
	"html/template"

	"criclite/internal/view"
)

//go:embed page.gohtml
var pageHTML string

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

type htmlModel struct {
	Page           view.Page
	Theme          Theme
	RefreshSeconds int
}
