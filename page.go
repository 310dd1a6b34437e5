package mdsite

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/mdsite/mdsite/internal/assets"
)

// pageTemplateName is the embedded asset holding the site's visual markup.
const pageTemplateName = "page"

// PageData carries the named slots substituted into the page template.
type PageData struct {
	Title       string
	Description string // meta description, omitted when empty
	Breadcrumbs []Breadcrumb
	Body        template.HTML // trusted pre-rendered markup
	HomeLink    string
	GeneratedAt string
}

// PageRenderer assembles complete HTML documents from PageData. The
// template is parsed once at construction and never varies per invocation.
type PageRenderer struct {
	tmpl *template.Template
}

// NewPageRenderer loads and parses the embedded page template.
func NewPageRenderer() (*PageRenderer, error) {
	content, err := assets.LoadTemplate(pageTemplateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}

	tmpl, err := template.New(pageTemplateName).Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}

	return &PageRenderer{tmpl: tmpl}, nil
}

// Render substitutes data into the page template and returns the complete
// HTML document.
func (r *PageRenderer) Render(data PageData) (string, error) {
	var sb strings.Builder
	if err := r.tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("rendering page %q: %w", data.Title, err)
	}
	return sb.String(), nil
}
