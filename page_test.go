package mdsite_test

// Notes:
// - The template is embedded, so parse failures cannot be triggered from
//   tests; NewPageRenderer success is the contract under test.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"html/template"
	"strings"
	"testing"

	mdsite "github.com/mdsite/mdsite"
)

// ---------------------------------------------------------------------------
// TestPageRenderer_Render - Document assembly
// ---------------------------------------------------------------------------

func TestPageRenderer_Render(t *testing.T) {
	t.Parallel()

	renderer, err := mdsite.NewPageRenderer()
	if err != nil {
		t.Fatalf("NewPageRenderer() error = %v", err)
	}

	got, err := renderer.Render(mdsite.PageData{
		Title:       "Install Guide",
		Breadcrumbs: mdsite.BreadcrumbTrail("guides/install"),
		Body:        template.HTML("<h1>Install</h1>"),
		HomeLink:    "../../index.html",
		GeneratedAt: "2026-08-30 12:00:00",
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	wants := []string{
		"<title>Install Guide</title>",
		"<h1>Install</h1>",
		`href="../../index.html"`,
		"2026-08-30 12:00:00",
		`href="../index.html"`, // breadcrumb to the guides level
		"guides",
		"install",
	}
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("Render() output missing %q", want)
		}
	}
}

func TestPageRenderer_Render_Description(t *testing.T) {
	t.Parallel()

	renderer, err := mdsite.NewPageRenderer()
	if err != nil {
		t.Fatalf("NewPageRenderer() error = %v", err)
	}

	data := mdsite.PageData{
		Title:       "Guide",
		Breadcrumbs: mdsite.BreadcrumbTrail("."),
		Body:        template.HTML("<p>body</p>"),
		HomeLink:    "./index.html",
		GeneratedAt: "2026-08-30 12:00:00",
	}

	got, err := renderer.Render(data)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(got, `name="description"`) {
		t.Error("Render() emits meta description for empty Description")
	}

	data.Description = "setup walkthrough"
	got, err = renderer.Render(data)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(got, `<meta name="description" content="setup walkthrough">`) {
		t.Error("Render() missing meta description")
	}
}

func TestPageRenderer_Render_EscapesTitle(t *testing.T) {
	t.Parallel()

	renderer, err := mdsite.NewPageRenderer()
	if err != nil {
		t.Fatalf("NewPageRenderer() error = %v", err)
	}

	got, err := renderer.Render(mdsite.PageData{
		Title:       `<script>alert("x")</script>`,
		Breadcrumbs: mdsite.BreadcrumbTrail("."),
		Body:        template.HTML("<p>body</p>"),
		HomeLink:    "./index.html",
		GeneratedAt: "2026-08-30 12:00:00",
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if strings.Contains(got, `<script>alert("x")</script>`) {
		t.Error("Render() leaves raw script tag from title in output")
	}
}

func TestPageRenderer_Render_BodyIsTrusted(t *testing.T) {
	t.Parallel()

	renderer, err := mdsite.NewPageRenderer()
	if err != nil {
		t.Fatalf("NewPageRenderer() error = %v", err)
	}

	body := `<table><tr><td>cell</td></tr></table>`
	got, err := renderer.Render(mdsite.PageData{
		Title:       "Tables",
		Breadcrumbs: mdsite.BreadcrumbTrail("."),
		Body:        template.HTML(body),
		HomeLink:    "./index.html",
		GeneratedAt: "2026-08-30 12:00:00",
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !strings.Contains(got, body) {
		t.Error("Render() escapes pre-rendered body markup")
	}
}
