package mdsite_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	mdsite "github.com/mdsite/mdsite"
)

// Example demonstrates generating a site from a small documentation tree.
func Example() {
	src, err := os.MkdirTemp("", "mdsite-src")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(src)
	out := filepath.Join(src, "docs")

	if err := os.WriteFile(filepath.Join(src, "README.md"), []byte("# Hello World"), 0o644); err != nil {
		fmt.Println("error:", err)
		return
	}

	builder, err := mdsite.NewBuilder(mdsite.Options{
		SourceDir: src,
		OutputDir: out,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	report, err := builder.Build(context.Background())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	succeeded, failed := report.Summary()
	fmt.Printf("%d succeeded, %d failed\n", succeeded, failed)
	// Output: 2 succeeded, 0 failed
}

// Example_breadcrumbs demonstrates how navigation trails resolve upward.
func Example_breadcrumbs() {
	for _, crumb := range mdsite.BreadcrumbTrail("guides/install") {
		fmt.Println(crumb.Label, "->", crumb.Href)
	}
	// Output:
	// 🏠 Home -> ../../index.html
	// guides -> ../index.html
	// install -> index.html
}
