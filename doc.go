// Package mdsite converts a directory tree of Markdown and plain-text
// documents into a static HTML site with per-directory index pages and
// consistent navigation.
//
// # Quick Start
//
// Create a builder and run one full-site generation:
//
//	builder, err := mdsite.NewBuilder(mdsite.Options{
//	    SourceDir: "docs-src",
//	    OutputDir: "docs",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := builder.Build(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, item := range report.Items {
//	    if item.Err != nil {
//	        log.Printf("skipped %s: %v", item.Path, item.Err)
//	    }
//	}
//
// The output directory is deleted and recreated on every run. Each eligible
// source file (.md, .markdown, .txt) yields one HTML page at the mirrored
// path with the extension replaced by .html; each visited directory yields
// an index.html listing its children. A .nojekyll marker is written at the
// output root so static hosts skip their own preprocessing.
//
// # Generation Pipeline
//
// The build proceeds in these stages:
//
//  1. Purge and recreate the output root, write .nojekyll
//  2. Walk the source tree depth-first in lexicographic order, skipping
//     hidden entries and the output directory itself
//  3. Per eligible file: split YAML front matter, convert Markdown to HTML
//     via Goldmark (GFM, syntax-highlight classes), assemble the page
//  4. Per directory: build a listing of its children and assemble index.html
//
// Per-file failures are isolated: they are recorded in the Report and the
// walk continues. Only structural failures (the output root cannot be
// reset) abort a build.
//
// # Parallel Conversion
//
// File conversions within a directory run on a bounded worker pool backed
// by reusable Goldmark converters. A directory's index page is written only
// after all of that directory's file conversions have been attempted.
package mdsite
