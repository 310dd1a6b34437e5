package mdsite

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"path"
	"path/filepath"
	"sync"
	"time"

	"github.com/mdsite/mdsite/internal/fileutil"
	"github.com/mdsite/mdsite/internal/pipeline"
)

// converterProbe verifies at construction time that markdown conversion is
// available, before any output is touched.
const converterProbe = "# probe"

// timestampLayout is the human-readable footer timestamp format.
const timestampLayout = "2006-01-02 15:04:05"

// Builder orchestrates one full-site regeneration.
type Builder struct {
	opts     Options
	renderer *PageRenderer
	pool     *ConverterPool
	pre      pipeline.Preprocessor
	now      func() time.Time
}

// NewBuilder creates a Builder for the given options. Empty directories
// fall back to the defaults. Returns an error if the options are invalid,
// the page template cannot be parsed, or markdown conversion is
// unavailable.
func NewBuilder(opts Options, buildOpts ...BuilderOption) (*Builder, error) {
	if opts.SourceDir == "" {
		opts.SourceDir = DefaultSourceDir
	}
	if opts.OutputDir == "" {
		opts.OutputDir = DefaultOutputDir
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	renderer, err := NewPageRenderer()
	if err != nil {
		return nil, err
	}

	b := &Builder{
		opts:     opts,
		renderer: renderer,
		pool:     NewConverterPool(ResolvePoolSize(opts.Workers)),
		pre:      pipeline.PassthroughPreprocessor{},
		now:      time.Now,
	}

	for _, opt := range buildOpts {
		opt(b)
	}

	conv := b.pool.Acquire()
	defer b.pool.Release(conv)
	if _, err := conv.ToHTML(context.Background(), converterProbe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConverterProbe, err)
	}

	return b, nil
}

// Build runs one full-site regeneration: the output directory is purged
// and recreated, the marker file written, and the source tree mirrored
// into generated pages. Per-item failures are recorded in the returned
// Report; only structural failures return an error.
func (b *Builder) Build(ctx context.Context) (*Report, error) {
	start := time.Now()

	srcRoot, err := filepath.Abs(b.opts.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("resolving source directory: %w", err)
	}
	outRoot, err := filepath.Abs(b.opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("resolving output directory: %w", err)
	}

	if !fileutil.DirExists(srcRoot) {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, b.opts.SourceDir)
	}

	// Purge before anything is written; prior contents never survive.
	if err := os.RemoveAll(outRoot); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutputReset, err)
	}
	if err := os.MkdirAll(outRoot, dirPermissions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutputReset, err)
	}
	if err := os.WriteFile(filepath.Join(outRoot, nojekyllName), nil, filePermissions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutputReset, err)
	}

	w := &walker{
		Builder: b,
		srcRoot: srcRoot,
		outRoot: outRoot,
		outName: filepath.Base(outRoot),
	}

	report := &Report{Output: outRoot}
	w.walk(ctx, rootSentinel, report)
	report.Duration = time.Since(start)
	return report, nil
}

// walker carries the resolved roots of one build run.
type walker struct {
	*Builder
	srcRoot string
	outRoot string
	outName string
}

// walk mirrors the directory at rel into the output tree: file pages
// first, then the directory's own index, then subdirectories. Siblings
// are visited in lexicographic order for reproducible output.
func (w *walker) walk(ctx context.Context, rel string, report *Report) {
	if ctx.Err() != nil {
		return
	}

	srcDir := filepath.Join(w.srcRoot, filepath.FromSlash(rel))
	outDir := filepath.Join(w.outRoot, filepath.FromSlash(rel))

	entries, err := os.ReadDir(srcDir)
	if err != nil {
		report.Items = append(report.Items, ItemResult{
			Path:   rel,
			Output: path.Join(rel, indexName),
			Kind:   KindIndex,
			Err:    fmt.Errorf("%w: %v", ErrListDirectory, err),
		})
		return
	}

	if err := os.MkdirAll(outDir, dirPermissions); err != nil {
		report.Items = append(report.Items, ItemResult{
			Path:   rel,
			Output: path.Join(rel, indexName),
			Kind:   KindIndex,
			Err:    fmt.Errorf("%w: %v", ErrMirrorDirectory, err),
		})
		return
	}

	// os.ReadDir returns entries sorted by name.
	var subdirs, files []string
	for _, entry := range entries {
		name := entry.Name()
		if fileutil.IsHidden(name) || name == w.outName {
			continue
		}
		if entry.IsDir() {
			if fileutil.WithinDir(w.outRoot, filepath.Join(srcDir, name)) {
				continue
			}
			subdirs = append(subdirs, name)
		} else if fileutil.IsEligible(name) {
			files = append(files, name)
		}
	}

	trail := BreadcrumbTrail(rel)
	homeLink := RootRelativePrefix(Depth(rel)) + "/" + indexName

	// The index is written only after every file page has been attempted.
	report.Items = append(report.Items, w.convertFiles(ctx, rel, srcDir, outDir, files, trail, homeLink)...)
	report.Items = append(report.Items, w.writeIndex(rel, outDir, subdirs, files, trail, homeLink))

	for _, name := range subdirs {
		w.walk(ctx, path.Join(rel, name), report)
	}
}

// convertFiles processes a directory's eligible files concurrently using
// the converter pool. Results keep the lexicographic file order.
func (w *walker) convertFiles(ctx context.Context, rel, srcDir, outDir string, files []string, trail []Breadcrumb, homeLink string) []ItemResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := w.pool.Size()
	if concurrency > len(files) {
		concurrency = len(files)
	}

	results := make([]ItemResult, len(files))
	jobs := make(chan int, len(files))
	var wg sync.WaitGroup

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			conv := w.pool.Acquire()
			defer w.pool.Release(conv)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ItemResult{
						Path: path.Join(rel, files[idx]),
						Kind: KindPage,
						Err:  ctx.Err(),
					}
					continue
				}
				results[idx] = w.convertFile(ctx, conv, rel, srcDir, outDir, files[idx], trail, homeLink)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile generates the content page for one eligible source file.
func (w *walker) convertFile(ctx context.Context, conv pipeline.Converter, rel, srcDir, outDir, name string, trail []Breadcrumb, homeLink string) (res ItemResult) {
	start := time.Now()
	base := fileutil.BaseName(name)
	res = ItemResult{
		Path:   path.Join(rel, name),
		Output: path.Join(rel, base+".html"),
		Kind:   KindPage,
	}
	defer func() { res.Duration = time.Since(start) }()

	raw, err := os.ReadFile(filepath.Join(srcDir, name)) // #nosec G304 -- discovered path
	if err != nil {
		res.Err = fmt.Errorf("%w: %v", ErrReadDocument, err)
		return res
	}

	meta, body := pipeline.SplitFrontMatter(string(raw))

	if w.opts.FormatMarkdown {
		body = w.pre.PreprocessMarkdown(body)
	}

	markup, err := conv.ToHTML(ctx, body)
	if err != nil {
		res.Err = fmt.Errorf("converting to HTML: %w", err)
		return res
	}

	title := base
	if meta.Title != "" {
		title = meta.Title
	}

	doc, err := w.renderer.Render(PageData{
		Title:       title,
		Description: meta.Description,
		Breadcrumbs: trail,
		Body:        template.HTML(markup), // #nosec G203 -- converter output is trusted
		HomeLink:    homeLink,
		GeneratedAt: w.now().Format(timestampLayout),
	})
	if err != nil {
		res.Err = err
		return res
	}

	// #nosec G306 -- generated pages are meant to be readable
	if err := os.WriteFile(filepath.Join(outDir, base+".html"), []byte(doc), filePermissions); err != nil {
		res.Err = fmt.Errorf("%w: %v", ErrWritePage, err)
	}
	return res
}

// writeIndex generates the listing page for the directory at rel.
func (w *walker) writeIndex(rel, outDir string, subdirs, files []string, trail []Breadcrumb, homeLink string) (res ItemResult) {
	start := time.Now()
	res = ItemResult{
		Path:   rel,
		Output: path.Join(rel, indexName),
		Kind:   KindIndex,
	}
	defer func() { res.Duration = time.Since(start) }()

	entries := make([]ListingEntry, 0, len(subdirs)+len(files))
	for _, name := range subdirs {
		entries = append(entries, DirEntryOf(name))
	}
	for _, name := range files {
		entries = append(entries, FileEntryOf(name))
	}

	dirName := path.Base(rel)
	title := dirName
	if rel == rootSentinel {
		title = "Home"
	}

	doc, err := w.renderer.Render(PageData{
		Title:       title,
		Breadcrumbs: trail,
		Body:        template.HTML(BuildListing(dirName, entries)), // #nosec G203 -- listing markup is generated and escaped
		HomeLink:    homeLink,
		GeneratedAt: w.now().Format(timestampLayout),
	})
	if err != nil {
		res.Err = err
		return res
	}

	// #nosec G306 -- generated pages are meant to be readable
	if err := os.WriteFile(filepath.Join(outDir, indexName), []byte(doc), filePermissions); err != nil {
		res.Err = fmt.Errorf("%w: %v", ErrWritePage, err)
	}
	return res
}
