package pipeline_test

// Notes:
// - ToHTML returns a body fragment, not a complete document; the page
//   renderer owns the surrounding markup, so tests assert on fragments.
// - Cancellation mid-conversion is timing-dependent; we test the fast path
//   (already-cancelled context) which is deterministic.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mdsite/mdsite/internal/pipeline"
)

// ---------------------------------------------------------------------------
// TestGoldmarkConverter_ToHTML - Markdown conversion
// ---------------------------------------------------------------------------

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		contains []string
	}{
		{
			name:     "heading",
			content:  "# Getting Started",
			contains: []string{"<h1", "Getting Started", "</h1>"},
		},
		{
			name:     "heading gets anchor id",
			content:  "## Install Guide",
			contains: []string{`id="install-guide"`},
		},
		{
			name:     "paragraph",
			content:  "plain prose",
			contains: []string{"<p>plain prose</p>"},
		},
		{
			name:     "gfm table",
			content:  "| a | b |\n|---|---|\n| 1 | 2 |",
			contains: []string{"<table>", "<td>1</td>"},
		},
		{
			name:     "gfm strikethrough",
			content:  "~~gone~~",
			contains: []string{"<del>gone</del>"},
		},
		{
			name:     "fenced code with highlighting classes",
			content:  "```go\nfunc main() {}\n```",
			contains: []string{`<pre class="chroma">`, "func"},
		},
		{
			name:     "empty input",
			content:  "",
			contains: []string{""},
		},
	}

	conv := pipeline.NewGoldmarkConverter()

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.ToHTML(context.Background(), tt.content)
			if err != nil {
				t.Fatalf("ToHTML() error = %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("ToHTML(%q) = %q, missing %q", tt.content, got, want)
				}
			}
		})
	}
}

func TestGoldmarkConverter_ToHTML_Fragment(t *testing.T) {
	t.Parallel()

	conv := pipeline.NewGoldmarkConverter()
	got, err := conv.ToHTML(context.Background(), "# Title")
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}

	for _, wrapper := range []string{"<html", "<head", "<body"} {
		if strings.Contains(got, wrapper) {
			t.Errorf("ToHTML() output contains document wrapper %q, want bare fragment", wrapper)
		}
	}
}

func TestGoldmarkConverter_ToHTML_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	conv := pipeline.NewGoldmarkConverter()
	_, err := conv.ToHTML(ctx, "# Title")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ToHTML() error = %v, want context.Canceled", err)
	}
}

func TestGoldmarkConverter_ToHTML_Concurrent(t *testing.T) {
	t.Parallel()

	conv := pipeline.NewGoldmarkConverter()
	done := make(chan error, 8)

	for i := 0; i < 8; i++ {
		go func() {
			_, err := conv.ToHTML(context.Background(), "# Concurrent\n\nsome *prose*")
			done <- err
		}()
	}
	for i := 0; i < 8; i++ {
		if err := <-done; err != nil {
			t.Errorf("concurrent ToHTML() error = %v", err)
		}
	}
}
