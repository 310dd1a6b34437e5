// Package pipeline contains the document conversion stages: front matter
// splitting, the markdown pre-formatting seam, and Markdown to HTML
// conversion via Goldmark.
package pipeline
