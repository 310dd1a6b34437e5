package pipeline

import (
	"strings"

	"github.com/mdsite/mdsite/internal/yamlutil"
)

// frontMatterFence delimits a leading YAML metadata block.
const frontMatterFence = "---"

// FrontMatter holds document metadata parsed from a leading YAML block.
type FrontMatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// cutLine splits off the first line of s without its terminator,
// tolerating both LF and CRLF endings.
func cutLine(s string) (line, rest string, found bool) {
	line, rest, found = strings.Cut(s, "\n")
	return strings.TrimSuffix(line, "\r"), rest, found
}

// isFence reports whether a line is a front matter fence.
func isFence(line string) bool {
	return line == frontMatterFence
}

// SplitFrontMatter separates an optional leading YAML block from the
// document body. The block counts as front matter only when it is closed
// by a second fence and decodes into a YAML mapping; anything else, such
// as a document opening with a thematic break, is returned whole as the
// body. Markdown that renders without metadata keeps rendering here.
func SplitFrontMatter(content string) (FrontMatter, string) {
	var meta FrontMatter

	first, rest, found := cutLine(content)
	if !isFence(first) || !found {
		return meta, content
	}

	var block strings.Builder
	for {
		line, next, more := cutLine(rest)
		if isFence(line) {
			text := block.String()
			if strings.TrimSpace(text) == "" {
				return meta, next
			}
			if err := yamlutil.Unmarshal([]byte(text), &meta); err != nil {
				return FrontMatter{}, content
			}
			return meta, next
		}
		if !more {
			// No closing fence; the leading fence was a thematic break.
			return FrontMatter{}, content
		}
		block.WriteString(line)
		block.WriteString("\n")
		rest = next
	}
}
