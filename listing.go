package mdsite

import (
	"fmt"
	"html"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Listing entry type labels.
const (
	dirTypeLabel  = "\U0001F4C1 Directory"
	fileTypeEmoji = "\U0001F4C4"
)

// rootListingTitle is used for the source root, which has no own name.
const rootListingTitle = "Documentation"

// titleCaser normalizes listing headings; cases.Caser is not safe for
// concurrent use, so each call site takes a fresh one.
func titleCaser() cases.Caser {
	return cases.Title(language.English)
}

// ListingEntry is one navigable child shown on a directory's index page.
type ListingEntry struct {
	Name      string // display name (directory name or file name)
	Href      string // link relative to the listing page itself
	TypeLabel string // human-readable kind
	IsDir     bool
}

// DirEntryOf builds the listing entry for a subdirectory child.
func DirEntryOf(name string) ListingEntry {
	return ListingEntry{
		Name:      name,
		Href:      name + "/" + indexName,
		TypeLabel: dirTypeLabel,
		IsDir:     true,
	}
}

// FileEntryOf builds the listing entry for an eligible file child. The
// type label derives from the file's extension.
func FileEntryOf(name string) ListingEntry {
	ext := filepath.Ext(name)
	return ListingEntry{
		Name:      name,
		Href:      strings.TrimSuffix(name, ext) + ".html",
		TypeLabel: fmt.Sprintf("%s %s File", fileTypeEmoji, strings.ToUpper(ext)),
	}
}

// BuildListing produces the body markup of a directory index page.
// Entries must already be filtered and sorted; directories are rendered
// before files. An empty directory yields an explicit placeholder instead
// of an empty grid.
func BuildListing(dirName string, entries []ListingEntry) string {
	var sb strings.Builder

	sb.WriteString("<h1>\U0001F4DA ")
	sb.WriteString(html.EscapeString(displayTitle(dirName)))
	sb.WriteString("</h1>\n")
	sb.WriteString(`<p class="intro">Browse through the available documentation files and folders.</p>` + "\n")

	if len(entries) == 0 {
		sb.WriteString(`<p class="empty">No files found in this directory.</p>` + "\n")
		return sb.String()
	}

	sb.WriteString(`<div class="file-list">` + "\n")
	for _, entry := range entries {
		if entry.IsDir {
			writeCard(&sb, entry.Href, entry.Name+"/", entry.TypeLabel)
		}
	}
	for _, entry := range entries {
		if !entry.IsDir {
			writeCard(&sb, entry.Href, entry.Name, entry.TypeLabel)
		}
	}
	sb.WriteString("</div>\n")

	return sb.String()
}

// writeCard emits one link card of the listing grid.
func writeCard(sb *strings.Builder, href, name, typeLabel string) {
	fmt.Fprintf(sb,
		"<div class=\"file-item\">\n<a href=\"%s\">%s</a>\n<div class=\"file-type\">%s</div>\n</div>\n",
		html.EscapeString(href), html.EscapeString(name), html.EscapeString(typeLabel))
}

// displayTitle turns a directory name into a heading: word separators
// become spaces and each word is title-cased. The root falls back to a
// fixed heading.
func displayTitle(dirName string) string {
	if dirName == "" || dirName == rootSentinel {
		return rootListingTitle
	}
	name := strings.NewReplacer("_", " ", "-", " ").Replace(dirName)
	return titleCaser().String(name)
}
