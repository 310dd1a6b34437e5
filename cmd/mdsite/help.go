package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite [source_dir] [output_dir] [format_markdown]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a static HTML site from a tree of markdown and text files.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  source_dir       Directory to scan (default \".\")")
	fmt.Fprintln(w, "  output_dir       Directory to write the site into (default \"docs\")")
	fmt.Fprintln(w, "  format_markdown  Reserved compatibility flag; \"false\", \"0\", or \"no\"")
	fmt.Fprintln(w, "                   disables a pre-formatting step that currently has no effect")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -h, --help       Show this message")
	fmt.Fprintln(w, "  -V, --version    Show version information")
}
