package pipeline

// Preprocessor defines the contract for markdown pre-formatting ahead of
// conversion.
type Preprocessor interface {
	PreprocessMarkdown(content string) string
}

// PassthroughPreprocessor returns content unchanged. It is the only
// implementation: the formatting pass the CLI flag once controlled was
// disabled upstream and is kept as a seam rather than removed.
type PassthroughPreprocessor struct{}

// PreprocessMarkdown returns the content as-is.
func (PassthroughPreprocessor) PreprocessMarkdown(content string) string {
	return content
}

// Compile-time interface check.
var _ Preprocessor = PassthroughPreprocessor{}
