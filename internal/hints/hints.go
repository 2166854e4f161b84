// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

// ForNotDocx returns a hint for documents the formatter cannot open.
func ForNotDocx() string {
	return format("ensure the file is a .docx package (Word 2007 or later), not .doc or .rtf")
}

// ForConfigNotFound returns a hint for config file lookup failures.
func ForConfigNotFound() string {
	return format("use --config /path/to/file.yaml or create abnt.yaml in the working directory")
}

// ForNoInput returns a hint when no input document was resolved.
func ForNoInput() string {
	return format("pass one or more .docx files, or set input.defaultDir in the config")
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
