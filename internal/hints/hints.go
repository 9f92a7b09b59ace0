// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForCompilerNotFound returns hints for a missing xelatex binary.
func ForCompilerNotFound() string {
	return formatHints([]string{
		"install TeX Live (apt install texlive-xetex) or MacTeX",
		"make sure xelatex is on PATH",
	})
}

// ForCompilerFailure returns a hint for a failed compilation; the log file
// with full diagnostics is left in the output directory.
func ForCompilerFailure(lang string) string {
	return format("intermediate files were kept; see cv-" + lang + ".log in the output directory")
}

// ForConfigParse returns a hint for an unparseable config file.
func ForConfigParse() string {
	return format("valid keys: template, color, show_technologies, max_highlights_per_job")
}

// ForDataNotFound returns a hint for a missing data file.
func ForDataNotFound(lang string) string {
	return format("expected data/cv-" + lang + ".json; use --data-dir to point elsewhere")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
