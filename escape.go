package resumegen

import "strings"

// latexReplacements maps special characters to their LaTeX escapes.
// Order is load-bearing: passes run once each, in sequence, so a
// replacement must not emit a character that appears later in the table,
// or the later pass would escape it a second time. Emitting characters
// already processed is safe. The brace entries therefore precede ~ and ^,
// whose escapes emit braces. Review the whole table before adding entries.
var latexReplacements = []struct {
	old string
	new string
}{
	{"&", `\&`},
	{"%", `\%`},
	{"$", `\$`},
	{"#", `\#`},
	{"_", `\_`},
	{"{", `\{`},
	{"}", `\}`},
	{"~", `\textasciitilde{}`},
	{"^", `\^{}`},
}

// EscapeLaTeX escapes the nine LaTeX special characters in free text.
// It is applied to every free-text field exactly once before the text is
// embedded in markup. It must not be applied to URLs, handles, or already
// rendered fragments.
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}
	for _, r := range latexReplacements {
		text = strings.ReplaceAll(text, r.old, r.new)
	}
	return text
}
