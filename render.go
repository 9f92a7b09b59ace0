package resumegen

import "strings"

// RenderOptions carries the display toggles that shape the experience
// section. Zero MaxHighlightsPerJob means unlimited.
type RenderOptions struct {
	ShowTechnologies    bool
	MaxHighlightsPerJob int
}

// RenderExperience renders work entries as \cventrylong blocks, one per
// entry, in input order. Free text is escaped here; the period is inserted
// verbatim (it was formatted, not typed by the user, and contains no
// specials).
func RenderExperience(entries []WorkEntry, opts RenderOptions) string {
	var b strings.Builder

	for _, exp := range entries {
		b.WriteString("\\cventrylong\n")
		b.WriteString("  {" + EscapeLaTeX(exp.Title) + "}\n")
		b.WriteString("  {" + EscapeLaTeX(exp.Company) + "}\n")
		b.WriteString("  {" + EscapeLaTeX(exp.Location) + "}\n")
		b.WriteString("  {" + exp.Period + "}\n")
		b.WriteString("  {\n")

		if exp.Summary != "" {
			b.WriteString("    " + EscapeLaTeX(exp.Summary) + "\n")
		}

		if len(exp.Highlights) > 0 {
			highlights := exp.Highlights
			if opts.MaxHighlightsPerJob > 0 && len(highlights) > opts.MaxHighlightsPerJob {
				highlights = highlights[:opts.MaxHighlightsPerJob]
			}
			b.WriteString("    \\begin{cvitems}\n")
			for _, h := range highlights {
				b.WriteString("      \\item {" + EscapeLaTeX(h) + "}\n")
			}
			b.WriteString("    \\end{cvitems}\n")
		}

		b.WriteString("  }\n")

		// Technologies line, or an empty group to keep the macro arity fixed.
		if opts.ShowTechnologies && len(exp.Technologies) > 0 {
			b.WriteString("  {" + escapeJoin(exp.Technologies, ", ") + "}\n")
		} else {
			b.WriteString("  {}\n")
		}

		b.WriteString("\n")
	}

	return b.String()
}

// RenderEducation renders education entries as \cventry blocks.
func RenderEducation(entries []EducationEntry) string {
	var b strings.Builder

	for _, edu := range entries {
		b.WriteString("\\cventry\n")
		b.WriteString("  {" + EscapeLaTeX(edu.Degree) + "}\n")
		b.WriteString("  {" + EscapeLaTeX(edu.Institution) + "}\n")
		b.WriteString("  {" + EscapeLaTeX(edu.Location) + "}\n")
		b.WriteString("  {" + edu.Period + "}\n")
		b.WriteString("  {}\n\n")
	}

	return b.String()
}

// RenderSkills renders skill groups as \cvskills blocks. Groups with no
// keywords produce no output at all.
func RenderSkills(groups []SkillGroup) string {
	var b strings.Builder

	for _, g := range groups {
		if len(g.Keywords) == 0 {
			continue
		}
		b.WriteString("\\cvskills\n")
		b.WriteString("  {" + EscapeLaTeX(g.Name) + "}\n")
		b.WriteString("  {\n")
		b.WriteString("    " + escapeJoin(g.Keywords, " \\textbar\\ "))
		b.WriteString("\n  }\n\n")
	}

	return b.String()
}

// escapeJoin escapes each item individually, then joins with sep.
// The separator itself is raw markup and must not pass through the escaper.
func escapeJoin(items []string, sep string) string {
	escaped := make([]string, len(items))
	for i, item := range items {
		escaped[i] = EscapeLaTeX(item)
	}
	return strings.Join(escaped, sep)
}
