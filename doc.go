// Package resumegen turns structured résumé data into a typeset PDF.
//
// The pipeline is a single synchronous pass: a JSON data file (either the
// legacy flat schema or the JSONResume standard) is decoded into a
// normalized Resume, each section is rendered into LaTeX fragments, the
// fragments are substituted into a fixed template, and xelatex is invoked
// twice on the result to resolve cross-references. On success only the
// final PDF is left in the output directory.
//
// Basic usage:
//
//	svc := resumegen.New(cfg)
//	pdfPath, err := svc.Generate(ctx, resumegen.Input{
//		Language:  "en",
//		DataPath:  "data/cv-en.json",
//		OutputDir: "output",
//	})
//
// Free text is escaped for LaTeX exactly once, at render time. Values used
// verbatim (URLs, handles, section labels, rendered fragments) bypass the
// escaper. See EscapeLaTeX for the character table and its ordering
// invariant.
package resumegen
