package resumegen

// Resume is the normalized form of a résumé document. Both supported input
// schemas (legacy flat, JSONResume) are resolved into this shape at load
// time so that rendering never needs to know which schema produced it.
//
// String fields hold raw (unescaped) text unless noted otherwise; escaping
// happens once, at render/compose time. LinkedIn, GitHub and Homepage are
// used verbatim in the template and are never escaped.
type Resume struct {
	Name     string
	Title    string
	Address  string
	Phone    string
	Email    string
	LinkedIn string // handle (JSONResume) or full URL (legacy)
	GitHub   string // handle
	Homepage string
	Summary  string

	Experience []WorkEntry
	Education  []EducationEntry
	Skills     []SkillGroup
}

// WorkEntry is one position in the work history.
type WorkEntry struct {
	Title        string
	Company      string
	Location     string
	Period       string // already formatted, e.g. "01/2019 – Current"
	Summary      string
	Highlights   []string
	Technologies []string
}

// EducationEntry is one entry in the education history.
type EducationEntry struct {
	Degree      string
	Institution string
	Location    string
	Period      string
}

// SkillGroup is a named group of skill keywords. Groups with no keywords
// are skipped by the renderer.
type SkillGroup struct {
	Name     string
	Keywords []string
}

// Input holds the per-run parameters for a generation.
type Input struct {
	Language  string // "en" or "it"
	DataPath  string // path to the JSON data file
	OutputDir string // directory receiving the final PDF
}
