package resumegen

import "strings"

// Template placeholder tokens. Each appears at most once per template and
// is replaced with its value verbatim; escaping happened upstream.
const (
	phName            = "{{NAME}}"
	phTitle           = "{{TITLE}}"
	phAddress         = "{{ADDRESS}}"
	phPhone           = "{{PHONE}}"
	phEmail           = "{{EMAIL}}"
	phLinkedIn        = "{{LINKEDIN}}"
	phGitHub          = "{{GITHUB}}"
	phHomepage        = "{{HOMEPAGE}}"
	phLabelSummary    = "{{LABEL_SUMMARY}}"
	phSummary         = "{{SUMMARY}}"
	phLabelExperience = "{{LABEL_EXPERIENCE}}"
	phExperience      = "{{EXPERIENCE}}"
	phLabelEducation  = "{{LABEL_EDUCATION}}"
	phEducation       = "{{EDUCATION}}"
	phLabelSkills     = "{{LABEL_SKILLS}}"
	phSkills          = "{{SKILLS}}"
)

// defaultColorLine is the color declaration every template ships with;
// Compose rewrites it to the configured scheme.
const defaultColorLine = `\colorlet{awesome}{awesome-skyblue}`

// Compose substitutes the resume's values and rendered section bodies into
// the template and rewrites the color-scheme declaration. Placeholders with
// no corresponding value are left as literal text; that is deliberate and
// lets templates omit sections without failing the run.
func Compose(template string, r *Resume, labels LabelSet, color string, opts RenderOptions) string {
	out := template

	replace := func(token, value string) {
		out = strings.Replace(out, token, value, 1)
	}

	replace(phName, EscapeLaTeX(r.Name))
	replace(phTitle, EscapeLaTeX(r.Title))
	replace(phAddress, EscapeLaTeX(r.Address))
	replace(phPhone, EscapeLaTeX(r.Phone))
	replace(phEmail, EscapeLaTeX(r.Email))
	replace(phLinkedIn, r.LinkedIn)
	replace(phGitHub, r.GitHub)
	replace(phHomepage, r.Homepage)

	replace(phLabelSummary, labels.Summary)
	replace(phSummary, EscapeLaTeX(r.Summary))

	replace(phLabelExperience, labels.Experience)
	replace(phExperience, RenderExperience(r.Experience, opts))

	replace(phLabelEducation, labels.Education)
	replace(phEducation, RenderEducation(r.Education))

	replace(phLabelSkills, labels.Skills)
	replace(phSkills, RenderSkills(r.Skills))

	if color != "" {
		replace(defaultColorLine, `\colorlet{awesome}{awesome-`+color+`}`)
	}

	return out
}
