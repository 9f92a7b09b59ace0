package resumegen

import "fmt"

// Supported language codes.
const (
	LangEnglish = "en"
	LangItalian = "it"
)

// LabelSet holds the localized section headers and fixed words used by the
// renderer and compositor. Labels are inserted into the template verbatim,
// never escaped.
type LabelSet struct {
	Summary    string
	Experience string
	Education  string
	Skills     string
	Languages  string
	Additional string

	// Group names for the legacy schema's fixed skill categories.
	TechnicalSkills string
	SoftSkills      string

	// Present is the word substituted for a missing end date.
	Present string
}

var labelSets = map[string]LabelSet{
	LangEnglish: {
		Summary:         "Summary",
		Experience:      "Experience",
		Education:       "Education",
		Skills:          "Skills",
		Languages:       "Languages",
		Additional:      "Additional Information",
		TechnicalSkills: "Technical Skills",
		SoftSkills:      "Soft Skills",
		Present:         "Current",
	},
	LangItalian: {
		Summary:         "Profilo",
		Experience:      "Esperienza",
		Education:       "Istruzione",
		Skills:          "Competenze",
		Languages:       "Lingue",
		Additional:      "Informazioni Aggiuntive",
		TechnicalSkills: "Competenze Tecniche",
		SoftSkills:      "Competenze Trasversali",
		Present:         "Attuale",
	},
}

// Labels returns the label set for a language code.
// Returns ErrUnsupportedLanguage for any code outside {en, it}.
func Labels(lang string) (LabelSet, error) {
	ls, ok := labelSets[lang]
	if !ok {
		return LabelSet{}, fmt.Errorf("%w: %q (supported: en, it)", ErrUnsupportedLanguage, lang)
	}
	return ls, nil
}

// ValidateLanguage checks that lang is a supported language code.
func ValidateLanguage(lang string) error {
	_, err := Labels(lang)
	return err
}

// countryNames holds the built-in country code translations used when
// assembling a JSONResume address. Unmapped codes pass through verbatim.
var countryNames = map[string]map[string]string{
	"IT": {LangEnglish: "Italy", LangItalian: "Italia"},
}

// countryName maps an ISO country code to a localized display name.
func countryName(code, lang string) string {
	if byLang, ok := countryNames[code]; ok {
		if name, ok := byLang[lang]; ok {
			return name
		}
	}
	return code
}
