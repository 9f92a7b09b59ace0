package resumegen

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/stormino/my-resume-generator/internal/dateutil"
)

// jsonResumeDoc mirrors the JSONResume standard schema
// (https://jsonresume.org/schema). Only the fields the pipeline consumes
// are declared.
type jsonResumeDoc struct {
	Basics struct {
		Name     string `json:"name"`
		Label    string `json:"label"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		URL      string `json:"url"`
		Summary  string `json:"summary"`
		Location struct {
			Address     string `json:"address"`
			PostalCode  string `json:"postalCode"`
			City        string `json:"city"`
			CountryCode string `json:"countryCode"`
		} `json:"location"`
		Profiles []struct {
			Network  string `json:"network"`
			Username string `json:"username"`
			URL      string `json:"url"`
		} `json:"profiles"`
	} `json:"basics"`
	Work []struct {
		Name       string   `json:"name"`
		Position   string   `json:"position"`
		Location   string   `json:"location"`
		StartDate  string   `json:"startDate"`
		EndDate    string   `json:"endDate"`
		Summary    string   `json:"summary"`
		Highlights []string `json:"highlights"`
		Keywords   []string `json:"keywords"`
	} `json:"work"`
	Education []struct {
		Institution string `json:"institution"`
		Area        string `json:"area"`
		StudyType   string `json:"studyType"`
		Location    string `json:"location"`
		StartDate   string `json:"startDate"`
		EndDate     string `json:"endDate"`
	} `json:"education"`
	Skills []struct {
		Name     string   `json:"name"`
		Keywords []string `json:"keywords"`
	} `json:"skills"`
}

// legacyDoc mirrors this project's original flat schema.
type legacyDoc struct {
	Personal struct {
		Name     string `json:"name"`
		Title    string `json:"title"`
		Address  string `json:"address"`
		Phone    string `json:"phone"`
		Email    string `json:"email"`
		LinkedIn string `json:"linkedin"`
		GitHub   string `json:"github"`
		Homepage string `json:"homepage"`
	} `json:"personal"`
	Summary    string `json:"summary"`
	Experience []struct {
		Title        string   `json:"title"`
		Company      string   `json:"company"`
		Location     string   `json:"location"`
		Period       string   `json:"period"`
		Description  string   `json:"description"`
		Highlights   []string `json:"highlights"`
		Technologies string   `json:"technologies"`
	} `json:"experience"`
	Education []struct {
		Degree      string `json:"degree"`
		Institution string `json:"institution"`
		Location    string `json:"location"`
		Period      string `json:"period"`
	} `json:"education"`
	Skills struct {
		Technical []string `json:"technical"`
		Soft      []string `json:"soft"`
	} `json:"skills"`
}

// DecodeResume parses raw JSON résumé data into a normalized Resume.
// The input shape is detected once, up front: a top-level "basics" object
// selects the JSONResume schema, a top-level "personal" object selects the
// legacy flat schema. The language drives locale-specific normalization
// (date formatting, country names, legacy skill group names).
//
// Returns ErrDataMalformed for invalid JSON, ErrSchemaViolation when
// neither schema matches, ErrUnsupportedLanguage for an unknown language.
func DecodeResume(data []byte, lang string) (*Resume, error) {
	labels, err := Labels(lang)
	if err != nil {
		return nil, err
	}

	if !gjson.ValidBytes(data) {
		return nil, ErrDataMalformed
	}

	switch {
	case gjson.GetBytes(data, "basics").IsObject():
		return decodeJSONResume(data, lang, labels)
	case gjson.GetBytes(data, "personal").IsObject():
		return decodeLegacy(data, labels)
	default:
		return nil, fmt.Errorf("%w: no top-level \"basics\" or \"personal\" object", ErrSchemaViolation)
	}
}

func decodeJSONResume(data []byte, lang string, labels LabelSet) (*Resume, error) {
	var doc jsonResumeDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataMalformed, err)
	}

	r := &Resume{
		Name:     doc.Basics.Name,
		Title:    doc.Basics.Label,
		Address:  assembleAddress(doc, lang),
		Phone:    doc.Basics.Phone,
		Email:    doc.Basics.Email,
		LinkedIn: profileUsername(doc, "linkedin"),
		GitHub:   profileUsername(doc, "github"),
		Homepage: doc.Basics.URL,
		Summary:  doc.Basics.Summary,
	}

	for _, w := range doc.Work {
		r.Experience = append(r.Experience, WorkEntry{
			Title:        w.Position,
			Company:      w.Name,
			Location:     w.Location,
			Period:       dateutil.Range(w.StartDate, w.EndDate, labels.Present),
			Summary:      w.Summary,
			Highlights:   w.Highlights,
			Technologies: w.Keywords,
		})
	}

	for _, e := range doc.Education {
		degree := e.StudyType
		if e.Area != "" {
			degree += " in " + e.Area
		}
		r.Education = append(r.Education, EducationEntry{
			Degree:      degree,
			Institution: e.Institution,
			Location:    e.Location,
			Period:      dateutil.Range(e.StartDate, e.EndDate, labels.Present),
		})
	}

	for _, s := range doc.Skills {
		r.Skills = append(r.Skills, SkillGroup{Name: s.Name, Keywords: s.Keywords})
	}

	return r, nil
}

func decodeLegacy(data []byte, labels LabelSet) (*Resume, error) {
	var doc legacyDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataMalformed, err)
	}

	r := &Resume{
		Name:     doc.Personal.Name,
		Title:    doc.Personal.Title,
		Address:  doc.Personal.Address,
		Phone:    doc.Personal.Phone,
		Email:    doc.Personal.Email,
		LinkedIn: doc.Personal.LinkedIn, // full URL in the legacy schema
		GitHub:   lastPathSegment(doc.Personal.GitHub),
		Homepage: doc.Personal.Homepage,
		Summary:  doc.Summary,
	}

	for _, w := range doc.Experience {
		r.Experience = append(r.Experience, WorkEntry{
			Title:        w.Title,
			Company:      w.Company,
			Location:     w.Location,
			Period:       w.Period, // preformatted, passed through
			Summary:      w.Description,
			Highlights:   w.Highlights,
			Technologies: splitTechnologies(w.Technologies),
		})
	}

	for _, e := range doc.Education {
		r.Education = append(r.Education, EducationEntry{
			Degree:      e.Degree,
			Institution: e.Institution,
			Location:    e.Location,
			Period:      e.Period,
		})
	}

	// The legacy schema has two fixed skill categories with localized names.
	if len(doc.Skills.Technical) > 0 {
		r.Skills = append(r.Skills, SkillGroup{Name: labels.TechnicalSkills, Keywords: doc.Skills.Technical})
	}
	if len(doc.Skills.Soft) > 0 {
		r.Skills = append(r.Skills, SkillGroup{Name: labels.SoftSkills, Keywords: doc.Skills.Soft})
	}

	return r, nil
}

// assembleAddress joins street, postal code, city and localized country
// name with ", ", skipping empty components.
func assembleAddress(doc jsonResumeDoc, lang string) string {
	loc := doc.Basics.Location

	var parts []string
	for _, p := range []string{loc.Address, loc.PostalCode, loc.City} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if loc.CountryCode != "" {
		parts = append(parts, countryName(loc.CountryCode, lang))
	}
	return strings.Join(parts, ", ")
}

// profileUsername returns the username of the first profile whose network
// matches case-insensitively, or "" if none does.
func profileUsername(doc jsonResumeDoc, network string) string {
	for _, p := range doc.Basics.Profiles {
		if strings.EqualFold(p.Network, network) {
			return p.Username
		}
	}
	return ""
}

// lastPathSegment extracts the trailing "/"-separated segment of a URL,
// used to turn a legacy GitHub URL into a handle.
func lastPathSegment(url string) string {
	if url == "" {
		return ""
	}
	segments := strings.Split(strings.TrimRight(url, "/"), "/")
	return segments[len(segments)-1]
}

// splitTechnologies splits the legacy comma-separated technologies string
// into individual keywords.
func splitTechnologies(s string) []string {
	if s == "" {
		return nil
	}
	var keywords []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			keywords = append(keywords, part)
		}
	}
	return keywords
}
