package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestEmbeddedLoadTemplate(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name     string
		template string
		wantErr  error
	}{
		{name: "default template exists", template: "awesome-cv"},
		{name: "fallback template exists", template: FallbackTemplate},
		{name: "unknown template", template: "nonexistent", wantErr: ErrTemplateNotFound},
		{name: "empty name", template: "", wantErr: ErrInvalidAssetName},
		{name: "path separator rejected", template: "../etc/passwd", wantErr: ErrInvalidAssetName},
		{name: "traversal rejected", template: "..", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			content, err := loader.LoadTemplate(tt.template)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadTemplate(%q) error = %v, wantErr %v", tt.template, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("LoadTemplate(%q) unexpected error: %v", tt.template, err)
			}
			if !strings.Contains(content, "{{NAME}}") {
				t.Errorf("template %q missing {{NAME}} placeholder", tt.template)
			}
			if !strings.Contains(content, `\colorlet{awesome}{awesome-skyblue}`) {
				t.Errorf("template %q missing default color declaration", tt.template)
			}
		})
	}
}

func TestEmbeddedTemplatesHaveUniquePlaceholders(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	for _, name := range []string{"awesome-cv", FallbackTemplate} {
		content, err := loader.LoadTemplate(name)
		if err != nil {
			t.Fatalf("LoadTemplate(%q): %v", name, err)
		}

		// Every placeholder appears at most once; the compositor replaces
		// only the first occurrence.
		for _, ph := range []string{
			"{{NAME}}", "{{TITLE}}", "{{ADDRESS}}", "{{PHONE}}", "{{EMAIL}}",
			"{{LINKEDIN}}", "{{GITHUB}}", "{{HOMEPAGE}}",
			"{{LABEL_SUMMARY}}", "{{SUMMARY}}",
			"{{LABEL_EXPERIENCE}}", "{{EXPERIENCE}}",
			"{{LABEL_EDUCATION}}", "{{EDUCATION}}",
			"{{LABEL_SKILLS}}", "{{SKILLS}}",
		} {
			if n := strings.Count(content, ph); n > 1 {
				t.Errorf("template %q contains %s %d times, want at most 1", name, ph, n)
			}
		}
	}
}

func TestEmbeddedLoadClass(t *testing.T) {
	t.Parallel()

	content, err := NewEmbeddedLoader().LoadClass()
	if err != nil {
		t.Fatalf("LoadClass() unexpected error: %v", err)
	}

	for _, macro := range []string{`\cventrylong`, `\cventry`, `\cvskills`, "cvitems"} {
		if !strings.Contains(content, macro) {
			t.Errorf("class file missing %s", macro)
		}
	}
}

func TestPackageLevelLoaders(t *testing.T) {
	t.Parallel()

	if _, err := LoadTemplate("awesome-cv"); err != nil {
		t.Errorf("LoadTemplate() unexpected error: %v", err)
	}
	if _, err := LoadClass(); err != nil {
		t.Errorf("LoadClass() unexpected error: %v", err)
	}
}

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		assetName string
		wantErr   error
	}{
		{name: "simple name", assetName: "awesome-cv"},
		{name: "hyphenated name", assetName: "my-template"},
		{name: "empty", assetName: "", wantErr: ErrInvalidAssetName},
		{name: "forward slash", assetName: "a/b", wantErr: ErrInvalidAssetName},
		{name: "backslash", assetName: `a\b`, wantErr: ErrInvalidAssetName},
		{name: "null byte", assetName: "a\x00b", wantErr: ErrInvalidAssetName},
		{name: "dotdot", assetName: "..", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := ValidateAssetName(tt.assetName); !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAssetName(%q) error = %v, wantErr %v", tt.assetName, err, tt.wantErr)
			}
		})
	}
}
