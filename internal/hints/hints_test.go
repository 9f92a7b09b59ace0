package hints

import (
	"strings"
	"testing"
)

func TestHintFormatting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		hint string
		want string
	}{
		{name: "compiler not found", hint: ForCompilerNotFound(), want: "xelatex"},
		{name: "compiler failure names log", hint: ForCompilerFailure("en"), want: "cv-en.log"},
		{name: "config parse lists keys", hint: ForConfigParse(), want: "max_highlights_per_job"},
		{name: "data not found names file", hint: ForDataNotFound("it"), want: "cv-it.json"},
		{name: "output directory", hint: ForOutputDirectory(), want: "writable"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !strings.HasPrefix(tt.hint, "\n  hint: ") {
				t.Errorf("hint %q missing standard prefix", tt.hint)
			}
			if !strings.Contains(tt.hint, tt.want) {
				t.Errorf("hint %q missing %q", tt.hint, tt.want)
			}
		})
	}
}
