package hints_test

import (
	"strings"
	"testing"

	"github.com/docpress/docpress/internal/hints"
)

func TestHintFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		hint string
		want string
	}{
		{name: "pandoc", hint: hints.ForPandocNotFound(), want: "pandoc"},
		{name: "tex", hint: hints.ForTeXNotFound(), want: "xelatex"},
		{name: "manifest", hint: hints.ForManifestNotFound("docpress.yaml"), want: "docpress.yaml"},
		{name: "stage", hint: hints.ForStageFailure("suppresed-warnings.log"), want: "suppresed-warnings.log"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !strings.HasPrefix(tt.hint, "\n  hint: ") {
				t.Errorf("hint %q not in standard format", tt.hint)
			}
			if !strings.Contains(tt.hint, tt.want) {
				t.Errorf("hint %q missing %q", tt.hint, tt.want)
			}
		})
	}
}
