package render

import "testing"

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain text", "plain text"},
		{`<b>&"'`, "&lt;b&gt;&amp;&quot;&#39;"},
		{"✅ Budget saved", "✅ Budget saved"},
	}
	for _, tt := range tests {
		if got := escapeHTML(tt.in); got != tt.want {
			t.Errorf("escapeHTML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscapeAttrEncodesWhitespace(t *testing.T) {
	got := escapeAttr("a\nb\tc\rd")
	want := "a&#10;b&#9;c&#13;d"
	if got != want {
		t.Errorf("escapeAttr = %q, want %q", got, want)
	}

	// Unchanged input must come back as-is.
	if got := escapeAttr("top-right"); got != "top-right" {
		t.Errorf("escapeAttr passthrough = %q", got)
	}
}
