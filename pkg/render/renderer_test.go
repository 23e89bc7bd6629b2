package render_test

import (
	"strings"
	"testing"

	"github.com/budgeteer-dev/notifications/pkg/render"
	"github.com/budgeteer-dev/notifications/pkg/vdom"
)

func renderOrFail(t *testing.T, node *vdom.VNode) string {
	t.Helper()
	html, err := render.ToString(node)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return html
}

func TestRenderElement(t *testing.T) {
	html := renderOrFail(t, vdom.Div(
		vdom.Class("toast"),
		vdom.Text("Budget saved"),
	))

	want := `<div class="toast">Budget saved</div>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderEscapesText(t *testing.T) {
	html := renderOrFail(t, vdom.Div(vdom.Text(`<script>alert("x")</script>`)))

	if strings.Contains(html, "<script>") {
		t.Errorf("expected escaped output, got %q", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Errorf("expected entity-escaped text, got %q", html)
	}
}

func TestRenderEscapesAttributes(t *testing.T) {
	html := renderOrFail(t, vdom.Div(vdom.TitleAttr(`a"b`)))

	if !strings.Contains(html, `title="a&quot;b"`) {
		t.Errorf("expected escaped attribute, got %q", html)
	}
}

func TestRenderAttributesSorted(t *testing.T) {
	html := renderOrFail(t, vdom.Div(vdom.ID("x"), vdom.Class("y")))

	want := `<div class="y" id="x"></div>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderVoidElement(t *testing.T) {
	html := renderOrFail(t, vdom.Meta(vdom.Charset("utf-8")))

	want := `<meta charset="utf-8">`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderBooleanAttr(t *testing.T) {
	html := renderOrFail(t, vdom.Input(vdom.Attr{Key: "disabled", Value: true}))
	if !strings.Contains(html, " disabled") {
		t.Errorf("expected bare boolean attribute, got %q", html)
	}

	html = renderOrFail(t, vdom.Input(vdom.Attr{Key: "disabled", Value: false}))
	if strings.Contains(html, "disabled") {
		t.Errorf("expected false boolean attribute omitted, got %q", html)
	}
}

func TestRenderSkipsEventHandlers(t *testing.T) {
	html := renderOrFail(t, vdom.Button(vdom.On("click", func() {})))

	if strings.Contains(html, "onclick") {
		t.Errorf("expected handler not serialized, got %q", html)
	}
}

func TestRenderFragment(t *testing.T) {
	html := renderOrFail(t, vdom.Fragment(vdom.Span("a"), vdom.Span("b")))

	want := `<span>a</span><span>b</span>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderRaw(t *testing.T) {
	html := renderOrFail(t, vdom.Div(vdom.Raw("<b>raw</b>")))

	if !strings.Contains(html, "<b>raw</b>") {
		t.Errorf("expected raw html preserved, got %q", html)
	}
}

func TestRenderComponent(t *testing.T) {
	comp := vdom.Func(func() *vdom.VNode {
		return vdom.Span(vdom.Text("rendered"))
	})
	html := renderOrFail(t, vdom.Div(comp))

	if !strings.Contains(html, "<span>rendered</span>") {
		t.Errorf("expected component output, got %q", html)
	}
}

func TestRenderNil(t *testing.T) {
	html, err := render.ToString(nil)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if html != "" {
		t.Errorf("expected empty output for nil node, got %q", html)
	}
}

func TestRenderPretty(t *testing.T) {
	r := render.New(render.Config{Pretty: true})
	html, err := r.RenderToString(vdom.Div(vdom.P(vdom.Text("x"))))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(html, "\n") {
		t.Errorf("expected newlines in pretty output, got %q", html)
	}
}
