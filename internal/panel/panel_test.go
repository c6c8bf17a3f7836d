package panel

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func newTestPanel(t *testing.T) *Panel {
	t.Helper()
	content, err := NewContent("Digital Allies V2", "Go + *chi* + WebSockets")
	if err != nil {
		t.Fatalf("NewContent: %v", err)
	}
	return New(content)
}

func renderString(t *testing.T, p *Panel, opts RenderOptions) string {
	t.Helper()
	var buf bytes.Buffer
	if err := p.Render(&buf, opts); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return buf.String()
}

func TestInitialLabel(t *testing.T) {
	p := newTestPanel(t)
	if p.Count() != 0 {
		t.Errorf("initial count = %d, want 0", p.Count())
	}
	if got := p.Label(); got != "Count is 0" {
		t.Errorf("initial label = %q, want %q", got, "Count is 0")
	}
	if out := renderString(t, p, RenderOptions{}); !strings.Contains(out, ">Count is 0</button>") {
		t.Error("initial render missing \"Count is 0\" button")
	}
}

func TestLabelAfterNActivations(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7, 100, 1000} {
		p := newTestPanel(t)
		for i := 0; i < n; i++ {
			p.Activate()
		}
		want := "Count is " + Counter(n).String()
		if got := p.Label(); got != want {
			t.Errorf("after %d activations label = %q, want %q", n, got, want)
		}
	}
}

func TestActivateIsMonotonic(t *testing.T) {
	p := newTestPanel(t)
	for i := 0; i < 50; i++ {
		before := p.Count()
		after := p.Activate()
		if after != before+1 {
			t.Fatalf("activation %d: %d -> %d, want +1", i, before, after)
		}
		if p.Count() != after {
			t.Fatalf("Count() = %d, Activate returned %d", p.Count(), after)
		}
	}
}

func TestFeaturesAreStatic(t *testing.T) {
	want := []string{"Care", "Community", "Security"}
	p := newTestPanel(t)

	check := func(stage string) {
		t.Helper()
		got := p.Features()
		if len(got) != len(want) {
			t.Fatalf("%s: %d features, want %d", stage, len(got), len(want))
		}
		for i, f := range got {
			if f.Label != want[i] {
				t.Errorf("%s: feature[%d] = %q, want %q", stage, i, f.Label, want[i])
			}
			if f.Icon == "" {
				t.Errorf("%s: feature %q has no icon", stage, f.Label)
			}
		}
	}

	check("initial")
	p.Activate()
	p.Activate()
	check("after activations")
}

func TestFeaturesReturnsCopy(t *testing.T) {
	got := Features()
	got[0].Label = "Mutated"
	if Features()[0].Label != "Care" {
		t.Error("mutating the returned slice changed the panel's tiles")
	}
}

func TestRenderedFeatureOrder(t *testing.T) {
	out := renderString(t, newTestPanel(t), RenderOptions{})
	care := strings.Index(out, `data-feature="Care"`)
	community := strings.Index(out, `data-feature="Community"`)
	security := strings.Index(out, `data-feature="Security"`)
	if care < 0 || community < 0 || security < 0 {
		t.Fatalf("rendered output missing tiles: %d %d %d", care, community, security)
	}
	if !(care < community && community < security) {
		t.Errorf("tiles out of order: Care@%d Community@%d Security@%d", care, community, security)
	}
}

func TestRenderDoesNotChangeCounter(t *testing.T) {
	p := newTestPanel(t)
	p.Activate()

	first := renderString(t, p, RenderOptions{})
	second := renderString(t, p, RenderOptions{})
	var buf bytes.Buffer
	if err := p.RenderButton(&buf); err != nil {
		t.Fatalf("RenderButton: %v", err)
	}

	if p.Count() != 1 {
		t.Errorf("count after re-render = %d, want 1", p.Count())
	}
	if first != second {
		t.Error("re-rendering without activation produced different output")
	}
}

func TestScenario(t *testing.T) {
	p := newTestPanel(t)
	if p.Label() != "Count is 0" {
		t.Fatalf("start: %q", p.Label())
	}
	for i := 0; i < 3; i++ {
		p.Activate()
	}
	if p.Label() != "Count is 3" {
		t.Fatalf("after 3 clicks: %q", p.Label())
	}
	p.Activate()
	if p.Label() != "Count is 4" {
		t.Fatalf("after 4 clicks: %q", p.Label())
	}
}

func TestCounterSaturates(t *testing.T) {
	c := Counter(math.MaxUint64)
	if got := c.Increment(); got != c {
		t.Errorf("Increment at max = %d, want %d", got, c)
	}
	if got := Counter(41).Increment(); got != 42 {
		t.Errorf("Increment(41) = %d, want 42", got)
	}
	if got := c.String(); got != "18446744073709551615" {
		t.Errorf("String() = %q", got)
	}
}

func TestRenderButton(t *testing.T) {
	p := newTestPanel(t)
	p.Activate()
	p.Activate()

	var buf bytes.Buffer
	if err := p.RenderButton(&buf); err != nil {
		t.Fatalf("RenderButton: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "<button") || !strings.HasSuffix(out, "</button>") {
		t.Errorf("RenderButton should emit only the button, got %q", out)
	}
	if !strings.Contains(out, ">Count is 2<") {
		t.Errorf("button label missing: %q", out)
	}
	if !strings.Contains(out, `data-count="2"`) {
		t.Errorf("button data-count missing: %q", out)
	}
}

func TestRenderAssetReferences(t *testing.T) {
	tests := []struct {
		base      string
		wantCSS   string
		wantJS    string
		forbidden string
	}{
		{"./", `href="./assets/style.css"`, `src="./assets/panel.js"`, `href="/assets/`},
		{"/", `href="/assets/style.css"`, `src="/assets/panel.js"`, `href="./assets/`},
		{"/allies/", `href="/allies/assets/style.css"`, `src="/allies/assets/panel.js"`, `href="./assets/`},
	}

	for _, tt := range tests {
		out := renderString(t, newTestPanel(t), RenderOptions{BasePath: tt.base})
		if !strings.Contains(out, tt.wantCSS) {
			t.Errorf("base %q: missing %s", tt.base, tt.wantCSS)
		}
		if !strings.Contains(out, tt.wantJS) {
			t.Errorf("base %q: missing %s", tt.base, tt.wantJS)
		}
		if strings.Contains(out, tt.forbidden) {
			t.Errorf("base %q: unexpected %s", tt.base, tt.forbidden)
		}
	}
}

func TestRenderLiveAttribute(t *testing.T) {
	p := newTestPanel(t)

	static := renderString(t, p, RenderOptions{})
	if strings.Contains(static, "data-live") {
		t.Error("static render should not carry data-live")
	}

	live := renderString(t, p, RenderOptions{LiveURL: "ws"})
	if !strings.Contains(live, `data-live="ws"`) {
		t.Error("live render missing data-live attribute")
	}
}

func TestNewContentMarkdown(t *testing.T) {
	content, err := NewContent("T", "Go + *chi*")
	if err != nil {
		t.Fatalf("NewContent: %v", err)
	}
	if !strings.Contains(string(content.Description), "<em>chi</em>") {
		t.Errorf("description not rendered as markdown: %q", content.Description)
	}
}

func TestNewContentEscapesRawHTML(t *testing.T) {
	content, err := NewContent("T", `hello <script>alert(1)</script>`)
	if err != nil {
		t.Fatalf("NewContent: %v", err)
	}
	if strings.Contains(string(content.Description), "<script>") {
		t.Errorf("raw HTML passed through: %q", content.Description)
	}
}

func TestTitleEscaped(t *testing.T) {
	p := New(Content{Title: "<b>Allies</b>"})
	out := renderString(t, p, RenderOptions{})
	if strings.Contains(out, "<b>Allies</b>") {
		t.Error("title was not HTML-escaped")
	}
}
