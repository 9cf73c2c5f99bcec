package diag

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/esd-univr/hif-core-sub003/internal/source"
)

func at(file string, line int) source.Span {
	start := source.Position{Filename: file, Line: line, Column: 1, Offset: line * 100}
	end := source.Position{Filename: file, Line: line, Column: 5, Offset: line*100 + 4}

	return source.NewSpan(start, end)
}

func TestDiagnosticsOrderedByPosition(t *testing.T) {
	r := NewReporter()
	r.Warnf(CategoryNaming, at("a.hif", 9), "late warning")
	r.Errorf(CategoryResolution, at("a.hif", 3), "early error")
	r.Errorf(CategoryStructure, at("a.hif", 9), "late error")

	got := r.Diagnostics()
	want := []Diagnostic{
		{Level: LevelError, Category: CategoryResolution, Message: "early error", Span: at("a.hif", 3)},
		{Level: LevelError, Category: CategoryStructure, Message: "late error", Span: at("a.hif", 9)},
		{Level: LevelWarning, Category: CategoryNaming, Message: "late warning", Span: at("a.hif", 9)},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}
}

func TestHasErrors(t *testing.T) {
	r := NewReporter()
	if r.HasErrors() {
		t.Fatal("empty reporter claims errors")
	}

	r.Warnf(CategoryNaming, source.Span{}, "just a warning")
	if r.HasErrors() {
		t.Fatal("warning counted as error")
	}

	r.Errorf(CategoryStructure, source.Span{}, "broken")
	if !r.HasErrors() {
		t.Fatal("error not reported")
	}

	if r.Count() != 2 {
		t.Errorf("Count = %d, want 2", r.Count())
	}
}

func TestRender(t *testing.T) {
	r := NewReporter()
	r.Errorf(CategoryResolution, at("top.hif", 3), "cannot resolve %q", "clk")
	r.Warnf(CategoryNaming, source.Span{}, "reserved word")

	var sb strings.Builder
	r.Render(&sb, false)

	out := sb.String()
	if !strings.Contains(out, `top.hif:3:1-5: error: [resolution] cannot resolve "clk"`) {
		t.Errorf("rendered output missing the located error:\n%s", out)
	}

	if !strings.Contains(out, "warning: [naming] reserved word") {
		t.Errorf("rendered output missing the unlocated warning:\n%s", out)
	}
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Level: LevelHint, Category: CategoryStructure, Message: "consider a list"}
	if got := d.String(); got != "hint: [structure] consider a list" {
		t.Errorf("String() = %q", got)
	}
}
