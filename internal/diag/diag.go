// Package diag provides the diagnostic reporting channel for the IR
// core: severity levels, categories, and a reporter that collects and
// renders diagnostics for callers. Library code never prints or exits;
// it records diagnostics and returns errors, leaving escalation policy
// to the caller.
package diag

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"github.com/esd-univr/hif-core-sub003/internal/source"
)

// Level represents the severity of a diagnostic.
type Level int

const (
	LevelError Level = iota
	LevelWarning
	LevelInfo
	LevelHint
)

// String returns the level keyword.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	case LevelInfo:
		return "info"
	case LevelHint:
		return "hint"
	default:
		return "unknown"
	}
}

// Category classifies the subsystem a diagnostic originates from.
type Category int

const (
	CategoryStructure Category = iota
	CategoryResolution
	CategoryNaming
	CategoryConfiguration
)

// String returns the category keyword.
func (c Category) String() string {
	switch c {
	case CategoryStructure:
		return "structure"
	case CategoryResolution:
		return "resolution"
	case CategoryNaming:
		return "naming"
	case CategoryConfiguration:
		return "configuration"
	default:
		return "unknown"
	}
}

// Diagnostic is one reported finding.
type Diagnostic struct {
	Level    Level
	Category Category
	Message  string
	Span     source.Span
}

// String renders the diagnostic without color.
func (d Diagnostic) String() string {
	if d.Span.IsValid() {
		return fmt.Sprintf("%s: %s: [%s] %s", d.Span, d.Level, d.Category, d.Message)
	}

	return fmt.Sprintf("%s: [%s] %s", d.Level, d.Category, d.Message)
}

// Reporter collects diagnostics for one run. It is not safe for
// concurrent use.
type Reporter struct {
	diags []Diagnostic
}

// NewReporter creates an empty reporter.
func NewReporter() *Reporter {
	return &Reporter{}
}

// Report records a diagnostic.
func (r *Reporter) Report(d Diagnostic) {
	r.diags = append(r.diags, d)
}

// Errorf records an error-level diagnostic.
func (r *Reporter) Errorf(cat Category, span source.Span, format string, args ...interface{}) {
	r.Report(Diagnostic{
		Level:    LevelError,
		Category: cat,
		Message:  fmt.Sprintf(format, args...),
		Span:     span,
	})
}

// Warnf records a warning-level diagnostic.
func (r *Reporter) Warnf(cat Category, span source.Span, format string, args ...interface{}) {
	r.Report(Diagnostic{
		Level:    LevelWarning,
		Category: cat,
		Message:  fmt.Sprintf(format, args...),
		Span:     span,
	})
}

// Diagnostics returns the collected diagnostics ordered by source
// position, errors first within one position.
func (r *Reporter) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(r.diags))
	copy(out, r.diags)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Span.Start != out[j].Span.Start {
			return out[i].Span.Start.Before(out[j].Span.Start)
		}

		return out[i].Level < out[j].Level
	})

	return out
}

// HasErrors reports whether any error-level diagnostic was recorded.
func (r *Reporter) HasErrors() bool {
	for _, d := range r.diags {
		if d.Level == LevelError {
			return true
		}
	}

	return false
}

// Count returns the number of recorded diagnostics.
func (r *Reporter) Count() int { return len(r.diags) }

var levelColors = map[Level]*color.Color{
	LevelError:   color.New(color.FgRed, color.Bold),
	LevelWarning: color.New(color.FgYellow),
	LevelInfo:    color.New(color.FgCyan),
	LevelHint:    color.New(color.FgGreen),
}

// Render writes the collected diagnostics to w, one per line, with the
// level colored when colorize is set.
func (r *Reporter) Render(w io.Writer, colorize bool) {
	for _, d := range r.Diagnostics() {
		level := d.Level.String()
		if colorize {
			level = levelColors[d.Level].Sprint(level)
		}

		if d.Span.IsValid() {
			fmt.Fprintf(w, "%s: %s: [%s] %s\n", d.Span, level, d.Category, d.Message)
		} else {
			fmt.Fprintf(w, "%s: [%s] %s\n", level, d.Category, d.Message)
		}
	}
}
