// Package ui renders batch results in terminal, plain text or JSON form.
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/dp/pkg/duplicator"
	"github.com/arthur-debert/dp/pkg/errors"
	"github.com/charmbracelet/lipgloss"
)

// Renderer writes a duplicator.Report in one output format.
type Renderer struct {
	format Format
	out    io.Writer
	styles styles
}

type styles struct {
	success lipgloss.Style
	failure lipgloss.Style
	path    lipgloss.Style
	summary lipgloss.Style
}

// NewRenderer creates a renderer. FormatAuto is resolved against output if
// it is a file and falls back to terminal output otherwise.
func NewRenderer(format Format, output io.Writer) (*Renderer, error) {
	if format == FormatAuto {
		format = FormatTerminal
		if file, ok := output.(*os.File); ok {
			format = DetectFormat(file)
		}
	}

	switch format {
	case FormatTerminal, FormatText, FormatJSON:
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}

	return &Renderer{
		format: format,
		out:    output,
		styles: newStyles(lipgloss.NewRenderer(output)),
	}, nil
}

func newStyles(lr *lipgloss.Renderer) styles {
	return styles{
		success: lr.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#008700", Dark: "#5fd75f"}).Bold(true),
		failure: lr.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#af0000", Dark: "#ff5f5f"}).Bold(true),
		path:    lr.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#005f87", Dark: "#87d7ff"}),
		summary: lr.NewStyle().Bold(true).MarginTop(1),
	}
}

// Format returns the resolved output format.
func (r *Renderer) Format() Format {
	return r.format
}

// RenderReport writes one line per input followed by a summary.
func (r *Renderer) RenderReport(report duplicator.Report, dryRun bool) error {
	switch r.format {
	case FormatJSON:
		return r.renderJSON(report, dryRun)
	case FormatText:
		return r.renderText(report, dryRun)
	default:
		return r.renderTerminal(report, dryRun)
	}
}

func (r *Renderer) renderTerminal(report duplicator.Report, dryRun bool) error {
	for _, res := range report.Results {
		var line string
		switch {
		case res.Copied:
			line = fmt.Sprintf("%s %s → %s", r.styles.success.Render("✓"),
				r.styles.path.Render(res.Path), r.styles.path.Render(res.Target))
		case res.Target != "":
			line = fmt.Sprintf("%s %s copy to %s failed", r.styles.failure.Render("✗"),
				r.styles.path.Render(res.Path), res.Target)
		default:
			line = fmt.Sprintf("%s %s no unused name", r.styles.failure.Render("✗"),
				r.styles.path.Render(res.Path))
		}
		if _, err := fmt.Fprintln(r.out, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(r.out, r.styles.summary.Render(summary(report, dryRun)))
	return err
}

func (r *Renderer) renderText(report duplicator.Report, dryRun bool) error {
	for _, res := range report.Results {
		var err error
		switch {
		case res.Copied:
			_, err = fmt.Fprintf(r.out, "copied: %s -> %s\n", res.Path, res.Target)
		case res.Target != "":
			_, err = fmt.Fprintf(r.out, "failed: %s (copy to %s failed)\n", res.Path, res.Target)
		default:
			_, err = fmt.Fprintf(r.out, "failed: %s (no unused name)\n", res.Path)
		}
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(r.out, summary(report, dryRun))
	return err
}

type jsonResult struct {
	Path   string `json:"path"`
	Target string `json:"target,omitempty"`
	Copied bool   `json:"copied"`
}

type jsonReport struct {
	DryRun  bool         `json:"dry_run"`
	Copied  int          `json:"copied"`
	Failed  int          `json:"failed"`
	Results []jsonResult `json:"results"`
}

func (r *Renderer) renderJSON(report duplicator.Report, dryRun bool) error {
	out := jsonReport{
		DryRun:  dryRun,
		Copied:  report.Copied,
		Failed:  report.Failed,
		Results: make([]jsonResult, 0, len(report.Results)),
	}
	for _, res := range report.Results {
		out.Results = append(out.Results, jsonResult(res))
	}

	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func summary(report duplicator.Report, dryRun bool) string {
	s := fmt.Sprintf("copied %d, failed %d", report.Copied, report.Failed)
	if dryRun {
		s += " (dry run)"
	}
	return s
}
