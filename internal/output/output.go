// Package output renders puzzle reports for the terminal or for machines.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/danmuck/advent2024/internal/puzzle"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DefaultYear labels the text banner.
const DefaultYear = 2024

// ParseFormat accepts a format name case-insensitively.
func ParseFormat(raw string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format %q (supported: text, json, yaml)", raw)
	}
}

// PartView is the wire shape of a PartResult.
type PartView struct {
	Value    int    `json:"value" yaml:"value"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
	Duration string `json:"duration" yaml:"duration"`
}

// ReportView is the wire shape of a puzzle.Report.
type ReportView struct {
	ID      string   `json:"id" yaml:"id"`
	Day     int      `json:"day" yaml:"day"`
	Name    string   `json:"name" yaml:"name"`
	PartOne PartView `json:"part_one" yaml:"part_one"`
	PartTwo PartView `json:"part_two" yaml:"part_two"`
}

func NewPartView(p puzzle.PartResult) PartView {
	v := PartView{Value: p.Value, Duration: p.Duration.String()}
	if p.Err != nil {
		v.Error = p.Err.Error()
	}
	return v
}

func NewReportView(r puzzle.Report) ReportView {
	return ReportView{
		ID:      r.ID,
		Day:     r.Day,
		Name:    r.Name,
		PartOne: NewPartView(r.PartOne),
		PartTwo: NewPartView(r.PartTwo),
	}
}

// Renderer writes reports in a single format.
type Renderer struct {
	Format Format
	Color  bool
	Year   int
}

func (r Renderer) Render(w io.Writer, reports []puzzle.Report) error {
	views := make([]ReportView, 0, len(reports))
	for _, rep := range reports {
		views = append(views, NewReportView(rep))
	}

	switch r.Format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(views); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		return r.renderText(w, reports)
	default:
		return fmt.Errorf("unknown output format %q", r.Format)
	}
}

func (r Renderer) renderText(w io.Writer, reports []puzzle.Report) error {
	year := r.Year
	if year == 0 {
		year = DefaultYear
	}
	banner := r.paint(color.FgCyan, color.Bold)
	label := r.paint(color.Bold)
	ok := r.paint(color.FgGreen)
	bad := r.paint(color.FgRed)

	for i, rep := range reports {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := banner.Fprintf(w, "Advent of code %d day %d\n", year, rep.Day); err != nil {
			return err
		}
		for n, part := range []puzzle.PartResult{rep.PartOne, rep.PartTwo} {
			if _, err := label.Fprintf(w, "Part %d: ", n+1); err != nil {
				return err
			}
			var err error
			if part.Err != nil {
				_, err = bad.Fprintf(w, "Failed to solve part %d: %v\n", n+1, part.Err)
			} else {
				_, err = ok.Fprintf(w, "%d\n", part.Value)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (r Renderer) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if r.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}
