package check

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/slekup/blue/internal/errors"
)

// Format specifies the output format for reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
	// FormatYAML produces machine-readable YAML output.
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat converts a --format value to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "":
		return FormatText, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q (want text, json or yaml)", s)
	}
}

// Reporter formats and writes check reports.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// Report writes report to the output.
func (r *Reporter) Report(report *Report) error {
	if report == nil {
		return nil
	}

	switch r.format {
	case FormatJSON:
		return r.reportJSON(report)
	case FormatYAML:
		return r.reportYAML(report)
	default:
		return r.reportText(report)
	}
}

func (r *Reporter) reportJSON(report *Report) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(report), "encoding JSON report")
}

func (r *Reporter) reportYAML(report *Report) error {
	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return errors.Wrap(err, "encoding YAML report")
	}
	return errors.Wrap(enc.Close(), "encoding YAML report")
}

func (r *Reporter) reportText(report *Report) error {
	if report.Workspace != "" {
		fmt.Fprintf(r.out, "Workspace: %s\n\n", color.New(color.Bold).Sprint(report.Workspace))
	}

	for _, result := range report.Results {
		c := statusColor(result.Status)
		fmt.Fprintf(r.out, "%s [%s] %s: %s\n",
			c.Sprint(statusIcon(result.Status)), result.Category, result.Name, result.Message)

		if issues, ok := result.Details["issues"].([]string); ok {
			for _, issue := range issues {
				fmt.Fprintf(r.out, "  • %s\n", issue)
			}
		}
		if result.FixHint != "" && (result.Status == SeverityError || result.Status == SeverityWarning) {
			fmt.Fprintf(r.out, "  %s %s\n", color.New(color.FgHiBlack).Sprint("hint:"), result.FixHint)
		}
	}

	if len(report.Results) > 0 {
		fmt.Fprintln(r.out)
	}

	s := report.Summary
	fmt.Fprintf(r.out, "Summary: %d passed, %d info, %d warnings, %d errors\n",
		s.Passed, s.Info, s.Warnings, s.Errors)

	switch {
	case report.HasErrors():
		fmt.Fprintln(r.out, color.RedString("✗ Requirements not met"))
	default:
		fmt.Fprintln(r.out, color.GreenString("✓ All requirements met"))
	}
	return nil
}

func statusIcon(s Severity) string {
	switch s {
	case SeverityPass:
		return "✓"
	case SeverityInfo:
		return "ℹ"
	case SeverityWarning:
		return "⚠"
	case SeverityError:
		return "✗"
	default:
		return "?"
	}
}

func statusColor(s Severity) *color.Color {
	switch s {
	case SeverityPass:
		return color.New(color.FgGreen)
	case SeverityWarning:
		return color.New(color.FgYellow)
	case SeverityError:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgCyan)
	}
}
