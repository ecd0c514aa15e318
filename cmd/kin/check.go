package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/mgomes/kindred/kin"
)

var (
	passStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

func checkCommand(args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	noColor := fs.Bool("no-color", false, "disable styled output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	remaining := fs.Args()
	if len(remaining) == 0 {
		return errors.New("kin check: manifest path required")
	}

	manifest, err := kin.LoadManifestFile(remaining[0])
	if err != nil {
		return err
	}

	rt := kin.MustNewRuntime(kin.Config{})
	report := manifest.Check(rt)
	fmt.Print(renderReport(report, useColor(*noColor)))

	if n := report.Failures(); n > 0 {
		return fmt.Errorf("%d of %d classes failed override checks", n, len(report.Results))
	}
	return nil
}

func useColor(noColor bool) bool {
	if noColor {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func renderReport(report *kin.CheckReport, color bool) string {
	var b strings.Builder
	for _, res := range report.Results {
		var line string
		if res.Err != nil {
			line = fmt.Sprintf("✗ %s: %v", res.Class, res.Err)
			if color {
				line = failStyle.Render(line)
			}
		} else {
			line = fmt.Sprintf("✓ %s", res.Class)
			if color {
				line = passStyle.Render(line)
			}
		}
		b.WriteString(line + "\n")
	}

	summary := fmt.Sprintf("%d classes checked, %d failed", len(report.Results), report.Failures())
	if color {
		summary = summaryStyle.Render(summary)
	}
	b.WriteString(summary + "\n")
	return b.String()
}
