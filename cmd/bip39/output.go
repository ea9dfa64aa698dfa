// Copyright (c) 2026 Airgap Tools
// bip39 - BIP-39 mnemonic toolkit for air-gapped machines
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/airgaptools/bip39/internal/analysis"
	"github.com/airgaptools/bip39/internal/security"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	warnStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	badStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	goodStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	subtleStyle  = lipgloss.NewStyle().Faint(true)
	verdictStyle = map[analysis.Verdict]lipgloss.Style{
		analysis.VerdictAcceptable:   goodStyle,
		analysis.VerdictSuspicious:   badStyle,
		analysis.VerdictInsufficient: warnStyle,
	}
)

// printHeader writes a section header with an underline, skipped entirely
// in quiet mode.
func printHeader(w io.Writer, quiet bool, title string) {
	if quiet {
		return
	}
	fmt.Fprintln(w, headerStyle.Render(title))
	fmt.Fprintln(w, headerStyle.Render(strings.Repeat("═", len([]rune(title)))))
}

// printField writes a "key: value" line, skipped in quiet mode.
func printField(w io.Writer, quiet bool, key string, value any) {
	if quiet {
		return
	}
	fmt.Fprintf(w, "%s %v\n", subtleStyle.Render(key+":"), value)
}

func blankLine(w io.Writer, quiet bool) {
	if !quiet {
		fmt.Fprintln(w)
	}
}

// printEntropyReport renders the entropy quality analysis.
func printEntropyReport(w io.Writer, report analysis.EntropyReport) {
	fmt.Fprintln(w)
	printHeader(w, false, "Entropy Quality")
	printField(w, false, "Sample", fmt.Sprintf("%d bytes", report.SampleBytes))
	if report.Verdict == analysis.VerdictInsufficient {
		fmt.Fprintln(w, verdictStyle[report.Verdict].Render("verdict: "+string(report.Verdict)))
		return
	}
	for _, check := range []analysis.CheckResult{report.BitBalance, report.ByteSpread, report.LongestRun, report.Patterns} {
		mark := goodStyle.Render("pass")
		if !check.Passed {
			mark = badStyle.Render("FAIL")
		}
		fmt.Fprintf(w, "  %-18s %s (%.2f)\n", check.Name, mark, check.Score)
	}
	printField(w, false, "Shannon estimate", fmt.Sprintf("%.2f bits/byte", report.ShannonBits))
	printField(w, false, "Score", fmt.Sprintf("%.2f", report.Score))
	for _, issue := range report.Issues {
		fmt.Fprintln(w, warnStyle.Render("  ! "+issue))
	}
	fmt.Fprintln(w, verdictStyle[report.Verdict].Render("verdict: "+string(report.Verdict)))
}

// printPassphraseReport renders the passphrase strength analysis.
func printPassphraseReport(w io.Writer, report analysis.PassphraseReport) {
	fmt.Fprintln(w)
	printHeader(w, false, "Passphrase Strength")
	printField(w, false, "Length", report.Length)
	printField(w, false, "Classes", fmt.Sprintf("lower %d, upper %d, digits %d, symbols %d",
		report.Lowercase, report.Uppercase, report.Digits, report.Symbols))
	printField(w, false, "Estimated entropy", fmt.Sprintf("%.1f bits", report.EntropyBits))
	for _, issue := range report.Issues {
		fmt.Fprintln(w, warnStyle.Render("  ! "+issue))
	}
	for _, s := range report.Suggestions {
		fmt.Fprintln(w, subtleStyle.Render("  - "+s))
	}
	style := badStyle
	switch report.Verdict {
	case analysis.StrengthModerate:
		style = warnStyle
	case analysis.StrengthStrong:
		style = goodStyle
	}
	fmt.Fprintln(w, style.Render("verdict: "+string(report.Verdict)))
}

// printSecurityWarnings writes the operational security recommendations to
// stderr so they never pollute piped output.
func printSecurityWarnings(w io.Writer) {
	fmt.Fprintln(w, badStyle.Render("SECURITY RECOMMENDATIONS"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, warnStyle.Render("Environment:"))
	fmt.Fprintln(w, "  - use an air-gapped computer for maximum security")
	fmt.Fprintln(w, "  - disconnect all network interfaces during operation")
	fmt.Fprintln(w, "  - disable swap and hibernation to prevent disk writes")
	fmt.Fprintln(w, warnStyle.Render("Mnemonic handling:"))
	fmt.Fprintln(w, "  - never share the phrase; store physical backups securely")
	fmt.Fprintln(w, "  - test recovery before funding any wallet")
	fmt.Fprintln(w, warnStyle.Render("Afterwards:"))
	fmt.Fprintln(w, "  - clear terminal history and reboot to clear memory")
	fmt.Fprintln(w)
}

// printAirGapReport runs the advisory air-gap check and renders it.
func printAirGapReport(w io.Writer) {
	status := security.CheckAirGap()
	printHeader(w, false, "Air-Gap Environment Check")
	printField(w, false, "Score", fmt.Sprintf("%.1f/1.0", status.Score))
	if status.IsAirGapped {
		fmt.Fprintln(w, goodStyle.Render("environment appears to be air-gapped"))
		return
	}
	fmt.Fprintln(w, warnStyle.Render("environment may not be fully air-gapped"))
	for _, warning := range status.Warnings {
		fmt.Fprintln(w, "  - "+warning)
	}
	fmt.Fprintln(w, subtleStyle.Render("advisory heuristic only, not a security guarantee"))
}
