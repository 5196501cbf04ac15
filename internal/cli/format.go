package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/katalvlaran/calcpath/solver"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	labelColor   = color.New(color.FgWhite, color.Bold)
	valueColor   = color.New(color.FgCyan)
	dimColor     = color.New(color.FgHiBlack)
)

// PrintSuccess prints a success message with a checkmark
func PrintSuccess(w io.Writer, msg string) {
	_, _ = successColor.Fprintf(w, "✓ %s\n", msg)
}

// PrintWarning prints a warning message with a warning symbol
func PrintWarning(w io.Writer, msg string) {
	_, _ = warningColor.Fprintf(w, "⚠ %s\n", msg)
}

// PrintError prints an error message with a cross
func PrintError(w io.Writer, msg string) {
	_, _ = errorColor.Fprintf(w, "✗ %s\n", msg)
}

// PrintLabelValue prints a label-value pair with proper formatting
func PrintLabelValue(w io.Writer, label, value string) {
	_, _ = labelColor.Fprintf(w, "  %s: ", label)
	_, _ = valueColor.Fprintln(w, value)
}

// PrintDim prints secondary detail
func PrintDim(w io.Writer, msg string) {
	_, _ = dimColor.Fprintf(w, "  %s\n", msg)
}

// printSolution renders a Solution for humans.
func printSolution(w io.Writer, sol *solver.Solution) {
	p := sol.Puzzle
	title := p.Start + " → " + p.Target
	if p.Name != "" {
		title = p.Name + ": " + title
	}

	if sol.Presses == 0 {
		PrintSuccess(w, title+" (already there)")
		return
	}
	PrintSuccess(w, fmt.Sprintf("%s in %d presses", title, sol.Presses))
	PrintLabelValue(w, "keys", sol.String())
	PrintLabelValue(w, "displays", strings.Join(sol.Displays, ", "))
	if sol.Stores > 0 {
		PrintLabelValue(w, "stores", fmt.Sprint(sol.Stores))
	}
	PrintDim(w, fmt.Sprintf("%d states discovered, %d expanded in %s", sol.Discovered, sol.Expanded, sol.Elapsed))
}
