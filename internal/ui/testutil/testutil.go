// Package testutil provides helpers for testing rendered views.
package testutil

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

var spaces = regexp.MustCompile(`\s+`)

// StripANSI removes escape sequences so rendered output can be compared
// as plain text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// NormalizeWhitespace collapses whitespace runs into single spaces and trims.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(spaces.ReplaceAllString(s, " "))
}

// MeasureWidth returns the display width of the widest line.
func MeasureWidth(s string) int {
	widest := 0
	for line := range strings.SplitSeq(s, "\n") {
		widest = max(widest, ansi.StringWidth(line))
	}
	return widest
}

// FindLine returns the first plain-text line containing substr, or "".
func FindLine(output, substr string) string {
	for line := range strings.SplitSeq(StripANSI(output), "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// ContainsLine reports whether any plain-text line contains substr.
func ContainsLine(output, substr string) bool {
	return FindLine(output, substr) != ""
}

// SplitLines splits output into lines, dropping trailing blank lines.
func SplitLines(output string) []string {
	lines := strings.Split(output, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
