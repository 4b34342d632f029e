package files

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/MrSnakeDoc/tailwhip/internal/logger"
)

// contextLines is how many unchanged lines surround each change.
const contextLines = 1

// Diff renders a coloured line diff between old and new for path. It returns
// an empty string when nothing changed.
func Diff(path, old, new string) string {
	if old == new {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(old, new)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	p := logger.Printer()
	var sb strings.Builder
	sb.WriteString(p.Bold("--- %s", path) + "\n")
	sb.WriteString(p.Bold("+++ %s", path) + "\n")

	for i, d := range diffs {
		chunk := splitLines(d.Text)

		switch d.Type {
		case diffmatchpatch.DiffDelete:
			for _, l := range chunk {
				sb.WriteString(p.Removed("-%s", l) + "\n")
			}
		case diffmatchpatch.DiffInsert:
			for _, l := range chunk {
				sb.WriteString(p.Added("+%s", l) + "\n")
			}
		case diffmatchpatch.DiffEqual:
			for _, l := range contextOf(chunk, i > 0, i < len(diffs)-1) {
				sb.WriteString(l + "\n")
			}
		}
	}

	return sb.String()
}

// contextOf trims an unchanged chunk down to the lines next to a change.
func contextOf(chunk []string, afterChange, beforeChange bool) []string {
	var head, tail []string
	if afterChange {
		head = chunk[:min(contextLines, len(chunk))]
	}
	if beforeChange {
		tail = chunk[max(len(chunk)-contextLines, 0):]
	}

	if afterChange && beforeChange && len(chunk) <= 2*contextLines {
		return prefixed(chunk)
	}

	out := prefixed(head)
	if len(head)+len(tail) < len(chunk) {
		out = append(out, logger.Printer().Dim("@@"))
	}
	return append(out, prefixed(tail)...)
}

func prefixed(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = " " + l
	}
	return out
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
