package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/agbru/lintbubble/internal/orchestration"
	"github.com/agbru/lintbubble/internal/ui"
)

// FormatBubble wraps text in an ASCII speech bubble. The text is split on
// "\n"; with L the length in runes of the longest line, the result is
//
//	" " + "_"*(L+2)
//	"< " + line padded to L + " |"   (one per line)
//	" " + "-"*(L+2)
//
// each followed by a newline. Every output line is L+4 runes wide.
func FormatBubble(text string) string {
	lines := strings.Split(text, "\n")
	width := 0
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}

	var b strings.Builder
	b.WriteString(" " + strings.Repeat("_", width+2) + "\n")
	for _, line := range lines {
		pad := width - utf8.RuneCountInString(line)
		b.WriteString("< " + line + strings.Repeat(" ", pad) + " |\n")
	}
	b.WriteString(" " + strings.Repeat("-", width+2) + "\n")
	return b.String()
}

// DisplayFeedback prints every entry of feedback in insertion order: a
// "File: <path>" header, the bubble, then a blank pair of lines. The header
// is bold in the outcome's color and the bubble borders are dimmed; with the
// no-color theme the output is plain text. It must only be called once the
// animation has released the terminal.
func DisplayFeedback(feedback *orchestration.FeedbackMap, out io.Writer) {
	for path, text := range feedback.All() {
		fmt.Fprintf(out, "%s%sFile: %s%s\n", ui.ColorBold(), headerColor(text), path, ui.ColorReset())
		fmt.Fprint(out, dimBorders(FormatBubble(text)))
		fmt.Fprint(out, "\n\n")
	}
}

// dimBorders colors the top and bottom border lines of a FormatBubble result.
func dimBorders(bubble string) string {
	dim, reset := ui.ColorDim(), ui.ColorReset()
	if dim == "" {
		return bubble
	}
	lines := strings.Split(strings.TrimSuffix(bubble, "\n"), "\n")
	last := len(lines) - 1
	lines[0] = dim + lines[0] + reset
	lines[last] = dim + lines[last] + reset
	return strings.Join(lines, "\n") + "\n"
}

func headerColor(text string) string {
	switch text {
	case orchestration.AllClear:
		return ui.ColorSuccess()
	case orchestration.InvocationFailed:
		return ui.ColorError()
	default:
		return ui.ColorWarning()
	}
}
