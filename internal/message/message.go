package message

import (
	"fmt"
	"strings"
)

// Marker is the sentinel line that separates a human-written commit message
// from a previously generated section. It must appear alone on its own line.
const Marker = "---aimend-msg---"

// wrapWidth is the column generated text is wrapped to before it is spliced
// into a commit message.
const wrapWidth = 80

// Mode identifies how commit text was extracted from git and therefore
// which stripping grammar applies to it.
type Mode string

const (
	// ModeMessage is the raw message body (git log --pretty=%B).
	ModeMessage Mode = "message"
	// ModeDefault is the medium human-readable form (git log --format=medium),
	// where the message body is indented.
	ModeDefault Mode = "default"
	// ModeFull is the fuller form including the patch (git show --format=fuller).
	ModeFull Mode = "full"
)

// Strip removes a previously generated marker section from text.
//
// In ModeMessage the marker must start its own line with no indentation and
// everything from the marker to the end of the text is removed. ModeDefault
// is the same except the marker line may be indented, as git log indents the
// message body. In ModeFull the removed span ends at the next line beginning
// with "diff ", which is preserved along with everything after it; if no such
// line follows the marker the text is left alone.
//
// Text without a marker passes through unchanged. All modes trim outer
// whitespace, so Strip is idempotent and safe to call on already-stripped
// text. An unknown mode panics.
func Strip(text string, mode Mode) string {
	t := strings.TrimSpace(text)
	switch mode {
	case ModeMessage:
		if idx := markerIndex(t, false); idx >= 0 {
			t = t[:idx]
		}
	case ModeDefault:
		if idx := markerIndex(t, true); idx >= 0 {
			t = t[:idx]
		}
	case ModeFull:
		t = stripKeepDiff(t)
	default:
		panic(fmt.Sprintf("message: unknown mode %q", mode))
	}
	return strings.TrimSpace(t)
}

// markerIndex returns the byte offset of the first line consisting of the
// marker, or -1. When allowIndent is true the line may carry leading spaces
// or tabs; the returned offset still points at the start of the line,
// indentation included.
func markerIndex(text string, allowIndent bool) int {
	start := 0
	for start <= len(text) {
		line := text[start:]
		end := strings.IndexByte(line, '\n')
		if end >= 0 {
			line = line[:end]
		}
		probe := line
		if allowIndent {
			probe = strings.TrimLeft(probe, " \t")
		}
		if probe == Marker {
			return start
		}
		if end < 0 {
			break
		}
		start += end + 1
	}
	return -1
}

// stripKeepDiff removes the span from the marker line up to, but not
// including, the next line that begins with "diff ". The newline run
// immediately before the marker is consumed; the newline introducing the
// diff line is kept so the patch body survives byte for byte.
func stripKeepDiff(t string) string {
	idx := markerIndex(t, true)
	if idx < 0 {
		return t
	}
	lineEnd := strings.IndexByte(t[idx:], '\n')
	if lineEnd < 0 {
		return t
	}
	rest := t[idx+lineEnd+1:]
	diff := strings.Index(rest, "\ndiff ")
	if diff < 0 {
		return t
	}
	cut := idx
	for cut > 0 && t[cut-1] == '\n' {
		cut--
	}
	return t[:cut] + rest[diff:]
}

// Compose builds the final commit message from generated text. The text is
// wrapped line by line to the message width. When oldMsg is empty the
// wrapped text becomes the whole message; otherwise it is appended to
// oldMsg under a marker line. Callers pass the stripped form of the old
// message so appends never stack.
func Compose(generated, oldMsg string) string {
	wrapped := Wrap(generated, wrapWidth)
	if oldMsg == "" {
		return wrapped + "\n"
	}
	return oldMsg + "\n\n" + Marker + "\n\n" + wrapped + "\n"
}

// Wrap word-wraps each line of text to width columns independently. Blank
// lines survive as blank lines and no two input lines are ever joined. A
// single word longer than width stays whole on its own line.
func Wrap(text string, width int) string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		out = append(out, wrapLine(line, width)...)
	}
	return strings.Join(out, "\n")
}

func wrapLine(text string, width int) []string {
	if len(text) <= width {
		return []string{text}
	}
	var lines []string
	words := strings.Fields(text)
	var current strings.Builder
	for _, word := range words {
		if current.Len()+len(word)+1 > width && current.Len() > 0 {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
