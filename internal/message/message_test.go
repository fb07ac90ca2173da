package message

import (
	"strings"
	"testing"
)

func TestStrip_MessageMode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "marker section removed",
			input: "Fix bug\n\n---aimend-msg---\n\nImproved text\n",
			want:  "Fix bug",
		},
		{
			name:  "no marker",
			input: "Fix bug\n",
			want:  "Fix bug",
		},
		{
			name:  "marker on first line removes everything",
			input: "---aimend-msg---\n\nGenerated\n",
			want:  "",
		},
		{
			name:  "indented marker is not a marker in message mode",
			input: "Fix bug\n\n  ---aimend-msg---\n\nGenerated",
			want:  "Fix bug\n\n  ---aimend-msg---\n\nGenerated",
		},
		{
			name:  "marker as final line without trailing newline",
			input: "Fix bug\n\n---aimend-msg---",
			want:  "Fix bug",
		},
		{
			name:  "content before marker is kept",
			input: "subject\n\nbody line one\nbody line two\n\n---aimend-msg---\n\ngen\n",
			want:  "subject\n\nbody line one\nbody line two",
		},
		{
			name:  "marker text inside a line is ignored",
			input: "prefix ---aimend-msg--- suffix\n",
			want:  "prefix ---aimend-msg--- suffix",
		},
		{
			name:  "outer whitespace trimmed",
			input: "  Fix bug  \n\n",
			want:  "Fix bug",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Strip(tt.input, ModeMessage)
			if got != tt.want {
				t.Errorf("Strip(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStrip_DefaultMode(t *testing.T) {
	header := "commit abc123\n" +
		"Author: Dev <dev@example.com>\n" +
		"Date:   Mon Aug 24 10:00:00 2026\n" +
		"\n" +
		"    Fix bug"

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "indented marker removed",
			input: header + "\n\n    ---aimend-msg---\n\n    Generated text\n",
			want:  header,
		},
		{
			name:  "unindented marker removed",
			input: header + "\n\n---aimend-msg---\ngen\n",
			want:  header,
		},
		{
			name:  "no marker",
			input: header + "\n",
			want:  header,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Strip(tt.input, ModeDefault)
			if got != tt.want {
				t.Errorf("Strip() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStrip_FullMode(t *testing.T) {
	header := "commit abc123\n" +
		"Author:     Dev <dev@example.com>\n" +
		"AuthorDate: Mon Aug 24 10:00:00 2026\n" +
		"Commit:     Dev <dev@example.com>\n" +
		"CommitDate: Mon Aug 24 10:00:00 2026\n" +
		"\n" +
		"    Fix bug"
	patch := "diff --git a/main.go b/main.go\n" +
		"index 1234567..89abcde 100644\n" +
		"--- a/main.go\n" +
		"+++ b/main.go\n" +
		"@@ -1 +1 @@\n" +
		"-old\n" +
		"+new"

	input := header + "\n\n    ---aimend-msg---\n\n    Generated text\n\n" + patch + "\n"
	want := header + "\n" + patch

	got := Strip(input, ModeFull)
	if got != want {
		t.Errorf("Strip() = %q, want %q", got, want)
	}
	if !strings.HasSuffix(got, patch) {
		t.Error("patch body did not survive byte for byte")
	}
}

func TestStrip_FullModeNoDiff(t *testing.T) {
	// Without a later "diff " line the marker section stays put.
	input := "subject\n\n    ---aimend-msg---\n\n    Generated\n"
	want := "subject\n\n    ---aimend-msg---\n\n    Generated"

	got := Strip(input, ModeFull)
	if got != want {
		t.Errorf("Strip() = %q, want %q", got, want)
	}
}

func TestStrip_FullModeDiffDirectlyAfterMarker(t *testing.T) {
	// The diff line must start on a line of its own after the marker line's
	// newline; a marker immediately followed by the diff is left alone.
	input := "subject\n\n---aimend-msg---\ndiff --git a/f b/f\n-x"

	got := Strip(input, ModeFull)
	if got != input {
		t.Errorf("Strip() = %q, want input unchanged", got)
	}
}

func TestStrip_Idempotent(t *testing.T) {
	fixtures := []struct {
		name  string
		input string
		mode  Mode
	}{
		{"message with marker", "Fix bug\n\n---aimend-msg---\n\ngen\n", ModeMessage},
		{"message without marker", "Fix bug\n", ModeMessage},
		{"default with marker", "commit abc\n\n    subject\n\n    ---aimend-msg---\n\n    gen\n", ModeDefault},
		{"full with marker and diff", "commit abc\n\n    subject\n\n    ---aimend-msg---\n\n    gen\n\ndiff --git a/f b/f\n+x\n", ModeFull},
		{"full without diff", "commit abc\n\n    subject\n\n    ---aimend-msg---\n\n    gen\n", ModeFull},
	}

	for _, tt := range fixtures {
		t.Run(tt.name, func(t *testing.T) {
			once := Strip(tt.input, tt.mode)
			twice := Strip(once, tt.mode)
			if once != twice {
				t.Errorf("Strip not idempotent:\n  once:  %q\n  twice: %q", once, twice)
			}
		})
	}
}

func TestStrip_UnknownMode(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown mode")
		}
	}()
	Strip("text", Mode("bogus"))
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{
			name:  "short line unchanged",
			input: "short line",
			width: 80,
			want:  "short line",
		},
		{
			name:  "blank lines survive",
			input: "para one\n\npara two",
			width: 80,
			want:  "para one\n\npara two",
		},
		{
			name:  "long line wraps at word boundary",
			input: "aaaa bbbb cccc",
			width: 9,
			want:  "aaaa bbbb\ncccc",
		},
		{
			name:  "word longer than width stays whole",
			input: "aaaaaaaaaaaa bb",
			width: 5,
			want:  "aaaaaaaaaaaa\nbb",
		},
		{
			name:  "input lines are never joined",
			input: "line one\nline two",
			width: 80,
			want:  "line one\nline two",
		},
		{
			name:  "empty input",
			input: "",
			width: 80,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.input, tt.width)
			if got != tt.want {
				t.Errorf("Wrap(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}

func TestWrap_EightyColumns(t *testing.T) {
	word := "0123456789"
	input := strings.TrimSpace(strings.Repeat(word+" ", 10))

	got := Wrap(input, 80)
	for i, line := range strings.Split(got, "\n") {
		if len(line) > 80 {
			t.Errorf("line %d exceeds 80 columns: %d chars", i, len(line))
		}
	}
	if fields := strings.Fields(got); len(fields) != 10 {
		t.Errorf("expected all 10 words to survive, got %d", len(fields))
	}
}

func TestCompose_Replace(t *testing.T) {
	got := Compose("new message", "")
	want := "new message\n"
	if got != want {
		t.Errorf("Compose() = %q, want %q", got, want)
	}
}

func TestCompose_Append(t *testing.T) {
	got := Compose("generated body", "Fix bug")
	want := "Fix bug\n\n---aimend-msg---\n\ngenerated body\n"
	if got != want {
		t.Errorf("Compose() = %q, want %q", got, want)
	}
}

func TestCompose_WrapsGeneratedText(t *testing.T) {
	word := "0123456789"
	gen := strings.TrimSpace(strings.Repeat(word+" ", 10))

	got := Compose(gen, "")
	first := strings.Repeat(word+" ", 6) + word
	second := strings.Repeat(word+" ", 2) + word
	want := first + "\n" + second + "\n"
	if got != want {
		t.Errorf("Compose() = %q, want %q", got, want)
	}
}

func TestCompose_RoundTrip(t *testing.T) {
	old := "Fix bug"

	first := Compose("improved message", old)
	stripped := Strip(first, ModeMessage)
	if stripped != old {
		t.Fatalf("Strip(Compose()) = %q, want %q", stripped, old)
	}

	// A second generation over the stripped message must not stack markers.
	second := Compose("even better message", stripped)
	if n := strings.Count(second, Marker); n != 1 {
		t.Errorf("expected exactly one marker, found %d in %q", n, second)
	}
	if got := Strip(second, ModeMessage); got != old {
		t.Errorf("Strip() after second compose = %q, want %q", got, old)
	}
}
