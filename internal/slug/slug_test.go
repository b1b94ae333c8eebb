package slug

import (
	"strings"
	"testing"
)

// TestFolder exercises the folder sanitiser with typical hints, path
// traversal attempts, non-Latin scripts, and empty input.
func TestFolder(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "showcase", want: "showcase"},
		{name: "mixed case with space", input: "Showcase Images", want: "showcase-images"},
		{name: "nested", input: "identity/logo", want: "identity/logo"},
		{name: "parent traversal", input: "../../etc/passwd", want: "etc/passwd"},
		{name: "dot segments", input: "./a/./b", want: "a/b"},
		{name: "leading slash", input: "/news", want: "news"},
		{name: "punctuation runs", input: "news!!  thumbs", want: "news-thumbs"},
		{name: "arabic", input: "صور الأخبار", want: "صور-الأخبار"},
		{name: "digits", input: "season 2", want: "season-2"},
		{name: "empty", input: "", want: ""},
		{name: "only symbols", input: "***", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Folder(tt.input); got != tt.want {
				t.Errorf("Folder(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFolderLongSegmentIsCapped(t *testing.T) {
	got := Folder(strings.Repeat("a", 200))
	if len(got) != maxSegmentLen {
		t.Errorf("len = %d, want %d", len(got), maxSegmentLen)
	}
}

func TestFolderLongMultibyteSegmentStaysValid(t *testing.T) {
	got := Folder(strings.Repeat("ب", 100))
	if len(got) > maxSegmentLen {
		t.Errorf("len = %d, want <= %d", len(got), maxSegmentLen)
	}
	if !strings.HasPrefix(strings.Repeat("ب", 100), got) {
		t.Errorf("truncated segment split a rune: %q", got)
	}
}
