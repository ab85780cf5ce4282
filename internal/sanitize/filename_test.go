package sanitize

import (
	"strings"
	"testing"
)

func TestToSafeFilename(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		ext      string
		expected string
	}{
		{"plain title", "My Video", "mp4", "My Video.mp4"},
		{"empty title", "", "mp4", "video.mp4"},
		{"whitespace title", "   ", "webm", "video.webm"},
		{"unsafe characters", `a/b\c:d*e?f"g<h>i|j`, "mp4", "a_b_c_d_e_f_g_h_i_j.mp4"},
		{"empty extension", "clip", "", "clip.mp4"},
		{"dotted extension", "clip", ".WEBM", "clip.webm"},
	}

	for _, test := range tests {
		result := ToSafeFilename(test.title, test.ext)
		if result != test.expected {
			t.Errorf("%s: ToSafeFilename(%q, %q) = %q, expected %q",
				test.name, test.title, test.ext, result, test.expected)
		}
	}
}

func TestToSafeFilename_TruncatesLongTitles(t *testing.T) {
	long := strings.Repeat("a", MaxTitleLength+50)
	result := ToSafeFilename(long, "mp4")

	expected := strings.Repeat("a", MaxTitleLength) + ".mp4"
	if result != expected {
		t.Errorf("Expected title truncated to %d characters, got %q", MaxTitleLength, result)
	}
}
