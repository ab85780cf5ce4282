package faillog

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read failure log: %v", err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "failed.txt")
	log := New(path)

	if err := log.Append("https://youtube.com/watch?v=bad"); err != nil {
		t.Fatalf("Append() returned error: %v", err)
	}

	lines := readLines(t, path)
	if len(lines) != 1 || lines[0] != "https://youtube.com/watch?v=bad" {
		t.Errorf("Expected single logged URL, got %v", lines)
	}
}

func TestAppend_DoesNotTruncate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "failed.txt")
	if err := os.WriteFile(path, []byte("https://old.example/run1\n"), 0644); err != nil {
		t.Fatalf("Failed to seed log file: %v", err)
	}

	log := New(path)
	if err := log.Append("https://new.example/run2"); err != nil {
		t.Fatalf("Append() returned error: %v", err)
	}

	lines := readLines(t, path)
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %v", lines)
	}
	if lines[0] != "https://old.example/run1" || lines[1] != "https://new.example/run2" {
		t.Errorf("Expected appended log to keep prior entries, got %v", lines)
	}
}

func TestAppend_ConcurrentWritersDoNotInterleave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "failed.txt")
	log := New(path)

	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := log.Append("https://example.com/video"); err != nil {
				t.Errorf("Append() returned error: %v", err)
			}
		}()
	}
	wg.Wait()

	lines := readLines(t, path)
	if len(lines) != writers {
		t.Fatalf("Expected %d lines, got %d", writers, len(lines))
	}
	for _, line := range lines {
		if line != "https://example.com/video" {
			t.Errorf("Interleaved or corrupted line: %q", line)
		}
	}
}
