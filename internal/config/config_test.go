package config

import (
	"testing"
	"time"
)

func TestNew_Defaults(t *testing.T) {
	cfg, err := New()
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	if cfg.MaxRetries != 10 {
		t.Errorf("Expected default max retries 10, got %d", cfg.MaxRetries)
	}

	if cfg.OutputDir != "downloads" {
		t.Errorf("Expected default output dir 'downloads', got '%s'", cfg.OutputDir)
	}

	if cfg.MaxParallel != 5 {
		t.Errorf("Expected default max parallel 5, got %d", cfg.MaxParallel)
	}

	if cfg.FetchTimeout != 10*time.Second {
		t.Errorf("Expected default fetch timeout 10s, got %s", cfg.FetchTimeout)
	}

	if cfg.FailedLog != "failed.txt" {
		t.Errorf("Expected default failed log 'failed.txt', got '%s'", cfg.FailedLog)
	}
}

func TestNew_EnvOverrides(t *testing.T) {
	t.Setenv("DEODER_MAX_RETRIES", "3")
	t.Setenv("DEODER_OUTPUT_DIR", "/tmp/videos")
	t.Setenv("DEODER_FETCH_TIMEOUT", "5s")

	cfg, err := New()
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	if cfg.MaxRetries != 3 {
		t.Errorf("Expected max retries 3, got %d", cfg.MaxRetries)
	}

	if cfg.OutputDir != "/tmp/videos" {
		t.Errorf("Expected output dir '/tmp/videos', got '%s'", cfg.OutputDir)
	}

	if cfg.FetchTimeout != 5*time.Second {
		t.Errorf("Expected fetch timeout 5s, got %s", cfg.FetchTimeout)
	}
}

func TestNew_ClampsWorkers(t *testing.T) {
	t.Setenv("DEODER_MAX_PARALLEL", "0")

	cfg, err := New()
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	if cfg.MaxParallel != MinWorkers {
		t.Errorf("Expected max parallel clamped to %d, got %d", MinWorkers, cfg.MaxParallel)
	}

	t.Setenv("DEODER_MAX_PARALLEL", "50")

	cfg, err = New()
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	if cfg.MaxParallel != MaxWorkers {
		t.Errorf("Expected max parallel clamped to %d, got %d", MaxWorkers, cfg.MaxParallel)
	}
}

func TestVideoDomains(t *testing.T) {
	if len(VideoDomains) == 0 {
		t.Fatal("VideoDomains should not be empty")
	}

	expected := map[string]bool{
		"youtube.com": true,
		"youtu.be":    true,
	}
	for _, d := range VideoDomains {
		delete(expected, d)
	}
	if len(expected) != 0 {
		t.Errorf("VideoDomains missing expected entries: %v", expected)
	}
}
