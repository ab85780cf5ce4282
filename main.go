package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Momossini/DeoDer/internal/config"
	"github.com/Momossini/DeoDer/internal/discover"
	"github.com/Momossini/DeoDer/internal/download"
	"github.com/Momossini/DeoDer/internal/extract"
	"github.com/Momossini/DeoDer/internal/faillog"
	"github.com/Momossini/DeoDer/internal/model"
	"github.com/Momossini/DeoDer/internal/progress"
	"github.com/Momossini/DeoDer/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

// Logger environments
const (
	envLocal = "local"
	envDebug = "debug"
	envProd  = "prod"
)

func main() {
	// Optional .env file for overrides; absence is fine
	_ = godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	slog.SetDefault(setupLogger(cfg.Env))
	slog.Info("DeoDer starting", "version", version)

	console := ui.NewConsole(os.Stdout)

	pageURL, err := targetURL(os.Args)
	if err != nil {
		console.Errorf("No URL provided: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()

	disc := discover.New(cfg.FetchTimeout, config.VideoDomains)
	urls, err := disc.Discover(ctx, pageURL)
	if err != nil {
		console.Errorf("Failed to extract video URLs: %v", err)
	}
	if len(urls) == 0 {
		console.Infof("No valid video links found.")
		return
	}

	console.Infof("Found %d video(s). Starting downloads...", len(urls))

	tracker := progress.NewTracker(urls, console.RenderProgress)
	orchestrator := download.NewOrchestrator(
		extract.NewYTDLP(cfg.OutputDir),
		tracker,
		faillog.New(cfg.FailedLog),
		cfg.OutputDir,
		cfg.MaxRetries,
		cfg.MaxParallel,
	)

	tasks, err := orchestrator.Run(ctx, urls)
	if err != nil {
		console.Errorf("Failed to start downloads: %v", err)
		os.Exit(1)
	}
	tracker.Close()

	var succeeded, failed int
	for _, task := range tasks {
		if task.Status == model.TaskStatusSucceeded {
			succeeded++
		} else {
			failed++
		}
	}
	console.Summary(succeeded, failed)
}

// targetURL takes the URL from the first positional argument, prompting
// interactively when absent
func targetURL(args []string) (string, error) {
	if len(args) > 1 {
		url := strings.TrimSpace(args[1])
		if url == "" {
			return "", fmt.Errorf("empty URL")
		}
		return url, nil
	}

	fmt.Print("Enter the URL (video, playlist, or webpage): ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read URL: %w", err)
	}

	url := strings.TrimSpace(line)
	if url == "" {
		return "", fmt.Errorf("empty URL")
	}
	return url, nil
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDebug:
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
}
