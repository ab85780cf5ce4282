package ui

// Package ui renders download progress and status lines on the terminal. It
// is the single consumer of tracker snapshots; workers never print directly.

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"

	"github.com/Momossini/DeoDer/internal/progress"
)

// progressStep is the minimum whole-percent advance between printed updates
// for the same task, keeping the output readable under frequent events.
const progressStep = 5

// Console writes colored, human-readable status lines
type Console struct {
	mu            sync.Mutex
	out           io.Writer
	lastPct       map[string]int
	lastCompleted int

	info    *color.Color
	success *color.Color
	failure *color.Color
}

// NewConsole creates a console renderer writing to out
func NewConsole(out io.Writer) *Console {
	return &Console{
		out:     out,
		lastPct: make(map[string]int),
		info:    color.New(color.FgCyan),
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
	}
}

// Infof prints an informational line
func (c *Console) Infof(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = c.info.Fprintf(c.out, format+"\n", args...)
}

// Errorf prints an error line
func (c *Console) Errorf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = c.failure.Fprintf(c.out, format+"\n", args...)
}

// RenderProgress prints a task's progress and the overall counter. Per-task
// lines are throttled to whole-percent steps; completion changes always print.
func (c *Console) RenderProgress(snap progress.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if snap.Completed != c.lastCompleted {
		c.lastCompleted = snap.Completed
		_, _ = fmt.Fprintf(c.out, "Overall progress: %d/%d\n", snap.Completed, snap.Total)
		return
	}

	pct := int(snap.Percent)
	if pct < c.lastPct[snap.URL]+progressStep && pct != 100 {
		return
	}
	c.lastPct[snap.URL] = pct
	_, _ = fmt.Fprintf(c.out, "[%3d%%] %s\n", pct, snap.URL)
}

// Summary prints the end-of-run result counts
func (c *Console) Summary(succeeded, failed int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, _ = c.success.Fprintf(c.out, "Downloads complete: %d succeeded\n", succeeded)
	if failed > 0 {
		_, _ = c.failure.Fprintf(c.out, "Downloads failed: %d (see failure log)\n", failed)
	}
}
