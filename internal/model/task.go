package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DownloadTask represents a single download task: one URL's end-to-end
// attempt sequence, including retries. Only the worker executing the task
// mutates it.
type DownloadTask struct {
	ID         string
	URL        string
	Status     TaskStatus
	Attempts   int       // attempts performed so far, 1-based
	BytesDone  int64     // bytes downloaded in the current transfer
	BytesTotal int64     // total bytes, 0 if unknown
	LastError  string    // last error message if any
	OutputPath string    // path to downloaded file
	Title      string    // media title
	StartedAt  time.Time // when the task was created
	FinishedAt time.Time // when the task reached a terminal state
}

// NewDownloadTask creates a pending task for a discovered URL
func NewDownloadTask(url string) *DownloadTask {
	return &DownloadTask{
		ID:        generateTaskID(),
		URL:       url,
		Status:    TaskStatusPending,
		StartedAt: time.Now(),
	}
}

// Percent returns download progress as 0-100, or 0 when the total is unknown
func (dt *DownloadTask) Percent() float64 {
	if dt.BytesTotal <= 0 {
		return 0
	}
	return float64(dt.BytesDone) / float64(dt.BytesTotal) * 100
}

// generateTaskID generates a unique task ID
func generateTaskID() string {
	return fmt.Sprintf("task-%s", uuid.New().String())
}
