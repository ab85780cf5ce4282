package model

// TaskStatus represents the status of a download task
type TaskStatus string

const (
	// TaskStatusPending means the task is queued but not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusDownloading means the download is in progress
	TaskStatusDownloading TaskStatus = "Downloading"

	// TaskStatusSucceeded means the task finished successfully
	TaskStatusSucceeded TaskStatus = "Succeeded"

	// TaskStatusFailed means the task exhausted its retry budget
	TaskStatusFailed TaskStatus = "Failed"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is currently being worked on
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusDownloading
}

// IsTerminal returns true if the task reached a final state and no further
// attempts will occur
func (ts TaskStatus) IsTerminal() bool {
	return ts == TaskStatusSucceeded || ts == TaskStatusFailed
}
