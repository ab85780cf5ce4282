package download

import (
	"context"

	"github.com/Momossini/DeoDer/internal/extract"
)

// Extractor resolves a URL to playable media and streams it to disk,
// reporting byte progress through fn.
type Extractor interface {
	Download(ctx context.Context, url string, fn extract.ProgressFunc) (*extract.Result, error)
}

// FailureLog persists URLs whose downloads permanently failed
type FailureLog interface {
	Append(url string) error
}
