package ports

import (
	"context"

	"github.com/hirehive/hirehive-api/internal/core/domain"
)

// ActivityRepository persists activity log entries.
type ActivityRepository interface {
	InsertActivity(ctx context.Context, entry *domain.ActivityEntry) error
}

// ActivityRecorder accepts entries for asynchronous persistence. Record never
// blocks the caller on storage.
type ActivityRecorder interface {
	Record(entry domain.ActivityEntry)
}
