package ports

import (
	"context"
	"time"
)

// SlotCache stores resolved slot starts per host and local date. Implementations
// must tolerate being bypassed: a miss or an error falls back to storage.
//
// Get reports the host's cache version it read under, hit or miss. Set stores under
// that version only, so a list resolved before an Invalidate is never visible after it.
type SlotCache interface {
	Get(ctx context.Context, hostID, date string) (starts []time.Time, version int64, ok bool, err error)
	Set(ctx context.Context, hostID, date string, version int64, starts []time.Time) error
	Invalidate(ctx context.Context, hostID string) error
}
