package domain

import "context"

// Cache slot keys for the derived announcement strings. Absence of a key
// means "no announcement", read back as the empty string.
const (
	AnnouncementCacheKey    = "announcements:recent"
	FeaturedSpeakerCacheKey = "announcements:featured_speaker"
)

// CacheStore is a process-wide string cache shared by the recompute tasks and
// the read endpoints. Writes are last-writer-wins; concurrent recomputes may
// race and the most recently completed write stands.
type CacheStore interface {
	// Get returns the cached value, or "" when the key is absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
