package domain

import "context"

// Background task names and their parameter keys. Tasks are delivered
// at-least-once with no ordering guarantee, so handlers must be idempotent.
const (
	TaskFeaturedSpeaker   = "featured_speaker"
	TaskConfirmationEmail = "confirmation_email"

	TaskParamConferenceID      = "conference_id"
	TaskParamConferenceName    = "conference_name"
	TaskParamSpeakerName       = "speaker_name"
	TaskParamSpeakerProfession = "speaker_profession"
	TaskParamEmail             = "email"
)

// TaskDispatcher enqueues background work for eventual execution by the
// worker process. Enqueue returns once the task is queued; callers never wait
// for the task to run.
type TaskDispatcher interface {
	Enqueue(ctx context.Context, name string, params map[string]string) error
}

// TaskHandler processes a single delivery of a task. A returned error signals
// the dispatcher to retry per its own policy.
type TaskHandler func(ctx context.Context, params map[string]string) error

// AnnouncementService owns the two derived cache slots: the background
// recomputes that write them and the reads that surface them.
type AnnouncementService interface {
	// HandleFeaturedSpeaker is the featured_speaker task handler. It resolves
	// or creates the speaker, and when the speaker has more than one session
	// in the conference, refreshes the featured-speaker cache slot.
	HandleFeaturedSpeaker(ctx context.Context, conferenceID, speakerName, speakerProfession string) error
	// RecomputeAnnouncement scans for nearly-sold-out conferences and
	// refreshes (or clears) the announcement cache slot. Returns the new
	// announcement text.
	RecomputeAnnouncement(ctx context.Context) (string, error)
	GetAnnouncement(ctx context.Context) (string, error)
	GetFeaturedSpeaker(ctx context.Context) (string, error)
}
