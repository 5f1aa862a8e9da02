package domain

import (
	"context"
	"time"
)

// Session types. Free-form strings on the wire; NOT_SPECIFIED is the default.
const SessionTypeNotSpecified = "NOT_SPECIFIED"

// Session represents a talk or workshop held under a conference. A session is
// uniquely identified by (conference, name); creation is idempotent on that
// pair.
// swagger:model Session
type Session struct {
	ID                string     `json:"id"`
	ConferenceID      string     `json:"conference_id"`
	Name              string     `json:"name"`
	TypeOfSession     string     `json:"type_of_session"`
	DurationMinutes   int        `json:"duration_minutes"`
	StartsAt          *time.Time `json:"starts_at"`
	SpeakerID         *string    `json:"speaker_id"`
	SpeakerName       string     `json:"speaker_name,omitempty"`
	SpeakerProfession string     `json:"speaker_profession,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// NewSession returns a new Session. ID is set by the repository on create.
func NewSession(conferenceID, name, typeOfSession string, durationMinutes int, startsAt *time.Time, createdAt, updatedAt time.Time) *Session {
	return &Session{
		ConferenceID:    conferenceID,
		Name:            name,
		TypeOfSession:   typeOfSession,
		DurationMinutes: durationMinutes,
		StartsAt:        startsAt,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}

// SessionRepository defines the interface for session storage. List methods
// scoped to a conference are ancestor queries over the conference_id column.
type SessionRepository interface {
	Create(ctx context.Context, s *Session) error
	GetByID(ctx context.Context, id string) (*Session, error)
	GetByConferenceAndName(ctx context.Context, conferenceID, name string) (*Session, error)
	ListByConferenceID(ctx context.Context, conferenceID string) ([]*Session, error)
	ListByConferenceAndType(ctx context.Context, conferenceID, typeOfSession string) ([]*Session, error)
	ListBySpeaker(ctx context.Context, speakerFullName, typeOfSession string) ([]*Session, error)
	// ListByConferenceAndSpeaker returns the conference's sessions attributed
	// to the speaker, in name order.
	ListByConferenceAndSpeaker(ctx context.Context, conferenceID, speakerID string) ([]*Session, error)
}

// CreateSessionInput carries the fields of a session-creation call.
type CreateSessionInput struct {
	ConferenceID      string
	Name              string
	TypeOfSession     string
	DurationMinutes   int
	Date              string // YYYY-MM-DD
	StartTime         string // HH:MM
	SpeakerName       string
	SpeakerProfession string
}

// SessionService defines the session-creation flow and session queries.
type SessionService interface {
	// CreateSession creates a session under a conference, resolving or
	// creating the named speaker and scheduling the featured-speaker
	// recompute. Created is false when a session with the same name already
	// exists under the conference (the existing session is returned).
	CreateSession(ctx context.Context, callerID string, in *CreateSessionInput) (sess *Session, created bool, err error)
	ListConferenceSessions(ctx context.Context, conferenceID, typeOfSession string) ([]*Session, error)
	ListSessionsBySpeaker(ctx context.Context, speakerFullName, typeOfSession string) ([]*Session, error)
}
