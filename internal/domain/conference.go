package domain

import (
	"context"
	"time"
)

// Conference represents a conference owned by the organizer profile.
// SeatsAvailable is a mutable counter: 0 <= SeatsAvailable <= MaxAttendees.
// swagger:model Conference
type Conference struct {
	ID             string     `json:"id"`
	OrganizerID    string     `json:"organizer_id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	City           string     `json:"city"`
	Topics         []string   `json:"topics"`
	Month          int        `json:"month"`
	MaxAttendees   int        `json:"max_attendees"`
	SeatsAvailable int        `json:"seats_available"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// NewConference returns a new Conference. ID is set by the repository on
// create; Month and SeatsAvailable are derived by the service.
func NewConference(organizerID, name string, createdAt, updatedAt time.Time) *Conference {
	return &Conference{
		OrganizerID: organizerID,
		Name:        name,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// ConferenceUpdate carries the optional fields of a conference update.
// Nil fields are left unchanged.
type ConferenceUpdate struct {
	Name         *string
	Description  *string
	City         *string
	Topics       []string
	MaxAttendees *int
	StartDate    *time.Time
	EndDate      *time.Time
}

// Registration links an attending profile to a conference. The set of
// registrations for a profile is its attendance list; (conference, profile)
// is unique.
// swagger:model Registration
type Registration struct {
	ID           string    `json:"id"`
	ConferenceID string    `json:"conference_id"`
	ProfileID    string    `json:"profile_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// ConferenceRepository defines the interface for conference storage,
// including the seat-inventory transaction.
type ConferenceRepository interface {
	Create(ctx context.Context, c *Conference) error
	GetByID(ctx context.Context, id string) (*Conference, error)
	Update(ctx context.Context, c *Conference) error
	ListByOrganizerID(ctx context.Context, organizerID string) ([]*Conference, error)
	// ListAttending returns the conferences the profile is registered for.
	ListAttending(ctx context.Context, profileID string) ([]*Conference, error)
	// Query runs the validated filter set against the conference collection,
	// ordered by the inequality column first (when set), then by name.
	Query(ctx context.Context, inequalityColumn string, filters []NormalizedFilter) ([]*Conference, error)
	// ListNearlySoldOut returns conferences with 0 < seats_available <= seats,
	// ordered by name.
	ListNearlySoldOut(ctx context.Context, seats int) ([]*Conference, error)

	// Register atomically adds the profile to the conference's attendance set
	// and decrements seats_available. Returns ErrNotFound, ErrAlreadyRegistered
	// or ErrNoSeatsAvailable on the corresponding condition.
	Register(ctx context.Context, conferenceID, profileID string) error
	// Unregister atomically removes the profile's registration and increments
	// seats_available. Returns (false, nil) when the profile was not
	// registered; ErrNotFound when the conference does not resolve.
	Unregister(ctx context.Context, conferenceID, profileID string) (bool, error)
}

// ConferenceService defines conference business logic.
type ConferenceService interface {
	CreateConference(ctx context.Context, organizerID string, c *Conference) (*Conference, error)
	UpdateConference(ctx context.Context, callerID, conferenceID string, upd *ConferenceUpdate) (*Conference, error)
	GetConference(ctx context.Context, conferenceID string) (*Conference, error)
	ListConferencesCreated(ctx context.Context, organizerID string) ([]*Conference, error)
	ListConferencesToAttend(ctx context.Context, profileID string) ([]*Conference, error)
	QueryConferences(ctx context.Context, filters []Filter) ([]*Conference, error)
	// RegisterForConference returns true on success; see ConferenceRepository.Register for failure modes.
	RegisterForConference(ctx context.Context, profileID, conferenceID string) (bool, error)
	// UnregisterFromConference returns false (not an error) when the profile was not registered.
	UnregisterFromConference(ctx context.Context, profileID, conferenceID string) (bool, error)
}
