package domain

import (
	"context"
	"time"
)

// Speaker represents a speaker. Speakers are not owned by any conference
// (they cross conferences); full_name is the natural key.
// swagger:model Speaker
type Speaker struct {
	ID         string    `json:"id"`
	FullName   string    `json:"full_name"`
	Profession string    `json:"profession"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewSpeaker returns a new Speaker. ID is set by the repository on create.
func NewSpeaker(fullName, profession string, createdAt, updatedAt time.Time) *Speaker {
	return &Speaker{
		FullName:   fullName,
		Profession: profession,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}

// SpeakerRepository defines the interface for speaker storage.
type SpeakerRepository interface {
	// Create inserts the speaker. On a full_name collision it loads the
	// existing record into s and returns ErrAlreadyExists.
	Create(ctx context.Context, s *Speaker) error
	GetByFullName(ctx context.Context, fullName string) (*Speaker, error)
	List(ctx context.Context) ([]*Speaker, error)
}
