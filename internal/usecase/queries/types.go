package queries

import (
	"time"

	"github.com/google/uuid"
)

type SlotView struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// BookingView is a booking joined with its participant and preferences.
type BookingView struct {
	ID               uuid.UUID  `json:"id"`
	ParticipantID    uuid.UUID  `json:"participant_id"`
	ParticipantName  string     `json:"participant_name"`
	ParticipantEmail string     `json:"participant_email"`
	Status           string     `json:"status"`
	Candidates       []SlotView `json:"candidates"`
	Selected         *SlotView  `json:"selected,omitempty"`
	CalendarEventID  *string    `json:"calendar_event_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	ResolvedAt       *time.Time `json:"resolved_at,omitempty"`
}

type ParticipantView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Token        string    `json:"token"`
	BookingCount int32     `json:"booking_count"`
	LatestStatus string    `json:"latest_status,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type BlockedSlotView struct {
	ID        uuid.UUID `json:"id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

// SettingView carries the stored value, or the built-in default when the key
// was never saved (UpdatedAt is nil then).
type SettingView struct {
	Key       string     `json:"key"`
	Value     string     `json:"value"`
	IsDefault bool       `json:"is_default"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
