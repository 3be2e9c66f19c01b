package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BlockedSlots struct {
	ID        uuid.UUID
	StartTime pgtype.Timestamptz
	EndTime   pgtype.Timestamptz
	Reason    string
	CreatedAt pgtype.Timestamptz
}

type BookingCandidates struct {
	BookingID uuid.UUID
	Position  int16
	StartTime pgtype.Timestamptz
	EndTime   pgtype.Timestamptz
}

type Bookings struct {
	ID              uuid.UUID
	ParticipantID   uuid.UUID
	Status          string
	SelectedStart   pgtype.Timestamptz
	SelectedEnd     pgtype.Timestamptz
	CalendarEventID pgtype.Text
	CreatedAt       pgtype.Timestamptz
	ResolvedAt      pgtype.Timestamptz
}

type Participants struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Token     string
	CreatedAt pgtype.Timestamptz
}

type Settings struct {
	Key       string
	Value     string
	UpdatedAt pgtype.Timestamptz
}
