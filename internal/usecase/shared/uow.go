package shared

import (
	"context"
	"time"

	"study-booking/internal/domain/availability"
	"study-booking/internal/domain/blockedslot"
	"study-booking/internal/domain/booking"
	"study-booking/internal/domain/participant"
	"study-booking/internal/domain/setting"
	sqlc "study-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Participants() ParticipantRepository
	Bookings() BookingRepository
	BlockedSlots() BlockedSlotRepository
	Settings() SettingRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	ParticipantByToken(ctx context.Context, token string) (*ParticipantSnapshot, error)
	ParticipantByID(ctx context.Context, id uuid.UUID) (*ParticipantSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	SettingValue(ctx context.Context, key setting.Key) (string, error)
}

// Minimal snapshots for command read operations
type ParticipantSnapshot struct {
	ID    uuid.UUID
	Name  string
	Email string
	Token string
}

type BookingSnapshot struct {
	ID            uuid.UUID
	ParticipantID uuid.UUID
	Candidates    []availability.Interval
	Status        booking.Status
	Selected      *availability.Interval
	EventID       string
	CreatedAt     time.Time
	ResolvedAt    *time.Time
}

func (s *BookingSnapshot) ToDomain() *booking.Booking {
	return booking.ReconstructBooking(s.ID, s.ParticipantID, s.Candidates, s.Status, s.Selected, s.EventID, s.CreatedAt, s.ResolvedAt)
}

type ParticipantRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p *participant.Participant) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	// UpdateResolution persists a status change only if the stored status is
	// still expected; it reports whether a row was updated.
	UpdateResolution(ctx context.Context, tx sqlc.DBTX, b *booking.Booking, expected booking.Status) (bool, error)
}

type BlockedSlotRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *blockedslot.BlockedSlot) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (bool, error)
}

type SettingRepository interface {
	Upsert(ctx context.Context, tx sqlc.DBTX, s *setting.Setting) error
}
