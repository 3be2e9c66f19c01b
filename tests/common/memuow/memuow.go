//go:build unit || e2e

// Package memuow is an in-memory shared.UnitOfWork for usecase tests. Writes
// made inside a failed Within callback are not rolled back.
package memuow

import (
	"context"
	"sync"

	"study-booking/internal/domain/availability"
	"study-booking/internal/domain/blockedslot"
	"study-booking/internal/domain/booking"
	"study-booking/internal/domain/participant"
	"study-booking/internal/domain/setting"
	"study-booking/internal/infra"
	sqlc "study-booking/internal/infra/sqlc/generated"
	"study-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Store struct {
	mu           sync.Mutex
	participants map[uuid.UUID]*shared.ParticipantSnapshot
	bookings     map[uuid.UUID]*shared.BookingSnapshot
	blocked      map[uuid.UUID]*blockedslot.BlockedSlot
	settings     map[setting.Key]string

	// DuplicateTokens makes the next n participant inserts fail with a
	// unique violation.
	DuplicateTokens int
	// FailWrites makes every write inside Within return this error.
	FailWrites error
	// BeforeUpdate runs before a conditional status update is applied and can
	// change the stored row to simulate a concurrent writer.
	BeforeUpdate func(s *Store, id uuid.UUID)
}

func New() *Store {
	return &Store{
		participants: map[uuid.UUID]*shared.ParticipantSnapshot{},
		bookings:     map[uuid.UUID]*shared.BookingSnapshot{},
		blocked:      map[uuid.UUID]*blockedslot.BlockedSlot{},
		settings:     map[setting.Key]string{},
	}
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, pgx.ErrNoRows)
}

// Seeding helpers

func (s *Store) AddParticipant(p *shared.ParticipantSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	s.participants[p.ID] = &cp
}

func (s *Store) AddBooking(b *shared.BookingSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *b
	s.bookings[b.ID] = &cp
}

func (s *Store) SetSetting(key setting.Key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings[key] = value
}

// Inspection helpers

func (s *Store) Booking(id uuid.UUID) (*shared.BookingSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, false
	}
	cp := *b
	return &cp, true
}

// SetBookingStatus changes the stored status without going through the
// aggregate, e.g. from BeforeUpdate.
func (s *Store) SetBookingStatus(id uuid.UUID, status booking.Status) {
	if b, ok := s.bookings[id]; ok {
		b.Status = status
	}
}

func (s *Store) Bookings() []*shared.BookingSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*shared.BookingSnapshot, 0, len(s.bookings))
	for _, b := range s.bookings {
		cp := *b
		out = append(out, &cp)
	}
	return out
}

func (s *Store) Participants() []*shared.ParticipantSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*shared.ParticipantSnapshot, 0, len(s.participants))
	for _, p := range s.participants {
		cp := *p
		out = append(out, &cp)
	}
	return out
}

func (s *Store) BlockedSlots() []*blockedslot.BlockedSlot {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*blockedslot.BlockedSlot, 0, len(s.blocked))
	for _, b := range s.blocked {
		out = append(out, b)
	}
	return out
}

func (s *Store) Setting(key setting.Key) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.settings[key]
	return v, ok
}

// shared.UnitOfWork

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &memTx{s: s})
}

func (s *Store) CommandReads() shared.CommandReads {
	return &memReads{s: s}
}

type memTx struct {
	s *Store
}

func (t *memTx) Participants() shared.ParticipantRepository { return &participantRepo{s: t.s} }
func (t *memTx) Bookings() shared.BookingRepository         { return &bookingRepo{s: t.s} }
func (t *memTx) BlockedSlots() shared.BlockedSlotRepository { return &blockedSlotRepo{s: t.s} }
func (t *memTx) Settings() shared.SettingRepository         { return &settingRepo{s: t.s} }
func (t *memTx) Reads() shared.CommandReads                 { return &memReads{s: t.s} }
func (t *memTx) DB() sqlc.DBTX                              { return nil }

type memReads struct {
	s *Store
}

func (r *memReads) ParticipantByToken(_ context.Context, token string) (*shared.ParticipantSnapshot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.participants {
		if p.Token == token {
			cp := *p
			return &cp, nil
		}
	}
	return nil, notFound("participant not found")
}

func (r *memReads) ParticipantByID(_ context.Context, id uuid.UUID) (*shared.ParticipantSnapshot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.participants[id]
	if !ok {
		return nil, notFound("participant not found")
	}
	cp := *p
	return &cp, nil
}

func (r *memReads) BookingByID(_ context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.bookings[id]
	if !ok {
		return nil, notFound("booking not found")
	}
	cp := *b
	return &cp, nil
}

func (r *memReads) SettingValue(_ context.Context, key setting.Key) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if v, ok := r.s.settings[key]; ok {
		return v, nil
	}
	return setting.Default(key), nil
}

type participantRepo struct {
	s *Store
}

func (r *participantRepo) Create(_ context.Context, _ sqlc.DBTX, p *participant.Participant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWrites != nil {
		return r.s.FailWrites
	}
	if r.s.DuplicateTokens > 0 {
		r.s.DuplicateTokens--
		return infra.WrapRepoErr("failed to create participant", &pgconn.PgError{Code: "23505"})
	}
	r.s.participants[p.ID()] = &shared.ParticipantSnapshot{
		ID:    p.ID(),
		Name:  p.Name().String(),
		Email: p.Email().String(),
		Token: p.Token().String(),
	}
	return nil
}

type bookingRepo struct {
	s *Store
}

func (r *bookingRepo) Create(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWrites != nil {
		return r.s.FailWrites
	}
	if _, ok := r.s.participants[b.ParticipantID()]; !ok {
		return infra.WrapRepoErr("failed to create booking", &pgconn.PgError{Code: "23503"})
	}
	r.s.bookings[b.ID()] = snapshotOf(b)
	return nil
}

func (r *bookingRepo) UpdateResolution(_ context.Context, _ sqlc.DBTX, b *booking.Booking, expected booking.Status) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWrites != nil {
		return false, r.s.FailWrites
	}
	if r.s.BeforeUpdate != nil {
		r.s.BeforeUpdate(r.s, b.ID())
	}
	stored, ok := r.s.bookings[b.ID()]
	if !ok || stored.Status != expected {
		return false, nil
	}
	r.s.bookings[b.ID()] = snapshotOf(b)
	return true, nil
}

type blockedSlotRepo struct {
	s *Store
}

func (r *blockedSlotRepo) Create(_ context.Context, _ sqlc.DBTX, b *blockedslot.BlockedSlot) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWrites != nil {
		return r.s.FailWrites
	}
	r.s.blocked[b.ID()] = b
	return nil
}

func (r *blockedSlotRepo) Delete(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWrites != nil {
		return false, r.s.FailWrites
	}
	if _, ok := r.s.blocked[id]; !ok {
		return false, nil
	}
	delete(r.s.blocked, id)
	return true, nil
}

type settingRepo struct {
	s *Store
}

func (r *settingRepo) Upsert(_ context.Context, _ sqlc.DBTX, st *setting.Setting) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWrites != nil {
		return r.s.FailWrites
	}
	r.s.settings[st.Key()] = st.Value()
	return nil
}

func snapshotOf(b *booking.Booking) *shared.BookingSnapshot {
	candidates := make([]availability.Interval, len(b.Candidates()))
	copy(candidates, b.Candidates())
	return &shared.BookingSnapshot{
		ID:            b.ID(),
		ParticipantID: b.ParticipantID(),
		Candidates:    candidates,
		Status:        b.Status(),
		Selected:      b.Selected(),
		EventID:       b.EventID(),
		CreatedAt:     b.CreatedAt(),
		ResolvedAt:    b.ResolvedAt(),
	}
}
