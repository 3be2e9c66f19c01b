//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"study-booking/internal/domain/availability"
	"study-booking/internal/infra"
	"study-booking/internal/usecase/queries"
	"study-booking/tests/common/builder"
	queriesmock "study-booking/tests/mock/queries"
	sharedmock "study-booking/tests/mock/shared"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAvailabilityQueries_WeekForToken(t *testing.T) {
	pb := builder.NewParticipantBuilder()
	week := &availability.Week{Offset: 1, HasPrev: true, HasNext: true}

	tests := []struct {
		name    string
		token   string
		setup   func(p *queriesmock.MockParticipantReadStore, o *sharedmock.MockAvailabilityOracle)
		wantErr error
	}{
		{
			name:  "returns the page with the participant name",
			token: pb.Token,
			setup: func(p *queriesmock.MockParticipantReadStore, o *sharedmock.MockAvailabilityOracle) {
				p.EXPECT().FindByToken(gomock.Any(), pb.Token).Return(pb.BuildSnapshot(), nil).Times(1)
				o.EXPECT().Week(gomock.Any(), 1).Return(week, nil).Times(1)
			},
		},
		{
			name:  "unknown token skips the calendar",
			token: "missing",
			setup: func(p *queriesmock.MockParticipantReadStore, _ *sharedmock.MockAvailabilityOracle) {
				p.EXPECT().FindByToken(gomock.Any(), "missing").
					Return(nil, infra.WrapRepoErr("participant not found", pgx.ErrNoRows)).Times(1)
			},
			wantErr: queries.ErrParticipantNotFound,
		},
		{
			name:  "offset beyond the horizon",
			token: pb.Token,
			setup: func(p *queriesmock.MockParticipantReadStore, o *sharedmock.MockAvailabilityOracle) {
				p.EXPECT().FindByToken(gomock.Any(), pb.Token).Return(pb.BuildSnapshot(), nil).Times(1)
				o.EXPECT().Week(gomock.Any(), 1).Return(nil, availability.ErrWeekOutOfRange).Times(1)
			},
			wantErr: queries.ErrInvalidWeek,
		},
		{
			name:  "oracle failure passes through",
			token: pb.Token,
			setup: func(p *queriesmock.MockParticipantReadStore, o *sharedmock.MockAvailabilityOracle) {
				p.EXPECT().FindByToken(gomock.Any(), pb.Token).Return(pb.BuildSnapshot(), nil).Times(1)
				o.EXPECT().Week(gomock.Any(), 1).Return(nil, errors.New("db down")).Times(1)
			},
			wantErr: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			participants := queriesmock.NewMockParticipantReadStore(ctrl)
			oracle := sharedmock.NewMockAvailabilityOracle(ctrl)
			tt.setup(participants, oracle)

			got, err := queries.NewAvailabilityQueries(participants, oracle).WeekForToken(context.Background(), tt.token, 1)

			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, queries.ErrInvalidWeek) || errors.Is(tt.wantErr, queries.ErrParticipantNotFound) {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.EqualError(t, err, tt.wantErr.Error())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, pb.Name, got.ParticipantName)
			assert.Same(t, week, got.Week)
		})
	}
}
