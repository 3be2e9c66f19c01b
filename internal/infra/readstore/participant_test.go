//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"study-booking/internal/infra"
	"study-booking/internal/infra/readstore"
	sqlc "study-booking/internal/infra/sqlc/generated"
	"study-booking/tests/common/builder"
	readstoremock "study-booking/tests/mock/readstore"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestParticipantReadStore_FindByToken(t *testing.T) {
	ctx := context.Background()
	pb := builder.NewParticipantBuilder()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockParticipantReadQueries)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: participant found",
			setupMock: func(mock *readstoremock.MockParticipantReadQueries) {
				mock.EXPECT().FindParticipantByToken(ctx, gomock.Any(), pb.Token).Return(pb.BuildInfra(), nil)
			},
		},
		{
			name: "error: unknown token",
			setupMock: func(mock *readstoremock.MockParticipantReadQueries) {
				mock.EXPECT().FindParticipantByToken(ctx, gomock.Any(), pb.Token).Return(sqlc.Participants{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockParticipantReadQueries) {
				mock.EXPECT().FindParticipantByToken(ctx, gomock.Any(), pb.Token).Return(sqlc.Participants{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockParticipantReadQueries(ctrl)
			tc.setupMock(mockQueries)

			snap, err := readstore.NewParticipantReadStore(mockQueries, nil).FindByToken(ctx, pb.Token)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, pb.BuildSnapshot(), snap)
		})
	}
}

func TestParticipantReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	pb := builder.NewParticipantBuilder()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockParticipantReadQueries(ctrl)
	mockQueries.EXPECT().FindParticipantByID(ctx, gomock.Any(), pb.ID).Return(sqlc.Participants{}, pgx.ErrNoRows)

	_, err := readstore.NewParticipantReadStore(mockQueries, nil).FindByID(ctx, pb.ID)

	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestParticipantReadStore_List(t *testing.T) {
	ctx := context.Background()
	pb := builder.NewParticipantBuilder()
	row := pb.BuildInfra()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockParticipantReadQueries(ctrl)
	mockQueries.EXPECT().ListParticipants(ctx, gomock.Any()).Return([]sqlc.ListParticipantsRow{
		{ID: row.ID, Name: row.Name, Email: row.Email, Token: row.Token, CreatedAt: row.CreatedAt, BookingCount: 2, LatestStatus: "pending"},
		{ID: row.ID, Name: "No Bookings", Email: "none@example.com", Token: row.Token, CreatedAt: row.CreatedAt},
	}, nil)

	views, err := readstore.NewParticipantReadStore(mockQueries, nil).List(ctx)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, int32(2), views[0].BookingCount)
	assert.Equal(t, "pending", views[0].LatestStatus)
	assert.Equal(t, pb.Token, views[0].Token)
	assert.Zero(t, views[1].BookingCount)
	assert.Empty(t, views[1].LatestStatus)
	assert.True(t, views[0].CreatedAt.Equal(pb.CreatedAt))
}
