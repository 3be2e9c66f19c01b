//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"study-booking/internal/infra"
	"study-booking/internal/infra/repository"
	sqlc "study-booking/internal/infra/sqlc/generated"
	"study-booking/tests/common/builder"
	repositorymock "study-booking/tests/mock/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestParticipantRepository_Create(t *testing.T) {
	ctx := context.Background()
	pb := builder.NewParticipantBuilder()

	testCases := []struct {
		name          string
		queryErr      error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: participant created",
		},
		{
			name:          "error: token already taken",
			queryErr:      &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint \"participants_token_key\""},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
		{
			name:          "error: database error occurs",
			queryErr:      errors.New("database connection error"),
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockParticipantWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewParticipantRepository(mockQueries, mockDB)

			entity, err := pb.BuildDomain()
			require.NoError(t, err)

			mockQueries.EXPECT().CreateParticipant(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateParticipantParams) error {
					assert.Equal(t, entity.ID(), arg.ID)
					assert.Equal(t, pb.Token, arg.Token)
					assert.Equal(t, pb.Email, arg.Email)
					assert.True(t, arg.CreatedAt.Valid)
					return tc.queryErr
				})

			actualError := repo.Create(ctx, mockDB, entity)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}
