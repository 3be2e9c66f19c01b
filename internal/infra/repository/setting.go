package repository

import (
	"context"

	"study-booking/internal/domain/setting"
	"study-booking/internal/infra"
	sqlc "study-booking/internal/infra/sqlc/generated"
	"study-booking/internal/pkg/pgconv"
)

type SettingWriteQueries interface {
	UpsertSetting(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertSettingParams) error
}

type SettingRepository struct {
	queries SettingWriteQueries
	db      sqlc.DBTX
}

func NewSettingRepository(queries SettingWriteQueries, db sqlc.DBTX) *SettingRepository {
	return &SettingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SettingRepository) Upsert(ctx context.Context, tx sqlc.DBTX, s *setting.Setting) error {
	params := sqlc.UpsertSettingParams{
		Key:       s.Key().String(),
		Value:     s.Value(),
		UpdatedAt: pgconv.TimeToPgtype(s.UpdatedAt()),
	}

	if err := r.queries.UpsertSetting(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to save setting", err)
	}
	return nil
}
