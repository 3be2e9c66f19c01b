package readstore

import (
	"context"

	"study-booking/internal/domain/setting"
	"study-booking/internal/infra"
	sqlc "study-booking/internal/infra/sqlc/generated"
	"study-booking/internal/pkg/pgconv"
	"study-booking/internal/usecase/queries"
)

type SettingReadQueries interface {
	GetSetting(ctx context.Context, db sqlc.DBTX, key string) (sqlc.Settings, error)
	ListSettings(ctx context.Context, db sqlc.DBTX) ([]sqlc.Settings, error)
}

type SettingReadStore struct {
	queries SettingReadQueries
	db      sqlc.DBTX
}

func NewSettingReadStore(queries SettingReadQueries, db sqlc.DBTX) *SettingReadStore {
	return &SettingReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByKey falls back to the built-in default for keys never saved.
func (r *SettingReadStore) FindByKey(ctx context.Context, key setting.Key) (*queries.SettingView, error) {
	row, err := r.queries.GetSetting(ctx, r.db, key.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return defaultView(key), nil
		}
		return nil, infra.WrapRepoErr("failed to get setting", err)
	}
	return toSettingView(row), nil
}

// List returns every known key, stored or default, in key order.
func (r *SettingReadStore) List(ctx context.Context) ([]*queries.SettingView, error) {
	rows, err := r.queries.ListSettings(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list settings", err)
	}

	stored := make(map[string]sqlc.Settings, len(rows))
	for _, row := range rows {
		stored[row.Key] = row
	}

	views := make([]*queries.SettingView, 0, len(setting.Keys()))
	for _, key := range setting.Keys() {
		if row, ok := stored[key.String()]; ok {
			views = append(views, toSettingView(row))
			continue
		}
		views = append(views, defaultView(key))
	}
	return views, nil
}

func toSettingView(row sqlc.Settings) *queries.SettingView {
	return &queries.SettingView{
		Key:       row.Key,
		Value:     row.Value,
		UpdatedAt: pgconv.TimePtrFromPgtype(row.UpdatedAt),
	}
}

func defaultView(key setting.Key) *queries.SettingView {
	return &queries.SettingView{
		Key:       key.String(),
		Value:     setting.Default(key),
		IsDefault: true,
	}
}
