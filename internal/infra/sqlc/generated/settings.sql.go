package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const getSetting = `-- name: GetSetting :one
SELECT key, value, updated_at
FROM settings
WHERE key = $1
`

func (q *Queries) GetSetting(ctx context.Context, db DBTX, key string) (Settings, error) {
	row := db.QueryRow(ctx, getSetting, key)
	var i Settings
	err := row.Scan(&i.Key, &i.Value, &i.UpdatedAt)
	return i, err
}

const listSettings = `-- name: ListSettings :many
SELECT key, value, updated_at
FROM settings
ORDER BY key
`

func (q *Queries) ListSettings(ctx context.Context, db DBTX) ([]Settings, error) {
	rows, err := db.Query(ctx, listSettings)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Settings
	for rows.Next() {
		var i Settings
		if err := rows.Scan(&i.Key, &i.Value, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const upsertSetting = `-- name: UpsertSetting :exec
INSERT INTO settings (key, value, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (key) DO UPDATE
SET value = EXCLUDED.value,
    updated_at = EXCLUDED.updated_at
`

type UpsertSettingParams struct {
	Key       string
	Value     string
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpsertSetting(ctx context.Context, db DBTX, arg UpsertSettingParams) error {
	_, err := db.Exec(ctx, upsertSetting, arg.Key, arg.Value, arg.UpdatedAt)
	return err
}
