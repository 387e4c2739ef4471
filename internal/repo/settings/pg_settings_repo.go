// Package settings_repo persists per-gateway credential fields in Postgres.
package settings_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Khaled152/tutor-kashier-integration/internal/domain/gateway"
	"github.com/Khaled152/tutor-kashier-integration/pkg/postgres"
)

// PgSettingsRepo is the main repository
type PgSettingsRepo struct {
	pg *postgres.Postgres
	repo
}

func NewPgSettingsRepo(pg *postgres.Postgres) *PgSettingsRepo {
	return &PgSettingsRepo{
		pg:   pg,
		repo: repo{db: pg.Pool, builder: pg.Builder},
	}
}

type repo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

// GatewaySettings implements gateway.Settings. A gateway with no stored rows
// yields an empty Fields map, which the credential resolver rejects.
func (r *repo) GatewaySettings(ctx context.Context, gatewayKey string) (gateway.Fields, error) {
	query, args, err := r.builder.Select("name", "value").
		From("gateway_settings").
		Where(squirrel.Eq{"gateway_key": gatewayKey}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build settings query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query gateway settings: %w", err)
	}
	defer rows.Close()

	fields := gateway.Fields{}
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("scan gateway setting: %w", err)
		}
		fields[name] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate gateway settings: %w", err)
	}

	return fields, nil
}

// SaveGatewaySettings upserts the given fields for one gateway.
func (r *repo) SaveGatewaySettings(ctx context.Context, gatewayKey string, fields gateway.Fields) error {
	for name, value := range fields {
		query, args, err := r.builder.Insert("gateway_settings").
			Columns("gateway_key", "name", "value").
			Values(gatewayKey, name, value).
			Suffix("ON CONFLICT (gateway_key, name) DO UPDATE SET value = EXCLUDED.value").
			ToSql()
		if err != nil {
			return fmt.Errorf("build settings upsert: %w", err)
		}

		if _, err = r.db.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("save gateway setting %q: %w", name, err)
		}
	}
	return nil
}
