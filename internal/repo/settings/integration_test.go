//go:build integration
// +build integration

package settings_repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Khaled152/tutor-kashier-integration/internal/domain/gateway"
	"github.com/Khaled152/tutor-kashier-integration/internal/testinfra"
)

func TestPgSettingsRepo_Integration(t *testing.T) {
	ctx := context.Background()

	pg, err := testinfra.NewPostgres(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { pg.Cleanup(ctx) })

	repo := NewPgSettingsRepo(pg.Pool)

	t.Run("save and read round trip", func(t *testing.T) {
		require.NoError(t, pg.Truncate(ctx))

		fields := gateway.Fields{
			gateway.FieldMerchantID: "MID-42",
			gateway.FieldAPIKey:     "key-42",
			gateway.FieldTestMode:   "no",
		}
		require.NoError(t, repo.SaveGatewaySettings(ctx, "kashier_card", fields))

		got, err := repo.GatewaySettings(ctx, "kashier_card")
		require.NoError(t, err)
		assert.Equal(t, fields, got)
	})

	t.Run("upsert overwrites existing values", func(t *testing.T) {
		require.NoError(t, pg.Truncate(ctx))

		require.NoError(t, repo.SaveGatewaySettings(ctx, "kashier_wallet", gateway.Fields{
			gateway.FieldAPIKey: "old",
		}))
		require.NoError(t, repo.SaveGatewaySettings(ctx, "kashier_wallet", gateway.Fields{
			gateway.FieldAPIKey: "new",
		}))

		got, err := repo.GatewaySettings(ctx, "kashier_wallet")
		require.NoError(t, err)
		assert.Equal(t, "new", got[gateway.FieldAPIKey])
	})

	t.Run("unknown gateway yields empty fields", func(t *testing.T) {
		require.NoError(t, pg.Truncate(ctx))

		got, err := repo.GatewaySettings(ctx, "kashier_fawry")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
