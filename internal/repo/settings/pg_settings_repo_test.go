//go:build !integration

package settings_repo

import (
	"context"
	"errors"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Khaled152/tutor-kashier-integration/internal/domain/gateway"
)

func TestGatewaySettings(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &repo{db: mock, builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}
	ctx := context.Background()

	t.Run("should return stored fields", func(t *testing.T) {
		rows := mock.NewRows([]string{"name", "value"}).
			AddRow("merchant_id", "MID-123").
			AddRow("api_key", "secret").
			AddRow("test_mode", "no")

		mock.ExpectQuery(`SELECT name, value FROM gateway_settings WHERE gateway_key = \$1`).
			WithArgs("kashier_card").
			WillReturnRows(rows)

		fields, err := repo.GatewaySettings(ctx, "kashier_card")

		require.NoError(t, err)
		assert.Equal(t, gateway.Fields{
			"merchant_id": "MID-123",
			"api_key":     "secret",
			"test_mode":   "no",
		}, fields)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should return empty fields for unconfigured gateway", func(t *testing.T) {
		rows := mock.NewRows([]string{"name", "value"})

		mock.ExpectQuery(`SELECT name, value FROM gateway_settings WHERE gateway_key = \$1`).
			WithArgs("kashier_valu").
			WillReturnRows(rows)

		fields, err := repo.GatewaySettings(ctx, "kashier_valu")

		require.NoError(t, err)
		assert.Empty(t, fields)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should wrap query errors", func(t *testing.T) {
		mock.ExpectQuery(`SELECT name, value FROM gateway_settings WHERE gateway_key = \$1`).
			WithArgs("kashier_card").
			WillReturnError(errors.New("connection closed"))

		fields, err := repo.GatewaySettings(ctx, "kashier_card")

		assert.Nil(t, fields)
		assert.ErrorContains(t, err, "query gateway settings")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSaveGatewaySettings(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &repo{db: mock, builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}
	ctx := context.Background()

	t.Run("should upsert each field", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO gateway_settings \(gateway_key,name,value\) VALUES \(\$1,\$2,\$3\) ON CONFLICT \(gateway_key, name\) DO UPDATE SET value = EXCLUDED\.value`).
			WithArgs("kashier_wallet", "merchant_id", "MID-9").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.SaveGatewaySettings(ctx, "kashier_wallet", gateway.Fields{"merchant_id": "MID-9"})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should wrap exec errors", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO gateway_settings`).
			WithArgs("kashier_wallet", "api_key", "k").
			WillReturnError(errors.New("deadlock"))

		err := repo.SaveGatewaySettings(ctx, "kashier_wallet", gateway.Fields{"api_key": "k"})

		assert.ErrorContains(t, err, `save gateway setting "api_key"`)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
