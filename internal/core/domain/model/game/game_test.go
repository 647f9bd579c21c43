package game_test

import (
	"strings"
	"testing"
	"time"

	"gamestore/internal/core/domain/model/game"
	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/core/domain/model/promotion"
	"gamestore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T {
	return &v
}

func TestNewGame(t *testing.T) {
	t.Run("creates active game without promotions", func(t *testing.T) {
		id := kernel.NewUUID()
		profile := game.Profile{
			Description: ptr("  Roguelike  "),
			Publisher:   ptr("Supergiant"),
			ReleaseDate: ptr(time.Date(2020, 9, 17, 0, 0, 0, 0, time.UTC)),
		}

		g, err := game.NewGame(id, "  Hades ", profile, kernel.MustMoney("49.99"), now)

		require.NoError(t, err)
		require.NoError(t, g.Validate())
		assert.True(t, g.ID().IsEqual(id))
		assert.Equal(t, "Hades", g.Name())
		assert.Equal(t, "Roguelike", *g.Profile().Description)
		assert.Equal(t, "49.99", g.Price().String())
		assert.True(t, g.IsActive())
		assert.Empty(t, g.Promotions())
		assert.Equal(t, now, g.CreatedAt())
		assert.Nil(t, g.ModifiedAt())
	})

	t.Run("blank optional fields become absent", func(t *testing.T) {
		g, err := game.NewGame(kernel.NewUUID(), "Celeste", game.Profile{Publisher: ptr("   ")}, kernel.MustMoney("10"), now)

		require.NoError(t, err)
		assert.Nil(t, g.Profile().Publisher)
	})

	t.Run("reports every broken rule", func(t *testing.T) {
		var noPrice kernel.Money
		profile := game.Profile{Description: ptr(strings.Repeat("d", game.DescriptionMaxLength+1))}

		g, err := game.NewGame(kernel.NewUUID(), " ", profile, noPrice, now)

		assert.Nil(t, g)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "description length")
		assert.Contains(t, err.Error(), "money must be created")
	})

	t.Run("rejects name over limit", func(t *testing.T) {
		_, err := game.NewGame(kernel.NewUUID(), strings.Repeat("n", game.NameMaxLength+1), game.Profile{}, kernel.MustMoney("1"), now)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestGame_Alter(t *testing.T) {
	g, err := game.NewGame(kernel.NewUUID(), "Hades", game.Profile{}, kernel.MustMoney("49.99"), now)
	require.NoError(t, err)
	later := now.Add(time.Hour)

	t.Run("failed alter keeps previous state", func(t *testing.T) {
		err := g.Alter("", game.Profile{}, kernel.MustMoney("10"), later)

		require.Error(t, err)
		assert.Equal(t, "Hades", g.Name())
		assert.Equal(t, "49.99", g.Price().String())
		assert.Nil(t, g.ModifiedAt())
	})

	t.Run("reprices and stamps modification", func(t *testing.T) {
		err := g.Alter("Hades II", game.Profile{Publisher: ptr("Supergiant")}, kernel.MustMoney("29.99"), later)

		require.NoError(t, err)
		assert.Equal(t, "Hades II", g.Name())
		assert.Equal(t, "29.99", g.Price().String())
		assert.Equal(t, later, *g.ModifiedAt())
	})
}

func TestGame_ActivateDeactivate(t *testing.T) {
	g, err := game.NewGame(kernel.NewUUID(), "Hades", game.Profile{}, kernel.MustMoney("49.99"), now)
	require.NoError(t, err)

	g.Deactivate(now.Add(time.Minute))
	assert.False(t, g.IsActive())
	assert.Equal(t, now.Add(time.Minute), *g.ModifiedAt())

	g.Activate(now.Add(2 * time.Minute))
	assert.True(t, g.IsActive())
	assert.Equal(t, now.Add(2*time.Minute), *g.ModifiedAt())
}

func TestRestoreGame(t *testing.T) {
	id := kernel.NewUUID()
	own, err := promotion.NewPromotion(kernel.NewUUID(), id, kernel.MustMoney("40"), now, now.Add(time.Hour), now)
	require.NoError(t, err)

	t.Run("restores promotions of the game", func(t *testing.T) {
		g, err := game.RestoreGame(id, "Hades", game.Profile{}, kernel.MustMoney("49.99"), false, now, nil,
			[]*promotion.Promotion{own})

		require.NoError(t, err)
		assert.False(t, g.IsActive())
		require.Len(t, g.Promotions(), 1)
		assert.True(t, g.Promotions()[0].IsEqual(own))
	})

	t.Run("rejects foreign promotion", func(t *testing.T) {
		foreign, err := promotion.NewPromotion(kernel.NewUUID(), kernel.NewUUID(), kernel.MustMoney("40"), now, now.Add(time.Hour), now)
		require.NoError(t, err)

		_, err = game.RestoreGame(id, "Hades", game.Profile{}, kernel.MustMoney("49.99"), true, now, nil,
			[]*promotion.Promotion{own, foreign})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("promotions accessor returns a copy", func(t *testing.T) {
		g, err := game.RestoreGame(id, "Hades", game.Profile{}, kernel.MustMoney("49.99"), true, now, nil,
			[]*promotion.Promotion{own})
		require.NoError(t, err)

		list := g.Promotions()
		list[0] = nil

		assert.NotNil(t, g.Promotions()[0])
	})
}
