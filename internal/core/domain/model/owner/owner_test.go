package owner_test

import (
	"strings"
	"testing"
	"time"

	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/core/domain/model/owner"
	"gamestore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newOwner(t *testing.T) *owner.Owner {
	t.Helper()
	o, err := owner.NewOwner(kernel.NewUUID(), "Danilo", "Danilo@Example.com ", now)
	require.NoError(t, err)
	return o
}

func TestNewOwner(t *testing.T) {
	t.Run("normalizes email", func(t *testing.T) {
		o := newOwner(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, "danilo@example.com", o.Email())
		assert.Empty(t, o.Library())
	})

	t.Run("reports missing and oversized fields", func(t *testing.T) {
		_, err := owner.NewOwner(kernel.NewUUID(), "", strings.Repeat("a", owner.EmailMaxLength)+"@x.io", now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestOwner_Acquire(t *testing.T) {
	gameID := kernel.NewUUID()
	promotionID := kernel.NewUUID()

	t.Run("captures price and promotion", func(t *testing.T) {
		o := newOwner(t)

		entry, err := o.Acquire(kernel.NewUUID(), gameID, kernel.MustMoney("60.99"), &promotionID, now)

		require.NoError(t, err)
		assert.True(t, o.Owns(gameID))
		assert.Equal(t, "60.99", entry.PurchasePrice().String())
		require.NotNil(t, entry.PromotionID())
		assert.True(t, entry.PromotionID().IsEqual(promotionID))
		assert.True(t, entry.OwnerID().IsEqual(o.ID()))
		assert.Equal(t, now, entry.CreatedAt())
	})

	t.Run("second acquisition of same game fails and keeps one entry", func(t *testing.T) {
		o := newOwner(t)
		_, err := o.Acquire(kernel.NewUUID(), gameID, kernel.MustMoney("75"), nil, now)
		require.NoError(t, err)

		entry, err := o.Acquire(kernel.NewUUID(), gameID, kernel.MustMoney("75"), nil, now)

		assert.Nil(t, entry)
		require.ErrorIs(t, err, owner.ErrAlreadyOwned)
		assert.Len(t, o.Library(), 1)
	})

	t.Run("invalid price leaves library untouched", func(t *testing.T) {
		o := newOwner(t)
		var noPrice kernel.Money

		_, err := o.Acquire(kernel.NewUUID(), gameID, noPrice, nil, now)

		require.Error(t, err)
		assert.Empty(t, o.Library())
	})
}

func TestOwner_ForfeitGame(t *testing.T) {
	o := newOwner(t)
	kept := kernel.NewUUID()
	removed := kernel.NewUUID()
	_, err := o.Acquire(kernel.NewUUID(), kept, kernel.MustMoney("10"), nil, now)
	require.NoError(t, err)
	_, err = o.Acquire(kernel.NewUUID(), removed, kernel.MustMoney("20"), nil, now)
	require.NoError(t, err)

	assert.True(t, o.ForfeitGame(removed))
	assert.False(t, o.ForfeitGame(removed))
	assert.True(t, o.Owns(kept))
	assert.False(t, o.Owns(removed))
	assert.Len(t, o.Library(), 1)
}

func TestOwner_DetachPromotion(t *testing.T) {
	o := newOwner(t)
	promotionID := kernel.NewUUID()
	other := kernel.NewUUID()
	_, err := o.Acquire(kernel.NewUUID(), kernel.NewUUID(), kernel.MustMoney("60.99"), &promotionID, now)
	require.NoError(t, err)
	_, err = o.Acquire(kernel.NewUUID(), kernel.NewUUID(), kernel.MustMoney("30"), &other, now)
	require.NoError(t, err)

	detached := o.DetachPromotion(promotionID)

	assert.Equal(t, 1, detached)
	library := o.Library()
	require.Len(t, library, 2, "entries are never deleted by promotion removal")
	assert.Nil(t, library[0].PromotionID())
	assert.Equal(t, "60.99", library[0].PurchasePrice().String())
	assert.NotNil(t, library[1].PromotionID())
}

func TestRestoreOwner(t *testing.T) {
	id := kernel.NewUUID()
	gameID := kernel.NewUUID()
	entry, err := owner.RestoreLibraryEntry(kernel.NewUUID(), id, gameID, kernel.MustMoney("49.99"), nil, now)
	require.NoError(t, err)

	t.Run("restores library", func(t *testing.T) {
		o, err := owner.RestoreOwner(id, "Admin", "admin@example.com", now, nil, []*owner.LibraryEntry{entry})

		require.NoError(t, err)
		assert.True(t, o.Owns(gameID))
	})

	t.Run("rejects entry of another owner", func(t *testing.T) {
		_, err := owner.RestoreOwner(kernel.NewUUID(), "Admin", "admin@example.com", now, nil, []*owner.LibraryEntry{entry})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects duplicate game", func(t *testing.T) {
		dup, err := owner.RestoreLibraryEntry(kernel.NewUUID(), id, gameID, kernel.MustMoney("10"), nil, now)
		require.NoError(t, err)

		_, err = owner.RestoreOwner(id, "Admin", "admin@example.com", now, nil, []*owner.LibraryEntry{entry, dup})

		require.ErrorIs(t, err, owner.ErrAlreadyOwned)
	})
}

func TestOwner_Rename(t *testing.T) {
	o := newOwner(t)

	require.Error(t, o.Rename("  ", now))
	assert.Equal(t, "Danilo", o.Name())

	require.NoError(t, o.Rename("Danilo S.", now.Add(time.Hour)))
	assert.Equal(t, "Danilo S.", o.Name())
	assert.Equal(t, now.Add(time.Hour), *o.ModifiedAt())
}
