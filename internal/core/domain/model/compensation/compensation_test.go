package compensation_test

import (
	"errors"
	"testing"
	"time"

	"gamestore/internal/core/domain/model/compensation"
	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestNewCompensation(t *testing.T) {
	t.Run("starts pending", func(t *testing.T) {
		c, err := compensation.NewCompensation(kernel.NewUUID(), compensation.KindDeleteIdentityAccount,
			"ana@example.com", map[string]any{"reason": "owner commit failed"}, now)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.IsPending())
		assert.Equal(t, 0, c.Attempts())
		assert.Equal(t, "owner commit failed", c.Payload()["reason"])
	})

	t.Run("rejects unknown kind and empty subject", func(t *testing.T) {
		_, err := compensation.NewCompensation(kernel.NewUUID(), compensation.Kind("drop_tables"), " ", nil, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestCompensation_Attempts(t *testing.T) {
	c, err := compensation.NewCompensation(kernel.NewUUID(), compensation.KindDeleteIdentityAccount, "ana@example.com", nil, now)
	require.NoError(t, err)

	for i := 1; i < compensation.MaxAttempts; i++ {
		c.MarkAttemptFailed(errors.New("identity store unavailable"), now.Add(time.Duration(i)*time.Minute))
		assert.True(t, c.IsPending(), "attempt %d", i)
	}

	c.MarkAttemptFailed(errors.New("identity store unavailable"), now.Add(time.Hour))

	assert.Equal(t, compensation.StatusFailed, c.Status())
	assert.Equal(t, compensation.MaxAttempts, c.Attempts())
	assert.Equal(t, "identity store unavailable", c.LastError())
	assert.Equal(t, now.Add(time.Hour), c.UpdatedAt())
}

func TestCompensation_MarkDone(t *testing.T) {
	c, err := compensation.NewCompensation(kernel.NewUUID(), compensation.KindDeleteIdentityAccount, "ana@example.com", nil, now)
	require.NoError(t, err)
	c.MarkAttemptFailed(errors.New("timeout"), now)

	c.MarkDone(now.Add(time.Minute))

	assert.Equal(t, compensation.StatusDone, c.Status())
	assert.Equal(t, 2, c.Attempts())
	assert.Empty(t, c.LastError())
}

func TestRestoreCompensation(t *testing.T) {
	_, err := compensation.RestoreCompensation(kernel.NewUUID(), compensation.KindDeleteIdentityAccount,
		"ana@example.com", nil, compensation.Status("lost"), 0, "", now, now)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
