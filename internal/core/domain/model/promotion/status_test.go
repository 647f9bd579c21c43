package promotion_test

import (
	"testing"

	"gamestore/internal/core/domain/model/promotion"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	require.NoError(t, promotion.Active.Validate())
	require.NoError(t, promotion.Inactive.Validate())
	require.Error(t, promotion.Unknown.Validate())
	require.Error(t, promotion.Status(42).Validate())

	assert.Equal(t, "Active", promotion.Active.String())
	assert.Equal(t, "Unknown", promotion.Status(42).String())

	assert.Equal(t, promotion.Active, promotion.StatusFromActive(true))
	assert.Equal(t, promotion.Inactive, promotion.StatusFromActive(false))
}
