package commands_test

import (
	"testing"
	"time"

	"gamestore/internal/core/application/usecases/commands"
	"gamestore/internal/core/ports"
	"gamestore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticateCommandHandler_Handle(t *testing.T) {
	t.Run("returns the token pair", func(t *testing.T) {
		// Arrange
		ctx := testContext(t)
		cmd, err := commands.NewAuthenticateCommand("Ada@Example.com", "Str0ng!Pass")
		require.NoError(t, err)

		tokens := ports.TokenResult{
			Result:          ports.Success(),
			AccessToken:     "access",
			RefreshToken:    "refresh",
			AccessExpiresAt: now.Add(time.Hour),
		}
		gateway := new(MockIdentityGateway)
		gateway.On("Authenticate", ctx, "ada@example.com", "Str0ng!Pass").Return(tokens).Once()

		handler := commands.NewAuthenticateCommandHandler(gateway)

		// Act
		result, err := handler.Handle(ctx, cmd)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "access", result.AccessToken)
		assert.Equal(t, "refresh", result.RefreshToken)
		gateway.AssertExpectations(t)
	})

	t.Run("invalid credentials are a validation error", func(t *testing.T) {
		// Arrange
		ctx := testContext(t)
		cmd, err := commands.NewAuthenticateCommand("ada@example.com", "wrong")
		require.NoError(t, err)

		gateway := new(MockIdentityGateway)
		gateway.On("Authenticate", ctx, "ada@example.com", "wrong").
			Return(ports.TokenResult{Result: ports.Failure(ports.MsgInvalidCredentials)}).Once()

		handler := commands.NewAuthenticateCommandHandler(gateway)

		// Act
		_, err = handler.Handle(ctx, cmd)

		// Assert
		var validation *errs.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, []string{ports.MsgInvalidCredentials}, validation.Messages)
	})
}

func TestChangeSecretCommandHandler_Handle_IncorrectSecret(t *testing.T) {
	// Arrange
	ctx := testContext(t)
	cmd, err := commands.NewChangeSecretCommand("ada@example.com", "Wr0ng!Pass", "N3w!Secret")
	require.NoError(t, err)

	gateway := new(MockIdentityGateway)
	gateway.On("ChangeSecret", ctx, "ada@example.com", "Wr0ng!Pass", "N3w!Secret").
		Return(ports.Failure(ports.MsgIncorrectSecret)).Once()

	handler := commands.NewChangeSecretCommandHandler(gateway)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	var validation *errs.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, []string{ports.MsgIncorrectSecret}, validation.Messages)
	gateway.AssertExpectations(t)
}

func TestRefreshTokenCommandHandler_Handle(t *testing.T) {
	t.Run("empty token is rejected before the gateway", func(t *testing.T) {
		_, err := commands.NewRefreshTokenCommand("  ")

		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("reused token", func(t *testing.T) {
		// Arrange
		ctx := testContext(t)
		cmd, err := commands.NewRefreshTokenCommand("refresh")
		require.NoError(t, err)

		gateway := new(MockIdentityGateway)
		gateway.On("Refresh", ctx, "refresh").
			Return(ports.TokenResult{Result: ports.Failure("session expired")}).Once()

		handler := commands.NewRefreshTokenCommandHandler(gateway)

		// Act
		_, err = handler.Handle(ctx, cmd)

		// Assert
		require.ErrorIs(t, err, errs.ErrValidation)
	})
}
