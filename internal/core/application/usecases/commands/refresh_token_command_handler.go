package commands

import (
	"context"

	"gamestore/internal/core/ports"
	"gamestore/internal/pkg/errs"
)

// RefreshTokenCommandHandler trades a refresh token for a new token pair. A
// refresh token works once; a replayed or expired one is a validation error.
//
// Example:
//
//	handler := NewRefreshTokenCommandHandler(identityGateway)
//	cmd, _ := NewRefreshTokenCommand(req.RefreshToken)
//
//	tokens, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrValidation) {
//	    // session expired, log in again
//	}
type RefreshTokenCommandHandler struct {
	identity ports.IdentityGateway
}

func NewRefreshTokenCommandHandler(identity ports.IdentityGateway) RefreshTokenCommandHandler {
	return RefreshTokenCommandHandler{
		identity: identity,
	}
}

// Handle fails with errs.ValidationError when the token is expired, was
// already used or its session was revoked.
func (h RefreshTokenCommandHandler) Handle(ctx context.Context, cmd RefreshTokenCommand) (ports.TokenResult, error) {
	if err := cmd.Validate(); err != nil {
		return ports.TokenResult{}, err
	}

	result := h.identity.Refresh(ctx, cmd.RefreshToken())
	if !result.Succeeded {
		return ports.TokenResult{}, errs.NewValidationError(result.Errors...)
	}

	return result, nil
}
