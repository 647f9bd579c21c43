package commands

import (
	"context"

	"gamestore/internal/core/ports"
	"gamestore/internal/pkg/errs"
)

// AuthenticateCommandHandler exchanges credentials for an access token and a
// refresh token.
//
// Example:
//
//	handler := NewAuthenticateCommandHandler(identityGateway)
//	cmd, _ := NewAuthenticateCommand("ana@example.com", "Secr3t!pass")
//
//	tokens, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err // invalid credentials come back as a validation error
//	}
//	fmt.Println(tokens.AccessToken, tokens.RefreshToken)
type AuthenticateCommandHandler struct {
	identity ports.IdentityGateway
}

func NewAuthenticateCommandHandler(identity ports.IdentityGateway) AuthenticateCommandHandler {
	return AuthenticateCommandHandler{
		identity: identity,
	}
}

// Handle returns errs.ValidationError with ports.MsgInvalidCredentials for
// an unknown e-mail or a wrong password alike.
func (h AuthenticateCommandHandler) Handle(ctx context.Context, cmd AuthenticateCommand) (ports.TokenResult, error) {
	if err := cmd.Validate(); err != nil {
		return ports.TokenResult{}, err
	}

	result := h.identity.Authenticate(ctx, cmd.Email(), cmd.Secret())
	if !result.Succeeded {
		return ports.TokenResult{}, errs.NewValidationError(result.Errors...)
	}

	return result, nil
}
