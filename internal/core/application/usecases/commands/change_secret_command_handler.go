package commands

import (
	"context"

	"gamestore/internal/core/ports"
	"gamestore/internal/pkg/errs"
)

// ChangeSecretCommandHandler forwards a password change to the identity
// store. A wrong current password comes back as a validation error. Open
// sessions of the account are revoked by the gateway.
//
// Example:
//
//	handler := NewChangeSecretCommandHandler(identityGateway)
//	cmd, _ := NewChangeSecretCommand(claims.Email, "Secr3t!pass", "N3w!secret")
//	err := handler.Handle(ctx, cmd)
type ChangeSecretCommandHandler struct {
	identity ports.IdentityGateway
}

func NewChangeSecretCommandHandler(identity ports.IdentityGateway) ChangeSecretCommandHandler {
	return ChangeSecretCommandHandler{
		identity: identity,
	}
}

func (h ChangeSecretCommandHandler) Handle(ctx context.Context, cmd ChangeSecretCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	result := h.identity.ChangeSecret(ctx, cmd.Email(), cmd.Current(), cmd.Next())
	if !result.Succeeded {
		return errs.NewValidationError(result.Errors...)
	}

	return nil
}
