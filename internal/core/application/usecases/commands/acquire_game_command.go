package commands

import (
	"errors"

	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/core/domain/model/owner"
	"gamestore/internal/pkg/errs"
	"gamestore/internal/pkg/guard"
)

var ErrAcquireGameCommandIsNotConstructed = errors.New(
	"AcquireGameCommand must be created via NewAcquireGameCommand constructor",
)

// AcquireGameCommand adds a game to the library of the authenticated owner,
// identified by the e-mail from the access token.
type AcquireGameCommand struct { //nolint:recvcheck //using for validation
	entryID kernel.UUID
	email   string
	gameID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcquireGameCommand normalizes the e-mail and generates the id of the
// library entry.
//
// Example:
//
//	cmd, err := NewAcquireGameCommand(claims.Email, gameID)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cmd.EntryID()) // id the entry will have once committed
func NewAcquireGameCommand(email string, gameID kernel.UUID) (AcquireGameCommand, error) {
	command := AcquireGameCommand{
		entryID: kernel.NewUUID(),
		email:   owner.NormalizeEmail(email),
		guard:   guard.NewConstructorGuard(),
	}

	var emailErr error
	if command.email == "" {
		emailErr = errs.NewValueIsRequiredError("email")
	}
	if err := errs.Validation(emailErr, command.setGameID(gameID)); err != nil {
		return AcquireGameCommand{}, err
	}

	return command, nil
}

func (c AcquireGameCommand) Validate() error {
	return c.guard.Validate(ErrAcquireGameCommandIsNotConstructed)
}

func (c AcquireGameCommand) EntryID() kernel.UUID {
	return c.entryID
}

func (c AcquireGameCommand) Email() string {
	return c.email
}

func (c AcquireGameCommand) GameID() kernel.UUID {
	return c.gameID
}

func (c *AcquireGameCommand) setGameID(id kernel.UUID) error {
	if err := checkID("game id", id); err != nil {
		return err
	}
	c.gameID = id
	return nil
}
