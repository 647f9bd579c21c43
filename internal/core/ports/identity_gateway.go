package ports

import (
	"context"
	"errors"
	"slices"
	"time"
)

// Role is an access role held in the identity store.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Known identity failure messages.
const (
	MsgAccountNotFound    = "account not found"
	MsgInvalidCredentials = "invalid credentials"
	MsgIncorrectSecret    = "incorrect password"
)

var ErrInvalidToken = errors.New("invalid token")

// IsKnown reports whether the role is one of the supported roles.
func (r Role) IsKnown() bool {
	return r == RoleUser || r == RoleAdmin
}

// Result is the outcome of an identity-store write. Errors holds
// human-readable reasons when Succeeded is false.
type Result struct {
	Succeeded bool
	Errors    []string
}

func Success() Result {
	return Result{Succeeded: true}
}

func Failure(messages ...string) Result {
	return Result{Errors: messages}
}

// HasError reports whether the failure carries msg.
func (r Result) HasError(msg string) bool {
	return slices.Contains(r.Errors, msg)
}

// TokenResult is the outcome of Authenticate.
type TokenResult struct {
	Result
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

// Claims are the verified contents of an access token.
type Claims struct {
	Email     string
	Name      string
	Roles     []Role
	ExpiresAt time.Time
}

func (c Claims) HasRole(role Role) bool {
	return slices.Contains(c.Roles, role)
}

// IdentityGateway is the identity store. It has its own commit point and
// never takes part in a UnitOfWork.
type IdentityGateway interface {
	// CreateAccount stores a new account with the USER role.
	CreateAccount(ctx context.Context, name, email, secret string) Result

	// DeleteAccount removes the account and revokes its sessions.
	// A missing account fails with MsgAccountNotFound.
	DeleteAccount(ctx context.Context, email string) Result

	// ChangeSecret replaces the credential after checking the current one.
	ChangeSecret(ctx context.Context, email, current, next string) Result

	// SetRoles replaces every role of the account.
	SetRoles(ctx context.Context, email string, roles []Role) Result

	// Authenticate issues an access and a refresh token.
	Authenticate(ctx context.Context, email, secret string) TokenResult

	// Refresh trades a refresh token for a new pair. Each refresh token
	// works once and stops working when the account's secret changes.
	Refresh(ctx context.Context, refreshToken string) TokenResult

	// VerifyAccessToken parses a bearer token. Fails with ErrInvalidToken.
	VerifyAccessToken(ctx context.Context, token string) (Claims, error)
}
