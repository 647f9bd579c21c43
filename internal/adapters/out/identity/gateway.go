package identity

import (
	"context"
	"errors"

	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/core/domain/model/owner"
	"gamestore/internal/core/ports"
	"gamestore/internal/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	msgEmailTaken     = "email is already registered"
	msgUnexpected     = "the identity store could not complete the request, try again later"
	msgUnknownRole    = "unknown role"
	msgSessionExpired = "session expired"
)

// Gateway implements ports.IdentityGateway on its own GORM connection.
// Every method commits on its own; none of them joins a caller transaction.
type Gateway struct {
	db       *gorm.DB
	sessions SessionStore
	tokens   *TokenIssuer
	clock    kernel.Clock
	cost     int
	log      *logger.Logger
}

type Option func(*Gateway)

// WithBcryptCost overrides bcrypt.DefaultCost.
func WithBcryptCost(cost int) Option {
	return func(g *Gateway) {
		g.cost = cost
	}
}

func NewGateway(
	db *gorm.DB,
	sessions SessionStore,
	tokens *TokenIssuer,
	clock kernel.Clock,
	log *logger.Logger,
	opts ...Option,
) *Gateway {
	g := &Gateway{
		db:       db,
		sessions: sessions,
		tokens:   tokens,
		clock:    clock,
		cost:     bcrypt.DefaultCost,
		log:      log.With("component", "identity"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Gateway) CreateAccount(ctx context.Context, name, email, secret string) ports.Result {
	email = owner.NormalizeEmail(email)

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), g.cost)
	if err != nil {
		// bcrypt rejects secrets longer than 72 bytes
		return ports.Failure(err.Error())
	}

	now := g.clock.Now().UTC()
	account := AccountDTO{
		ID:         uuid.New(),
		Name:       name,
		Email:      email,
		SecretHash: string(hash),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&account).Error; err != nil {
			return err
		}
		return tx.Create(&AccountRoleDTO{AccountID: account.ID, Role: string(ports.RoleUser)}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ports.Failure(msgEmailTaken)
		}
		g.log.Error("create account failed", "email", email, "error", err)
		return ports.Failure(msgUnexpected)
	}

	return ports.Success()
}

func (g *Gateway) DeleteAccount(ctx context.Context, email string) ports.Result {
	account, result := g.find(ctx, email)
	if !result.Succeeded {
		return result
	}

	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("account_id = ?", account.ID).Delete(&AccountRoleDTO{}).Error; err != nil {
			return err
		}
		return tx.Delete(&AccountDTO{}, "id = ?", account.ID).Error
	})
	if err != nil {
		g.log.Error("delete account failed", "email", account.Email, "error", err)
		return ports.Failure(msgUnexpected)
	}

	g.revokeSessions(ctx, account.Email)
	return ports.Success()
}

func (g *Gateway) ChangeSecret(ctx context.Context, email, current, next string) ports.Result {
	account, result := g.find(ctx, email)
	if !result.Succeeded {
		return result
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.SecretHash), []byte(current)); err != nil {
		return ports.Failure(ports.MsgIncorrectSecret)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), g.cost)
	if err != nil {
		return ports.Failure(err.Error())
	}

	err = g.db.WithContext(ctx).
		Model(&AccountDTO{}).
		Where("id = ?", account.ID).
		Updates(map[string]any{"secret_hash": string(hash), "updated_at": g.clock.Now().UTC()}).Error
	if err != nil {
		g.log.Error("change secret failed", "email", account.Email, "error", err)
		return ports.Failure(msgUnexpected)
	}

	g.revokeSessions(ctx, account.Email)
	return ports.Success()
}

// SetRoles replaces all roles of the account. Open sessions keep working;
// the new roles show up in the next access token.
func (g *Gateway) SetRoles(ctx context.Context, email string, roles []ports.Role) ports.Result {
	for _, r := range roles {
		if !r.IsKnown() {
			return ports.Failure(msgUnknownRole + ": " + string(r))
		}
	}

	account, result := g.find(ctx, email)
	if !result.Succeeded {
		return result
	}

	grants := make([]AccountRoleDTO, 0, len(roles))
	seen := make(map[ports.Role]struct{}, len(roles))
	for _, r := range roles {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		grants = append(grants, AccountRoleDTO{AccountID: account.ID, Role: string(r)})
	}

	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("account_id = ?", account.ID).Delete(&AccountRoleDTO{}).Error; err != nil {
			return err
		}
		if len(grants) == 0 {
			return nil
		}
		return tx.Create(&grants).Error
	})
	if err != nil {
		g.log.Error("set roles failed", "email", account.Email, "error", err)
		return ports.Failure(msgUnexpected)
	}

	return ports.Success()
}

// Authenticate checks the credential and opens a refresh session.
// Unknown e-mail and wrong secret fail identically.
func (g *Gateway) Authenticate(ctx context.Context, email, secret string) ports.TokenResult {
	account, result := g.find(ctx, email)
	if !result.Succeeded {
		if result.HasError(ports.MsgAccountNotFound) {
			return ports.TokenResult{Result: ports.Failure(ports.MsgInvalidCredentials)}
		}
		return ports.TokenResult{Result: result}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.SecretHash), []byte(secret)); err != nil {
		return ports.TokenResult{Result: ports.Failure(ports.MsgInvalidCredentials)}
	}

	return g.openSession(ctx, account)
}

// Refresh exchanges a refresh token for a new token pair. The old session is
// consumed before anything is issued, so each refresh token works once even
// under concurrent use.
func (g *Gateway) Refresh(ctx context.Context, refreshToken string) ports.TokenResult {
	claims, err := g.tokens.parse(refreshToken, kindRefresh)
	if err != nil {
		return ports.TokenResult{Result: ports.Failure(msgSessionExpired)}
	}

	consumed, err := g.sessions.Consume(ctx, claims.Email, claims.ID)
	if err != nil {
		g.log.Error("session lookup failed", "email", claims.Email, "error", err)
		return ports.TokenResult{Result: ports.Failure(msgUnexpected)}
	}
	if !consumed {
		return ports.TokenResult{Result: ports.Failure(msgSessionExpired)}
	}

	account, result := g.find(ctx, claims.Email)
	if !result.Succeeded {
		return ports.TokenResult{Result: ports.Failure(msgSessionExpired)}
	}

	return g.openSession(ctx, account)
}

func (g *Gateway) VerifyAccessToken(_ context.Context, token string) (ports.Claims, error) {
	return g.tokens.VerifyAccess(token)
}

func (g *Gateway) openSession(ctx context.Context, account AccountDTO) ports.TokenResult {
	issued, err := g.tokens.issue(account)
	if err != nil {
		g.log.Error("sign tokens failed", "email", account.Email, "error", err)
		return ports.TokenResult{Result: ports.Failure(msgUnexpected)}
	}

	ttl := issued.refreshExpiresAt.Sub(g.clock.Now())
	if err = g.sessions.Open(ctx, account.Email, issued.refreshID, ttl); err != nil {
		g.log.Error("open session failed", "email", account.Email, "error", err)
		return ports.TokenResult{Result: ports.Failure(msgUnexpected)}
	}

	return ports.TokenResult{
		Result:           ports.Success(),
		AccessToken:      issued.access,
		RefreshToken:     issued.refresh,
		AccessExpiresAt:  issued.accessExpiresAt,
		RefreshExpiresAt: issued.refreshExpiresAt,
	}
}

func (g *Gateway) find(ctx context.Context, email string) (AccountDTO, ports.Result) {
	var account AccountDTO
	err := g.db.WithContext(ctx).
		Preload("Roles").
		First(&account, "email = ?", owner.NormalizeEmail(email)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AccountDTO{}, ports.Failure(ports.MsgAccountNotFound)
		}
		g.log.Error("account lookup failed", "error", err)
		return AccountDTO{}, ports.Failure(msgUnexpected)
	}
	return account, ports.Success()
}

// revokeSessions is best effort; failures are only logged.
func (g *Gateway) revokeSessions(ctx context.Context, email string) {
	if err := g.sessions.CloseAll(ctx, email); err != nil {
		g.log.Warn("revoke sessions failed", "email", email, "error", err)
	}
}
