package identity

import (
	"errors"
	"fmt"
	"time"

	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	kindAccess  = "access"
	kindRefresh = "refresh"
)

// TokenConfig configures HS256 token signing.
type TokenConfig struct {
	Secret     []byte
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func (c TokenConfig) validate() error {
	if len(c.Secret) < 16 {
		return errors.New("token secret must be at least 16 bytes")
	}
	if c.AccessTTL <= 0 || c.RefreshTTL <= 0 {
		return errors.New("token ttl must be positive")
	}
	return nil
}

type tokenClaims struct {
	Name  string   `json:"name,omitempty"`
	Email string   `json:"email"`
	Roles []string `json:"roles,omitempty"`
	Kind  string   `json:"kind"`
	jwt.RegisteredClaims
}

type issuedTokens struct {
	access           string
	accessExpiresAt  time.Time
	refresh          string
	refreshID        string
	refreshExpiresAt time.Time
}

// TokenIssuer signs and verifies access and refresh tokens. Refresh tokens
// carry no roles; roles are re-read from the store on refresh.
type TokenIssuer struct {
	cfg   TokenConfig
	clock kernel.Clock
}

func NewTokenIssuer(cfg TokenConfig, clock kernel.Clock) (*TokenIssuer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &TokenIssuer{cfg: cfg, clock: clock}, nil
}

func (i *TokenIssuer) issue(account AccountDTO) (issuedTokens, error) {
	now := i.clock.Now()
	roles := make([]string, 0, len(account.Roles))
	for _, r := range account.Roles {
		roles = append(roles, r.Role)
	}

	out := issuedTokens{
		accessExpiresAt:  now.Add(i.cfg.AccessTTL),
		refreshID:        uuid.NewString(),
		refreshExpiresAt: now.Add(i.cfg.RefreshTTL),
	}

	var err error
	out.access, err = i.sign(tokenClaims{
		Name:             account.Name,
		Email:            account.Email,
		Roles:            roles,
		Kind:             kindAccess,
		RegisteredClaims: i.registered(account, uuid.NewString(), now, out.accessExpiresAt),
	})
	if err != nil {
		return issuedTokens{}, err
	}

	out.refresh, err = i.sign(tokenClaims{
		Email:            account.Email,
		Kind:             kindRefresh,
		RegisteredClaims: i.registered(account, out.refreshID, now, out.refreshExpiresAt),
	})
	if err != nil {
		return issuedTokens{}, err
	}

	return out, nil
}

func (i *TokenIssuer) registered(account AccountDTO, id string, now, expiresAt time.Time) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		ID:        id,
		Issuer:    i.cfg.Issuer,
		Subject:   account.ID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
}

func (i *TokenIssuer) sign(claims tokenClaims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.cfg.Secret)
}

// parse verifies signature, issuer, expiry and token kind.
func (i *TokenIssuer) parse(token, kind string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return i.cfg.Secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.cfg.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.clock.Now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.Kind != kind {
		return nil, ports.ErrInvalidToken
	}
	return claims, nil
}

// VerifyAccess returns the claims of a valid access token.
func (i *TokenIssuer) VerifyAccess(token string) (ports.Claims, error) {
	claims, err := i.parse(token, kindAccess)
	if err != nil {
		return ports.Claims{}, err
	}

	roles := make([]ports.Role, 0, len(claims.Roles))
	for _, r := range claims.Roles {
		roles = append(roles, ports.Role(r))
	}

	out := ports.Claims{
		Email: claims.Email,
		Name:  claims.Name,
		Roles: roles,
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
