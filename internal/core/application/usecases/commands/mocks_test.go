package commands_test

import (
	"context"
	"testing"
	"time"

	"gamestore/internal/core/application/usecases/commands"
	"gamestore/internal/core/domain/model/game"
	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/core/domain/model/owner"
	"gamestore/internal/core/domain/model/promotion"
	"gamestore/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

var fixedClock = kernel.ClockFunc(func() time.Time { return now })

type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) Add(ctx context.Context, aggregate *game.Game) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockGameRepository) Update(ctx context.Context, aggregate *game.Game) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockGameRepository) Remove(ctx context.Context, aggregate *game.Game) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockGameRepository) Get(ctx context.Context, id kernel.UUID) (*game.Game, error) {
	args := m.Called(ctx, id)
	g, _ := args.Get(0).(*game.Game)
	return g, args.Error(1)
}

func (m *MockGameRepository) ExistsByName(
	ctx context.Context,
	name string,
	publisher *string,
	releaseDate *time.Time,
) (bool, error) {
	args := m.Called(ctx, name, publisher, releaseDate)
	return args.Bool(0), args.Error(1)
}

type MockPromotionRepository struct {
	mock.Mock
}

func (m *MockPromotionRepository) Add(ctx context.Context, aggregate *promotion.Promotion) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPromotionRepository) Update(ctx context.Context, aggregate *promotion.Promotion) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPromotionRepository) Remove(ctx context.Context, aggregate *promotion.Promotion) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPromotionRepository) Get(ctx context.Context, id kernel.UUID) (*promotion.Promotion, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*promotion.Promotion)
	return p, args.Error(1)
}

func (m *MockPromotionRepository) HasOverlappingPromotion(
	ctx context.Context,
	gameID kernel.UUID,
	start, end time.Time,
) (bool, error) {
	args := m.Called(ctx, gameID, start, end)
	return args.Bool(0), args.Error(1)
}

type MockOwnerRepository struct {
	mock.Mock
}

func (m *MockOwnerRepository) Add(ctx context.Context, aggregate *owner.Owner) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOwnerRepository) Update(ctx context.Context, aggregate *owner.Owner) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOwnerRepository) Remove(ctx context.Context, aggregate *owner.Owner) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOwnerRepository) Get(ctx context.Context, id kernel.UUID) (*owner.Owner, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*owner.Owner)
	return o, args.Error(1)
}

func (m *MockOwnerRepository) GetByEmail(ctx context.Context, email string) (*owner.Owner, error) {
	args := m.Called(ctx, email)
	o, _ := args.Get(0).(*owner.Owner)
	return o, args.Error(1)
}

func (m *MockOwnerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockOwnerRepository) ListHoldingGame(ctx context.Context, gameID kernel.UUID) ([]*owner.Owner, error) {
	args := m.Called(ctx, gameID)
	owners, _ := args.Get(0).([]*owner.Owner)
	return owners, args.Error(1)
}

func (m *MockOwnerRepository) ListReferencingPromotion(
	ctx context.Context,
	promotionID kernel.UUID,
) ([]*owner.Owner, error) {
	args := m.Called(ctx, promotionID)
	owners, _ := args.Get(0).([]*owner.Owner)
	return owners, args.Error(1)
}

// MockUoW serves every narrowed unit of work interface.
type MockUoW struct {
	mock.Mock
}

func (m *MockUoW) Commit(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockUoW) Rollback(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockUoW) GameRepository() ports.GameRepository {
	args := m.Called()
	return args.Get(0).(ports.GameRepository)
}

func (m *MockUoW) PromotionRepository() ports.PromotionRepository {
	args := m.Called()
	return args.Get(0).(ports.PromotionRepository)
}

func (m *MockUoW) OwnerRepository() ports.OwnerRepository {
	args := m.Called()
	return args.Get(0).(ports.OwnerRepository)
}

type MockUoWFactory struct {
	mock.Mock
}

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockCatalogUoWFactory struct {
	mock.Mock
}

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}

type MockIdentityGateway struct {
	mock.Mock
}

func (m *MockIdentityGateway) CreateAccount(ctx context.Context, name, email, secret string) ports.Result {
	args := m.Called(ctx, name, email, secret)
	return args.Get(0).(ports.Result)
}

func (m *MockIdentityGateway) DeleteAccount(ctx context.Context, email string) ports.Result {
	args := m.Called(ctx, email)
	return args.Get(0).(ports.Result)
}

func (m *MockIdentityGateway) ChangeSecret(ctx context.Context, email, current, next string) ports.Result {
	args := m.Called(ctx, email, current, next)
	return args.Get(0).(ports.Result)
}

func (m *MockIdentityGateway) SetRoles(ctx context.Context, email string, roles []ports.Role) ports.Result {
	args := m.Called(ctx, email, roles)
	return args.Get(0).(ports.Result)
}

func (m *MockIdentityGateway) Authenticate(ctx context.Context, email, secret string) ports.TokenResult {
	args := m.Called(ctx, email, secret)
	return args.Get(0).(ports.TokenResult)
}

func (m *MockIdentityGateway) Refresh(ctx context.Context, refreshToken string) ports.TokenResult {
	args := m.Called(ctx, refreshToken)
	return args.Get(0).(ports.TokenResult)
}

func (m *MockIdentityGateway) VerifyAccessToken(ctx context.Context, token string) (ports.Claims, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(ports.Claims), args.Error(1)
}

// newGame builds a game priced at base with the given promotions.
func newGame(t *testing.T, id kernel.UUID, base string, promotions ...*promotion.Promotion) *game.Game {
	t.Helper()
	g, err := game.RestoreGame(id, "Hades", game.Profile{}, kernel.MustMoney(base), true, now, nil, promotions)
	require.NoError(t, err)
	return g
}

func newPromotion(t *testing.T, gameID kernel.UUID, price string, start, end time.Time) *promotion.Promotion {
	t.Helper()
	p, err := promotion.NewPromotion(kernel.NewUUID(), gameID, kernel.MustMoney(price), start, end, now)
	require.NoError(t, err)
	return p
}

func newOwner(t *testing.T, email string) *owner.Owner {
	t.Helper()
	o, err := owner.NewOwner(kernel.NewUUID(), "Ada", email, now)
	require.NoError(t, err)
	return o
}
