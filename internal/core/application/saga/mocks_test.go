package saga_test

import (
	"context"
	"time"

	"gamestore/internal/core/application/usecases/commands"
	"gamestore/internal/core/domain/model/compensation"
	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/core/domain/model/owner"
	"gamestore/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

var fixedClock = kernel.ClockFunc(func() time.Time { return now })

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

type MockOwnerUoW struct {
	mock.Mock
}

func (m *MockOwnerUoW) Commit(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockOwnerUoW) Rollback(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockOwnerUoW) OwnerRepository() ports.OwnerRepository {
	args := m.Called()
	return args.Get(0).(ports.OwnerRepository)
}

type MockOwnerUoWFactory struct {
	mock.Mock
}

func (m *MockOwnerUoWFactory) Create() commands.OwnerUoW {
	args := m.Called()
	return args.Get(0).(commands.OwnerUoW)
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

type MockCompensationLog struct {
	mock.Mock
}

func (m *MockCompensationLog) Record(ctx context.Context, c *compensation.Compensation) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCompensationLog) ListPending(ctx context.Context, limit int) ([]*compensation.Compensation, error) {
	args := m.Called(ctx, limit)
	records, _ := args.Get(0).([]*compensation.Compensation)
	return records, args.Error(1)
}

func (m *MockCompensationLog) Save(ctx context.Context, c *compensation.Compensation) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
