package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
)

// Mocks

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) Get(ctx context.Context, sessionID string) ([]entities.CartItem, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.CartItem), args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, sessionID string, items []entities.CartItem) error {
	args := m.Called(ctx, sessionID, items)
	return args.Error(0)
}

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) GetProduct(ctx context.Context, id string) (*entities.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Product), args.Error(1)
}

func (m *MockCatalogRepository) ListLabPackages(ctx context.Context) ([]entities.LabPackage, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.LabPackage), args.Error(1)
}

func (m *MockCatalogRepository) ListSubscriptionPlans(ctx context.Context) ([]entities.SubscriptionPlan, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.SubscriptionPlan), args.Error(1)
}

func (m *MockCatalogRepository) ListLanguages(ctx context.Context) ([]entities.Language, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.Language), args.Error(1)
}

type MockEventBus struct {
	mock.Mock
}

func (m *MockEventBus) Publish(ctx context.Context, channel string, event *entities.CartEvent) error {
	args := m.Called(ctx, channel, event)
	return args.Error(0)
}

func (m *MockEventBus) Subscribe(ctx context.Context, channel string) (<-chan *entities.CartEvent, error) {
	args := m.Called(ctx, channel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan *entities.CartEvent), args.Error(1)
}

func (m *MockEventBus) Unsubscribe(ctx context.Context, channel string) error {
	args := m.Called(ctx, channel)
	return args.Error(0)
}

func (m *MockEventBus) Close() error {
	args := m.Called()
	return args.Error(0)
}

type MockCacheProvider struct {
	mock.Mock
}

func (m *MockCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheProvider) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	args := m.Called(ctx, key, value, expirationSeconds)
	return args.Error(0)
}

func (m *MockCacheProvider) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheProvider) DeletePattern(ctx context.Context, pattern string) error {
	args := m.Called(ctx, pattern)
	return args.Error(0)
}

func (m *MockCacheProvider) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entities.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) List(ctx context.Context) ([]entities.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Order), args.Error(1)
}

type MockClaimRepository struct {
	mock.Mock
}

func (m *MockClaimRepository) Create(ctx context.Context, claim *entities.InsuranceClaim) error {
	args := m.Called(ctx, claim)
	return args.Error(0)
}

func (m *MockClaimRepository) List(ctx context.Context) ([]entities.InsuranceClaim, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.InsuranceClaim), args.Error(1)
}

type MockInsurancePlanRepository struct {
	mock.Mock
}

func (m *MockInsurancePlanRepository) GetPlan(ctx context.Context) (*entities.InsurancePlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.InsurancePlan), args.Error(1)
}

func (m *MockInsurancePlanRepository) ListBenefits(ctx context.Context) ([]entities.CoverageBenefit, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.CoverageBenefit), args.Error(1)
}

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *entities.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) List(ctx context.Context) ([]entities.Appointment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Appointment), args.Error(1)
}

type MockHealthRepository struct {
	mock.Mock
}

func (m *MockHealthRepository) ListMetrics(ctx context.Context) ([]entities.HealthMetric, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.HealthMetric), args.Error(1)
}

func (m *MockHealthRepository) Activity(ctx context.Context, period entities.Period) ([]entities.ActivityPoint, error) {
	args := m.Called(ctx, period)
	return args.Get(0).([]entities.ActivityPoint), args.Error(1)
}

func (m *MockHealthRepository) ListGoals(ctx context.Context) ([]entities.HealthGoal, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.HealthGoal), args.Error(1)
}

func (m *MockHealthRepository) Today(ctx context.Context) (*entities.DailySummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.DailySummary), args.Error(1)
}

type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) List(ctx context.Context, sessionID string) ([]entities.Document, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).([]entities.Document), args.Error(1)
}

func (m *MockDocumentRepository) Add(ctx context.Context, sessionID string, doc *entities.Document) error {
	args := m.Called(ctx, sessionID, doc)
	return args.Error(0)
}

type MockLocationSearchProvider struct {
	mock.Mock
}

func (m *MockLocationSearchProvider) IndexLocation(ctx context.Context, kind entities.LocationKind, location *entities.Location) error {
	args := m.Called(ctx, kind, location)
	return args.Error(0)
}

func (m *MockLocationSearchProvider) DeleteLocation(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLocationSearchProvider) SearchLocations(ctx context.Context, kind entities.LocationKind, query string) ([]entities.Location, error) {
	args := m.Called(ctx, kind, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Location), args.Error(1)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetHealthCard(ctx context.Context, sessionID string) (*entities.HealthCard, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.HealthCard), args.Error(1)
}

// UpdateHealthCard applies apply to the card configured as the first return value
func (m *MockProfileRepository) UpdateHealthCard(
	ctx context.Context,
	sessionID string,
	apply func(entities.HealthCard) entities.HealthCard,
) (*entities.HealthCard, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	updated := apply(*args.Get(0).(*entities.HealthCard))
	return &updated, args.Error(1)
}

func (m *MockProfileRepository) ListFamilyMembers(ctx context.Context) ([]entities.FamilyMember, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.FamilyMember), args.Error(1)
}

func (m *MockProfileRepository) ListPaymentOptions(ctx context.Context) ([]entities.PaymentOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.PaymentOption), args.Error(1)
}
