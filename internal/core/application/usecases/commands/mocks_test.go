package commands_test

import (
	"context"
	"time"

	"requisitions/internal/core/application/usecases/commands"
	"requisitions/internal/core/domain/model/catalog"
	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/core/domain/model/location"
	"requisitions/internal/core/domain/model/order"
	"requisitions/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockHistoryRepository struct{ mock.Mock }

func (m *MockHistoryRepository) Record(ctx context.Context, entry order.HistoryEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockHistoryRepository) HistoryFor(ctx context.Context, id kernel.UUID) ([]order.HistoryEntry, error) {
	args := m.Called(ctx, id)
	entries, _ := args.Get(0).([]order.HistoryEntry)
	return entries, args.Error(1)
}

type MockBindingRepository struct{ mock.Mock }

func (m *MockBindingRepository) Get(ctx context.Context, userID kernel.UUID) (*location.Binding, error) {
	args := m.Called(ctx, userID)
	b, _ := args.Get(0).(*location.Binding)
	return b, args.Error(1)
}

func (m *MockBindingRepository) Save(ctx context.Context, b *location.Binding) error {
	return m.Called(ctx, b).Error(0)
}

type MockLocationRepository struct{ mock.Mock }

func (m *MockLocationRepository) Add(ctx context.Context, l *location.Location) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockLocationRepository) Get(ctx context.Context, id kernel.UUID) (*location.Location, error) {
	args := m.Called(ctx, id)
	l, _ := args.Get(0).(*location.Location)
	return l, args.Error(1)
}

func (m *MockLocationRepository) GetByName(ctx context.Context, name string) (*location.Location, error) {
	args := m.Called(ctx, name)
	l, _ := args.Get(0).(*location.Location)
	return l, args.Error(1)
}

func (m *MockLocationRepository) List(ctx context.Context) ([]*location.Location, error) {
	args := m.Called(ctx)
	l, _ := args.Get(0).([]*location.Location)
	return l, args.Error(1)
}

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) Add(ctx context.Context, r *catalog.Requisition) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockCatalogRepository) GetProducts(ctx context.Context, ids []kernel.UUID) ([]*catalog.Product, error) {
	args := m.Called(ctx, ids)
	p, _ := args.Get(0).([]*catalog.Product)
	return p, args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, messages ...ports.OutboxMessage) error {
	return m.Called(ctx, messages).Error(0)
}

func (m *MockOutboxRepository) GetUnsent(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	messages, _ := args.Get(0).([]ports.OutboxMessage)
	return messages, args.Error(1)
}

func (m *MockOutboxRepository) MarkSent(ctx context.Context, ids []kernel.UUID, sentAt time.Time) error {
	return m.Called(ctx, ids, sentAt).Error(0)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, messages ...ports.OutboxMessage) error {
	return m.Called(ctx, messages).Error(0)
}

type MockObserver struct{ mock.Mock }

func (m *MockObserver) OrderTransitioned(status order.Status) {
	m.Called(status)
}

// MockUoW serves every unit of work flavour used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) StatusHistoryRepository() ports.StatusHistoryRepository {
	return m.Called().Get(0).(ports.StatusHistoryRepository)
}

func (m *MockUoW) BindingRepository() ports.BindingRepository {
	return m.Called().Get(0).(ports.BindingRepository)
}

func (m *MockUoW) LocationRepository() ports.LocationRepository {
	return m.Called().Get(0).(ports.LocationRepository)
}

func (m *MockUoW) CatalogRepository() ports.CatalogRepository {
	return m.Called().Get(0).(ports.CatalogRepository)
}

func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	return m.Called().Get(0).(ports.OutboxRepository)
}

type (
	lifecycleFactory func() commands.LifecycleUoW
	orderingFactory  func() commands.OrderingUoW
	directoryFactory func() commands.DirectoryUoW
	outboxFactory    func() commands.OutboxUoW
)

func (f lifecycleFactory) Create() commands.LifecycleUoW { return f() }
func (f orderingFactory) Create() commands.OrderingUoW   { return f() }
func (f directoryFactory) Create() commands.DirectoryUoW { return f() }
func (f outboxFactory) Create() commands.OutboxUoW       { return f() }
