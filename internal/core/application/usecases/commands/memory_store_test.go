package commands_test

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"requisitions/internal/core/application/usecases/commands"
	"requisitions/internal/core/domain/model/catalog"
	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/core/domain/model/location"
	"requisitions/internal/core/domain/model/order"
	"requisitions/internal/core/ports"
	"requisitions/internal/pkg/errs"
)

// memoryStore is an in-memory database with one global row lock: a unit of
// work holds it from Begin to Commit or Rollback. Rollback restores the
// snapshot taken at Begin.
type memoryStore struct {
	lock sync.Mutex

	bindings  map[kernel.UUID]*kernel.UUID
	locations []*location.Location
	products  map[kernel.UUID]*catalog.Product
	orders    map[kernel.UUID]orderRecord
	history   []order.HistoryEntry
}

type orderRecord struct {
	id, createdBy, origin, destination kernel.UUID
	status                             order.Status
	createdAt                          time.Time
	completedAt                        *time.Time
	items                              []order.Item
}

type snapshot struct {
	bindings map[kernel.UUID]*kernel.UUID
	orders   map[kernel.UUID]orderRecord
	history  []order.HistoryEntry
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		bindings: map[kernel.UUID]*kernel.UUID{},
		products: map[kernel.UUID]*catalog.Product{},
		orders:   map[kernel.UUID]orderRecord{},
	}
}

func (s *memoryStore) addLocation(name string) *location.Location {
	l, err := location.NewLocation(kernel.NewUUID(), name)
	if err != nil {
		panic(err)
	}
	s.locations = append(s.locations, l)
	return l
}

func (s *memoryStore) addUser(at *location.Location) kernel.UUID {
	user := kernel.NewUUID()
	if at == nil {
		s.bindings[user] = nil
		return user
	}
	id := at.ID()
	s.bindings[user] = &id
	return user
}

func (s *memoryStore) addProduct(name string) kernel.UUID {
	p, err := catalog.NewProduct(kernel.NewUUID(), kernel.NewUUID(), name)
	if err != nil {
		panic(err)
	}
	s.products[p.ID()] = p
	return p.ID()
}

func (s *memoryStore) historyOf(orderID kernel.UUID) []order.HistoryEntry {
	var entries []order.HistoryEntry
	for _, e := range s.history {
		if e.OrderID().IsEqual(orderID) {
			entries = append(entries, e)
		}
	}
	return entries
}

func (s *memoryStore) uow() *memoryUoW {
	return &memoryUoW{store: s}
}

func (s *memoryStore) lifecycle() commands.LifecycleUoWFactory {
	return lifecycleFactory(func() commands.LifecycleUoW { return s.uow() })
}

func (s *memoryStore) ordering() commands.OrderingUoWFactory {
	return orderingFactory(func() commands.OrderingUoW { return s.uow() })
}

type memoryUoW struct {
	store  *memoryStore
	active bool
	saved  snapshot
}

func (u *memoryUoW) Begin(context.Context) error {
	if u.active {
		return nil
	}
	u.store.lock.Lock()
	u.active = true
	u.saved = snapshot{
		bindings: cloneMap(u.store.bindings),
		orders:   cloneMap(u.store.orders),
		history:  slices.Clone(u.store.history),
	}
	return nil
}

func (u *memoryUoW) Commit(context.Context) error {
	if !u.active {
		return errors.New("no transaction")
	}
	u.active = false
	u.store.lock.Unlock()
	return nil
}

func (u *memoryUoW) Rollback(context.Context) error {
	if !u.active {
		return errors.New("no transaction")
	}
	u.store.bindings = u.saved.bindings
	u.store.orders = u.saved.orders
	u.store.history = u.saved.history
	u.active = false
	u.store.lock.Unlock()
	return nil
}

func (u *memoryUoW) OrderRepository() ports.OrderRepository { return memoryOrders{u.store} }
func (u *memoryUoW) StatusHistoryRepository() ports.StatusHistoryRepository {
	return memoryHistory{u.store}
}
func (u *memoryUoW) BindingRepository() ports.BindingRepository   { return memoryBindings{u.store} }
func (u *memoryUoW) LocationRepository() ports.LocationRepository { return memoryLocations{u.store} }
func (u *memoryUoW) CatalogRepository() ports.CatalogRepository   { return memoryCatalog{u.store} }

type memoryOrders struct{ s *memoryStore }

func (r memoryOrders) Add(_ context.Context, o *order.Order) error {
	if _, ok := r.s.orders[o.ID()]; ok {
		return errors.New("duplicate order")
	}
	r.s.orders[o.ID()] = recordOf(o)
	return nil
}

func (r memoryOrders) Update(_ context.Context, o *order.Order) error {
	stored, ok := r.s.orders[o.ID()]
	if !ok {
		return errs.NewObjectNotFoundError("order", o.ID())
	}
	if stored.status != o.LoadedStatus() {
		return errs.NewInvalidTransitionError(o.LoadedStatus().String(), "change status")
	}
	r.s.orders[o.ID()] = recordOf(o)
	return nil
}

func (r memoryOrders) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	rec, ok := r.s.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return order.RestoreOrder(rec.id, rec.createdBy, rec.origin, rec.destination,
		rec.status, rec.createdAt, rec.completedAt, rec.items)
}

func (r memoryOrders) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.Get(ctx, id)
}

type memoryHistory struct{ s *memoryStore }

func (r memoryHistory) Record(_ context.Context, entry order.HistoryEntry) error {
	for _, e := range r.s.history {
		if e.OrderID().IsEqual(entry.OrderID()) && e.Status() == entry.Status() {
			return errs.NewInvalidTransitionError(entry.Status().String(), "record again")
		}
	}
	r.s.history = append(r.s.history, entry)
	return nil
}

func (r memoryHistory) HistoryFor(_ context.Context, id kernel.UUID) ([]order.HistoryEntry, error) {
	return r.s.historyOf(id), nil
}

type memoryBindings struct{ s *memoryStore }

func (r memoryBindings) Get(_ context.Context, userID kernel.UUID) (*location.Binding, error) {
	locationID, ok := r.s.bindings[userID]
	if !ok {
		return nil, errs.NewObjectNotFoundError("user location", userID)
	}
	return location.RestoreBinding(userID, locationID)
}

func (r memoryBindings) Save(_ context.Context, b *location.Binding) error {
	id, err := b.LocationID()
	if err != nil {
		r.s.bindings[b.UserID()] = nil
		return nil
	}
	r.s.bindings[b.UserID()] = &id
	return nil
}

type memoryLocations struct{ s *memoryStore }

func (r memoryLocations) Add(_ context.Context, l *location.Location) error {
	r.s.locations = append(r.s.locations, l)
	return nil
}

func (r memoryLocations) Get(_ context.Context, id kernel.UUID) (*location.Location, error) {
	for _, l := range r.s.locations {
		if l.Is(id) {
			return l, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("location", id)
}

func (r memoryLocations) GetByName(_ context.Context, name string) (*location.Location, error) {
	for _, l := range r.s.locations {
		if l.Name() == name {
			return l, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("location", name)
}

func (r memoryLocations) List(context.Context) ([]*location.Location, error) {
	return slices.Clone(r.s.locations), nil
}

type memoryCatalog struct{ s *memoryStore }

func (r memoryCatalog) Add(_ context.Context, requisition *catalog.Requisition) error {
	for _, p := range requisition.Products() {
		r.s.products[p.ID()] = p
	}
	return nil
}

func (r memoryCatalog) GetProducts(_ context.Context, ids []kernel.UUID) ([]*catalog.Product, error) {
	var found []*catalog.Product
	for _, id := range ids {
		if p, ok := r.s.products[id]; ok {
			found = append(found, p)
		}
	}
	return found, nil
}

func recordOf(o *order.Order) orderRecord {
	return orderRecord{
		id:          o.ID(),
		createdBy:   o.CreatedBy(),
		origin:      o.Origin(),
		destination: o.Destination(),
		status:      o.Status(),
		createdAt:   o.CreatedAt(),
		completedAt: o.CompletedAt(),
		items:       o.Items(),
	}
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
