// Package memory implementa los puertos de persistencia en memoria.
// Se usa con STORAGE_DRIVER=memory (desarrollo local) y en los tests HTTP.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/rider-tracker/internal/domain"
	"github.com/jhoicas/rider-tracker/internal/domain/entity"
	"github.com/jhoicas/rider-tracker/internal/domain/repository"
)

var (
	_ repository.UserRepository     = (*UserRepo)(nil)
	_ repository.CustomerRepository = (*CustomerRepo)(nil)
	_ repository.DeliveryRepository = (*DeliveryRepo)(nil)
)

// Store datos compartidos por los repos en memoria (las entregas leen clientes para el join).
type Store struct {
	mu         sync.RWMutex
	users      map[string]entity.User
	customers  map[string]entity.Customer
	deliveries map[string]entity.Delivery
	seq        int64 // orden de inserción para desempatar created_at
	order      map[string]int64
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		users:      make(map[string]entity.User),
		customers:  make(map[string]entity.Customer),
		deliveries: make(map[string]entity.Delivery),
		order:      make(map[string]int64),
	}
}

func (s *Store) nextSeq(id string) {
	s.seq++
	s.order[id] = s.seq
}

// ─── Users ────────────────────────────────────────────────────────────────

// UserRepo repositorio de usuarios en memoria.
type UserRepo struct{ s *Store }

// NewUserRepository construye el repositorio sobre el store.
func NewUserRepository(s *Store) *UserRepo { return &UserRepo{s: s} }

func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

// ─── Customers ────────────────────────────────────────────────────────────

// CustomerRepo repositorio de clientes en memoria.
type CustomerRepo struct{ s *Store }

// NewCustomerRepository construye el repositorio sobre el store.
func NewCustomerRepository(s *Store) *CustomerRepo { return &CustomerRepo{s: s} }

func (r *CustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.phoneTaken(c.Phone, c.ID) {
		return domain.ErrDuplicate
	}
	r.s.customers[c.ID] = *c
	r.s.nextSeq(c.ID)
	return nil
}

func (r *CustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.customers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CustomerRepo) GetByIDAndRider(ctx context.Context, id, riderID string) (*entity.Customer, error) {
	c, err := r.GetByID(ctx, id)
	if err != nil || c == nil || c.RiderID != riderID {
		return nil, err
	}
	return c, nil
}

func (r *CustomerRepo) GetByPhone(_ context.Context, phone int64) (*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, id := range r.s.sortedIDs(r.s.customerIDs()) {
		if c := r.s.customers[id]; c.Phone == phone {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *CustomerRepo) List(_ context.Context) ([]*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Customer, 0, len(r.s.customers))
	for _, id := range r.s.sortedIDs(r.s.customerIDs()) {
		c := r.s.customers[id]
		list = append(list, &c)
	}
	return list, nil
}

func (r *CustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.customers[c.ID]
	if !ok {
		return domain.ErrCustomerNotFound
	}
	if r.phoneTaken(c.Phone, c.ID) {
		return domain.ErrDuplicate
	}
	cur.Name, cur.Address, cur.Phone = c.Name, c.Address, c.Phone
	cur.Lat, cur.Lng, cur.Remarks, cur.UpdatedAt = c.Lat, c.Lng, c.Remarks, c.UpdatedAt
	r.s.customers[c.ID] = cur
	return nil
}

// phoneTaken mismo criterio que el índice parcial de Postgres: el centinela nunca choca.
func (r *CustomerRepo) phoneTaken(phone int64, exceptID string) bool {
	if phone == entity.NoPhone {
		return false
	}
	for id, c := range r.s.customers {
		if id != exceptID && c.Phone == phone {
			return true
		}
	}
	return false
}

// ─── Deliveries ───────────────────────────────────────────────────────────

// DeliveryRepo repositorio de entregas en memoria.
type DeliveryRepo struct{ s *Store }

// NewDeliveryRepository construye el repositorio sobre el store.
func NewDeliveryRepository(s *Store) *DeliveryRepo { return &DeliveryRepo{s: s} }

func (r *DeliveryRepo) Create(_ context.Context, d *entity.Delivery) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.customers[d.CustomerID]; !ok {
		return domain.ErrCustomerNotFound
	}
	cp := *d
	cp.Customer = nil
	r.s.deliveries[d.ID] = cp
	r.s.nextSeq(d.ID)
	return nil
}

func (r *DeliveryRepo) GetByID(_ context.Context, id string) (*entity.Delivery, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	d, ok := r.s.deliveries[id]
	if !ok {
		return nil, nil
	}
	return r.withCustomer(d), nil
}

func (r *DeliveryRepo) ListByRiderAndStatus(_ context.Context, riderID string, status entity.DeliveryStatus) ([]*entity.Delivery, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := []*entity.Delivery{}
	for _, id := range r.s.sortedIDs(r.s.deliveryIDs()) {
		d := r.s.deliveries[id]
		if d.RiderID == riderID && d.Status == status {
			list = append(list, r.withCustomer(d))
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list, nil
}

func (r *DeliveryRepo) ListClosedBetween(_ context.Context, riderID string, from, to time.Time) ([]*entity.Delivery, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := []*entity.Delivery{}
	for _, id := range r.s.sortedIDs(r.s.deliveryIDs()) {
		d := r.s.deliveries[id]
		if d.RiderID != riderID {
			continue
		}
		if d.Status != entity.StatusDelivered && d.Status != entity.StatusReturned {
			continue
		}
		if d.UpdatedAt.Before(from) || d.UpdatedAt.After(to) {
			continue
		}
		list = append(list, r.withCustomer(d))
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].UpdatedAt.After(list[j].UpdatedAt)
	})
	return list, nil
}

func (r *DeliveryRepo) UpdateStatus(_ context.Context, d *entity.Delivery) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.deliveries[d.ID]
	if !ok {
		return domain.ErrDeliveryNotFound
	}
	cur.Status, cur.IsPaid, cur.UpdatedAt = d.Status, d.IsPaid, d.UpdatedAt
	cur.PaymentMethod = nil
	if d.PaymentMethod != nil {
		m := *d.PaymentMethod
		cur.PaymentMethod = &m
	}
	r.s.deliveries[d.ID] = cur
	return nil
}

func (r *DeliveryRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.deliveries[id]; !ok {
		return domain.ErrDeliveryNotFound
	}
	delete(r.s.deliveries, id)
	delete(r.s.order, id)
	return nil
}

// withCustomer copia la entrega y adjunta su cliente. Requiere el lock tomado.
func (r *DeliveryRepo) withCustomer(d entity.Delivery) *entity.Delivery {
	if d.PaymentMethod != nil {
		m := *d.PaymentMethod
		d.PaymentMethod = &m
	}
	if c, ok := r.s.customers[d.CustomerID]; ok {
		d.Customer = &c
	}
	return &d
}

// ─── helpers ──────────────────────────────────────────────────────────────

func (s *Store) customerIDs() []string {
	ids := make([]string, 0, len(s.customers))
	for id := range s.customers {
		ids = append(ids, id)
	}
	return ids
}

func (s *Store) deliveryIDs() []string {
	ids := make([]string, 0, len(s.deliveries))
	for id := range s.deliveries {
		ids = append(ids, id)
	}
	return ids
}

// sortedIDs ordena por orden de inserción (el mapa no garantiza orden).
func (s *Store) sortedIDs(ids []string) []string {
	sort.Slice(ids, func(i, j int) bool { return s.order[ids[i]] < s.order[ids[j]] })
	return ids
}
