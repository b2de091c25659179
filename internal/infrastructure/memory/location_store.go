package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/rider-tracker/internal/domain/repository"
)

var _ repository.LocationStore = (*LocationStore)(nil)

// LocationStore posiciones del rider en memoria (sin TTL). Se usa cuando REDIS_ADDR está vacío.
type LocationStore struct {
	mu   sync.RWMutex
	locs map[string]repository.RiderLocation
}

// NewLocationStore crea un almacén vacío.
func NewLocationStore() *LocationStore {
	return &LocationStore{locs: make(map[string]repository.RiderLocation)}
}

func (s *LocationStore) Save(_ context.Context, loc repository.RiderLocation) error {
	s.mu.Lock()
	s.locs[loc.RiderID] = loc
	s.mu.Unlock()
	return nil
}

func (s *LocationStore) Get(_ context.Context, riderID string) (*repository.RiderLocation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	loc, ok := s.locs[riderID]
	if !ok {
		return nil, nil
	}
	return &loc, nil
}

func (s *LocationStore) Delete(_ context.Context, riderID string) error {
	s.mu.Lock()
	delete(s.locs, riderID)
	s.mu.Unlock()
	return nil
}

func (s *LocationStore) Ping(context.Context) error { return nil }
