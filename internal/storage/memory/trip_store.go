package memory

import (
	"context"
	"sync"

	"bikeshare-explorer/internal/domain"
	"bikeshare-explorer/internal/storage"
)

// TripStore is an in-memory implementation of storage.RecordSource and storage.TripSink.
type TripStore struct {
	mu   sync.RWMutex
	data map[domain.City]*storage.Dataset
}

// NewTripStore creates a new in-memory trip store.
func NewTripStore() *TripStore {
	return &TripStore{
		data: make(map[domain.City]*storage.Dataset),
	}
}

// Compile-time interface checks.
var (
	_ storage.RecordSource = (*TripStore)(nil)
	_ storage.TripSink     = (*TripStore)(nil)
)

// Put stores a raw dataset for a city, replacing any previous one.
func (s *TripStore) Put(city domain.City, ds *storage.Dataset) error {
	if !city.IsValid() || ds == nil {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[city] = ds.Clone()
	return nil
}

// ReadDataset returns a copy of the city's dataset. Returns ErrNotFound if none was stored.
func (s *TripStore) ReadDataset(_ context.Context, city domain.City) (*storage.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ds, exists := s.data[city]
	if !exists {
		return nil, storage.ErrNotFound
	}
	return ds.Clone(), nil
}

// WriteTrips stores trips for a city. Returns ErrDuplicateKey if the city already has rows.
func (s *TripStore) WriteTrips(_ context.Context, city domain.City, schema domain.Schema, trips []domain.Trip) error {
	if !city.IsValid() {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, exists := s.data[city]; exists && existing.Len() > 0 {
		return storage.ErrDuplicateKey
	}
	s.data[city] = storage.EncodeTrips(schema, trips)
	return nil
}
