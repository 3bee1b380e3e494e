package repository

import (
	"context"
	"sync"

	"gpa-calculator/domain"
)

// MemoryStore is an in-memory Store. Data is lost on restart.
type MemoryStore struct {
	mu          sync.RWMutex
	snapshots   map[string]domain.Snapshot
	preferences map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		snapshots:   make(map[string]domain.Snapshot),
		preferences: make(map[string]string),
	}
}

// Save stores a copy of the snapshot, replacing any previous one.
func (s *MemoryStore) Save(
	ctx context.Context,
	profile string,
	snapshot domain.Snapshot,
) error {
	courses := make([]domain.CourseEntry, len(snapshot.Courses))
	copy(courses, snapshot.Courses)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[profile] = domain.Snapshot{Courses: courses, SavedAt: snapshot.SavedAt}
	return nil
}

func (s *MemoryStore) Load(ctx context.Context, profile string) (domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot, ok := s.snapshots[profile]
	if !ok {
		return domain.Snapshot{}, ErrNotFound
	}
	courses := make([]domain.CourseEntry, len(snapshot.Courses))
	copy(courses, snapshot.Courses)
	return domain.Snapshot{Courses: courses, SavedAt: snapshot.SavedAt}, nil
}

func (s *MemoryStore) Delete(ctx context.Context, profile string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snapshots, profile)
	return nil
}

func (s *MemoryStore) GetPreference(ctx context.Context, profile, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.preferences[preferenceKey(profile, key)]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (s *MemoryStore) SetPreference(ctx context.Context, profile, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.preferences[preferenceKey(profile, key)] = value
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func preferenceKey(profile, key string) string {
	return profile + "/" + key
}
