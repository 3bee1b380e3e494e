package repository

import (
	"context"
	"errors"

	"gpa-calculator/domain"
)

var ErrNotFound = errors.New("not found")

// CourseRepository persists one course snapshot per profile. Save replaces
// the whole snapshot.
type CourseRepository interface {
	Save(ctx context.Context, profile string, snapshot domain.Snapshot) error
	Load(ctx context.Context, profile string) (domain.Snapshot, error)
	Delete(ctx context.Context, profile string) error
}

// PreferenceRepository stores small per-profile settings such as the theme.
type PreferenceRepository interface {
	GetPreference(ctx context.Context, profile, key string) (string, error)
	SetPreference(ctx context.Context, profile, key, value string) error
}

// Store is a backend that holds both snapshots and preferences.
type Store interface {
	CourseRepository
	PreferenceRepository
	Close() error
}
