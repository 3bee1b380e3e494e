package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gpa-calculator/domain"
)

func sampleSnapshot() domain.Snapshot {
	return domain.Snapshot{
		Courses: []domain.CourseEntry{
			{Name: "Math", GradeValue: 5, Credits: 3},
			{Name: "Physics", GradeValue: 3, Credits: 2},
		},
		SavedAt: time.Date(2026, 3, 14, 9, 26, 53, 589_000_000, time.UTC),
	}
}

func TestMemoryStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	want := sampleSnapshot()
	require.NoError(t, store.Save(ctx, "alice", want))

	got, err := store.Load(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, want.Courses, got.Courses)
	assert.True(t, want.SavedAt.Equal(got.SavedAt))
}

func TestMemoryStore_SaveReplacesWholeSnapshot(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Save(ctx, "alice", sampleSnapshot()))
	replacement := domain.Snapshot{
		Courses: []domain.CourseEntry{{Name: "Chemistry", GradeValue: 4, Credits: 4}},
		SavedAt: time.Now().UTC(),
	}
	require.NoError(t, store.Save(ctx, "alice", replacement))

	got, err := store.Load(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, replacement.Courses, got.Courses)
}

func TestMemoryStore_LoadIsolatedFromCallerMutation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	snapshot := sampleSnapshot()
	require.NoError(t, store.Save(ctx, "alice", snapshot))
	snapshot.Courses[0].Name = "changed"

	got, err := store.Load(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Math", got.Courses[0].Name)
}

func TestMemoryStore_NotFoundAndDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Load(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Save(ctx, "alice", sampleSnapshot()))
	require.NoError(t, store.Delete(ctx, "alice"))

	_, err = store.Load(ctx, "alice")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Preferences(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.GetPreference(ctx, "alice", "theme")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.SetPreference(ctx, "alice", "theme", "dark"))
	got, err := store.GetPreference(ctx, "alice", "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", got)

	_, err = store.GetPreference(ctx, "bob", "theme")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCache_ResetsWhenFull(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(2)

	require.NoError(t, cache.Set(ctx, "a", "1"))
	require.NoError(t, cache.Set(ctx, "b", "2"))
	require.NoError(t, cache.Set(ctx, "b", "3"))
	assert.Equal(t, 2, cache.Len())

	require.NoError(t, cache.Set(ctx, "c", "4"))
	assert.Equal(t, 1, cache.Len())

	_, ok := cache.Get(ctx, "a")
	assert.False(t, ok)
	val, ok := cache.Get(ctx, "c")
	assert.True(t, ok)
	assert.Equal(t, "4", val)
}
