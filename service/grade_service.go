package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"gpa-calculator/domain"
	"gpa-calculator/repository"
)

// GradeService wraps the pure calculator with caching, persistence and the
// narrator.
type GradeService struct {
	store    repository.CourseRepository
	cache    repository.CacheRepository
	narrator *Narrator
	logger   *zap.Logger
	now      func() time.Time
}

// NewGradeService creates a GradeService. narrator may be nil.
func NewGradeService(
	store repository.CourseRepository,
	cache repository.CacheRepository,
	narrator *Narrator,
	logger *zap.Logger,
) *GradeService {
	return &GradeService{
		store:    store,
		cache:    cache,
		narrator: narrator,
		logger:   logger,
		now:      time.Now,
	}
}

// Calculate filters the submitted rows and aggregates what is left.
func (s *GradeService) Calculate(
	ctx context.Context,
	rows []domain.CourseRow,
) (domain.AggregateResult, error) {

	if len(rows) > MaxCoursesPerRequest {
		return domain.AggregateResult{}, fmt.Errorf("%w: maximum is %d", ErrTooManyCourses, MaxCoursesPerRequest)
	}

	courses := FilterCourses(rows)
	if dropped := len(rows) - len(courses); dropped > 0 {
		s.logger.Debug("dropped incomplete course rows", zap.Int("dropped", dropped))
	}

	key, err := courseKey(courses)
	if err != nil {
		s.logger.Warn("failed to build cache key", zap.Error(err))
		return Calculate(courses), nil
	}

	if cached, ok := s.cache.Get(ctx, key); ok {
		var result domain.AggregateResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return result, nil
		}
		s.logger.Warn("discarding unreadable cached result", zap.String("key", key))
	}

	result := Calculate(courses)

	// Guardar en caché (no crítico si falla)
	if blob, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(ctx, key, string(blob)); err != nil {
			s.logger.Warn("failed to cache result", zap.Error(err))
		}
	}

	return result, nil
}

// Advise builds the advice for an aggregate result and attaches the
// narrator's summary.
func (s *GradeService) Advise(ctx context.Context, result domain.AggregateResult) domain.Advice {
	advice := Advise(result)
	if s.narrator != nil {
		advice.Summary = s.narrator.Summarize(ctx, result, advice)
	}
	return advice
}

// AdviseTotals advises from raw totals instead of a course list.
func (s *GradeService) AdviseTotals(ctx context.Context, in domain.AdviceInput) (domain.Advice, error) {
	for _, v := range []float64{in.GPA, in.TotalCredits, in.TotalGradePoints} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return domain.Advice{}, fmt.Errorf("%w: values must be finite and non-negative", ErrInvalidTotals)
		}
	}
	if in.GPA > MaxGradeValue {
		return domain.Advice{}, fmt.Errorf("%w: gpa above %d", ErrInvalidTotals, MaxGradeValue)
	}

	return s.Advise(ctx, domain.AggregateResult{
		GPA:              roundTo2Decimals(in.GPA),
		GPADisplay:       format2Decimals(in.GPA),
		TotalCredits:     in.TotalCredits,
		TotalGradePoints: in.TotalGradePoints,
	}), nil
}

// Save replaces the profile's snapshot with the valid rows, stamped now.
func (s *GradeService) Save(
	ctx context.Context,
	profile string,
	rows []domain.CourseRow,
) (domain.Snapshot, error) {

	profile, err := normalizeProfile(profile)
	if err != nil {
		return domain.Snapshot{}, err
	}
	if len(rows) > MaxCoursesPerRequest {
		return domain.Snapshot{}, fmt.Errorf("%w: maximum is %d", ErrTooManyCourses, MaxCoursesPerRequest)
	}

	courses := FilterCourses(rows)
	if len(courses) == 0 {
		return domain.Snapshot{}, ErrNoCourses
	}

	snapshot := domain.Snapshot{
		Courses: courses,
		SavedAt: s.now().UTC(),
	}
	if err := s.store.Save(ctx, profile, snapshot); err != nil {
		return domain.Snapshot{}, fmt.Errorf("save courses for %s: %w", profile, err)
	}

	s.logger.Info("saved courses",
		zap.String("profile", profile),
		zap.Int("courses", len(courses)),
	)
	return snapshot, nil
}

func (s *GradeService) Load(ctx context.Context, profile string) (domain.Snapshot, error) {
	profile, err := normalizeProfile(profile)
	if err != nil {
		return domain.Snapshot{}, err
	}

	snapshot, err := s.store.Load(ctx, profile)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.Snapshot{}, ErrSnapshotNotFound
	}
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("load courses for %s: %w", profile, err)
	}
	return snapshot, nil
}

// Clear removes the saved snapshot. Clearing a profile with nothing saved
// is not an error.
func (s *GradeService) Clear(ctx context.Context, profile string) error {
	profile, err := normalizeProfile(profile)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, profile); err != nil {
		return fmt.Errorf("clear courses for %s: %w", profile, err)
	}
	s.logger.Info("cleared courses", zap.String("profile", profile))
	return nil
}

func normalizeProfile(profile string) (string, error) {
	profile = strings.TrimSpace(profile)
	if profile == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidProfile)
	}
	if len(profile) > MaxProfileLength {
		return "", fmt.Errorf("%w: longer than %d characters", ErrInvalidProfile, MaxProfileLength)
	}
	return profile, nil
}

// courseKey identifies a filtered course list for the result cache.
func courseKey(courses []domain.CourseEntry) (string, error) {
	blob, err := json.Marshal(courses)
	if err != nil {
		return "", err
	}
	return "calc:" + strconv.FormatUint(xxhash.Sum64(blob), 16), nil
}
