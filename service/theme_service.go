package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"gpa-calculator/repository"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	themePreferenceKey = "theme"
)

type ThemeService struct {
	prefs  repository.PreferenceRepository
	logger *zap.Logger
}

func NewThemeService(prefs repository.PreferenceRepository, logger *zap.Logger) *ThemeService {
	return &ThemeService{prefs: prefs, logger: logger}
}

// Resolve returns the saved theme, falling back to the system preference
// when the profile never chose one.
func (s *ThemeService) Resolve(ctx context.Context, profile string, systemPrefersDark bool) (string, error) {
	profile, err := normalizeProfile(profile)
	if err != nil {
		return "", err
	}

	theme, err := s.prefs.GetPreference(ctx, profile, themePreferenceKey)
	switch {
	case err == nil && validTheme(theme):
		return theme, nil
	case err == nil:
		s.logger.Warn("ignoring unknown saved theme", zap.String("profile", profile), zap.String("theme", theme))
	case !errors.Is(err, repository.ErrNotFound):
		return "", fmt.Errorf("load theme for %s: %w", profile, err)
	}

	if systemPrefersDark {
		return ThemeDark, nil
	}
	return ThemeLight, nil
}

func (s *ThemeService) Set(ctx context.Context, profile, theme string) (string, error) {
	profile, err := normalizeProfile(profile)
	if err != nil {
		return "", err
	}
	if !validTheme(theme) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTheme, theme)
	}
	if err := s.prefs.SetPreference(ctx, profile, themePreferenceKey, theme); err != nil {
		return "", fmt.Errorf("save theme for %s: %w", profile, err)
	}
	return theme, nil
}

// Toggle flips the current theme and saves the result.
func (s *ThemeService) Toggle(ctx context.Context, profile string, systemPrefersDark bool) (string, error) {
	current, err := s.Resolve(ctx, profile, systemPrefersDark)
	if err != nil {
		return "", err
	}

	next := ThemeDark
	if current == ThemeDark {
		next = ThemeLight
	}
	return s.Set(ctx, profile, next)
}

func validTheme(theme string) bool {
	return theme == ThemeLight || theme == ThemeDark
}
