package models

import "strings"

// Dashboard themes a user can pick.
const (
	ThemeLinen  = "linen"
	ThemeSlate  = "slate"
	ThemeHarbor = "harbor"

	DefaultTheme = ThemeLinen
)

// ValidTheme reports whether value names a known theme.
func ValidTheme(value string) bool {
	switch value {
	case ThemeLinen, ThemeSlate, ThemeHarbor:
		return true
	}
	return false
}

// NormalizeTheme lower-cases and trims value, falling back to DefaultTheme.
func NormalizeTheme(value string) string {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if ValidTheme(normalized) {
		return normalized
	}
	return DefaultTheme
}
