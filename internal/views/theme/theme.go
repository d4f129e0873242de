package theme

import (
	"sort"
	"strings"

	"merchdesk/models"
)

// Option represents a selectable theme exposed to the UI.
type Option struct {
	Value string
	Label string
}

// DashboardTheme contains resolved styling primitives for the dashboard shell.
type DashboardTheme struct {
	Key          string
	Label        string
	Description  string
	BodyClass    string
	ShellClass   string
	CardClass    string
	BorderClass  string
	AccentClass  string
	MutedClass   string
	ControlClass string
}

var catalogue = map[string]DashboardTheme{
	models.ThemeLinen: {
		Key:          models.ThemeLinen,
		Label:        "Linen",
		Description:  "Warm off-white canvas with charcoal type.",
		BodyClass:    "min-h-screen bg-stone-50 text-stone-900",
		ShellClass:   "dashboard-shell light",
		CardClass:    "card shadow-sm border-0 rounded-4 mb-4",
		BorderClass:  "border-stone-200",
		AccentClass:  "text-danger",
		MutedClass:   "text-stone-500",
		ControlClass: "form-control",
	},
	models.ThemeSlate: {
		Key:          models.ThemeSlate,
		Label:        "Slate",
		Description:  "Dark panels with soft contrast.",
		BodyClass:    "min-h-screen bg-slate-950 text-slate-100",
		ShellClass:   "dashboard-shell dark",
		CardClass:    "card shadow-sm border-0 rounded-4 mb-4 bg-slate-900",
		BorderClass:  "border-slate-700",
		AccentClass:  "text-amber-400",
		MutedClass:   "text-slate-400",
		ControlClass: "form-control bg-slate-800 text-slate-100",
	},
	models.ThemeHarbor: {
		Key:          models.ThemeHarbor,
		Label:        "Harbor",
		Description:  "Muted blue workspace with indigo accents.",
		BodyClass:    "min-h-screen bg-sky-950 text-sky-50",
		ShellClass:   "dashboard-shell harbor",
		CardClass:    "card shadow-sm border-0 rounded-4 mb-4 bg-sky-900",
		BorderClass:  "border-sky-700",
		AccentClass:  "text-indigo-300",
		MutedClass:   "text-sky-300",
		ControlClass: "form-control bg-sky-800 text-sky-50",
	},
}

// Lookup returns the theme registered under key and whether it exists.
func Lookup(key string) (DashboardTheme, bool) {
	value, ok := catalogue[strings.ToLower(strings.TrimSpace(key))]
	return value, ok
}

// Resolve returns the theme registered under key, falling back to the default theme.
func Resolve(key string) DashboardTheme {
	return catalogue[models.NormalizeTheme(key)]
}

// Options exposes the available themes sorted by label for rendering in a form control.
func Options() []Option {
	options := make([]Option, 0, len(catalogue))
	for _, def := range catalogue {
		options = append(options, Option{Value: def.Key, Label: def.Label})
	}
	sort.Slice(options, func(i, j int) bool {
		return options[i].Label < options[j].Label
	})
	return options
}
