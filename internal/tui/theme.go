// Package tui provides terminal user interface components for templet.
package tui

import (
	"image/color"
	"os"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/dongho-jung/templet/internal/config"
)

const (
	darkModeUnknown int32 = iota
	darkModeLight
	darkModeDark
)

var cachedDarkMode atomic.Int32

// ThemeColors holds the palette used by the picker, resolved once per
// light/dark decision.
type ThemeColors struct {
	Accent        color.Color
	Border        color.Color
	BorderFocused color.Color
	TextNormal    color.Color
	TextDim       color.Color
	ErrorColor    color.Color
	SuccessColor  color.Color
}

// NewThemeColors returns the palette for the given background.
func NewThemeColors(isDark bool) ThemeColors {
	lightDark := lipgloss.LightDark(isDark)
	return ThemeColors{
		Accent:        lipgloss.Color("39"),
		Border:        lightDark(lipgloss.Color("250"), lipgloss.Color("238")),
		BorderFocused: lipgloss.Color("39"),
		TextNormal:    lightDark(lipgloss.Color("236"), lipgloss.Color("252")),
		TextDim:       lightDark(lipgloss.Color("245"), lipgloss.Color("240")),
		ErrorColor:    lipgloss.Color("203"),
		SuccessColor:  lipgloss.Color("42"),
	}
}

// DetectDarkMode returns whether the terminal background is dark:
//   - config.ThemeLight: always false
//   - config.ThemeDark: always true
//   - config.ThemeAuto: queries the terminal, using a cached result when
//     available
//
// The auto query reads from stdin, so this must run BEFORE bubbletea starts.
func DetectDarkMode(theme config.Theme) bool {
	switch theme {
	case config.ThemeLight:
		return false
	case config.ThemeDark:
		return true
	default:
		if isDark, ok := cachedDarkModeValue(); ok {
			return isDark
		}
		return lipgloss.HasDarkBackground(os.Stdin, os.Stdout)
	}
}

func cachedDarkModeValue() (bool, bool) {
	switch cachedDarkMode.Load() {
	case darkModeDark:
		return true, true
	case darkModeLight:
		return false, true
	default:
		return false, false
	}
}

func setCachedDarkMode(isDark bool) {
	if isDark {
		cachedDarkMode.Store(darkModeDark)
		return
	}
	cachedDarkMode.Store(darkModeLight)
}
