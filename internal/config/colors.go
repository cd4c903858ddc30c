package config

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (titles, highlights, table borders)
	Accent string `yaml:"accent"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"`
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg  string `yaml:"info_fg"`
	InfoBg  string `yaml:"info_bg"`
	ErrorFg string `yaml:"error_fg"`
	ErrorBg string `yaml:"error_bg"`
}

// DefaultColorScheme returns the default preset
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Preset:  "default",
		Accent:  "#7C3AED",
		Title:   "#F9FAFB",
		Subtle:  "#9CA3AF",
		Normal:  "#E5E7EB",
		InfoFg:  "#052E16",
		InfoBg:  "#22C55E",
		ErrorFg: "#FEF2F2",
		ErrorBg: "#DC2626",
	}
}

// MonochromeColorScheme returns the monochrome preset
func MonochromeColorScheme() ColorScheme {
	return ColorScheme{
		Preset:  "monochrome",
		Accent:  "#FFFFFF",
		Title:   "#FFFFFF",
		Subtle:  "#888888",
		Normal:  "#CCCCCC",
		InfoFg:  "#000000",
		InfoBg:  "#FFFFFF",
		ErrorFg: "#FFFFFF",
		ErrorBg: "#000000",
	}
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) ColorScheme {
	switch name {
	case "monochrome":
		return MonochromeColorScheme()
	default:
		return DefaultColorScheme()
	}
}

// ApplyDefaults fills in missing color values using the preset as base.
// If a preset is named, it is loaded first and custom values override it.
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	if c.Accent == "" {
		c.Accent = preset.Accent
	}
	if c.Title == "" {
		c.Title = preset.Title
	}
	if c.Subtle == "" {
		c.Subtle = preset.Subtle
	}
	if c.Normal == "" {
		c.Normal = preset.Normal
	}
	if c.InfoFg == "" {
		c.InfoFg = preset.InfoFg
	}
	if c.InfoBg == "" {
		c.InfoBg = preset.InfoBg
	}
	if c.ErrorFg == "" {
		c.ErrorFg = preset.ErrorFg
	}
	if c.ErrorBg == "" {
		c.ErrorBg = preset.ErrorBg
	}
}
