package config

// KeyMappings defines the configurable key bindings of the interactive board
type KeyMappings struct {
	// Navigation
	ScrollUp   string `yaml:"scroll_up"`
	ScrollDown string `yaml:"scroll_down"`
	GotoTop    string `yaml:"goto_top"`
	GotoBottom string `yaml:"goto_bottom"`

	// Other
	Quit string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		ScrollUp:   "k",
		ScrollDown: "j",
		GotoTop:    "g",
		GotoBottom: "G",
		Quit:       "q",
	}
}

func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()
	if k.ScrollUp == "" {
		k.ScrollUp = defaults.ScrollUp
	}
	if k.ScrollDown == "" {
		k.ScrollDown = defaults.ScrollDown
	}
	if k.GotoTop == "" {
		k.GotoTop = defaults.GotoTop
	}
	if k.GotoBottom == "" {
		k.GotoBottom = defaults.GotoBottom
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
