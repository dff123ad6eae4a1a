package accessibility

const (
	MinFontSize     = 80
	MaxFontSize     = 150
	DefaultFontSize = 100
	FontSizeStep    = 10
)

type Settings struct {
	HighContrast       bool `json:"highContrast"`
	LargeText          bool `json:"largeText"`
	VoiceNavigation    bool `json:"voiceNavigation"`
	KeyboardNavigation bool `json:"keyboardNavigation"`
	ScreenReader       bool `json:"screenReader"`
	ReducedMotion      bool `json:"reducedMotion"`
	FontSize           int  `json:"fontSize"`
	VoiceEnabled       bool `json:"voiceEnabled"`
}

func DefaultSettings() Settings {
	return Settings{FontSize: DefaultFontSize}
}

// Apply returns the settings after a. Actions that only navigate or speak
// leave the settings untouched.
func (s Settings) Apply(a Action) Settings {
	switch a.Kind {
	case ActionToggleContrast:
		s.HighContrast = !s.HighContrast
	case ActionFontLarger:
		s.FontSize = clamp(s.FontSize + FontSizeStep)
	case ActionFontSmaller:
		s.FontSize = clamp(s.FontSize - FontSizeStep)
	case ActionReadPage:
		s.ScreenReader = true
	case ActionStopVoice:
		s.VoiceEnabled = false
	case ActionReset:
		s = DefaultSettings()
	}
	return s
}

func clamp(size int) int {
	return max(MinFontSize, min(MaxFontSize, size))
}
