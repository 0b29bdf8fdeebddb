package model

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

func (t Theme) Valid() bool { return t == ThemeDark || t == ThemeLight }

type Preferences struct {
	Theme        Theme
	SoundEnabled bool
}

func DefaultPreferences() Preferences {
	return Preferences{Theme: ThemeDark, SoundEnabled: true}
}

type PreferencesUpdate struct {
	Theme        *Theme
	SoundEnabled *bool
}
