package profile

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")

const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// Profile is the user row joined with its optional body measurements.
// Height is in centimeters and weight in kilograms.
type Profile struct {
	UserID    string    `json:"id"`
	Email     string    `json:"email"`
	Name      *string   `json:"name"`
	ImageURL  *string   `json:"profileImage"`
	Age       *int      `json:"age"`
	Height    *float64  `json:"height"`
	Weight    *float64  `json:"weight"`
	Gender    *string   `json:"gender"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProfileUpdate holds the fields a client sent. A nil field keeps the stored value.
type ProfileUpdate struct {
	UserID   string
	Name     *string
	ImageURL *string
	Age      *int
	Height   *float64
	Weight   *float64
	Gender   *string
}

type Settings struct {
	ThemeMode            string `json:"themeMode"`
	NotificationsEnabled bool   `json:"notificationsEnabled"`
}

// SettingsUpdate is a partial settings change, nil fields are left as they are.
type SettingsUpdate struct {
	ThemeMode            *string
	NotificationsEnabled *bool
}

func ValidThemeMode(mode string) bool {
	switch mode {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}
