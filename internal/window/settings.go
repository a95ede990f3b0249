package window

import (
	"fmt"

	"github.com/1broseidon/xwin/internal/input"
	"github.com/1broseidon/xwin/internal/platform"
)

// Settings is the initial window configuration. It is read once at
// construction.
type Settings struct {
	Title          string
	Size           input.Size
	ExitOnEsc      bool
	AutomaticClose bool
}

// DefaultSettings returns a 640x480 window with automatic close enabled.
func DefaultSettings(title string) Settings {
	return Settings{
		Title:          title,
		Size:           input.Size{Width: 640, Height: 480},
		AutomaticClose: true,
	}
}

// Validate reports settings no backend can honour.
func (s Settings) Validate() error {
	if s.Size.Width <= 0 || s.Size.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %gx%g", s.Size.Width, s.Size.Height)
	}
	return nil
}

func (s Settings) backendConfig() platform.WindowConfig {
	return platform.WindowConfig{
		Title:  s.Title,
		Width:  s.Size.Width,
		Height: s.Size.Height,
	}
}
