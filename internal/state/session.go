package state

import (
	"termfolio/internal/profile"
	"termfolio/internal/theme"
)

// Session is the per-run application state shared by every component.
// Nothing in it is persisted; a restart begins from the configured theme
// and a freshly extracted profile.
type Session struct {
	Profile *profile.Store
	Theme   *theme.Controller
}

// NewSession builds the session state around an extracted profile.
func NewSession(data profile.Data, themeID string) *Session {
	return &Session{
		Profile: profile.NewStore(data),
		Theme:   theme.NewController(themeID),
	}
}
