package api

import (
	"context"
	"fmt"

	"termfolio/internal/profile"
	"termfolio/internal/state"
	"termfolio/pkg/logging"
)

// Surface is the programmatic control surface over the running session.
// Every mutation is funneled through the registered Dispatcher so that
// theme subscribers and store watchers run on the UI goroutine.
type Surface struct {
	session  *state.Session
	handlers handlerRegistry
}

// NewSurface creates a control surface for session.
func NewSurface(session *state.Session) *Surface {
	return &Surface{session: session}
}

// SetDispatcher installs the function used to run mutations. Nil runs them inline.
func (s *Surface) SetDispatcher(d Dispatcher) {
	s.handlers.mu.Lock()
	defer s.handlers.mu.Unlock()
	s.handlers.dispatch = d
}

// RegisterSkillsHandler installs the component that renders skill bars.
func (s *Surface) RegisterSkillsHandler(h SkillsHandler) {
	s.handlers.mu.Lock()
	defer s.handlers.mu.Unlock()
	s.handlers.skills = h
}

// run executes fn through the dispatcher and waits for it to finish.
func (s *Surface) run(ctx context.Context, fn func()) error {
	if s.session == nil {
		return ErrNoState
	}
	dispatch := s.handlers.dispatcher()
	if dispatch == nil {
		fn()
		return nil
	}

	done := make(chan struct{})
	go dispatch(func() {
		defer close(done)
		fn()
	})
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("dispatch to UI: %w", ctx.Err())
	}
}

// SetTheme activates the palette with the given id. Ids match exactly, as
// listed by AvailableThemes; anything else leaves the theme unchanged and
// reports false.
func (s *Surface) SetTheme(ctx context.Context, id string) (bool, error) {
	var ok bool
	err := s.run(ctx, func() {
		ok = s.session.Theme.SetTheme(id)
	})
	if err != nil {
		return false, err
	}
	logging.Debug("API", "set_theme %q applied=%t", id, ok)
	return ok, nil
}

// CycleTheme advances to the next palette and returns its id.
func (s *Surface) CycleTheme(ctx context.Context) (string, error) {
	var current string
	err := s.run(ctx, func() {
		s.session.Theme.CycleTheme()
		current = s.session.Theme.Current()
	})
	return current, err
}

// UpdateProfile merges patch into the session profile and returns the result.
// Skills are normalized the same way the extractor normalizes scraped ones.
func (s *Surface) UpdateProfile(ctx context.Context, patch profile.Patch) (profile.Data, error) {
	if patch.Skills != nil {
		skills := make([]profile.Skill, 0, len(*patch.Skills))
		for _, sk := range *patch.Skills {
			sk = profile.NormalizeSkill(sk)
			if sk.Name == "" {
				return profile.Data{}, ErrInvalidSkill
			}
			skills = append(skills, sk)
		}
		patch.Skills = &skills
	}

	var updated profile.Data
	err := s.run(ctx, func() {
		updated = s.session.Profile.Merge(patch)
	})
	if err != nil {
		return profile.Data{}, err
	}
	logging.Info("API", "Profile updated for %s", updated.Handle())
	return updated, nil
}

// Profile returns a snapshot of the session profile.
func (s *Surface) Profile() (profile.Data, error) {
	if s.session == nil {
		return profile.Data{}, ErrNoState
	}
	return s.session.Profile.Get(), nil
}

// RefreshSkills rebuilds the skill bars from the current profile and returns
// how many were rendered. Without a registered handler it reports the skill count.
func (s *Surface) RefreshSkills(ctx context.Context) (int, error) {
	var n int
	err := s.run(ctx, func() {
		skills := s.session.Profile.Get().Skills
		n = len(skills)
		if h := s.handlers.skillsHandler(); h != nil {
			n = h.RefreshSkills(skills)
		}
	})
	return n, err
}

// CurrentTheme returns the active palette id.
func (s *Surface) CurrentTheme() (string, error) {
	if s.session == nil {
		return "", ErrNoState
	}
	return s.session.Theme.Current(), nil
}

// ThemeVariables returns the root color variables of the active palette.
func (s *Surface) ThemeVariables() map[string]string {
	if s.session == nil {
		return nil
	}
	return s.session.Theme.Variables()
}

// AvailableThemes returns every palette id in cycle order.
func (s *Surface) AvailableThemes() []string {
	if s.session == nil {
		return nil
	}
	return s.session.Theme.Available()
}
