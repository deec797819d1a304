package api

import (
	"sync"

	"termfolio/internal/profile"
)

// Dispatcher runs fn on the goroutine that owns the UI. The TUI passes
// one that wraps fn in a message; without a UI the surface runs fn inline.
type Dispatcher func(fn func())

// SkillsHandler rebuilds the skill visualization from a profile's skills.
// It returns the number of bars rendered.
type SkillsHandler interface {
	RefreshSkills(skills []profile.Skill) int
}

// SkillsHandlerFunc adapts a plain function to SkillsHandler.
type SkillsHandlerFunc func(skills []profile.Skill) int

// RefreshSkills calls f.
func (f SkillsHandlerFunc) RefreshSkills(skills []profile.Skill) int { return f(skills) }

type handlerRegistry struct {
	mu       sync.RWMutex
	skills   SkillsHandler
	dispatch Dispatcher
}

func (r *handlerRegistry) skillsHandler() SkillsHandler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.skills
}

func (r *handlerRegistry) dispatcher() Dispatcher {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.dispatch
}
