package theme

import (
	"maps"
	"sync"

	"termfolio/pkg/logging"

	"github.com/charmbracelet/lipgloss"
)

// Binding is notified with the active palette on subscription and after every change.
type Binding interface {
	ApplyPalette(p Palette)
}

// BindingFunc adapts a function to Binding.
type BindingFunc func(Palette)

// ApplyPalette calls f(p).
func (f BindingFunc) ApplyPalette(p Palette) { f(p) }

// RoleBinding binds a role to a setter; the setter receives the role style
// derived from each new palette.
func RoleBinding(role Role, set func(lipgloss.Style)) Binding {
	return BindingFunc(func(p Palette) {
		set(buildStyles(p).ForRole(role))
	})
}

type subscription struct {
	id      int
	binding Binding
}

// Controller owns the active palette and propagates it to subscribers.
// Exactly one palette is active at any time. Changes are serialized end to
// end, so once concurrent SetTheme calls return every binding holds the
// palette Current reports. Bindings must not change the theme themselves.
type Controller struct {
	// changeMu orders palette changes together with their notifications.
	changeMu sync.Mutex
	mu       sync.RWMutex
	active   Palette
	vars     map[string]string
	styles   Styles
	sheet    Sheet
	subs     []subscription
	nextID   int
}

// NewController creates a controller with initial applied. An unknown
// initial id falls back to Default.
func NewController(initial string) *Controller {
	c := &Controller{}
	c.apply(palettes[Default])
	c.SetTheme(initial)
	return c
}

// SetTheme activates the palette named id and notifies subscribers. Unknown
// ids are ignored and report false.
func (c *Controller) SetTheme(id string) bool {
	c.changeMu.Lock()
	defer c.changeMu.Unlock()
	return c.setTheme(id)
}

func (c *Controller) setTheme(id string) bool {
	p, ok := Lookup(id)
	if !ok {
		logging.Debug("Theme", "ignoring unknown theme %q", id)
		return false
	}

	c.mu.Lock()
	c.apply(p)
	subs := append([]subscription(nil), c.subs...)
	c.mu.Unlock()

	// Subscribers run outside the lock so they may read the controller.
	for _, s := range subs {
		s.binding.ApplyPalette(p)
	}
	logging.Debug("Theme", "applied theme %s to %d bindings", id, len(subs))
	return true
}

// CycleTheme advances to the next palette in cycle order, wrapping around.
func (c *Controller) CycleTheme() {
	c.changeMu.Lock()
	defer c.changeMu.Unlock()
	c.setTheme(next(c.Current()))
}

// apply recomputes every derived value. The previous sheet is replaced, never accumulated.
func (c *Controller) apply(p Palette) {
	c.active = p
	c.vars = buildVariables(p)
	c.styles = buildStyles(p)
	c.sheet = buildSheet(p)
}

// Subscribe registers b, immediately applies the active palette to it and
// returns a function that removes the subscription.
func (c *Controller) Subscribe(b Binding) (unsubscribe func()) {
	c.changeMu.Lock()
	defer c.changeMu.Unlock()

	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.subs = append(c.subs, subscription{id: id, binding: b})
	p := c.active
	c.mu.Unlock()

	b.ApplyPalette(p)

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

// Current returns the active palette id.
func (c *Controller) Current() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.active.ID
}

// Palette returns the active palette.
func (c *Controller) Palette() Palette {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.active
}

// Available lists every id SetTheme accepts.
func (c *Controller) Available() []string {
	return IDs()
}

// Variables returns a copy of the root variables for the active palette.
func (c *Controller) Variables() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return maps.Clone(c.vars)
}

// Styles returns the role styles for the active palette.
func (c *Controller) Styles() Styles {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.styles
}

// Sheet returns the current stylesheet fragment.
func (c *Controller) Sheet() Sheet {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sheet
}
