package presenter

import (
	"fmt"

	"termfolio/pkg/logging"
)

// TabLabels returns the featured and all labels with live counts.
func (p *Presenter) TabLabels() (featured, all string) {
	data := p.source.Get()
	return fmt.Sprintf("featured (%d)", data.FeaturedCount()), fmt.Sprintf("all (%d)", len(data.Projects))
}

// SelectTab moves the active indicator. The rendered project set is the
// same for both tabs; only the indicator changes.
func (p *Presenter) SelectTab(t Tab) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tab = t
	logging.Debug("Presenter", "tab %d selected", t)
}

// ActiveTab returns the tab carrying the active indicator.
func (p *Presenter) ActiveTab() Tab {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tab
}
