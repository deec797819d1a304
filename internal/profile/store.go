package profile

import (
	"slices"
	"sync"
)

// Patch is a partial profile update. Nil fields are left untouched.
type Patch struct {
	Name     *string      `json:"name,omitempty" yaml:"name,omitempty"`
	Title    *string      `json:"title,omitempty" yaml:"title,omitempty"`
	Bio      *string      `json:"bio,omitempty" yaml:"bio,omitempty"`
	Skills   *[]Skill     `json:"skills,omitempty" yaml:"skills,omitempty"`
	Projects *[]Project   `json:"projects,omitempty" yaml:"projects,omitempty"`
	Contact  *ContactInfo `json:"contact,omitempty" yaml:"contact,omitempty"`

	// Field-level contact updates, applied after Contact.
	ContactEmail    *string `json:"email,omitempty" yaml:"email,omitempty"`
	ContactLinkedIn *string `json:"linkedin,omitempty" yaml:"linkedin,omitempty"`
}

// Store owns the session's profile. It is safe for concurrent use; the
// control surface may read it from a server goroutine while the UI renders.
type Store struct {
	mu       sync.RWMutex
	data     Data
	watchers []func(Data)
}

// NewStore creates a store holding a copy of data.
func NewStore(data Data) *Store {
	return &Store{data: data.Clone()}
}

// Get returns a copy of the current profile.
func (s *Store) Get() Data {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

// Replace swaps the whole profile.
func (s *Store) Replace(data Data) {
	s.mu.Lock()
	s.data = data.Clone()
	snapshot, watchers := s.data.Clone(), s.watchersLocked()
	s.mu.Unlock()
	notify(watchers, snapshot)
}

// Merge applies a shallow update: every set field replaces the stored one.
func (s *Store) Merge(p Patch) Data {
	s.mu.Lock()
	if p.Name != nil {
		s.data.Name = *p.Name
	}
	if p.Title != nil {
		s.data.Title = *p.Title
	}
	if p.Bio != nil {
		s.data.Bio = *p.Bio
	}
	if p.Skills != nil {
		s.data.Skills = append([]Skill(nil), (*p.Skills)...)
	}
	if p.Projects != nil {
		s.data.Projects = append([]Project(nil), (*p.Projects)...)
	}
	if p.Contact != nil {
		s.data.Contact = *p.Contact
	}
	if p.ContactEmail != nil {
		s.data.Contact.Email = *p.ContactEmail
	}
	if p.ContactLinkedIn != nil {
		s.data.Contact.LinkedIn = *p.ContactLinkedIn
	}
	snapshot, watchers := s.data.Clone(), s.watchersLocked()
	s.mu.Unlock()
	notify(watchers, snapshot)
	return snapshot
}

// Watch registers fn to run after every Replace or Merge.
func (s *Store) Watch(fn func(Data)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchers = append(s.watchers, fn)
}

func (s *Store) watchersLocked() []func(Data) {
	return slices.Clone(s.watchers)
}

func notify(watchers []func(Data), d Data) {
	for _, w := range watchers {
		w(d)
	}
}
