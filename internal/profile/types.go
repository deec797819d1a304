package profile

import (
	"regexp"
	"strings"
)

const (
	// DefaultLevel is used when a skill card carries no level badge.
	DefaultLevel = "intermediate"
	// DefaultPercentage is used when a skill bar width cannot be read.
	DefaultPercentage = 50
)

// Skill is one entry of the technical expertise section.
type Skill struct {
	Name       string `yaml:"name" json:"name"`
	Level      string `yaml:"level" json:"level"`
	Percentage int    `yaml:"percentage" json:"percentage"`
}

// Project is one portfolio project card.
type Project struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Featured    bool   `yaml:"featured" json:"featured"`
}

// ContactInfo holds the optional contact links.
type ContactInfo struct {
	Email    string `yaml:"email,omitempty" json:"email,omitempty"`
	LinkedIn string `yaml:"linkedin,omitempty" json:"linkedin,omitempty"`
}

// Data is the profile scraped from the portfolio page.
type Data struct {
	Name     string      `yaml:"name" json:"name"`
	Title    string      `yaml:"title" json:"title"`
	Bio      string      `yaml:"bio" json:"bio"`
	Skills   []Skill     `yaml:"skills" json:"skills"`
	Projects []Project   `yaml:"projects" json:"projects"`
	Contact  ContactInfo `yaml:"contact" json:"contact"`
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Handle is the shell-style user name derived from the profile name,
// e.g. "Jane Doe" becomes "jane-doe". An empty name yields "user".
func (d Data) Handle() string {
	h := whitespaceRun.ReplaceAllString(strings.ToLower(d.Name), "-")
	if h == "" {
		return "user"
	}
	return h
}

// FeaturedCount returns the number of projects flagged as featured.
func (d Data) FeaturedCount() int {
	n := 0
	for _, p := range d.Projects {
		if p.Featured {
			n++
		}
	}
	return n
}

// Clone returns a deep copy so callers never share slices with the store.
func (d Data) Clone() Data {
	c := d
	if d.Skills != nil {
		c.Skills = append([]Skill(nil), d.Skills...)
	}
	if d.Projects != nil {
		c.Projects = append([]Project(nil), d.Projects...)
	}
	return c
}

// NormalizeSkill applies the level and percentage defaults and clamps the percentage.
func NormalizeSkill(s Skill) Skill {
	s.Name = strings.TrimSpace(s.Name)
	s.Level = strings.ToLower(strings.TrimSpace(s.Level))
	if s.Level == "" {
		s.Level = DefaultLevel
	}
	switch {
	case s.Percentage < 0:
		s.Percentage = 0
	case s.Percentage > 100:
		s.Percentage = 100
	}
	return s
}

// Bio synthesizes the biography line shown by the terminal's about command.
func Bio(title string) string {
	return "Seasoned " + strings.ToLower(title) + ". Building reliable software and scalable systems."
}
