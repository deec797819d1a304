package extractor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"termfolio/internal/profile"
	"termfolio/pkg/logging"

	"github.com/PuerkitoBio/goquery"
)

// ErrEmptyDocument is returned when the page has no parsable body content.
var ErrEmptyDocument = errors.New("extractor: document is empty")

// Selectors locating profile fields in the portfolio markup.
const (
	selName        = "header .text-xl.font-bold"
	selTitle       = "header .text-xs.text-gray-400"
	selSkillCards  = "section:not(#projects) .grid > div:has(h3)"
	selSkillLevel  = ".text-xs.px-2.py-1"
	selSkillBar    = `[style*="width"]`
	selProjectCard = "#projects .grid > div"
	selProjectDesc = "p.text-gray-400"
	selEmail       = `a[href^="mailto:"]`
	selLinkedIn    = `a[href*="linkedin"]`
)

var widthDecl = regexp.MustCompile(`(?i)(?:^|;)\s*width\s*:\s*(\d+)%`)

// FromFile parses the portfolio page at path.
func FromFile(path string) (profile.Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return profile.Data{}, fmt.Errorf("failed to open page %s: %w", path, err)
	}
	defer f.Close()
	return FromReader(f)
}

// FromReader parses a portfolio page from r.
func FromReader(r io.Reader) (profile.Data, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return profile.Data{}, fmt.Errorf("failed to parse page: %w", err)
	}
	if doc.Find("body").Children().Length() == 0 {
		return profile.Data{}, ErrEmptyDocument
	}
	return FromDocument(doc), nil
}

// FromDocument extracts the profile. Missing elements leave the matching
// field empty; a card without a heading is skipped.
func FromDocument(doc *goquery.Document) profile.Data {
	var data profile.Data

	data.Name = text(doc.Find(selName).First())
	data.Title = text(doc.Find(selTitle).First())

	doc.Find(selSkillCards).Each(func(_ int, card *goquery.Selection) {
		name := text(card.Find("h3").First())
		if name == "" {
			return
		}
		skill := profile.Skill{Name: name, Percentage: profile.DefaultPercentage}
		if lvl := card.Find(selSkillLevel).First(); lvl.Length() > 0 {
			skill.Level = text(lvl)
		}
		if bar := card.Find(selSkillBar).First(); bar.Length() > 0 {
			style, _ := bar.Attr("style")
			if pct, ok := widthPercent(style); ok {
				skill.Percentage = pct
			}
		}
		data.Skills = append(data.Skills, profile.NormalizeSkill(skill))
	})

	doc.Find(selProjectCard).Each(func(_ int, card *goquery.Selection) {
		name := text(card.Find("h3").First())
		if name == "" {
			return
		}
		data.Projects = append(data.Projects, profile.Project{
			Name:        name,
			Description: text(card.Find(selProjectDesc).First()),
			Featured:    true,
		})
	})

	if href, ok := doc.Find(selEmail).First().Attr("href"); ok {
		data.Contact.Email = strings.TrimPrefix(href, "mailto:")
	}
	if href, ok := doc.Find(selLinkedIn).First().Attr("href"); ok {
		data.Contact.LinkedIn = href
	}

	data.Bio = profile.Bio(data.Title)

	logging.Debug("Extractor", "extracted %d skills and %d projects for %q", len(data.Skills), len(data.Projects), data.Name)
	return data
}

func text(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}

func widthPercent(style string) (int, bool) {
	m := widthDecl.FindStringSubmatch(style)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
