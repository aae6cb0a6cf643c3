package scraper

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-rod/rod"

	"github.com/Nirvanjha2004/outflo/internal/models"
)

// RawProfile holds the fields read from one search result card.
type RawProfile struct {
	FullName         string
	JobTitle         string
	Company          string
	Location         string
	ProfileURL       string
	ProfileImageURL  string
	ConnectionDegree string
}

// ProfileFinder is the slice of the store the extractor needs for its
// dedup pre-check.
type ProfileFinder interface {
	GetProfileByURL(url string) (*models.Profile, error)
}

// CardExtractor turns one rendered search results page into raw profile
// records. Implementations own the DOM ruleset, so a layout change only
// touches the extractor, never pagination or orchestration.
type CardExtractor interface {
	Extract(page *rod.Page) []RawProfile
}

// cardNode is the DOM surface of one result card: resolve the first selector
// that yields a text or attribute value, empty string when none does.
type cardNode interface {
	text(selectors []string) string
	attribute(attr string, selectors []string) string
}

// resultCardRules is the default ruleset for the people-search results page.
type resultCardRules struct {
	finder ProfileFinder
}

// NewResultCardExtractor builds the default extractor. Cards whose profile
// URL is already stored (per finder) are skipped at extraction time, in
// addition to the store-level uniqueness constraint.
func NewResultCardExtractor(finder ProfileFinder) CardExtractor {
	return &resultCardRules{finder: finder}
}

// Selector sets are tried in order; LinkedIn renames these classes
// periodically, so each field carries a fallback.
var (
	cardSelectors = []string{
		".reusable-search__result-container",
		"li.reusable-search__result-container",
	}
	linkSelectors = []string{
		`a[data-control-name="search_srp_result"]`,
		"a.app-aware-link",
	}
	nameSelectors = []string{
		".entity-result__title-text a",
		".entity-result__title-line a",
	}
	titleSelectors = []string{
		".entity-result__primary-subtitle",
	}
	companySelectors = []string{
		".entity-result__secondary-subtitle",
	}
	locationSelectors = []string{
		".entity-result__tertiary-subtitle",
	}
	imageSelectors = []string{
		".presence-entity__image",
		"img.presence-entity__image",
	}
	degreeSelectors = []string{
		".dist-value",
	}
)

func (r *resultCardRules) Extract(page *rod.Page) []RawProfile {
	var nodes []cardNode
	for _, card := range findCards(page) {
		nodes = append(nodes, rodCard{el: card})
	}
	return r.collect(nodes)
}

// collect applies the ruleset to each card independently.
func (r *resultCardRules) collect(cards []cardNode) []RawProfile {
	var records []RawProfile
	for _, card := range cards {
		record, err := r.extractCard(card)
		if err != nil {
			// One bad card never aborts the page
			log.Printf("Skipping result card: %v", err)
			continue
		}
		if record == nil {
			continue // already stored
		}
		records = append(records, *record)
	}

	return records
}

func findCards(page *rod.Page) rod.Elements {
	for _, selector := range cardSelectors {
		cards, err := page.Elements(selector)
		if err == nil && len(cards) > 0 {
			return cards
		}
	}
	return nil
}

func (r *resultCardRules) extractCard(card cardNode) (*RawProfile, error) {
	profileURL := card.attribute("href", linkSelectors)
	if profileURL == "" {
		return nil, fmt.Errorf("no profile link found in card")
	}
	// Strip tracking params so the same profile always keys identically
	profileURL = strings.Split(profileURL, "?")[0]

	if existing, err := r.finder.GetProfileByURL(profileURL); err == nil && existing != nil {
		log.Printf("Profile already exists: %s", profileURL)
		return nil, nil
	}

	// A missing field element resolves to an empty string, never an error
	fullName := card.text(nameSelectors)
	if idx := strings.IndexByte(fullName, '\n'); idx >= 0 {
		fullName = strings.TrimSpace(fullName[:idx])
	}

	return &RawProfile{
		FullName:         fullName,
		JobTitle:         card.text(titleSelectors),
		Company:          card.text(companySelectors),
		Location:         card.text(locationSelectors),
		ProfileURL:       profileURL,
		ProfileImageURL:  card.attribute("src", imageSelectors),
		ConnectionDegree: card.text(degreeSelectors),
	}, nil
}

func (raw RawProfile) toProfile(searchURL string) *models.Profile {
	return &models.Profile{
		FullName:         raw.FullName,
		JobTitle:         raw.JobTitle,
		Company:          raw.Company,
		Location:         raw.Location,
		ProfileURL:       raw.ProfileURL,
		ProfileImageURL:  raw.ProfileImageURL,
		ConnectionDegree: raw.ConnectionDegree,
		SearchQuery:      searchURL,
	}
}

// rodCard adapts a live rod element to the cardNode surface.
type rodCard struct {
	el *rod.Element
}

func (c rodCard) text(selectors []string) string {
	for _, selector := range selectors {
		el, err := c.el.Element(selector)
		if err != nil || el == nil {
			continue
		}
		text, err := el.Text()
		if err != nil {
			continue
		}
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func (c rodCard) attribute(attr string, selectors []string) string {
	for _, selector := range selectors {
		el, err := c.el.Element(selector)
		if err != nil || el == nil {
			continue
		}
		value, err := el.Attribute(attr)
		if err != nil || value == nil || *value == "" {
			continue
		}
		return *value
	}
	return ""
}
