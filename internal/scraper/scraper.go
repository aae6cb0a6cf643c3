package scraper

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net/url"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"

	"github.com/Nirvanjha2004/outflo/internal/config"
	"github.com/Nirvanjha2004/outflo/internal/database"
	"github.com/Nirvanjha2004/outflo/internal/models"
)

const (
	searchURLMarker     = "linkedin.com/search/results/"
	resultsListSelector = ".reusable-search__entity-result-list"
	nextButtonSelector  = `button[aria-label="Next"]`
)

// Scraper walks LinkedIn search result pages and stores the profiles it
// finds. One call to ScrapeSearch is one browser session and one sequential
// page-by-page walk; page and profile counters are local to the call.
type Scraper struct {
	cfg        *config.Config
	db         *database.Database
	openWalker func(ctx context.Context) (pageWalker, error)
}

func New(cfg *config.Config, db *database.Database) *Scraper {
	s := &Scraper{cfg: cfg, db: db}
	s.openWalker = s.openBrowserWalker
	return s
}

// ValidateSearchURL rejects URLs outside the LinkedIn search results
// namespace before any browser work starts.
func ValidateSearchURL(searchURL string) error {
	parsed, err := url.Parse(searchURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return ErrInvalidSearchURL
	}
	if !strings.Contains(searchURL, searchURLMarker) {
		return ErrInvalidSearchURL
	}
	return nil
}

// pageWalker is the browser-facing half of one scrape: opening the search
// URL, waiting for results, reading cards and advancing pages. The walk loop
// only sees this interface.
type pageWalker interface {
	Open(searchURL string) error
	WaitResults(wait time.Duration) error
	Cards() []RawProfile
	Advance() (bool, error)
	Close()
}

func (s *Scraper) openBrowserWalker(ctx context.Context) (pageWalker, error) {
	session := newSession(s.cfg)
	page, err := session.EnsureAuthenticated()
	if err != nil {
		session.Close()
		return nil, err
	}

	return &browserWalker{
		ctx:     ctx,
		session: session,
		// Tie page operations to the caller's context so a cancelled scrape
		// aborts at the next navigation or element wait.
		page:      page.Context(ctx),
		extractor: NewResultCardExtractor(s.db),
	}, nil
}

// ScrapeSearch authenticates, walks the search result pages at searchURL and
// stores every new profile, up to the configured scrape limit. It returns
// the profiles stored during this call; on failure after authentication the
// already stored prefix is still returned alongside the error. The browser
// session is released on every exit path.
func (s *Scraper) ScrapeSearch(ctx context.Context, searchURL string) ([]*models.Profile, error) {
	if err := ValidateSearchURL(searchURL); err != nil {
		return nil, err
	}

	walker, err := s.openWalker(ctx)
	if err != nil {
		return nil, err
	}
	defer walker.Close()

	log.Printf("Navigating to search URL: %s", searchURL)
	if err := walker.Open(searchURL); err != nil {
		return nil, err
	}
	if err := pause(ctx, s.cfg.BaseDelay, 2*s.cfg.BaseDelay); err != nil {
		return nil, err
	}

	var stored []*models.Profile
	pageCount := 1

	for len(stored) < s.cfg.ScrapeLimit {
		log.Printf("Scraping page %d...", pageCount)

		if err := walker.WaitResults(s.cfg.ResultsWait); err != nil {
			return stored, err
		}

		records := walker.Cards()
		log.Printf("Found %d new profile cards on this page", len(records))

		for _, raw := range records {
			if len(stored) >= s.cfg.ScrapeLimit {
				break
			}

			saved, err := s.db.InsertProfileIfAbsent(raw.toProfile(searchURL))
			if err != nil {
				// A failed write skips this record, the page loop continues
				log.Printf("Error saving profile %s: %v", raw.ProfileURL, err)
			} else if saved != nil {
				stored = append(stored, saved)
				log.Printf("Saved profile: %s (%d/%d)", saved.FullName, len(stored), s.cfg.ScrapeLimit)
			}

			if err := pause(ctx, s.cfg.BaseDelay/4, s.cfg.BaseDelay/2); err != nil {
				return stored, err
			}
		}

		if len(stored) >= s.cfg.ScrapeLimit {
			log.Printf("Scrape limit of %d reached", s.cfg.ScrapeLimit)
			break
		}

		advanced, err := walker.Advance()
		if err != nil {
			return stored, err
		}
		if !advanced {
			log.Println("No more pages available")
			break
		}

		if err := pause(ctx, s.cfg.BaseDelay, 2*s.cfg.BaseDelay); err != nil {
			return stored, err
		}
		pageCount++
	}

	log.Printf("Scrape finished: %d new profiles across %d pages", len(stored), pageCount)
	return stored, nil
}

// browserWalker drives a live rod page through the search results.
type browserWalker struct {
	ctx       context.Context
	session   *Session
	page      *rod.Page
	extractor CardExtractor
}

func (w *browserWalker) Open(searchURL string) error {
	if err := w.page.Navigate(searchURL); err != nil {
		return fmt.Errorf("failed to open search page: %w", err)
	}
	if err := w.page.WaitLoad(); err != nil {
		return fmt.Errorf("search page did not load: %w", err)
	}
	return nil
}

// WaitResults blocks until the results container renders, bounded by wait.
func (w *browserWalker) WaitResults(wait time.Duration) error {
	if _, err := w.page.Timeout(wait).Element(resultsListSelector); err != nil {
		return waitErr(w.ctx, resultsListSelector, wait)
	}
	return nil
}

func (w *browserWalker) Cards() []RawProfile {
	return w.extractor.Extract(w.page)
}

// Advance activates the "Next" control if it exists and is enabled.
// Returns false when the result set is exhausted.
func (w *browserWalker) Advance() (bool, error) {
	next, err := w.page.Timeout(5 * time.Second).Element(nextButtonSelector)
	if err != nil {
		// A missing button means exhaustion, an aborted context does not
		if ctxErr := w.ctx.Err(); ctxErr != nil {
			return false, ctxErr
		}
		return false, nil
	}
	if disabled, _ := next.Attribute("disabled"); disabled != nil {
		return false, nil
	}

	log.Println("Navigating to next page...")
	if err := next.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return false, fmt.Errorf("failed to click next page: %w", err)
	}
	if err := w.page.WaitLoad(); err != nil {
		return false, fmt.Errorf("next page did not load: %w", err)
	}

	return true, nil
}

func (w *browserWalker) Close() {
	w.session.Close()
}

// waitErr classifies a failed element wait. An aborted context propagates
// as-is so a cancelled scrape is never reported as a timeout; anything else
// means the element never appeared within the bound.
func waitErr(ctx context.Context, selector string, wait time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return &TimeoutError{Selector: selector, Wait: wait}
}

// pause sleeps a random duration in [min, max), honoring ctx cancellation.
// Jitter keeps the request pacing from being trivially fingerprinted.
func pause(ctx context.Context, min, max time.Duration) error {
	delay := min
	if max > min {
		delay += time.Duration(rand.Int63n(int64(max - min)))
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
