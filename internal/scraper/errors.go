package scraper

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidSearchURL is returned before any work starts when the given URL
// is not a LinkedIn search results URL.
var ErrInvalidSearchURL = errors.New("invalid LinkedIn search URL format")

// ErrCredentialsMissing is returned when no cookie bundle exists and no
// login credentials are configured.
var ErrCredentialsMissing = errors.New("LinkedIn credentials not provided in environment variables")

// AuthenticationError reports a failed login. A verification checkpoint
// counts as a failure since the session is not usable for scraping.
type AuthenticationError struct {
	URL    string
	Reason string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("LinkedIn login failed (%s): landed on %s", e.Reason, e.URL)
}

// TimeoutError reports that an expected page element never appeared within
// the bounded wait. It aborts the current scrape.
type TimeoutError struct {
	Selector string
	Wait     time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("element %q did not appear within %s", e.Selector, e.Wait)
}
