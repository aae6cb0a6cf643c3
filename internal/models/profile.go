package models

import "time"

// Profile represents one scraped LinkedIn profile. The profile URL is the
// canonical identifier; the store enforces its uniqueness.
type Profile struct {
	ID               int64     `json:"id"`
	FullName         string    `json:"fullName"`
	JobTitle         string    `json:"jobTitle"`
	Company          string    `json:"company"`
	Location         string    `json:"location"`
	ProfileURL       string    `json:"profileUrl"`
	ProfileImageURL  string    `json:"profileImageUrl,omitempty"`
	ConnectionDegree string    `json:"connectionDegree,omitempty"`
	AboutSummary     string    `json:"aboutSummary,omitempty"`
	SearchQuery      string    `json:"searchQuery,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// ScrapeRequest is the body of POST /linkedin/scrape.
type ScrapeRequest struct {
	SearchURL string `json:"searchUrl" binding:"required"`
}
