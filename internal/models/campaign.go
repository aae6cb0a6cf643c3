package models

import "time"

// Campaign statuses. Deleted is a soft-delete marker: the record stays in
// the database but is hidden from listings and accepts no further changes.
const (
	CampaignStatusActive   = "active"
	CampaignStatusInactive = "inactive"
	CampaignStatusDeleted  = "deleted"
)

// ValidCampaignStatus reports whether s is a status a client may set.
func ValidCampaignStatus(s string) bool {
	return s == CampaignStatusActive || s == CampaignStatusInactive || s == CampaignStatusDeleted
}

// Campaign represents an outreach campaign.
type Campaign struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Leads       []string  `json:"leads"`
	AccountIDs  []string  `json:"accountIDs"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CampaignRequest is the body of POST /campaigns and PUT /campaigns/:id.
// On update, zero-valued fields are left untouched.
type CampaignRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	Leads       []string `json:"leads"`
	AccountIDs  []string `json:"accountIDs"`
}
