package database

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Nirvanjha2004/outflo/internal/models"
)

// CreateCampaign stores a new campaign and fills in its generated fields.
func (d *Database) CreateCampaign(campaign *models.Campaign) error {
	leadsJSON, err := json.Marshal(emptyIfNil(campaign.Leads))
	if err != nil {
		return fmt.Errorf("failed to marshal leads: %w", err)
	}
	accountsJSON, err := json.Marshal(emptyIfNil(campaign.AccountIDs))
	if err != nil {
		return fmt.Errorf("failed to marshal account IDs: %w", err)
	}

	query := `
		INSERT INTO campaigns (name, description, status, leads_json, account_ids_json)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := d.db.Exec(query, campaign.Name, campaign.Description,
		campaign.Status, string(leadsJSON), string(accountsJSON))
	if err != nil {
		return fmt.Errorf("failed to create campaign: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get campaign ID: %w", err)
	}

	// Re-read the row so the caller sees the stored timestamps, not a
	// clock reading that disagrees with later fetches
	stored, err := d.GetCampaign(id)
	if err != nil {
		return fmt.Errorf("failed to read created campaign: %w", err)
	}
	*campaign = *stored

	return nil
}

// GetCampaign retrieves a campaign by id, including soft-deleted ones.
// Returns ErrNotFound when no campaign has that id.
func (d *Database) GetCampaign(id int64) (*models.Campaign, error) {
	query := `
		SELECT id, name, description, status, leads_json, account_ids_json, created_at, updated_at
		FROM campaigns
		WHERE id = ?
	`
	return scanCampaign(d.db.QueryRow(query, id))
}

// ListCampaigns returns all campaigns that are not soft-deleted, newest first.
func (d *Database) ListCampaigns() ([]*models.Campaign, error) {
	query := `
		SELECT id, name, description, status, leads_json, account_ids_json, created_at, updated_at
		FROM campaigns
		WHERE status != ?
		ORDER BY created_at DESC, id DESC
	`

	rows, err := d.db.Query(query, models.CampaignStatusDeleted)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []*models.Campaign
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, campaign)
	}

	return campaigns, rows.Err()
}

// UpdateCampaign persists name, description, status, leads and account IDs.
func (d *Database) UpdateCampaign(campaign *models.Campaign) error {
	leadsJSON, err := json.Marshal(emptyIfNil(campaign.Leads))
	if err != nil {
		return fmt.Errorf("failed to marshal leads: %w", err)
	}
	accountsJSON, err := json.Marshal(emptyIfNil(campaign.AccountIDs))
	if err != nil {
		return fmt.Errorf("failed to marshal account IDs: %w", err)
	}

	query := `
		UPDATE campaigns
		SET name = ?, description = ?, status = ?, leads_json = ?, account_ids_json = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	result, err := d.db.Exec(query, campaign.Name, campaign.Description, campaign.Status,
		string(leadsJSON), string(accountsJSON), campaign.ID)
	if err != nil {
		return fmt.Errorf("failed to update campaign: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// SoftDeleteCampaign marks a campaign deleted without removing the record.
// Returns ErrNotFound when no campaign has that id.
func (d *Database) SoftDeleteCampaign(id int64) error {
	result, err := d.db.Exec(`
		UPDATE campaigns SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?
	`, models.CampaignStatusDeleted, id)
	if err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func scanCampaign(row rowScanner) (*models.Campaign, error) {
	var campaign models.Campaign
	var leadsJSON, accountsJSON string

	err := row.Scan(&campaign.ID, &campaign.Name, &campaign.Description, &campaign.Status,
		&leadsJSON, &accountsJSON, &campaign.CreatedAt, &campaign.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan campaign: %w", err)
	}

	if err := json.Unmarshal([]byte(leadsJSON), &campaign.Leads); err != nil {
		return nil, fmt.Errorf("failed to unmarshal leads: %w", err)
	}
	if err := json.Unmarshal([]byte(accountsJSON), &campaign.AccountIDs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal account IDs: %w", err)
	}

	return &campaign, nil
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
