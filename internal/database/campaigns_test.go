package database

import (
	"errors"
	"testing"

	"github.com/Nirvanjha2004/outflo/internal/models"
)

func testCampaign(name string) *models.Campaign {
	return &models.Campaign{
		Name:        name,
		Description: "Q3 outbound push",
		Status:      models.CampaignStatusActive,
		Leads:       []string{"https://www.linkedin.com/in/lead-one"},
		AccountIDs:  []string{"acct-1", "acct-2"},
	}
}

func TestCampaignLifecycle(t *testing.T) {
	db := newTestDatabase(t)
	defer db.Close()

	campaign := testCampaign("Launch")
	if err := db.CreateCampaign(campaign); err != nil {
		t.Fatalf("CreateCampaign failed: %v", err)
	}
	if campaign.ID == 0 {
		t.Fatalf("expected campaign ID to be set")
	}

	fetched, err := db.GetCampaign(campaign.ID)
	if err != nil {
		t.Fatalf("GetCampaign failed: %v", err)
	}
	if fetched.Name != "Launch" || len(fetched.Leads) != 1 || len(fetched.AccountIDs) != 2 {
		t.Fatalf("GetCampaign mismatch: %+v", fetched)
	}

	fetched.Status = models.CampaignStatusInactive
	fetched.Leads = append(fetched.Leads, "https://www.linkedin.com/in/lead-two")
	if err := db.UpdateCampaign(fetched); err != nil {
		t.Fatalf("UpdateCampaign failed: %v", err)
	}

	updated, err := db.GetCampaign(campaign.ID)
	if err != nil {
		t.Fatalf("GetCampaign after update failed: %v", err)
	}
	if updated.Status != models.CampaignStatusInactive || len(updated.Leads) != 2 {
		t.Fatalf("update not persisted: %+v", updated)
	}

	if err := db.SoftDeleteCampaign(campaign.ID); err != nil {
		t.Fatalf("SoftDeleteCampaign failed: %v", err)
	}

	// The record survives the soft delete
	deleted, err := db.GetCampaign(campaign.ID)
	if err != nil {
		t.Fatalf("GetCampaign after delete failed: %v", err)
	}
	if deleted.Status != models.CampaignStatusDeleted {
		t.Fatalf("expected deleted status, got %s", deleted.Status)
	}
}

func TestCreateCampaignReturnsStoredTimestamps(t *testing.T) {
	db := newTestDatabase(t)
	defer db.Close()

	campaign := testCampaign("Stamped")
	if err := db.CreateCampaign(campaign); err != nil {
		t.Fatalf("CreateCampaign failed: %v", err)
	}

	fetched, err := db.GetCampaign(campaign.ID)
	if err != nil {
		t.Fatalf("GetCampaign failed: %v", err)
	}
	// The create response and later reads must agree on the timestamps
	if !campaign.CreatedAt.Equal(fetched.CreatedAt) {
		t.Fatalf("createdAt mismatch: create=%s fetch=%s", campaign.CreatedAt, fetched.CreatedAt)
	}
	if !campaign.UpdatedAt.Equal(fetched.UpdatedAt) {
		t.Fatalf("updatedAt mismatch: create=%s fetch=%s", campaign.UpdatedAt, fetched.UpdatedAt)
	}
}

func TestListCampaignsExcludesDeleted(t *testing.T) {
	db := newTestDatabase(t)
	defer db.Close()

	kept := testCampaign("Kept")
	if err := db.CreateCampaign(kept); err != nil {
		t.Fatalf("CreateCampaign failed: %v", err)
	}
	removed := testCampaign("Removed")
	if err := db.CreateCampaign(removed); err != nil {
		t.Fatalf("CreateCampaign failed: %v", err)
	}
	if err := db.SoftDeleteCampaign(removed.ID); err != nil {
		t.Fatalf("SoftDeleteCampaign failed: %v", err)
	}

	campaigns, err := db.ListCampaigns()
	if err != nil {
		t.Fatalf("ListCampaigns failed: %v", err)
	}
	if len(campaigns) != 1 || campaigns[0].ID != kept.ID {
		t.Fatalf("expected only the kept campaign, got %d entries", len(campaigns))
	}
}

func TestCampaignNilSlicesStoredAsEmpty(t *testing.T) {
	db := newTestDatabase(t)
	defer db.Close()

	campaign := &models.Campaign{
		Name:        "Bare",
		Description: "No leads yet",
		Status:      models.CampaignStatusActive,
	}
	if err := db.CreateCampaign(campaign); err != nil {
		t.Fatalf("CreateCampaign failed: %v", err)
	}

	fetched, err := db.GetCampaign(campaign.ID)
	if err != nil {
		t.Fatalf("GetCampaign failed: %v", err)
	}
	if fetched.Leads == nil || fetched.AccountIDs == nil {
		t.Fatalf("expected empty slices, got leads=%v accounts=%v", fetched.Leads, fetched.AccountIDs)
	}
	if len(fetched.Leads) != 0 || len(fetched.AccountIDs) != 0 {
		t.Fatalf("expected no entries, got leads=%v accounts=%v", fetched.Leads, fetched.AccountIDs)
	}
}

func TestCampaignNotFound(t *testing.T) {
	db := newTestDatabase(t)
	defer db.Close()

	if _, err := db.GetCampaign(42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown campaign, got %v", err)
	}
	if err := db.SoftDeleteCampaign(42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound deleting unknown campaign, got %v", err)
	}
	if err := db.UpdateCampaign(&models.Campaign{ID: 42, Name: "x", Description: "y", Status: models.CampaignStatusActive}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound updating unknown campaign, got %v", err)
	}
}
