package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nirvanjha2004/outflo/internal/database"
	"github.com/Nirvanjha2004/outflo/internal/models"
	"github.com/Nirvanjha2004/outflo/internal/util"
	"github.com/Nirvanjha2004/outflo/internal/validation"
)

type CampaignHandler struct {
	db *database.Database
}

func NewCampaignHandler(db *database.Database) *CampaignHandler {
	return &CampaignHandler{db: db}
}

// List godoc
// @Summary List campaigns
// @Description Returns all campaigns that have not been soft-deleted, newest first.
// @Tags campaigns
// @Produce json
// @Success 200 {array} models.Campaign
// @Router /campaigns [get]
func (h *CampaignHandler) List(c *gin.Context) {
	campaigns, err := h.db.ListCampaigns()
	if err != nil {
		util.SafeErrorResponse(c, http.StatusInternalServerError, "Error fetching campaigns", err)
		return
	}
	if campaigns == nil {
		campaigns = []*models.Campaign{}
	}

	c.JSON(http.StatusOK, campaigns)
}

// Get godoc
// @Summary Get one campaign
// @Tags campaigns
// @Produce json
// @Param id path int true "Campaign ID"
// @Success 200 {object} models.Campaign
// @Failure 404 {object} map[string]interface{} "Campaign not found"
// @Router /campaigns/{id} [get]
func (h *CampaignHandler) Get(c *gin.Context) {
	campaign, ok := h.loadCampaign(c)
	if !ok {
		return
	}

	// A soft-deleted campaign is indistinguishable from a missing one
	if campaign.Status == models.CampaignStatusDeleted {
		c.JSON(http.StatusNotFound, gin.H{"message": "Campaign not found"})
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// Create godoc
// @Summary Create a campaign
// @Tags campaigns
// @Accept json
// @Produce json
// @Param campaign body models.CampaignRequest true "Campaign data"
// @Success 201 {object} models.Campaign
// @Failure 400 {object} map[string]interface{} "Invalid campaign data"
// @Router /campaigns [post]
func (h *CampaignHandler) Create(c *gin.Context) {
	var req models.CampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data"})
		return
	}

	if req.Name == "" || req.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name and description are required"})
		return
	}
	if req.Status != "" && !models.ValidCampaignStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status value"})
		return
	}

	status := req.Status
	if status == "" {
		status = models.CampaignStatusActive
	}

	campaign := &models.Campaign{
		Name:        req.Name,
		Description: req.Description,
		Status:      status,
		Leads:       req.Leads,
		AccountIDs:  req.AccountIDs,
	}

	if err := h.db.CreateCampaign(campaign); err != nil {
		util.SafeErrorResponse(c, http.StatusInternalServerError, "Error creating campaign", err)
		return
	}

	c.JSON(http.StatusCreated, campaign)
}

// Update godoc
// @Summary Update a campaign
// @Description Applies the provided fields to an existing campaign. Deleted campaigns cannot be updated.
// @Tags campaigns
// @Accept json
// @Produce json
// @Param id path int true "Campaign ID"
// @Param campaign body models.CampaignRequest true "Fields to update"
// @Success 200 {object} models.Campaign
// @Failure 400 {object} map[string]interface{} "Invalid data or deleted campaign"
// @Failure 404 {object} map[string]interface{} "Campaign not found"
// @Router /campaigns/{id} [put]
func (h *CampaignHandler) Update(c *gin.Context) {
	campaign, ok := h.loadCampaign(c)
	if !ok {
		return
	}

	if campaign.Status == models.CampaignStatusDeleted {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cannot update a deleted campaign"})
		return
	}

	var req models.CampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data"})
		return
	}
	if req.Status != "" && !models.ValidCampaignStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status value"})
		return
	}

	// Only provided fields change
	if req.Name != "" {
		campaign.Name = req.Name
	}
	if req.Description != "" {
		campaign.Description = req.Description
	}
	if req.Status != "" {
		campaign.Status = req.Status
	}
	if req.Leads != nil {
		campaign.Leads = req.Leads
	}
	if req.AccountIDs != nil {
		campaign.AccountIDs = req.AccountIDs
	}

	if err := h.db.UpdateCampaign(campaign); err != nil {
		util.SafeErrorResponse(c, http.StatusInternalServerError, "Error updating campaign", err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// Delete godoc
// @Summary Soft-delete a campaign
// @Description Marks the campaign deleted. The record is retained but disappears from listings and accepts no further changes.
// @Tags campaigns
// @Produce json
// @Param id path int true "Campaign ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Campaign already deleted"
// @Failure 404 {object} map[string]interface{} "Campaign not found"
// @Router /campaigns/{id} [delete]
func (h *CampaignHandler) Delete(c *gin.Context) {
	campaign, ok := h.loadCampaign(c)
	if !ok {
		return
	}

	if campaign.Status == models.CampaignStatusDeleted {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Campaign already deleted"})
		return
	}

	if err := h.db.SoftDeleteCampaign(campaign.ID); err != nil {
		util.SafeErrorResponse(c, http.StatusInternalServerError, "Error deleting campaign", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Campaign deleted successfully"})
}

func (h *CampaignHandler) loadCampaign(c *gin.Context) (*models.Campaign, bool) {
	id, err := validation.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return nil, false
	}

	campaign, err := h.db.GetCampaign(id)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Campaign not found"})
		return nil, false
	}
	if err != nil {
		util.SafeErrorResponse(c, http.StatusInternalServerError, "Error fetching campaign", err)
		return nil, false
	}

	return campaign, true
}
