package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Nirvanjha2004/outflo/internal/database"
	"github.com/Nirvanjha2004/outflo/internal/models"
	"github.com/Nirvanjha2004/outflo/internal/scraper"
	"github.com/Nirvanjha2004/outflo/internal/util"
	"github.com/Nirvanjha2004/outflo/internal/validation"
)

// scrapeTimeout bounds a background scrape so a stuck browser session
// cannot hold resources forever.
const scrapeTimeout = 30 * time.Minute

// SearchScraper runs one LinkedIn search scrape.
type SearchScraper interface {
	ScrapeSearch(ctx context.Context, searchURL string) ([]*models.Profile, error)
}

type LinkedInHandler struct {
	db      *database.Database
	scraper SearchScraper
	jobs    *scraper.JobTracker
}

func NewLinkedInHandler(db *database.Database, s SearchScraper, jobs *scraper.JobTracker) *LinkedInHandler {
	return &LinkedInHandler{db: db, scraper: s, jobs: jobs}
}

// Scrape godoc
// @Summary Start scraping a LinkedIn search URL
// @Description Validates the search URL and kicks off a background scrape. The response returns immediately with a job id; progress is visible via the jobs endpoint and the leads listing.
// @Tags linkedin
// @Accept json
// @Produce json
// @Param request body models.ScrapeRequest true "LinkedIn search results URL"
// @Success 202 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Invalid or missing search URL"
// @Router /linkedin/scrape [post]
func (h *LinkedInHandler) Scrape(c *gin.Context) {
	var req models.ScrapeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "LinkedIn search URL is required",
		})
		return
	}

	if err := scraper.ValidateSearchURL(req.SearchURL); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid LinkedIn search URL format",
		})
		return
	}

	job := h.jobs.Create(req.SearchURL)

	// The scrape is long-running; acknowledge now and do the work in the
	// background. Failures are observable via the job, never this response.
	go h.runScrape(job.ID, req.SearchURL)

	c.JSON(http.StatusAccepted, gin.H{
		"success": true,
		"message": "Scraping initiated. Check the leads endpoint for results.",
		"jobId":   job.ID,
	})
}

func (h *LinkedInHandler) runScrape(jobID, searchURL string) {
	ctx, cancel := context.WithTimeout(context.Background(), scrapeTimeout)
	defer cancel()

	h.jobs.MarkRunning(jobID)

	profiles, err := h.scraper.ScrapeSearch(ctx, searchURL)
	if err != nil {
		log.Printf("Background scraping failed: %v", err)
	}
	h.jobs.Complete(jobID, len(profiles), err)
}

// List godoc
// @Summary List stored LinkedIn profiles
// @Description Returns stored profiles, newest first. A non-empty query performs a ranked text search over name, title, company, location and summary.
// @Tags linkedin
// @Produce json
// @Param query query string false "Text search query"
// @Param limit query int false "Maximum number of profiles (default 100)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Invalid limit"
// @Router /linkedin [get]
func (h *LinkedInHandler) List(c *gin.Context) {
	limit, err := validation.ParseLimit(c.Query("limit"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	profiles, err := h.db.SearchProfiles(c.Query("query"), limit)
	if err != nil {
		util.SafeErrorResponse(c, http.StatusInternalServerError, "Error retrieving LinkedIn profiles", err)
		return
	}
	if profiles == nil {
		profiles = []*models.Profile{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(profiles),
		"data":    profiles,
	})
}

// Get godoc
// @Summary Get one stored profile
// @Tags linkedin
// @Produce json
// @Param id path int true "Profile ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /linkedin/{id} [get]
func (h *LinkedInHandler) Get(c *gin.Context) {
	id, err := validation.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	profile, err := h.db.GetProfileByID(id)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Profile not found"})
		return
	}
	if err != nil {
		util.SafeErrorResponse(c, http.StatusInternalServerError, "Error retrieving LinkedIn profile", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": profile})
}

// Delete godoc
// @Summary Delete one stored profile
// @Tags linkedin
// @Produce json
// @Param id path int true "Profile ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /linkedin/{id} [delete]
func (h *LinkedInHandler) Delete(c *gin.Context) {
	id, err := validation.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	err = h.db.DeleteProfile(id)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Profile not found"})
		return
	}
	if err != nil {
		util.SafeErrorResponse(c, http.StatusInternalServerError, "Error deleting LinkedIn profile", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile deleted successfully"})
}

// GetJob godoc
// @Summary Inspect a background scrape job
// @Tags linkedin
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{} "Job not found"
// @Router /linkedin/jobs/{id} [get]
func (h *LinkedInHandler) GetJob(c *gin.Context) {
	job, ok := h.jobs.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Job not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": job})
}
