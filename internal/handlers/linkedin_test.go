package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Nirvanjha2004/outflo/internal/database"
	"github.com/Nirvanjha2004/outflo/internal/models"
	"github.com/Nirvanjha2004/outflo/internal/scraper"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	cwd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	root := filepath.Join(cwd, "..", "..")
	if err := os.Chdir(root); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type fakeScraper struct {
	profiles []*models.Profile
	err      error
	lastURL  string
	called   chan struct{}
}

func (f *fakeScraper) ScrapeSearch(ctx context.Context, searchURL string) ([]*models.Profile, error) {
	f.lastURL = searchURL
	if f.called != nil {
		close(f.called)
	}
	return f.profiles, f.err
}

func newTestDB(t *testing.T) *database.Database {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "handlers.db")
	db, err := database.NewDatabase(dbPath)
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func invokeHandler(t *testing.T, handler gin.HandlerFunc, method, path string, params gin.Params, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal payload: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = req
	c.Params = params
	handler(c)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return body
}

func storeProfile(t *testing.T, db *database.Database, url, name string) *models.Profile {
	t.Helper()
	profile, err := db.InsertProfileIfAbsent(&models.Profile{
		FullName:   name,
		JobTitle:   "Engineer",
		Company:    "Acme",
		ProfileURL: url,
	})
	if err != nil || profile == nil {
		t.Fatalf("failed to store profile: profile=%v err=%v", profile, err)
	}
	return profile
}

func waitForJob(t *testing.T, jobs *scraper.JobTracker, id string) scraper.Job {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if job, ok := jobs.Get(id); ok && job.FinishedAt != nil {
			return job
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("job %s never finished", id)
	return scraper.Job{}
}

func TestScrapeStartsBackgroundJob(t *testing.T) {
	db := newTestDB(t)
	fake := &fakeScraper{
		profiles: []*models.Profile{{ID: 1}, {ID: 2}},
		called:   make(chan struct{}),
	}
	jobs := scraper.NewJobTracker()
	handler := NewLinkedInHandler(db, fake, jobs)

	searchURL := "https://www.linkedin.com/search/results/people/?keywords=engineer"
	rec := invokeHandler(t, handler.Scrape, http.MethodPost, "/linkedin/scrape", nil,
		models.ScrapeRequest{SearchURL: searchURL})

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	jobID, _ := body["jobId"].(string)
	if jobID == "" {
		t.Fatalf("expected jobId in response, got %v", body)
	}

	select {
	case <-fake.called:
	case <-time.After(2 * time.Second):
		t.Fatalf("scraper was never invoked")
	}
	if fake.lastURL != searchURL {
		t.Fatalf("scraper got wrong URL: %s", fake.lastURL)
	}

	job := waitForJob(t, jobs, jobID)
	if job.Status != scraper.JobSucceeded || job.ProfilesStored != 2 {
		t.Fatalf("unexpected job outcome: %+v", job)
	}
}

func TestScrapeRecordsFailure(t *testing.T) {
	db := newTestDB(t)
	fake := &fakeScraper{
		profiles: []*models.Profile{{ID: 1}},
		err:      errors.New("results never rendered"),
	}
	jobs := scraper.NewJobTracker()
	handler := NewLinkedInHandler(db, fake, jobs)

	rec := invokeHandler(t, handler.Scrape, http.MethodPost, "/linkedin/scrape", nil,
		models.ScrapeRequest{SearchURL: "https://www.linkedin.com/search/results/people/?keywords=x"})
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202 even when the scrape will fail, got %d", rec.Code)
	}

	jobID := decodeBody(t, rec)["jobId"].(string)
	job := waitForJob(t, jobs, jobID)
	if job.Status != scraper.JobFailed {
		t.Fatalf("expected failed job, got %s", job.Status)
	}
	// The partial prefix stored before the failure is still reported
	if job.ProfilesStored != 1 {
		t.Fatalf("expected partial count 1, got %d", job.ProfilesStored)
	}
	if job.Error == "" {
		t.Fatalf("expected error message on job")
	}
}

func TestScrapeRejectsInvalidURL(t *testing.T) {
	db := newTestDB(t)
	handler := NewLinkedInHandler(db, &fakeScraper{}, scraper.NewJobTracker())

	rec := invokeHandler(t, handler.Scrape, http.MethodPost, "/linkedin/scrape", nil,
		models.ScrapeRequest{SearchURL: "https://www.linkedin.com/in/jane-smith"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-search URL, got %d", rec.Code)
	}

	rec = invokeHandler(t, handler.Scrape, http.MethodPost, "/linkedin/scrape", nil, map[string]string{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing URL, got %d", rec.Code)
	}
}

func TestListProfiles(t *testing.T) {
	db := newTestDB(t)
	handler := NewLinkedInHandler(db, &fakeScraper{}, scraper.NewJobTracker())

	storeProfile(t, db, "https://www.linkedin.com/in/one", "One Person")
	storeProfile(t, db, "https://www.linkedin.com/in/two", "Two Person")

	rec := invokeHandler(t, handler.List, http.MethodGet, "/linkedin", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["count"].(float64) != 2 {
		t.Fatalf("expected count 2, got %v", body["count"])
	}
}

func TestListProfilesEmpty(t *testing.T) {
	db := newTestDB(t)
	handler := NewLinkedInHandler(db, &fakeScraper{}, scraper.NewJobTracker())

	rec := invokeHandler(t, handler.List, http.MethodGet, "/linkedin", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["count"].(float64) != 0 {
		t.Fatalf("expected count 0, got %v", body["count"])
	}
	if data, ok := body["data"].([]interface{}); !ok || len(data) != 0 {
		t.Fatalf("expected empty data array, got %v", body["data"])
	}
}

func TestListProfilesInvalidLimit(t *testing.T) {
	db := newTestDB(t)
	handler := NewLinkedInHandler(db, &fakeScraper{}, scraper.NewJobTracker())

	rec := invokeHandler(t, handler.List, http.MethodGet, "/linkedin?limit=bogus", nil, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad limit, got %d", rec.Code)
	}
}

func TestGetProfileHandler(t *testing.T) {
	db := newTestDB(t)
	handler := NewLinkedInHandler(db, &fakeScraper{}, scraper.NewJobTracker())

	stored := storeProfile(t, db, "https://www.linkedin.com/in/one", "One Person")

	rec := invokeHandler(t, handler.Get, http.MethodGet, "/linkedin/1",
		gin.Params{{Key: "id", Value: "1"}}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	if data["fullName"] != stored.FullName {
		t.Fatalf("unexpected profile payload: %v", data)
	}

	rec = invokeHandler(t, handler.Get, http.MethodGet, "/linkedin/99",
		gin.Params{{Key: "id", Value: "99"}}, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown profile, got %d", rec.Code)
	}

	rec = invokeHandler(t, handler.Get, http.MethodGet, "/linkedin/abc",
		gin.Params{{Key: "id", Value: "abc"}}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d", rec.Code)
	}
}

func TestDeleteProfileHandler(t *testing.T) {
	db := newTestDB(t)
	handler := NewLinkedInHandler(db, &fakeScraper{}, scraper.NewJobTracker())

	storeProfile(t, db, "https://www.linkedin.com/in/one", "One Person")

	rec := invokeHandler(t, handler.Delete, http.MethodDelete, "/linkedin/1",
		gin.Params{{Key: "id", Value: "1"}}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = invokeHandler(t, handler.Delete, http.MethodDelete, "/linkedin/1",
		gin.Params{{Key: "id", Value: "1"}}, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", rec.Code)
	}
}

func TestGetJobHandler(t *testing.T) {
	db := newTestDB(t)
	jobs := scraper.NewJobTracker()
	handler := NewLinkedInHandler(db, &fakeScraper{}, jobs)

	job := jobs.Create("https://www.linkedin.com/search/results/people/?keywords=x")

	rec := invokeHandler(t, handler.GetJob, http.MethodGet, "/linkedin/jobs/"+job.ID,
		gin.Params{{Key: "id", Value: job.ID}}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	if data["status"] != string(scraper.JobPending) {
		t.Fatalf("expected pending job, got %v", data["status"])
	}

	rec = invokeHandler(t, handler.GetJob, http.MethodGet, "/linkedin/jobs/missing",
		gin.Params{{Key: "id", Value: "missing"}}, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown job, got %d", rec.Code)
	}
}
