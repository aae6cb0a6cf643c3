package scraper

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// JobStatus is the lifecycle of one background scrape.
type JobStatus string

const (
	JobPending   JobStatus = "pending"
	JobRunning   JobStatus = "running"
	JobSucceeded JobStatus = "succeeded"
	JobFailed    JobStatus = "failed"
)

// Job describes one scrape invocation. Profiles stored before a failure are
// kept, so a failed job can still report a non-zero ProfilesStored.
type Job struct {
	ID             string     `json:"id"`
	SearchURL      string     `json:"searchUrl"`
	Status         JobStatus  `json:"status"`
	ProfilesStored int        `json:"profilesStored"`
	Error          string     `json:"error,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	FinishedAt     *time.Time `json:"finishedAt,omitempty"`
}

// JobTracker records in-flight and completed scrape jobs so operators can
// inspect a fire-and-forget scrape instead of guessing from the leads list.
type JobTracker struct {
	mu   sync.RWMutex
	jobs map[string]*Job
}

func NewJobTracker() *JobTracker {
	return &JobTracker{jobs: make(map[string]*Job)}
}

// Create registers a new pending job and returns its snapshot.
func (t *JobTracker) Create(searchURL string) Job {
	job := &Job{
		ID:        uuid.NewString(),
		SearchURL: searchURL,
		Status:    JobPending,
		CreatedAt: time.Now(),
	}

	t.mu.Lock()
	t.jobs[job.ID] = job
	t.mu.Unlock()

	return *job
}

// Get returns a snapshot of the job with the given id.
func (t *JobTracker) Get(id string) (Job, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	job, ok := t.jobs[id]
	if !ok {
		return Job{}, false
	}
	return *job, true
}

// MarkRunning transitions a pending job to running.
func (t *JobTracker) MarkRunning(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if job, ok := t.jobs[id]; ok {
		job.Status = JobRunning
	}
}

// Complete finishes a job, recording how many profiles were stored and the
// terminal error, if any.
func (t *JobTracker) Complete(id string, profilesStored int, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	job, ok := t.jobs[id]
	if !ok {
		return
	}

	now := time.Now()
	job.ProfilesStored = profilesStored
	job.FinishedAt = &now
	if err != nil {
		job.Status = JobFailed
		job.Error = err.Error()
	} else {
		job.Status = JobSucceeded
	}
}
