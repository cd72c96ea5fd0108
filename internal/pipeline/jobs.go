package pipeline

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/dgallion1/designdoc/internal/analyze"
)

// JobStatus represents the state of a document generation job.
type JobStatus string

const (
	StatusQueued     JobStatus = "queued"
	StatusAnalyzing  JobStatus = "analyzing"
	StatusConverting JobStatus = "converting"
	StatusRendering  JobStatus = "rendering"
	StatusCompleted  JobStatus = "completed"
	StatusPartial    JobStatus = "partial"
	StatusFailed     JobStatus = "failed"
)

// Job tracks the state of a single design document generation.
type Job struct {
	mu sync.Mutex

	ID string `json:"job_id"`

	Status    JobStatus `json:"status"`
	Phase     string    `json:"phase"`
	StoryName string    `json:"story_name"`
	Filename  string    `json:"filename,omitempty"` // uploaded original-code file, if any

	Progress Progress `json:"progress"`

	ContentHash string    `json:"content_hash,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Internal: not serialized.
	req          analyze.Request
	originalCode string
	analysis     string
	result       []byte
	resultName   string
	errors       []string
}

// Progress tracks processing progress.
type Progress struct {
	TotalChunks     int      `json:"total_chunks"`
	ChunksProcessed int      `json:"chunks_processed"`
	Blocks          int      `json:"blocks"`
	TOCEntries      int      `json:"toc_entries"`
	Errors          []string `json:"errors"`
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		if now.Sub(job.UpdatedAt) > s.ttl {
			delete(s.jobs, id)
		}
	}
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// AddError records an error.
func (j *Job) AddError(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, err)
	j.Progress.Errors = j.errors
	j.UpdatedAt = time.Now()
}

// IncrChunksProcessed atomically increments chunks processed.
func (j *Job) IncrChunksProcessed() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.ChunksProcessed++
	j.UpdatedAt = time.Now()
}

// SetTotalChunks records total chunk count.
func (j *Job) SetTotalChunks(n int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.TotalChunks = n
	j.UpdatedAt = time.Now()
}

// SetDocumentCounts records the converted document shape.
func (j *Job) SetDocumentCounts(blocks, tocEntries int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.Blocks = blocks
	j.Progress.TOCEntries = tocEntries
	j.UpdatedAt = time.Now()
}

// SetRequest sets the generation inputs.
func (j *Job) SetRequest(req analyze.Request, originalCode string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.req = req
	j.originalCode = originalCode
}

// Request returns the generation inputs.
func (j *Job) Request() (analyze.Request, string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.req, j.originalCode
}

// SetAnalysis stores the joined analysis markdown.
func (j *Job) SetAnalysis(text string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.analysis = text
	j.ContentHash = ContentHashHex([]byte(text))
	j.UpdatedAt = time.Now()
}

// Analysis returns the analysis markdown, empty until analysis completes.
func (j *Job) Analysis() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.analysis
}

// SetResult stores the rendered docx bytes and download filename.
func (j *Job) SetResult(data []byte, name string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.result = data
	j.resultName = name
	j.UpdatedAt = time.Now()
}

// Result returns the rendered docx bytes and filename, nil until rendering
// completes.
func (j *Job) Result() ([]byte, string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.result, j.resultName
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID          string    `json:"job_id"`
	Status      JobStatus `json:"status"`
	Phase       string    `json:"phase"`
	StoryName   string    `json:"story_name"`
	Filename    string    `json:"filename,omitempty"`
	ContentHash string    `json:"content_hash,omitempty"`
	Progress    Progress  `json:"progress"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := j.Progress.Errors
	if errs == nil {
		errs = []string{}
	}
	return JobSnapshot{
		ID:          j.ID,
		Status:      j.Status,
		Phase:       j.Phase,
		StoryName:   j.StoryName,
		Filename:    j.Filename,
		ContentHash: j.ContentHash,
		Progress: Progress{
			TotalChunks:     j.Progress.TotalChunks,
			ChunksProcessed: j.Progress.ChunksProcessed,
			Blocks:          j.Progress.Blocks,
			TOCEntries:      j.Progress.TOCEntries,
			Errors:          errs,
		},
	}
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
