package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/dgallion1/designdoc/internal/analyze"
	"github.com/dgallion1/designdoc/internal/pipeline"
	"github.com/dgallion1/designdoc/internal/upload"
	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"
)

const docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	req := analyze.Request{
		StoryName:         strings.TrimSpace(r.FormValue("story_name")),
		StoryDescription:  r.FormValue("story_description"),
		CodeSnippet:       r.FormValue("code_snippet"),
		AdditionalContext: r.FormValue("additional_context"),
	}
	if req.StoryName == "" {
		jsonError(w, "story_name is required", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.CodeSnippet) == "" {
		jsonError(w, "code_snippet is required", http.StatusBadRequest)
		return
	}

	// An original-code upload is optional; without it the snippet alone is
	// analyzed.
	var originalCode string
	var filename string
	file, header, err := r.FormFile("original")
	if err == nil {
		defer file.Close()

		filename = sanitizeFilename(header.Filename)
		extractor, err := upload.ForFile(filename, s.cfg.PDFFallbackPdftotext)
		if err != nil {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}

		limited := io.LimitReader(file, s.cfg.MaxUploadBytes+1)
		text, err := extractor.Extract(limited, filename)
		if err != nil {
			jsonError(w, fmt.Sprintf("extract %s: %s", filename, err), http.StatusBadRequest)
			return
		}
		if int64(len(text)) > s.cfg.MaxUploadBytes {
			jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
			return
		}
		originalCode = analyze.RelevantCode(text, req.CodeSnippet)
	}

	now := time.Now()
	job := &pipeline.Job{
		ID:        pipeline.NewJobID(),
		Status:    pipeline.StatusQueued,
		Phase:     "queued",
		StoryName: req.StoryName,
		Filename:  filename,
		CreatedAt: now,
		UpdatedAt: now,
	}
	job.SetRequest(req, originalCode)

	if err := s.orchestrator.Submit(job); err != nil {
		jsonError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]any{
		"job_id":   job.ID,
		"status":   job.Status,
		"poll_url": fmt.Sprintf("/api/documents/%s/status", job.ID),
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	snap := job.Snapshot()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snap)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}

	data, name := job.Result()
	if data == nil {
		snap := job.Snapshot()
		jsonError(w, fmt.Sprintf("document not ready (status %s)", snap.Status), http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", docxMIME)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Write(data)
}

// handlePreview renders the raw analysis markdown as HTML, the API
// counterpart of the original UI's preview pane.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}

	analysis := job.Analysis()
	if analysis == "" {
		snap := job.Snapshot()
		jsonError(w, fmt.Sprintf("analysis not ready (status %s)", snap.Status), http.StatusConflict)
		return
	}

	var buf strings.Builder
	if err := goldmark.Convert([]byte(analysis), &buf); err != nil {
		jsonError(w, "render preview: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(buf.String()))
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
