package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dgallion1/designdoc/internal/analyze"
	"github.com/dgallion1/designdoc/internal/chunker"
	"github.com/dgallion1/designdoc/internal/docx"
	"github.com/dgallion1/designdoc/internal/markdown"
)

// Worker processes a single document generation job.
type Worker struct {
	groq     *analyze.GroqClient
	log      *slog.Logger
	chunkCfg chunker.Config

	maxConcurrentAnalyze int
}

func NewWorker(groq *analyze.GroqClient, log *slog.Logger, chunkCfg chunker.Config, maxAnalyze int) *Worker {
	if maxAnalyze <= 0 {
		maxAnalyze = 1
	}
	return &Worker{
		groq:                 groq,
		log:                  log,
		chunkCfg:             chunkCfg,
		maxConcurrentAnalyze: maxAnalyze,
	}
}

// Process runs the full generation pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "story", job.StoryName)
	req, originalCode := job.Request()

	// Phase 1: Analyze. Oversized original code is chunked and each chunk
	// analyzed independently; results are joined in chunk order.
	job.SetStatus(StatusAnalyzing, "analyzing")
	chunks := chunker.Split(originalCode, w.chunkCfg)
	if len(chunks) == 0 {
		// No original code uploaded; the snippet alone drives one call.
		chunks = []string{""}
	}
	job.SetTotalChunks(len(chunks))
	log.Info("analyzing", "chunks", len(chunks))

	parts := make([]string, len(chunks))
	type chunkResult struct {
		idx int
		err error
	}
	results := make(chan chunkResult, len(chunks))
	sem := make(chan struct{}, w.maxConcurrentAnalyze)

	for i, chunk := range chunks {
		sem <- struct{}{}
		go func(i int, chunk string) {
			defer func() { <-sem }()
			prompt := analyze.BuildPrompt(req, chunk, i+1, len(chunks))
			var text string
			var lastErr error
			for attempt := 0; attempt < MaxRetries; attempt++ {
				text, lastErr = w.groq.Analyze(ctx, prompt)
				if lastErr == nil || !IsRetryable(lastErr) {
					break
				}
				log.Warn("retryable analysis error", "chunk", i, "attempt", attempt, "error", lastErr)
				select {
				case <-time.After(Backoff(attempt)):
				case <-ctx.Done():
					results <- chunkResult{idx: i, err: ctx.Err()}
					return
				}
			}
			parts[i] = text
			results <- chunkResult{idx: i, err: lastErr}
		}(i, chunk)
	}

	hadErrors := false
	for range chunks {
		r := <-results
		job.IncrChunksProcessed()
		if r.err != nil {
			log.Error("analysis failed", "chunk", r.idx, "error", r.err)
			job.AddError(fmt.Sprintf("chunk %d: %s", r.idx, r.err))
			hadErrors = true
		}
	}

	analysis := analyze.JoinResults(parts)
	if strings.TrimSpace(analysis) == "" {
		log.Error("no analysis produced")
		job.SetStatus(StatusFailed, "analyzing")
		return
	}
	job.SetAnalysis(analysis)

	// Phase 2: Convert the analysis markdown into the block document.
	job.SetStatus(StatusConverting, "converting")
	doc := markdown.Build(analysis)
	job.SetDocumentCounts(len(doc.Blocks), len(doc.TOC))
	log.Info("converted analysis", "blocks", len(doc.Blocks), "toc_entries", len(doc.TOC))

	// Phase 3: Render docx bytes. The converted document stays on the job's
	// analysis text, so a render failure loses nothing.
	job.SetStatus(StatusRendering, "rendering")
	front := []docx.FrontSection{
		{Title: "User Story Name", Body: req.StoryName},
		{Title: "User Story Description", Body: req.StoryDescription},
		{Title: "Additional Context & Instructions", Body: req.AdditionalContext},
	}
	data, err := docx.Render(front, doc)
	if err != nil {
		log.Error("render failed", "error", err)
		job.AddError(fmt.Sprintf("render: %s", err))
		job.SetStatus(StatusFailed, "rendering")
		return
	}
	job.SetResult(data, ResultFilename(req.StoryName))
	log.Info("document rendered", "bytes", len(data))

	if hadErrors {
		job.SetStatus(StatusPartial, "done")
	} else {
		job.SetStatus(StatusCompleted, "done")
	}
}

// ResultFilename derives the download filename from the story name.
func ResultFilename(storyName string) string {
	name := strings.TrimSpace(storyName)
	if name == "" {
		name = "code_analysis"
	}
	return strings.ReplaceAll(name, " ", "_") + ".docx"
}
