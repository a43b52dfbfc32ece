package model

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/xfusion-digital/scimport/pkg/domain/types"
)

// SubmissionResult records the outcome of one provisioning attempt.
// Row is the 1-based data row number in the input file.
type SubmissionResult struct {
	Row        int
	UserName   string
	Success    bool
	StatusCode int
	ResourceID string
	Err        error
}

// LogValue returns structured log value
func (r SubmissionResult) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("row", r.Row),
		slog.String("userName", r.UserName),
		slog.Bool("success", r.Success),
	}
	if r.StatusCode != 0 {
		attrs = append(attrs, slog.Int("status", r.StatusCode))
	}
	if r.ResourceID != "" {
		attrs = append(attrs, slog.String("id", r.ResourceID))
	}
	if r.Err != nil {
		attrs = append(attrs, slog.Any("error", r.Err))
	}
	return slog.GroupValue(attrs...)
}

// RunSummary aggregates submission outcomes for the end-of-run report
type RunSummary struct {
	Total            int
	Succeeded        int
	ValidationFailed int
	SubmitFailed     int
	Duration         time.Duration
}

// Failed returns the total number of failed rows
func (s RunSummary) Failed() int {
	return s.ValidationFailed + s.SubmitFailed
}

// LogValue returns structured log value
func (s RunSummary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("total", s.Total),
		slog.Int("succeeded", s.Succeeded),
		slog.Int("failed", s.Failed()),
		slog.Int("validation_failed", s.ValidationFailed),
		slog.Int("submit_failed", s.SubmitFailed),
		slog.Duration("duration", s.Duration),
	)
}

// Summarize derives a RunSummary from the accumulated results
func Summarize(results []SubmissionResult, duration time.Duration) RunSummary {
	summary := RunSummary{
		Total:    len(results),
		Duration: duration,
	}
	for _, r := range results {
		switch {
		case r.Success:
			summary.Succeeded++
		case goerr.HasTag(r.Err, types.ErrTagValidation):
			summary.ValidationFailed++
		default:
			summary.SubmitFailed++
		}
	}
	return summary
}
