package domain

import "time"

// FailurePolicy selects what the batch does after a per-file error.
type FailurePolicy int

const (
	// PolicySkip logs the failure and continues with the next file.
	PolicySkip FailurePolicy = iota
	// PolicyAbort stops the batch at the first failure.
	PolicyAbort
)

// String returns the policy name.
func (p FailurePolicy) String() string {
	switch p {
	case PolicySkip:
		return "skip"
	case PolicyAbort:
		return "abort"
	default:
		return "unknown"
	}
}

// FileStatus is the outcome of one file.
type FileStatus string

const (
	StatusProcessed FileStatus = "processed"
	StatusFailed    FileStatus = "failed"
)

// FileResult records what happened to one source file.
type FileResult struct {
	Name     string         `json:"name"`
	Status   FileStatus     `json:"status"`
	Format   string         `json:"format,omitempty"`
	Rotated  bool           `json:"rotated"`
	Skipped  bool           `json:"watermark_skipped,omitempty"`
	Plan     *PlacementPlan `json:"plan,omitempty"`
	Error    string         `json:"error,omitempty"`
	Duration time.Duration  `json:"duration_ns"`
}

// Report summarises a batch run.
type Report struct {
	Dir       string        `json:"dir"`
	OutputDir string        `json:"output_dir"`
	Watermark string        `json:"watermark"`
	Policy    string        `json:"failure_policy"`
	StartedAt time.Time     `json:"started_at"`
	Elapsed   time.Duration `json:"elapsed_ns"`
	Total     int           `json:"total"`
	Processed int           `json:"processed"`
	Failed    int           `json:"failed"`
	Aborted   bool          `json:"aborted,omitempty"`
	Canceled  bool          `json:"canceled,omitempty"`
	Files     []FileResult  `json:"files"`
}

// Add appends a file result and updates the counters.
func (r *Report) Add(res FileResult) {
	r.Files = append(r.Files, res)
	switch res.Status {
	case StatusProcessed:
		r.Processed++
	case StatusFailed:
		r.Failed++
	}
}

// Empty reports whether the directory held no supported images.
func (r *Report) Empty() bool {
	return r.Total == 0
}

// Failures returns the failed file results in processing order.
func (r *Report) Failures() []FileResult {
	var out []FileResult
	for _, f := range r.Files {
		if f.Status == StatusFailed {
			out = append(out, f)
		}
	}
	return out
}

// OK reports whether the run finished without failures, abort or cancellation.
func (r *Report) OK() bool {
	return r.Failed == 0 && !r.Aborted && !r.Canceled
}
