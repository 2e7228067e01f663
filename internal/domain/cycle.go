package domain

import "time"

// StageResult records the outcome of one fault-isolated cycle stage
type StageResult struct {
	Stage StageName `json:"stage"`
	// Rows is the number of rows the stage wrote (snapshot rows, rank rows, cache
	// entries or discovered entities depending on the stage)
	Rows int `json:"rows"`
	// Err holds the stage's failure, if any; stage failures never abort the cycle
	Err string `json:"error,omitempty"`
}

// CycleReport describes one snapshot cycle. It replaces the original design's
// process-wide mutable flags: callers query the report (or the persisted status)
// instead of reading shared globals.
type CycleReport struct {
	CycleID    string    `json:"cycle_id"`
	Period     Period    `json:"period"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	// Paused is set when the entity fetch failed and the whole cycle was aborted
	// before any store mutation
	Paused      bool          `json:"paused"`
	PauseReason string        `json:"pause_reason,omitempty"`
	Stages      []StageResult `json:"stages"`
}

// AddStage appends a stage outcome to the report
func (r *CycleReport) AddStage(stage StageName, rows int, err error) {
	res := StageResult{Stage: stage, Rows: rows}
	if err != nil {
		res.Err = err.Error()
	}
	r.Stages = append(r.Stages, res)
}

// IngestionStatus is the queryable state the presentation layer shows: whether
// ingestion is paused and when the last successful cycle happened
type IngestionStatus struct {
	Paused          bool       `json:"paused"`
	LastSuccessTime *time.Time `json:"last_success_time,omitempty"`
}
