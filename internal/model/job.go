package model

import "time"

// IngestionJob represents a single "load this folder" operation end-to-end
type IngestionJob struct {
	ID         string
	Folder     string
	Status     JobStatus
	TotalCount int // number of files found by the scan; 0 until scanning ends
	Completed  int // decode results consumed so far, failures included
	Failed     int // decode failures, reported as one summary at completion
	LastError  string
	StartedAt  time.Time
	FinishedAt time.Time
}

// Fraction returns aggregate progress in [0,1]. A job with no files to decode
// reports 1.0 once the scan has finished.
func (j *IngestionJob) Fraction() float64 {
	if j.TotalCount == 0 {
		if j.Status.IsTerminal() {
			return 1.0
		}
		return 0.0
	}
	f := float64(j.Completed) / float64(j.TotalCount)
	if f > 1.0 {
		f = 1.0
	}
	return f
}
