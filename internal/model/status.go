package model

// JobStatus represents the status of an ingestion job
type JobStatus string

const (
	// JobStatusIdle means the job has been created but not started
	JobStatusIdle JobStatus = "Idle"

	// JobStatusScanning means the folder is being listed for image files
	JobStatusScanning JobStatus = "Scanning"

	// JobStatusDecoding means image files are being decoded and placed
	JobStatusDecoding JobStatus = "Decoding"

	// JobStatusCancelling means a cancel was requested and in-flight decodes
	// are draining
	JobStatusCancelling JobStatus = "Cancelling"

	// JobStatusCompleted means the job finished; individual files may still
	// have failed to decode
	JobStatusCompleted JobStatus = "Completed"

	// JobStatusCancelled means the job was cancelled by the user
	JobStatusCancelled JobStatus = "Cancelled"

	// JobStatusFailed means the job failed as a whole (unreadable folder)
	JobStatusFailed JobStatus = "Failed"
)

// String returns the string representation of JobStatus
func (js JobStatus) String() string {
	return string(js)
}

// IsActive returns true if the job is in a non-terminal, started state
func (js JobStatus) IsActive() bool {
	return js == JobStatusScanning || js == JobStatusDecoding || js == JobStatusCancelling
}

// IsTerminal returns true if the job reached a terminal state
func (js JobStatus) IsTerminal() bool {
	return js == JobStatusCompleted || js == JobStatusCancelled || js == JobStatusFailed
}
