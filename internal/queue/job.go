// Package queue carries job descriptors from the upload surface to the
// analysis worker. Producers push onto one end, a single consumer pops from
// the other; a received job is gone from the queue (at-most-once).
package queue

import (
	"encoding/json"
	"time"
)

// Job names a stored file awaiting analysis. It is produced by the upload
// handler, consumed exactly once by the worker, and never mutated.
type Job struct {
	Filename  string `json:"filename"`
	FilePath  string `json:"file_path"`
	Timestamp string `json:"timestamp"`
}

// NewJob stamps a job with the current UTC time in ISO-8601.
func NewJob(filename, filePath string) Job {
	return Job{
		Filename:  filename,
		FilePath:  filePath,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// EncodeJob returns the JSON wire representation of a job.
func EncodeJob(job Job) ([]byte, error) {
	return json.Marshal(job)
}

// DecodeJob parses a JSON payload into a Job.
func DecodeJob(payload []byte) (Job, error) {
	var job Job
	if err := json.Unmarshal(payload, &job); err != nil {
		return Job{}, err
	}
	return job, nil
}
