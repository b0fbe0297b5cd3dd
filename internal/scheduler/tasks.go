// Package scheduler queues and processes out-of-band official refresh jobs
// through asynq, so dashboard-triggered refreshes never block an HTTP
// request on upstream sources.
package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// TaskOfficialRefresh refreshes one official's expense and staff summaries.
const TaskOfficialRefresh = "officials.refresh"

// OfficialRefreshPayload addresses one official and year.
type OfficialRefreshPayload struct {
	OfficialID string `json:"officialId"`
	Year       int    `json:"year"`
}

// NewOfficialRefreshTask builds the asynq task for a refresh.
func NewOfficialRefreshTask(payload OfficialRefreshPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOfficialRefresh, data), nil
}

// ParseOfficialRefreshPayload decodes a refresh task payload.
func ParseOfficialRefreshPayload(task *asynq.Task) (OfficialRefreshPayload, error) {
	var payload OfficialRefreshPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return OfficialRefreshPayload{}, err
	}
	return payload, nil
}
