package matcher

import "fmt"

const (
	JobStatusPending    = "pending"
	JobStatusProcessing = "processing"
	JobStatusCompleted  = "completed"
	JobStatusFailed     = "failed"
)

// Job is a server-side processing job computing embeddings and match
// scores for a project. Progress is meaningful only while the job is
// processing.
type Job struct {
	ID           int    `json:"job_id"`
	Status       string `json:"status"`
	Progress     int    `json:"progress"`
	StartedAt    string `json:"started_at"`
	CompletedAt  string `json:"completed_at"`
	ErrorMessage string `json:"error_message"`
}

// Terminal reports whether the job reached a final state and will never
// change again.
func (j *Job) Terminal() bool {
	return j.Status == JobStatusCompleted || j.Status == JobStatusFailed
}

// StartProcessing kicks off matching for a project and returns the job
// identifier to poll.
func (c *Client) StartProcessing(projectID int) (int, error) {
	var result struct {
		JobID int `json:"job_id"`
	}

	path := fmt.Sprintf("/api/projects/%d/process", projectID)
	if err := c.postJSON(path, map[string]string{}, &result); err != nil {
		return 0, err
	}

	return result.JobID, nil
}

func (c *Client) GetJobStatus(jobID int) (*Job, error) {
	var job *Job
	if err := c.getJSON(fmt.Sprintf("/api/jobs/%d/status", jobID), nil, &job); err != nil {
		return nil, err
	}

	return job, nil
}
