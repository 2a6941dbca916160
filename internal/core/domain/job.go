package domain

import "time"

// JobStatus represents the lifecycle state of a job posting.
type JobStatus string

const (
	JobDraft    JobStatus = "draft"
	JobOpen     JobStatus = "open"
	JobClosed   JobStatus = "closed"
	JobArchived JobStatus = "archived"
)

// jobTransitions defines the allowed posting state changes.
var jobTransitions = map[JobStatus][]JobStatus{
	JobDraft:  {JobOpen, JobArchived},
	JobOpen:   {JobClosed},
	JobClosed: {JobOpen, JobArchived},
}

// CanTransitionTo reports whether a transition from s to next is valid.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	for _, allowed := range jobTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Job is a posting owned by a company.
type Job struct {
	ID             string    `json:"id"`
	CompanyID      string    `json:"company_id"`
	CreatedBy      string    `json:"created_by"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	EmploymentType string    `json:"employment_type"`
	SalaryMin      int       `json:"salary_min,omitempty"`
	SalaryMax      int       `json:"salary_max,omitempty"`
	Skills         []string  `json:"skills"`
	Status         JobStatus `json:"status"`
	PostedAt       time.Time `json:"posted_at,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
