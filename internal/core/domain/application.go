package domain

import "time"

// ApplicationStatus represents the pipeline state of an application.
type ApplicationStatus string

const (
	AppSubmitted   ApplicationStatus = "submitted"
	AppInReview    ApplicationStatus = "in_review"
	AppShortlisted ApplicationStatus = "shortlisted"
	AppInterview   ApplicationStatus = "interview"
	AppOffer       ApplicationStatus = "offer"
	AppHired       ApplicationStatus = "hired"
	AppRejected    ApplicationStatus = "rejected"
	AppWithdrawn   ApplicationStatus = "withdrawn"
)

// appTransitions defines the allowed pipeline moves. A candidate may withdraw
// from any non-terminal state; hired, rejected and withdrawn are terminal.
var appTransitions = map[ApplicationStatus][]ApplicationStatus{
	AppSubmitted:   {AppInReview, AppRejected, AppWithdrawn},
	AppInReview:    {AppShortlisted, AppRejected, AppWithdrawn},
	AppShortlisted: {AppInterview, AppRejected, AppWithdrawn},
	AppInterview:   {AppOffer, AppRejected, AppWithdrawn},
	AppOffer:       {AppHired, AppRejected, AppWithdrawn},
}

// CanTransitionTo reports whether a transition from s to next is valid.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	for _, allowed := range appTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transitions are possible from s.
func (s ApplicationStatus) Terminal() bool {
	return len(appTransitions[s]) == 0
}

// StatusChange records a single pipeline move on an application.
type StatusChange struct {
	Status    ApplicationStatus `json:"status"`
	ChangedBy string            `json:"changed_by"`
	Note      string            `json:"note,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// Application ties a candidate profile to a job. At most one application
// exists per (job, candidate) pair.
type Application struct {
	ID          string            `json:"id"`
	JobID       string            `json:"job_id"`
	CandidateID string            `json:"candidate_id"`
	Status      ApplicationStatus `json:"status"`
	CoverNote   string            `json:"cover_note,omitempty"`
	History     []StatusChange    `json:"history,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
