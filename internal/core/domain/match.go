package domain

import "time"

// MatchAssessment is the stored result of an LLM evaluation of a candidate
// against a job posting.
type MatchAssessment struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	JobID       string    `json:"job_id" bson:"job_id"`
	CandidateID string    `json:"candidate_id" bson:"candidate_id"`
	Fit         bool      `json:"fit" bson:"fit"`
	Score       float64   `json:"score" bson:"score"`
	Reason      string    `json:"reason" bson:"reason"`
	Model       string    `json:"model" bson:"model"`
	Raw         string    `json:"-" bson:"raw,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
