package domain

import "time"

// CandidateProfile is the relational profile owned by a CANDIDATE user.
// Exactly one profile exists per candidate user (unique user_id).
type CandidateProfile struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Headline        string    `json:"headline"`
	Summary         string    `json:"summary"`
	Skills          []string  `json:"skills"`
	YearsExperience int       `json:"years_experience"`
	Location        string    `json:"location"`
	CVDocumentID    string    `json:"cv_document_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CVDocument holds the free-text CV content stored in the document store.
type CVDocument struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	OwnerID   string    `json:"owner_id" bson:"owner_id"`
	FileName  string    `json:"file_name" bson:"file_name"`
	Text      string    `json:"text" bson:"text"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
