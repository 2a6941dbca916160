package domain

import "time"

// ConsultantProfile is the profile owned by a CONSULTANT user. One per user.
type ConsultantProfile struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Specialty string    `json:"specialty"`
	Region    string    `json:"region"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
