package domain

import "time"

// Company is a hiring organisation.
type Company struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Industry    string    `json:"industry"`
	Location    string    `json:"location"`
	Website     string    `json:"website,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EmployerProfile links an EMPLOYER user to the company they act for.
// Company-scoped operations consult this link.
type EmployerProfile struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CompanyID string    `json:"company_id"`
	Position  string    `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}
