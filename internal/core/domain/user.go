package domain

import "time"

// Role classifies what a user is allowed to do.
type Role string

const (
	RoleCandidate  Role = "CANDIDATE"
	RoleEmployer   Role = "EMPLOYER"
	RoleConsultant Role = "CONSULTANT"
	RoleAdmin      Role = "ADMIN"
	RoleSuperadmin Role = "SUPERADMIN"
)

// satisfies is the single source of truth for the role hierarchy: each role
// maps to the set of required roles it fulfils. Operational roles fulfil only
// themselves; SUPERADMIN additionally fulfils ADMIN.
var satisfies = map[Role]map[Role]struct{}{
	RoleCandidate:  {RoleCandidate: {}},
	RoleEmployer:   {RoleEmployer: {}},
	RoleConsultant: {RoleConsultant: {}},
	RoleAdmin:      {RoleAdmin: {}},
	RoleSuperadmin: {RoleSuperadmin: {}, RoleAdmin: {}},
}

// Satisfies reports whether r fulfils the required role.
func (r Role) Satisfies(required Role) bool {
	_, ok := satisfies[r][required]
	return ok
}

// SatisfiesAny reports whether r fulfils at least one of the required roles.
func (r Role) SatisfiesAny(required ...Role) bool {
	for _, req := range required {
		if r.Satisfies(req) {
			return true
		}
	}
	return false
}

// IsAdmin reports whether r carries administrative privilege.
func (r Role) IsAdmin() bool {
	return r.Satisfies(RoleAdmin)
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	_, ok := satisfies[r]
	return ok
}

// User models an authenticated actor in the system. Users are never hard
// deleted; admins flip the Active flag instead.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	Role         Role      `json:"role"`
	Active       bool      `json:"active"`
	Verified     bool      `json:"verified"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
