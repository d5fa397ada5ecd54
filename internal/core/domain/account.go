package domain

import "time"

// Role is the closed set of account roles.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleVendor    Role = "vendor"
	RoleJobSeeker Role = "job_seeker"
)

// Roles lists every valid role in a stable order.
var Roles = []Role{RoleAdmin, RoleVendor, RoleJobSeeker}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleVendor, RoleJobSeeker:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// Account models an authenticated actor in the system.
type Account struct {
	ID           uint64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// RoleSpecificData is the company name, resume or admin level depending
	// on Role. Nil when the profile column is empty.
	RoleSpecificData *string
}

// Profile holds the role-specific row created alongside an account. Only the
// fields relevant to the account role are persisted.
type Profile struct {
	// vendor
	CompanyName string
	Website     string
	Description string

	// job_seeker
	Resume     string
	Education  string
	Experience string

	// admin
	AdminLevel    string
	ContactNumber string
}

// AccountSummary is the public-safe view of an account. It never carries the
// password hash.
type AccountSummary struct {
	ID               uint64  `json:"id"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Role             Role    `json:"role"`
	RoleSpecificData *string `json:"role_specific_data"`
}

// Summary returns the public view of a.
func (a *Account) Summary() AccountSummary {
	return AccountSummary{
		ID:               a.ID,
		Name:             a.Name,
		Email:            a.Email,
		Role:             a.Role,
		RoleSpecificData: a.RoleSpecificData,
	}
}
