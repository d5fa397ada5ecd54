package sql

import "time"

const (
	tableAccounts          = "users"
	tableAdminProfiles     = "admin_profiles"
	tableJobSeekerProfiles = "job_seeker_profiles"
	tableVendorProfiles    = "vendor_profiles"
	tableJobs              = "jobs"
	tableApplications      = "job_applications"
)

type accountRecord struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"size:100;not null"`
	Email        string `gorm:"size:150;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:20;not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (accountRecord) TableName() string { return tableAccounts }

type adminProfileRecord struct {
	ID            uint64  `gorm:"primaryKey;autoIncrement"`
	UserID        uint64  `gorm:"not null;index"`
	AdminLevel    *string `gorm:"size:50"`
	ContactNumber *string `gorm:"size:20"`
}

func (adminProfileRecord) TableName() string { return tableAdminProfiles }

type jobSeekerProfileRecord struct {
	ID         uint64  `gorm:"primaryKey;autoIncrement"`
	UserID     uint64  `gorm:"not null;index"`
	Resume     *string `gorm:"size:255"`
	Education  *string `gorm:"type:text"`
	Experience *string `gorm:"type:text"`
}

func (jobSeekerProfileRecord) TableName() string { return tableJobSeekerProfiles }

type vendorProfileRecord struct {
	ID          uint64  `gorm:"primaryKey;autoIncrement"`
	UserID      uint64  `gorm:"not null;index"`
	CompanyName string  `gorm:"size:150;not null"`
	Website     *string `gorm:"size:255"`
	Description *string `gorm:"type:text"`
}

func (vendorProfileRecord) TableName() string { return tableVendorProfiles }

type jobRecord struct {
	ID             uint64     `gorm:"primaryKey;autoIncrement"`
	VendorID       uint64     `gorm:"not null;index"`
	Title          string     `gorm:"size:150;not null"`
	Description    string     `gorm:"type:text;not null"`
	RequiredSkills *string    `gorm:"type:text"`
	SalaryMin      *float64   `gorm:"type:decimal(10,2)"`
	SalaryMax      *float64   `gorm:"type:decimal(10,2)"`
	Location       *string    `gorm:"size:150"`
	PostedAt       time.Time  `gorm:"not null;index"`
	ExpiresAt      *time.Time `gorm:"index"`
	Status         string     `gorm:"size:10;not null;index"`
}

func (jobRecord) TableName() string { return tableJobs }

// applicationRecord is unique per (job_seeker_id, job_id).
type applicationRecord struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	JobSeekerID uint64    `gorm:"not null;uniqueIndex:uniq_job_application"`
	JobID       uint64    `gorm:"not null;uniqueIndex:uniq_job_application;index"`
	AppliedAt   time.Time `gorm:"not null"`
	Status      string    `gorm:"size:10;not null"`
}

func (applicationRecord) TableName() string { return tableApplications }

// accountRow is an account joined with its denormalized role data.
type accountRow struct {
	ID               uint64
	Name             string
	Email            string
	PasswordHash     string
	Role             string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	RoleSpecificData *string
}

// jobRow is a job joined with its vendor's name.
type jobRow struct {
	ID             uint64
	VendorID       uint64
	Title          string
	Description    string
	RequiredSkills *string
	SalaryMin      *float64
	SalaryMax      *float64
	Location       *string
	PostedAt       time.Time
	ExpiresAt      *time.Time
	Status         string
	VendorName     string
}

type seekerApplicationRow struct {
	ID             uint64
	JobID          uint64
	JobSeekerID    uint64
	AppliedAt      time.Time
	Status         string
	JobTitle       string
	JobDescription string
	CompanyName    *string
	Location       *string
	SalaryMin      *float64
	SalaryMax      *float64
}

type jobApplicantRow struct {
	ID             uint64
	JobID          uint64
	JobSeekerID    uint64
	AppliedAt      time.Time
	Status         string
	ApplicantName  string
	ApplicantEmail string
	Resume         *string
	Experience     *string
}

// optional maps empty strings to NULL columns.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
