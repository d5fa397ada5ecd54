package domain

import "time"

type JobStatus string

const (
	JobActive  JobStatus = "active"
	JobExpired JobStatus = "expired"
	JobClosed  JobStatus = "closed"
)

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Job is a posting owned by one vendor account.
type Job struct {
	ID             uint64     `json:"id"`
	VendorID       uint64     `json:"vendor_id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	RequiredSkills string     `json:"required_skills,omitempty"`
	SalaryMin      *float64   `json:"salary_min"`
	SalaryMax      *float64   `json:"salary_max"`
	Location       string     `json:"location,omitempty"`
	PostedAt       time.Time  `json:"posted_at"`
	ExpiresAt      *time.Time `json:"expiry_date"`
	Status         JobStatus  `json:"status"`
}

// OpenAt reports whether the posting accepts applications at t.
func (j *Job) OpenAt(t time.Time) bool {
	if j.Status != JobActive {
		return false
	}
	return j.ExpiresAt == nil || t.Before(*j.ExpiresAt)
}

// JobListing is a job with the posting vendor's display name.
type JobListing struct {
	Job
	VendorName string `json:"vendor_name"`
}

// Application links a job seeker to a job. A seeker applies at most once per job.
type Application struct {
	ID          uint64            `json:"id"`
	JobID       uint64            `json:"job_id"`
	JobSeekerID uint64            `json:"job_seeker_id"`
	AppliedAt   time.Time         `json:"application_date"`
	Status      ApplicationStatus `json:"status"`
}

// SeekerApplication is an application as its job seeker sees it.
type SeekerApplication struct {
	Application
	JobTitle       string   `json:"job_title"`
	JobDescription string   `json:"job_description"`
	CompanyName    string   `json:"company_name"`
	Location       string   `json:"location,omitempty"`
	SalaryMin      *float64 `json:"salary_min"`
	SalaryMax      *float64 `json:"salary_max"`
}

// JobApplicant is an application as the posting vendor sees it.
type JobApplicant struct {
	Application
	ApplicantName  string  `json:"applicant_name"`
	ApplicantEmail string  `json:"applicant_email"`
	Resume         *string `json:"resume"`
	Experience     *string `json:"experience"`
}
