package ports

import (
	"context"
	"time"

	"github.com/hirehive/hirehive-api/internal/core/domain"
)

// JobRepository persists job postings and applications.
type JobRepository interface {
	CreateJob(ctx context.Context, job *domain.Job) (*domain.Job, error)
	// FindJob returns the posting or domain.ErrJobNotFound.
	FindJob(ctx context.Context, id uint64) (*domain.Job, error)
	// ListOpenJobs returns active postings, newest first.
	ListOpenJobs(ctx context.Context, now time.Time) ([]domain.JobListing, error)
	// CreateApplication returns domain.ErrAlreadyApplied when the seeker has
	// applied to the job before.
	CreateApplication(ctx context.Context, app *domain.Application) (*domain.Application, error)
	ApplicationsBySeeker(ctx context.Context, seekerID uint64) ([]domain.SeekerApplication, error)
	ApplicationsByJob(ctx context.Context, jobID uint64) ([]domain.JobApplicant, error)
}

// PostJobInput carries a new posting. The vendor is always the caller.
type PostJobInput struct {
	Title          string     `json:"title"           validate:"required,max=150"`
	Description    string     `json:"description"     validate:"required"`
	RequiredSkills string     `json:"required_skills"`
	SalaryMin      *float64   `json:"salary_min"      validate:"omitempty,gte=0"`
	SalaryMax      *float64   `json:"salary_max"      validate:"omitempty,gte=0"`
	Location       string     `json:"location"        validate:"max=150"`
	ExpiresAt      *time.Time `json:"expiry_date"`

	IPAddress string `json:"-"`
}

// JobService implements the vendor and job seeker resources. Every method
// re-applies the access policy of its route against caller.
type JobService interface {
	PostJob(ctx context.Context, caller *domain.Identity, in PostJobInput) (*domain.Job, error)
	ListJobs(ctx context.Context, caller *domain.Identity) ([]domain.JobListing, error)
	Apply(ctx context.Context, caller *domain.Identity, jobID uint64, ip string) (*domain.Application, error)
	ApplicationsBySeeker(ctx context.Context, caller *domain.Identity, seekerID uint64) ([]domain.SeekerApplication, error)
	ApplicationsForJob(ctx context.Context, caller *domain.Identity, jobID uint64) ([]domain.JobApplicant, error)
}
