package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hirehive/hirehive-api/internal/api/metrics"
	"github.com/hirehive/hirehive-api/internal/core/domain"
	"github.com/hirehive/hirehive-api/internal/core/ports"
	"github.com/hirehive/hirehive-api/internal/pkg/validation"
)

type jobService struct {
	jobs     ports.JobRepository
	activity ports.ActivityRecorder
	validate *validation.Validator
	log      zerolog.Logger
	now      func() time.Time
}

// NewJobService returns a JobService implementation.
func NewJobService(jobs ports.JobRepository, activity ports.ActivityRecorder, log zerolog.Logger) ports.JobService {
	return &jobService{
		jobs:     jobs,
		activity: activity,
		validate: validation.New(),
		log:      log,
		now:      time.Now,
	}
}

// PostJob creates an active posting owned by the calling vendor.
func (s *jobService) PostJob(ctx context.Context, caller *domain.Identity, in ports.PostJobInput) (*domain.Job, error) {
	if err := domain.AuthorizeRole(caller, domain.RoleVendor); err != nil {
		return nil, err
	}

	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	if err := s.validateJob(in); err != nil {
		metrics.JobBoardWritesTotal.WithLabelValues("job", "invalid").Inc()
		return nil, err
	}

	now := s.now().UTC()
	job, err := s.jobs.CreateJob(ctx, &domain.Job{
		VendorID:       caller.SubjectID,
		Title:          in.Title,
		Description:    in.Description,
		RequiredSkills: strings.TrimSpace(in.RequiredSkills),
		SalaryMin:      in.SalaryMin,
		SalaryMax:      in.SalaryMax,
		Location:       strings.TrimSpace(in.Location),
		PostedAt:       now,
		ExpiresAt:      in.ExpiresAt,
		Status:         domain.JobActive,
	})
	if err != nil {
		metrics.JobBoardWritesTotal.WithLabelValues("job", "error").Inc()
		return nil, err
	}

	metrics.JobBoardWritesTotal.WithLabelValues("job", "created").Inc()
	s.log.Info().Uint64("job_id", job.ID).Uint64("vendor_id", caller.SubjectID).Msg("job posted")
	s.activity.Record(domain.ActivityEntry{
		UserID:      caller.SubjectID,
		Action:      domain.ActionJobPosted,
		Description: fmt.Sprintf("posted job %d", job.ID),
		IPAddress:   in.IPAddress,
		Timestamp:   now,
	})
	return job, nil
}

func (s *jobService) validateJob(in ports.PostJobInput) error {
	if err := s.validate.Struct(in); err != nil {
		return domain.NewValidationError(err.Error())
	}
	if in.SalaryMin != nil && in.SalaryMax != nil && *in.SalaryMax < *in.SalaryMin {
		return domain.NewValidationError("salary_max must be at least salary_min")
	}
	if in.ExpiresAt != nil && !in.ExpiresAt.After(s.now()) {
		return domain.NewValidationError("expiry_date must be in the future")
	}
	return nil
}

// ListJobs returns the open postings to any authenticated caller.
func (s *jobService) ListJobs(ctx context.Context, caller *domain.Identity) ([]domain.JobListing, error) {
	if caller == nil {
		return nil, domain.ErrUnauthenticated
	}
	return s.jobs.ListOpenJobs(ctx, s.now())
}

// Apply submits the calling job seeker to an open posting.
func (s *jobService) Apply(ctx context.Context, caller *domain.Identity, jobID uint64, ip string) (*domain.Application, error) {
	if err := domain.AuthorizeRole(caller, domain.RoleJobSeeker); err != nil {
		return nil, err
	}

	job, err := s.jobs.FindJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	if !job.OpenAt(now) {
		metrics.JobBoardWritesTotal.WithLabelValues("application", "closed").Inc()
		return nil, domain.ErrJobClosed
	}

	app, err := s.jobs.CreateApplication(ctx, &domain.Application{
		JobID:       job.ID,
		JobSeekerID: caller.SubjectID,
		AppliedAt:   now,
		Status:      domain.ApplicationPending,
	})
	if err != nil {
		result := "error"
		if errors.Is(err, domain.ErrAlreadyApplied) {
			result = "duplicate"
		}
		metrics.JobBoardWritesTotal.WithLabelValues("application", result).Inc()
		return nil, err
	}

	metrics.JobBoardWritesTotal.WithLabelValues("application", "created").Inc()
	s.activity.Record(domain.ActivityEntry{
		UserID:      caller.SubjectID,
		Action:      domain.ActionApplied,
		Description: fmt.Sprintf("applied to job %d", job.ID),
		IPAddress:   ip,
		Timestamp:   now,
	})
	return app, nil
}

// ApplicationsBySeeker is visible to the seeker and to admins.
func (s *jobService) ApplicationsBySeeker(ctx context.Context, caller *domain.Identity, seekerID uint64) ([]domain.SeekerApplication, error) {
	if err := domain.AuthorizeOwnerOrAdmin(caller, seekerID); err != nil {
		return nil, err
	}
	return s.jobs.ApplicationsBySeeker(ctx, seekerID)
}

// ApplicationsForJob is visible to the vendor owning the job and to admins.
func (s *jobService) ApplicationsForJob(ctx context.Context, caller *domain.Identity, jobID uint64) ([]domain.JobApplicant, error) {
	if caller == nil {
		return nil, domain.ErrUnauthenticated
	}
	job, err := s.jobs.FindJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if err := domain.AuthorizeOwnerOrAdmin(caller, job.VendorID); err != nil {
		return nil, err
	}
	return s.jobs.ApplicationsByJob(ctx, jobID)
}
