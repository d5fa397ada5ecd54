package sql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/hirehive/hirehive-api/internal/core/domain"
)

// JobRepository implements ports.JobRepository on a relational database.
type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) CreateJob(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rec := jobRecord{
		VendorID:       job.VendorID,
		Title:          job.Title,
		Description:    job.Description,
		RequiredSkills: optional(job.RequiredSkills),
		SalaryMin:      job.SalaryMin,
		SalaryMax:      job.SalaryMax,
		Location:       optional(job.Location),
		PostedAt:       job.PostedAt.UTC(),
		ExpiresAt:      utcPtr(job.ExpiresAt),
		Status:         string(job.Status),
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, domain.NewStoreError("create job", err)
	}

	created := *job
	created.ID = rec.ID
	return &created, nil
}

func (r *JobRepository) FindJob(ctx context.Context, id uint64) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rec jobRecord
	err := r.db.WithContext(ctx).First(&rec, id).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, domain.ErrJobNotFound
	case err != nil:
		return nil, domain.NewStoreError("find job", err)
	}

	job := toJob(jobRow{
		ID: rec.ID, VendorID: rec.VendorID, Title: rec.Title, Description: rec.Description,
		RequiredSkills: rec.RequiredSkills, SalaryMin: rec.SalaryMin, SalaryMax: rec.SalaryMax,
		Location: rec.Location, PostedAt: rec.PostedAt, ExpiresAt: rec.ExpiresAt, Status: rec.Status,
	})
	return &job, nil
}

// ListOpenJobs returns active, unexpired postings with the vendor name.
func (r *JobRepository) ListOpenJobs(ctx context.Context, now time.Time) ([]domain.JobListing, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rows []jobRow
	err := r.db.WithContext(ctx).
		Table(tableJobs+" AS j").
		Select("j.*, u.name AS vendor_name").
		Joins("JOIN "+tableAccounts+" u ON u.id = j.vendor_id").
		Where("j.status = ? AND (j.expires_at IS NULL OR j.expires_at > ?)", string(domain.JobActive), now.UTC()).
		Order("j.posted_at DESC, j.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, domain.NewStoreError("list jobs", err)
	}

	out := make([]domain.JobListing, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.JobListing{Job: toJob(row), VendorName: row.VendorName})
	}
	return out, nil
}

func (r *JobRepository) CreateApplication(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rec := applicationRecord{
		JobSeekerID: app.JobSeekerID,
		JobID:       app.JobID,
		AppliedAt:   app.AppliedAt.UTC(),
		Status:      string(app.Status),
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrAlreadyApplied
		}
		return nil, domain.NewStoreError("create application", err)
	}

	created := *app
	created.ID = rec.ID
	return &created, nil
}

// ApplicationsBySeeker lists a seeker's applications with job and company details.
func (r *JobRepository) ApplicationsBySeeker(ctx context.Context, seekerID uint64) ([]domain.SeekerApplication, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rows []seekerApplicationRow
	err := r.db.WithContext(ctx).
		Table(tableApplications+" AS a").
		Select(`a.id, a.job_id, a.job_seeker_id, a.applied_at, a.status,
			j.title AS job_title, j.description AS job_description, vp.company_name,
			j.location, j.salary_min, j.salary_max`).
		Joins("JOIN "+tableJobs+" j ON j.id = a.job_id").
		Joins("LEFT JOIN "+tableVendorProfiles+" vp ON vp.user_id = j.vendor_id").
		Where("a.job_seeker_id = ?", seekerID).
		Order("a.applied_at DESC, a.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, domain.NewStoreError("list seeker applications", err)
	}

	out := make([]domain.SeekerApplication, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.SeekerApplication{
			Application:    toApplication(row.ID, row.JobID, row.JobSeekerID, row.AppliedAt, row.Status),
			JobTitle:       row.JobTitle,
			JobDescription: row.JobDescription,
			CompanyName:    deref(row.CompanyName),
			Location:       deref(row.Location),
			SalaryMin:      row.SalaryMin,
			SalaryMax:      row.SalaryMax,
		})
	}
	return out, nil
}

// ApplicationsByJob lists the applicants of one job with their profile data.
func (r *JobRepository) ApplicationsByJob(ctx context.Context, jobID uint64) ([]domain.JobApplicant, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rows []jobApplicantRow
	err := r.db.WithContext(ctx).
		Table(tableApplications+" AS a").
		Select(`a.id, a.job_id, a.job_seeker_id, a.applied_at, a.status,
			u.name AS applicant_name, u.email AS applicant_email, jsp.resume, jsp.experience`).
		Joins("JOIN "+tableAccounts+" u ON u.id = a.job_seeker_id").
		Joins("LEFT JOIN "+tableJobSeekerProfiles+" jsp ON jsp.user_id = u.id").
		Where("a.job_id = ?", jobID).
		Order("a.applied_at, a.id").
		Scan(&rows).Error
	if err != nil {
		return nil, domain.NewStoreError("list job applicants", err)
	}

	out := make([]domain.JobApplicant, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.JobApplicant{
			Application:    toApplication(row.ID, row.JobID, row.JobSeekerID, row.AppliedAt, row.Status),
			ApplicantName:  row.ApplicantName,
			ApplicantEmail: row.ApplicantEmail,
			Resume:         row.Resume,
			Experience:     row.Experience,
		})
	}
	return out, nil
}

// EnsureSchema creates the job and application tables when missing.
func (r *JobRepository) EnsureSchema(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&jobRecord{}, &applicationRecord{}); err != nil {
		return fmt.Errorf("ensure job schema: %w", err)
	}
	return nil
}

func toJob(row jobRow) domain.Job {
	return domain.Job{
		ID:             row.ID,
		VendorID:       row.VendorID,
		Title:          row.Title,
		Description:    row.Description,
		RequiredSkills: deref(row.RequiredSkills),
		SalaryMin:      row.SalaryMin,
		SalaryMax:      row.SalaryMax,
		Location:       deref(row.Location),
		PostedAt:       row.PostedAt,
		ExpiresAt:      row.ExpiresAt,
		Status:         domain.JobStatus(row.Status),
	}
}

func toApplication(id, jobID, seekerID uint64, appliedAt time.Time, status string) domain.Application {
	return domain.Application{
		ID:          id,
		JobID:       jobID,
		JobSeekerID: seekerID,
		AppliedAt:   appliedAt,
		Status:      domain.ApplicationStatus(status),
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
