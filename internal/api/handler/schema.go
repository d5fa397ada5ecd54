package handler

import (
	"time"

	"github.com/hirehive/hirehive-api/internal/core/domain"
)

// --- Request / Response types ---

type signupRequest struct {
	Name     string `json:"name"     validate:"required,max=100"               example:"Ana Pérez"`
	Email    string `json:"email"    validate:"required,email,max=150"         example:"ana@example.com"`
	Password string `json:"password" validate:"required,min=6"                 example:"secret123"`
	Role     string `json:"role"     validate:"required,oneof=admin vendor job_seeker" example:"vendor"`

	CompanyName   string `json:"company_name"   validate:"required_if=Role vendor,max=150" example:"Acme Corp"`
	Website       string `json:"website"        validate:"max=255"`
	Description   string `json:"description"`
	Resume        string `json:"resume"         validate:"max=255"`
	Education     string `json:"education"`
	Experience    string `json:"experience"`
	AdminLevel    string `json:"admin_level"    validate:"max=50"`
	ContactNumber string `json:"contact_number" validate:"max=20"`
}

type signinRequest struct {
	Email    string `json:"email"    validate:"required,email" example:"ana@example.com"`
	Password string `json:"password" validate:"required"       example:"secret123"`
}

type signupResponse struct {
	Message string `json:"message" example:"User registered successfully"`
	Success bool   `json:"success" example:"true"`
}

type signinResponse struct {
	Message string                `json:"message" example:"Login successful"`
	Token   string                `json:"token"`
	User    domain.AccountSummary `json:"user"`
}

type userResponse struct {
	Message string                `json:"message" example:"User retrieved successfully"`
	User    domain.AccountSummary `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// errorResponse documents the envelope rendered by the API error handler.
type errorResponse struct {
	Message string `json:"message" example:"invalid credentials"`
}

type postJobRequest struct {
	Title          string     `json:"title"           validate:"required,max=150"  example:"Backend engineer"`
	Description    string     `json:"description"     validate:"required"          example:"Build and run our APIs"`
	RequiredSkills string     `json:"required_skills"                              example:"Go, SQL"`
	SalaryMin      *float64   `json:"salary_min"      validate:"omitempty,gte=0"   example:"3000"`
	SalaryMax      *float64   `json:"salary_max"      validate:"omitempty,gte=0"   example:"4500"`
	Location       string     `json:"location"        validate:"max=150"           example:"Remote"`
	ExpiresAt      *time.Time `json:"expiry_date"`
}

type applyRequest struct {
	JobID uint64 `json:"job_id" validate:"required" example:"1"`
}

type jobResponse struct {
	Message string     `json:"message" example:"Job posting created successfully"`
	Job     domain.Job `json:"job"`
}

type jobListResponse struct {
	Message string              `json:"message" example:"Jobs retrieved successfully"`
	Jobs    []domain.JobListing `json:"jobs"`
}

type applicationResponse struct {
	Message     string             `json:"message" example:"Application submitted successfully"`
	Application domain.Application `json:"application"`
}

type seekerApplicationsResponse struct {
	Message      string                     `json:"message" example:"Applications retrieved successfully"`
	Applications []domain.SeekerApplication `json:"applications"`
}

type jobApplicantsResponse struct {
	Message      string                `json:"message" example:"Applications retrieved successfully"`
	Applications []domain.JobApplicant `json:"applications"`
}
