package sql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hirehive/hirehive-api/internal/core/domain"
)

// roleDataSelect picks the single role-specific column for each account.
const roleDataSelect = `u.id, u.name, u.email, u.password_hash, u.role, u.created_at, u.updated_at,
	CASE
		WHEN u.role = 'job_seeker' THEN js.resume
		WHEN u.role = 'vendor' THEN vp.company_name
		WHEN u.role = 'admin' THEN ap.admin_level
	END AS role_specific_data`

// AccountRepository implements ports.AccountRepository on a relational database.
type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// ExistsByEmail reports whether an account with exactly this email exists.
func (r *AccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var count int64
	if err := r.db.WithContext(ctx).Model(&accountRecord{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, domain.NewStoreError("count accounts", err)
	}
	return count > 0, nil
}

// CreateWithProfile inserts the account and its role profile in one
// transaction.
func (r *AccountRepository) CreateWithProfile(ctx context.Context, account *domain.Account, profile domain.Profile) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rec := accountRecord{
		Name:         account.Name,
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		Role:         string(account.Role),
		CreatedAt:    account.CreatedAt,
		UpdatedAt:    account.UpdatedAt,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rec).Error; err != nil {
			return err
		}
		return tx.Create(profileRecord(rec.ID, account.Role, profile)).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, domain.NewStoreError("create account", err)
	}

	created := *account
	created.ID = rec.ID
	created.CreatedAt = rec.CreatedAt
	created.UpdatedAt = rec.UpdatedAt
	created.RoleSpecificData = roleSpecificData(account.Role, profile)
	return &created, nil
}

// FindByEmail returns the account with its role-specific data.
func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.findOne(ctx, "u.email = ?", email)
}

// FindByID returns the account with its role-specific data.
func (r *AccountRepository) FindByID(ctx context.Context, id uint64) (*domain.Account, error) {
	return r.findOne(ctx, "u.id = ?", id)
}

func (r *AccountRepository) findOne(ctx context.Context, cond string, arg any) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rows []accountRow
	err := r.db.WithContext(ctx).
		Table(tableAccounts+" AS u").
		Select(roleDataSelect).
		Joins("LEFT JOIN "+tableJobSeekerProfiles+" js ON js.user_id = u.id").
		Joins("LEFT JOIN "+tableVendorProfiles+" vp ON vp.user_id = u.id").
		Joins("LEFT JOIN "+tableAdminProfiles+" ap ON ap.user_id = u.id").
		Where(cond, arg).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, domain.NewStoreError("find account", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrAccountNotFound
	}

	row := rows[0]
	return &domain.Account{
		ID:               row.ID,
		Name:             row.Name,
		Email:            row.Email,
		PasswordHash:     row.PasswordHash,
		Role:             domain.Role(row.Role),
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
		RoleSpecificData: row.RoleSpecificData,
	}, nil
}

// EnsureSchema creates the account and profile tables when missing.
func (r *AccountRepository) EnsureSchema(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(
		&accountRecord{},
		&adminProfileRecord{},
		&jobSeekerProfileRecord{},
		&vendorProfileRecord{},
	); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func profileRecord(userID uint64, role domain.Role, p domain.Profile) any {
	switch role {
	case domain.RoleVendor:
		return &vendorProfileRecord{
			UserID:      userID,
			CompanyName: p.CompanyName,
			Website:     optional(p.Website),
			Description: optional(p.Description),
		}
	case domain.RoleJobSeeker:
		return &jobSeekerProfileRecord{
			UserID:     userID,
			Resume:     optional(p.Resume),
			Education:  optional(p.Education),
			Experience: optional(p.Experience),
		}
	default:
		return &adminProfileRecord{
			UserID:        userID,
			AdminLevel:    optional(p.AdminLevel),
			ContactNumber: optional(p.ContactNumber),
		}
	}
}

func roleSpecificData(role domain.Role, p domain.Profile) *string {
	switch role {
	case domain.RoleVendor:
		return optional(p.CompanyName)
	case domain.RoleJobSeeker:
		return optional(p.Resume)
	default:
		return optional(p.AdminLevel)
	}
}
