package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/hirehive/hirehive-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubAccountRepo struct {
	accounts  map[string]*domain.Account
	profiles  map[uint64]domain.Profile
	nextID    uint64
	existsErr error
	createErr error
	findErr   error
	calls     []string
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{
		accounts: make(map[string]*domain.Account),
		profiles: make(map[uint64]domain.Profile),
	}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAccountRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.calls = append(r.calls, "exists")
	if r.existsErr != nil {
		return false, r.existsErr
	}
	_, ok := r.accounts[email]
	return ok, nil
}

func (r *stubAccountRepo) CreateWithProfile(_ context.Context, a *domain.Account, p domain.Profile) (*domain.Account, error) {
	r.calls = append(r.calls, "create")
	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, exists := r.accounts[a.Email]; exists {
		return nil, domain.ErrDuplicateEmail
	}
	r.nextID++
	stored := cloneAccount(a)
	stored.ID = r.nextID
	r.accounts[stored.Email] = stored
	r.profiles[stored.ID] = p
	return cloneAccount(stored), nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	r.calls = append(r.calls, "find")
	if r.findErr != nil {
		return nil, r.findErr
	}
	a, ok := r.accounts[email]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return cloneAccount(a), nil
}

func (r *stubAccountRepo) FindByID(_ context.Context, id uint64) (*domain.Account, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, a := range r.accounts {
		if a.ID == id {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

// stubHasher marks hashes with a prefix; verification counts calls.
type stubHasher struct {
	hashErr  error
	verifies int
}

func (h *stubHasher) Hash(p string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return "hashed:" + p, nil
}

func (h *stubHasher) Verify(p, hash string) bool {
	h.verifies++
	return strings.HasPrefix(hash, "hashed:") && hash == "hashed:"+p
}

type stubTokens struct {
	issued   []domain.Identity
	issueErr error
	verify   func(token string) (*domain.Identity, error)
}

func (s *stubTokens) Issue(id uint64, role domain.Role) (string, error) {
	if s.issueErr != nil {
		return "", s.issueErr
	}
	s.issued = append(s.issued, domain.Identity{SubjectID: id, Role: role})
	return "token-" + role.String(), nil
}

func (s *stubTokens) Verify(token string) (*domain.Identity, error) {
	if s.verify != nil {
		return s.verify(token)
	}
	return nil, domain.NewTokenError(domain.TokenMalformed, nil)
}

type stubRevocations struct {
	revoked  map[string]time.Time
	err      error
	checkErr error
}

func newStubRevocations() *stubRevocations {
	return &stubRevocations{revoked: make(map[string]time.Time)}
}

func (s *stubRevocations) Revoke(_ context.Context, id string, until time.Time) error {
	if s.err != nil {
		return s.err
	}
	s.revoked[id] = until
	return nil
}

func (s *stubRevocations) IsRevoked(_ context.Context, id string) (bool, error) {
	if s.checkErr != nil {
		return false, s.checkErr
	}
	_, ok := s.revoked[id]
	return ok, nil
}

type recordingActivity struct {
	mu      sync.Mutex
	entries []domain.ActivityEntry
}

func (r *recordingActivity) Record(e domain.ActivityEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

func (r *recordingActivity) actions() []domain.ActivityAction {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.ActivityAction, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Action)
	}
	return out
}

type stubJobRepo struct {
	mu      sync.Mutex
	jobs    map[uint64]*domain.Job
	applied map[[2]uint64]bool
	nextID  uint64
	err     error
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{jobs: make(map[uint64]*domain.Job), applied: make(map[[2]uint64]bool)}
}

func (r *stubJobRepo) CreateJob(_ context.Context, j *domain.Job) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	r.nextID++
	stored := *j
	stored.ID = r.nextID
	r.jobs[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (r *stubJobRepo) FindJob(_ context.Context, id uint64) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	out := *j
	return &out, nil
}

func (r *stubJobRepo) ListOpenJobs(_ context.Context, now time.Time) ([]domain.JobListing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.JobListing
	for _, j := range r.jobs {
		if j.OpenAt(now) {
			out = append(out, domain.JobListing{Job: *j})
		}
	}
	return out, nil
}

func (r *stubJobRepo) CreateApplication(_ context.Context, a *domain.Application) (*domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	key := [2]uint64{a.JobSeekerID, a.JobID}
	if r.applied[key] {
		return nil, domain.ErrAlreadyApplied
	}
	r.applied[key] = true
	r.nextID++
	out := *a
	out.ID = r.nextID
	return &out, nil
}

func (r *stubJobRepo) ApplicationsBySeeker(_ context.Context, seekerID uint64) ([]domain.SeekerApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.SeekerApplication
	for key := range r.applied {
		if key[0] == seekerID {
			out = append(out, domain.SeekerApplication{Application: domain.Application{JobSeekerID: key[0], JobID: key[1]}})
		}
	}
	return out, nil
}

func (r *stubJobRepo) ApplicationsByJob(_ context.Context, jobID uint64) ([]domain.JobApplicant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.JobApplicant
	for key := range r.applied {
		if key[1] == jobID {
			out = append(out, domain.JobApplicant{Application: domain.Application{JobSeekerID: key[0], JobID: key[1]}})
		}
	}
	return out, nil
}
