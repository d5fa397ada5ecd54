package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirehive/hirehive-api/internal/core/domain"
	"github.com/hirehive/hirehive-api/internal/core/service"
	sqlstore "github.com/hirehive/hirehive-api/internal/infrastructure/db/sql"
	"github.com/hirehive/hirehive-api/internal/infrastructure/queue"
	"github.com/hirehive/hirehive-api/internal/infrastructure/security"
)

// memRevocations is an in-process deny-list.
type memRevocations struct {
	mu  sync.Mutex
	ids map[string]time.Time
}

func (m *memRevocations) Revoke(_ context.Context, id string, until time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ids[id] = until
	return nil
}

func (m *memRevocations) IsRevoked(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.ids[id]
	return ok, nil
}

type testServer struct {
	e      *echo.Echo
	tokens *security.JWTManager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx := context.Background()

	db, err := sqlstore.Connect(ctx, sqlstore.Config{
		Driver:       "sqlite",
		DSN:          fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_")),
		MaxOpenConns: 1,
	}, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlstore.Close(db) })

	accounts := sqlstore.NewAccountRepository(db)
	require.NoError(t, accounts.EnsureSchema(ctx))
	jobs := sqlstore.NewJobRepository(db)
	require.NoError(t, jobs.EnsureSchema(ctx))

	tokens, err := security.NewJWTManager(security.JWTConfig{Secret: []byte("test-secret"), Issuer: "hirehive"})
	require.NoError(t, err)
	hasher := security.NewBcryptHasher(4)
	revocations := &memRevocations{ids: map[string]time.Time{}}
	sessions := service.NewSessionVerifier(tokens, revocations, zerolog.Nop())

	e := NewRouter(Dependencies{
		Log:             zerolog.Nop(),
		AuthService:     service.NewAuthService(accounts, hasher, tokens, tokens, revocations, queue.NopRecorder{}, zerolog.Nop()),
		AccountService:  service.NewAccountService(accounts),
		JobService:      service.NewJobService(jobs, queue.NopRecorder{}, zerolog.Nop()),
		Sessions:        sessions,
		MetricsRegistry: prometheus.NewRegistry(),
	})
	return &testServer{e: e, tokens: tokens}
}

func (s *testServer) do(method, path, body, bearer string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) signupAndSignin(t *testing.T, body, email string) (string, map[string]any) {
	t.Helper()
	rec := s.do(http.MethodPost, "/api/auth/signup", body, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(http.MethodPost, "/api/auth/signin", fmt.Sprintf(`{"email":%q,"password":"secret1"}`, email), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Token string         `json:"token"`
		User  map[string]any `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Token, resp.User
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	msg, _ := resp["message"].(string)
	return msg
}

func TestRouter_SignupSigninAndRoleProbes(t *testing.T) {
	s := newTestServer(t)

	vendorToken, vendor := s.signupAndSignin(t,
		`{"name":"Vera","email":"vera@example.com","password":"secret1","role":"vendor","company_name":"Acme"}`,
		"vera@example.com")
	assert.Equal(t, "vendor", vendor["role"])
	assert.Equal(t, "Acme", vendor["role_specific_data"])
	assert.NotContains(t, vendor, "password")
	assert.NotContains(t, vendor, "password_hash")

	id, err := s.tokens.Verify(vendorToken)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleVendor, id.Role)

	adminToken, _ := s.signupAndSignin(t,
		`{"name":"Ada","email":"ada@example.com","password":"secret1","role":"admin","admin_level":"super"}`,
		"ada@example.com")

	cases := []struct {
		path  string
		token string
		want  int
	}{
		{"/api/protected/vendor", vendorToken, http.StatusOK},
		{"/api/protected/admin", vendorToken, http.StatusForbidden},
		{"/api/protected/job-seeker", vendorToken, http.StatusForbidden},
		{"/api/protected/me", vendorToken, http.StatusOK},
		{"/api/protected/admin", adminToken, http.StatusOK},
		{"/api/protected/admin", "", http.StatusUnauthorized},
		{"/api/protected/admin", "not-a-token", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		rec := s.do(http.MethodGet, tc.path, "", tc.token)
		assert.Equal(t, tc.want, rec.Code, "%s with %q", tc.path, tc.token)
		assert.NotEmpty(t, decodeMessage(t, rec), tc.path)
	}
}

func TestRouter_SignupErrors(t *testing.T) {
	s := newTestServer(t)
	body := `{"name":"Jo","email":"jo@example.com","password":"secret1","role":"job_seeker"}`

	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/api/auth/signup", body, "").Code)

	rec := s.do(http.MethodPost, "/api/auth/signup", body, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "user already exists", decodeMessage(t, rec))

	rec = s.do(http.MethodPost, "/api/auth/signup", `{"name":"Jo","email":"x@example.com","password":"123","role":"job_seeker"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeMessage(t, rec), "password")
}

func TestRouter_InvalidCredentialsAreIdentical(t *testing.T) {
	s := newTestServer(t)
	s.signupAndSignin(t, `{"name":"Jo","email":"jo@example.com","password":"secret1","role":"job_seeker"}`, "jo@example.com")

	unknown := s.do(http.MethodPost, "/api/auth/signin", `{"email":"nobody@example.com","password":"secret1"}`, "")
	wrong := s.do(http.MethodPost, "/api/auth/signin", `{"email":"jo@example.com","password":"wrong-password"}`, "")

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, unknown.Code, wrong.Code)
	assert.JSONEq(t, unknown.Body.String(), wrong.Body.String())
}

func TestRouter_UserLookupOwnerOrAdmin(t *testing.T) {
	s := newTestServer(t)
	seekerToken, seeker := s.signupAndSignin(t,
		`{"name":"Jo","email":"jo@example.com","password":"secret1","role":"job_seeker","resume":"cv.pdf"}`, "jo@example.com")
	vendorToken, _ := s.signupAndSignin(t,
		`{"name":"Vera","email":"vera@example.com","password":"secret1","role":"vendor","company_name":"Acme"}`, "vera@example.com")
	adminToken, _ := s.signupAndSignin(t,
		`{"name":"Ada","email":"ada@example.com","password":"secret1","role":"admin"}`, "ada@example.com")

	path := fmt.Sprintf("/api/users/%d", int(seeker["id"].(float64)))

	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, path, "", seekerToken).Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, path, "", adminToken).Code)
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, path, "", vendorToken).Code)
	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, path, "", "").Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/users/9999", "", adminToken).Code)
}

func TestRouter_LogoutRevokesToken(t *testing.T) {
	s := newTestServer(t)
	token, _ := s.signupAndSignin(t, `{"name":"Ada","email":"ada@example.com","password":"secret1","role":"admin"}`, "ada@example.com")

	require.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/protected/admin", "", token).Code)

	rec := s.do(http.MethodPost, "/api/auth/logout", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Set-Cookie"), "token=;")

	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/api/protected/admin", "", token).Code)
}

func TestRouter_EdgeGate(t *testing.T) {
	s := newTestServer(t)
	token, _ := s.signupAndSignin(t,
		`{"name":"Vera","email":"vera@example.com","password":"secret1","role":"vendor","company_name":"Acme"}`, "vera@example.com")

	get := func(path, cookie string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if cookie != "" {
			req.AddCookie(&http.Cookie{Name: "token", Value: cookie})
		}
		rec := httptest.NewRecorder()
		s.e.ServeHTTP(rec, req)
		return rec
	}

	rec := get("/dashboard/vendor", token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"role":"vendor"`)

	rec = get("/dashboard/admin", token)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))

	rec = get("/login", token)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get(echo.HeaderLocation))

	assert.Equal(t, http.StatusFound, get("/dashboard", "").Code)
	assert.Equal(t, http.StatusOK, get("/login", "").Code)

	rec = get("/login/anything", "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, http.StatusOK, get("/health", "").Code)
}

func TestRouter_SignupAcceptsLongAndMultibytePasswords(t *testing.T) {
	s := newTestServer(t)

	passwords := map[string]string{
		"accented@example.com": strings.Repeat("é", 40),
		"long@example.com":     strings.Repeat("a", 80),
	}
	for email, pw := range passwords {
		body := fmt.Sprintf(`{"name":"Jo","email":%q,"password":%q,"role":"job_seeker"}`, email, pw)
		rec := s.do(http.MethodPost, "/api/auth/signup", body, "")
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		rec = s.do(http.MethodPost, "/api/auth/signin", fmt.Sprintf(`{"email":%q,"password":%q}`, email, pw), "")
		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		rec = s.do(http.MethodPost, "/api/auth/signin", fmt.Sprintf(`{"email":%q,"password":%q}`, email, pw[:len(pw)-2]), "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}
}

func TestRouter_JobBoardAccessControl(t *testing.T) {
	s := newTestServer(t)
	vendorToken, vendor := s.signupAndSignin(t,
		`{"name":"Vera","email":"vera@example.com","password":"secret1","role":"vendor","company_name":"Acme"}`, "vera@example.com")
	otherVendorToken, _ := s.signupAndSignin(t,
		`{"name":"Otto","email":"otto@example.com","password":"secret1","role":"vendor","company_name":"Other"}`, "otto@example.com")
	seekerToken, seeker := s.signupAndSignin(t,
		`{"name":"Jo","email":"jo@example.com","password":"secret1","role":"job_seeker","resume":"cv.pdf"}`, "jo@example.com")
	adminToken, _ := s.signupAndSignin(t,
		`{"name":"Ada","email":"ada@example.com","password":"secret1","role":"admin"}`, "ada@example.com")

	jobBody := `{"title":"Go engineer","description":"Build services","salary_min":1000,"salary_max":2000}`
	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodPost, "/api/jobs", jobBody, "").Code)
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodPost, "/api/jobs", jobBody, seekerToken).Code)
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodPost, "/api/jobs", jobBody, adminToken).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/api/jobs", `{"title":"x"}`, vendorToken).Code)

	rec := s.do(http.MethodPost, "/api/jobs", jobBody, vendorToken)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var posted struct {
		Job struct {
			ID       uint64  `json:"id"`
			VendorID float64 `json:"vendor_id"`
		} `json:"job"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posted))
	assert.Equal(t, vendor["id"], posted.Job.VendorID)

	rec = s.do(http.MethodGet, "/api/jobs", "", seekerToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"vendor_name":"Vera"`)
	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/api/jobs", "", "").Code)

	applyBody := fmt.Sprintf(`{"job_id":%d}`, posted.Job.ID)
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodPost, "/api/applications", applyBody, vendorToken).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPost, "/api/applications", `{"job_id":999}`, seekerToken).Code)
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/api/applications", applyBody, seekerToken).Code)

	rec = s.do(http.MethodPost, "/api/applications", applyBody, seekerToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application already submitted", decodeMessage(t, rec))

	seekerPath := fmt.Sprintf("/api/applications/jobseeker/%d", int(seeker["id"].(float64)))
	rec = s.do(http.MethodGet, seekerPath, "", seekerToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"company_name":"Acme"`)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, seekerPath, "", adminToken).Code)
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, seekerPath, "", vendorToken).Code)

	jobPath := fmt.Sprintf("/api/applications/job/%d", posted.Job.ID)
	rec = s.do(http.MethodGet, jobPath, "", vendorToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"applicant_email":"jo@example.com"`)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, jobPath, "", adminToken).Code)
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, jobPath, "", otherVendorToken).Code)
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, jobPath, "", seekerToken).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/applications/job/999", "", vendorToken).Code)
}
