package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"secondserve-backend/internal/domain"
	"secondserve-backend/internal/service"
)

type mockSessionService struct {
	mock.Mock
}

func (m *mockSessionService) Issue(ctx context.Context, p domain.Principal) (*domain.Session, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *mockSessionService) Resolve(ctx context.Context, token string) (domain.Principal, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Principal), args.Error(1)
}

func (m *mockSessionService) Destroy(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	res := rec.Result()
	defer res.Body.Close()
	for _, c := range res.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestRequireLogin_NoCookie(t *testing.T) {
	sessions := new(mockSessionService)
	mw := NewAuthMiddleware(sessions)

	called := false
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/donor/index", nil)
	mw.RequireLogin(okHandler(&called)).ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	// Exactly one flash notice is queued for the denial.
	flash := findCookie(t, rec, flashErrorCookie)
	require.NotNil(t, flash)
	msg, err := url.QueryUnescape(flash.Value)
	require.NoError(t, err)
	assert.Equal(t, "You must be logged in first!", msg)
}

func TestRequireLogin_InvalidSessionClearsCookie(t *testing.T) {
	sessions := new(mockSessionService)
	sessions.On("Resolve", mock.Anything, "stale").Return(nil, service.ErrSessionInvalid)
	mw := NewAuthMiddleware(sessions)

	called := false
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/donor/index", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "stale"})
	mw.RequireLogin(okHandler(&called)).ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	cleared := findCookie(t, rec, SessionCookie)
	require.NotNil(t, cleared)
	assert.True(t, cleared.MaxAge < 0)
}

func TestRequireLogin_ValidSessionAttachesPrincipal(t *testing.T) {
	sessions := new(mockSessionService)
	donor := &domain.Donor{ID: 1, Username: "sam", Role: domain.RoleDonor}
	sessions.On("Resolve", mock.Anything, "tok").Return(donor, nil)
	mw := NewAuthMiddleware(sessions)

	var got domain.Principal
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = PrincipalFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/donor/index", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "tok"})
	mw.RequireLogin(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, int32(1), got.PrincipalID())
}

func TestRequireRole_WrongRoleRedirectsHome(t *testing.T) {
	sessions := new(mockSessionService)
	mw := NewAuthMiddleware(sessions)

	called := false
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req = req.WithContext(WithPrincipal(req.Context(), &domain.Donor{ID: 1, Role: domain.RoleDonor}))

	mw.RequireRole(domain.RoleAdmin)(okHandler(&called)).ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestRequireRole_AnyListedRolePasses(t *testing.T) {
	sessions := new(mockSessionService)
	mw := NewAuthMiddleware(sessions)

	called := false
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/donor/index", nil)
	req = req.WithContext(WithPrincipal(req.Context(), &domain.Donor{ID: 2, Role: domain.RoleAdmin}))

	mw.RequireRole(domain.RoleDonor, domain.RoleAdmin)(okHandler(&called)).ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAttach_NeverDenies(t *testing.T) {
	sessions := new(mockSessionService)
	sessions.On("Resolve", mock.Anything, "bad").Return(nil, service.ErrSessionInvalid)
	mw := NewAuthMiddleware(sessions)

	called := false
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "bad"})
	mw.Attach(okHandler(&called)).ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLandingPath(t *testing.T) {
	assert.Equal(t, "/donor/index", landingPath(&domain.Donor{Role: domain.RoleDonor}))
	assert.Equal(t, "/admin/dashboard", landingPath(&domain.Donor{Role: domain.RoleAdmin}))
	assert.Equal(t, "/organization/dashboard", landingPath(&domain.Organization{}))
}
