package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthguide/healthguide-api/internal/config"
	domainuser "github.com/healthguide/healthguide-api/internal/domain/user"
	"github.com/healthguide/healthguide-api/internal/models"
	"github.com/healthguide/healthguide-api/internal/repotest"
	"github.com/healthguide/healthguide-api/internal/token"
)

type testServer struct {
	t            *testing.T
	engine       *gin.Engine
	users        *repotest.Users
	appointments *repotest.Appointments
	tokens       *token.Manager
	now          time.Time
}

func newTestServer(t *testing.T, accessSecret, refreshSecret string) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log, _ := test.NewNullLogger()
	users := repotest.NewUsers()

	s := &testServer{
		t:            t,
		engine:       gin.New(),
		users:        users,
		appointments: repotest.NewAppointments(users),
		now:          time.Now(),
	}
	s.tokens = token.NewManager(accessSecret, refreshSecret).WithClock(func() time.Time { return s.now })

	Mount(s.engine, Dependencies{
		Users:        s.users,
		Appointments: s.appointments,
		Tokens:       s.tokens,
		Config:       &config.Config{Env: "development", CORSOrigins: []string{"http://localhost:3000"}},
		Log:          log,
	})
	return s
}

func newConfiguredServer(t *testing.T) *testServer {
	return newTestServer(t, "access-secret", "refresh-secret")
}

type requestOption func(*http.Request)

func bearer(tok string) requestOption {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+tok) }
}

func withCookie(name, value string) requestOption {
	return func(r *http.Request) { r.AddCookie(&http.Cookie{Name: name, Value: value}) }
}

// do sends body as-is when it is a string, JSON-encoded otherwise.
func (s *testServer) do(method, path string, body any, opts ...requestOption) *httptest.ResponseRecorder {
	s.t.Helper()

	var buf *bytes.Buffer
	switch b := body.(type) {
	case nil:
		buf = &bytes.Buffer{}
	case string:
		buf = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(s.t, err)
		buf = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, path, buf)
	if buf.Len() > 0 {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, opt := range opts {
		opt(req)
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

// seed stores a user directly and returns an access token for it.
func (s *testServer) seed(id uint, name string, role domainuser.Role) string {
	s.t.Helper()
	s.users.Put(models.User{
		ID:    id,
		Name:  name,
		Email: name + "@example.com",
		Role:  string(role),
	})
	pair, err := s.tokens.Issue(token.Identity{ID: id, Email: name + "@example.com", Name: name, Role: role})
	require.NoError(s.t, err)
	return pair.AccessToken
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func refreshCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == "refreshToken" {
			return c
		}
	}
	t.Fatalf("no refreshToken cookie in response")
	return nil
}

func signupBody(name, email string) map[string]any {
	return map[string]any{"name": name, "email": email, "password": "secret1"}
}

// ======================================================
// AUTH
// ======================================================

func TestSignupThenLogin(t *testing.T) {
	s := newConfiguredServer(t)

	w := s.do(http.MethodPost, "/api/auth/signup", signupBody("Ada", "ada@example.com"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decode(t, w)
	user := body["user"].(map[string]any)
	assert.NotEmpty(t, body["accessToken"])
	assert.Equal(t, "Ada", user["name"])
	assert.Equal(t, "user", user["role"])
	assert.NotContains(t, user, "passwordHash")
	assert.NotContains(t, w.Body.String(), "secret1")

	cookie := refreshCookie(t, w)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, 7*24*60*60, cookie.MaxAge)

	w = s.do(http.MethodPost, "/api/auth/login", map[string]any{"email": "ada@example.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	logged := decode(t, w)
	assert.Equal(t, user["id"], logged["user"].(map[string]any)["id"])
	assert.NotEmpty(t, logged["accessToken"])
	assert.NotEmpty(t, refreshCookie(t, w).Value)
}

func TestSignupDuplicateEmailKeepsOriginal(t *testing.T) {
	s := newConfiguredServer(t)

	w := s.do(http.MethodPost, "/api/auth/signup", signupBody("Ada", "ada@example.com"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.do(http.MethodPost, "/api/auth/signup", map[string]any{
		"name": "Impostor", "email": "ada@example.com", "password": "different",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"User already exists"}`, w.Body.String())

	w = s.do(http.MethodPost, "/api/auth/login", map[string]any{"email": "ada@example.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ada", decode(t, w)["user"].(map[string]any)["name"])
}

func TestSignupValidation(t *testing.T) {
	s := newConfiguredServer(t)

	w := s.do(http.MethodPost, "/api/auth/signup", map[string]any{"name": " ", "email": "nope", "password": "123"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decode(t, w)
	assert.Equal(t, "Invalid payload", body["error"])
	fields := body["issues"].(map[string]any)["fieldErrors"].(map[string]any)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")

	// Role cannot be chosen at signup.
	payload := signupBody("Ada", "ada@example.com")
	payload["role"] = "admin"
	w = s.do(http.MethodPost, "/api/auth/signup", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid payload", decode(t, w)["error"])

	w = s.do(http.MethodPost, "/api/auth/signup", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	n, _ := s.users.Count(context.Background())
	assert.Zero(t, n)
}

func TestLoginFailuresLookTheSame(t *testing.T) {
	s := newConfiguredServer(t)
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/api/auth/signup", signupBody("Ada", "ada@example.com")).Code)

	wrongPassword := s.do(http.MethodPost, "/api/auth/login", map[string]any{"email": "ada@example.com", "password": "wrong12"})
	unknownEmail := s.do(http.MethodPost, "/api/auth/login", map[string]any{"email": "bob@example.com", "password": "secret1"})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, wrongPassword.Body.String())
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
	assert.Empty(t, wrongPassword.Result().Cookies())
}

func TestAccessTokenExpiry(t *testing.T) {
	s := newConfiguredServer(t)
	tok := s.seed(1, "ada", domainuser.RoleUser)

	s.now = s.now.Add(14 * time.Minute)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/auth/me", nil, bearer(tok)).Code)

	s.now = s.now.Add(2 * time.Minute)
	w := s.do(http.MethodGet, "/api/auth/me", nil, bearer(tok))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid token"}`, w.Body.String())
}

func TestBearerHeaderRequired(t *testing.T) {
	s := newConfiguredServer(t)
	tok := s.seed(1, "ada", domainuser.RoleUser)

	w := s.do(http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())

	w = s.do(http.MethodGet, "/api/auth/me", nil, func(r *http.Request) {
		r.Header.Set("Authorization", "Token "+tok)
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodGet, "/api/auth/me", nil, bearer("not-a-jwt"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid token"}`, w.Body.String())
}

func TestRefreshRotatesTokens(t *testing.T) {
	s := newConfiguredServer(t)

	w := s.do(http.MethodPost, "/api/auth/signup", signupBody("Ada", "ada@example.com"))
	require.Equal(t, http.StatusCreated, w.Code)
	oldAccess := decode(t, w)["accessToken"].(string)
	oldRefresh := refreshCookie(t, w).Value

	w = s.do(http.MethodPost, "/api/auth/refresh", nil, withCookie("refreshToken", oldRefresh))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	newAccess := decode(t, w)["accessToken"].(string)
	newRefresh := refreshCookie(t, w).Value
	assert.NotEqual(t, oldAccess, newAccess)
	assert.NotEqual(t, oldRefresh, newRefresh)

	// The previous access token is not revoked.
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/auth/me", nil, bearer(oldAccess)).Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/auth/me", nil, bearer(newAccess)).Code)

	// Body fallback when no cookie is sent.
	w = s.do(http.MethodPost, "/api/auth/refresh", map[string]any{"refreshToken": newRefresh})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRefreshRejections(t *testing.T) {
	s := newConfiguredServer(t)

	w := s.do(http.MethodPost, "/api/auth/refresh", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"No refresh token provided"}`, w.Body.String())

	w = s.do(http.MethodPost, "/api/auth/refresh", nil, withCookie("refreshToken", "tampered"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid refresh token"}`, w.Body.String())

	w = s.do(http.MethodPost, "/api/auth/signup", signupBody("Ada", "ada@example.com"))
	require.Equal(t, http.StatusCreated, w.Code)
	access := decode(t, w)["accessToken"].(string)
	refresh := refreshCookie(t, w).Value

	// An access token is not accepted as a refresh token.
	w = s.do(http.MethodPost, "/api/auth/refresh", map[string]any{"refreshToken": access})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	s.now = s.now.Add(8 * 24 * time.Hour)
	w = s.do(http.MethodPost, "/api/auth/refresh", nil, withCookie("refreshToken", refresh))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid refresh token"}`, w.Body.String())
}

func TestRefreshForDeletedUser(t *testing.T) {
	s := newConfiguredServer(t)

	w := s.do(http.MethodPost, "/api/auth/signup", signupBody("Ada", "ada@example.com"))
	require.Equal(t, http.StatusCreated, w.Code)
	refresh := refreshCookie(t, w).Value

	s.users.Delete(1)

	w = s.do(http.MethodPost, "/api/auth/refresh", nil, withCookie("refreshToken", refresh))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	s := newConfiguredServer(t)

	w := s.do(http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Logged out"}`, w.Body.String())

	cookie := refreshCookie(t, w)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
}

func TestMissingSecretsAreServerErrors(t *testing.T) {
	s := newTestServer(t, "", "")

	w := s.do(http.MethodPost, "/api/auth/signup", signupBody("Ada", "ada@example.com"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"JWT secrets are not configured"}`, w.Body.String())

	n, _ := s.users.Count(context.Background())
	assert.Zero(t, n)

	w = s.do(http.MethodGet, "/api/auth/me", nil, bearer("anything"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = s.do(http.MethodPost, "/api/auth/refresh", map[string]any{"refreshToken": "anything"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// ======================================================
// PROFILE
// ======================================================

func TestGetMe(t *testing.T) {
	s := newConfiguredServer(t)
	tok := s.seed(1, "ada", domainuser.RoleUser)

	w := s.do(http.MethodGet, "/api/auth/me", nil, bearer(tok))
	require.Equal(t, http.StatusOK, w.Code)

	user := decode(t, w)["user"].(map[string]any)
	assert.Equal(t, "1", user["id"])
	assert.Equal(t, "ada@example.com", user["email"])
	assert.Contains(t, user, "gender")
	assert.Nil(t, user["gender"])

	s.users.Delete(1)
	w = s.do(http.MethodGet, "/api/auth/me", nil, bearer(tok))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, w.Body.String())
}

func TestUpdateMeOmittedVersusNull(t *testing.T) {
	s := newConfiguredServer(t)
	tok := s.seed(1, "ada", domainuser.RoleUser)

	patch := func(body string) map[string]any {
		t.Helper()
		w := s.do(http.MethodPatch, "/api/auth/me", body, bearer(tok))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		return decode(t, w)["user"].(map[string]any)
	}

	user := patch(`{"gender":"Female","phone":"555-0100"}`)
	assert.Equal(t, "Female", user["gender"])
	assert.Equal(t, "555-0100", user["phone"])

	user = patch(`{"phone":"555-0199"}`)
	assert.Equal(t, "Female", user["gender"], "omitted field must stay")
	assert.Equal(t, "555-0199", user["phone"])

	user = patch(`{"gender":""}`)
	assert.Nil(t, user["gender"])
	assert.Equal(t, "555-0199", user["phone"])

	user = patch(`{"phone":null,"address":"  "}`)
	assert.Nil(t, user["phone"])
	assert.Nil(t, user["address"])

	user = patch(`{"dateOfBirth":"1990-04-12","bloodType":" O+ "}`)
	assert.Equal(t, "1990-04-12", user["dateOfBirth"])
	assert.Equal(t, "O+", user["bloodType"])

	user = patch(`{"dateOfBirth":"1985-01-02T10:00:00Z"}`)
	assert.Equal(t, "1985-01-02", user["dateOfBirth"])

	user = patch(`{"dateOfBirth":null}`)
	assert.Nil(t, user["dateOfBirth"])
	assert.Equal(t, "O+", user["bloodType"])
}

func TestUpdateMeRejectsBadPayloads(t *testing.T) {
	s := newConfiguredServer(t)
	tok := s.seed(1, "ada", domainuser.RoleUser)

	for _, body := range []string{
		`{"dateOfBirth":"yesterday"}`,
		`{"gender":123}`,
		`{"email":"new@example.com"}`,
		`{"role":"admin"}`,
	} {
		w := s.do(http.MethodPatch, "/api/auth/me", body, bearer(tok))
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, "Invalid payload", decode(t, w)["error"], body)
	}

	stored, err := s.users.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "user", stored.Role)
	assert.Equal(t, "ada@example.com", stored.Email)
}

// ======================================================
// ADMIN
// ======================================================

func TestAdminRoutesAreGated(t *testing.T) {
	s := newConfiguredServer(t)
	userTok := s.seed(1, "ada", domainuser.RoleUser)
	doctorTok := s.seed(2, "greg", domainuser.RoleDoctor)

	w := s.do(http.MethodGet, "/api/admin/stats", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodGet, "/api/admin/stats", nil, bearer(userTok))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Forbidden"}`, w.Body.String())

	w = s.do(http.MethodPost, "/api/admin/doctors", signupBody("Evil", "evil@example.com"), bearer(doctorTok))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLegacyTokenWithoutRoleIsUser(t *testing.T) {
	s := newConfiguredServer(t)
	s.users.Put(models.User{ID: 9, Name: "old", Email: "old@example.com", Role: "admin"})

	pair, err := s.tokens.Issue(token.Identity{ID: 9, Email: "old@example.com", Name: "old"})
	require.NoError(t, err)

	w := s.do(http.MethodGet, "/api/admin/stats", nil, bearer(pair.AccessToken))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminCreatesDoctorAndReadsStats(t *testing.T) {
	s := newConfiguredServer(t)
	adminTok := s.seed(1, "root", domainuser.RoleAdmin)
	s.seed(2, "ada", domainuser.RoleUser)

	w := s.do(http.MethodPost, "/api/admin/doctors", signupBody("Greg", "greg@example.com"), bearer(adminTok))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	doctor := decode(t, w)["doctor"].(map[string]any)
	assert.Equal(t, "doctor", doctor["role"])
	assert.Equal(t, "greg@example.com", doctor["email"])
	assert.NotContains(t, w.Body.String(), "secret1")
	assert.Empty(t, w.Result().Cookies())

	w = s.do(http.MethodPost, "/api/admin/doctors", signupBody("Greg", "greg@example.com"), bearer(adminTok))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"User with this email already exists"}`, w.Body.String())

	w = s.do(http.MethodPost, "/api/admin/doctors", map[string]any{"name": "", "email": "x", "password": "1"}, bearer(adminTok))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The new doctor can log in with the password the admin chose.
	w = s.do(http.MethodPost, "/api/auth/login", map[string]any{"email": "greg@example.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/admin/stats", nil, bearer(adminTok))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"stats":{"totalUsers":3,"totalDoctors":1,"totalAppointments":0}}`, w.Body.String())
}

// ======================================================
// APPOINTMENTS
// ======================================================

func TestCreateAppointment(t *testing.T) {
	s := newConfiguredServer(t)
	patientTok := s.seed(1, "ada", domainuser.RoleUser)
	s.seed(2, "greg", domainuser.RoleDoctor)
	s.seed(3, "bob", domainuser.RoleUser)

	w := s.do(http.MethodPost, "/api/appointments", map[string]any{
		"doctorId": 2,
		"startsAt": "2026-06-01T09:00:00.000Z",
		"endsAt":   "2026-06-01T09:30:00.000Z",
	}, bearer(patientTok))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	ap := decode(t, w)["appointment"].(map[string]any)
	assert.EqualValues(t, 1, ap["patientId"])
	assert.EqualValues(t, 2, ap["doctorId"])
	assert.Equal(t, "scheduled", ap["status"])
	assert.Equal(t, "2026-06-01T09:00:00Z", ap["startsAt"])

	w = s.do(http.MethodPost, "/api/appointments", map[string]any{
		"doctorId": 3,
		"startsAt": "2026-06-01T09:00:00Z",
		"endsAt":   "2026-06-01T09:30:00Z",
	}, bearer(patientTok))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid doctor"}`, w.Body.String())
}

func TestCreateAppointmentCannotImpersonate(t *testing.T) {
	s := newConfiguredServer(t)
	patientTok := s.seed(1, "ada", domainuser.RoleUser)
	s.seed(2, "greg", domainuser.RoleDoctor)

	w := s.do(http.MethodPost, "/api/appointments", map[string]any{
		"doctorId":  2,
		"patientId": 99,
		"startsAt":  "2026-06-01T09:00:00Z",
		"endsAt":    "2026-06-01T09:30:00Z",
	}, bearer(patientTok))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	n, _ := s.appointments.Count(context.Background())
	assert.Zero(t, n)
}

func TestCreateAppointmentValidation(t *testing.T) {
	s := newConfiguredServer(t)
	patientTok := s.seed(1, "ada", domainuser.RoleUser)
	doctorTok := s.seed(2, "greg", domainuser.RoleDoctor)

	for _, body := range []string{
		`{"doctorId":0,"startsAt":"2026-06-01T09:00:00Z","endsAt":"2026-06-01T09:30:00Z"}`,
		`{"doctorId":"2","startsAt":"2026-06-01T09:00:00Z","endsAt":"2026-06-01T09:30:00Z"}`,
		`{"doctorId":2,"startsAt":"tomorrow","endsAt":"2026-06-01T09:30:00Z"}`,
		`{"doctorId":2,"startsAt":"2026-06-01T09:00:00Z"}`,
	} {
		w := s.do(http.MethodPost, "/api/appointments", body, bearer(patientTok))
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, "Invalid payload", decode(t, w)["error"], body)
	}

	w := s.do(http.MethodPost, "/api/appointments",
		`{"doctorId":2,"startsAt":"2026-06-01T09:00:00Z","endsAt":"2026-06-01T09:30:00Z"}`,
		bearer(doctorTok))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(http.MethodPost, "/api/appointments", `{}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDoctorSeesOnlyOwnAppointments(t *testing.T) {
	s := newConfiguredServer(t)
	patientTok := s.seed(1, "ada", domainuser.RoleUser)
	doctorATok := s.seed(2, "greg", domainuser.RoleDoctor)
	doctorBTok := s.seed(3, "house", domainuser.RoleDoctor)
	s.seed(4, "bob", domainuser.RoleUser)

	book := func(doctorID int, startsAt, endsAt string) {
		t.Helper()
		w := s.do(http.MethodPost, "/api/appointments", map[string]any{
			"doctorId": doctorID, "startsAt": startsAt, "endsAt": endsAt,
		}, bearer(patientTok))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}
	book(2, "2026-06-02T09:00:00Z", "2026-06-02T09:30:00Z")
	book(2, "2026-06-01T09:00:00Z", "2026-06-01T09:30:00Z")
	book(3, "2026-06-01T10:00:00Z", "2026-06-01T10:30:00Z")

	w := s.do(http.MethodGet, "/api/appointments/doctor", nil, bearer(doctorATok))
	require.Equal(t, http.StatusOK, w.Code)

	list := decode(t, w)["appointments"].([]any)
	require.Len(t, list, 2)
	first := list[0].(map[string]any)
	assert.Equal(t, "2026-06-01T09:00:00Z", first["startsAt"])
	assert.Equal(t, "ada", first["patientName"])

	w = s.do(http.MethodGet, "/api/appointments/doctor", nil, bearer(doctorBTok))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["appointments"].([]any), 1)

	s.users.Delete(1)
	w = s.do(http.MethodGet, "/api/appointments/doctor", nil, bearer(doctorBTok))
	require.Equal(t, http.StatusOK, w.Code)
	entry := decode(t, w)["appointments"].([]any)[0].(map[string]any)
	assert.Equal(t, "Unknown patient", entry["patientName"])

	w = s.do(http.MethodGet, "/api/appointments/doctor", nil, bearer(patientTok))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(http.MethodGet, "/api/admin/stats", nil, bearer(s.seed(5, "root", domainuser.RoleAdmin)))
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode(t, w)["stats"].(map[string]any)
	assert.EqualValues(t, 3, stats["totalAppointments"])
}

func TestDoctorWithNoAppointmentsGetsEmptyList(t *testing.T) {
	s := newConfiguredServer(t)
	tok := s.seed(1, "greg", domainuser.RoleDoctor)

	w := s.do(http.MethodGet, "/api/appointments/doctor", nil, bearer(tok))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"appointments":[]}`, w.Body.String())
}

// ======================================================
// MISC
// ======================================================

func TestHealth(t *testing.T) {
	s := newConfiguredServer(t)

	w := s.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestCORSPreflight(t *testing.T) {
	s := newConfiguredServer(t)

	w := s.do(http.MethodOptions, "/api/auth/login", nil, func(r *http.Request) {
		r.Header.Set("Origin", "http://localhost:3000")
	})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	w = s.do(http.MethodOptions, "/api/auth/login", nil, func(r *http.Request) {
		r.Header.Set("Origin", "http://evil.example")
	})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
