package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"resume-screening-backend/internal/sessions"
	"resume-screening-backend/internal/shared/server/middleware"
	"resume-screening-backend/internal/users"
)

type authFixture struct {
	router *gin.Engine
	repo   *users.MemoryRepo
	store  *sessions.MemoryStore
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := users.NewMemoryRepo()
	store := sessions.NewMemoryStore()
	handler := NewHandler(NewService(repo), store, 24*time.Hour, false)

	router := gin.New()
	router.Use(middleware.SessionAuth(store))
	api := router.Group("/api")
	protected := api.Group("", middleware.RequireUser())
	handler.RegisterRoutes(api, protected, nil)

	return &authFixture{router: router, repo: repo, store: store}
}

func (f *authFixture) post(t *testing.T, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	resp := httptest.NewRecorder()
	f.router.ServeHTTP(resp, req)
	return resp
}

func (f *authFixture) get(t *testing.T, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	resp := httptest.NewRecorder()
	f.router.ServeHTTP(resp, req)
	return resp
}

func errorMessage(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal error body: %v", err)
	}
	return payload.Error.Message
}

const validRegister = `{"fullName":"Alice Smith","email":"alice@x.com","username":"alice","password":"password123","confirmPassword":"password123"}`

func TestRegisterValidation(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		message string
	}{
		{
			"missing field",
			`{"fullName":"Alice","email":"alice@x.com","username":"alice","password":"password123"}`,
			"All fields are required.",
		},
		{
			"password mismatch",
			`{"fullName":"Alice","email":"alice@x.com","username":"alice","password":"password123","confirmPassword":"password124"}`,
			"Passwords do not match.",
		},
		{
			"short password",
			`{"fullName":"Alice","email":"alice@x.com","username":"alice","password":"short12","confirmPassword":"short12"}`,
			"Password must be at least 8 characters.",
		},
		{
			// 7 characters but 13 bytes; length is counted in characters.
			"short multibyte password",
			`{"fullName":"Alice","email":"alice@x.com","username":"alice","password":"пароль7","confirmPassword":"пароль7"}`,
			"Password must be at least 8 characters.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newAuthFixture(t)
			resp := f.post(t, "/api/register", tc.body, nil)
			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d: %s", resp.Code, resp.Body.String())
			}
			if got := errorMessage(t, resp); got != tc.message {
				t.Fatalf("expected message %q, got %q", tc.message, got)
			}
			if _, err := f.repo.GetByUsernameOrEmail(context.Background(), "alice"); err == nil {
				t.Fatalf("expected no user record created")
			}
		})
	}
}

func TestRegisterDuplicateConflicts(t *testing.T) {
	f := newAuthFixture(t)

	if resp := f.post(t, "/api/register", validRegister, nil); resp.Code != http.StatusOK {
		t.Fatalf("first register: expected 200, got %d", resp.Code)
	}

	sameEmail := `{"fullName":"A","email":"alice@x.com","username":"alice2","password":"password123","confirmPassword":"password123"}`
	if resp := f.post(t, "/api/register", sameEmail, nil); resp.Code != http.StatusConflict {
		t.Fatalf("duplicate email: expected 409, got %d", resp.Code)
	}

	sameUsername := `{"fullName":"A","email":"alice2@x.com","username":"alice","password":"password123","confirmPassword":"password123"}`
	resp := f.post(t, "/api/register", sameUsername, nil)
	if resp.Code != http.StatusConflict {
		t.Fatalf("duplicate username: expected 409, got %d", resp.Code)
	}
	if got := errorMessage(t, resp); got != "Email or username already in use." {
		t.Fatalf("unexpected conflict message %q", got)
	}
}

func TestRegisterSetsSessionCookie(t *testing.T) {
	f := newAuthFixture(t)

	resp := f.post(t, "/api/register", validRegister, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var payload struct {
		Success bool   `json:"success"`
		UserID  string `json:"userId"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !payload.Success || payload.UserID == "" {
		t.Fatalf("expected success with userId, got %s", resp.Body.String())
	}

	cookie := sessionCookie(resp)
	if cookie == nil {
		t.Fatalf("expected session cookie to be set")
	}
	if !cookie.HttpOnly {
		t.Fatalf("expected HttpOnly session cookie")
	}

	sess, err := f.store.Get(context.Background(), cookie.Value)
	if err != nil {
		t.Fatalf("expected server-side session for cookie token: %v", err)
	}
	if sess.UserID != payload.UserID {
		t.Fatalf("session bound to %q, want %q", sess.UserID, payload.UserID)
	}
}

func TestLoginUniformErrorForBadCredentials(t *testing.T) {
	f := newAuthFixture(t)
	if resp := f.post(t, "/api/register", validRegister, nil); resp.Code != http.StatusOK {
		t.Fatalf("register: expected 200, got %d", resp.Code)
	}

	wrongPassword := f.post(t, "/api/login", `{"usernameOrEmail":"alice","password":"wrongpassword"}`, nil)
	unknownUser := f.post(t, "/api/login", `{"usernameOrEmail":"nobody","password":"password123"}`, nil)

	if wrongPassword.Code != http.StatusUnauthorized || unknownUser.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for both, got %d and %d", wrongPassword.Code, unknownUser.Code)
	}
	msg1 := errorMessage(t, wrongPassword)
	msg2 := errorMessage(t, unknownUser)
	if msg1 != msg2 {
		t.Fatalf("expected identical messages, got %q and %q", msg1, msg2)
	}
	if msg1 != "Invalid username/email or password." {
		t.Fatalf("unexpected message %q", msg1)
	}
}

func TestLoginByUsernameOrEmail(t *testing.T) {
	f := newAuthFixture(t)
	if resp := f.post(t, "/api/register", validRegister, nil); resp.Code != http.StatusOK {
		t.Fatalf("register: expected 200, got %d", resp.Code)
	}

	for _, identifier := range []string{"alice", "alice@x.com"} {
		body := `{"usernameOrEmail":"` + identifier + `","password":"password123"}`
		resp := f.post(t, "/api/login", body, nil)
		if resp.Code != http.StatusOK {
			t.Fatalf("login as %q: expected 200, got %d: %s", identifier, resp.Code, resp.Body.String())
		}
		if sessionCookie(resp) == nil {
			t.Fatalf("login as %q: expected session cookie", identifier)
		}
	}
}

func TestLoginMissingCredentials(t *testing.T) {
	f := newAuthFixture(t)
	resp := f.post(t, "/api/login", `{"usernameOrEmail":"alice"}`, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	if got := errorMessage(t, resp); got != "Missing credentials." {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestMeReturnsIdentityWithoutPassword(t *testing.T) {
	f := newAuthFixture(t)
	registerResp := f.post(t, "/api/register", validRegister, nil)
	if registerResp.Code != http.StatusOK {
		t.Fatalf("register: expected 200, got %d", registerResp.Code)
	}
	cookies := registerResp.Result().Cookies()

	resp := f.get(t, "/api/me", cookies)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var payload struct {
		User map[string]any `json:"user"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if payload.User["username"] != "alice" {
		t.Fatalf("expected username alice, got %v", payload.User["username"])
	}
	for _, key := range []string{"id", "full_name", "email", "created_at"} {
		if _, ok := payload.User[key]; !ok {
			t.Fatalf("expected field %q in user projection", key)
		}
	}
	if strings.Contains(strings.ToLower(resp.Body.String()), "password") {
		t.Fatalf("user projection leaked password material: %s", resp.Body.String())
	}
}

func TestMeWithoutSessionUnauthorized(t *testing.T) {
	f := newAuthFixture(t)
	if resp := f.get(t, "/api/me", nil); resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
}

func TestMeUserGoneReturns404(t *testing.T) {
	f := newAuthFixture(t)
	sess, err := f.store.Create(context.Background(), "ghost-user", time.Hour)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	cookie := &http.Cookie{Name: middleware.SessionCookieName, Value: sess.Token}
	if resp := f.get(t, "/api/me", []*http.Cookie{cookie}); resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestLogoutDestroysSessionAndIsIdempotent(t *testing.T) {
	f := newAuthFixture(t)
	registerResp := f.post(t, "/api/register", validRegister, nil)
	if registerResp.Code != http.StatusOK {
		t.Fatalf("register: expected 200, got %d", registerResp.Code)
	}
	cookies := registerResp.Result().Cookies()

	if resp := f.post(t, "/api/logout", "", cookies); resp.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", resp.Code)
	}

	// Same token no longer authenticates.
	if resp := f.get(t, "/api/me", cookies); resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", resp.Code)
	}

	// Logging out again, or with no session at all, still succeeds.
	if resp := f.post(t, "/api/logout", "", cookies); resp.Code != http.StatusOK {
		t.Fatalf("repeat logout: expected 200, got %d", resp.Code)
	}
	if resp := f.post(t, "/api/logout", "", nil); resp.Code != http.StatusOK {
		t.Fatalf("logout without session: expected 200, got %d", resp.Code)
	}
}

func sessionCookie(resp *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range resp.Result().Cookies() {
		if cookie.Name == middleware.SessionCookieName {
			return cookie
		}
	}
	return nil
}
