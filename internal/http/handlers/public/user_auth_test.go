package public

import (
	"net/http"
	"testing"

	"github.com/storefront-next/internal/http/response"
)

type authData struct {
	User struct {
		ID       uint   `json:"id"`
		Email    string `json:"email"`
		FullName string `json:"full_name"`
	} `json:"user"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

func TestUserRegisterAndLogin(t *testing.T) {
	env := setupPublicTestEnv(t, "public_auth")

	resp := env.do(t, http.MethodPost, "/api/v1/auth/register", 0, map[string]interface{}{
		"full_name":        "Ada",
		"email":            " Ada@Example.com ",
		"password":         "secret1",
		"confirm_password": "secret1",
	})
	if resp.StatusCode != response.CodeOK {
		t.Fatalf("register status want 0 got %d msg=%s", resp.StatusCode, resp.Msg)
	}
	var registered authData
	decodeData(t, resp, &registered)
	if registered.User.Email != "ada@example.com" || registered.Token == "" || registered.ExpiresAt == "" {
		t.Fatalf("unexpected register data: %+v", registered)
	}

	var loggedIn authData
	decodeData(t, env.do(t, http.MethodPost, "/api/v1/auth/login", 0, map[string]interface{}{
		"email":    "ada@example.com",
		"password": "secret1",
	}), &loggedIn)
	if loggedIn.User.ID != registered.User.ID || loggedIn.Token == "" {
		t.Fatalf("unexpected login data: %+v", loggedIn)
	}

	var me struct {
		Email string `json:"email"`
	}
	decodeData(t, env.do(t, http.MethodGet, "/api/v1/me", registered.User.ID, nil), &me)
	if me.Email != "ada@example.com" {
		t.Fatalf("me email want ada@example.com got %s", me.Email)
	}
}

func TestUserRegisterErrors(t *testing.T) {
	env := setupPublicTestEnv(t, "public_auth_errors")
	cases := []struct {
		name string
		body map[string]interface{}
		code int
	}{
		{name: "mismatch", body: map[string]interface{}{"email": "a@b.co", "password": "secret1", "confirm_password": "secret2"}, code: response.CodeBadRequest},
		{name: "short", body: map[string]interface{}{"email": "a@b.co", "password": "abc", "confirm_password": "abc"}, code: response.CodeBadRequest},
		{name: "email", body: map[string]interface{}{"email": "not-an-email", "password": "secret1", "confirm_password": "secret1"}, code: response.CodeBadRequest},
		{name: "missing", body: map[string]interface{}{"email": "a@b.co"}, code: response.CodeBadRequest},
	}
	for _, tc := range cases {
		resp := env.do(t, http.MethodPost, "/api/v1/auth/register", 0, tc.body)
		if resp.StatusCode != tc.code {
			t.Fatalf("%s: status want %d got %d", tc.name, tc.code, resp.StatusCode)
		}
	}

	body := map[string]interface{}{"email": "dup@b.co", "password": "secret1", "confirm_password": "secret1"}
	if resp := env.do(t, http.MethodPost, "/api/v1/auth/register", 0, body); resp.StatusCode != response.CodeOK {
		t.Fatalf("first register failed: %d", resp.StatusCode)
	}
	if resp := env.do(t, http.MethodPost, "/api/v1/auth/register", 0, body); resp.StatusCode != response.CodeConflict {
		t.Fatalf("duplicate status want 409 got %d", resp.StatusCode)
	}
}

func TestUserRegisterWeakPasswordMessage(t *testing.T) {
	env := setupPublicTestEnv(t, "public_auth_weak")
	resp := env.do(t, http.MethodPost, "/api/v1/auth/register", 0, map[string]interface{}{
		"email": "weak@b.co", "password": "abc", "confirm_password": "abc",
	})
	if resp.StatusCode != response.CodeBadRequest {
		t.Fatalf("status want 400 got %d", resp.StatusCode)
	}
	if resp.Msg != "Password must be at least 6 characters" {
		t.Fatalf("unexpected message: %q", resp.Msg)
	}
}

func TestUserLoginInvalidCredentials(t *testing.T) {
	env := setupPublicTestEnv(t, "public_auth_login")
	env.do(t, http.MethodPost, "/api/v1/auth/register", 0, map[string]interface{}{
		"email": "user@b.co", "password": "secret1", "confirm_password": "secret1",
	})
	resp := env.do(t, http.MethodPost, "/api/v1/auth/login", 0, map[string]interface{}{
		"email": "user@b.co", "password": "wrong-pass",
	})
	if resp.StatusCode != response.CodeUnauthorized {
		t.Fatalf("status want 401 got %d", resp.StatusCode)
	}
	resp = env.do(t, http.MethodPost, "/api/v1/auth/login", 0, map[string]interface{}{
		"email": "nobody@b.co", "password": "secret1",
	})
	if resp.StatusCode != response.CodeUnauthorized {
		t.Fatalf("unknown user status want 401 got %d", resp.StatusCode)
	}
}
