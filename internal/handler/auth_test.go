package handler

import (
	"net/http"
	"testing"
)

func TestRegisterEndpoint(t *testing.T) {
	router, store, _ := newTestServer(t)

	w, body := doJSON(t, router, http.MethodPost, "/api/auth/register", "", registerPayload("new@example.com"))

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %v", w.Code, body)
	}
	if body["status"] != "success" {
		t.Errorf("Expected success status, got %v", body["status"])
	}
	if body["message"] != "Registration successful" {
		t.Errorf("Unexpected message %v", body["message"])
	}

	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatal("Expected data object in envelope")
	}
	if data["token"] == "" || data["token"] == nil {
		t.Error("Expected a token in the response")
	}
	if data["user_id"] == nil || data["teacher_id"] == nil {
		t.Error("Expected user_id and teacher_id in the response")
	}

	if len(store.users) != 1 || len(store.teachers) != 1 {
		t.Errorf("Expected one user and one teacher, got %d/%d", len(store.users), len(store.teachers))
	}
}

func TestRegisterEndpointDuplicate(t *testing.T) {
	router, _, _ := newTestServer(t)
	registerAndLogin(t, router, "dup@example.com")

	w, body := doJSON(t, router, http.MethodPost, "/api/auth/register", "", registerPayload("dup@example.com"))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}
	if body["message"] != "Email already exists" {
		t.Errorf("Expected duplicate-email message, got %v", body["message"])
	}
	errs, ok := body["errors"].(map[string]any)
	if !ok || errs["email"] != "Email already exists" {
		t.Errorf("Expected the field-level email error, got %v", body["errors"])
	}
}

func TestRegisterEndpointValidation(t *testing.T) {
	router, _, _ := newTestServer(t)

	tests := []struct {
		name      string
		mutate    func(map[string]any)
		wantField string
	}{
		{
			name:      "Missing email",
			mutate:    func(p map[string]any) { delete(p, "email") },
			wantField: "email",
		},
		{
			name:      "Bad email shape",
			mutate:    func(p map[string]any) { p["email"] = "not-an-email" },
			wantField: "email",
		},
		{
			name:      "Short password",
			mutate:    func(p map[string]any) { p["password"] = "abc" },
			wantField: "password",
		},
		{
			name:      "Bad gender",
			mutate:    func(p map[string]any) { p["gender"] = "Unknown" },
			wantField: "gender",
		},
		{
			name:      "Year joined in the future",
			mutate:    func(p map[string]any) { p["year_joined"] = 2999 },
			wantField: "year_joined",
		},
		{
			name:      "Year joined too old",
			mutate:    func(p map[string]any) { p["year_joined"] = 1850 },
			wantField: "year_joined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := registerPayload("valid@example.com")
			tt.mutate(payload)

			w, body := doJSON(t, router, http.MethodPost, "/api/auth/register", "", payload)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("Expected 400, got %d: %v", w.Code, body)
			}
			if body["message"] != "Validation failed" {
				t.Errorf("Expected validation message, got %v", body["message"])
			}

			errs, ok := body["errors"].(map[string]any)
			if !ok {
				t.Fatalf("Expected field error map, got %v", body["errors"])
			}
			if _, present := errs[tt.wantField]; !present {
				t.Errorf("Expected an error for %q, got %v", tt.wantField, errs)
			}
		})
	}
}

func TestLoginEndpoint(t *testing.T) {
	router, _, _ := newTestServer(t)
	registerAndLogin(t, router, "user@example.com")

	w, body := doJSON(t, router, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "user@example.com",
		"password": "secret123",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %v", w.Code, body)
	}
	if body["message"] != "Login successful" {
		t.Errorf("Unexpected message %v", body["message"])
	}

	data := body["data"].(map[string]any)
	if data["token"] == nil {
		t.Error("Expected a token")
	}
	teacher, ok := data["teacher"].(map[string]any)
	if !ok {
		t.Fatal("Expected the teacher profile on login")
	}
	if teacher["university_name"] != "MIT" {
		t.Errorf("Expected university name, got %v", teacher["university_name"])
	}
}

func TestLoginEndpointBadCredentials(t *testing.T) {
	router, _, _ := newTestServer(t)
	registerAndLogin(t, router, "user@example.com")

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "Unknown email", email: "nobody@example.com", password: "secret123"},
		{name: "Wrong password", email: "user@example.com", password: "nope12345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := doJSON(t, router, http.MethodPost, "/api/auth/login", "", map[string]any{
				"email":    tt.email,
				"password": tt.password,
			})

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("Expected 401, got %d", w.Code)
			}
			if body["message"] != "Invalid email or password" {
				t.Errorf("Expected the generic credentials message, got %v", body["message"])
			}
		})
	}
}

func TestLogoutEndpoint(t *testing.T) {
	router, _, _ := newTestServer(t)

	w, body := doJSON(t, router, http.MethodPost, "/api/auth/logout", "", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if body["message"] != "Logout successful" {
		t.Errorf("Unexpected message %v", body["message"])
	}
}

func TestProfileEndpoint(t *testing.T) {
	router, _, _ := newTestServer(t)
	token := registerAndLogin(t, router, "me@example.com")

	w, body := doJSON(t, router, http.MethodGet, "/api/profile", token, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %v", w.Code, body)
	}

	data := body["data"].(map[string]any)
	if data["email"] != "me@example.com" {
		t.Errorf("Expected own email, got %v", data["email"])
	}
	if data["university_name"] != "MIT" {
		t.Errorf("Expected joined academic columns, got %v", data["university_name"])
	}
	if _, leaked := data["password"]; leaked {
		t.Error("Password hash leaked into the profile response")
	}
}

func TestProfileEndpointRequiresAuth(t *testing.T) {
	router, _, _ := newTestServer(t)

	w, _ := doJSON(t, router, http.MethodGet, "/api/profile", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401 without token, got %d", w.Code)
	}
}
