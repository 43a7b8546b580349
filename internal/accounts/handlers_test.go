package accounts

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandlers(newTestService(t)).Register(r.Group("/api"))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterEndpoint(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "created", body: `{"name":"Alice","username":"alice","password":"hunter22"}`, want: http.StatusCreated},
		{name: "duplicate", body: `{"name":"Alice","username":"alice","password":"hunter22"}`, want: http.StatusConflict},
		{name: "missing fields", body: `{"name":"Bob"}`, want: http.StatusBadRequest},
		{name: "weak password", body: `{"name":"Bob","username":"bob","password":"123"}`, want: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/v1/users/register", tt.body)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.want, w.Body)
			}
		})
	}
}

func TestLoginAndActivityFlow(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/users/register", `{"name":"Alice","username":"alice","password":"hunter22"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/users/login", `{"username":"alice","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad-password login status = %d, want 401", w.Code)
	}
	w = doJSON(t, r, http.MethodPost, "/api/v1/users/login", `{"username":"ghost","password":"hunter22"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown-user login status = %d, want 404", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/users/login", `{"username":"alice","password":"hunter22"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d (body %s)", w.Code, w.Body)
	}
	var loginResp struct {
		Token string `json:"token"`
		User  struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &loginResp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if loginResp.Token == "" || loginResp.User.Username != "alice" {
		t.Fatalf("login response = %s", w.Body)
	}

	body, _ := json.Marshal(map[string]string{"token": loginResp.Token, "meeting_code": "standup-room"})
	w = doJSON(t, r, http.MethodPost, "/api/v1/users/add_to_activity", string(body))
	if w.Code != http.StatusOK {
		t.Fatalf("add_to_activity status = %d (body %s)", w.Code, w.Body)
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/users/add_to_activity", `{"token":"bad-token","meeting_code":"x"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad-token add_to_activity status = %d, want 401", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/users/get_all_activity?token="+url.QueryEscape(loginResp.Token), "")
	if w.Code != http.StatusOK {
		t.Fatalf("get_all_activity status = %d (body %s)", w.Code, w.Body)
	}
	var actResp struct {
		Activity []struct {
			MeetingCode string `json:"meeting_code"`
		} `json:"activity"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &actResp); err != nil {
		t.Fatalf("decode activity response: %v", err)
	}
	if len(actResp.Activity) != 1 || actResp.Activity[0].MeetingCode != "standup-room" {
		t.Fatalf("activity response = %s", w.Body)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/users/get_all_activity", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing-token get_all_activity status = %d, want 400", w.Code)
	}
}
