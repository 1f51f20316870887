package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/devhub/devhub/store"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

// newTestServer builds a server over fresh in-memory stores.
func newTestServer(t *testing.T) (*Server, *gin.Engine) {
	t.Helper()
	st, err := store.NewMemoryStore()
	if err != nil {
		t.Fatalf("memory store: %v", err)
	}
	cfg := &AppConfig{
		Env: "local",
		JWT: JWTConfig{Secret: "test-signing-key", TTL: "1h"},
	}
	s := NewServer(cfg, st)
	return s, NewGinEngine(s)
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

// registerUser registers through the public endpoint and returns the user id
// and bearer token.
func registerUser(t *testing.T, engine *gin.Engine, username string, roles []string) (uint64, string) {
	t.Helper()
	w := doJSON(t, engine, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": username,
		"email":    username + "@example.com",
		"password": "P@ssw0rd!",
		"roles":    roles,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d; body=%s", username, w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	decodeJSON(t, w, &resp)
	if resp.Token == "" {
		t.Fatalf("register %s: expected a token", username)
	}

	// The id comes from a users lookup with the fresh token.
	lw := doJSON(t, engine, http.MethodGet, "/api/users/search?username="+username, resp.Token, nil)
	if lw.Code != http.StatusOK {
		t.Fatalf("search %s: expected 200, got %d; body=%s", username, lw.Code, lw.Body.String())
	}
	var users []struct {
		ID       uint64 `json:"id"`
		Username string `json:"username"`
	}
	decodeJSON(t, lw, &users)
	for _, u := range users {
		if u.Username == username {
			return u.ID, resp.Token
		}
	}
	t.Fatalf("registered user %s not found in search", username)
	return 0, ""
}

func itoa(id uint64) string { return strconv.FormatUint(id, 10) }

func errorCategory(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error string `json:"error"`
	}
	decodeJSON(t, w, &resp)
	return resp.Error
}
