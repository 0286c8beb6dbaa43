package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/ai"
	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/server/ratelimit"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockStore is an in-memory StoreClient for handler tests.
type mockStore struct {
	mu      sync.Mutex
	users   map[uuid.UUID]*store.User
	resumes map[uuid.UUID]*store.ResumeRecord

	fetchErr  error
	upsertErr error
}

func newMockStore() *mockStore {
	return &mockStore{
		users:   make(map[uuid.UUID]*store.User),
		resumes: make(map[uuid.UUID]*store.ResumeRecord),
	}
}

func (m *mockStore) CreateUser(_ context.Context, name, email, passwordHash string) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	u := &store.User{ID: uuid.New(), Name: name, Email: email, PasswordHash: passwordHash, CreatedAt: now, UpdatedAt: now}
	m.users[u.ID] = u
	return u.ID, nil
}

func (m *mockStore) GetUser(_ context.Context, userID uuid.UUID) (*store.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.users[userID], nil
}

func (m *mockStore) GetUserByEmail(_ context.Context, email string) (*store.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockStore) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	u, err := m.GetUserByEmail(ctx, email)
	return u != nil, err
}

func (m *mockStore) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return fmt.Errorf("user not found: %s", userID)
	}
	u.PasswordHash = passwordHash
	return nil
}

func (m *mockStore) FetchLatestOrByID(_ context.Context, userID uuid.UUID, resumeID *uuid.UUID) (*store.ResumeRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	if resumeID != nil {
		rec, ok := m.resumes[*resumeID]
		if !ok || rec.UserID != userID {
			return nil, nil
		}
		return rec, nil
	}
	var latest *store.ResumeRecord
	for _, rec := range m.resumes {
		if rec.UserID != userID {
			continue
		}
		if latest == nil || rec.UpdatedAt.After(latest.UpdatedAt) {
			latest = rec
		}
	}
	return latest, nil
}

func (m *mockStore) Upsert(_ context.Context, rec *store.ResumeRecord) (*store.ResumeRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.upsertErr != nil {
		return nil, m.upsertErr
	}
	now := time.Now()
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
		rec.CreatedAt = now
	} else if existing, ok := m.resumes[rec.ID]; ok {
		if existing.UserID != rec.UserID {
			return nil, fmt.Errorf("resume %s belongs to another user", rec.ID)
		}
		rec.CreatedAt = existing.CreatedAt
	} else {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now
	stored := *rec
	m.resumes[rec.ID] = &stored
	return &stored, nil
}

func (m *mockStore) ListResumes(_ context.Context, userID uuid.UUID) ([]store.ResumeSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []store.ResumeSummary
	for _, rec := range m.resumes {
		if rec.UserID != userID {
			continue
		}
		out = append(out, store.ResumeSummary{ID: rec.ID, Title: rec.Title, CreatedAt: rec.CreatedAt, UpdatedAt: rec.UpdatedAt})
	}
	return out, nil
}

func (m *mockStore) DeleteResume(_ context.Context, userID, resumeID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.resumes[resumeID]
	if !ok || rec.UserID != userID {
		return fmt.Errorf("resume not found: %s", resumeID)
	}
	delete(m.resumes, resumeID)
	return nil
}

// mockAI returns canned responses for the AIService interface.
type mockAI struct {
	result string
	items  []string
	err    error
}

func (m *mockAI) GenerateSummary(context.Context, ai.SummaryInput) (string, error) {
	return m.result, m.err
}

func (m *mockAI) SuggestSkills(context.Context, string) ([]string, error) {
	return m.items, m.err
}

func (m *mockAI) SuggestCourses(context.Context, string, string) ([]string, error) {
	return m.items, m.err
}

func (m *mockAI) EnhanceText(context.Context, string) (string, error) {
	return m.result, m.err
}

// newTestServer wires a Server around mocks with rate limiting disabled.
func newTestServer(t *testing.T, st StoreClient, aiSvc AIService) *Server {
	t.Helper()

	authCfg := &config.AuthConfig{BcryptCost: 10, JWTSecret: "test-secret", TokenHours: 1}

	s := &Server{
		store:       st,
		ai:          aiSvc,
		rateLimiter: ratelimit.NewLimiter(&ratelimit.Config{Enabled: false}),
	}
	s.jwtService = NewJWTService(authCfg)
	s.userService = NewUserService(st, authCfg)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)
	s.httpServer = &http.Server{Handler: s.withRateLimit(s.withCORS(s.routes()))}
	t.Cleanup(s.rateLimiter.Stop)
	return s
}

// seedUser creates an account directly in the store and mints a token
// for it.
func seedUser(t *testing.T, s *Server, st *mockStore) (uuid.UUID, string) {
	t.Helper()
	userID, err := st.CreateUser(context.Background(), "Test User", "test@example.com", "unused-hash")
	require.NoError(t, err)
	token, err := s.jwtService.GenerateToken(userID)
	require.NoError(t, err)
	return userID, token
}

// doRequest runs one request through the full middleware chain. A string
// body is sent verbatim; anything else is JSON encoded.
func doRequest(t *testing.T, s *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rdr io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rdr = strings.NewReader(b)
	default:
		buf, err := json.Marshal(b)
		require.NoError(t, err)
		rdr = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, rdr)
	req.RemoteAddr = "192.0.2.1:12345"
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rr, req)
	return rr
}

func decodeJSON(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, newMockStore(), nil)

	rr := doRequest(t, s, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", decodeJSON(t, rr)["status"])
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, newMockStore(), nil)

	rr := doRequest(t, s, http.MethodOptions, "/api/resumes", "", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := newTestServer(t, newMockStore(), nil)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/resumes"},
		{http.MethodPost, "/api/resumes"},
		{http.MethodGet, "/api/resumes/" + uuid.NewString()},
		{http.MethodPost, "/api/ai/generate"},
	}
	for _, p := range paths {
		rr := doRequest(t, s, p.method, p.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code, "%s %s", p.method, p.path)
	}
}

func TestProtectedRoutesRejectBadToken(t *testing.T) {
	s := newTestServer(t, newMockStore(), nil)

	rr := doRequest(t, s, http.MethodGet, "/api/resumes", "not-a-real-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
