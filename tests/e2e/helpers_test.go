//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/contentflow-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/contentflow-backend/internal/app"
	authpkg "github.com/heartmarshall/contentflow-backend/internal/auth"
	"github.com/heartmarshall/contentflow-backend/internal/config"
	"github.com/heartmarshall/contentflow-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	// 3. Configuration: posts need review unless self-published, public
	// events follow the literal public-event rule.
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-at-least-32-chars-long!!",
			JWTIssuer:      "test-issuer",
			AccessTokenTTL: 15 * time.Minute,
		},
		CORS: config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PATCH,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		},
		Workflow: config.WorkflowConfig{
			PostRequiresApproval:        true,
			PublicEventRequiresApproval: true,
			SelfPublishRole:             string(domain.RolePostSelfPublish),
			PublicEventPublishRole:      string(domain.RolePublicEventPublish),
			ActivityTTL:                 24 * time.Hour,
		},
	}

	// 4. Repositories, services and router, wired the same way as the server.
	deps, err := app.Wire(logger, cfg, pool, nil)
	require.NoError(t, err)
	deps.Version = "test-version"
	handler := app.NewRouter(deps)

	// 5. httptest server.
	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    deps.Tokens,
	}
}

// ---------------------------------------------------------------------------
// Actors
// ---------------------------------------------------------------------------

type testActor struct {
	ID    uuid.UUID
	Token string
}

func (ts *testServer) actor(t *testing.T, kind domain.ActorKind, roles ...domain.Role) testActor {
	t.Helper()
	return ts.actorWithID(t, uuid.New(), kind, roles...)
}

func (ts *testServer) actorWithID(t *testing.T, id uuid.UUID, kind domain.ActorKind, roles ...domain.Role) testActor {
	t.Helper()
	tok, err := ts.jwt.GenerateAccessToken(domain.Actor{ID: id, Kind: kind, Roles: roles})
	require.NoError(t, err)
	return testActor{ID: id, Token: tok}
}

func (ts *testServer) consumer(t *testing.T, roles ...domain.Role) testActor {
	t.Helper()
	return ts.actor(t, domain.ActorKindConsumer, roles...)
}

func (ts *testServer) operator(t *testing.T) testActor {
	t.Helper()
	return ts.actor(t, domain.ActorKindPlatform)
}

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

// do sends a JSON request and returns status + decoded body.
func (ts *testServer) do(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

// createPost creates a complete draft post and returns its id.
func (ts *testServer) createPost(t *testing.T, owner testActor) string {
	t.Helper()
	status, body := ts.do(t, http.MethodPost, "/posts", map[string]any{
		"title":   "Spring cleanup",
		"slug":    "spring-cleanup-" + uuid.NewString()[:8],
		"content": "Volunteers meet at the park entrance.",
	}, owner.Token)
	require.Equal(t, http.StatusCreated, status, "create post: %v", body)
	require.Equal(t, "EDITING", body["status"])
	return body["id"].(string)
}

// submitForReview submits a post and returns the opened process id and
// its first activity id.
func (ts *testServer) submitForReview(t *testing.T, owner testActor, postID string) (string, string) {
	t.Helper()
	status, body := ts.do(t, http.MethodPost, "/posts/"+postID+"/submit", nil, owner.Token)
	require.Equal(t, http.StatusOK, status, "submit: %v", body)

	proc := object(t, body, "process")
	ids := proc["activityIds"].([]any)
	require.Len(t, ids, 1)
	return proc["id"].(string), ids[0].(string)
}

// act applies an operator action.
func (ts *testServer) act(t *testing.T, op testActor, processID, activityID string, body map[string]any) (int, map[string]any) {
	t.Helper()
	return ts.do(t, http.MethodPatch, "/processes/"+processID+"/"+activityID, body, op.Token)
}

func object(t *testing.T, m map[string]any, key string) map[string]any {
	t.Helper()
	v, ok := m[key].(map[string]any)
	require.True(t, ok, "expected object %q in %v", key, m)
	return v
}

// ---------------------------------------------------------------------------
// DB inspection
// ---------------------------------------------------------------------------

func (ts *testServer) countProcesses(t *testing.T, targetID string) int {
	t.Helper()
	var n int
	err := ts.Pool.QueryRow(context.Background(),
		`SELECT count(*) FROM processes WHERE target_id = $1`, uuid.MustParse(targetID)).Scan(&n)
	require.NoError(t, err)
	return n
}

func (ts *testServer) countActivities(t *testing.T, targetID string) int {
	t.Helper()
	var n int
	err := ts.Pool.QueryRow(context.Background(),
		`SELECT count(*) FROM activities WHERE target_id = $1`, uuid.MustParse(targetID)).Scan(&n)
	require.NoError(t, err)
	return n
}

func (ts *testServer) auditActions(t *testing.T, entityID string) []string {
	t.Helper()
	rows, err := ts.Pool.Query(context.Background(),
		`SELECT action FROM audit_log WHERE entity_id = $1 ORDER BY created_at, action`, uuid.MustParse(entityID))
	require.NoError(t, err)
	defer rows.Close()

	var actions []string
	for rows.Next() {
		var a string
		require.NoError(t, rows.Scan(&a))
		actions = append(actions, a)
	}
	require.NoError(t, rows.Err())
	return actions
}
