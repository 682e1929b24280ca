package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mif-gmao/gmao/internal/infrastructure/auth"
	"github.com/mif-gmao/gmao/internal/infrastructure/config"
	"github.com/mif-gmao/gmao/internal/shared/authorization"
	sharedConfig "github.com/mif-gmao/gmao/internal/shared/config"
	"github.com/mif-gmao/gmao/internal/shared/logger"
	"github.com/mif-gmao/gmao/internal/testutil"
)

const testSecret = "router-test-secret"

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Type string `json:"type"`
	} `json:"error"`
}

type testServer struct {
	t      *testing.T
	engine *gin.Engine
	jwt    *auth.JWTService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Database: sharedConfig.DatabaseConfig{Driver: "sqlite"},
		Auth: sharedConfig.AuthConfig{
			JWT:          sharedConfig.JWTConfig{Secret: testSecret, Issuer: "gmao"},
			SeedPolicies: true,
		},
		Notification: sharedConfig.NotificationConfig{Channel: "log", DryRun: true},
		Scheduler:    sharedConfig.SchedulerConfig{SystemPrincipalID: 1},
		Telemetry: sharedConfig.TelemetryConfig{
			Metrics: sharedConfig.MetricsConfig{Enabled: true, Path: "/metrics"},
		},
	}

	c, err := NewContainer(testutil.NewTestDB(t), cfg, logger.NewNopLogger(), "test")
	require.NoError(t, err)
	c.SetupRoutes()
	t.Cleanup(func() { _ = c.Shutdown(t.Context()) })

	return &testServer{t: t, engine: c.Engine(), jwt: auth.NewJWTService(testSecret, "gmao")}
}

func (s *testServer) do(method, path string, role authorization.Role, body any) (int, apiResponse) {
	s.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		token, err := s.jwt.Issue("1", role, time.Hour)
		require.NoError(s.t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var resp apiResponse
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") != "" {
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
	}
	return w.Code, resp
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	code, resp := s.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, resp.Success)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_SwaggerDocument(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		Swagger string                    `json:"swagger"`
		Paths   map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "2.0", doc.Swagger)
	assert.Contains(t, doc.Paths["/interventions/{id}/status"], "patch")
	assert.Contains(t, doc.Paths["/plannings/generate"], "post")
}

func TestRouter_AuthAndCapabilities(t *testing.T) {
	s := newTestServer(t)

	code, _ := s.do(http.MethodGet, "/interventions", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = s.do(http.MethodPost, "/equipments", authorization.RoleClient, map[string]any{"name": "Chaudière"})
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = s.do(http.MethodGet, "/equipments", authorization.RoleClient, nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = s.do(http.MethodGet, "/notifications", authorization.RoleTechnicien, nil)
	assert.Equal(t, http.StatusForbidden, code)
}

func TestRouter_InterventionLifecycle(t *testing.T) {
	s := newTestServer(t)

	code, resp := s.do(http.MethodPost, "/equipments", authorization.RoleAdmin, map[string]any{"name": "Pompe P1"})
	require.Equal(t, http.StatusCreated, code)
	var eq struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &eq))

	code, resp = s.do(http.MethodPost, "/interventions", authorization.RoleResponsable, map[string]any{
		"title":        "Fuite sur pompe",
		"type":         "corrective",
		"equipment_id": eq.ID,
	})
	require.Equal(t, http.StatusCreated, code)
	var created struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &created))
	assert.Equal(t, "open", created.Status)

	statusPath := "/interventions/" + strconv.FormatUint(uint64(created.ID), 10) + "/status"

	code, _ = s.do(http.MethodPatch, statusPath, authorization.RoleTechnicien, map[string]any{"status": "en cours"})
	require.Equal(t, http.StatusOK, code)

	code, resp = s.do(http.MethodPatch, statusPath, authorization.RoleTechnicien, map[string]any{"status": "Clôturée", "remark": "joint remplacé"})
	require.Equal(t, http.StatusOK, code)
	var closed struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &closed))
	assert.Equal(t, "closed", closed.Status)

	code, resp = s.do(http.MethodPatch, statusPath, authorization.RoleTechnicien, map[string]any{"status": "ouverte"})
	assert.Equal(t, http.StatusBadRequest, code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "state_locked", resp.Error.Type)

	code, resp = s.do(http.MethodGet, "/interventions/"+strconv.FormatUint(uint64(created.ID), 10)+"/history", authorization.RoleClient, nil)
	require.Equal(t, http.StatusOK, code)
	var history []map[string]any
	require.NoError(t, json.Unmarshal(resp.Data, &history))
	assert.Len(t, history, 3)

	code, _ = s.do(http.MethodDelete, "/equipments/"+strconv.FormatUint(uint64(eq.ID), 10), authorization.RoleAdmin, nil)
	assert.Equal(t, http.StatusConflict, code)
}

func TestRouter_GenerateWithoutPlannings(t *testing.T) {
	s := newTestServer(t)

	code, resp := s.do(http.MethodPost, "/plannings/generate", authorization.RoleResponsable, nil)
	require.Equal(t, http.StatusOK, code)
	var result struct {
		Created int `json:"created"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	assert.Zero(t, result.Created)
}
