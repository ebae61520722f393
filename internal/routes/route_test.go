package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/campus/internal/config"
	"github.com/joshua-takyi/campus/internal/container"
	"github.com/joshua-takyi/campus/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, origins ...string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	cfg := &config.Config{
		StoreBackend:    config.BackendMemory,
		AllowedOrigins:  origins,
		DefaultLanguage: "en",
		Environment:     "test",
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return SetupRoutes(container.NewContainer(logger, cfg, models.NewMemoryRepo()))
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := do(newTestServer(t), http.MethodGet, "/api/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"OK","service":"campus-api"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestCreateThenListByCreator(t *testing.T) {
	r := newTestServer(t)

	w := do(r, http.MethodPost, "/api/events",
		`{"title":"Fair","community":"CS Club","description":"http://x.test","date":"2025-05-01","createdBy":"u1"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "https://picsum.photos/800/400", created.Event.ImageURL)

	w = do(r, http.MethodGet, "/api/events/user/u1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var events []models.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	require.Len(t, events, 1)
	assert.Equal(t, created.Event.ID, events[0].ID)

	w = do(r, http.MethodGet, "/api/events/"+created.Event.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"_id":"`+created.Event.ID+`"`)
}

func TestEventLifecycle(t *testing.T) {
	r := newTestServer(t)

	w := do(r, http.MethodPost, "/api/events",
		`{"title":"Talk","community":"IEEE","description":"d","date":"2025-06-01T18:00:00Z","createdBy":"u2"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created.Event.ID

	w = do(r, http.MethodPut, "/api/events/"+id,
		`{"title":"Talk v2","community":"IEEE","description":"d","date":"2025-06-02"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodDelete, "/api/events/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	var deleted models.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &deleted))
	assert.Equal(t, "Talk v2", deleted.Event.Title)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, "/api/events/"+id, "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/events/"+id, "").Code)
	assert.JSONEq(t, `[]`, do(r, http.MethodGet, "/api/events", "").Body.String())
}

func TestUpdateThenListByCreator(t *testing.T) {
	r := newTestServer(t)

	w := do(r, http.MethodPost, "/api/events",
		`{"title":"Fair","community":"CS Club","description":"d","date":"2025-05-01","createdBy":"u1"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = do(r, http.MethodPut, "/api/events/"+created.Event.ID,
		`{"title":"New","community":"CS Club","description":"d","date":"2025-05-01","createdBy":"u9"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/events/user/u1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var events []models.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	require.Len(t, events, 1)
	assert.Equal(t, created.Event.ID, events[0].ID)
	assert.Equal(t, "New", events[0].Title)
	assert.Equal(t, "u1", events[0].CreatedBy)

	assert.JSONEq(t, `[]`, do(r, http.MethodGet, "/api/events/user/u9", "").Body.String())
}

func TestRegisterAndLogin(t *testing.T) {
	r := newTestServer(t)

	w := do(r, http.MethodPost, "/api/users", `{"email":"a@b.edu","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodPost, "/api/users", `{"email":"a@b.edu","password":"secret1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/users/login", `{"email":"a@b.edu","password":"secret1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var profile map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "a@b.edu", profile["email"])
	assert.Equal(t, false, profile["isAdmin"])

	w = do(r, http.MethodPost, "/api/users/login", `{"email":"a@b.edu","password":"nope123"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLanguageNegotiation(t *testing.T) {
	r := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/events/missing", nil)
	req.Header.Set("Accept-Language", "tr-TR,tr;q=0.9")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Etkinlik bulunamadı"}`, w.Body.String())

	w = do(r, http.MethodGet, "/api/events/missing", "")
	assert.JSONEq(t, `{"message":"Event not found"}`, w.Body.String())
}

func TestCORS(t *testing.T) {
	r := newTestServer(t, "https://campus.example.edu")

	req := httptest.NewRequest(http.MethodOptions, "/api/events", nil)
	req.Header.Set("Origin", "https://campus.example.edu")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://campus.example.edu", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestServer(t)
	do(r, http.MethodGet, "/api/health", "")

	w := do(r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, bytes.Contains(w.Body.Bytes(), []byte("campus_http_requests_total")))
}

func TestCorsConfig(t *testing.T) {
	assert.True(t, corsConfig([]string{"*"}).AllowAllOrigins)

	cfg := corsConfig([]string{"https://a.test", "https://b.test"})
	assert.False(t, cfg.AllowAllOrigins)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.AllowOrigins)
}
