// internal/api/handlers_test.go
package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SidharthAnand04/infiniti-v/internal/config"
	"github.com/SidharthAnand04/infiniti-v/internal/di"
	"github.com/SidharthAnand04/infiniti-v/internal/services"

	_ "github.com/SidharthAnand04/infiniti-v/internal/agents/local"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	scriptService, err := services.NewScriptService("local", config.GenerationConfig{
		DialogueTurns:       8,
		TargetLengthSeconds: 150,
	})
	require.NoError(t, err)

	return NewHandler(scriptService, services.NewStatsService())
}

func newTestRouter(t *testing.T) (*gin.Engine, *Handler) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := newTestHandler(t)

	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.POST("/generate_scene", handler.GenerateScene)
	router.POST("/api/scripts", handler.GenerateScript)
	router.GET("/api/scripts/vocabulary", handler.GetTimingVocabulary)
	router.GET("/api/stats", handler.GetStats)
	router.GET("/healthz", handler.HealthCheck)
	return router, handler
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func getJSON(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGenerateScene_ReturnsBareBlockArray(t *testing.T) {
	router, _ := newTestRouter(t)

	w := postJSON(router, "/generate_scene", `{"prompt": "A teacher explains gravity to students in a treehouse."}`)
	require.Equal(t, http.StatusOK, w.Code)

	var blocks []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &blocks))
	require.Len(t, blocks, 17)

	assert.Equal(t, "action", blocks[0]["type"])
	assert.Equal(t, "before", blocks[0]["timing"])
	assert.Equal(t, "1", blocks[0]["id"])

	assert.Equal(t, "dialogue", blocks[1]["type"])
	assert.Equal(t, "2", blocks[1]["id"])
	assert.NotEmpty(t, blocks[1]["character"])
	assert.Greater(t, blocks[1]["duration"].(float64), 0.0)
}

func TestGenerateScene_MissingPrompt(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, body := range []string{`{}`, `{"prompt": ""}`, `{"prompt": "   "}`, `not json`} {
		w := postJSON(router, "/generate_scene", body)
		require.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Missing prompt", resp["error"])
	}
}

func TestGenerateScript_Envelope(t *testing.T) {
	router, _ := newTestRouter(t)

	w := postJSON(router, "/api/scripts", `{"prompt": "A teacher explains gravity to students in a treehouse."}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
	assert.NotEmpty(t, resp.RequestID)

	blocks, ok := resp.Data.([]any)
	require.True(t, ok)
	assert.Len(t, blocks, 17)
}

func TestGenerateScript_InvalidPromptCode(t *testing.T) {
	router, _ := newTestRouter(t)

	w := postJSON(router, "/api/scripts", `{"prompt": "  "}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrorInvalidPrompt, resp.Error.Code)
}

func TestGetTimingVocabulary(t *testing.T) {
	router, _ := newTestRouter(t)

	w := getJSON(router, "/api/scripts/vocabulary")
	require.Equal(t, http.StatusOK, w.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"before", "during", "after"}, data["timing"])
}

func TestGetStats_CountsGenerations(t *testing.T) {
	router, _ := newTestRouter(t)

	postJSON(router, "/generate_scene", `{"prompt": "A teacher explains gravity to students."}`)
	postJSON(router, "/generate_scene", `{"prompt": "   "}`)

	w := getJSON(router, "/api/stats")
	require.Equal(t, http.StatusOK, w.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), data["total_requests"])
	assert.Equal(t, float64(1), data["total_scripts"])
	assert.Equal(t, float64(1), data["failed_requests"])
	assert.Equal(t, float64(8), data["dialogue_blocks"])
	assert.Equal(t, float64(9), data["action_blocks"])
}

func TestHealthCheck(t *testing.T) {
	router, handler := newTestRouter(t)

	container := di.GetContainer()
	container.Clear()

	w := getJSON(router, "/healthz")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	container.Register("script", handler.ScriptService)
	container.Register("stats", handler.StatsService)
	defer container.Clear()

	w = getJSON(router, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ok", data["status"])
}
