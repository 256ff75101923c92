// internal/api/handlers.go
package api

import (
	"net/http"
	"time"

	"github.com/SidharthAnand04/infiniti-v/internal/config"
	"github.com/SidharthAnand04/infiniti-v/internal/di"
	apperrors "github.com/SidharthAnand04/infiniti-v/internal/errors"
	"github.com/SidharthAnand04/infiniti-v/internal/models"
	"github.com/SidharthAnand04/infiniti-v/internal/services"
	"github.com/gin-gonic/gin"
)

// Handler bundles the API handlers and their service dependencies.
type Handler struct {
	ScriptService *services.ScriptService
	StatsService  *services.StatsService
	Response      *ResponseHelper
}

// APIResponse is the standard response envelope.
type APIResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     *APIError   `json:"error,omitempty"`
	Message   string      `json:"message,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id,omitempty"`
}

// APIError is the standard error format.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// NewHandler creates the API handler.
func NewHandler(scriptService *services.ScriptService, statsService *services.StatsService) *Handler {
	return &Handler{
		ScriptService: scriptService,
		StatsService:  statsService,
		Response:      NewResponseHelper(),
	}
}

// generateRequest is the body of both generation endpoints.
type generateRequest struct {
	Prompt string `json:"prompt"`
}

// GenerateScene is the compatibility endpoint: it accepts
// {"prompt": ...} and returns the bare block array in the ∞-VScript
// format, with the historical {"error": "Missing prompt"} shape on a
// missing prompt.
func (h *Handler) GenerateScene(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing prompt"})
		return
	}

	script, err := h.ScriptService.GenerateScript(req.Prompt)
	if err != nil {
		h.StatsService.RecordFailure()
		if apperrors.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing prompt"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.recordScript(script)
	c.JSON(http.StatusOK, script)
}

// GenerateScript generates a scene script and returns it in the
// standard response envelope.
func (h *Handler) GenerateScript(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Response.BadRequest(c, "invalid request body", err.Error())
		return
	}

	script, err := h.ScriptService.GenerateScript(req.Prompt)
	if err != nil {
		h.StatsService.RecordFailure()
		h.respondGenerationError(c, err)
		return
	}

	h.recordScript(script)
	h.Response.Success(c, script, "scene script generated")
}

// respondGenerationError maps pipeline errors onto HTTP responses:
// rejected prompts are client errors, everything else is internal.
func (h *Handler) respondGenerationError(c *gin.Context, err error) {
	if apperrors.IsValidationError(err) {
		h.Response.Error(c, http.StatusBadRequest, ErrorInvalidPrompt, err.Error())
		return
	}

	h.Response.Error(c, http.StatusInternalServerError, ErrorGenerationFailed,
		"failed to generate scene script", err.Error())
}

// recordScript updates the usage counters for a generated script.
func (h *Handler) recordScript(script models.Script) {
	var dialogueBlocks, actionBlocks int
	for _, block := range script {
		switch block.Kind() {
		case models.BlockTypeDialogue:
			dialogueBlocks++
		case models.BlockTypeAction:
			actionBlocks++
		}
	}
	h.StatsService.RecordGeneration(dialogueBlocks, actionBlocks)
}

// GetTimingVocabulary returns the controlled action-timing vocabulary.
func (h *Handler) GetTimingVocabulary(c *gin.Context) {
	h.Response.Success(c, gin.H{
		"timing": h.ScriptService.TimingVocabulary(),
	})
}

// GetStats returns the generation usage counters.
func (h *Handler) GetStats(c *gin.Context) {
	h.Response.Success(c, h.StatsService.GetStats())
}

// GetGenerationSettings returns the pipeline settings.
func (h *Handler) GetGenerationSettings(c *gin.Context) {
	cfg := config.GetCurrentConfig()
	h.Response.Success(c, cfg.Generation)
}

// UpdateGenerationSettings updates the pipeline settings.
func (h *Handler) UpdateGenerationSettings(c *gin.Context) {
	var gen config.GenerationConfig
	if err := c.ShouldBindJSON(&gen); err != nil {
		h.Response.BadRequest(c, "invalid settings body", err.Error())
		return
	}

	if err := config.UpdateGenerationConfig(gen); err != nil {
		h.Response.Error(c, http.StatusBadRequest, ErrorConfigInvalid, err.Error())
		return
	}

	h.Response.Success(c, config.GetCurrentConfig().Generation, "settings updated")
}

// HealthCheck reports whether the critical services are wired.
func (h *Handler) HealthCheck(c *gin.Context) {
	container := di.GetContainer()

	missing := make([]string, 0)
	for _, name := range []string{"script", "stats"} {
		if !container.Has(name) {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		h.Response.Error(c, http.StatusServiceUnavailable, ErrorServiceUnavailable,
			"critical services not registered")
		return
	}

	h.Response.Success(c, gin.H{"status": "ok"})
}
