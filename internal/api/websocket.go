// internal/api/websocket.go
package api

import (
	"net/http"
	"sync"
	"time"

	apperrors "github.com/SidharthAnand04/infiniti-v/internal/errors"
	"github.com/SidharthAnand04/infiniti-v/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// WebSocket upgrader configuration
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Production deployments should check the origin here
		return true
	},
}

const (
	promptReadTimeout = 30 * time.Second
	blockWriteTimeout = 10 * time.Second
)

// streamTracker keeps the set of in-flight generation streams so the
// status endpoint can report on them.
type streamTracker struct {
	mu          sync.RWMutex
	active      map[string]*streamInfo
	totalServed int
}

type streamInfo struct {
	RequestID string    `json:"request_id"`
	StartedAt time.Time `json:"started_at"`
}

// Global stream tracker instance
var streams = &streamTracker{
	active: make(map[string]*streamInfo),
}

func (t *streamTracker) add(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.active[id] = &streamInfo{
		RequestID: id,
		StartedAt: time.Now(),
	}
}

func (t *streamTracker) remove(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.active, id)
	t.totalServed++
}

// Status returns a snapshot of the tracker state.
func (t *streamTracker) Status() map[string]interface{} {
	t.mu.RLock()
	defer t.mu.RUnlock()

	activeStreams := make([]*streamInfo, 0, len(t.active))
	for _, info := range t.active {
		activeStreams = append(activeStreams, info)
	}

	return map[string]interface{}{
		"active_streams": len(t.active),
		"total_served":   t.totalServed,
		"streams":        activeStreams,
	}
}

// GenerateStream serves one generation over a WebSocket: the client
// sends {"prompt": ...} and receives one message per block in emission
// order, then a final done message. Failures are sent as a single
// error message; no partial scripts are streamed.
func (h *Handler) GenerateStream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.GetLogger().Errorf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(promptReadTimeout))

	var req generateRequest
	if err := conn.ReadJSON(&req); err != nil {
		writeStreamError(conn, ErrorBadRequest, "expected a JSON message with a prompt field")
		return
	}

	streamID := uuid.NewString()
	streams.add(streamID)
	defer streams.remove(streamID)

	script, err := h.ScriptService.GenerateScript(req.Prompt)
	if err != nil {
		h.StatsService.RecordFailure()
		code := ErrorGenerationFailed
		if apperrors.IsValidationError(err) {
			code = ErrorInvalidPrompt
		}
		writeStreamError(conn, code, err.Error())
		return
	}

	// The script is fully assembled and validated before the first
	// block goes out, so the stream order is exactly the emission order.
	for _, block := range script {
		conn.SetWriteDeadline(time.Now().Add(blockWriteTimeout))
		if err := conn.WriteJSON(gin.H{"type": "block", "block": block}); err != nil {
			utils.GetLogger().Warnf("stream %s aborted: %v", streamID, err)
			return
		}
	}

	h.recordScript(script)

	conn.SetWriteDeadline(time.Now().Add(blockWriteTimeout))
	conn.WriteJSON(gin.H{"type": "done", "count": len(script)})
}

// writeStreamError sends a typed error message over the socket.
func writeStreamError(conn *websocket.Conn, code, message string) {
	conn.SetWriteDeadline(time.Now().Add(blockWriteTimeout))
	conn.WriteJSON(gin.H{
		"type":      "error",
		"code":      code,
		"error":     message,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// GetStreamStatus reports the active stream counters (debug use).
func (h *Handler) GetStreamStatus(c *gin.Context) {
	h.Response.Success(c, streams.Status())
}
