// internal/server/handlers/websocket.go

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"foodtrend/internal/service/pipeline"
)

// WebSocketConfig contains configuration for WebSocket connections
type WebSocketConfig struct {
	// Time allowed to write a message to the peer
	WriteWait time.Duration

	// Time allowed to read the run request from the peer
	ReadWait time.Duration

	// Maximum message size allowed from peer
	MaxMessageSize int64
}

// DefaultWebSocketConfig returns the default WebSocket configuration
func DefaultWebSocketConfig() WebSocketConfig {
	return WebSocketConfig{
		WriteWait:      10 * time.Second,
		ReadWait:       30 * time.Second,
		MaxMessageSize: 4096,
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Frame types sent to the client
const (
	frameStage  = "stage"
	frameResult = "result"
	frameError  = "error"
)

type runFrame struct {
	Type   string           `json:"type"`
	Stage  pipeline.Stage   `json:"stage,omitempty"`
	Text   string           `json:"message,omitempty"`
	Code   string           `json:"code,omitempty"`
	Result *pipeline.Result `json:"result,omitempty"`
}

// RunWebSocketHandler reads one run request, streams stage events while the
// pipeline runs, then sends the result or an error frame and closes.
func RunWebSocketHandler(runner Runner, store RunStore, logger *slog.Logger) http.HandlerFunc {
	config := DefaultWebSocketConfig()

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Warn("failed to upgrade to WebSocket", "error", err)
			return
		}
		defer conn.Close()

		conn.SetReadLimit(config.MaxMessageSize)
		conn.SetReadDeadline(time.Now().Add(config.ReadWait))

		send := func(f runFrame) error {
			conn.SetWriteDeadline(time.Now().Add(config.WriteWait))
			return conn.WriteJSON(f)
		}

		var opts pipeline.Options
		if err := conn.ReadJSON(&opts); err != nil {
			send(runFrame{Type: frameError, Code: codeBadRequest, Text: "Invalid run request"})
			return
		}

		result, err := runner.Run(r.Context(), opts, func(ev pipeline.StageEvent) {
			if err := send(runFrame{Type: frameStage, Stage: ev.Stage, Text: ev.Message}); err != nil {
				logger.Debug("failed to send stage frame", "stage", ev.Stage, "error", err)
			}
		})
		if err != nil {
			_, code, message := classifyRunError(err)
			logger.Error("WebSocket run failed", "error", err)
			send(runFrame{Type: frameError, Code: code, Text: message})
			return
		}

		store.SaveRun(result)
		if err := send(runFrame{Type: frameResult, Result: &result}); err != nil {
			logger.Debug("failed to send result frame", "error", err)
			return
		}

		conn.SetWriteDeadline(time.Now().Add(config.WriteWait))
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "run complete"))
	}
}
