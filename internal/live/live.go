// Package live serves the panel counter over WebSocket. Every connection
// owns a fresh Panel: it is created on connect, mutated only by that
// connection's read loop, and dropped on disconnect.
package live

import (
	"bytes"
	"encoding/json"
	"net/http"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/digital-allies/allies/internal/panel"
)

// Message types.
const (
	TypeActivate = "activate"
	TypeRender   = "render"
	TypeState    = "state"
	TypeError    = "error"
)

// maxMessageSize bounds a single client frame; valid frames are tiny.
const maxMessageSize = 512

// ClientMessage is the incoming WebSocket message format.
type ClientMessage struct {
	Type string `json:"type"`
}

// ServerMessage is the outgoing WebSocket message format.
type ServerMessage struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
	// Count is encoded as a string so clients can parse it exactly.
	Count     uint64 `json:"count,string"`
	Label     string `json:"label,omitempty"`
	Button    string `json:"button,omitempty"`
	Content   string `json:"content,omitempty"`
}

// Handler upgrades requests to WebSocket panel sessions.
type Handler struct {
	content  panel.Content
	log      zerolog.Logger
	upgrader websocket.Upgrader
	sessions atomic.Int64
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the handler's logger. The default discards output.
func WithLogger(log zerolog.Logger) Option {
	return func(h *Handler) { h.log = log }
}

// WithAllowAllOrigins disables the same-origin check on upgrade.
func WithAllowAllOrigins() Option {
	return func(h *Handler) {
		h.upgrader.CheckOrigin = func(r *http.Request) bool { return true }
	}
}

// NewHandler creates a Handler whose sessions display content.
func NewHandler(content panel.Content, opts ...Option) *Handler {
	h := &Handler{
		content: content,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Sessions returns the number of open connections.
func (h *Handler) Sessions() int64 { return h.sessions.Load() }

type session struct {
	id    string
	panel *panel.Panel
	conn  *websocket.Conn
	log   zerolog.Logger
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("live: websocket upgrade")
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessageSize)

	id := uuid.NewString()
	s := &session{
		id:    id,
		panel: panel.New(h.content),
		conn:  conn,
		log:   h.log.With().Str("session_id", id).Logger(),
	}

	open := h.sessions.Add(1)
	defer h.sessions.Add(-1)
	s.log.Debug().Int64("sessions", open).Msg("live: session opened")

	if !s.sendState() {
		return
	}

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Warn().Err(err).Msg("live: websocket read")
			}
			s.log.Debug().Uint64("count", uint64(s.panel.Count())).Msg("live: session closed")
			return
		}

		var req ClientMessage
		if err := json.Unmarshal(msg, &req); err != nil {
			if !s.sendError("invalid message format") {
				return
			}
			continue
		}

		var ok bool
		switch req.Type {
		case TypeActivate:
			s.panel.Activate()
			ok = s.sendState()
		case TypeRender:
			ok = s.sendState()
		default:
			ok = s.sendError("unknown message type: " + req.Type)
		}
		if !ok {
			return
		}
	}
}

// sendState re-renders the button after a transition and pushes it with
// the count and label.
func (s *session) sendState() bool {
	var buf bytes.Buffer
	if err := s.panel.RenderButton(&buf); err != nil {
		s.log.Error().Err(err).Msg("live: render button")
		return s.sendError("render failed")
	}
	return s.write(ServerMessage{
		Type:      TypeState,
		SessionID: s.id,
		Count:     uint64(s.panel.Count()),
		Label:     s.panel.Label(),
		Button:    buf.String(),
	})
}

func (s *session) sendError(message string) bool {
	return s.write(ServerMessage{
		Type:      TypeError,
		SessionID: s.id,
		Content:   message,
	})
}

func (s *session) write(msg ServerMessage) bool {
	if err := s.conn.WriteJSON(msg); err != nil {
		s.log.Warn().Err(err).Msg("live: websocket write")
		return false
	}
	return true
}
